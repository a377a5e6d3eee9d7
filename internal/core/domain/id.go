package domain

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
)

// Item identifiers contain colons and dots, which are unsafe in URLs
// and filenames. Two alternate forms exist:
//
//   - The encoded form is unpadded url-safe base64 of the raw bytes.
//     It is exactly reversible and used as the per-item filename key.
//   - The readable form substitutes reserved characters (colon to
//     hyphen for items, dot to hyphen for fluids). It is lossy: two
//     distinct raw ids could collide after substitution, so it is
//     only used where readability wins and the encoded form remains
//     the fallback.

// EncodeItemID returns the url-safe, filename-safe encoded form of a
// raw identifier. DecodeItemID inverts it exactly for any input.
func EncodeItemID(id string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(id))
}

// DecodeItemID decodes an encoded identifier back to its raw form.
// Malformed input returns ErrInvalidID.
func DecodeItemID(encoded string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, encoded)
	}
	return string(raw), nil
}

// ReadableItemID returns the human-friendly form of an item id with
// colons replaced by hyphens.
func ReadableItemID(id string) string {
	return strings.ReplaceAll(id, ":", "-")
}

// ParseReadableItemID converts a readable item id back to raw form by
// replacing hyphens with colons.
func ParseReadableItemID(readable string) string {
	return strings.ReplaceAll(readable, "-", ":")
}

// ParseReadableFluidID converts a readable fluid id back to raw form.
// Fluid names are dot-delimited, so hyphens map back to dots; an id
// without hyphens is already in raw form.
func ParseReadableFluidID(readable string) string {
	if strings.Contains(readable, "-") {
		return strings.ReplaceAll(readable, "-", ".")
	}
	return readable
}

// base64Like matches long unbroken alphanumeric runs typical of
// encoded ids.
var base64Like = regexp.MustCompile(`[A-Za-z0-9]{20,}`)

// IsReadableID reports whether an incoming token looks like a
// readable id rather than an encoded one. A token with hyphens and no
// colons is readable; so is a simple fluid-style name without a
// base64-like run. This classification is best-effort, not formally
// sound: a short alphanumeric raw id can be misclassified.
func IsReadableID(id string) bool {
	hasHyphensNoColons := strings.Contains(id, "-") && !strings.Contains(id, ":")
	isSimpleFluidName := !strings.Contains(id, ":") && !base64Like.MatchString(id)
	return hasHyphensNoColons || isSimpleFluidName
}
