// Package naming derives human-readable machine names and categories
// from raw recipe-source identifiers.
//
// Derivation is pure and locale-insensitive: ASCII-only casing over a
// fixed set of prefix rules. A small override table handles the ids
// whose names cannot be derived.
package naming

import "strings"

// displayOverrides maps ids with non-derivable names. Exact-match
// lookup, takes precedence over all derivation.
var displayOverrides = map[string]string{
	"crafting_table": "Crafting Table",
	"furnace":        "Furnace",
	"ae2_inscriber":  "AE2 Inscriber",
}

// strippedPrefixes are removed before title casing. Order matters:
// the first match wins, so broader prefixes must come first.
var strippedPrefixes = []string{
	"gt.recipe.",
	"gtpp.recipe.",
	"bw.recipe.",
	"gg.recipe.",
	"gtnhlanth.recipe.",
	"kubatech.",
	"bw.fuels.",
	"ggfab.recipe.",
}

// MachineDisplayName derives a display name from a machine id.
//
// Overrides win outright. Otherwise the first matching known prefix
// is stripped, the forestry_/thaumcraft_ prefixes are rewritten into
// retained namespace words, and the remainder is title-cased with
// camelCase boundaries and dot/underscore/hyphen separators turned
// into spaces.
func MachineDisplayName(machineID string) string {
	if name, ok := displayOverrides[machineID]; ok {
		return name
	}

	name := machineID
	for _, prefix := range strippedPrefixes {
		if strings.HasPrefix(name, prefix) {
			name = name[len(prefix):]
			break
		}
	}

	// These prefixes are replaced, not stripped: the namespace word
	// stays in the output.
	if rest, ok := strings.CutPrefix(name, "forestry_"); ok {
		name = "Forestry " + rest
	}
	if rest, ok := strings.CutPrefix(name, "thaumcraft_"); ok {
		name = "Thaumcraft " + rest
	}

	return titleCase(name)
}

// MachineCategory derives the mod category from a machine id. The
// predicates are ordered: bw. must be checked where it is because
// prefixes are not mutually exclusive. Falls through to "Other".
func MachineCategory(machineID string) string {
	switch {
	case strings.HasPrefix(machineID, "gt.recipe."):
		return "GregTech"
	case strings.HasPrefix(machineID, "gtpp.recipe."):
		return "GT++"
	case strings.HasPrefix(machineID, "bw."):
		return "BartWorks"
	case strings.HasPrefix(machineID, "gg.recipe."):
		return "GoodGenerator"
	case strings.HasPrefix(machineID, "gtnhlanth."):
		return "GTNH Lanthanides"
	case strings.HasPrefix(machineID, "kubatech."):
		return "KubaTech"
	case strings.HasPrefix(machineID, "ggfab."):
		return "GGFab"
	case strings.HasPrefix(machineID, "forestry_"):
		return "Forestry"
	case strings.HasPrefix(machineID, "thaumcraft_"):
		return "Thaumcraft"
	case machineID == "crafting_table" || machineID == "furnace":
		return "Vanilla"
	case strings.HasPrefix(machineID, "ae2_"):
		return "Applied Energistics"
	default:
		return "Other"
	}
}

// titleCase splits camelCase with spaces, turns dots, underscores and
// hyphens into spaces, uppercases the first letter of every word and
// trims the result. ASCII only.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)

	prev := byte(0)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isLower(prev) && isUpper(c) {
			b.WriteByte(' ')
		}
		if c == '.' || c == '_' || c == '-' {
			c = ' '
		}
		b.WriteByte(c)
		prev = s[i]
	}

	out := []byte(b.String())
	startOfWord := true
	for i, c := range out {
		if c == ' ' {
			startOfWord = true
			continue
		}
		if startOfWord && isLower(c) {
			out[i] = c - ('a' - 'A')
		}
		// Digits end the boundary too: "01abc" keeps its casing.
		startOfWord = false
	}

	return strings.TrimSpace(string(out))
}

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
