package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeItemID_RoundTrip(t *testing.T) {
	ids := []string{
		"gregtech:gt.metaitem.01:32741",
		"minecraft:stone:0",
		"mod:item-with-hyphens:5",
		"ünïcode:item:1",
		"",
	}

	for _, id := range ids {
		encoded := EncodeItemID(id)
		decoded, err := DecodeItemID(encoded)
		require.NoError(t, err)
		assert.Equal(t, id, decoded)
	}
}

func TestEncodeItemID_FilenameSafe(t *testing.T) {
	encoded := EncodeItemID("gregtech:gt.metaitem.01:32741")
	assert.NotContains(t, encoded, ":")
	assert.NotContains(t, encoded, "/")
	assert.NotContains(t, encoded, "=")
	assert.NotContains(t, encoded, "+")
}

func TestDecodeItemID_Malformed(t *testing.T) {
	_, err := DecodeItemID("not base64!!!")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestReadableItemID_RoundTrip(t *testing.T) {
	raw := "gregtech:gt.metaitem.01:32741"
	readable := ReadableItemID(raw)

	assert.Equal(t, "gregtech-gt.metaitem.01-32741", readable)
	assert.Equal(t, raw, ParseReadableItemID(readable))
}

func TestParseReadableFluidID(t *testing.T) {
	assert.Equal(t, "fluid.molten.iron", ParseReadableFluidID("fluid-molten-iron"))
	// No hyphens means the id is already raw.
	assert.Equal(t, "water", ParseReadableFluidID("water"))
}

func TestIsReadableID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"hyphenated item id", "gregtech-gt.metaitem.01-32741", true},
		{"hyphenated fluid id", "fluid-molten-iron", true},
		{"plain fluid name", "water", true},
		{"dotted fluid name", "fluid.molten.iron", true},
		{"raw item id with colons", "minecraft:stone:0", false},
		{"encoded id", EncodeItemID("gregtech:gt.metaitem.01:32741"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsReadableID(tt.id))
		})
	}
}
