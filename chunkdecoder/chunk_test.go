package chunkdecoder

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ErikPelli/mcbot/protocol"
)

// writeSingleValueSection appends one section's bytes: block_count, bits_per_entry,
// the blocks paletted container, biome_bits, and the biomes paletted
// container, using a single-value (bits=0) palette for both so the
// helper can be reused to build a full multi-section chunk body.
func writeSingleValueSection(t *testing.T, buf *bytes.Buffer, blockCount int16, blockPaletteValue, biomePaletteValue int32) {
	t.Helper()
	_, err := protocol.Short(blockCount).WriteTo(buf)
	require.NoError(t, err)

	_, err = protocol.UnsignedByte(0).WriteTo(buf) // bits_per_entry = 0
	require.NoError(t, err)
	_, err = protocol.VarInt(blockPaletteValue).WriteTo(buf)
	require.NoError(t, err)
	_, err = protocol.VarInt(0).WriteTo(buf) // data_array_length = 0
	require.NoError(t, err)

	_, err = protocol.UnsignedByte(0).WriteTo(buf) // biome_bits = 0
	require.NoError(t, err)
	_, err = protocol.VarInt(biomePaletteValue).WriteTo(buf)
	require.NoError(t, err)
	_, err = protocol.VarInt(0).WriteTo(buf)
	require.NoError(t, err)
}

func TestDecodeSingleValuePalette(t *testing.T) {
	var buf bytes.Buffer
	writeSingleValueSection(t, &buf, 4096, 7, 0)

	sections := Decode(buf.Bytes(), 16, -64)
	require.Len(t, sections, 1)
	section := sections[-4]
	require.NotNil(t, section)
	require.EqualValues(t, 4096, section.BlockCount)
	require.EqualValues(t, 0, section.BitsPerEntry)
	require.Equal(t, []int32{7}, section.Palette)
}

func TestDecodeIndirectPalette(t *testing.T) {
	var buf bytes.Buffer
	_, err := protocol.Short(100).WriteTo(&buf)
	require.NoError(t, err)
	_, err = protocol.UnsignedByte(4).WriteTo(&buf) // bits_per_entry = 4 (<=8, indirect)
	require.NoError(t, err)
	_, err = protocol.VarInt(3).WriteTo(&buf) // palette length
	require.NoError(t, err)
	for _, v := range []int32{1, 2, 3} {
		_, err = protocol.VarInt(v).WriteTo(&buf)
		require.NoError(t, err)
	}
	_, err = protocol.VarInt(2).WriteTo(&buf) // data_array_length = 2 longs
	require.NoError(t, err)
	buf.Write(make([]byte, 16)) // 2 longs worth of packed data, skipped verbatim

	_, err = protocol.UnsignedByte(0).WriteTo(&buf) // biome_bits = 0
	require.NoError(t, err)
	_, err = protocol.VarInt(0).WriteTo(&buf)
	require.NoError(t, err)
	_, err = protocol.VarInt(0).WriteTo(&buf)
	require.NoError(t, err)

	sections := Decode(buf.Bytes(), 16, -64)
	section := sections[-4]
	require.NotNil(t, section)
	require.Equal(t, []int32{1, 2, 3}, section.Palette)
}

func TestDecodeDirectPalette(t *testing.T) {
	var buf bytes.Buffer
	_, err := protocol.Short(100).WriteTo(&buf)
	require.NoError(t, err)
	_, err = protocol.UnsignedByte(15).WriteTo(&buf) // bits_per_entry = 15 (>8, direct)
	require.NoError(t, err)
	_, err = protocol.VarInt(1).WriteTo(&buf) // data_array_length = 1 long
	require.NoError(t, err)
	buf.Write(make([]byte, 8))

	_, err = protocol.UnsignedByte(0).WriteTo(&buf)
	require.NoError(t, err)
	_, err = protocol.VarInt(0).WriteTo(&buf)
	require.NoError(t, err)
	_, err = protocol.VarInt(0).WriteTo(&buf)
	require.NoError(t, err)

	sections := Decode(buf.Bytes(), 16, -64)
	section := sections[-4]
	require.NotNil(t, section)
	require.EqualValues(t, 15, section.BitsPerEntry)
	require.Nil(t, section.Palette)
}

func TestDecodeMultipleSectionsAdvanceSectionY(t *testing.T) {
	var buf bytes.Buffer
	writeSingleValueSection(t, &buf, 0, 1, 0)
	writeSingleValueSection(t, &buf, 0, 2, 0)

	sections := Decode(buf.Bytes(), 32, -64)
	require.Len(t, sections, 2)
	require.Equal(t, []int32{1}, sections[-4].Palette)
	require.Equal(t, []int32{2}, sections[-3].Palette)
}

func TestDecodeTruncatedDataStopsLeniently(t *testing.T) {
	var buf bytes.Buffer
	writeSingleValueSection(t, &buf, 0, 1, 0)
	full := buf.Bytes()
	truncated := full[:len(full)-2]

	sections := Decode(truncated, 32, -64)
	require.Len(t, sections, 0)
}

func TestDecodeTooShortPayloadReturnsEmpty(t *testing.T) {
	sections := Decode([]byte{0, 1, 2}, 384, -64)
	require.Empty(t, sections)
}
