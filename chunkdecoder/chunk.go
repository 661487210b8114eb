// Package chunkdecoder turns a ChunkDataAndUpdateLight payload into
// coarse ChunkSection metadata without materialising actual block ids:
// it walks each section's paletted containers (blocks, then biomes)
// just far enough to know how many bytes to skip.
package chunkdecoder

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ErikPelli/mcbot/protocol"
	"github.com/ErikPelli/mcbot/world"
)

// ErrTruncatedSection is returned when a section's paletted container
// cannot be parsed further; the caller is expected to treat this as
// lenient termination of section parsing for the chunk, not a failed
// packet.
var ErrTruncatedSection = fmt.Errorf("chunkdecoder: truncated section data")

// Decode parses the sections of a chunk payload (the bytes already
// sliced out by data_size) into a map keyed by absolute section_y,
// starting at minY/16 and covering worldHeight/16 sections. It never
// returns an error for a mid-chunk truncation: it stops and returns
// whatever sections were parsed so far, matching the reference client's
// "any decoding error ends section parsing for this chunk without
// failing the session" behavior.
func Decode(data []byte, worldHeight, minY int32) map[int32]*world.ChunkSection {
	sections := make(map[int32]*world.ChunkSection)

	numSections := worldHeight / 16
	sectionY := minY / 16

	r := bytes.NewReader(data)
	for i := int32(0); i < numSections; i++ {
		section, err := decodeSection(r)
		if err != nil {
			break
		}
		sections[sectionY+i] = section
	}
	return sections
}

func decodeSection(r *bytes.Reader) (*world.ChunkSection, error) {
	var blockCount protocol.Short
	if _, err := blockCount.ReadFrom(r); err != nil {
		return nil, ErrTruncatedSection
	}

	bitsPerEntry, err := r.ReadByte()
	if err != nil {
		return nil, ErrTruncatedSection
	}

	palette, err := decodePalettedContainer(r, bitsPerEntry, 8)
	if err != nil {
		return nil, err
	}

	biomeBits, err := r.ReadByte()
	if err != nil {
		return nil, ErrTruncatedSection
	}
	if _, err := decodePalettedContainer(r, biomeBits, 3); err != nil {
		return nil, err
	}

	return &world.ChunkSection{
		BlockCount:   int16(blockCount),
		BitsPerEntry: bitsPerEntry,
		Palette:      palette,
	}, nil
}

// decodePalettedContainer reads and discards one paletted container's
// data array, returning the palette entries read (for the blocks
// container; the biome container's palette is not retained by the
// caller). indirectMax is the inclusive bits_per_entry threshold below
// which the container uses an indirect (listed) palette rather than a
// direct one: 8 for blocks, 3 for biomes.
func decodePalettedContainer(r *bytes.Reader, bitsPerEntry byte, indirectMax byte) ([]int32, error) {
	switch {
	case bitsPerEntry == 0:
		var value protocol.VarInt
		if _, err := value.ReadFrom(r); err != nil {
			return nil, ErrTruncatedSection
		}
		if err := skipDataArray(r); err != nil {
			return nil, err
		}
		return []int32{int32(value)}, nil

	case bitsPerEntry <= indirectMax:
		var paletteLength protocol.VarInt
		if _, err := paletteLength.ReadFrom(r); err != nil {
			return nil, ErrTruncatedSection
		}
		palette := make([]int32, 0, paletteLength)
		for i := int32(0); i < int32(paletteLength); i++ {
			var entry protocol.VarInt
			if _, err := entry.ReadFrom(r); err != nil {
				return nil, ErrTruncatedSection
			}
			palette = append(palette, int32(entry))
		}
		if err := skipDataArray(r); err != nil {
			return nil, err
		}
		return palette, nil

	default:
		if err := skipDataArray(r); err != nil {
			return nil, err
		}
		return nil, nil
	}
}

// skipDataArray reads the VarInt long-count prefix and discards that
// many 8-byte longs without decoding them; bit-packed entries are never
// materialised.
func skipDataArray(r *bytes.Reader) error {
	var length protocol.VarInt
	if _, err := length.ReadFrom(r); err != nil {
		return ErrTruncatedSection
	}
	skip := int64(length) * 8
	if skip < 0 || skip > int64(r.Len()) {
		return ErrTruncatedSection
	}
	if _, err := r.Seek(skip, io.SeekCurrent); err != nil {
		return ErrTruncatedSection
	}
	return nil
}
