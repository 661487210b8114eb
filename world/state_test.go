package world

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUpsertChunkSingleEntryPerCoordinate(t *testing.T) {
	s := NewState()
	s.UpsertChunk(&ChunkData{X: 1, Z: 2})
	s.UpsertChunk(&ChunkData{X: 1, Z: 2, HeightmapOpaque: true})

	require.Len(t, s.VisibleChunks(), 1)
	require.True(t, s.ChunkAt(1, 2).HeightmapOpaque)
}

func TestRemoveChunk(t *testing.T) {
	s := NewState()
	s.UpsertChunk(&ChunkData{X: 3, Z: 4})
	s.RemoveChunk(3, 4)
	require.Nil(t, s.ChunkAt(3, 4))
}

func TestEntityNeverResurrectedAfterRemoval(t *testing.T) {
	s := NewState()
	s.UpsertEntity(&Entity{EntityID: 7, X: 1})
	s.RemoveEntity(7)
	s.UpsertEntity(&Entity{EntityID: 7, X: 99})

	require.Nil(t, s.EntityByID(7))
}

func TestApplyRelativeMoveUnknownEntityIgnored(t *testing.T) {
	s := NewState()
	require.NotPanics(t, func() {
		s.ApplyRelativeMove(42, 100, 100, 100)
	})
	require.Nil(t, s.EntityByID(42))
}

func TestApplyRelativeMoveScalesByShortOver4096(t *testing.T) {
	s := NewState()
	s.UpsertEntity(&Entity{EntityID: 1, X: 10, Y: 64, Z: 20})
	s.ApplyRelativeMove(1, 4096, -8192, 2048)

	e := s.EntityByID(1)
	require.InDelta(t, 11.0, e.X, 1e-9)
	require.InDelta(t, 62.0, e.Y, 1e-9)
	require.InDelta(t, 20.5, e.Z, 1e-9)
}

func TestBlockChangeRingTrimsAt1000To500(t *testing.T) {
	s := NewState()
	for i := 0; i < 1001; i++ {
		s.AppendBlockChange(BlockChange{BlockID: int32(i)})
	}

	changes := s.BlockChanges()
	require.Len(t, changes, 500)
	require.Equal(t, int32(501), changes[0].BlockID)
	require.Equal(t, int32(1000), changes[len(changes)-1].BlockID)
}

func TestBlockChangeRingUntrimmedBelowLimit(t *testing.T) {
	s := NewState()
	for i := 0; i < 999; i++ {
		s.AppendBlockChange(BlockChange{BlockID: int32(i)})
	}
	require.Len(t, s.BlockChanges(), 999)
}

func TestClampPitch(t *testing.T) {
	require.EqualValues(t, 90, ClampPitch(120))
	require.EqualValues(t, -90, ClampPitch(-120))
	require.EqualValues(t, 45, ClampPitch(45))
}

func TestWrapYaw(t *testing.T) {
	require.InDelta(t, 10, WrapYaw(370), 1e-6)
	require.InDelta(t, 350, WrapYaw(-10), 1e-6)
	require.InDelta(t, 0, WrapYaw(360), 1e-6)
}
