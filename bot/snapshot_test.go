package bot

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ErikPelli/mcbot/world"
)

func TestVisibleChunksFiltersByRadius(t *testing.T) {
	h := newTestHarness(t)
	b := h.bot

	b.World.Player.Position = world.Position{X: 0, Y: 64, Z: 0}
	b.World.UpsertChunk(&world.ChunkData{X: 0, Z: 0, Sections: map[int32]*world.ChunkSection{}})
	b.World.UpsertChunk(&world.ChunkData{X: 1, Z: 0, Sections: map[int32]*world.ChunkSection{}})
	b.World.UpsertChunk(&world.ChunkData{X: 5, Z: 5, Sections: map[int32]*world.ChunkSection{}})

	visible := b.VisibleChunks(1)
	require.Len(t, visible, 2)

	var coords []world.ChunkCoord
	for _, v := range visible {
		coords = append(coords, world.ChunkCoord{X: v.X, Z: v.Z})
	}
	require.Contains(t, coords, world.ChunkCoord{X: 0, Z: 0})
	require.Contains(t, coords, world.ChunkCoord{X: 1, Z: 0})
}

func TestGetPlayerStateReturnsSnapshot(t *testing.T) {
	h := newTestHarness(t)
	b := h.bot

	b.mu.Lock()
	b.World.Player.Health = 17
	b.mu.Unlock()

	state := b.GetPlayerState()
	require.Equal(t, float32(17), state.Health)
}

func TestSnapshotAggregatesPlayerWorldAndEntities(t *testing.T) {
	h := newTestHarness(t)
	b := h.bot

	b.mu.Lock()
	b.World.Player.Position = world.Position{X: 0, Y: 64, Z: 0}
	b.World.Player.Health = 20
	b.mu.Unlock()

	b.World.UpsertChunk(&world.ChunkData{X: 0, Z: 0, Sections: map[int32]*world.ChunkSection{}})
	b.World.UpsertEntity(&world.Entity{EntityID: 7})

	snap := b.Snapshot()
	require.Equal(t, float32(20), snap.Player.Health)
	require.Equal(t, 1, snap.LoadedChunksCount)
	require.Equal(t, 1, snap.EntitiesCount)
	require.Len(t, snap.VisibleChunks, 1)
}

func TestRunningReflectsLifecycle(t *testing.T) {
	h := newTestHarness(t)
	b := h.bot
	require.False(t, b.Running())

	b.mu.Lock()
	b.running = true
	b.mu.Unlock()
	require.True(t, b.Running())
}
