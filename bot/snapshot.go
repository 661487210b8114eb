package bot

import (
	"github.com/ErikPelli/mcbot/protocol"
	"github.com/ErikPelli/mcbot/world"
)

// VisibleChunk is one entry of VisibleChunks: a loaded chunk's
// coordinate plus coarse metadata, without exposing the full
// world.ChunkData internals.
type VisibleChunk struct {
	X, Z            int32
	SectionCount    int
	HeightmapOpaque bool
}

// GetPosition returns the local player's current position.
func (b *Bot) GetPosition() world.Position {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.World.Player.Position
}

// GetHealth returns the local player's current health.
func (b *Bot) GetHealth() float32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.World.Player.Health
}

// GetFood returns the local player's current food level.
func (b *Bot) GetFood() int32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.World.Player.Food
}

// GetPlayerState returns a copy of the local player's full state.
func (b *Bot) GetPlayerState() world.PlayerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.World.Player
}

// StateSnapshot is a read-only copy of the bot's player, world and
// entity state for an external observer to poll, the Go counterpart of
// get_state_dict() in the reference implementation.
type StateSnapshot struct {
	Player            world.PlayerState
	SpawnPosition     protocol.PackedPosition
	TimeOfDay         int32
	Weather           string
	LoadedChunksCount int
	EntitiesCount     int
	VisibleChunks     []VisibleChunk
}

// Snapshot returns the current StateSnapshot, using a 3-chunk visibility
// radius to match the reference's default.
func (b *Bot) Snapshot() StateSnapshot {
	b.mu.Lock()
	player := b.World.Player
	spawn := b.World.SpawnPosition
	timeOfDay := b.World.TimeOfDay
	weather := b.World.Weather
	b.mu.Unlock()

	return StateSnapshot{
		Player:            player,
		SpawnPosition:     spawn,
		TimeOfDay:         timeOfDay,
		Weather:           weather,
		LoadedChunksCount: len(b.World.VisibleChunks()),
		EntitiesCount:     b.World.EntityCount(),
		VisibleChunks:     b.VisibleChunks(defaultSnapshotRadius),
	}
}

const defaultSnapshotRadius = 3

// Running reports whether a session is currently active.
func (b *Bot) Running() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.running
}

// ChunkAt returns the chunk containing the given world block
// coordinates, or nil if not loaded.
func (b *Bot) ChunkAt(x, z int32) *world.ChunkData {
	return b.World.ChunkAt(x>>4, z>>4)
}

// VisibleChunks returns every loaded chunk within radius (in chunk
// columns) of the player's current chunk.
func (b *Bot) VisibleChunks(radius int32) []VisibleChunk {
	pos := b.GetPosition()
	playerChunkX := int32(pos.X) >> 4
	playerChunkZ := int32(pos.Z) >> 4

	var visible []VisibleChunk
	for _, coord := range b.World.VisibleChunks() {
		if abs32(coord.X-playerChunkX) > radius || abs32(coord.Z-playerChunkZ) > radius {
			continue
		}
		chunk := b.World.ChunkAt(coord.X, coord.Z)
		if chunk == nil {
			continue
		}
		visible = append(visible, VisibleChunk{
			X:               coord.X,
			Z:               coord.Z,
			SectionCount:    len(chunk.Sections),
			HeightmapOpaque: chunk.HeightmapOpaque,
		})
	}
	return visible
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
