// Package world holds the bot's live view of the server-authoritative
// world: the local player, remote entities, and loaded chunk metadata.
// It is written to from the bot's single receive goroutine and read via
// snapshot from anywhere else, so its exported methods are safe for
// concurrent use behind a single RWMutex rather than a sync.Map, since
// readers vastly outnumber the one writer.
package world

import (
	"math"
	"sync"

	"github.com/ErikPelli/mcbot/protocol"
)

// Position is the six numeric fields that describe a located,
// oriented entity: world coordinates plus facing.
type Position struct {
	X, Y, Z    float64
	Yaw, Pitch float32
	OnGround   bool
}

// ClampPitch restricts pitch to [-90, 90], the range every client-
// initiated look mutation must respect.
func ClampPitch(pitch float32) float32 {
	if pitch > 90 {
		return 90
	}
	if pitch < -90 {
		return -90
	}
	return pitch
}

// WrapYaw normalizes yaw into [0, 360).
func WrapYaw(yaw float32) float32 {
	yaw = float32(math.Mod(float64(yaw), 360))
	if yaw < 0 {
		yaw += 360
	}
	return yaw
}

// PlayerState is the local player's identity, position and vitals.
type PlayerState struct {
	EntityID    int32
	UUID        protocol.UUID
	Username    string
	Position    Position
	Health      float32
	Food        int32
	Saturation  float32
	Gamemode    int32
	Dimension   string
	IsHardcore  bool
}

// Entity is a remote entity tracked from Spawn Entity to Remove
// Entities.
type Entity struct {
	EntityID   int32
	UUID       protocol.UUID
	EntityType int32
	X, Y, Z    float64
	Yaw, Pitch int8
	VX, VY, VZ int16
}

// ChunkSection is the coarse metadata retained from a paletted
// container: block ids themselves are never materialised.
type ChunkSection struct {
	BlockCount    int16
	BitsPerEntry  uint8
	Palette       []int32
}

// ChunkCoord keys loaded chunks by their (cx, cz) column.
type ChunkCoord struct {
	X, Z int32
}

// ChunkData is one loaded column: its sections keyed by section_y, plus
// a placeholder heightmap flag.
type ChunkData struct {
	X, Z            int32
	Sections        map[int32]*ChunkSection
	HeightmapOpaque bool
}

// BlockChange is one entry of the bounded block-update ring.
type BlockChange struct {
	Position protocol.PackedPosition
	BlockID  int32
}

const (
	blockChangeRingLimit = 1000
	blockChangeRingTrim  = 500
)

// State is the bot's live world view: loaded chunks, tracked entities,
// environment fields, and the bounded block-change ring.
type State struct {
	mu sync.RWMutex

	Player PlayerState

	loadedChunks map[ChunkCoord]*ChunkData
	entities     map[int32]*Entity
	removedIDs   map[int32]bool
	blockChanges []BlockChange

	SpawnPosition protocol.PackedPosition
	TimeOfDay     int32
	Weather       string
	Difficulty    int32
	WorldHeight   int32
	MinY          int32
}

// NewState returns a State with the 1.21.x default vertical bounds and
// the "clear" weather default.
func NewState() *State {
	return &State{
		loadedChunks: make(map[ChunkCoord]*ChunkData),
		entities:     make(map[int32]*Entity),
		removedIDs:   make(map[int32]bool),
		Weather:      "clear",
		WorldHeight:  384,
		MinY:         -64,
	}
}

// UpsertChunk stores or replaces the chunk at (cx, cz); at most one
// entry exists per coordinate.
func (s *State) UpsertChunk(chunk *ChunkData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadedChunks[ChunkCoord{X: chunk.X, Z: chunk.Z}] = chunk
}

// RemoveChunk evicts the chunk at (cx, cz), a no-op if absent.
func (s *State) RemoveChunk(cx, cz int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.loadedChunks, ChunkCoord{X: cx, Z: cz})
}

// ChunkAt returns the chunk at (cx, cz), or nil if not loaded.
func (s *State) ChunkAt(cx, cz int32) *ChunkData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedChunks[ChunkCoord{X: cx, Z: cz}]
}

// VisibleChunks returns every currently loaded chunk coordinate.
func (s *State) VisibleChunks() []ChunkCoord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ChunkCoord, 0, len(s.loadedChunks))
	for c := range s.loadedChunks {
		out = append(out, c)
	}
	return out
}

// UpsertEntity inserts or replaces the tracked entity; once an id has
// been removed within this session it is never resurrected.
func (s *State) UpsertEntity(e *Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.removedIDs[e.EntityID] {
		return
	}
	s.entities[e.EntityID] = e
}

// RemoveEntity deletes the tracked entity and marks its id as
// permanently retired for this session.
func (s *State) RemoveEntity(id int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entities, id)
	s.removedIDs[id] = true
}

// EntityCount returns the number of currently tracked entities.
func (s *State) EntityCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// EntityByID returns the tracked entity, or nil if unknown.
func (s *State) EntityByID(id int32) *Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entities[id]
}

// ApplyRelativeMove adds a short/4096-scaled delta to a known entity's
// position; unknown entity ids are silently ignored, matching the
// lenient handling every other dispatch handler applies to stale ids.
func (s *State) ApplyRelativeMove(id int32, dx, dy, dz int16) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entities[id]
	if !ok {
		return
	}
	e.X += float64(dx) / 4096
	e.Y += float64(dy) / 4096
	e.Z += float64(dz) / 4096
}

// AppendBlockChange records one block update, trimming the ring to its
// most recent 500 entries once it exceeds 1000.
func (s *State) AppendBlockChange(change BlockChange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blockChanges = append(s.blockChanges, change)
	if len(s.blockChanges) > blockChangeRingLimit {
		trimmed := make([]BlockChange, blockChangeRingTrim)
		copy(trimmed, s.blockChanges[len(s.blockChanges)-blockChangeRingTrim:])
		s.blockChanges = trimmed
	}
}

// BlockChanges returns a copy of the current block-change ring.
func (s *State) BlockChanges() []BlockChange {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]BlockChange, len(s.blockChanges))
	copy(out, s.blockChanges)
	return out
}
