package bot

import (
	"bytes"

	"github.com/ErikPelli/mcbot/events"
	"github.com/ErikPelli/mcbot/protocol"
	"github.com/ErikPelli/mcbot/session"
	"github.com/ErikPelli/mcbot/world"

	"github.com/ErikPelli/mcbot/chunkdecoder"
)

func (b *Bot) handleKeepAlive(r *bytes.Reader) error {
	var id protocol.Long
	if _, err := id.ReadFrom(r); err != nil {
		return readErrf("keep_alive_id", err)
	}

	var buf bytes.Buffer
	if _, err := id.WriteTo(&buf); err != nil {
		return err
	}
	return b.conn.WritePacket(session.PlayServerboundKeepAlive, buf.Bytes())
}

// teleportFlag bits decide relative (add) vs absolute (replace) for
// each of the five position fields.
const (
	teleportFlagX = 0x01
	teleportFlagY = 0x02
	teleportFlagZ = 0x04
	teleportFlagYaw   = 0x08
	teleportFlagPitch = 0x10
)

func (b *Bot) handleSynchronizePlayerPosition(r *bytes.Reader) error {
	var teleportID protocol.VarInt
	if _, err := teleportID.ReadFrom(r); err != nil {
		return readErrf("teleport_id", err)
	}
	var x, y, z, vx, vy, vz protocol.Double
	for _, f := range []*protocol.Double{&x, &y, &z, &vx, &vy, &vz} {
		if _, err := f.ReadFrom(r); err != nil {
			return readErrf("position", err)
		}
	}
	var yaw, pitch protocol.Float
	if _, err := yaw.ReadFrom(r); err != nil {
		return readErrf("yaw", err)
	}
	if _, err := pitch.ReadFrom(r); err != nil {
		return readErrf("pitch", err)
	}
	var flags protocol.Int
	if _, err := flags.ReadFrom(r); err != nil {
		return readErrf("flags", err)
	}

	b.mu.Lock()
	pos := &b.World.Player.Position
	applyAxis(&pos.X, float64(x), int32(flags), teleportFlagX)
	applyAxis(&pos.Y, float64(y), int32(flags), teleportFlagY)
	applyAxis(&pos.Z, float64(z), int32(flags), teleportFlagZ)
	applyAxisF32(&pos.Yaw, float32(yaw), int32(flags), teleportFlagYaw)
	applyAxisF32(&pos.Pitch, float32(pitch), int32(flags), teleportFlagPitch)
	snapshot := *pos
	firstSpawn := !b.spawnConfirmed
	b.spawnConfirmed = true

	// The confirm is written before b.mu is released, so the tick
	// goroutine cannot send the new position ahead of it.
	var confirmBuf bytes.Buffer
	_, _ = teleportID.WriteTo(&confirmBuf)
	err := b.conn.WritePacket(session.PlayServerboundConfirmTeleport, confirmBuf.Bytes())
	b.mu.Unlock()
	if err != nil {
		return err
	}

	if firstSpawn {
		b.Events.EmitSpawn(events.SpawnEvent{Position: snapshot})
	}

	b.startTickIfNeeded()
	return nil
}

func applyAxis(field *float64, value float64, flags int32, bit int32) {
	if flags&bit != 0 {
		*field += value
	} else {
		*field = value
	}
}

func applyAxisF32(field *float32, value float32, flags int32, bit int32) {
	if flags&bit != 0 {
		*field += value
	} else {
		*field = value
	}
}

func (b *Bot) handleSetHealth(r *bytes.Reader) error {
	var health protocol.Float
	if _, err := health.ReadFrom(r); err != nil {
		return readErrf("health", err)
	}
	var food protocol.VarInt
	if _, err := food.ReadFrom(r); err != nil {
		return readErrf("food", err)
	}
	var saturation protocol.Float
	if _, err := saturation.ReadFrom(r); err != nil {
		return readErrf("saturation", err)
	}

	b.mu.Lock()
	b.World.Player.Health = float32(health)
	b.World.Player.Food = int32(food)
	b.World.Player.Saturation = float32(saturation)
	b.mu.Unlock()

	b.Events.EmitHealth(events.HealthEvent{Health: float32(health), Food: int32(food)})
	if health <= 0 {
		b.Events.EmitDeath(events.DeathEvent{})
	}
	return nil
}

func (b *Bot) handleDisconnect(r *bytes.Reader) error {
	var reason protocol.String
	if _, err := reason.ReadFrom(r); err != nil {
		reason = "unknown"
	}
	return &session.ErrServerDisconnect{Reason: string(reason)}
}

func (b *Bot) handleLoginPlay(r *bytes.Reader) error {
	if b.joinedGame {
		return nil
	}

	var entityID protocol.Int
	if _, err := entityID.ReadFrom(r); err != nil {
		return readErrf("entity_id", err)
	}
	var hardcore protocol.Boolean
	if _, err := hardcore.ReadFrom(r); err != nil {
		return readErrf("is_hardcore", err)
	}

	b.joinedGame = true
	b.mu.Lock()
	b.World.Player.EntityID = int32(entityID)
	b.World.Player.IsHardcore = bool(hardcore)
	player := b.World.Player
	b.mu.Unlock()

	b.Events.EmitJoin(events.JoinEvent{Player: player})
	return nil
}

func (b *Bot) handleSetDefaultSpawnPosition(r *bytes.Reader) error {
	var pos protocol.PackedPosition
	if _, err := pos.ReadFrom(r); err != nil {
		return readErrf("spawn_position", err)
	}
	b.World.SpawnPosition = pos
	return nil
}

func (b *Bot) handleGameEvent(r *bytes.Reader) error {
	var eventID protocol.UnsignedByte
	if _, err := eventID.ReadFrom(r); err != nil {
		return readErrf("event_id", err)
	}
	var value protocol.Float
	if _, err := value.ReadFrom(r); err != nil {
		return readErrf("value", err)
	}

	b.mu.Lock()
	switch eventID {
	case 1:
		if value > 0 {
			b.World.Weather = "rain"
		} else {
			b.World.Weather = "clear"
		}
	case 3:
		b.World.Player.Gamemode = int32(value)
	}
	b.mu.Unlock()
	return nil
}

func (b *Bot) handleUpdateTime(r *bytes.Reader) error {
	var worldAge, timeOfDay protocol.Long
	if _, err := worldAge.ReadFrom(r); err != nil {
		return readErrf("world_age", err)
	}
	if _, err := timeOfDay.ReadFrom(r); err != nil {
		return readErrf("time_of_day", err)
	}

	t := int64(timeOfDay)
	if t < 0 {
		t = -t
	}
	b.World.TimeOfDay = int32(t % 24000)
	return nil
}

func (b *Bot) handleChunkData(r *bytes.Reader) error {
	var cx, cz protocol.Int
	if _, err := cx.ReadFrom(r); err != nil {
		return readErrf("chunk_x", err)
	}
	if _, err := cz.ReadFrom(r); err != nil {
		return readErrf("chunk_z", err)
	}

	chunk := &world.ChunkData{X: int32(cx), Z: int32(cz), Sections: map[int32]*world.ChunkSection{}}

	// Heightmap is skipped defensively: a single marker byte, non-zero
	// treated as opaque metadata.
	if marker, err := r.ReadByte(); err == nil {
		chunk.HeightmapOpaque = marker != 0
	}

	var dataSize protocol.VarInt
	if _, err := dataSize.ReadFrom(r); err == nil && dataSize >= 0 {
		buf := make([]byte, dataSize)
		if n, _ := r.Read(buf); n > 0 {
			chunk.Sections = chunkdecoder.Decode(buf[:n], b.World.WorldHeight, b.World.MinY)
		}
	}

	b.World.UpsertChunk(chunk)
	return nil
}

func (b *Bot) handleBlockUpdate(r *bytes.Reader) error {
	var pos protocol.PackedPosition
	if _, err := pos.ReadFrom(r); err != nil {
		return readErrf("position", err)
	}
	var blockID protocol.VarInt
	if _, err := blockID.ReadFrom(r); err != nil {
		return readErrf("block_id", err)
	}
	b.World.AppendBlockChange(world.BlockChange{Position: pos, BlockID: int32(blockID)})
	return nil
}

func (b *Bot) handleSpawnEntity(r *bytes.Reader) error {
	var entityID, entityType protocol.VarInt
	if _, err := entityID.ReadFrom(r); err != nil {
		return readErrf("entity_id", err)
	}
	var uuid protocol.UUID
	if _, err := uuid.ReadFrom(r); err != nil {
		return readErrf("uuid", err)
	}
	if _, err := entityType.ReadFrom(r); err != nil {
		return readErrf("entity_type", err)
	}
	var x, y, z protocol.Double
	if _, err := x.ReadFrom(r); err != nil {
		return readErrf("x", err)
	}
	if _, err := y.ReadFrom(r); err != nil {
		return readErrf("y", err)
	}
	if _, err := z.ReadFrom(r); err != nil {
		return readErrf("z", err)
	}

	b.World.UpsertEntity(&world.Entity{
		EntityID:   int32(entityID),
		UUID:       uuid,
		EntityType: int32(entityType),
		X:          float64(x),
		Y:          float64(y),
		Z:          float64(z),
	})
	return nil
}

func (b *Bot) handleRemoveEntities(r *bytes.Reader) error {
	var count protocol.VarInt
	if _, err := count.ReadFrom(r); err != nil {
		return readErrf("count", err)
	}
	for i := int32(0); i < int32(count); i++ {
		var entityID protocol.VarInt
		if _, err := entityID.ReadFrom(r); err != nil {
			return readErrf("entity_id", err)
		}
		b.World.RemoveEntity(int32(entityID))
	}
	return nil
}

func (b *Bot) handleUpdateEntityPosition(r *bytes.Reader) error {
	return b.applyEntityDelta(r)
}

func (b *Bot) handleUpdateEntityPositionAndRotation(r *bytes.Reader) error {
	return b.applyEntityDelta(r)
}

func (b *Bot) applyEntityDelta(r *bytes.Reader) error {
	var entityID protocol.VarInt
	if _, err := entityID.ReadFrom(r); err != nil {
		return readErrf("entity_id", err)
	}
	var dx, dy, dz protocol.Short
	if _, err := dx.ReadFrom(r); err != nil {
		return readErrf("dx", err)
	}
	if _, err := dy.ReadFrom(r); err != nil {
		return readErrf("dy", err)
	}
	if _, err := dz.ReadFrom(r); err != nil {
		return readErrf("dz", err)
	}
	b.World.ApplyRelativeMove(int32(entityID), int16(dx), int16(dy), int16(dz))
	return nil
}

func (b *Bot) handleUnloadChunk(r *bytes.Reader) error {
	// The wire order is z then x: chunk_z is read first, then chunk_x.
	var cz, cx protocol.Int
	if _, err := cz.ReadFrom(r); err != nil {
		return readErrf("chunk_z", err)
	}
	if _, err := cx.ReadFrom(r); err != nil {
		return readErrf("chunk_x", err)
	}
	b.World.RemoveChunk(int32(cx), int32(cz))
	return nil
}

func (b *Bot) handleStartConfiguration(r *bytes.Reader) error {
	if err := b.engine.HandleStartConfiguration(b.conn); err != nil {
		return err
	}
	return session.SendClientInformation(b.conn, b.clientInformation())
}

func (b *Bot) handlePing(r *bytes.Reader) error {
	var pingID protocol.Int
	if _, err := pingID.ReadFrom(r); err != nil {
		return readErrf("ping_id", err)
	}
	var buf bytes.Buffer
	if _, err := pingID.WriteTo(&buf); err != nil {
		return err
	}
	return b.conn.WritePacket(session.PlayServerboundPong, buf.Bytes())
}

func (b *Bot) handleSetCenterChunk(r *bytes.Reader) error {
	var cx, cz protocol.VarInt
	if _, err := cx.ReadFrom(r); err != nil {
		return readErrf("chunk_x", err)
	}
	if _, err := cz.ReadFrom(r); err != nil {
		return readErrf("chunk_z", err)
	}
	b.logger.Debug().Int32("x", int32(cx)).Int32("z", int32(cz)).Msg("center chunk set")
	return nil
}

func (b *Bot) handleChunkBatchStart(r *bytes.Reader) error {
	b.chunkBatchSize = 0
	return nil
}

func (b *Bot) handleChunkBatchFinished(r *bytes.Reader) error {
	var batchSize protocol.VarInt
	if _, err := batchSize.ReadFrom(r); err != nil {
		return readErrf("batch_size", err)
	}
	b.logger.Debug().Int32("batch_size", int32(batchSize)).Msg("chunk batch finished")
	return nil
}
