package bot

import (
	"bytes"
	"strings"
	"time"

	"github.com/ErikPelli/mcbot/protocol"
	"github.com/ErikPelli/mcbot/session"
	"github.com/ErikPelli/mcbot/world"
)

func (b *Bot) setMovementKey(key movementKey, start bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if start {
		b.movementKeys[key] = true
	} else {
		delete(b.movementKeys, key)
	}
}

// MoveForward starts or stops the forward movement input.
func (b *Bot) MoveForward(start bool) { b.setMovementKey(keyForward, start) }

// MoveBackward starts or stops the backward movement input.
func (b *Bot) MoveBackward(start bool) { b.setMovementKey(keyBackward, start) }

// MoveLeft starts or stops the strafe-left movement input.
func (b *Bot) MoveLeft(start bool) { b.setMovementKey(keyLeft, start) }

// MoveRight starts or stops the strafe-right movement input.
func (b *Bot) MoveRight(start bool) { b.setMovementKey(keyRight, start) }

// Jump raises the player by 1.25 blocks and immediately sends one
// position packet with on_ground=false.
func (b *Bot) Jump() error {
	b.mu.Lock()
	b.World.Player.Position.Y += 1.25
	b.World.Player.Position.OnGround = false
	var buf bytes.Buffer
	pos := b.World.Player.Position
	b.mu.Unlock()

	if _, err := protocol.Double(pos.X).WriteTo(&buf); err != nil {
		return err
	}
	if _, err := protocol.Double(pos.Y).WriteTo(&buf); err != nil {
		return err
	}
	if _, err := protocol.Double(pos.Z).WriteTo(&buf); err != nil {
		return err
	}
	if _, err := protocol.Boolean(pos.OnGround).WriteTo(&buf); err != nil {
		return err
	}
	return b.conn.WritePacket(session.PlayServerboundPlayerPosition, buf.Bytes())
}

// playerCommandAction ids for the Sneak/Sprint toggles.
const (
	playerCommandStartSneaking = 0
	playerCommandStopSneaking  = 1
	playerCommandStartSprinting = 3
	playerCommandStopSprinting  = 4
)

func (b *Bot) sendPlayerCommand(action int32) error {
	b.mu.Lock()
	entityID := b.World.Player.EntityID
	b.mu.Unlock()

	var buf bytes.Buffer
	if _, err := protocol.VarInt(entityID).WriteTo(&buf); err != nil {
		return err
	}
	if _, err := protocol.VarInt(action).WriteTo(&buf); err != nil {
		return err
	}
	if _, err := protocol.VarInt(0).WriteTo(&buf); err != nil {
		return err
	}
	return b.conn.WritePacket(session.PlayServerboundPlayerCommand, buf.Bytes())
}

// Sneak toggles the sneaking state and sends the matching Player
// Command action.
func (b *Bot) Sneak(start bool) error {
	b.mu.Lock()
	b.isSneaking = start
	b.mu.Unlock()

	action := int32(playerCommandStopSneaking)
	if start {
		action = playerCommandStartSneaking
	}
	return b.sendPlayerCommand(action)
}

// Sprint toggles the sprinting state and sends the matching Player
// Command action.
func (b *Bot) Sprint(start bool) error {
	b.mu.Lock()
	b.isSprinting = start
	b.mu.Unlock()

	action := int32(playerCommandStopSprinting)
	if start {
		action = playerCommandStartSprinting
	}
	return b.sendPlayerCommand(action)
}

// Look stores a yaw/pitch target for the next position tick, clamping
// pitch to [-90, 90].
func (b *Bot) Look(yaw, pitch float32) {
	clamped := world.ClampPitch(pitch)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.targetYaw = &yaw
	b.targetPitch = &clamped
}

// LookRelative applies a yaw/pitch delta to the current position and
// stores the result the same way Look does.
func (b *Bot) LookRelative(dyaw, dpitch float32) {
	b.mu.Lock()
	pos := b.World.Player.Position
	b.mu.Unlock()

	newYaw := world.WrapYaw(pos.Yaw + dyaw)
	newPitch := world.ClampPitch(pos.Pitch + dpitch)
	b.Look(newYaw, newPitch)
}

// Attack swings the main hand.
func (b *Bot) Attack() error {
	var buf bytes.Buffer
	if _, err := protocol.VarInt(0).WriteTo(&buf); err != nil {
		return err
	}
	return b.conn.WritePacket(session.PlayServerboundSwingArm, buf.Bytes())
}

// UseItem uses the held item in the main hand.
func (b *Bot) UseItem() error {
	var buf bytes.Buffer
	if _, err := protocol.VarInt(0).WriteTo(&buf); err != nil {
		return err
	}
	sequence := int32(time.Now().UnixMilli() % 1000000)
	if _, err := protocol.VarInt(sequence).WriteTo(&buf); err != nil {
		return err
	}
	if _, err := protocol.Float(0).WriteTo(&buf); err != nil {
		return err
	}
	if _, err := protocol.Float(0).WriteTo(&buf); err != nil {
		return err
	}
	return b.conn.WritePacket(session.PlayServerboundUseItem, buf.Bytes())
}

// SelectSlot changes the held hotbar slot; out-of-range slots are
// ignored.
func (b *Bot) SelectSlot(slot int) error {
	if slot < 0 || slot > 8 {
		return nil
	}
	var buf bytes.Buffer
	if _, err := protocol.Short(slot).WriteTo(&buf); err != nil {
		return err
	}
	return b.conn.WritePacket(session.PlayServerboundHeldItemChange, buf.Bytes())
}

// Chat sends a chat command (if message starts with "/") or a chat
// message otherwise.
func (b *Bot) Chat(message string) error {
	if strings.HasPrefix(message, "/") {
		var buf bytes.Buffer
		if _, err := protocol.String(message[1:]).WriteTo(&buf); err != nil {
			return err
		}
		return b.conn.WritePacket(session.PlayServerboundChatCommand, buf.Bytes())
	}

	var buf bytes.Buffer
	if _, err := protocol.String(message).WriteTo(&buf); err != nil {
		return err
	}
	timestamp := time.Now().UnixMilli()
	if _, err := protocol.Long(timestamp).WriteTo(&buf); err != nil {
		return err
	}
	if _, err := protocol.Long(0).WriteTo(&buf); err != nil {
		return err
	}
	if _, err := protocol.VarInt(0).WriteTo(&buf); err != nil {
		return err
	}
	return b.conn.WritePacket(session.PlayServerboundChatMessage, buf.Bytes())
}

// clientStatusActionRespawn is the Client Status action id for
// requesting respawn after death.
const clientStatusActionRespawn = 0

// Respawn requests respawn; only valid while health is at or below 0.
func (b *Bot) Respawn() error {
	b.mu.Lock()
	health := b.World.Player.Health
	b.mu.Unlock()
	if health > 0 {
		return nil
	}
	var buf bytes.Buffer
	if _, err := protocol.VarInt(clientStatusActionRespawn).WriteTo(&buf); err != nil {
		return err
	}
	return b.conn.WritePacket(session.PlayServerboundClientStatus, buf.Bytes())
}
