package bot

import (
	"bytes"
	"context"
	"math"
	"time"

	"github.com/ErikPelli/mcbot/protocol"
	"github.com/ErikPelli/mcbot/session"
	"github.com/ErikPelli/mcbot/world"
)

const (
	tickPeriod       = 50 * time.Millisecond
	baseMovementSpeed = 4.317
	sprintMultiplier  = 1.3
	sneakMultiplier   = 0.3
)

// startTickIfNeeded launches the position tick goroutine the first time
// spawn is confirmed; later calls are no-ops while one is already
// running.
func (b *Bot) startTickIfNeeded() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.tickCancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	b.tickCancel = cancel
	b.tickDone = make(chan struct{})
	go b.tickLoop(ctx, b.tickDone)
}

// stopTick cancels the tick goroutine, if any, and waits for it to
// finish its teardown before returning.
func (b *Bot) stopTick() {
	b.mu.Lock()
	cancel := b.tickCancel
	done := b.tickDone
	b.tickCancel = nil
	b.tickDone = nil
	b.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (b *Bot) tickLoop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(tickPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := b.tick(); err != nil {
				b.logger.Error().Err(err).Msg("position update error")
			}
		}
	}
}

func (b *Bot) tick() error {
	b.mu.Lock()
	pos := &b.World.Player.Position

	if b.targetYaw != nil {
		pos.Yaw = *b.targetYaw
		b.targetYaw = nil
	}
	if b.targetPitch != nil {
		pos.Pitch = *b.targetPitch
		b.targetPitch = nil
	}

	if len(b.movementKeys) > 0 {
		speed := baseMovementSpeed * tickPeriod.Seconds()
		if b.isSprinting {
			speed *= sprintMultiplier
		}
		if b.isSneaking {
			speed *= sneakMultiplier
		}

		yawRad := float64(pos.Yaw) * math.Pi / 180
		var dx, dz float64

		if b.movementKeys[keyForward] {
			dx -= math.Sin(yawRad) * speed
			dz += math.Cos(yawRad) * speed
		}
		if b.movementKeys[keyBackward] {
			dx += math.Sin(yawRad) * speed
			dz -= math.Cos(yawRad) * speed
		}
		if b.movementKeys[keyLeft] {
			dx += math.Cos(yawRad) * speed
			dz += math.Sin(yawRad) * speed
		}
		if b.movementKeys[keyRight] {
			dx -= math.Cos(yawRad) * speed
			dz -= math.Sin(yawRad) * speed
		}

		pos.X += dx
		pos.Z += dz
	}

	snapshot := *pos
	state := b.engine.State()
	b.mu.Unlock()

	if state != session.StatePlay {
		return nil
	}
	return sendPlayerPositionAndRotation(b.conn, snapshot)
}

func sendPlayerPositionAndRotation(conn interface {
	WritePacket(int32, []byte) error
}, pos world.Position) error {
	var buf bytes.Buffer
	if _, err := protocol.Double(pos.X).WriteTo(&buf); err != nil {
		return err
	}
	if _, err := protocol.Double(pos.Y).WriteTo(&buf); err != nil {
		return err
	}
	if _, err := protocol.Double(pos.Z).WriteTo(&buf); err != nil {
		return err
	}
	if _, err := protocol.Float(pos.Yaw).WriteTo(&buf); err != nil {
		return err
	}
	if _, err := protocol.Float(pos.Pitch).WriteTo(&buf); err != nil {
		return err
	}
	if _, err := protocol.Boolean(pos.OnGround).WriteTo(&buf); err != nil {
		return err
	}
	return conn.WritePacket(session.PlayServerboundPlayerPositionRotation, buf.Bytes())
}
