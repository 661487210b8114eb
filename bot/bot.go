// Package bot drives the game loop on top of session, transport and
// world: it owns the receive loop, the packet dispatch table, the
// 20Hz position tick, the control surface exposed to a host
// application, and the event emissions the host observes.
package bot

import (
	"context"
	"errors"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ErikPelli/mcbot/events"
	"github.com/ErikPelli/mcbot/session"
	"github.com/ErikPelli/mcbot/transport"
	"github.com/ErikPelli/mcbot/world"
)

// receiveTimeout is the blocking-read deadline the reference
// implementation waits on before deciding whether a stall is fatal.
const receiveTimeout = 30 * time.Second

// movementKey names the four held movement inputs.
type movementKey string

const (
	keyForward  movementKey = "w"
	keyBackward movementKey = "s"
	keyLeft     movementKey = "a"
	keyRight    movementKey = "d"
)

// Bot is a single headless session against a Minecraft Java Edition
// server: protocol engine, world view, control surface and event bus.
type Bot struct {
	cfg    Config
	logger zerolog.Logger
	Events *events.Bus
	World  *world.State

	engine *session.Engine
	conn   *transport.Conn

	mu             sync.Mutex
	movementKeys   map[movementKey]bool
	isSneaking     bool
	isSprinting    bool
	targetYaw      *float32
	targetPitch    *float32
	joinedGame     bool
	spawnConfirmed bool
	chunkBatchSize int32
	running        bool

	tickCancel context.CancelFunc
	tickDone   chan struct{}
}

// New returns a Bot ready to Run.
func New(cfg Config, logger zerolog.Logger) *Bot {
	b := &Bot{
		cfg:          cfg,
		logger:       logger,
		World:        world.NewState(),
		movementKeys: make(map[movementKey]bool),
	}
	b.Events = events.New(func(kind string, recovered any) {
		logger.Error().Str("kind", kind).Interface("recovered", recovered).Msg("event handler panicked")
	})
	b.World.Player.Username = cfg.Username
	return b
}

// Run connects and drives the session until ctx is cancelled or the
// session ends without auto-reconnect configured. It is the idiomatic-Go
// replacement for the reference implementation's tail-recursive
// reconnect: a plain for loop, so no call stack accumulates across
// reconnects.
func (b *Bot) Run(ctx context.Context) error {
	for {
		err := b.runOnce(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		b.Events.EmitDisconnect(events.DisconnectEvent{Reason: errString(err)})

		if !b.cfg.AutoReconnect {
			return err
		}

		b.logger.Info().Dur("delay", b.cfg.ReconnectDelay).Msg("reconnecting")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(b.cfg.ReconnectDelay):
		}
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// runOnce performs one full connect-through-disconnect session.
func (b *Bot) runOnce(ctx context.Context) error {
	b.engine = session.NewEngine()
	b.joinedGame = false
	b.spawnConfirmed = false

	b.mu.Lock()
	b.running = true
	b.mu.Unlock()

	raw, err := net.DialTimeout("tcp", net.JoinHostPort(b.cfg.Host, strconv.Itoa(int(b.cfg.Port))), b.cfg.DialTimeout)
	if err != nil {
		return err
	}
	b.conn = transport.NewConn(raw)
	defer b.disconnect()

	b.logger.Info().Str("host", b.cfg.Host).Uint16("port", b.cfg.Port).Msg("connected")

	if err := b.engine.SendHandshake(b.conn, b.cfg.ProtocolVersion, b.cfg.Host, b.cfg.Port, session.StateLogin); err != nil {
		return err
	}
	if err := session.SendLoginStart(b.conn, b.cfg.Username); err != nil {
		return err
	}

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		_ = b.conn.SetReadDeadline(time.Now().Add(receiveTimeout))
		packetID, data, err := b.conn.ReadPacket()
		if err != nil {
			if isTimeout(err) {
				b.logger.Warn().Msg("receive timeout")
				if b.engine.State() == session.StatePlay {
					continue
				}
				return err
			}
			return err
		}

		if err := b.dispatch(packetID, data); err != nil {
			if isTerminal(err) {
				return err
			}
			b.logger.Debug().Err(err).Int32("packet_id", packetID).Str("state", b.engine.State().String()).Msg("error handling packet")
		}
	}
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// isTerminal reports whether err should end the session rather than
// simply being logged and dropped.
func isTerminal(err error) bool {
	if errors.Is(err, transport.ErrConnectionClosed) || errors.Is(err, transport.ErrMalformedFrame) {
		return true
	}
	var disconnectErr *session.ErrServerDisconnect
	if errors.As(err, &disconnectErr) {
		return true
	}
	return errors.Is(err, session.ErrEncryptionRequired)
}

// disconnect stops the position tick and closes the socket. It is safe
// to call multiple times.
func (b *Bot) disconnect() {
	b.mu.Lock()
	b.running = false
	b.mu.Unlock()
	b.stopTick()
	if b.conn != nil {
		_ = b.conn.Close()
	}
}

// Close ends the session immediately, from any goroutine.
func (b *Bot) Close() error {
	b.stopTick()
	if b.conn != nil {
		return b.conn.Close()
	}
	return nil
}

