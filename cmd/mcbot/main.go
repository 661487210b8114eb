// Command mcbot connects a single headless session to a Minecraft Java
// Edition server and drives it from the command line: auto-reconnect,
// logged events, and an automatic respawn request on death.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/ErikPelli/mcbot/bot"
	"github.com/ErikPelli/mcbot/events"
)

func main() {
	cfg := bot.DefaultConfig()

	var port int
	var viewDistance int
	var verbose bool
	flag.StringVar(&cfg.Host, "host", cfg.Host, "server host")
	flag.IntVar(&port, "port", int(cfg.Port), "server port")
	flag.StringVar(&cfg.Username, "username", cfg.Username, "offline-mode username")
	flag.IntVar(&viewDistance, "view-distance", int(cfg.ViewDistance), "requested view distance, chunks")
	flag.BoolVar(&cfg.AutoReconnect, "reconnect", cfg.AutoReconnect, "reconnect automatically after disconnect")
	flag.DurationVar(&cfg.ReconnectDelay, "reconnect-delay", cfg.ReconnectDelay, "delay before a reconnect attempt")
	flag.Var((*protocolVersionFlag)(&cfg.ProtocolVersion), "protocol-version", "protocol version to advertise in the handshake")
	flag.BoolVar(&verbose, "verbose", false, "debug-level logging")
	flag.Parse()

	if port < 0 || port > 0xFFFF {
		fmt.Fprintf(os.Stderr, "mcbot: port %d out of range\n", port)
		os.Exit(2)
	}
	cfg.Port = uint16(port)
	if viewDistance < 0 || viewDistance > 0x7F {
		fmt.Fprintf(os.Stderr, "mcbot: view-distance %d out of range\n", viewDistance)
		os.Exit(2)
	}
	cfg.ViewDistance = int8(viewDistance)

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Str("username", cfg.Username).Logger()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	b := bot.New(cfg, logger)
	registerLogging(b, logger)

	if err := b.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error().Err(err).Msg("session ended")
		os.Exit(1)
	}
}

// registerLogging wires every bot event to a log line; a host embedding
// the bot package in something richer would subscribe its own handlers
// here instead.
func registerLogging(b *bot.Bot, logger zerolog.Logger) {
	b.Events.OnJoin(func(e events.JoinEvent) {
		logger.Info().Str("uuid", e.Player.UUID.String()).Msg("joined game")
	})
	b.Events.OnSpawn(func(e events.SpawnEvent) {
		logger.Info().
			Float64("x", e.Position.X).Float64("y", e.Position.Y).Float64("z", e.Position.Z).
			Msg("spawned")
	})
	b.Events.OnHealth(func(e events.HealthEvent) {
		logger.Debug().Float32("health", e.Health).Int32("food", e.Food).Msg("health update")
	})
	b.Events.OnDeath(func(events.DeathEvent) {
		logger.Warn().Msg("died, respawning")
		if err := b.Respawn(); err != nil {
			logger.Error().Err(err).Msg("respawn failed")
		}
	})
	b.Events.OnDisconnect(func(e events.DisconnectEvent) {
		logger.Warn().Str("reason", e.Reason).Msg("disconnected")
	})
}

// protocolVersionFlag adapts an int32 field to flag.Value so -protocol-version
// can be set without a separate string round trip.
type protocolVersionFlag int32

func (p *protocolVersionFlag) String() string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%d", int32(*p))
}

func (p *protocolVersionFlag) Set(s string) error {
	var v int
	if _, err := fmt.Sscanf(s, "%d", &v); err != nil {
		return fmt.Errorf("invalid protocol version %q: %w", s, err)
	}
	*p = protocolVersionFlag(v)
	return nil
}
