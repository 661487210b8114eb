// Package events implements the bot's typed event fan-out. The
// reference implementation keyed subscribers by event name and passed
// handlers arbitrary positional/keyword arguments; this is replaced by
// one subscriber list per event kind, each carrying its own payload
// type, so dispatch never needs runtime introspection.
package events

import (
	"github.com/rs/zerolog/log"

	"github.com/ErikPelli/mcbot/world"
)

// JoinEvent fires once per session the first time a Play Login packet
// is handled.
type JoinEvent struct {
	Player world.PlayerState
}

// SpawnEvent fires once per session the first time a
// SynchronizePlayerPosition packet is handled.
type SpawnEvent struct {
	Position world.Position
}

// HealthEvent fires whenever SetHealth is handled.
type HealthEvent struct {
	Health float32
	Food   int32
}

// DeathEvent fires immediately after a HealthEvent whose Health is <= 0.
type DeathEvent struct{}

// DisconnectEvent fires each time a session ends, unless it ended
// because the context passed to Bot.Run was cancelled.
type DisconnectEvent struct {
	Reason string
}

// Bus is the bot's event fan-out: one registration-ordered subscriber
// list per kind. A nil *Bus is valid and emits to nobody, so a bot
// built without one still runs.
type Bus struct {
	onJoin       []func(JoinEvent)
	onSpawn      []func(SpawnEvent)
	onHealth     []func(HealthEvent)
	onDeath      []func(DeathEvent)
	onDisconnect []func(DisconnectEvent)

	onError func(kind string, recovered any)
}

// New returns an empty Bus. onError, if non-nil, is invoked whenever a
// handler panics; the panic is always recovered and later handlers in
// the same emission still run.
func New(onError func(kind string, recovered any)) *Bus {
	return &Bus{onError: onError}
}

func (b *Bus) OnJoin(h func(JoinEvent))             { b.onJoin = append(b.onJoin, h) }
func (b *Bus) OnSpawn(h func(SpawnEvent))            { b.onSpawn = append(b.onSpawn, h) }
func (b *Bus) OnHealth(h func(HealthEvent))          { b.onHealth = append(b.onHealth, h) }
func (b *Bus) OnDeath(h func(DeathEvent))             { b.onDeath = append(b.onDeath, h) }
func (b *Bus) OnDisconnect(h func(DisconnectEvent))  { b.onDisconnect = append(b.onDisconnect, h) }

func (b *Bus) EmitJoin(e JoinEvent) {
	if b == nil {
		return
	}
	for _, h := range b.onJoin {
		b.guard("join", func() { h(e) })
	}
}

func (b *Bus) EmitSpawn(e SpawnEvent) {
	if b == nil {
		return
	}
	for _, h := range b.onSpawn {
		b.guard("spawn", func() { h(e) })
	}
}

func (b *Bus) EmitHealth(e HealthEvent) {
	if b == nil {
		return
	}
	for _, h := range b.onHealth {
		b.guard("health", func() { h(e) })
	}
}

func (b *Bus) EmitDeath(e DeathEvent) {
	if b == nil {
		return
	}
	for _, h := range b.onDeath {
		b.guard("death", func() { h(e) })
	}
}

func (b *Bus) EmitDisconnect(e DisconnectEvent) {
	if b == nil {
		return
	}
	for _, h := range b.onDisconnect {
		b.guard("disconnect", func() { h(e) })
	}
}

// guard runs fn, recovering a panic so that one faulty handler never
// stops the rest of the emission from running.
func (b *Bus) guard(kind string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			if b.onError != nil {
				b.onError(kind, r)
			} else {
				log.Error().Str("kind", kind).Interface("recovered", r).Msg("event handler panicked")
			}
		}
	}()
	fn()
}
