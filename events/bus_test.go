package events

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmitInvokesHandlersInRegistrationOrder(t *testing.T) {
	b := New(nil)
	var order []int
	b.OnHealth(func(HealthEvent) { order = append(order, 1) })
	b.OnHealth(func(HealthEvent) { order = append(order, 2) })
	b.OnHealth(func(HealthEvent) { order = append(order, 3) })

	b.EmitHealth(HealthEvent{Health: 10})
	require.Equal(t, []int{1, 2, 3}, order)
}

func TestPanicInOneHandlerDoesNotStopLaterHandlers(t *testing.T) {
	b := New(nil)
	var secondRan bool
	b.OnDeath(func(DeathEvent) { panic("boom") })
	b.OnDeath(func(DeathEvent) { secondRan = true })

	require.NotPanics(t, func() { b.EmitDeath(DeathEvent{}) })
	require.True(t, secondRan)
}

func TestOnErrorCallbackReceivesRecoveredValue(t *testing.T) {
	var gotKind string
	var gotValue any
	b := New(func(kind string, recovered any) {
		gotKind = kind
		gotValue = recovered
	})
	b.OnJoin(func(JoinEvent) { panic("nope") })

	b.EmitJoin(JoinEvent{})
	require.Equal(t, "join", gotKind)
	require.Equal(t, "nope", gotValue)
}

func TestNilBusEmitIsNoop(t *testing.T) {
	var b *Bus
	require.NotPanics(t, func() {
		b.EmitSpawn(SpawnEvent{})
		b.EmitDisconnect(DisconnectEvent{Reason: "closed"})
	})
}
