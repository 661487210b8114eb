package bot

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ErikPelli/mcbot/protocol"
	"github.com/ErikPelli/mcbot/session"
)

func TestMovementKeyToggling(t *testing.T) {
	h := newTestHarness(t)
	b := h.bot

	b.MoveForward(true)
	b.MoveLeft(true)
	require.True(t, b.movementKeys[keyForward])
	require.True(t, b.movementKeys[keyLeft])

	b.MoveForward(false)
	require.False(t, b.movementKeys[keyForward])
	require.True(t, b.movementKeys[keyLeft])
}

func TestJumpRaisesYAndSendsPosition(t *testing.T) {
	h := newTestHarness(t)
	b := h.bot

	before := b.GetPosition().Y
	require.NoError(t, b.Jump())
	h.expect(t, session.PlayServerboundPlayerPosition)
	require.Equal(t, before+1.25, b.GetPosition().Y)
	require.False(t, b.GetPosition().OnGround)
}

func TestSneakAndSprintSendPlayerCommand(t *testing.T) {
	h := newTestHarness(t)
	b := h.bot

	require.NoError(t, b.Sneak(true))
	p := h.expect(t, session.PlayServerboundPlayerCommand)
	var entityID, action protocol.VarInt
	r := bytes.NewReader(p.data)
	_, err := entityID.ReadFrom(r)
	require.NoError(t, err)
	_, err = action.ReadFrom(r)
	require.NoError(t, err)
	require.Equal(t, protocol.VarInt(playerCommandStartSneaking), action)

	require.NoError(t, b.Sneak(false))
	h.expect(t, session.PlayServerboundPlayerCommand)

	require.NoError(t, b.Sprint(true))
	h.expect(t, session.PlayServerboundPlayerCommand)
}

func TestLookClampsPitch(t *testing.T) {
	h := newTestHarness(t)
	b := h.bot

	b.Look(720, 200)
	require.NotNil(t, b.targetYaw)
	require.Equal(t, float32(720), *b.targetYaw)
	require.Equal(t, float32(90), *b.targetPitch)
}

func TestLookRelativeWrapsYaw(t *testing.T) {
	h := newTestHarness(t)
	b := h.bot

	b.World.Player.Position.Yaw = 350
	b.World.Player.Position.Pitch = 0
	b.LookRelative(20, 0)

	require.NotNil(t, b.targetYaw)
	require.InDelta(t, 10, float64(*b.targetYaw), 0.001)
}

func TestChatSlashSendsCommandOtherwiseMessage(t *testing.T) {
	h := newTestHarness(t)
	b := h.bot

	require.NoError(t, b.Chat("/spawn"))
	p := h.expect(t, session.PlayServerboundChatCommand)
	var cmd protocol.String
	_, err := cmd.ReadFrom(bytes.NewReader(p.data))
	require.NoError(t, err)
	require.Equal(t, protocol.String("spawn"), cmd)

	require.NoError(t, b.Chat("hello"))
	p = h.expect(t, session.PlayServerboundChatMessage)
	var msg protocol.String
	_, err = msg.ReadFrom(bytes.NewReader(p.data))
	require.NoError(t, err)
	require.Equal(t, protocol.String("hello"), msg)
}

func TestRespawnOnlyWhenDead(t *testing.T) {
	h := newTestHarness(t)
	b := h.bot

	b.World.Player.Health = 20
	require.NoError(t, b.Respawn())
	h.expectNone(t)

	b.World.Player.Health = 0
	require.NoError(t, b.Respawn())
	h.expect(t, session.PlayServerboundClientStatus)
}

func TestSelectSlotRejectsOutOfRange(t *testing.T) {
	h := newTestHarness(t)
	b := h.bot

	require.NoError(t, b.SelectSlot(-1))
	h.expectNone(t)

	require.NoError(t, b.SelectSlot(9))
	h.expectNone(t)

	require.NoError(t, b.SelectSlot(3))
	h.expect(t, session.PlayServerboundHeldItemChange)
}
