package session

import (
	"bytes"
	"net"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ErikPelli/mcbot/protocol"
	"github.com/ErikPelli/mcbot/transport"
)

func pipeConns(t *testing.T) (client, server *transport.Conn) {
	t.Helper()
	c, s := net.Pipe()
	t.Cleanup(func() { c.Close(); s.Close() })
	return transport.NewConn(c), transport.NewConn(s)
}

func TestSendHandshakeAdvancesState(t *testing.T) {
	client, server := pipeConns(t)
	engine := NewEngine()
	require.Equal(t, StateHandshaking, engine.State())

	done := make(chan error, 1)
	go func() { done <- engine.SendHandshake(client, 770, "localhost", 25565, StateLogin) }()

	id, data, err := server.ReadPacket()
	require.NoError(t, err)
	require.NoError(t, <-done)
	require.Equal(t, HandshakeServerboundHandshake, id)
	require.Equal(t, StateLogin, engine.State())

	r := bytes.NewReader(data)
	var version protocol.VarInt
	_, err = version.ReadFrom(r)
	require.NoError(t, err)
	require.EqualValues(t, 770, version)
}

func TestLoginSuccessSendsAcknowledgedAndAdvances(t *testing.T) {
	client, server := pipeConns(t)
	engine := NewEngine()

	var body bytes.Buffer
	playerUUID := protocol.OfflinePlayerUUID("TestBot")
	_, err := playerUUID.WriteTo(&body)
	require.NoError(t, err)
	_, err = protocol.String("TestBot").WriteTo(&body)
	require.NoError(t, err)

	resultCh := make(chan *LoginResult, 1)
	errCh := make(chan error, 1)
	go func() {
		result, err := engine.HandleLoginPacket(client, LoginClientboundLoginSuccess, body.Bytes())
		resultCh <- result
		errCh <- err
	}()

	id, _, err := server.ReadPacket()
	require.NoError(t, err)
	require.Equal(t, LoginServerboundLoginAcknowledged, id)
	require.NoError(t, <-errCh)
	result := <-resultCh
	require.NotNil(t, result)
	require.Equal(t, "TestBot", result.Username)
	require.Equal(t, StateConfiguration, engine.State())
}

func TestFinishConfigurationAdvancesToPlay(t *testing.T) {
	client, server := pipeConns(t)
	engine := NewEngine()

	errCh := make(chan error, 1)
	go func() {
		errCh <- engine.HandleConfigurationPacket(client, ConfigurationClientboundFinish, nil, nil)
	}()

	id, _, err := server.ReadPacket()
	require.NoError(t, err)
	require.Equal(t, ConfigurationServerboundFinishAck, id)
	require.NoError(t, <-errCh)
	require.Equal(t, StatePlay, engine.State())
}

func TestStartConfigurationResetsStateFromPlay(t *testing.T) {
	client, server := pipeConns(t)
	engine := NewEngine()
	engine.advance(StatePlay)

	errCh := make(chan error, 1)
	go func() { errCh <- engine.HandleStartConfiguration(client) }()

	id, _, err := server.ReadPacket()
	require.NoError(t, err)
	require.Equal(t, PlayServerboundConfigurationAck, id)
	require.NoError(t, <-errCh)
	require.Equal(t, StateConfiguration, engine.State())
}

func TestLoginDisconnectIsTerminal(t *testing.T) {
	client, _ := pipeConns(t)
	engine := NewEngine()

	var body bytes.Buffer
	_, err := protocol.String("banned").WriteTo(&body)
	require.NoError(t, err)

	_, err = engine.HandleLoginPacket(client, LoginClientboundDisconnect, body.Bytes())
	require.Error(t, err)
	var disconnectErr *ErrServerDisconnect
	require.ErrorAs(t, err, &disconnectErr)
	require.Equal(t, "banned", disconnectErr.Reason)
}

func TestEncryptionRequestIsRejected(t *testing.T) {
	client, _ := pipeConns(t)
	engine := NewEngine()

	_, err := engine.HandleLoginPacket(client, LoginClientboundEncryptionRequest, nil)
	require.ErrorIs(t, err, ErrEncryptionRequired)
}

func TestSetCompressionSetsThreshold(t *testing.T) {
	client, server := pipeConns(t)
	engine := NewEngine()

	var body bytes.Buffer
	_, err := protocol.VarInt(256).WriteTo(&body)
	require.NoError(t, err)

	_, err = engine.HandleLoginPacket(client, LoginClientboundSetCompression, body.Bytes())
	require.NoError(t, err)

	// No direct getter on Conn: a packet the client writes now must carry
	// the compressed-mode shape, which only a reader using the same
	// threshold decodes back to the original id and payload.
	server.SetCompressionThreshold(256)
	errCh := make(chan error, 1)
	go func() { errCh <- client.WritePacket(0x05, []byte{1, 2, 3}) }()

	id, data, err := server.ReadPacket()
	require.NoError(t, err)
	require.NoError(t, <-errCh)
	require.Equal(t, int32(0x05), id)
	require.Equal(t, []byte{1, 2, 3}, data)

	// A body at or above the threshold also encodes in compressed mode.
	frame, err := transport.EncodeFrame(0x00, bytes.Repeat([]byte{1}, 300), 256)
	require.NoError(t, err)
	require.NotEmpty(t, frame)
}

func TestConfigurationKeepAliveEcho(t *testing.T) {
	client, server := pipeConns(t)
	engine := NewEngine()

	var body bytes.Buffer
	_, err := protocol.Long(0x1122334455).WriteTo(&body)
	require.NoError(t, err)

	errCh := make(chan error, 1)
	go func() {
		errCh <- engine.HandleConfigurationPacket(client, ConfigurationClientboundKeepAlive, body.Bytes(), nil)
	}()

	id, data, err := server.ReadPacket()
	require.NoError(t, err)
	require.NoError(t, <-errCh)
	require.Equal(t, ConfigurationServerboundKeepAlive, id)

	var echoed protocol.Long
	_, err = echoed.ReadFrom(bytes.NewReader(data))
	require.NoError(t, err)
	require.EqualValues(t, 0x1122334455, echoed)
}

func TestConfigurationKnownPacksRepliesEmpty(t *testing.T) {
	client, server := pipeConns(t)
	engine := NewEngine()

	errCh := make(chan error, 1)
	go func() {
		errCh <- engine.HandleConfigurationPacket(client, ConfigurationClientboundKnownPacks, nil, nil)
	}()

	id, data, err := server.ReadPacket()
	require.NoError(t, err)
	require.NoError(t, <-errCh)
	require.Equal(t, ConfigurationServerboundKnownPacks, id)

	var count protocol.VarInt
	_, err = count.ReadFrom(bytes.NewReader(data))
	require.NoError(t, err)
	require.EqualValues(t, 0, count)
}

func TestConfigurationFeatureFlagsInvokesCallback(t *testing.T) {
	client, _ := pipeConns(t)
	engine := NewEngine()

	var body bytes.Buffer
	_, err := protocol.VarInt(2).WriteTo(&body)
	require.NoError(t, err)
	_, err = protocol.String("minecraft:vanilla").WriteTo(&body)
	require.NoError(t, err)
	_, err = protocol.String("minecraft:bundle").WriteTo(&body)
	require.NoError(t, err)

	var seen []string
	err = engine.HandleConfigurationPacket(client, ConfigurationClientboundFeatureFlags, body.Bytes(), func(flags []string) {
		seen = flags
	})
	require.NoError(t, err)
	require.Equal(t, []string{"minecraft:vanilla", "minecraft:bundle"}, seen)
}
