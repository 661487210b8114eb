package session

import (
	"bytes"
	"fmt"

	"github.com/ErikPelli/mcbot/protocol"
	"github.com/ErikPelli/mcbot/transport"
)

// ErrEncryptionRequired is returned when the server sends an
// EncryptionRequest packet; this codebase advertises an offline-mode
// profile only and never attempts a Mojang session-service join, so the
// session is always terminated here.
var ErrEncryptionRequired = fmt.Errorf("session: server requires online-mode authentication")

// ErrServerDisconnect wraps the reason string of a server-initiated
// disconnect at any state.
type ErrServerDisconnect struct {
	Reason string
}

func (e *ErrServerDisconnect) Error() string {
	return fmt.Sprintf("session: server disconnected: %s", e.Reason)
}

// LoginResult carries the identity fields the server hands back in
// LoginSuccess.
type LoginResult struct {
	UUID     protocol.UUID
	Username string
}

// SendLoginStart writes the serverbound LoginStart packet, deriving the
// offline-mode UUID from username deterministically.
func SendLoginStart(conn *transport.Conn, username string) error {
	var buf bytes.Buffer
	if _, err := protocol.String(username).WriteTo(&buf); err != nil {
		return err
	}
	playerUUID := protocol.OfflinePlayerUUID(username)
	if _, err := playerUUID.WriteTo(&buf); err != nil {
		return err
	}
	return conn.WritePacket(LoginServerboundLoginStart, buf.Bytes())
}

// sendLoginAcknowledged writes the serverbound LoginAcknowledged packet
// (an empty body) and advances state to Configuration.
func (e *Engine) sendLoginAcknowledged(conn *transport.Conn) error {
	if err := conn.WritePacket(LoginServerboundLoginAcknowledged, nil); err != nil {
		return err
	}
	e.advance(StateConfiguration)
	return nil
}

// HandleLoginPacket processes one clientbound packet received while in
// the Login state. err is an *ErrServerDisconnect or ErrEncryptionRequired
// once a terminal condition (disconnect, encryption request) has been
// hit; result is non-nil once LoginSuccess has been handled and
// LoginAcknowledged sent.
func (e *Engine) HandleLoginPacket(conn *transport.Conn, packetID int32, data []byte) (result *LoginResult, err error) {
	r := bytes.NewReader(data)

	switch packetID {
	case LoginClientboundDisconnect:
		var reason protocol.String
		if _, err := reason.ReadFrom(r); err != nil {
			return nil, err
		}
		return nil, &ErrServerDisconnect{Reason: string(reason)}

	case LoginClientboundEncryptionRequest:
		return nil, ErrEncryptionRequired

	case LoginClientboundSetCompression:
		var threshold protocol.VarInt
		if _, err := threshold.ReadFrom(r); err != nil {
			return nil, err
		}
		conn.SetCompressionThreshold(int(threshold))
		return nil, nil

	case LoginClientboundLoginSuccess:
		var playerUUID protocol.UUID
		if _, err := playerUUID.ReadFrom(r); err != nil {
			return nil, err
		}
		var username protocol.String
		if _, err := username.ReadFrom(r); err != nil {
			return nil, err
		}
		if err := e.sendLoginAcknowledged(conn); err != nil {
			return nil, err
		}
		return &LoginResult{UUID: playerUUID, Username: string(username)}, nil

	default:
		return nil, nil
	}
}
