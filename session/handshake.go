package session

import (
	"bytes"

	"github.com/ErikPelli/mcbot/protocol"
	"github.com/ErikPelli/mcbot/transport"
)

// SendHandshake writes the single Handshake packet and advances the
// engine's state to nextState unconditionally, matching the wire
// protocol's rule that the client commits to the next state the instant
// it sends this packet, with no server acknowledgement.
func (e *Engine) SendHandshake(conn *transport.Conn, protocolVersion int32, serverAddress string, serverPort uint16, nextState ConnectionState) error {
	var buf bytes.Buffer
	if _, err := protocol.VarInt(protocolVersion).WriteTo(&buf); err != nil {
		return err
	}
	if _, err := protocol.String(serverAddress).WriteTo(&buf); err != nil {
		return err
	}
	if _, err := protocol.UnsignedShort(serverPort).WriteTo(&buf); err != nil {
		return err
	}
	if _, err := protocol.VarInt(nextState).WriteTo(&buf); err != nil {
		return err
	}

	if err := conn.WritePacket(HandshakeServerboundHandshake, buf.Bytes()); err != nil {
		return err
	}
	e.advance(nextState)
	return nil
}
