package session

import "github.com/ErikPelli/mcbot/transport"

// HandleStartConfiguration implements the Play -> Configuration back
// edge: it replies with the configuration-acknowledge id this codebase
// uses (a known quirk — see DESIGN.md) and re-enters Configuration,
// after which the caller must re-send client-information.
func (e *Engine) HandleStartConfiguration(conn *transport.Conn) error {
	if err := conn.WritePacket(PlayServerboundConfigurationAck, nil); err != nil {
		return err
	}
	e.advance(StateConfiguration)
	return nil
}
