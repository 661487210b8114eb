package bot

import (
	"bytes"
	"fmt"

	"github.com/ErikPelli/mcbot/session"
)

// dispatch routes one clientbound packet to its state-specific handler.
// Login and Configuration are handled almost entirely by the session
// package; Play packets are handled by this package's own table so
// world/player state mutation and event emission stay with the bot.
// A handler panic is recovered and returned as a non-terminal error.
func (b *Bot) dispatch(packetID int32, data []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("bot: handler for packet 0x%02X panicked: %v", packetID, r)
		}
	}()

	switch b.engine.State() {
	case session.StateLogin:
		result, err := b.engine.HandleLoginPacket(b.conn, packetID, data)
		if err != nil {
			return err
		}
		if result != nil {
			b.World.Player.UUID = result.UUID
			b.World.Player.Username = result.Username
			b.logger.Info().Str("username", result.Username).Str("uuid", result.UUID.String()).Msg("login success")
			return session.SendClientInformation(b.conn, b.clientInformation())
		}
		return nil

	case session.StateConfiguration:
		return b.engine.HandleConfigurationPacket(b.conn, packetID, data, func(flags []string) {
			b.logger.Debug().Strs("flags", flags).Msg("feature flags")
		})

	case session.StatePlay:
		return b.dispatchPlay(packetID, data)

	default:
		return nil
	}
}

func (b *Bot) clientInformation() session.ClientInformation {
	info := session.DefaultClientInformation()
	if b.cfg.ViewDistance != 0 {
		info.ViewDistance = b.cfg.ViewDistance
	}
	return info
}

// playHandler decodes and handles one Play-state clientbound packet.
type playHandler func(b *Bot, r *bytes.Reader) error

var playHandlers = map[int32]playHandler{
	session.PlayClientboundKeepAlive:                           (*Bot).handleKeepAlive,
	session.PlayClientboundSynchronizePlayerPosition:           (*Bot).handleSynchronizePlayerPosition,
	session.PlayClientboundSetHealth:                           (*Bot).handleSetHealth,
	session.PlayClientboundDisconnect:                          (*Bot).handleDisconnect,
	session.PlayClientboundLogin:                               (*Bot).handleLoginPlay,
	session.PlayClientboundSetDefaultSpawnPosition:             (*Bot).handleSetDefaultSpawnPosition,
	session.PlayClientboundGameEvent:                           (*Bot).handleGameEvent,
	session.PlayClientboundUpdateTime:                          (*Bot).handleUpdateTime,
	session.PlayClientboundChunkDataAndUpdateLight:             (*Bot).handleChunkData,
	session.PlayClientboundBlockUpdate:                         (*Bot).handleBlockUpdate,
	session.PlayClientboundSpawnEntity:                         (*Bot).handleSpawnEntity,
	session.PlayClientboundRemoveEntities:                      (*Bot).handleRemoveEntities,
	session.PlayClientboundUpdateEntityPosition:                (*Bot).handleUpdateEntityPosition,
	session.PlayClientboundUpdateEntityPositionAndRotation:     (*Bot).handleUpdateEntityPositionAndRotation,
	session.PlayClientboundUnloadChunk:                         (*Bot).handleUnloadChunk,
	session.PlayClientboundStartConfiguration:                  (*Bot).handleStartConfiguration,
	session.PlayClientboundPing:                                (*Bot).handlePing,
	session.PlayClientboundSetCenterChunk:                      (*Bot).handleSetCenterChunk,
	session.PlayClientboundChunkBatchStart:                     (*Bot).handleChunkBatchStart,
	session.PlayClientboundChunkBatchFinished:                  (*Bot).handleChunkBatchFinished,
}

func (b *Bot) dispatchPlay(packetID int32, data []byte) error {
	handler, ok := playHandlers[packetID]
	if !ok {
		return nil
	}
	return handler(b, bytes.NewReader(data))
}

// readErrf wraps a short-read error with which field failed to decode,
// matching the reference's lenient "log at debug, drop packet" policy
// for undersized Play bodies.
func readErrf(field string, err error) error {
	return fmt.Errorf("bot: decode %s: %w", field, err)
}
