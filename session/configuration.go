package session

import (
	"bytes"

	"github.com/ErikPelli/mcbot/protocol"
	"github.com/ErikPelli/mcbot/transport"
)

// ClientInformation is the payload sent once on entering Configuration
// and re-sent whenever StartConfiguration reenters it from Play; both
// states accept the same wire shape in this codebase.
type ClientInformation struct {
	Locale              string
	ViewDistance         int8
	ChatMode             int32
	ChatColors           bool
	DisplayedSkinParts   uint8
	MainHand             int32
	TextFiltering        bool
	AllowServerListings  bool
	ParticleStatus       int32
}

// DefaultClientInformation mirrors the values used in the offline-join
// acceptance scenario: locale en_US, view distance 16.
func DefaultClientInformation() ClientInformation {
	return ClientInformation{
		Locale:              "en_US",
		ViewDistance:         16,
		ChatMode:             0,
		ChatColors:           true,
		DisplayedSkinParts:   0x7F,
		MainHand:             1,
		TextFiltering:        false,
		AllowServerListings:  true,
		ParticleStatus:       0,
	}
}

// SendClientInformation writes the serverbound ClientInformation packet.
func SendClientInformation(conn *transport.Conn, info ClientInformation) error {
	var buf bytes.Buffer
	if _, err := protocol.String(info.Locale).WriteTo(&buf); err != nil {
		return err
	}
	if _, err := protocol.Byte(info.ViewDistance).WriteTo(&buf); err != nil {
		return err
	}
	if _, err := protocol.VarInt(info.ChatMode).WriteTo(&buf); err != nil {
		return err
	}
	if _, err := protocol.Boolean(info.ChatColors).WriteTo(&buf); err != nil {
		return err
	}
	if _, err := protocol.UnsignedByte(info.DisplayedSkinParts).WriteTo(&buf); err != nil {
		return err
	}
	if _, err := protocol.VarInt(info.MainHand).WriteTo(&buf); err != nil {
		return err
	}
	if _, err := protocol.Boolean(info.TextFiltering).WriteTo(&buf); err != nil {
		return err
	}
	if _, err := protocol.Boolean(info.AllowServerListings).WriteTo(&buf); err != nil {
		return err
	}
	if _, err := protocol.VarInt(info.ParticleStatus).WriteTo(&buf); err != nil {
		return err
	}
	return conn.WritePacket(ConfigurationServerboundClientInformation, buf.Bytes())
}

// sendFinishAck writes the serverbound FinishAck packet (empty body) and
// advances state to Play.
func (e *Engine) sendFinishAck(conn *transport.Conn) error {
	if err := conn.WritePacket(ConfigurationServerboundFinishAck, nil); err != nil {
		return err
	}
	e.advance(StatePlay)
	return nil
}

// sendKnownPacks replies with an empty known-packs list (VarInt count 0).
func sendKnownPacks(conn *transport.Conn) error {
	var buf bytes.Buffer
	if _, err := protocol.VarInt(0).WriteTo(&buf); err != nil {
		return err
	}
	return conn.WritePacket(ConfigurationServerboundKnownPacks, buf.Bytes())
}

// resourcePackResponseAcceptedNotDownloaded is result code 3: accepted
// but not downloaded, the only response this codebase ever sends.
const resourcePackResponseAcceptedNotDownloaded int32 = 3

// HandleConfigurationPacket processes one clientbound packet received
// while in the Configuration state. onFeatureFlags, if non-nil, receives
// the raw feature identifier list from FeatureFlags purely for logging.
func (e *Engine) HandleConfigurationPacket(conn *transport.Conn, packetID int32, data []byte, onFeatureFlags func([]string)) error {
	r := bytes.NewReader(data)

	switch packetID {
	case ConfigurationClientboundPluginMessage:
		return nil

	case ConfigurationClientboundDisconnect:
		var reason protocol.String
		if _, err := reason.ReadFrom(r); err != nil {
			return err
		}
		return &ErrServerDisconnect{Reason: string(reason)}

	case ConfigurationClientboundFinish:
		return e.sendFinishAck(conn)

	case ConfigurationClientboundKeepAlive:
		var id protocol.Long
		if _, err := id.ReadFrom(r); err != nil {
			return err
		}
		var buf bytes.Buffer
		if _, err := id.WriteTo(&buf); err != nil {
			return err
		}
		return conn.WritePacket(ConfigurationServerboundKeepAlive, buf.Bytes())

	case ConfigurationClientboundRegistryData:
		return nil

	case ConfigurationClientboundResourcePackPush:
		var packID protocol.UUID
		if _, err := packID.ReadFrom(r); err != nil {
			return err
		}
		var url, hash protocol.String
		if _, err := url.ReadFrom(r); err != nil {
			return err
		}
		if _, err := hash.ReadFrom(r); err != nil {
			return err
		}
		var forced protocol.Boolean
		if _, err := forced.ReadFrom(r); err != nil {
			return err
		}

		var buf bytes.Buffer
		if _, err := packID.WriteTo(&buf); err != nil {
			return err
		}
		if _, err := protocol.VarInt(resourcePackResponseAcceptedNotDownloaded).WriteTo(&buf); err != nil {
			return err
		}
		return conn.WritePacket(ConfigurationServerboundResourcePackResponse, buf.Bytes())

	case ConfigurationClientboundFeatureFlags:
		var count protocol.VarInt
		if _, err := count.ReadFrom(r); err != nil {
			return err
		}
		flags := make([]string, 0, count)
		for i := int32(0); i < int32(count); i++ {
			var flag protocol.String
			if _, err := flag.ReadFrom(r); err != nil {
				return err
			}
			flags = append(flags, string(flag))
		}
		if onFeatureFlags != nil {
			onFeatureFlags(flags)
		}
		return nil

	case ConfigurationClientboundKnownPacks:
		return sendKnownPacks(conn)

	default:
		return nil
	}
}
