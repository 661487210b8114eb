package bot

import "time"

// Config is the subset of bot configuration the core cares about; a
// host application owns everything else (HTTP/WebSocket façade, CLI
// flags).
type Config struct {
	Host            string
	Port            uint16
	Username        string
	ViewDistance    int8
	AutoReconnect   bool
	ReconnectDelay  time.Duration
	ProtocolVersion int32
	DialTimeout     time.Duration
}

// DefaultConfig mirrors the reference defaults: localhost:25565,
// "PythonBot", auto-reconnect every 5 seconds.
func DefaultConfig() Config {
	return Config{
		Host:            "localhost",
		Port:            25565,
		Username:        "PythonBot",
		ViewDistance:    8,
		AutoReconnect:   true,
		ReconnectDelay:  5 * time.Second,
		ProtocolVersion: 770,
		DialTimeout:     10 * time.Second,
	}
}
