// Package session drives the Handshake -> Login -> Configuration -> Play
// connection state machine on top of transport.Conn: it owns the single
// state variable, the packet id tables for each state, and the
// serverbound packet constructors / clientbound readers needed to move
// through the handshake without yet interpreting Play packets (that is
// the bot package's job).
package session

import (
	"fmt"
	"sync/atomic"
)

// ConnectionState is the session's single state variable. It advances
// monotonically except for the one explicit backward edge from Play to
// Configuration.
type ConnectionState int32

const (
	StateHandshaking ConnectionState = 0
	StateStatus      ConnectionState = 1
	StateLogin       ConnectionState = 2
	StateConfiguration ConnectionState = 3
	StatePlay        ConnectionState = 4
)

func (s ConnectionState) String() string {
	switch s {
	case StateHandshaking:
		return "Handshaking"
	case StateStatus:
		return "Status"
	case StateLogin:
		return "Login"
	case StateConfiguration:
		return "Configuration"
	case StatePlay:
		return "Play"
	default:
		return fmt.Sprintf("ConnectionState(%d)", int32(s))
	}
}

// Engine holds the connection's single state variable; the transport it
// drives is passed to each method by the caller. It has no opinion on packet semantics beyond the state
// value itself; packet construction and interpretation live in the
// sibling files of this package and, for Play, in the bot package.
//
// state is read from the bot's tick goroutine concurrently with being
// written from the receive goroutine, so it is an atomic.Int32 rather
// than a plain field guarded by a mutex the two goroutines don't
// otherwise share.
type Engine struct {
	state atomic.Int32
}

// NewEngine returns an Engine starting in Handshaking, the only state a
// freshly opened connection can be in.
func NewEngine() *Engine {
	e := &Engine{}
	e.state.Store(int32(StateHandshaking))
	return e
}

// State returns the current connection state.
func (e *Engine) State() ConnectionState {
	return ConnectionState(e.state.Load())
}

// advance unconditionally sets the state variable. Callers are
// responsible for only calling it at points the state machine in
// spec allows (handshake, login success, configuration finish,
// start-configuration).
func (e *Engine) advance(next ConnectionState) {
	e.state.Store(int32(next))
}
