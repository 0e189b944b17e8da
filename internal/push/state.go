// Package push carries real-time record changes over a WebSocket.
//
// The client half ([Client]) maintains a single long-lived connection to the
// server's push endpoint, applies incoming events straight to the local
// record store, and reconnects forever with capped exponential backoff. The
// server half ([Hub]) fans confirmed mutations out to every connected client.
package push

import "time"

// State is the client connection lifecycle phase.
type State int32

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	default:
		return "unknown"
	}
}

// reconnectDelay grows exponentially with the attempt number, starting at
// initial and never exceeding max. The attempt counter resets only once a
// connection is actually established, so a flapping link still backs off.
func reconnectDelay(initial, max time.Duration, attempt int) time.Duration {
	if attempt >= 63 {
		return max
	}
	delay := initial << uint(attempt)
	if delay <= 0 || delay > max {
		return max
	}
	return delay
}
