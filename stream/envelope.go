// Package stream implements the pull-based streaming engine of §4.6: it
// wraps an abstract byte source, drives the frame scanner, and yields a
// uniform sequence of envelopes — each either a decoded message, a
// recoverable error event, or end-of-stream.
package stream

import (
	"github.com/makair/telemetry-go/frame"
	"github.com/makair/telemetry-go/proto"
)

// Envelope is the one-shot value the engine yields per iteration. Exactly
// one of Message or Err is set unless EOF is true, in which case both are
// nil: the stream has ended. A fatal end is reported first as its own Err
// envelope (Category() == frame.CategoryTransport for an I/O failure), and
// every envelope after it is EOF.
type Envelope struct {
	Message proto.Message
	Err     *frame.Error
	EOF     bool
}

// IsMessage reports whether this envelope carries a successfully decoded
// message.
func (e Envelope) IsMessage() bool { return e.Message != nil }

// IsError reports whether this envelope carries a recoverable or fatal
// error event.
func (e Envelope) IsError() bool { return e.Err != nil }

// Category forwards the envelope's error classification, or the zero
// Category if this envelope carries no error.
func (e Envelope) Category() frame.Category {
	if e.Err == nil {
		return frame.CategoryCorruptedFrame
	}
	return e.Err.Category()
}
