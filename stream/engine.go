package stream

import (
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/makair/telemetry-go/frame"
	"github.com/makair/telemetry-go/proto"
)

const readChunkSize = 1024

// Engine is the pull-based streaming engine of §4.6: it wraps the framer in
// a loop over an abstract byte source and yields envelopes in strict order.
// It is single-threaded and cooperative (§5): a single owner calls Next
// repeatedly; there is no internal goroutine, lock, or work queue.
// Suspension happens only inside source.Read.
type Engine struct {
	source  io.Reader
	cfg     Config
	buf     []byte
	scratch []byte
	eof     bool
	fatal   *frame.Error
}

// New wraps source in an Engine tuned by cfg. A zero Config is replaced
// field-by-field with DefaultConfig's values where the caller left them
// unset.
func New(source io.Reader, cfg Config) *Engine {
	if cfg.BufferCapacity <= 0 {
		cfg.BufferCapacity = DefaultBufferCapacity
	}
	if !cfg.MinVersion.IsValid() {
		cfg.MinVersion = proto.V1
	}
	if !cfg.MaxVersion.IsValid() {
		cfg.MaxVersion = proto.V2
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Engine{
		source:  source,
		cfg:     cfg,
		scratch: make([]byte, readChunkSize),
	}
}

// Next pulls and returns the next envelope: a decoded message, a
// recoverable error event, or end-of-stream. After Next returns, the
// Engine's entire state is quiescent (§5) — Next may be called again
// immediately, including after an error envelope.
//
// Once Next has returned a fatal (I/O) error or a clean EOF envelope, every
// subsequent call returns EOF.
func (e *Engine) Next() Envelope {
	if e.fatal != nil {
		return Envelope{EOF: true}
	}

	for {
		if len(e.buf) > 0 {
			res := frame.ScanTelemetry(e.buf)
			e.buf = e.buf[res.Consumed:]

			switch res.Outcome {
			case frame.OutcomeMessage:
				version := res.Message.ProtocolVersion()
				if version < e.cfg.MinVersion || version > e.cfg.MaxVersion {
					err := &frame.Error{Kind: frame.ErrUnknownVersion, DeclaredVersion: version}
					e.cfg.Logger.Warn("telemetry frame outside accepted version range",
						zap.String("version", version.String()),
					)
					return Envelope{Err: err}
				}
				e.cfg.Logger.Debug("telemetry frame decoded",
					zap.String("kind", res.Message.MessageKind().String()),
					zap.String("version", version.String()),
				)
				return Envelope{Message: res.Message}
			case frame.OutcomeError:
				e.cfg.Logger.Warn("telemetry frame rejected",
					zap.String("error_kind", res.Err.Kind.String()),
					zap.String("category", res.Err.Category().String()),
				)
				return Envelope{Err: res.Err}
			case frame.OutcomeIncomplete:
				if overflow := e.checkOverflow(); overflow != nil {
					return Envelope{Err: overflow}
				}
				if e.eof {
					return e.drainOnEOF()
				}
				// fall through to read more bytes
			}
		} else if e.eof {
			return Envelope{EOF: true}
		}

		n, err := e.source.Read(e.scratch)
		if n > 0 {
			e.buf = append(e.buf, e.scratch[:n]...)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				e.eof = true
				continue
			}
			ioErr := &frame.Error{Kind: frame.ErrIO, Wrapped: err}
			e.cfg.Logger.Error("byte source failed", zap.Error(err))
			e.fatal = ioErr
			e.buf = nil
			return Envelope{Err: ioErr}
		}
	}
}

// checkOverflow reports a framing error and resyncs past the header if the
// buffer has grown past capacity without resolving into a frame: a length
// prefix this implausible is never trusted, per §5's resource policy.
func (e *Engine) checkOverflow() *frame.Error {
	if len(e.buf) <= e.cfg.BufferCapacity {
		return nil
	}
	e.cfg.Logger.Warn("frame exceeds buffer capacity, discarding",
		zap.Int("buffered", len(e.buf)),
		zap.Int("capacity", e.cfg.BufferCapacity),
	)
	skip := frame.HeaderSize
	if skip > len(e.buf) {
		skip = len(e.buf)
	}
	e.buf = e.buf[skip:]
	return &frame.Error{Kind: frame.ErrFraming}
}

// drainOnEOF is called once the source has signaled end-of-stream and the
// framer can make no further progress on what remains buffered. Leftover
// bytes mean a frame was only partially received; per §5 that is reported
// once as a short-input error, the internal buffer is discarded, and the
// stream terminates cleanly thereafter.
func (e *Engine) drainOnEOF() Envelope {
	if len(e.buf) == 0 {
		return Envelope{EOF: true}
	}
	needed := frame.MinFrameSize - len(e.buf)
	if needed < 1 {
		needed = 1
	}
	err := &frame.Error{Kind: frame.ErrShortInput, Needed: needed}
	e.buf = nil
	e.fatal = err
	return Envelope{Err: err}
}
