package frame

import (
	"errors"
	"fmt"

	"github.com/makair/telemetry-go/proto"
)

// ErrorKind is the frame-local error taxonomy of §4.7.
type ErrorKind int

const (
	// ErrShortInput means the buffer does not yet hold enough bytes to
	// finish the step in progress.
	ErrShortInput ErrorKind = iota
	// ErrBadCRC means the footer matched but the trailing CRC32 disagreed
	// with the computed checksum.
	ErrBadCRC
	// ErrInvalidEnum means a field held an unassigned enum tag.
	ErrInvalidEnum
	// ErrInvalidUTF8 means a length-prefixed string was not valid UTF-8.
	ErrInvalidUTF8
	// ErrUnknownKind means the kind byte is not an assigned tag, or is not
	// defined for the frame's declared protocol version.
	ErrUnknownKind
	// ErrUnknownVersion means the version byte is not 1 or 2.
	ErrUnknownVersion
	// ErrFraming means the header or footer sentinel did not match, or the
	// declared frame size exceeds MaxFrameSize.
	ErrFraming
	// ErrIO means the byte source itself failed; this is the only
	// stream-fatal kind, the rest are frame-local and recoverable.
	ErrIO
)

func (k ErrorKind) String() string {
	switch k {
	case ErrShortInput:
		return "short-input"
	case ErrBadCRC:
		return "bad-crc"
	case ErrInvalidEnum:
		return "invalid-enum"
	case ErrInvalidUTF8:
		return "invalid-utf8"
	case ErrUnknownKind:
		return "unknown-message-kind"
	case ErrUnknownVersion:
		return "unknown-protocol-version"
	case ErrFraming:
		return "framing"
	case ErrIO:
		return "io"
	default:
		return "unknown"
	}
}

// Category is the coarse classification §4.7 says the high-level envelope
// should expose to UI consumers.
type Category int

const (
	CategoryCorruptedFrame Category = iota
	CategoryProtocolViolation
	CategoryTransport
)

func (c Category) String() string {
	switch c {
	case CategoryCorruptedFrame:
		return "corrupted-frame"
	case CategoryProtocolViolation:
		return "protocol-violation"
	case CategoryTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// Error is the frame-local error value the framer and streaming engine
// emit. It always carries a Kind plus whichever context fields are
// meaningful for that kind.
type Error struct {
	Kind ErrorKind

	// Needed is set for ErrShortInput: how many additional bytes the
	// current step requires.
	Needed int

	// ExpectedCRC and ObservedCRC are set for ErrBadCRC.
	ExpectedCRC uint32
	ObservedCRC uint32

	// DeclaredKind is set for ErrBadCRC and ErrUnknownKind.
	DeclaredKind proto.Kind
	// DeclaredVersion is set for ErrUnknownKind and ErrUnknownVersion.
	DeclaredVersion proto.Version

	// Field and Tag are set for ErrInvalidEnum.
	Field string
	Tag   uint8

	// Wrapped carries the lower-level error that produced this one, if
	// any (for example the I/O error behind ErrIO, or the
	// *wire.InvalidEnumError behind ErrInvalidEnum).
	Wrapped error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrShortInput:
		return fmt.Sprintf("%s: need %d more byte(s)", e.Kind, e.Needed)
	case ErrBadCRC:
		return fmt.Sprintf("%s: kind=%s expected=%#08x observed=%#08x", e.Kind, e.DeclaredKind, e.ExpectedCRC, e.ObservedCRC)
	case ErrInvalidEnum:
		return fmt.Sprintf("%s: field=%s tag=%#02x", e.Kind, e.Field, e.Tag)
	case ErrUnknownKind:
		return fmt.Sprintf("%s: kind=%#02x version=%s", e.Kind, uint8(e.DeclaredKind), e.DeclaredVersion)
	case ErrUnknownVersion:
		return fmt.Sprintf("%s: version=%#02x", e.Kind, uint8(e.DeclaredVersion))
	case ErrIO:
		return fmt.Sprintf("%s: %v", e.Kind, e.Wrapped)
	default:
		if e.Wrapped != nil {
			return fmt.Sprintf("%s: %v", e.Kind, e.Wrapped)
		}
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error { return e.Wrapped }

// Category maps the error's Kind onto the coarse UI-facing classification
// of §4.7.
func (e *Error) Category() Category {
	switch e.Kind {
	case ErrShortInput, ErrBadCRC, ErrFraming:
		return CategoryCorruptedFrame
	case ErrInvalidEnum, ErrInvalidUTF8, ErrUnknownKind, ErrUnknownVersion:
		return CategoryProtocolViolation
	case ErrIO:
		return CategoryTransport
	default:
		return CategoryProtocolViolation
	}
}

// IsFatal reports whether this error should terminate the stream (§7):
// true only for I/O errors, the sole stream-fatal tier.
func (e *Error) IsFatal() bool { return e.Kind == ErrIO }

// Is lets errors.Is(err, &Error{Kind: ErrBadCRC}) style checks compare just
// the Kind, for callers that don't care about the context fields.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Kind == other.Kind
	}
	return false
}
