package frame

import (
	"bytes"
	"errors"

	"github.com/makair/telemetry-go/proto"
	"github.com/makair/telemetry-go/wire"
)

// Outcome classifies what a scan found at the front of a buffer.
type Outcome int

const (
	// OutcomeMessage means a complete, CRC-valid frame was decoded.
	OutcomeMessage Outcome = iota
	// OutcomeError means a frame-shaped region was found but rejected
	// (bad CRC, unknown kind/version, footer mismatch, invalid field).
	// The caller resyncs by discarding Consumed bytes.
	OutcomeError
	// OutcomeIncomplete means no frame was decoded at the front of the
	// buffer: either the frame there is cut short, or Consumed leading
	// bytes were dropped as not starting a frame. The caller discards
	// Consumed bytes and scans the rest again.
	OutcomeIncomplete
)

// Result is what a single scan call found.
type Result struct {
	Outcome Outcome
	Message proto.Message
	Err     *Error

	// Consumed is how many bytes of the input buffer the caller should
	// discard before the next call. For OutcomeIncomplete it is the
	// number of leading bytes known not to start a frame; the rest of the
	// buffer must be kept for the next call.
	Consumed int
}

// ScanTelemetry looks for one MCU-to-host telemetry frame at the front of
// buf. See scan for the resync contract.
func ScanTelemetry(buf []byte) Result {
	return scan(buf, TelemetryHeader, TelemetryFooter)
}

// ScanControl looks for one host-to-MCU control frame at the front of buf.
// See scan for the resync contract.
func ScanControl(buf []byte) Result {
	return scan(buf, ControlHeader, ControlFooter)
}

// scan finds the next frame bounded by header/footer at the front of buf.
// It never looks past the first header candidate: on success or on a
// frame-local error it reports Consumed bytes reaching no further than the
// end of that one frame, so the caller drives it in a loop (§4.3, §9) rather than scan
// consuming the whole buffer in one call.
//
// scan re-derives everything from buf on every call; it keeps no state
// across calls, mirroring the teacher transport's own reparse-from-front
// read loop (see DESIGN.md).
func scan(buf []byte, header, footer [HeaderSize]byte) Result {
	offset := bytes.IndexByte(buf, header[0])
	if offset == -1 {
		return Result{Outcome: OutcomeIncomplete, Consumed: len(buf)}
	}
	if len(buf)-offset < HeaderSize {
		return Result{Outcome: OutcomeIncomplete, Consumed: offset}
	}
	if !bytes.Equal(buf[offset:offset+HeaderSize], header[:]) {
		// The candidate byte was a false positive for this sentinel;
		// drop it and let the next call re-scan from offset+1.
		return Result{Outcome: OutcomeIncomplete, Consumed: offset + 1}
	}
	return decodeFrameAt(buf, offset, header, footer)
}

// decodeFrameAt decodes the frame whose header sentinel starts at
// buf[offset:], given the header has already been confirmed to match.
func decodeFrameAt(buf []byte, offset int, header, footer [HeaderSize]byte) Result {
	rest := buf[offset+HeaderSize:]
	r := wire.NewReader(rest)

	versionTag, err := r.U8()
	if err != nil {
		return incompleteFrom(offset)
	}
	kindTag, err := r.U8()
	if err != nil {
		return incompleteFrom(offset)
	}

	version := proto.Version(versionTag)
	kind := proto.Kind(kindTag)

	if !version.IsValid() {
		return resyncError(offset, &Error{
			Kind:            ErrUnknownVersion,
			DeclaredVersion: version,
		})
	}
	if !kind.IsKnown() || !kind.SupportsVersion(version) {
		return resyncError(offset, &Error{
			Kind:            ErrUnknownKind,
			DeclaredKind:    kind,
			DeclaredVersion: version,
		})
	}

	msg, err := proto.DecodeBody(r, kind, version)
	if err != nil {
		var shortErr *wire.ShortInputError
		if errors.As(err, &shortErr) {
			return incompleteFrom(offset)
		}
		var enumErr *wire.InvalidEnumError
		if errors.As(err, &enumErr) {
			return resyncError(offset, &Error{
				Kind:    ErrInvalidEnum,
				Field:   enumErr.Field,
				Tag:     enumErr.Tag,
				Wrapped: err,
			})
		}
		if errors.Is(err, wire.ErrInvalidUTF8) {
			return resyncError(offset, &Error{Kind: ErrInvalidUTF8, Wrapped: err})
		}
		return resyncError(offset, &Error{Kind: ErrFraming, Wrapped: err})
	}

	// Footer + CRC32 follow immediately after the body.
	tail := r.Bytes()
	if len(tail) < FooterSize+CRCSize {
		return incompleteFrom(offset)
	}
	if !bytes.Equal(tail[:FooterSize], footer[:]) {
		return resyncError(offset, &Error{Kind: ErrFraming, DeclaredKind: kind, DeclaredVersion: version})
	}
	observed := le32(tail[FooterSize : FooterSize+CRCSize])

	frameLen := HeaderSize + r.Pos() + FooterSize + CRCSize
	if frameLen > MaxFrameSize {
		return resyncError(offset, &Error{Kind: ErrFraming, DeclaredKind: kind, DeclaredVersion: version})
	}
	covered := buf[offset+HeaderSize : offset+HeaderSize+r.Pos()+FooterSize]
	expected := Checksum(covered)
	if observed != expected {
		return resyncError(offset, &Error{
			Kind:         ErrBadCRC,
			ExpectedCRC:  expected,
			ObservedCRC:  observed,
			DeclaredKind: kind,
		})
	}

	return Result{
		Outcome:  OutcomeMessage,
		Message:  msg,
		Consumed: offset + frameLen,
	}
}

// incompleteFrom reports that the frame starting at offset cannot yet be
// decoded; the caller must keep everything from offset onward and read
// more bytes. Only bytes strictly before offset are dropped.
func incompleteFrom(offset int) Result {
	return Result{Outcome: OutcomeIncomplete, Consumed: offset}
}

// resyncError reports a frame-local error found at offset. Per the
// conservative resync policy (§4.3, §7), only the header's length is
// skipped, never the whole frame-shaped region: a corrupted length or
// footer can't be trusted to say how big the bogus frame really was.
func resyncError(offset int, e *Error) Result {
	return Result{Outcome: OutcomeError, Err: e, Consumed: offset + HeaderSize}
}

func le32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
