package stream

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/makair/telemetry-go/frame"
	"github.com/makair/telemetry-go/proto"
)

func buildFrame(t *testing.T, version proto.Version, msg proto.Message) []byte {
	t.Helper()
	body, err := proto.EncodeBody(msg)
	if err != nil {
		t.Fatalf("EncodeBody() error: %v", err)
	}
	covered := make([]byte, 0, frame.VersionSize+frame.KindSize+len(body)+frame.FooterSize)
	covered = append(covered, byte(version), byte(msg.MessageKind()))
	covered = append(covered, body...)
	covered = append(covered, frame.TelemetryFooter[:]...)
	crc := frame.Checksum(covered)

	out := make([]byte, 0, frame.HeaderSize+len(covered)+frame.CRCSize)
	out = append(out, frame.TelemetryHeader[:]...)
	out = append(out, covered...)
	out = append(out, byte(crc), byte(crc>>8), byte(crc>>16), byte(crc>>24))
	return out
}

func bootMessage() *proto.BootMessage {
	return &proto.BootMessage{
		Proto:           proto.V1,
		FirmwareVersion: "1.0.0",
		DeviceID:        "vent-01",
		Systick:         42,
		Mode:            proto.ModeProduction,
		Value128:        1,
	}
}

// chunkedReader yields the underlying bytes one small chunk at a time, to
// exercise the engine's ability to resume across partial reads.
type chunkedReader struct {
	data      []byte
	chunkSize int
	pos       int
}

func (r *chunkedReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := r.chunkSize
	if n > len(p) {
		n = len(p)
	}
	if r.pos+n > len(r.data) {
		n = len(r.data) - r.pos
	}
	copy(p, r.data[r.pos:r.pos+n])
	r.pos += n
	return n, nil
}

func TestEngineDecodesAcrossChunkedReads(t *testing.T) {
	msg := bootMessage()
	frameBytes := buildFrame(t, proto.V1, msg)

	src := &chunkedReader{data: frameBytes, chunkSize: 3}
	eng := New(src, DefaultConfig())

	env := eng.Next()
	if !env.IsMessage() {
		t.Fatalf("expected a message envelope, got err=%v eof=%v", env.Err, env.EOF)
	}
	got, ok := env.Message.(*proto.BootMessage)
	if !ok {
		t.Fatalf("message type = %T, want *proto.BootMessage", env.Message)
	}
	if got.DeviceID != msg.DeviceID {
		t.Fatalf("device id = %q, want %q", got.DeviceID, msg.DeviceID)
	}

	env = eng.Next()
	if !env.EOF {
		t.Fatalf("expected EOF after the single frame, got %+v", env)
	}
}

func TestEngineInterleavesMessagesAndErrors(t *testing.T) {
	good := buildFrame(t, proto.V1, bootMessage())
	bad := buildFrame(t, proto.V1, bootMessage())
	bad[len(bad)-1] ^= 0xFF // corrupt the CRC

	buf := append(append([]byte{}, good...), bad...)
	buf = append(buf, buildFrame(t, proto.V1, bootMessage())...)

	eng := New(bytes.NewReader(buf), DefaultConfig())

	env1 := eng.Next()
	if !env1.IsMessage() {
		t.Fatalf("first envelope: expected message, got %+v", env1)
	}

	env2 := eng.Next()
	if !env2.IsError() {
		t.Fatalf("second envelope: expected error, got %+v", env2)
	}
	if env2.Err.Kind != frame.ErrBadCRC {
		t.Fatalf("second envelope error kind = %v, want ErrBadCRC", env2.Err.Kind)
	}

	env3 := eng.Next()
	if !env3.IsMessage() {
		t.Fatalf("third envelope: expected message after error recovery, got %+v", env3)
	}

	env4 := eng.Next()
	if !env4.EOF {
		t.Fatalf("expected EOF, got %+v", env4)
	}
}

func TestEngineTruncationYieldsOneShortInputEnvelope(t *testing.T) {
	full := buildFrame(t, proto.V1, bootMessage())
	truncated := full[:len(full)-5]

	eng := New(bytes.NewReader(truncated), DefaultConfig())

	env := eng.Next()
	if !env.IsError() || env.Err.Kind != frame.ErrShortInput {
		t.Fatalf("expected short-input error, got %+v", env)
	}

	env = eng.Next()
	if !env.EOF {
		t.Fatalf("expected EOF after the short-input envelope, got %+v", env)
	}
}

type erroringSource struct{ err error }

func (s *erroringSource) Read([]byte) (int, error) { return 0, s.err }

func TestEngineIOErrorIsFatal(t *testing.T) {
	sourceErr := errors.New("device disconnected")
	eng := New(&erroringSource{err: sourceErr}, DefaultConfig())

	env := eng.Next()
	if !env.IsError() || env.Err.Kind != frame.ErrIO {
		t.Fatalf("expected ErrIO, got %+v", env)
	}
	if !errors.Is(env.Err, sourceErr) {
		t.Fatalf("expected wrapped source error, got %v", env.Err.Unwrap())
	}

	env = eng.Next()
	if !env.EOF {
		t.Fatalf("expected EOF after a fatal error, got %+v", env)
	}
}

func TestEngineResyncsPastNoise(t *testing.T) {
	noise := bytes.Repeat([]byte{0xAA}, 20)
	frameBytes := buildFrame(t, proto.V1, bootMessage())
	buf := append(noise, frameBytes...)

	eng := New(bytes.NewReader(buf), DefaultConfig())

	env := eng.Next()
	if !env.IsMessage() {
		t.Fatalf("expected message after resync, got %+v", env)
	}
}
