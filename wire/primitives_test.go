package wire

import (
	"errors"
	"testing"
)

func TestReaderIntegers(t *testing.T) {
	r := NewReader([]byte{0x2A, 0x34, 0x12, 0x78, 0x56, 0x34, 0x12})

	u8, err := r.U8()
	if err != nil || u8 != 0x2A {
		t.Fatalf("U8() = %v, %v", u8, err)
	}
	u16, err := r.U16LE()
	if err != nil || u16 != 0x1234 {
		t.Fatalf("U16LE() = %#x, %v", u16, err)
	}
	u32, err := r.U32LE()
	if err != nil || u32 != 0x12345678 {
		t.Fatalf("U32LE() = %#x, %v", u32, err)
	}
	if r.Remaining() != 0 {
		t.Fatalf("Remaining() = %d, want 0", r.Remaining())
	}
}

func TestReaderShortInput(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02})
	_, err := r.U32LE()
	if err == nil {
		t.Fatal("expected short input error")
	}
	var sie *ShortInputError
	if !errors.As(err, &sie) {
		t.Fatalf("expected *ShortInputError, got %T", err)
	}
	if sie.Needed != 2 {
		t.Fatalf("Needed = %d, want 2", sie.Needed)
	}
	if !errors.Is(err, ErrShortInput) {
		t.Fatal("errors.Is(err, ErrShortInput) = false")
	}
	// Failure must not advance the reader.
	if r.Remaining() != 2 {
		t.Fatalf("Remaining() after failed read = %d, want 2", r.Remaining())
	}
}

func TestReaderBool(t *testing.T) {
	r := NewReader([]byte{0x00, 0x01, 0xFF})
	for _, want := range []bool{false, true, true} {
		got, err := r.Bool()
		if err != nil || got != want {
			t.Fatalf("Bool() = %v, %v; want %v", got, err, want)
		}
	}
}

func TestReaderString(t *testing.T) {
	data := append([]byte{5}, []byte("hello")...)
	r := NewReader(data)
	s, err := r.String()
	if err != nil || s != "hello" {
		t.Fatalf("String() = %q, %v", s, err)
	}
}

func TestReaderStringInvalidUTF8(t *testing.T) {
	data := append([]byte{2}, 0xFF, 0xFE)
	r := NewReader(data)
	_, err := r.String()
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("String() err = %v, want ErrInvalidUTF8", err)
	}
}

func TestReaderByteArray(t *testing.T) {
	data := append([]byte{3}, 0x01, 0x02, 0x03)
	r := NewReader(data)
	b, err := r.ByteArray()
	if err != nil {
		t.Fatalf("ByteArray() error: %v", err)
	}
	if len(b) != 3 || b[0] != 1 || b[1] != 2 || b[2] != 3 {
		t.Fatalf("ByteArray() = %v", b)
	}
}

func TestReaderEnumArray(t *testing.T) {
	validate := func(tag uint8) bool { return tag == 1 || tag == 2 }
	data := append([]byte{2}, 1, 2)
	r := NewReader(data)
	tags, err := r.EnumArray("alarm_code", 32, validate)
	if err != nil {
		t.Fatalf("EnumArray() error: %v", err)
	}
	if len(tags) != 2 || tags[0] != 1 || tags[1] != 2 {
		t.Fatalf("EnumArray() = %v", tags)
	}
}

func TestReaderEnumArrayInvalidElement(t *testing.T) {
	validate := func(tag uint8) bool { return tag == 1 }
	data := append([]byte{1}, 9)
	r := NewReader(data)
	_, err := r.EnumArray("alarm_code", 32, validate)
	var iee *InvalidEnumError
	if !errors.As(err, &iee) {
		t.Fatalf("expected *InvalidEnumError, got %v", err)
	}
	if iee.Field != "alarm_code" || iee.Tag != 9 {
		t.Fatalf("InvalidEnumError = %+v", iee)
	}
}

func TestReaderEnumArrayCapEnforced(t *testing.T) {
	data := append([]byte{33}, make([]byte, 33)...)
	r := NewReader(data)
	_, err := r.EnumArray("alarm_code", 32, nil)
	if err == nil {
		t.Fatal("expected cap error for 33-element array with cap 32")
	}
}

func TestWriterReaderRoundTrip(t *testing.T) {
	w := NewWriter(0)
	w.U8(0x2A)
	w.U16LE(0x1234)
	w.U32LE(0x12345678)
	w.Bool(true)
	w.String("hi")
	w.ByteArray([]byte{1, 2, 3})
	w.EnumArray([]uint8{4, 5})

	r := NewReader(w.Bytes())
	if v, _ := r.U8(); v != 0x2A {
		t.Fatalf("U8 round trip = %#x", v)
	}
	if v, _ := r.U16LE(); v != 0x1234 {
		t.Fatalf("U16LE round trip = %#x", v)
	}
	if v, _ := r.U32LE(); v != 0x12345678 {
		t.Fatalf("U32LE round trip = %#x", v)
	}
	if v, _ := r.Bool(); v != true {
		t.Fatalf("Bool round trip = %v", v)
	}
	if v, _ := r.String(); v != "hi" {
		t.Fatalf("String round trip = %q", v)
	}
	if v, _ := r.ByteArray(); len(v) != 3 {
		t.Fatalf("ByteArray round trip = %v", v)
	}
	if v, _ := r.EnumArray("x", 0, nil); len(v) != 2 {
		t.Fatalf("EnumArray round trip = %v", v)
	}
	if r.Remaining() != 0 {
		t.Fatalf("Remaining() = %d, want 0", r.Remaining())
	}
}
