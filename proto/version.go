// Package proto defines the MakAir telemetry wire schema: the message
// kinds of protocol v1 and v2, their per-field version gating, and the
// enumerations transmitted as single-byte tags.
//
// Version gating is implemented as a per-field predicate evaluated at
// decode time (see decode.go), not as two parallel schemas, so the v1/v2
// difference for any given kind lives in one place.
package proto

import "fmt"

// Version is the 1-byte protocol version field present in every frame.
type Version uint8

const (
	// V1 is the original protocol generation.
	V1 Version = 1
	// V2 is the current protocol generation; a superset of V1's kinds,
	// with several kinds gaining additional fields.
	V2 Version = 2
)

// IsValid reports whether v is a recognized protocol version.
func (v Version) IsValid() bool {
	return v == V1 || v == V2
}

func (v Version) String() string {
	switch v {
	case V1:
		return "v1"
	case V2:
		return "v2"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(v))
	}
}
