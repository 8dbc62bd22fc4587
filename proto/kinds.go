package proto

import "fmt"

// Kind is the 1-byte message kind tag carried by every telemetry frame.
type Kind uint8

const (
	KindBoot                 Kind = 0x01
	KindStoppedMessage       Kind = 0x02
	KindDataSnapshot         Kind = 0x03
	KindMachineStateSnapshot Kind = 0x04
	KindAlarmTrap            Kind = 0x05
	KindControlAck           Kind = 0x06
	KindEolTestSnapshot      Kind = 0x07 // v2 only
	KindFatalError           Kind = 0x08 // v2 only
)

// supportedVersions lists, for each kind, the protocol versions the wire
// schema defines a layout for. A kind tag paired with a version outside
// this set is unknown-kind-for-version: the version byte is authoritative
// and the frame is never fallback-decoded against another version's
// layout.
var supportedVersions = map[Kind]map[Version]bool{
	KindBoot:                 {V1: true, V2: true},
	KindStoppedMessage:       {V1: true, V2: true},
	KindDataSnapshot:         {V1: true, V2: true},
	KindMachineStateSnapshot: {V1: true, V2: true},
	KindAlarmTrap:            {V1: true, V2: true},
	KindControlAck:           {V1: true, V2: true},
	KindEolTestSnapshot:      {V2: true},
	KindFatalError:           {V2: true},
}

// SupportsVersion reports whether the wire schema defines a layout for k
// under the given protocol version.
func (k Kind) SupportsVersion(v Version) bool {
	versions, ok := supportedVersions[k]
	if !ok {
		return false
	}
	return versions[v]
}

// IsKnown reports whether k is an assigned message kind tag, independent of
// protocol version.
func (k Kind) IsKnown() bool {
	_, ok := supportedVersions[k]
	return ok
}

func (k Kind) String() string {
	switch k {
	case KindBoot:
		return "BootMessage"
	case KindStoppedMessage:
		return "StoppedMessage"
	case KindDataSnapshot:
		return "DataSnapshot"
	case KindMachineStateSnapshot:
		return "MachineStateSnapshot"
	case KindAlarmTrap:
		return "AlarmTrap"
	case KindControlAck:
		return "ControlAck"
	case KindEolTestSnapshot:
		return "EolTestSnapshot"
	case KindFatalError:
		return "FatalError"
	default:
		return fmt.Sprintf("unknown(0x%02x)", uint8(k))
	}
}

// Message is implemented by every decoded telemetry message.
type Message interface {
	// MessageKind returns the wire kind tag for this message.
	MessageKind() Kind
	// ProtocolVersion returns the protocol version the message was decoded
	// from (or will be encoded for).
	ProtocolVersion() Version
}
