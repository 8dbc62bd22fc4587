// Package control implements the outbound, host-to-MCU control message
// encoder (§4.5): a setting identifier and a 16-bit value, framed with the
// control sentinels and trailing CRC32, mirroring the telemetry framer in
// the opposite direction. The CORE does not correlate a request with the
// ControlAck telemetry message that eventually answers it — the channel is
// independently framed in both directions.
package control

import (
	"github.com/makair/telemetry-go/frame"
	"github.com/makair/telemetry-go/proto"
)

// Encode builds a complete, CRC-valid control frame requesting that setting
// be applied with the given value. It always encodes protocol v2: control
// frames are host-originated and this module only ever emits the current
// generation.
func Encode(setting proto.SettingID, value uint16) []byte {
	body := make([]byte, 0, 3)
	body = append(body, byte(setting), byte(value), byte(value>>8))

	covered := make([]byte, 0, frame.VersionSize+frame.KindSize+len(body)+frame.FooterSize)
	covered = append(covered, byte(proto.V2), byte(proto.KindControlAck))
	covered = append(covered, body...)
	covered = append(covered, frame.ControlFooter[:]...)

	crc := frame.Checksum(covered)

	out := make([]byte, 0, frame.HeaderSize+len(covered)+frame.CRCSize)
	out = append(out, frame.ControlHeader[:]...)
	out = append(out, covered...)
	out = append(out, byte(crc), byte(crc>>8), byte(crc>>16), byte(crc>>24))
	return out
}
