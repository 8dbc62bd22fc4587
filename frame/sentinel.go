// Package frame implements the MakAir telemetry frame envelope: fixed
// header/footer sentinels, a CRC-32/ISO-HDLC trailer, and the
// scan/lock/body/footer state machine (§4.3) that locates frames within an
// arbitrary byte stream and resynchronizes after corruption.
package frame

// HeaderSize, VersionSize, KindSize, and FooterSize are the fixed-size
// regions of every frame; Body is variable length and CRCSize trails the
// footer.
const (
	HeaderSize  = 4
	VersionSize = 1
	KindSize    = 1
	FooterSize  = 4
	CRCSize     = 4

	// MinFrameSize is the smallest possible frame: header + version + kind
	// + footer + CRC, with a zero-length body.
	MinFrameSize = HeaderSize + VersionSize + KindSize + FooterSize + CRCSize
)

// TelemetryHeader and TelemetryFooter are the fixed sentinels that bound an
// MCU-to-host telemetry frame. The header bytes are taken verbatim from the
// example pattern in the spec (§6.1); the footer is a distinct pattern
// chosen so neither sentinel can be mistaken for the other. Both are
// firmware contracts — see DESIGN.md for the Open Question this resolves.
var (
	TelemetryHeader = [HeaderSize]byte{0x54, 0x3A, 0x01, 0x05}
	TelemetryFooter = [FooterSize]byte{0x0D, 0x0A, 0x0D, 0x0A}

	// ControlHeader and ControlFooter bound a host-to-MCU control frame,
	// distinct from both telemetry sentinels (§4.5, §6.1).
	ControlHeader = [HeaderSize]byte{0x43, 0x54, 0x52, 0x4C}
	ControlFooter = [FooterSize]byte{0x0A, 0x0D, 0x0A, 0x0D}
)

// MaxFrameSize bounds the largest frame this module will accept (§5
// resource policy). A frame whose declared body would exceed this is a
// framing error, not a short-input condition.
const MaxFrameSize = 4096
