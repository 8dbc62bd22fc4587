package frame

import "hash/crc32"

// crcTable is the standard CRC-32/ISO-HDLC table: polynomial 0xEDB88320,
// reflected input/output, which is exactly hash/crc32.IEEETable. §4.4 names
// this algorithm by its well-known name; see DESIGN.md for why this module
// uses the standard library's table rather than hand-rolling one.
var crcTable = crc32.IEEETable

// Checksum computes the CRC-32/ISO-HDLC checksum over data in one pass,
// matching init 0xFFFFFFFF / final XOR 0xFFFFFFFF (crc32.Checksum already
// applies both).
func Checksum(data []byte) uint32 {
	return crc32.Checksum(data, crcTable)
}

// Updater accumulates a CRC-32/ISO-HDLC checksum incrementally over
// successive writes. The framer does not use it: it calls Checksum once
// over the covered region after the frame has been delimited.
type Updater struct {
	crc uint32
}

// NewUpdater returns an Updater primed for a fresh checksum.
func NewUpdater() *Updater {
	return &Updater{}
}

// Write feeds more bytes into the running checksum.
func (u *Updater) Write(p []byte) {
	u.crc = crc32.Update(u.crc, crcTable, p)
}

// Sum returns the checksum of everything written so far.
func (u *Updater) Sum() uint32 {
	return u.crc
}
