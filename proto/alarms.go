package proto

// AlarmCode identifies a clinical or technical alarm condition. The full
// code registry is a firmware contract outside this module's scope
// (§9 Open Question); this module treats alarm codes as opaque bytes and
// only bounds how many a single frame may declare.
type AlarmCode uint8

// MaxAlarmCodes caps the number of alarm codes a single length-prefixed
// list may declare. The wire length prefix is one byte (max 255), so this
// is not a protection against an allocation bomb — it is a plausibility
// bound: no real alarm-code list is anywhere near 32 entries, so a prefix
// beyond it is itself a strong signal of a corrupted frame and is rejected
// during body decode rather than deferred until after CRC verification.
const MaxAlarmCodes = 32
