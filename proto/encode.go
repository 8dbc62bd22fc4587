package proto

import (
	"fmt"

	"github.com/makair/telemetry-go/wire"
)

// EncodeBody encodes msg's field list for its own (kind, version) pair,
// mirroring DecodeBody field for field. It is used by tests to verify
// round-trip fidelity and by callers that need to re-frame a message (for
// example a supervisory process relaying a ControlAck).
func EncodeBody(msg Message) ([]byte, error) {
	switch m := msg.(type) {
	case *BootMessage:
		return encodeBoot(m), nil
	case *StoppedMessage:
		return encodeStopped(m), nil
	case *DataSnapshot:
		return encodeDataSnapshot(m), nil
	case *MachineStateSnapshot:
		return encodeMachineState(m), nil
	case *AlarmTrap:
		return encodeAlarmTrap(m), nil
	case *ControlAckMessage:
		return encodeControlAck(m), nil
	case *EolTestSnapshot:
		return encodeEolTestSnapshot(m), nil
	case *FatalErrorMessage:
		return encodeFatalError(m), nil
	default:
		return nil, fmt.Errorf("proto: no encoder registered for %T", msg)
	}
}

func encodeBoot(m *BootMessage) []byte {
	w := wire.NewWriter(16 + len(m.FirmwareVersion) + len(m.DeviceID))
	w.String(m.FirmwareVersion)
	w.String(m.DeviceID)
	w.U32LE(m.Systick)
	w.U8(uint8(m.Mode))
	w.U8(m.Value128)
	return w.Bytes()
}

func encodeStopped(m *StoppedMessage) []byte {
	w := wire.NewWriter(32 + len(m.FirmwareVersion) + len(m.DeviceID))
	w.String(m.FirmwareVersion)
	w.String(m.DeviceID)
	w.U32LE(m.Systick)
	if m.Proto != V2 || m.Extended == nil {
		return w.Bytes()
	}
	ext := m.Extended
	w.U8(uint8(ext.VentilationMode))
	w.U16LE(ext.PeakPressureSetpoint)
	w.U16LE(ext.PlateauPressureSetpoint)
	w.U16LE(ext.PeepSetpoint)
	w.U16LE(ext.PreviousPeepSetpoint)
	w.U16LE(ext.PeepAlarmThreshold)
	w.U8(ext.RespiratoryRateSetpoint)
	w.U16LE(ext.TidalVolumeSetpoint)
	w.U8(ext.ExpiratoryTerm)
	w.Bool(ext.TriggerEnabled)
	w.U8(ext.TriggerOffset)
	w.EnumArray(fromAlarmCodes(ext.CurrentAlarmCodes))
	w.EnumArray(fromAlarmCodes(ext.PreviousAlarmCodes))
	w.U8(ext.PatientHeight)
	w.U8(uint8(ext.PatientGender))
	w.U8(uint8(ext.Language))
	return w.Bytes()
}

func encodeDataSnapshot(m *DataSnapshot) []byte {
	w := wire.NewWriter(24 + len(m.FirmwareVersion) + len(m.DeviceID))
	w.String(m.FirmwareVersion)
	w.String(m.DeviceID)
	w.U32LE(m.Systick)
	w.U8(m.Centile)
	w.U16LE(m.Pressure)
	w.U8(uint8(m.CyclePhase))
	if m.Proto == V1 {
		w.U8(uint8(m.SubPhase))
	}
	w.U8(m.BlowerValvePosition)
	w.U8(m.PatientValvePosition)
	w.U16LE(m.BlowerRPM)
	w.U8(m.BatteryLevel)
	return w.Bytes()
}

func encodeMachineState(m *MachineStateSnapshot) []byte {
	w := wire.NewWriter(40)
	w.U32LE(m.CycleCount)
	w.U16LE(m.PeakPressureSetpoint)
	w.U16LE(m.PlateauPressureSetpoint)
	w.U16LE(m.PeepSetpoint)
	w.U8(m.RespiratoryRateSetpoint)
	w.U16LE(m.TidalVolumeSetpoint)
	w.U16LE(m.PreviousPeakPressure)
	w.U16LE(m.PreviousPlateauPressure)
	w.U16LE(m.PreviousPeepPressure)
	w.EnumArray(fromAlarmCodes(m.CurrentAlarmCodes))
	w.EnumArray(fromAlarmCodes(m.PreviousAlarmCodes))
	if m.Proto != V2 || m.Extended == nil {
		return w.Bytes()
	}
	ext := m.Extended
	w.U8(uint8(ext.VentilationMode))
	w.U8(ext.PatientHeight)
	w.U8(uint8(ext.PatientGender))
	w.U8(uint8(ext.Language))
	return w.Bytes()
}

func encodeAlarmTrap(m *AlarmTrap) []byte {
	w := wire.NewWriter(24)
	w.U8(m.Centile)
	w.U16LE(m.Pressure)
	w.U8(uint8(m.CyclePhase))
	if m.Proto == V1 {
		w.U8(uint8(m.SubPhase))
	}
	w.U32LE(m.Cycle)
	w.U8(uint8(m.Code))
	w.U8(uint8(m.Priority))
	w.Bool(m.Triggered)
	w.U16LE(m.ExpectedValue)
	w.U16LE(m.MeasuredValue)
	w.U32LE(m.CyclesSinceTrigger)
	return w.Bytes()
}

func encodeControlAck(m *ControlAckMessage) []byte {
	w := wire.NewWriter(3)
	w.U8(uint8(m.Setting))
	w.U16LE(m.Value)
	return w.Bytes()
}

func encodeEolTestSnapshot(m *EolTestSnapshot) []byte {
	w := wire.NewWriter(3 + len(m.Message))
	w.U8(uint8(m.Step))
	w.U8(uint8(m.Content))
	w.String(m.Message)
	return w.Bytes()
}

func encodeFatalError(m *FatalErrorMessage) []byte {
	w := wire.NewWriter(2 + len(m.Detail))
	w.U8(uint8(m.ErrKind))
	w.String(m.Detail)
	return w.Bytes()
}

func fromAlarmCodes(codes []AlarmCode) []uint8 {
	if codes == nil {
		return nil
	}
	out := make([]uint8, len(codes))
	for i, c := range codes {
		out[i] = uint8(c)
	}
	return out
}
