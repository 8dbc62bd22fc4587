package proto

import (
	"fmt"

	"github.com/makair/telemetry-go/wire"
)

// DecodeBodyBytes decodes a frame body out of a plain byte slice, returning
// the number of bytes the schema actually consumed alongside the message.
// It is a convenience wrapper around DecodeBody for callers (and tests)
// that don't need to track a shared *wire.Reader across the header/footer
// framing themselves.
func DecodeBodyBytes(kind Kind, version Version, body []byte) (Message, int, error) {
	r := wire.NewReader(body)
	msg, err := DecodeBody(r, kind, version)
	if err != nil {
		return nil, 0, err
	}
	return msg, r.Pos(), nil
}

// DecodeBody decodes a frame body from r, which must be positioned at the
// first body byte (immediately after the kind byte). kind and version must
// already be known-valid (callers look them up via Kind.IsKnown and
// Kind.SupportsVersion before calling DecodeBody); DecodeBody itself only
// decodes the field list for (kind, version), leaving r positioned at the
// first byte after the body so the caller can locate the footer that
// follows. Fields are self-describing (length-prefixed), so the body's end
// is discovered by decoding, not declared up front.
func DecodeBody(r *wire.Reader, kind Kind, version Version) (Message, error) {
	switch kind {
	case KindBoot:
		return decodeBoot(r, version)
	case KindStoppedMessage:
		return decodeStopped(r, version)
	case KindDataSnapshot:
		return decodeDataSnapshot(r, version)
	case KindMachineStateSnapshot:
		return decodeMachineState(r, version)
	case KindAlarmTrap:
		return decodeAlarmTrap(r, version)
	case KindControlAck:
		return decodeControlAck(r, version)
	case KindEolTestSnapshot:
		return decodeEolTestSnapshot(r, version)
	case KindFatalError:
		return decodeFatalError(r, version)
	default:
		return nil, fmt.Errorf("proto: no decoder registered for %s", kind)
	}
}

func decodeBoot(r *wire.Reader, v Version) (Message, error) {
	msg := &BootMessage{Proto: v}
	var err error
	if msg.FirmwareVersion, err = r.String(); err != nil {
		return nil, fmt.Errorf("firmware_version: %w", err)
	}
	if msg.DeviceID, err = r.String(); err != nil {
		return nil, fmt.Errorf("device_id: %w", err)
	}
	if msg.Systick, err = r.U32LE(); err != nil {
		return nil, fmt.Errorf("systick: %w", err)
	}
	mode, err := r.Enum("firmware_mode", func(tag uint8) bool { return FirmwareMode(tag).IsValid() })
	if err != nil {
		return nil, err
	}
	msg.Mode = FirmwareMode(mode)
	if msg.Value128, err = r.U8(); err != nil {
		return nil, fmt.Errorf("value128: %w", err)
	}
	return msg, nil
}

func decodeStopped(r *wire.Reader, v Version) (Message, error) {
	msg := &StoppedMessage{Proto: v}
	var err error
	if msg.FirmwareVersion, err = r.String(); err != nil {
		return nil, fmt.Errorf("firmware_version: %w", err)
	}
	if msg.DeviceID, err = r.String(); err != nil {
		return nil, fmt.Errorf("device_id: %w", err)
	}
	if msg.Systick, err = r.U32LE(); err != nil {
		return nil, fmt.Errorf("systick: %w", err)
	}
	if v != V2 {
		return msg, nil
	}

	ext := &StoppedExtended{}
	mode, err := r.Enum("ventilation_mode", func(tag uint8) bool { return VentilationMode(tag).IsValid() })
	if err != nil {
		return nil, err
	}
	ext.VentilationMode = VentilationMode(mode)

	if ext.PeakPressureSetpoint, err = r.U16LE(); err != nil {
		return nil, fmt.Errorf("peak_pressure_setpoint: %w", err)
	}
	if ext.PlateauPressureSetpoint, err = r.U16LE(); err != nil {
		return nil, fmt.Errorf("plateau_pressure_setpoint: %w", err)
	}
	if ext.PeepSetpoint, err = r.U16LE(); err != nil {
		return nil, fmt.Errorf("peep_setpoint: %w", err)
	}
	if ext.PreviousPeepSetpoint, err = r.U16LE(); err != nil {
		return nil, fmt.Errorf("previous_peep_setpoint: %w", err)
	}
	if ext.PeepAlarmThreshold, err = r.U16LE(); err != nil {
		return nil, fmt.Errorf("peep_alarm_threshold: %w", err)
	}
	if ext.RespiratoryRateSetpoint, err = r.U8(); err != nil {
		return nil, fmt.Errorf("respiratory_rate_setpoint: %w", err)
	}
	if ext.TidalVolumeSetpoint, err = r.U16LE(); err != nil {
		return nil, fmt.Errorf("tidal_volume_setpoint: %w", err)
	}
	if ext.ExpiratoryTerm, err = r.U8(); err != nil {
		return nil, fmt.Errorf("expiratory_term: %w", err)
	}
	if ext.TriggerEnabled, err = r.Bool(); err != nil {
		return nil, fmt.Errorf("trigger_enabled: %w", err)
	}
	if ext.TriggerOffset, err = r.U8(); err != nil {
		return nil, fmt.Errorf("trigger_offset: %w", err)
	}
	currentCodes, err := r.EnumArray("current_alarm_codes", MaxAlarmCodes, nil)
	if err != nil {
		return nil, err
	}
	ext.CurrentAlarmCodes = toAlarmCodes(currentCodes)
	previousCodes, err := r.EnumArray("previous_alarm_codes", MaxAlarmCodes, nil)
	if err != nil {
		return nil, err
	}
	ext.PreviousAlarmCodes = toAlarmCodes(previousCodes)
	if ext.PatientHeight, err = r.U8(); err != nil {
		return nil, fmt.Errorf("patient_height: %w", err)
	}
	gender, err := r.Enum("patient_gender", func(tag uint8) bool { return Gender(tag).IsValid() })
	if err != nil {
		return nil, err
	}
	ext.PatientGender = Gender(gender)
	lang, err := r.Enum("language", func(tag uint8) bool { return Language(tag).IsValid() })
	if err != nil {
		return nil, err
	}
	ext.Language = Language(lang)

	msg.Extended = ext
	return msg, nil
}

func decodeDataSnapshot(r *wire.Reader, v Version) (Message, error) {
	msg := &DataSnapshot{Proto: v}
	var err error
	if msg.FirmwareVersion, err = r.String(); err != nil {
		return nil, fmt.Errorf("firmware_version: %w", err)
	}
	if msg.DeviceID, err = r.String(); err != nil {
		return nil, fmt.Errorf("device_id: %w", err)
	}
	if msg.Systick, err = r.U32LE(); err != nil {
		return nil, fmt.Errorf("systick: %w", err)
	}
	if msg.Centile, err = r.U8(); err != nil {
		return nil, fmt.Errorf("centile: %w", err)
	}
	if msg.Pressure, err = r.U16LE(); err != nil {
		return nil, fmt.Errorf("pressure: %w", err)
	}
	phase, err := r.Enum("cycle_phase", func(tag uint8) bool { return Phase(tag).IsValid() })
	if err != nil {
		return nil, err
	}
	msg.CyclePhase = Phase(phase)

	if v == V1 {
		sub, err := r.Enum("sub_phase", func(tag uint8) bool { return SubPhase(tag).IsValid() })
		if err != nil {
			return nil, err
		}
		msg.SubPhase = SubPhase(sub)
	}

	if msg.BlowerValvePosition, err = r.U8(); err != nil {
		return nil, fmt.Errorf("blower_valve_position: %w", err)
	}
	if msg.PatientValvePosition, err = r.U8(); err != nil {
		return nil, fmt.Errorf("patient_valve_position: %w", err)
	}
	if msg.BlowerRPM, err = r.U16LE(); err != nil {
		return nil, fmt.Errorf("blower_rpm: %w", err)
	}
	if msg.BatteryLevel, err = r.U8(); err != nil {
		return nil, fmt.Errorf("battery_level: %w", err)
	}
	return msg, nil
}

func decodeMachineState(r *wire.Reader, v Version) (Message, error) {
	msg := &MachineStateSnapshot{Proto: v}
	var err error
	if msg.CycleCount, err = r.U32LE(); err != nil {
		return nil, fmt.Errorf("cycle_count: %w", err)
	}
	if msg.PeakPressureSetpoint, err = r.U16LE(); err != nil {
		return nil, fmt.Errorf("peak_pressure_setpoint: %w", err)
	}
	if msg.PlateauPressureSetpoint, err = r.U16LE(); err != nil {
		return nil, fmt.Errorf("plateau_pressure_setpoint: %w", err)
	}
	if msg.PeepSetpoint, err = r.U16LE(); err != nil {
		return nil, fmt.Errorf("peep_setpoint: %w", err)
	}
	if msg.RespiratoryRateSetpoint, err = r.U8(); err != nil {
		return nil, fmt.Errorf("respiratory_rate_setpoint: %w", err)
	}
	if msg.TidalVolumeSetpoint, err = r.U16LE(); err != nil {
		return nil, fmt.Errorf("tidal_volume_setpoint: %w", err)
	}
	if msg.PreviousPeakPressure, err = r.U16LE(); err != nil {
		return nil, fmt.Errorf("previous_peak_pressure: %w", err)
	}
	if msg.PreviousPlateauPressure, err = r.U16LE(); err != nil {
		return nil, fmt.Errorf("previous_plateau_pressure: %w", err)
	}
	if msg.PreviousPeepPressure, err = r.U16LE(); err != nil {
		return nil, fmt.Errorf("previous_peep_pressure: %w", err)
	}
	currentCodes, err := r.EnumArray("current_alarm_codes", MaxAlarmCodes, nil)
	if err != nil {
		return nil, err
	}
	msg.CurrentAlarmCodes = toAlarmCodes(currentCodes)
	previousCodes, err := r.EnumArray("previous_alarm_codes", MaxAlarmCodes, nil)
	if err != nil {
		return nil, err
	}
	msg.PreviousAlarmCodes = toAlarmCodes(previousCodes)

	if v != V2 {
		return msg, nil
	}

	ext := &MachineStateExtended{}
	mode, err := r.Enum("ventilation_mode", func(tag uint8) bool { return VentilationMode(tag).IsValid() })
	if err != nil {
		return nil, err
	}
	ext.VentilationMode = VentilationMode(mode)
	if ext.PatientHeight, err = r.U8(); err != nil {
		return nil, fmt.Errorf("patient_height: %w", err)
	}
	gender, err := r.Enum("patient_gender", func(tag uint8) bool { return Gender(tag).IsValid() })
	if err != nil {
		return nil, err
	}
	ext.PatientGender = Gender(gender)
	lang, err := r.Enum("language", func(tag uint8) bool { return Language(tag).IsValid() })
	if err != nil {
		return nil, err
	}
	ext.Language = Language(lang)
	msg.Extended = ext
	return msg, nil
}

func decodeAlarmTrap(r *wire.Reader, v Version) (Message, error) {
	msg := &AlarmTrap{Proto: v}
	var err error
	if msg.Centile, err = r.U8(); err != nil {
		return nil, fmt.Errorf("centile: %w", err)
	}
	if msg.Pressure, err = r.U16LE(); err != nil {
		return nil, fmt.Errorf("pressure: %w", err)
	}
	phase, err := r.Enum("cycle_phase", func(tag uint8) bool { return Phase(tag).IsValid() })
	if err != nil {
		return nil, err
	}
	msg.CyclePhase = Phase(phase)

	if v == V1 {
		sub, err := r.Enum("sub_phase", func(tag uint8) bool { return SubPhase(tag).IsValid() })
		if err != nil {
			return nil, err
		}
		msg.SubPhase = SubPhase(sub)
	}

	if msg.Cycle, err = r.U32LE(); err != nil {
		return nil, fmt.Errorf("cycle: %w", err)
	}
	code, err := r.U8()
	if err != nil {
		return nil, fmt.Errorf("alarm_code: %w", err)
	}
	msg.Code = AlarmCode(code)
	priority, err := r.Enum("alarm_priority", func(tag uint8) bool { return AlarmPriority(tag).IsValid() })
	if err != nil {
		return nil, err
	}
	msg.Priority = AlarmPriority(priority)
	if msg.Triggered, err = r.Bool(); err != nil {
		return nil, fmt.Errorf("triggered: %w", err)
	}
	if msg.ExpectedValue, err = r.U16LE(); err != nil {
		return nil, fmt.Errorf("expected_value: %w", err)
	}
	if msg.MeasuredValue, err = r.U16LE(); err != nil {
		return nil, fmt.Errorf("measured_value: %w", err)
	}
	if msg.CyclesSinceTrigger, err = r.U32LE(); err != nil {
		return nil, fmt.Errorf("cycles_since_trigger: %w", err)
	}
	return msg, nil
}

func decodeControlAck(r *wire.Reader, v Version) (Message, error) {
	msg := &ControlAckMessage{Proto: v}
	setting, err := r.Enum("setting", func(tag uint8) bool { return SettingID(tag).IsValid() })
	if err != nil {
		return nil, err
	}
	msg.Setting = SettingID(setting)
	if msg.Value, err = r.U16LE(); err != nil {
		return nil, fmt.Errorf("value: %w", err)
	}
	return msg, nil
}

func decodeEolTestSnapshot(r *wire.Reader, v Version) (Message, error) {
	msg := &EolTestSnapshot{Proto: v}
	step, err := r.Enum("eol_step", func(tag uint8) bool { return EolTestStep(tag).IsValid() })
	if err != nil {
		return nil, err
	}
	msg.Step = EolTestStep(step)
	content, err := r.Enum("eol_content", func(tag uint8) bool { return EolTestContent(tag).IsValid() })
	if err != nil {
		return nil, err
	}
	msg.Content = EolTestContent(content)
	if msg.Message, err = r.String(); err != nil {
		return nil, fmt.Errorf("message: %w", err)
	}
	return msg, nil
}

func decodeFatalError(r *wire.Reader, v Version) (Message, error) {
	msg := &FatalErrorMessage{Proto: v}
	kind, err := r.Enum("fatal_error_kind", func(tag uint8) bool { return FatalErrorKind(tag).IsValid() })
	if err != nil {
		return nil, err
	}
	msg.ErrKind = FatalErrorKind(kind)
	if msg.Detail, err = r.String(); err != nil {
		return nil, fmt.Errorf("detail: %w", err)
	}
	return msg, nil
}

func toAlarmCodes(raw []uint8) []AlarmCode {
	if raw == nil {
		return nil
	}
	out := make([]AlarmCode, len(raw))
	for i, v := range raw {
		out[i] = AlarmCode(v)
	}
	return out
}
