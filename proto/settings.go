package proto

import "fmt"

// SettingID identifies a control setting the host may write and the MCU
// will echo back in a ControlAck.
type SettingID uint8

const (
	SettingPeakPressure     SettingID = 0x01
	SettingPlateauPressure  SettingID = 0x02
	SettingPEEP             SettingID = 0x03
	SettingRespiratoryRate  SettingID = 0x04
	SettingTidalVolume      SettingID = 0x05
	SettingExpiratoryTerm   SettingID = 0x06
	SettingTriggerEnabled   SettingID = 0x07
	SettingTriggerOffset    SettingID = 0x08
	SettingVentilationMode  SettingID = 0x09
	SettingPeakPressureAlarm SettingID = 0x0A
	SettingPEEPAlarm        SettingID = 0x0B
)

func (s SettingID) IsValid() bool {
	switch s {
	case SettingPeakPressure, SettingPlateauPressure, SettingPEEP, SettingRespiratoryRate,
		SettingTidalVolume, SettingExpiratoryTerm, SettingTriggerEnabled, SettingTriggerOffset,
		SettingVentilationMode, SettingPeakPressureAlarm, SettingPEEPAlarm:
		return true
	}
	return false
}

func (s SettingID) String() string {
	switch s {
	case SettingPeakPressure:
		return "peak_pressure"
	case SettingPlateauPressure:
		return "plateau_pressure"
	case SettingPEEP:
		return "peep"
	case SettingRespiratoryRate:
		return "respiratory_rate"
	case SettingTidalVolume:
		return "tidal_volume"
	case SettingExpiratoryTerm:
		return "expiratory_term"
	case SettingTriggerEnabled:
		return "trigger_enabled"
	case SettingTriggerOffset:
		return "trigger_offset"
	case SettingVentilationMode:
		return "ventilation_mode"
	case SettingPeakPressureAlarm:
		return "peak_pressure_alarm"
	case SettingPEEPAlarm:
		return "peep_alarm"
	default:
		return fmt.Sprintf("unknown(0x%02x)", uint8(s))
	}
}
