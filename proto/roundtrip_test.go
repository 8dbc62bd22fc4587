package proto

import (
	"reflect"
	"testing"
)

func TestRoundTripBoot(t *testing.T) {
	msg := &BootMessage{
		Proto:           V1,
		FirmwareVersion: "1.2.3",
		DeviceID:        "test-dev",
		Systick:         0x00000001,
		Mode:            ModeProduction,
		Value128:        42,
	}
	assertRoundTrip(t, KindBoot, V1, msg)
}

func TestRoundTripStoppedV1(t *testing.T) {
	msg := &StoppedMessage{
		Proto:           V1,
		FirmwareVersion: "1.0.0",
		DeviceID:        "vent-01",
		Systick:         42,
	}
	assertRoundTrip(t, KindStoppedMessage, V1, msg)
}

func TestRoundTripStoppedV2(t *testing.T) {
	msg := &StoppedMessage{
		Proto:           V2,
		FirmwareVersion: "2.0.0",
		DeviceID:        "vent-02",
		Systick:         1234,
		Extended: &StoppedExtended{
			VentilationMode:         VentModePCCMV,
			PeakPressureSetpoint:    300,
			PlateauPressureSetpoint: 250,
			PeepSetpoint:            50,
			PreviousPeepSetpoint:    45,
			PeepAlarmThreshold:      60,
			RespiratoryRateSetpoint: 15,
			TidalVolumeSetpoint:     500,
			ExpiratoryTerm:          2,
			TriggerEnabled:          true,
			TriggerOffset:           10,
			CurrentAlarmCodes:       []AlarmCode{1, 2},
			PreviousAlarmCodes:      []AlarmCode{},
			PatientHeight:           170,
			PatientGender:           GenderFemale,
			Language:                LanguageFrench,
		},
	}
	assertRoundTrip(t, KindStoppedMessage, V2, msg)
}

func TestRoundTripDataSnapshotV1(t *testing.T) {
	msg := &DataSnapshot{
		Proto:                V1,
		FirmwareVersion:      "1.0.0",
		DeviceID:             "vent-01",
		Systick:              99,
		Centile:              50,
		Pressure:             180,
		CyclePhase:           PhaseInhalation,
		SubPhase:             SubPhaseInspiration,
		BlowerValvePosition:  10,
		PatientValvePosition: 20,
		BlowerRPM:            12000,
		BatteryLevel:         80,
	}
	assertRoundTrip(t, KindDataSnapshot, V1, msg)
}

func TestRoundTripDataSnapshotV2(t *testing.T) {
	msg := &DataSnapshot{
		Proto:                V2,
		FirmwareVersion:      "2.0.0",
		DeviceID:             "vent-02",
		Systick:              99,
		Centile:              50,
		Pressure:             180,
		CyclePhase:           PhaseExhalation,
		BlowerValvePosition:  10,
		PatientValvePosition: 20,
		BlowerRPM:            12000,
		BatteryLevel:         80,
	}
	assertRoundTrip(t, KindDataSnapshot, V2, msg)
}

func TestRoundTripMachineStateSnapshotV2EmptyAlarms(t *testing.T) {
	msg := &MachineStateSnapshot{
		Proto:                   V2,
		CycleCount:              5,
		PeakPressureSetpoint:    0,
		PlateauPressureSetpoint: 0,
		PeepSetpoint:            0,
		RespiratoryRateSetpoint: 0,
		TidalVolumeSetpoint:     0,
		PreviousPeakPressure:    0,
		PreviousPlateauPressure: 0,
		PreviousPeepPressure:    0,
		CurrentAlarmCodes:       []AlarmCode{},
		PreviousAlarmCodes:      []AlarmCode{},
		Extended: &MachineStateExtended{
			VentilationMode: VentModePCCMV,
			PatientHeight:   0,
			PatientGender:   GenderMale,
			Language:        LanguageEnglish,
		},
	}
	assertRoundTrip(t, KindMachineStateSnapshot, V2, msg)
}

func TestRoundTripAlarmTrapV1(t *testing.T) {
	msg := &AlarmTrap{
		Proto:              V1,
		Centile:            12,
		Pressure:           220,
		CyclePhase:          PhaseInhalation,
		SubPhase:           SubPhaseHoldInspiration,
		Cycle:              7,
		Code:               3,
		Priority:           AlarmPriorityHigh,
		Triggered:          true,
		ExpectedValue:      200,
		MeasuredValue:      220,
		CyclesSinceTrigger: 1,
	}
	assertRoundTrip(t, KindAlarmTrap, V1, msg)
}

func TestRoundTripControlAck(t *testing.T) {
	msg := &ControlAckMessage{
		Proto:   V1,
		Setting: SettingPEEP,
		Value:   100,
	}
	assertRoundTrip(t, KindControlAck, V1, msg)
}

func TestRoundTripEolTestSnapshot(t *testing.T) {
	msg := &EolTestSnapshot{
		Proto:   V2,
		Step:    EolStepBlowerLongRun,
		Content: EolContentInProgress,
		Message: "blower running",
	}
	assertRoundTrip(t, KindEolTestSnapshot, V2, msg)
}

func TestRoundTripFatalError(t *testing.T) {
	msg := &FatalErrorMessage{
		Proto:   V2,
		ErrKind: FatalAssert,
		Detail:  "main.c:123",
	}
	assertRoundTrip(t, KindFatalError, V2, msg)
}

func TestDecodeBootInvalidEnum(t *testing.T) {
	w := buildBootBytes("1.2.3", "test-dev", 1, 0x7F, 42)
	_, _, err := DecodeBodyBytes(KindBoot, V1, w)
	if err == nil {
		t.Fatal("expected invalid-enum error for unassigned firmware mode")
	}
}

func assertRoundTrip(t *testing.T, kind Kind, version Version, msg Message) {
	t.Helper()
	body, err := EncodeBody(msg)
	if err != nil {
		t.Fatalf("EncodeBody() error: %v", err)
	}
	decoded, _, err := DecodeBodyBytes(kind, version, body)
	if err != nil {
		t.Fatalf("DecodeBodyBytes() error: %v", err)
	}
	if !reflect.DeepEqual(msg, decoded) {
		t.Fatalf("round trip mismatch:\n got:  %#v\n want: %#v", decoded, msg)
	}
}

func buildBootBytes(fw, dev string, systick uint32, mode uint8, value128 uint8) []byte {
	msg := &BootMessage{Proto: V1, FirmwareVersion: fw, DeviceID: dev, Systick: systick, Mode: FirmwareMode(mode), Value128: value128}
	b, _ := EncodeBody(msg)
	return b
}
