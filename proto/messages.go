package proto

// BootMessage is sent once when the MCU starts up.
type BootMessage struct {
	Proto           Version
	FirmwareVersion string
	DeviceID        string
	Systick         uint32
	Mode            FirmwareMode
	Value128        uint8
}

func (m *BootMessage) MessageKind() Kind          { return KindBoot }
func (m *BootMessage) ProtocolVersion() Version    { return m.Proto }

// StoppedExtended holds the v2-only fields of StoppedMessage: current
// setpoints, alarm-code snapshots, and patient descriptors. It is nil when
// a StoppedMessage is decoded under protocol v1.
type StoppedExtended struct {
	VentilationMode         VentilationMode
	PeakPressureSetpoint    uint16
	PlateauPressureSetpoint uint16
	PeepSetpoint            uint16
	PreviousPeepSetpoint    uint16
	PeepAlarmThreshold      uint16
	RespiratoryRateSetpoint uint8
	TidalVolumeSetpoint     uint16
	ExpiratoryTerm          uint8
	TriggerEnabled          bool
	TriggerOffset           uint8
	CurrentAlarmCodes       []AlarmCode
	PreviousAlarmCodes      []AlarmCode
	PatientHeight           uint8
	PatientGender           Gender
	Language                Language
}

// StoppedMessage is sent whenever ventilation is stopped. Under protocol
// v2, Extended carries the additional setpoint, alarm, and patient fields
// described in spec §3.2.
type StoppedMessage struct {
	Proto           Version
	FirmwareVersion string
	DeviceID        string
	Systick         uint32
	Extended        *StoppedExtended // v2 only
}

func (m *StoppedMessage) MessageKind() Kind       { return KindStoppedMessage }
func (m *StoppedMessage) ProtocolVersion() Version { return m.Proto }

// DataSnapshot is the high-rate per-centile telemetry sample.
type DataSnapshot struct {
	Proto               Version
	FirmwareVersion     string
	DeviceID            string
	Systick             uint32
	Centile             uint8 // 0-99 within the current respiratory cycle
	Pressure            uint16
	CyclePhase          Phase
	SubPhase            SubPhase // v1 only; zero value under v2
	BlowerValvePosition uint8
	PatientValvePosition uint8
	BlowerRPM           uint16
	BatteryLevel        uint8
}

func (m *DataSnapshot) MessageKind() Kind       { return KindDataSnapshot }
func (m *DataSnapshot) ProtocolVersion() Version { return m.Proto }

// MachineStateExtended holds the v2-only fields of MachineStateSnapshot.
type MachineStateExtended struct {
	VentilationMode VentilationMode
	PatientHeight   uint8
	PatientGender   Gender
	Language        Language
}

// MachineStateSnapshot is an end-of-cycle summary.
type MachineStateSnapshot struct {
	Proto                   Version
	CycleCount              uint32
	PeakPressureSetpoint    uint16
	PlateauPressureSetpoint uint16
	PeepSetpoint            uint16
	RespiratoryRateSetpoint uint8
	TidalVolumeSetpoint     uint16
	PreviousPeakPressure    uint16
	PreviousPlateauPressure uint16
	PreviousPeepPressure    uint16
	CurrentAlarmCodes       []AlarmCode
	PreviousAlarmCodes      []AlarmCode
	Extended                *MachineStateExtended // v2 only
}

func (m *MachineStateSnapshot) MessageKind() Kind       { return KindMachineStateSnapshot }
func (m *MachineStateSnapshot) ProtocolVersion() Version { return m.Proto }

// AlarmTrap records an alarm being raised or cleared.
type AlarmTrap struct {
	Proto              Version
	Centile            uint8
	Pressure           uint16
	CyclePhase         Phase
	SubPhase           SubPhase // v1 only
	Cycle              uint32
	Code               AlarmCode
	Priority           AlarmPriority
	Triggered          bool // true: raised, false: cleared
	ExpectedValue      uint16
	MeasuredValue      uint16
	CyclesSinceTrigger uint32
}

func (m *AlarmTrap) MessageKind() Kind       { return KindAlarmTrap }
func (m *AlarmTrap) ProtocolVersion() Version { return m.Proto }

// ControlAckMessage is the MCU's acknowledgment of an accepted control
// setting.
type ControlAckMessage struct {
	Proto   Version
	Setting SettingID
	Value   uint16
}

func (m *ControlAckMessage) MessageKind() Kind       { return KindControlAck }
func (m *ControlAckMessage) ProtocolVersion() Version { return m.Proto }

// EolTestSnapshot reports end-of-line factory test progress (v2 only).
type EolTestSnapshot struct {
	Proto   Version
	Step    EolTestStep
	Content EolTestContent
	Message string
}

func (m *EolTestSnapshot) MessageKind() Kind       { return KindEolTestSnapshot }
func (m *EolTestSnapshot) ProtocolVersion() Version { return m.Proto }

// FatalErrorMessage reports an unrecoverable firmware crash (v2 only).
type FatalErrorMessage struct {
	Proto   Version
	ErrKind FatalErrorKind
	Detail  string // optional positional detail; empty if none
}

func (m *FatalErrorMessage) MessageKind() Kind       { return KindFatalError }
func (m *FatalErrorMessage) ProtocolVersion() Version { return m.Proto }
