package proto

import "fmt"

// FirmwareMode is the operating mode the MCU reports in BootMessage.
type FirmwareMode uint8

const (
	ModeProduction      FirmwareMode = 0x01
	ModeQualification   FirmwareMode = 0x02
	ModeIntegrationTest FirmwareMode = 0x03
)

func (m FirmwareMode) IsValid() bool {
	switch m {
	case ModeProduction, ModeQualification, ModeIntegrationTest:
		return true
	}
	return false
}

func (m FirmwareMode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeQualification:
		return "qualification"
	case ModeIntegrationTest:
		return "integration-test"
	default:
		return fmt.Sprintf("unknown(0x%02x)", uint8(m))
	}
}

// Phase is the current point in the respiratory cycle.
type Phase uint8

const (
	PhaseInhalation Phase = 0x01
	PhaseExhalation Phase = 0x02
)

func (p Phase) IsValid() bool {
	return p == PhaseInhalation || p == PhaseExhalation
}

func (p Phase) String() string {
	switch p {
	case PhaseInhalation:
		return "inhalation"
	case PhaseExhalation:
		return "exhalation"
	default:
		return fmt.Sprintf("unknown(0x%02x)", uint8(p))
	}
}

// SubPhase refines Phase. It is only meaningful under protocol v1; v2
// parsing paths never decode it (the field does not exist in v2 layouts).
type SubPhase uint8

const (
	SubPhaseInspiration     SubPhase = 0x01
	SubPhaseHoldInspiration SubPhase = 0x02
	SubPhaseExhalation      SubPhase = 0x03
)

func (s SubPhase) IsValid() bool {
	switch s {
	case SubPhaseInspiration, SubPhaseHoldInspiration, SubPhaseExhalation:
		return true
	}
	return false
}

func (s SubPhase) String() string {
	switch s {
	case SubPhaseInspiration:
		return "inspiration"
	case SubPhaseHoldInspiration:
		return "hold-inspiration"
	case SubPhaseExhalation:
		return "exhalation"
	default:
		return fmt.Sprintf("unknown(0x%02x)", uint8(s))
	}
}

// Gender is a v2 patient descriptor.
type Gender uint8

const (
	GenderMale   Gender = 0x01
	GenderFemale Gender = 0x02
)

func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	default:
		return fmt.Sprintf("unknown(0x%02x)", uint8(g))
	}
}

// Language is the v2 "operating language" patient/device descriptor.
type Language uint8

const (
	LanguageEnglish    Language = 0x01
	LanguageFrench     Language = 0x02
	LanguageGerman     Language = 0x03
	LanguageItalian    Language = 0x04
	LanguageSpanish    Language = 0x05
	LanguagePortuguese Language = 0x06
)

func (l Language) IsValid() bool {
	switch l {
	case LanguageEnglish, LanguageFrench, LanguageGerman, LanguageItalian, LanguageSpanish, LanguagePortuguese:
		return true
	}
	return false
}

func (l Language) String() string {
	switch l {
	case LanguageEnglish:
		return "en"
	case LanguageFrench:
		return "fr"
	case LanguageGerman:
		return "de"
	case LanguageItalian:
		return "it"
	case LanguageSpanish:
		return "es"
	case LanguagePortuguese:
		return "pt"
	default:
		return fmt.Sprintf("unknown(0x%02x)", uint8(l))
	}
}

// AlarmPriority is the clinical severity of an AlarmTrap.
type AlarmPriority uint8

const (
	AlarmPriorityLow    AlarmPriority = 0x01
	AlarmPriorityMedium AlarmPriority = 0x02
	AlarmPriorityHigh   AlarmPriority = 0x03
)

func (p AlarmPriority) IsValid() bool {
	switch p {
	case AlarmPriorityLow, AlarmPriorityMedium, AlarmPriorityHigh:
		return true
	}
	return false
}

func (p AlarmPriority) String() string {
	switch p {
	case AlarmPriorityLow:
		return "low"
	case AlarmPriorityMedium:
		return "medium"
	case AlarmPriorityHigh:
		return "high"
	default:
		return fmt.Sprintf("unknown(0x%02x)", uint8(p))
	}
}

// VentModeClass is the coarse ventilation mode family.
type VentModeClass uint8

const (
	VentClassPC VentModeClass = 0x01 // pressure-controlled
	VentClassVC VentModeClass = 0x02 // volume-controlled
)

func (c VentModeClass) String() string {
	switch c {
	case VentClassPC:
		return "PC"
	case VentClassVC:
		return "VC"
	default:
		return fmt.Sprintf("unknown(0x%02x)", uint8(c))
	}
}

// VentModeKind is the triggering/support scheme within a VentModeClass.
type VentModeKind uint8

const (
	VentKindCMV   VentModeKind = 0x01 // continuous mandatory ventilation
	VentKindAC    VentModeKind = 0x02 // assist-control
	VentKindVSAI  VentModeKind = 0x03 // spontaneous ventilation, inspiratory aid
	VentKindBIPAP VentModeKind = 0x04 // biphasic positive airway pressure
)

func (k VentModeKind) String() string {
	switch k {
	case VentKindCMV:
		return "CMV"
	case VentKindAC:
		return "AC"
	case VentKindVSAI:
		return "VSAI"
	case VentKindBIPAP:
		return "BIPAP"
	default:
		return fmt.Sprintf("unknown(0x%02x)", uint8(k))
	}
}

// VentilationMode is the v2 "current ventilation mode" field. Class and
// ModeKind are derived accessors, mirroring how a bit-packed field exposes
// sub-components elsewhere in the schema.
type VentilationMode uint8

const (
	VentModePCCMV  VentilationMode = 0x01
	VentModePCAC   VentilationMode = 0x02
	VentModePCVSAI VentilationMode = 0x03
	VentModePCBPAP VentilationMode = 0x04
	VentModeVCCMV  VentilationMode = 0x05
	VentModeVCAC   VentilationMode = 0x06
)

func (m VentilationMode) IsValid() bool {
	switch m {
	case VentModePCCMV, VentModePCAC, VentModePCVSAI, VentModePCBPAP, VentModeVCCMV, VentModeVCAC:
		return true
	}
	return false
}

// Class returns the coarse PC/VC family for the mode.
func (m VentilationMode) Class() VentModeClass {
	switch m {
	case VentModeVCCMV, VentModeVCAC:
		return VentClassVC
	default:
		return VentClassPC
	}
}

// ModeKind returns the triggering/support scheme for the mode.
func (m VentilationMode) ModeKind() VentModeKind {
	switch m {
	case VentModePCCMV, VentModeVCCMV:
		return VentKindCMV
	case VentModePCAC, VentModeVCAC:
		return VentKindAC
	case VentModePCVSAI:
		return VentKindVSAI
	case VentModePCBPAP:
		return VentKindBIPAP
	default:
		return 0
	}
}

func (m VentilationMode) String() string {
	switch m {
	case VentModePCCMV:
		return "PC_CMV"
	case VentModePCAC:
		return "PC_AC"
	case VentModePCVSAI:
		return "PC_VSAI"
	case VentModePCBPAP:
		return "PC_BIPAP"
	case VentModeVCCMV:
		return "VC_CMV"
	case VentModeVCAC:
		return "VC_AC"
	default:
		return fmt.Sprintf("unknown(0x%02x)", uint8(m))
	}
}

// EolTestStep enumerates the end-of-line factory acceptance test sequence.
type EolTestStep uint8

const (
	EolStepStart               EolTestStep = 0x01
	EolStepCheckFan            EolTestStep = 0x02
	EolStepTestBatteryDead     EolTestStep = 0x03
	EolStepConnectMouthpiece   EolTestStep = 0x04
	EolStepCheckExpiratoryValve EolTestStep = 0x05
	EolStepBlowerLongRun       EolTestStep = 0x06
	EolStepFlush               EolTestStep = 0x07
	EolStepEnd                 EolTestStep = 0x08
)

func (s EolTestStep) IsValid() bool {
	switch s {
	case EolStepStart, EolStepCheckFan, EolStepTestBatteryDead, EolStepConnectMouthpiece,
		EolStepCheckExpiratoryValve, EolStepBlowerLongRun, EolStepFlush, EolStepEnd:
		return true
	}
	return false
}

func (s EolTestStep) String() string {
	switch s {
	case EolStepStart:
		return "start"
	case EolStepCheckFan:
		return "check-fan"
	case EolStepTestBatteryDead:
		return "test-battery-dead"
	case EolStepConnectMouthpiece:
		return "connect-mouthpiece"
	case EolStepCheckExpiratoryValve:
		return "check-expiratory-valve"
	case EolStepBlowerLongRun:
		return "blower-long-run"
	case EolStepFlush:
		return "flush"
	case EolStepEnd:
		return "end"
	default:
		return fmt.Sprintf("unknown(0x%02x)", uint8(s))
	}
}

// EolTestContent classifies an EolTestSnapshot's free-form message.
type EolTestContent uint8

const (
	EolContentInProgress EolTestContent = 0x01
	EolContentSuccess    EolTestContent = 0x02
	EolContentError      EolTestContent = 0x03
)

func (c EolTestContent) IsValid() bool {
	switch c {
	case EolContentInProgress, EolContentSuccess, EolContentError:
		return true
	}
	return false
}

func (c EolTestContent) String() string {
	switch c {
	case EolContentInProgress:
		return "in-progress"
	case EolContentSuccess:
		return "success"
	case EolContentError:
		return "error"
	default:
		return fmt.Sprintf("unknown(0x%02x)", uint8(c))
	}
}

// FatalErrorKind describes the nature of a firmware crash.
type FatalErrorKind uint8

const (
	FatalWatchdog     FatalErrorKind = 0x01
	FatalAssert       FatalErrorKind = 0x02
	FatalIllegalState FatalErrorKind = 0x03
	FatalStackOverflow FatalErrorKind = 0x04
	FatalOther        FatalErrorKind = 0x05
)

func (k FatalErrorKind) IsValid() bool {
	switch k {
	case FatalWatchdog, FatalAssert, FatalIllegalState, FatalStackOverflow, FatalOther:
		return true
	}
	return false
}

func (k FatalErrorKind) String() string {
	switch k {
	case FatalWatchdog:
		return "watchdog"
	case FatalAssert:
		return "assert"
	case FatalIllegalState:
		return "illegal-state"
	case FatalStackOverflow:
		return "stack-overflow"
	case FatalOther:
		return "other"
	default:
		return fmt.Sprintf("unknown(0x%02x)", uint8(k))
	}
}
