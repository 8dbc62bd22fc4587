package control

import (
	"testing"

	"github.com/makair/telemetry-go/frame"
	"github.com/makair/telemetry-go/proto"
)

func TestEncodeRoundTripsThroughFramer(t *testing.T) {
	cases := []struct {
		name    string
		setting proto.SettingID
		value   uint16
	}{
		{"peep", proto.SettingPEEP, 50},
		{"tidal-volume", proto.SettingTidalVolume, 500},
		{"zero-value", proto.SettingRespiratoryRate, 0},
		{"max-value", proto.SettingPeakPressureAlarm, 0xFFFF},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			buf := Encode(c.setting, c.value)

			res := frame.ScanControl(buf)
			if res.Outcome != frame.OutcomeMessage {
				t.Fatalf("outcome = %v, want OutcomeMessage (err=%v)", res.Outcome, res.Err)
			}
			if res.Consumed != len(buf) {
				t.Fatalf("consumed = %d, want %d", res.Consumed, len(buf))
			}
			ack, ok := res.Message.(*proto.ControlAckMessage)
			if !ok {
				t.Fatalf("message type = %T, want *proto.ControlAckMessage", res.Message)
			}
			if ack.Setting != c.setting {
				t.Fatalf("setting = %v, want %v", ack.Setting, c.setting)
			}
			if ack.Value != c.value {
				t.Fatalf("value = %d, want %d", ack.Value, c.value)
			}
		})
	}
}

func TestEncodeNotMistakenForTelemetry(t *testing.T) {
	buf := Encode(proto.SettingPEEP, 80)
	if res := frame.ScanTelemetry(buf); res.Outcome == frame.OutcomeMessage {
		t.Fatal("ScanTelemetry accepted a control-framed buffer")
	}
}

func TestEncodeDistinctSentinels(t *testing.T) {
	buf := Encode(proto.SettingPEEP, 80)
	if string(buf[:frame.HeaderSize]) == string(frame.TelemetryHeader[:]) {
		t.Fatal("control frame used the telemetry header sentinel")
	}
}
