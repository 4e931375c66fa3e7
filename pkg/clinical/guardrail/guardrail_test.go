package guardrail

import (
	"testing"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantSafe    bool
		wantKeyword string
	}{
		{
			name:     "benign symptom",
			text:     "I have a mild headache since yesterday",
			wantSafe: true,
		},
		{
			name:        "chest pain mixed with benign symptom",
			text:        "I have chest pain and a headache",
			wantSafe:    false,
			wantKeyword: "chest pain",
		},
		{
			name:        "case insensitive",
			text:        "My father had a Heart Attack last night",
			wantSafe:    false,
			wantKeyword: "heart attack",
		},
		{
			name:        "self harm phrasing",
			text:        "sometimes I want to hurt myself",
			wantSafe:    false,
			wantKeyword: "hurt myself",
		},
		{
			name:        "breathing emergency",
			text:        "grandma is having difficulty breathing",
			wantSafe:    false,
			wantKeyword: "difficulty breathing",
		},
		{
			name:     "empty input",
			text:     "",
			wantSafe: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Check(tt.text)
			if v.Safe != tt.wantSafe {
				t.Fatalf("Safe = %v, want %v", v.Safe, tt.wantSafe)
			}
			if tt.wantSafe {
				if v.Alert != nil {
					t.Errorf("Alert should be nil for safe input")
				}
				return
			}
			if v.Alert == nil {
				t.Fatal("Alert is nil for unsafe input")
			}
			if v.Alert.TriggerKeyword != tt.wantKeyword {
				t.Errorf("TriggerKeyword = %q, want %q", v.Alert.TriggerKeyword, tt.wantKeyword)
			}
			if v.Alert.Severity != "EMERGENCY" {
				t.Errorf("Severity = %q, want EMERGENCY", v.Alert.Severity)
			}
			if v.Alert.ImmediateAction == "" {
				t.Error("ImmediateAction should not be empty")
			}
		})
	}
}

func TestCheckDeterminism(t *testing.T) {
	text := "I have chest pain and difficulty breathing"
	first := Check(text)
	for i := 0; i < 10; i++ {
		again := Check(text)
		if again.Alert.TriggerKeyword != first.Alert.TriggerKeyword {
			t.Fatalf("keyword changed between runs: %q vs %q",
				again.Alert.TriggerKeyword, first.Alert.TriggerKeyword)
		}
	}
}
