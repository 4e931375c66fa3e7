package followup

import (
	"testing"

	"health-assistant-be/pkg/clinical"
	"health-assistant-be/pkg/clinical/intent"
)

func turn(role, content, kind string) clinical.ConversationTurn {
	return clinical.ConversationTurn{Role: role, Content: content, Kind: kind}
}

func TestShouldAsk(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		intent  intent.Intent
		history []clinical.ConversationTurn
		want    bool
	}{
		{
			name:   "brief symptom without context",
			text:   "I have nausea",
			intent: intent.Symptom,
			want:   true,
		},
		{
			name:   "brief symptom with duration cue",
			text:   "nausea since yesterday morning",
			intent: intent.Symptom,
			want:   false,
		},
		{
			name:   "bare symptom too short even for shortcut",
			text:   "nausea",
			intent: intent.Symptom,
			want:   true,
		},
		{
			name:   "brief symptom with severity cue",
			text:   "severe nausea right now",
			intent: intent.Symptom,
			want:   false,
		},
		{
			name:   "long detailed symptom report",
			text:   "I have had dull nausea after every meal for about two weeks now",
			intent: intent.Symptom,
			want:   false,
		},
		{
			name:   "vague distress regardless of length",
			text:   "honestly I don't feel well at all today and cannot say why exactly",
			intent: intent.Unknown,
			want:   true,
		},
		{
			name:   "disease symptom phrasing never asks",
			text:   "symptoms of diabetes",
			intent: intent.Disease,
			want:   false,
		},
		{
			name:   "anti-loop: clarification in last 3 turns",
			text:   "headache",
			intent: intent.Symptom,
			history: []clinical.ConversationTurn{
				turn(clinical.RoleUser, "I feel off", ""),
				turn(clinical.RoleAssistant, "Can you tell me more?", clinical.TurnKindClarification),
				turn(clinical.RoleUser, "headache", ""),
			},
			want: false,
		},
		{
			name:   "clarification outside window does not block",
			text:   "headache",
			intent: intent.Symptom,
			history: []clinical.ConversationTurn{
				turn(clinical.RoleAssistant, "Can you tell me more?", clinical.TurnKindClarification),
				turn(clinical.RoleUser, "it is mostly in the evening", ""),
				turn(clinical.RoleAssistant, "Noted.", ""),
				turn(clinical.RoleUser, "something else entirely", ""),
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShouldAsk(tt.text, tt.intent, tt.history)
			if got != tt.want {
				t.Errorf("ShouldAsk(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestAntiLoopForAnySubsequentSymptomQuery(t *testing.T) {
	history := []clinical.ConversationTurn{
		turn(clinical.RoleUser, "I feel bad", ""),
		turn(clinical.RoleAssistant, "How long has this been going on?", clinical.TurnKindClarification),
		turn(clinical.RoleUser, "dunno", ""),
	}

	for _, text := range []string{"nausea", "pain", "I feel bad", "headache"} {
		if ShouldAsk(text, intent.Symptom, history) {
			t.Errorf("ShouldAsk(%q) = true despite recent clarification", text)
		}
	}
}

func TestQuestionsCap(t *testing.T) {
	for _, in := range []intent.Intent{intent.Symptom, intent.Unknown, intent.Disease} {
		qs := Questions(in)
		if len(qs) == 0 || len(qs) > 2 {
			t.Errorf("Questions(%v) returned %d questions, want 1-2", in, len(qs))
		}
	}
}
