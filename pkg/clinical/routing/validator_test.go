package routing

import (
	"strings"
	"testing"

	"health-assistant-be/pkg/clinical"
	"health-assistant-be/pkg/clinical/intent"
)

func TestValidate(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name       string
		docs       []clinical.RetrievedDocument
		intent     intent.Intent
		wantOK     bool
		wantReason string
	}{
		{
			name:       "empty set",
			docs:       nil,
			intent:     intent.Disease,
			wantOK:     false,
			wantReason: "no results",
		},
		{
			name: "all below threshold",
			docs: []clinical.RetrievedDocument{
				{Title: "weak", Score: 0.1},
				{Title: "weaker", Score: 0.05},
			},
			intent:     intent.Disease,
			wantOK:     false,
			wantReason: "below quality threshold",
		},
		{
			name: "disease intent passes with generic docs",
			docs: []clinical.RetrievedDocument{
				{Title: "overview", Score: 0.8},
			},
			intent: intent.Disease,
			wantOK: true,
		},
		{
			name: "symptom intent needs symptom-focused category",
			docs: []clinical.RetrievedDocument{
				{Title: "random", Category: "Research", Score: 0.9},
			},
			intent:     intent.Symptom,
			wantOK:     false,
			wantReason: "no symptom-focused content",
		},
		{
			name: "symptom intent satisfied by patient education",
			docs: []clinical.RetrievedDocument{
				{Title: "when to see a doctor", Category: "Patient Education", Score: 0.9},
			},
			intent: intent.Symptom,
			wantOK: true,
		},
		{
			name: "drug intent needs safety content",
			docs: []clinical.RetrievedDocument{
				{Title: "education", Source: "MedlinePlus", Score: 0.9},
			},
			intent:     intent.DrugInteraction,
			wantOK:     false,
			wantReason: "no drug interaction data",
		},
		{
			name: "drug intent satisfied by source label",
			docs: []clinical.RetrievedDocument{
				{Title: "warfarin + aspirin", Source: "Drug Interaction DB", Score: 0.9},
			},
			intent: intent.DrugInteraction,
			wantOK: true,
		},
		{
			name: "drug intent satisfied by category",
			docs: []clinical.RetrievedDocument{
				{Title: "warfarin + aspirin", Category: "Medication Safety", Score: 0.9},
			},
			intent: intent.DrugInteraction,
			wantOK: true,
		},
		{
			name: "low scoring safety doc does not count",
			docs: []clinical.RetrievedDocument{
				{Title: "good generic", Score: 0.8},
				{Title: "weak safety", Source: "Drug Interaction DB", Score: 0.1},
			},
			intent:     intent.DrugInteraction,
			wantOK:     false,
			wantReason: "no drug interaction data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := v.Validate(tt.docs, tt.intent)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v (%s), want %v", ok, reason, tt.wantOK)
			}
			if !ok && !strings.Contains(reason, tt.wantReason) {
				t.Errorf("reason = %q, want it to contain %q", reason, tt.wantReason)
			}
		})
	}
}
