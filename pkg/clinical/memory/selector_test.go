package memory

import (
	"strings"
	"testing"

	"health-assistant-be/pkg/clinical"
)

func TestAdmissible(t *testing.T) {
	if !Admissible(clinical.ConfirmationYes) {
		t.Error("yes should unlock memory")
	}
	if Admissible(clinical.ConfirmationNo) {
		t.Error("no must not unlock memory")
	}
	if Admissible(clinical.ConfirmationSkip) {
		t.Error("skip must not unlock memory")
	}
}

func TestSummarize(t *testing.T) {
	if got := Summarize(nil); got != "No relevant past medical context found." {
		t.Errorf("empty summary = %q", got)
	}

	got := Summarize([]Chunk{
		{Type: "past_symptom", Content: "recurring migraines"},
		{Type: "medication", Content: "metformin 500mg"},
	})
	if !strings.Contains(got, "[past_symptom] recurring migraines") {
		t.Errorf("summary missing symptom chunk: %q", got)
	}
	if !strings.Contains(got, "[medication] metformin 500mg") {
		t.Errorf("summary missing medication chunk: %q", got)
	}
	if !strings.HasPrefix(got, "Known medical context from previous interactions:") {
		t.Errorf("summary missing header: %q", got)
	}
}
