package report

import (
	"testing"

	"health-assistant-be/pkg/clinical"
)

const validReply = `Here is my assessment:
` + "```json" + `
{"information_text": "Headaches are often caused by dehydration.",
 "possible_conditions": ["tension headache", "dehydration"],
 "reasoning": "Short duration and no red flags.",
 "next_steps": ["drink water", "rest"],
 "confidence_label": "moderate"}
` + "```"

func TestParse(t *testing.T) {
	docs := []clinical.RetrievedDocument{
		{Source: "MedlinePlus (NIH/NLM)", Title: "Headache"},
		{Source: "MedlinePlus (NIH/NLM)", Title: "Duplicate source"},
		{Source: "ICD-11", Title: "Code 8A80"},
	}

	r, err := Parse(validReply, docs)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if r.InformationText != "Headaches are often caused by dehydration." {
		t.Errorf("InformationText = %q", r.InformationText)
	}
	if len(r.PossibleConditions) != 2 {
		t.Errorf("PossibleConditions = %v", r.PossibleConditions)
	}
	if r.ConfidenceLabel != "moderate" {
		t.Errorf("ConfidenceLabel = %q", r.ConfidenceLabel)
	}
	// Sources come from retrieval, deduplicated by source label.
	if len(r.Sources) != 2 {
		t.Errorf("Sources = %v, want 2 deduplicated entries", r.Sources)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	cases := []string{
		"",
		"plain text answer without json",
		`{"possible_conditions": ["x"]}`, // missing information_text
		"{broken json",
	}
	for _, raw := range cases {
		if _, err := Parse(raw, nil); err == nil {
			t.Errorf("Parse(%q) should fail", raw)
		}
	}
}

func TestParseNormalizesConfidence(t *testing.T) {
	raw := `{"information_text": "ok", "confidence_label": "VERY SURE"}`
	r, err := Parse(raw, nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if r.ConfidenceLabel != "moderate" {
		t.Errorf("unexpected confidence label %q, want fallback to moderate", r.ConfidenceLabel)
	}
}
