package fallback

import (
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantKey string
		wantHit bool
	}{
		{"simple hit", "I have a headache", "headache", true},
		{"case insensitive", "terrible NAUSEA today", "nausea", true},
		{"most specific key wins", "bad abdominal pain since lunch", "abdominal pain", true},
		{"stomach over generic", "my stomach pain is back", "stomach pain", true},
		{"no hit", "what is diabetes", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, ok := Lookup(tt.text)
			if ok != tt.wantHit {
				t.Fatalf("hit = %v, want %v", ok, tt.wantHit)
			}
			if ok && entry.Key != tt.wantKey {
				t.Errorf("key = %q, want %q", entry.Key, tt.wantKey)
			}
			if ok && entry.Advice == "" {
				t.Error("advice should not be empty")
			}
		})
	}
}

func TestLookupDeterministicAcrossRuns(t *testing.T) {
	// Two co-occurring symptoms: the longer (more specific) key must always
	// win, regardless of map iteration order.
	text := "back pain and a cough"
	first, _ := Lookup(text)
	for i := 0; i < 20; i++ {
		again, ok := Lookup(text)
		if !ok || again.Key != first.Key {
			t.Fatalf("lookup not deterministic: got %q then %q", first.Key, again.Key)
		}
	}
	if first.Key != "back pain" {
		t.Errorf("expected most specific key 'back pain', got %q", first.Key)
	}
}

func TestTableCoverage(t *testing.T) {
	all := Entries()
	if len(all) < 25 {
		t.Fatalf("expected at least 25 fallback entries, got %d", len(all))
	}
	for key, advice := range all {
		// Every entry should be multi-sentence: causes, self-care, threshold.
		if strings.Count(advice, ".") < 2 {
			t.Errorf("entry %q should be a multi-sentence explanation", key)
		}
	}
}

func TestBuildReportVariants(t *testing.T) {
	entry, ok := Lookup("nausea again")
	if !ok {
		t.Fatal("expected nausea to resolve")
	}

	first := BuildReport(entry, false)
	repeat := BuildReport(entry, true)

	if first.InformationText != entry.Advice {
		t.Error("first-time report should carry the table advice verbatim")
	}
	if first.Reasoning == repeat.Reasoning {
		t.Error("follow-up variant should differ from first-time variant")
	}
	if !strings.Contains(repeat.Reasoning, "recently") {
		t.Errorf("follow-up reasoning should acknowledge the repeat mention, got %q", repeat.Reasoning)
	}
	if len(first.NextSteps) == 0 || len(repeat.NextSteps) == 0 {
		t.Error("both variants must include next steps")
	}
}
