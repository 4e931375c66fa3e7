package routing

import (
	"reflect"
	"strings"
	"testing"

	"health-assistant-be/pkg/clinical"
	"health-assistant-be/pkg/clinical/intent"
)

func TestRoute(t *testing.T) {
	tests := []struct {
		name   string
		intent intent.Intent
		want   []Partition
	}{
		{"symptom", intent.Symptom, []Partition{SymptomFallback, PatientEducationA, PatientEducationB}},
		{"drug interaction only drug safety", intent.DrugInteraction, []Partition{DrugSafety}},
		{"test or report", intent.TestOrReport, []Partition{PatientEducationA, PatientEducationB}},
		{"disease", intent.Disease, []Partition{PatientEducationA, PatientEducationB, Taxonomy}},
		{"research", intent.Research, []Partition{ResearchAbstracts}},
		{"unknown default", intent.Unknown, []Partition{PatientEducationA, PatientEducationB, Taxonomy}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Route(tt.intent)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Route(%v) = %v, want %v", tt.intent, got, tt.want)
			}
		})
	}
}

func TestRouteIdempotent(t *testing.T) {
	first := Route(intent.Symptom)
	for i := 0; i < 5; i++ {
		if !reflect.DeepEqual(Route(intent.Symptom), first) {
			t.Fatal("Route output changed between calls")
		}
	}
}

func TestAugment(t *testing.T) {
	got := Augment("I have a headache", intent.Symptom)
	if !strings.HasPrefix(got, "symptom causes treatment management ") {
		t.Errorf("Augment should prepend the symptom keyword phrase, got %q", got)
	}
	if !strings.HasSuffix(got, "I have a headache") {
		t.Errorf("Augment should keep the original query, got %q", got)
	}

	// Unknown intent passes through untouched.
	if got := Augment("hello", intent.Unknown); got != "hello" {
		t.Errorf("Augment for Unknown = %q, want unchanged", got)
	}
}

func TestFilterByPartition(t *testing.T) {
	docs := []clinical.RetrievedDocument{
		{Title: "warfarin", Dataset: "drug_interactions", Score: 0.9},
		{Title: "diabetes", Dataset: "medlineplus", Score: 0.95},
		{Title: "untagged medline", Source: "MedlinePlus (NIH/NLM)", Score: 0.8},
		{Title: "icd code", Dataset: "icd11", Score: 0.7},
	}

	filtered := FilterByPartition(docs, []Partition{DrugSafety})
	if len(filtered) != 1 || filtered[0].Title != "warfarin" {
		t.Fatalf("DrugSafety filter = %v, want only warfarin", filtered)
	}

	filtered = FilterByPartition(docs, []Partition{PatientEducationA})
	if len(filtered) != 2 {
		t.Fatalf("PatientEducationA filter kept %d docs, want 2 (tagged + source match)", len(filtered))
	}

	// No allowed list means no filtering.
	if got := FilterByPartition(docs, nil); len(got) != len(docs) {
		t.Error("empty allowed list should pass everything through")
	}
}

func TestRerankTrustOrder(t *testing.T) {
	docs := []clinical.RetrievedDocument{
		{Title: "research", Source: "PubMed", Score: 0.99},
		{Title: "education", Source: "MedlinePlus", Score: 0.5},
		{Title: "safety", Source: "Drug Interaction DB", Score: 0.4},
		{Title: "symptom", Source: "MedlinePlus", Category: "Primary Symptom", Score: 0.3},
	}

	ranked := Rerank(docs)
	wantOrder := []string{"symptom", "safety", "education", "research"}
	for i, want := range wantOrder {
		if ranked[i].Title != want {
			t.Fatalf("position %d = %q, want %q (full: %v)", i, ranked[i].Title, want, ranked)
		}
	}

	// Input slice must not be mutated.
	if docs[0].Title != "research" {
		t.Error("Rerank mutated its input")
	}
}

func TestRerankScoreBreaksTies(t *testing.T) {
	docs := []clinical.RetrievedDocument{
		{Title: "low", Source: "MedlinePlus", Score: 0.5},
		{Title: "high", Source: "MedlinePlus", Score: 0.9},
	}
	ranked := Rerank(docs)
	if ranked[0].Title != "high" {
		t.Errorf("same trust tier should order by score, got %q first", ranked[0].Title)
	}
}
