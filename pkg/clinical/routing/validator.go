package routing

import (
	"fmt"
	"strings"

	"health-assistant-be/pkg/clinical"
	"health-assistant-be/pkg/clinical/intent"
)

// DefaultMinScore is the minimum similarity a candidate must clear before
// it counts toward sufficiency.
const DefaultMinScore = 0.3

// Validator gates the generation stage: if the retrieved set is judged
// insufficient for the intent, the orchestrator must not feed it to the
// generator.
type Validator struct {
	MinScore float64
}

func NewValidator() *Validator {
	return &Validator{MinScore: DefaultMinScore}
}

// Validate reports whether docs are sufficient to ground an answer for the
// given intent, with a human-readable reason on failure.
func (v *Validator) Validate(docs []clinical.RetrievedDocument, queryIntent intent.Intent) (bool, string) {
	if len(docs) == 0 {
		return false, "no results retrieved from knowledge base"
	}

	quality := docs[:0:0]
	for _, doc := range docs {
		if doc.Score >= v.MinScore {
			quality = append(quality, doc)
		}
	}
	if len(quality) == 0 {
		return false, fmt.Sprintf("all results below quality threshold (%.2f)", v.MinScore)
	}

	switch queryIntent {
	case intent.Symptom:
		if !anyCategory(quality, "primary symptom", "patient education") {
			return false, "no symptom-focused content in results"
		}
	case intent.DrugInteraction:
		if !hasDrugSafetyContent(quality) {
			return false, "no drug interaction data in results"
		}
	}

	return true, "retrieval quality validated"
}

func anyCategory(docs []clinical.RetrievedDocument, categories ...string) bool {
	for _, doc := range docs {
		c := strings.ToLower(doc.Category)
		for _, want := range categories {
			if c == want {
				return true
			}
		}
	}
	return false
}

func hasDrugSafetyContent(docs []clinical.RetrievedDocument) bool {
	for _, doc := range docs {
		if strings.Contains(strings.ToLower(doc.Source), "drug interaction") {
			return true
		}
		if strings.EqualFold(doc.Category, "medication safety") {
			return true
		}
	}
	return false
}
