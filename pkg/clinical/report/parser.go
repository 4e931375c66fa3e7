// Package report parses the generation collaborator's JSON reply into a
// HealthReport, tolerating the noise LLMs wrap around JSON.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"health-assistant-be/pkg/clinical"
)

// Parse extracts and decodes the HealthReport JSON from a raw model reply.
// sources are appended from the retrieval context since the model is not
// trusted to cite correctly.
func Parse(raw string, docs []clinical.RetrievedDocument) (*clinical.HealthReport, error) {
	jsonContent := extractJSON(raw)
	if jsonContent == "" {
		return nil, fmt.Errorf("no JSON object found in model reply")
	}

	var parsed struct {
		InformationText    string   `json:"information_text"`
		PossibleConditions []string `json:"possible_conditions"`
		Reasoning          string   `json:"reasoning"`
		NextSteps          []string `json:"next_steps"`
		ConfidenceLabel    string   `json:"confidence_label"`
	}
	if err := json.Unmarshal([]byte(jsonContent), &parsed); err != nil {
		return nil, fmt.Errorf("decode model reply: %w", err)
	}

	if strings.TrimSpace(parsed.InformationText) == "" {
		return nil, fmt.Errorf("model reply missing information_text")
	}

	r := &clinical.HealthReport{
		InformationText:    parsed.InformationText,
		PossibleConditions: parsed.PossibleConditions,
		Reasoning:          parsed.Reasoning,
		NextSteps:          parsed.NextSteps,
		ConfidenceLabel:    normalizeConfidence(parsed.ConfidenceLabel),
		Sources:            sourcesFrom(docs),
	}
	return r, nil
}

func normalizeConfidence(label string) string {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "high", "moderate", "low":
		return strings.ToLower(strings.TrimSpace(label))
	default:
		return "moderate"
	}
}

func sourcesFrom(docs []clinical.RetrievedDocument) []clinical.KnowledgeSource {
	seen := make(map[string]bool)
	var sources []clinical.KnowledgeSource
	for _, doc := range docs {
		if doc.Source == "" || seen[doc.Source] {
			continue
		}
		seen[doc.Source] = true
		sources = append(sources, clinical.KnowledgeSource{
			Source:      doc.Source,
			Description: doc.Title,
		})
	}
	return sources
}

// extractJSON returns the outermost brace-delimited span of raw.
func extractJSON(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end <= start {
		return ""
	}
	return raw[start : end+1]
}
