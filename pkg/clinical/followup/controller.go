// Package followup decides whether the pipeline may ask a clarification
// question. The hard rule is the anti-loop ceiling: at most one outstanding
// clarification per conversation window, enforced by scanning the last
// three turns for a prior clarification tag.
package followup

import (
	"regexp"
	"strings"

	"health-assistant-be/pkg/clinical"
	"health-assistant-be/pkg/clinical/fallback"
	"health-assistant-be/pkg/clinical/intent"
)

const historyWindow = 3

var durationCues = []string{"day", "week", "month", "long", "since", "yesterday"}

var severityCues = []string{"severe", "mild", "bad", "worst", "intense", "low"}

var vaguePatterns = []*regexp.Regexp{
	regexp.MustCompile(`i don'?t feel well`),
	regexp.MustCompile(`something is wrong`),
	regexp.MustCompile(`i feel bad`),
	regexp.MustCompile(`not feeling good`),
	regexp.MustCompile(`i am sick`),
	regexp.MustCompile(`feeling unwell`),
}

// ShouldAsk applies the clarification rules in order. history is the
// injected conversation window, oldest to newest.
func ShouldAsk(text string, queryIntent intent.Intent, history []clinical.ConversationTurn) bool {
	lower := strings.ToLower(text)

	// Rule 1: one clarification per window, never loop.
	if recentlyClarified(history) {
		return false
	}

	// Rule 2: disease-symptom questions are informational, never ambiguous.
	if intent.IsDiseaseSymptomQuery(lower) {
		return false
	}

	// Rule 3: brief symptom report without duration or severity context.
	wordCount := len(strings.Fields(text))
	if queryIntent == intent.Symptom && wordCount < 6 && !hasAnyCue(lower) {
		return true
	}

	// Rule 4: vague personal distress always needs narrowing.
	for _, p := range vaguePatterns {
		if p.MatchString(lower) {
			return true
		}
	}

	// Rule 5: a known common symptom with almost no context gets one
	// follow-up even though the shortcut could answer it.
	if _, hit := fallback.Lookup(lower); hit && queryIntent == intent.Symptom && wordCount < 4 {
		return true
	}

	return false
}

// Questions returns the candidate clarification questions for an intent.
// The orchestrator caps the attached questions at two.
func Questions(queryIntent intent.Intent) []string {
	switch queryIntent {
	case intent.Symptom:
		return []string{
			"How long have you had this, and did it start suddenly or gradually?",
			"How severe is it, and is anything making it better or worse?",
		}
	default:
		return []string{
			"Could you describe what you are experiencing in a bit more detail?",
			"When did this start, and how severe does it feel?",
		}
	}
}

func recentlyClarified(history []clinical.ConversationTurn) bool {
	start := len(history) - historyWindow
	if start < 0 {
		start = 0
	}
	for _, turn := range history[start:] {
		if turn.Kind == clinical.TurnKindClarification {
			return true
		}
	}
	return false
}

func hasAnyCue(lower string) bool {
	for _, cue := range durationCues {
		if strings.Contains(lower, cue) {
			return true
		}
	}
	for _, cue := range severityCues {
		if strings.Contains(lower, cue) {
			return true
		}
	}
	return false
}
