// Package guardrail implements the deterministic safety check that runs
// before every other pipeline stage. First keyword match wins; there is no
// scoring and no I/O.
package guardrail

import (
	"strings"

	"health-assistant-be/pkg/clinical"
)

// criticalKeywords are scanned as lower-case substrings. Order matters only
// for which keyword gets reported; any match terminates the pipeline.
var criticalKeywords = []string{
	"suicide",
	"kill myself",
	"end my life",
	"self harm",
	"self-harm",
	"hurt myself",
	"overdose",
	"heart attack",
	"chest pain",
	"stroke",
	"can't breathe",
	"cannot breathe",
	"difficulty breathing",
	"shortness of breath severe",
	"unconscious",
	"not breathing",
	"seizure",
	"severe bleeding",
	"coughing blood",
	"vomiting blood",
	"anaphylaxis",
	"allergic reaction severe",
}

// Verdict is the outcome of a guardrail scan. When Safe is false, Alert is
// fully formed and must be returned to the caller unchanged.
type Verdict struct {
	Safe  bool
	Alert *clinical.EmergencyAlert
}

// Check scans the combined input text for critical keywords.
func Check(text string) Verdict {
	lower := strings.ToLower(text)
	for _, kw := range criticalKeywords {
		if strings.Contains(lower, kw) {
			return Verdict{
				Safe:  false,
				Alert: buildAlert(kw),
			}
		}
	}
	return Verdict{Safe: true}
}

func buildAlert(keyword string) *clinical.EmergencyAlert {
	return &clinical.EmergencyAlert{
		Severity:        "EMERGENCY",
		Message:         "Your message mentions a potentially life-threatening situation. This assistant cannot help with emergencies.",
		ImmediateAction: "Call your local emergency number or go to the nearest emergency department now. If someone is with you, ask them to stay until help arrives.",
		TriggerKeyword:  keyword,
	}
}

// Keywords returns a copy of the critical keyword set, for seeding and
// documentation tooling.
func Keywords() []string {
	out := make([]string, len(criticalKeywords))
	copy(out, criticalKeywords)
	return out
}
