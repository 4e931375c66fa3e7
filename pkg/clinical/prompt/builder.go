// Package prompt assembles the system and user prompts for the generation
// collaborator. Pure string assembly; the orchestrator decides what goes in.
package prompt

import (
	"fmt"
	"strings"

	"health-assistant-be/pkg/clinical"
)

// System returns the fixed system prompt with the safety rules every
// response must follow.
func System() string {
	var b strings.Builder

	b.WriteString("You are an empathetic AI health assistant providing safe, preliminary guidance.\n")
	b.WriteString("Strict rules for every response:\n")
	b.WriteString("1. You are not a medical professional; your analysis is informational only and the user must consult a qualified healthcare provider for diagnosis and treatment.\n")
	b.WriteString("2. Analyze the symptoms or question carefully against the provided knowledge context.\n")
	b.WriteString("3. List only *potential* conditions, using cautious language such as 'this could possibly be related to'.\n")
	b.WriteString("4. Give general, safe, actionable advice including lifestyle or dietary suggestions where appropriate.\n")
	b.WriteString("5. NEVER diagnose. Never say 'you have X'.\n")
	b.WriteString("6. Respond with ONLY valid JSON matching this shape:\n")
	b.WriteString(`{"information_text": "...", "possible_conditions": ["..."], "reasoning": "...", "next_steps": ["..."], "confidence_label": "high|moderate|low"}`)
	b.WriteString("\n")

	return b.String()
}

// User builds the user prompt from the request-scoped inputs.
// contextInsufficient marks retrieval context that failed validation but is
// being sent anyway as best effort.
func User(
	profile clinical.Profile,
	query string,
	confirmedContext string,
	docs []clinical.RetrievedDocument,
	contextInsufficient bool,
) string {
	var b strings.Builder

	b.WriteString("<user_profile>\n")
	if profile.Age > 0 {
		fmt.Fprintf(&b, "Age: %d\n", profile.Age)
	}
	if profile.Gender != "" {
		fmt.Fprintf(&b, "Gender: %s\n", profile.Gender)
	}
	if profile.Allergies != "" {
		fmt.Fprintf(&b, "Allergies: %s\n", profile.Allergies)
	}
	if profile.ChronicConditions != "" {
		fmt.Fprintf(&b, "Chronic conditions: %s\n", profile.ChronicConditions)
	}
	b.WriteString("</user_profile>\n\n")

	b.WriteString("<confirmed_context>\n")
	b.WriteString(confirmedContext)
	b.WriteString("\n</confirmed_context>\n\n")

	b.WriteString("<knowledge_context>\n")
	if len(docs) == 0 {
		b.WriteString("No knowledge-base passages were retrieved for this query.\n")
	} else {
		for i, doc := range docs {
			fmt.Fprintf(&b, "[%d] %s - %s\n%s\n\n", i+1, doc.Source, doc.Title, doc.Text)
		}
	}
	if contextInsufficient {
		b.WriteString("NOTE: The passages above may be insufficient or only loosely related to the query. Be explicit about uncertainty and keep advice general.\n")
	}
	b.WriteString("</knowledge_context>\n\n")

	b.WriteString("<query>\n")
	b.WriteString(query)
	b.WriteString("\n</query>")

	return b.String()
}
