// Package memory decides whether prior conversation context is admissible
// for the current request and renders it for prompting. Pure logic; the
// orchestrator owns the actual memory-store calls.
package memory

import (
	"strings"

	"health-assistant-be/pkg/clinical"
)

// NoConfirmedContext is the sentinel used when prior context may not be
// injected into the prompt.
const NoConfirmedContext = "No confirmed prior context for this query."

// Chunk is one structured memory item the memory collaborator returns.
type Chunk struct {
	Type    string
	Content string
}

// Admissible reports whether stored context may influence this request.
// Only an affirmative user confirmation unlocks memory.
func Admissible(confirmation clinical.Confirmation) bool {
	return confirmation == clinical.ConfirmationYes
}

// Summarize renders memory chunks into a short confirmed-context block for
// the generation prompt.
func Summarize(chunks []Chunk) string {
	if len(chunks) == 0 {
		return "No relevant past medical context found."
	}

	var b strings.Builder
	b.WriteString("Known medical context from previous interactions:\n")
	for _, chunk := range chunks {
		b.WriteString("- [")
		b.WriteString(chunk.Type)
		b.WriteString("] ")
		b.WriteString(chunk.Content)
		b.WriteString("\n")
	}
	return b.String()
}
