// Package clinical holds the shared domain types for the query analysis
// pipeline. Everything here is request-scoped and immutable once built;
// the pipeline stages under pkg/clinical/* never mutate these values.
package clinical

import "time"

// Confirmation is the caller-supplied tri-state that tells the pipeline
// whether a previously asked clarification has been answered.
type Confirmation string

const (
	ConfirmationYes  Confirmation = "yes"  // user confirmed prior context is relevant
	ConfirmationNo   Confirmation = "no"   // user rejected prior context
	ConfirmationSkip Confirmation = "skip" // first pass, nothing to confirm
)

// Turn roles, matching what the memory store persists.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// TurnKindClarification tags assistant turns that carried a clarification
// request. The follow-up controller scans for this tag to enforce the
// one-outstanding-clarification ceiling.
const TurnKindClarification = "clarification_questions"

// ConversationTurn is one entry of the bounded history window the caller
// injects. Ordered oldest to newest.
type ConversationTurn struct {
	Role      string
	Content   string
	Kind      string
	Timestamp time.Time
}

// Profile is an opaque bag of demographic and clinical fields. It is used
// only for prompt construction, never for branching.
type Profile struct {
	Age               int
	Gender            string
	Allergies         string
	ChronicConditions string
}

// Inputs carries all harmonized input channels for one request. Voice,
// image and report content arrive already transcribed, captioned and
// extracted by upstream collaborators.
type Inputs struct {
	TextQuery       string
	TranscribedText string
	ImageCaption    string
	ReportText      string
	Confirmation    Confirmation
}

// RetrievedDocument is one candidate returned by the retrieval
// collaborator. Read-only within the pipeline.
type RetrievedDocument struct {
	Text     string
	Source   string
	Title    string
	Score    float64
	Category string
	Dataset  string
}
