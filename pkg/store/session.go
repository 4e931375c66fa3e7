package store

// Session holds the short-lived state of an analysis conversation that
// spans a clarification or memory-confirmation round trip.
type Session struct {
	ID     string `json:"id"` // one session per user
	UserID string `json:"user_id"`
	State  string `json:"state"`

	// The query that triggered the pending round trip, so the follow-up
	// answer can be merged back into it.
	PendingQuery string `json:"pending_query"`

	// Questions sent to the user, awaiting answers.
	PendingQuestions []string `json:"pending_questions"`

	// Metadata for last interaction
	LastQuery string `json:"last_query"`
}

const (
	StateIdle                 = "IDLE"
	StateAwaitingClarify      = "AWAITING_CLARIFICATION"
	StateAwaitingConfirmation = "AWAITING_CONFIRMATION"
)
