package orchestrator

import (
	"context"

	"health-assistant-be/pkg/clinical"
	"health-assistant-be/pkg/clinical/memory"
)

// Retriever is the knowledge-base collaborator. Results arrive ranked by
// the collaborator; the pipeline re-ranks and filters them by partition
// trust before validation.
type Retriever interface {
	Search(ctx context.Context, query string, topK int) ([]clinical.RetrievedDocument, error)
}

// MemoryStore is the conversation-memory collaborator.
type MemoryStore interface {
	GetRecentTurns(ctx context.Context, userID string, limit int) ([]clinical.ConversationTurn, error)
	GetStructuredContext(ctx context.Context, userID, query string) ([]memory.Chunk, error)
}

// Outcome describes which terminal state the pipeline reached, for audit
// logging. It never feeds back into the pipeline's own data model.
type Outcome struct {
	UserID         string
	TerminalState  string
	Intent         string
	ResultKind     clinical.ResultKind
	TriggerKeyword string
	Detail         string
}

// Terminal states reported to the audit recorder.
const (
	StateInputEmpty         = "input_empty"
	StateSafetyOverride     = "safety_override"
	StateShortcut           = "symptom_shortcut"
	StateClarification      = "clarification"
	StateRetrievalFallback  = "retrieval_insufficient_fallback"
	StateGenerated          = "generated"
	StateGenerationFallback = "generation_failed_fallback"
	StateGenerationError    = "generation_failed_error"
)

// AuditRecorder receives the pipeline outcome. Implementations must be
// non-blocking or cheap; the pipeline calls it exactly once per request.
type AuditRecorder interface {
	RecordOutcome(ctx context.Context, outcome Outcome)
}

// NopAudit discards outcomes. Useful in tests.
type NopAudit struct{}

func (NopAudit) RecordOutcome(context.Context, Outcome) {}
