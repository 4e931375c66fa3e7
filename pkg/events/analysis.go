package events

import "time"

const (
	TypeAnalysisCompleted = "ANALYSIS_COMPLETED"
	TypeSafetyOverride    = "SAFETY_OVERRIDE"
	TypeKnowledgeIngested = "KNOWLEDGE_INGESTED"
)

// NewAnalysisCompleted records the terminal state of one pipeline run.
func NewAnalysisCompleted(userID, terminalState, queryIntent, resultKind string) Event {
	return BaseEvent{
		Type: TypeAnalysisCompleted,
		Data: map[string]interface{}{
			"user_id":        userID,
			"terminal_state": terminalState,
			"intent":         queryIntent,
			"result_kind":    resultKind,
		},
		OccurredAt: time.Now(),
	}
}

// NewSafetyOverride records an emergency short-circuit. The triggering
// keyword is included; the raw query never is.
func NewSafetyOverride(userID, keyword string) Event {
	return BaseEvent{
		Type: TypeSafetyOverride,
		Data: map[string]interface{}{
			"user_id": userID,
			"keyword": keyword,
		},
		OccurredAt: time.Now(),
	}
}

// NewKnowledgeIngested records a document landing in a knowledge partition.
func NewKnowledgeIngested(documentID, dataset string) Event {
	return BaseEvent{
		Type: TypeKnowledgeIngested,
		Data: map[string]interface{}{
			"document_id": documentID,
			"dataset":     dataset,
		},
		OccurredAt: time.Now(),
	}
}
