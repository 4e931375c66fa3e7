package dto

import "time"

type AnalysisQueryRequest struct {
	TextQuery       string `json:"text_query" validate:"max=4000"`
	TranscribedText string `json:"transcribed_text" validate:"max=8000"`
	ImageCaption    string `json:"image_caption" validate:"max=2000"`
	ReportText      string `json:"report_text" validate:"max=8000"`

	// "yes" uses confirmed prior context, "no" declines it, "skip" (or
	// empty) means the user was never asked.
	MemoryConfirmation string `json:"memory_confirmation" validate:"omitempty,oneof=yes no skip"`
}

// AnalysisQueryResponse is a tagged union; Type selects which payload
// field is populated.
type AnalysisQueryResponse struct {
	Type          string                 `json:"type"` // clarification_questions | health_report | emergency | error
	Clarification *ClarificationPayload  `json:"clarification,omitempty"`
	Report        *HealthReportPayload   `json:"report,omitempty"`
	Emergency     *EmergencyAlertPayload `json:"emergency,omitempty"`
	Error         *ErrorPayload          `json:"error,omitempty"`
}

type ClarificationPayload struct {
	Context   string   `json:"context"`
	Questions []string `json:"questions"`
}

type HealthReportPayload struct {
	InformationText    string                   `json:"information_text"`
	PossibleConditions []string                 `json:"possible_conditions"`
	Reasoning          string                   `json:"reasoning"`
	NextSteps          []string                 `json:"next_steps"`
	ConfidenceLabel    string                   `json:"confidence_label"`
	Sources            []KnowledgeSourcePayload `json:"sources"`
}

type KnowledgeSourcePayload struct {
	Source      string `json:"source"`
	Description string `json:"description"`
}

type EmergencyAlertPayload struct {
	Severity        string `json:"severity"`
	Message         string `json:"message"`
	ImmediateAction string `json:"immediate_action"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

type ConversationTurnResponse struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Kind      string    `json:"kind,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type UpdateProfileRequest struct {
	Age               int      `json:"age" validate:"omitempty,gte=0,lte=130"`
	Gender            string   `json:"gender" validate:"max=50"`
	Allergies         []string `json:"allergies" validate:"max=50,dive,max=100"`
	ChronicConditions []string `json:"chronic_conditions" validate:"max=50,dive,max=100"`
}
