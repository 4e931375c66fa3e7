package clinical

// ResultKind discriminates the PipelineResult union. The string values are
// the wire-level type tags the API layer exposes.
type ResultKind string

const (
	KindClarification ResultKind = "clarification_questions"
	KindHealthReport  ResultKind = "health_report"
	KindEmergency     ResultKind = "emergency"
	KindError         ResultKind = "error"
)

// ClarificationRequest asks the user for more detail before analysis.
// At most two questions are ever attached.
type ClarificationRequest struct {
	Context   string   `json:"context"`
	Questions []string `json:"questions"`
}

// KnowledgeSource names one knowledge-base source a report drew from.
type KnowledgeSource struct {
	Source      string `json:"source"`
	Description string `json:"description"`
}

// HealthReport is the structured answer produced either by the generation
// collaborator or by the static symptom fallback.
type HealthReport struct {
	InformationText    string            `json:"information_text"`
	PossibleConditions []string          `json:"possible_conditions"`
	Reasoning          string            `json:"reasoning"`
	NextSteps          []string          `json:"next_steps"`
	ConfidenceLabel    string            `json:"confidence_label"`
	Sources            []KnowledgeSource `json:"sources"`
}

// EmergencyAlert is the fixed-shape result the safety guardrail produces.
// TriggerKeyword records which critical keyword fired, for auditing.
type EmergencyAlert struct {
	Severity        string `json:"severity"`
	Message         string `json:"message"`
	ImmediateAction string `json:"immediate_action"`
	TriggerKeyword  string `json:"trigger_keyword"`
}

// ErrorFallback is the terminal result when no other variant can be built.
type ErrorFallback struct {
	Message string `json:"message"`
}

// PipelineResult is a tagged union: exactly one payload field is non-nil and
// it matches Kind. Guaranteeing this is the whole point of the pipeline.
type PipelineResult struct {
	Kind          ResultKind            `json:"type"`
	Clarification *ClarificationRequest `json:"clarification,omitempty"`
	Report        *HealthReport         `json:"report,omitempty"`
	Emergency     *EmergencyAlert       `json:"emergency,omitempty"`
	Error         *ErrorFallback        `json:"error,omitempty"`
}

func ClarificationResult(c *ClarificationRequest) *PipelineResult {
	return &PipelineResult{Kind: KindClarification, Clarification: c}
}

func ReportResult(r *HealthReport) *PipelineResult {
	return &PipelineResult{Kind: KindHealthReport, Report: r}
}

func EmergencyResult(a *EmergencyAlert) *PipelineResult {
	return &PipelineResult{Kind: KindEmergency, Emergency: a}
}

func ErrorResult(message string) *PipelineResult {
	return &PipelineResult{Kind: KindError, Error: &ErrorFallback{Message: message}}
}
