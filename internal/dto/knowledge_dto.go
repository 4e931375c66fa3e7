package dto

type IngestDocumentRequest struct {
	Content  string            `json:"content" validate:"required,max=20000"`
	Source   string            `json:"source" validate:"required,max=255"`
	Title    string            `json:"title" validate:"max=255"`
	Category string            `json:"category" validate:"max=100"`
	Dataset  string            `json:"dataset" validate:"required,oneof=symptom_fallback medlineplus who_nhs icd11 drug_interactions pubmed"`
	Metadata map[string]string `json:"metadata"`
}

// PublishIngestDocumentMessage is the payload carried on the ingest topic.
// Embedding happens in the consumer, off the request path.
type PublishIngestDocumentMessage struct {
	Content  string            `json:"content"`
	Source   string            `json:"source"`
	Title    string            `json:"title"`
	Category string            `json:"category"`
	Dataset  string            `json:"dataset"`
	Metadata map[string]string `json:"metadata"`
}
