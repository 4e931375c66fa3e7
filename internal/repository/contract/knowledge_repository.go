package contract

import (
	"context"

	"health-assistant-be/internal/model"

	"github.com/google/uuid"
)

// ScoredKnowledgeDocument pairs a document with its cosine similarity to
// the query vector.
type ScoredKnowledgeDocument struct {
	Document   *model.KnowledgeDocument
	Similarity float64
}

type KnowledgeRepository interface {
	Create(ctx context.Context, doc *model.KnowledgeDocument) error
	FindById(ctx context.Context, id uuid.UUID) (*model.KnowledgeDocument, error)
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int) ([]*ScoredKnowledgeDocument, error)
	CountByDataset(ctx context.Context, dataset string) (int64, error)
	DeleteByDataset(ctx context.Context, dataset string) error
}
