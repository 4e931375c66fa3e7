package contract

import (
	"context"

	"health-assistant-be/internal/model"

	"github.com/google/uuid"
)

type MemoryChunkRepository interface {
	Create(ctx context.Context, chunk *model.MemoryChunk) error
	SearchSimilarByUserId(ctx context.Context, userId uuid.UUID, embedding []float32, limit int) ([]*model.MemoryChunk, error)
	DeleteByUserId(ctx context.Context, userId uuid.UUID) error
}
