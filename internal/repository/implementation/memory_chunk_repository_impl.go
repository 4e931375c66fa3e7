package implementation

import (
	"context"

	"health-assistant-be/internal/model"
	"health-assistant-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type MemoryChunkRepositoryImpl struct {
	db *gorm.DB
}

func NewMemoryChunkRepository(db *gorm.DB) contract.MemoryChunkRepository {
	return &MemoryChunkRepositoryImpl{db: db}
}

func (r *MemoryChunkRepositoryImpl) Create(ctx context.Context, chunk *model.MemoryChunk) error {
	return r.db.WithContext(ctx).Create(chunk).Error
}

func (r *MemoryChunkRepositoryImpl) SearchSimilarByUserId(ctx context.Context, userId uuid.UUID, embedding []float32, limit int) ([]*model.MemoryChunk, error) {
	if limit <= 0 {
		limit = 5
	}
	var chunks []*model.MemoryChunk

	err := r.db.WithContext(ctx).
		Table("memory_chunks").
		Select("memory_chunks.*, 1 - (embedding_value <=> ?) as similarity", pgvector.NewVector(embedding)).
		Where("user_id = ?", userId).
		Where("memory_chunks.deleted_at IS NULL").
		Order("similarity DESC").
		Limit(limit).
		Find(&chunks).Error
	if err != nil {
		return nil, err
	}
	return chunks, nil
}

func (r *MemoryChunkRepositoryImpl) DeleteByUserId(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Delete(&model.MemoryChunk{}).Error
}
