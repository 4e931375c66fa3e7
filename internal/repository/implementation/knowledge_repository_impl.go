package implementation

import (
	"context"
	"errors"

	"health-assistant-be/internal/model"
	"health-assistant-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type KnowledgeRepositoryImpl struct {
	db *gorm.DB
}

func NewKnowledgeRepository(db *gorm.DB) contract.KnowledgeRepository {
	return &KnowledgeRepositoryImpl{db: db}
}

func (r *KnowledgeRepositoryImpl) Create(ctx context.Context, doc *model.KnowledgeDocument) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *KnowledgeRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*model.KnowledgeDocument, error) {
	var m model.KnowledgeDocument
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// SearchSimilarWithScore returns documents with similarity scores.
// Cosine distance in pgvector is 1 - cosine_similarity, so we compute
// 1 - (embedding_value <=> query_vector) = cosine_similarity.
func (r *KnowledgeRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int) ([]*contract.ScoredKnowledgeDocument, error) {
	if limit <= 0 {
		limit = 5
	}

	type result struct {
		model.KnowledgeDocument
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("knowledge_documents").
		Select("knowledge_documents.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Where("knowledge_documents.deleted_at IS NULL").
		Order("similarity DESC").
		Limit(limit).
		Find(&results).Error
	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredKnowledgeDocument, len(results))
	for i := range results {
		doc := results[i].KnowledgeDocument
		scored[i] = &contract.ScoredKnowledgeDocument{
			Document:   &doc,
			Similarity: results[i].Similarity,
		}
	}
	return scored, nil
}

func (r *KnowledgeRepositoryImpl) CountByDataset(ctx context.Context, dataset string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.KnowledgeDocument{}).
		Where("dataset = ?", dataset).
		Count(&count).Error
	return count, err
}

func (r *KnowledgeRepositoryImpl) DeleteByDataset(ctx context.Context, dataset string) error {
	return r.db.WithContext(ctx).
		Where("dataset = ?", dataset).
		Delete(&model.KnowledgeDocument{}).Error
}
