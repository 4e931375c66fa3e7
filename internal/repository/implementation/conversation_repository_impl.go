package implementation

import (
	"context"

	"health-assistant-be/internal/model"
	"health-assistant-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConversationRepositoryImpl struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) contract.ConversationRepository {
	return &ConversationRepositoryImpl{db: db}
}

func (r *ConversationRepositoryImpl) Create(ctx context.Context, turn *model.ConversationTurn) error {
	return r.db.WithContext(ctx).Create(turn).Error
}

// FindRecentByUserId returns the last `limit` turns in chronological order.
func (r *ConversationRepositoryImpl) FindRecentByUserId(ctx context.Context, userId uuid.UUID, limit int) ([]*model.ConversationTurn, error) {
	var turns []*model.ConversationTurn
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Limit(limit).
		Find(&turns).Error
	if err != nil {
		return nil, err
	}

	// Reverse so callers see oldest first
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}
	return turns, nil
}

func (r *ConversationRepositoryImpl) DeleteByUserId(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Delete(&model.ConversationTurn{}).Error
}
