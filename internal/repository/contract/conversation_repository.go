package contract

import (
	"context"

	"health-assistant-be/internal/model"

	"github.com/google/uuid"
)

type ConversationRepository interface {
	Create(ctx context.Context, turn *model.ConversationTurn) error
	FindRecentByUserId(ctx context.Context, userId uuid.UUID, limit int) ([]*model.ConversationTurn, error)
	DeleteByUserId(ctx context.Context, userId uuid.UUID) error
}
