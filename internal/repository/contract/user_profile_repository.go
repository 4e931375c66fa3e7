package contract

import (
	"context"

	"health-assistant-be/internal/model"

	"github.com/google/uuid"
)

type UserProfileRepository interface {
	Upsert(ctx context.Context, profile *model.UserProfile) error
	FindByUserId(ctx context.Context, userId uuid.UUID) (*model.UserProfile, error)
}
