package contract

import (
	"context"

	"health-assistant-be/internal/model"

	"github.com/google/uuid"
)

type AuditRepository interface {
	Create(ctx context.Context, record *model.AnalysisAudit) error
	FindRecentByUserId(ctx context.Context, userId uuid.UUID, limit int) ([]*model.AnalysisAudit, error)
}
