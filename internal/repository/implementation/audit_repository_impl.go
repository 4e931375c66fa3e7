package implementation

import (
	"context"

	"health-assistant-be/internal/model"
	"health-assistant-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditRepositoryImpl struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) contract.AuditRepository {
	return &AuditRepositoryImpl{db: db}
}

func (r *AuditRepositoryImpl) Create(ctx context.Context, record *model.AnalysisAudit) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *AuditRepositoryImpl) FindRecentByUserId(ctx context.Context, userId uuid.UUID, limit int) ([]*model.AnalysisAudit, error) {
	var records []*model.AnalysisAudit
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
