package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AnalysisAudit stores the terminal state of each pipeline run. Raw query
// text is deliberately not persisted here.
type AnalysisAudit struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId        uuid.UUID      `gorm:"type:uuid;not null;index"`
	TerminalState string         `gorm:"type:varchar(100);not null;index"`
	Intent        string         `gorm:"type:varchar(50)"`
	ResultKind    string         `gorm:"type:varchar(50);not null"`
	Detail        datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
}

func (AnalysisAudit) TableName() string {
	return "analysis_audits"
}
