package implementation

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/utils/tests"
)

// sqlCapture records the last statement gorm builds so dry-run
// queries can be inspected without a live database.
type sqlCapture struct {
	last string
}

func (c *sqlCapture) LogMode(logger.LogLevel) logger.Interface { return c }

func (c *sqlCapture) Info(context.Context, string, ...interface{})  {}
func (c *sqlCapture) Warn(context.Context, string, ...interface{})  {}
func (c *sqlCapture) Error(context.Context, string, ...interface{}) {}

func (c *sqlCapture) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	c.last, _ = fc()
}

func TestSearchSimilarByUserIdOrdersBySimilarity(t *testing.T) {
	capture := &sqlCapture{}
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true, Logger: capture})
	if err != nil {
		t.Fatalf("failed to open dry-run db: %v", err)
	}

	repo := NewMemoryChunkRepository(db)
	_, _ = repo.SearchSimilarByUserId(context.Background(), uuid.New(), []float32{0.1, 0.2, 0.3}, 3)

	if !strings.Contains(capture.last, "embedding_value <=>") {
		t.Fatalf("expected cosine distance in query, got %q", capture.last)
	}
	if !strings.Contains(capture.last, "ORDER BY similarity DESC") {
		t.Fatalf("expected similarity ordering, got %q", capture.last)
	}
}
