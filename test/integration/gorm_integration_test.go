package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"health-assistant-be/internal/repository/implementation"
	"health-assistant-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	knowledgeRepo := implementation.NewKnowledgeRepository(gormDB)
	conversationRepo := implementation.NewConversationRepository(gormDB)
	assert.NotNil(t, knowledgeRepo)
	assert.NotNil(t, conversationRepo)

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)

	// Verify Data Access (implies columns exist)
	t.Run("Check Knowledge Repository", func(t *testing.T) {
		count, err := knowledgeRepo.CountByDataset(context.Background(), "symptom_fallback")
		assert.NoError(t, err)
		t.Logf("symptom_fallback documents: %d", count)
	})

	t.Run("Check Conversation Repository", func(t *testing.T) {
		turns, err := conversationRepo.FindRecentByUserId(context.Background(), uuid.New(), 10)
		assert.NoError(t, err)
		assert.Empty(t, turns)
	})
}
