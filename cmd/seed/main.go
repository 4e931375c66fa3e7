package main

import (
	"context"
	"log"
	"os"

	"health-assistant-be/internal/config"
	"health-assistant-be/internal/model"
	"health-assistant-be/internal/repository/implementation"
	"health-assistant-be/pkg/clinical/fallback"
	"health-assistant-be/pkg/clinical/routing"
	"health-assistant-be/pkg/database"
	"health-assistant-be/pkg/embedding"

	"github.com/fatih/color"
	"github.com/pgvector/pgvector-go"
)

// Seeds the symptom_fallback partition from the curated symptom table so
// retrieval and the static shortcut answer from the same guidance.
func main() {
	cfg := config.Load()

	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	embeddingProvider, err := embedding.NewEmbeddingProvider(
		cfg.Ai.EmbeddingProvider,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.LLMAPIKey,
		cfg.Ai.OllamaModel,
	)
	if err != nil {
		log.Fatal("Error: Failed to initialize embedding provider:", err)
	}

	repo := implementation.NewKnowledgeRepository(db)
	ctx := context.Background()
	dataset := string(routing.SymptomFallback)

	existing, err := repo.CountByDataset(ctx, dataset)
	if err != nil {
		log.Fatal("Error: Failed to count dataset:", err)
	}
	if existing > 0 {
		color.Yellow("Dataset %s already has %d documents, re-seeding...", dataset, existing)
		if err := repo.DeleteByDataset(ctx, dataset); err != nil {
			log.Fatal("Error: Failed to clear dataset:", err)
		}
	}

	entries := fallback.Entries()
	color.Cyan("Seeding %d symptom guides into %s...", len(entries), dataset)

	seeded := 0
	for symptom, advice := range entries {
		resp, err := embeddingProvider.Generate(symptom+": "+advice, embedding.TaskRetrievalDocument)
		if err != nil {
			color.Red("  ✗ %s: embedding failed: %v", symptom, err)
			continue
		}

		doc := &model.KnowledgeDocument{
			Content:        advice,
			Source:         "Primary Symptom Guide",
			Title:          symptom,
			Category:       "primary symptom",
			Dataset:        dataset,
			EmbeddingValue: pgvector.NewVector(resp.Embedding.Values),
		}
		if err := repo.Create(ctx, doc); err != nil {
			color.Red("  ✗ %s: insert failed: %v", symptom, err)
			continue
		}
		color.Green("  ✓ %s", symptom)
		seeded++
	}

	if seeded < len(entries) {
		color.Red("Seeded %d/%d symptom guides", seeded, len(entries))
		os.Exit(1)
	}
	color.Green("Seeded %d symptom guides", seeded)
}
