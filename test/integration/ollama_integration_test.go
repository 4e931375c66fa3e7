package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"health-assistant-be/pkg/embedding"
	"health-assistant-be/pkg/llm/ollama"

	"health-assistant-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Exercises a locally running Ollama instance. Skipped unless
// OLLAMA_INTEGRATION=1.

func ollamaBaseURL() string {
	if url := os.Getenv("OLLAMA_BASE_URL"); url != "" {
		return url
	}
	return "http://localhost:11434"
}

func TestOllamaChat(t *testing.T) {
	if os.Getenv("OLLAMA_INTEGRATION") != "1" {
		t.Skip("Skipping integration test: OLLAMA_INTEGRATION not set")
	}

	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = "llama3"
	}

	provider := ollama.NewOllamaProvider(ollamaBaseURL(), model)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	reply, err := provider.Chat(ctx, []llm.Message{
		{Role: "system", Content: "You are a concise assistant."},
		{Role: "user", Content: "Reply with the single word: ready"},
	}, llm.WithTemperature(0))
	require.NoError(t, err)
	assert.NotEmpty(t, reply)
	t.Logf("Ollama reply: %q", reply)
}

func TestOllamaEmbedding(t *testing.T) {
	if os.Getenv("OLLAMA_INTEGRATION") != "1" {
		t.Skip("Skipping integration test: OLLAMA_INTEGRATION not set")
	}

	provider := embedding.NewOllamaProvider(ollamaBaseURL(), "nomic-embed-text")

	resp, err := provider.Generate("persistent headache with nausea", embedding.TaskRetrievalQuery)
	require.NoError(t, err)
	require.NotEmpty(t, resp.Embedding.Values)

	// Provider normalizes to unit length
	var sumSquares float64
	for _, v := range resp.Embedding.Values {
		sumSquares += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, sumSquares, 0.01)
}
