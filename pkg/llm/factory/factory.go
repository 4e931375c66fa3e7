package factory

import (
	"fmt"

	"health-assistant-be/pkg/llm"
	"health-assistant-be/pkg/llm/ollama"
	"health-assistant-be/pkg/llm/openai"
)

func NewLLMProvider(providerType, modelName, baseURL, apiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	case "openai", "groq":
		if apiKey == "" {
			return nil, fmt.Errorf("api key required for provider %s", providerType)
		}
		return openai.NewOpenAIProvider(apiKey, baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
