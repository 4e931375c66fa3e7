package embedding

import "fmt"

// NewEmbeddingProvider selects a provider implementation by name.
func NewEmbeddingProvider(providerType, baseURL, apiKey, model string) (EmbeddingProvider, error) {
	switch providerType {
	case "ollama", "":
		return NewOllamaProvider(baseURL, model), nil
	case "openai":
		return NewOpenAIProvider(apiKey, baseURL, model), nil
	default:
		return nil, fmt.Errorf("unknown embedding provider: %s", providerType)
	}
}
