package factory

import (
	"fmt"

	"doc-chat-be/pkg/llm"
	"doc-chat-be/pkg/llm/gemini"
	"doc-chat-be/pkg/llm/openai"
)

// NewProvider builds the concrete provider for a session's backend choice.
// New backends are added here by implementing llm.Provider, not by
// branching elsewhere.
func NewProvider(providerType llm.ProviderType, apiKey string) (llm.Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("missing API key for provider %q", providerType)
	}

	switch providerType {
	case llm.ProviderOpenAI:
		return openai.NewProvider(apiKey), nil
	case llm.ProviderGemini:
		return gemini.NewProvider(apiKey), nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", providerType)
	}
}

// Ensure the factory satisfies the injection signature services expect.
var _ llm.FactoryFunc = NewProvider
