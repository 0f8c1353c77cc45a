package llm

import (
	"context"
	"errors"
	"fmt"
)

// ProviderType selects which AI backend a session is bound to.
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderGemini ProviderType = "gemini"
)

// ParseProviderType validates a user-supplied provider name.
func ParseProviderType(s string) (ProviderType, error) {
	switch ProviderType(s) {
	case ProviderOpenAI:
		return ProviderOpenAI, nil
	case ProviderGemini:
		return ProviderGemini, nil
	default:
		return "", fmt.Errorf("unsupported AI provider: %q", s)
	}
}

// Chat roles in a provider-agnostic format. Adapters map these to whatever
// the backend expects; no separate system role is used, grounding
// instructions are folded into the final human turn.
const (
	RoleHuman     = "human"
	RoleAssistant = "assistant"
)

// Message represents a chat message in a provider-agnostic format.
type Message struct {
	Role    string
	Content string
}

// Sentinel errors the retrieval pipeline wraps around failed external calls.
// Adapters never retry; retry/backoff belongs to callers that want it.
var (
	ErrEmbeddingProvider  = errors.New("embedding provider request failed")
	ErrCompletionProvider = errors.New("completion provider request failed")
)

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// ApplyOptions folds a variadic option list into a concrete Options value.
// Temperature defaults to 0 for reproducibility.
func ApplyOptions(opts ...Option) *Options {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// Provider is the capability a session binds at creation time: batch
// embedding plus chat completion against the same backend and credential.
type Provider interface {
	// EmbedBatch returns one embedding vector per input text, in order,
	// produced by a single round trip to the backend.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Complete sends a chat history to the model and returns the response.
	Complete(ctx context.Context, history []Message, options ...Option) (string, error)
}

// FactoryFunc builds a Provider for the given type and API key. Services
// take this instead of a concrete factory so tests can stub the backends.
type FactoryFunc func(providerType ProviderType, apiKey string) (Provider, error)
