package openai

import (
	"context"
	"errors"
	"fmt"
	"math"

	goopenai "github.com/sashabaranov/go-openai"

	"doc-chat-be/pkg/llm"
)

const chatModel = "gpt-4o-mini"

// Provider implements llm.Provider against the OpenAI API using the
// session's own API key (BYOK).
type Provider struct {
	client *goopenai.Client
}

// Ensure Provider implements llm.Provider
var _ llm.Provider = &Provider{}

func NewProvider(apiKey string) *Provider {
	return &Provider{
		client: goopenai.NewClient(apiKey),
	}
}

// EmbedBatch embeds all texts in one request with text-embedding-3-small.
func (p *Provider) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	resp, err := p.client.CreateEmbeddings(ctx, goopenai.EmbeddingRequest{
		Input: texts,
		Model: goopenai.SmallEmbedding3,
	})
	if err != nil {
		return nil, fmt.Errorf("openai embeddings: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("openai embeddings: got %d vectors for %d inputs", len(resp.Data), len(texts))
	}

	// The API tags each vector with its input index; order by that rather
	// than trusting response order.
	vectors := make([][]float32, len(texts))
	for _, d := range resp.Data {
		if d.Index < 0 || d.Index >= len(vectors) {
			return nil, fmt.Errorf("openai embeddings: index %d out of range", d.Index)
		}
		vectors[d.Index] = d.Embedding
	}
	return vectors, nil
}

// Complete sends the chat history to gpt-4o-mini and returns the reply text.
func (p *Provider) Complete(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := llm.ApplyOptions(opts...)

	messages := make([]goopenai.ChatCompletionMessage, len(history))
	for i, msg := range history {
		role := goopenai.ChatMessageRoleUser
		if msg.Role == llm.RoleAssistant {
			role = goopenai.ChatMessageRoleAssistant
		}
		messages[i] = goopenai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Content,
		}
	}

	model := chatModel
	if options.Model != "" {
		model = options.Model
	}

	// go-openai omits a zero temperature from the payload, which would fall
	// back to the API default; the smallest nonzero float survives
	// serialization and still behaves as 0.
	temperature := float32(options.Temperature)
	if temperature == 0 {
		temperature = math.SmallestNonzeroFloat32
	}

	resp, err := p.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   options.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai chat completion: response contained no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
