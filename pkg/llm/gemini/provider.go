package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"doc-chat-be/pkg/llm"
)

const (
	embeddingModel = "text-embedding-004"
	chatModel      = "gemini-2.5-flash"
)

// Provider implements llm.Provider against the Gemini API using the
// session's own API key (BYOK). The genai client is created per call; for
// the API-key backend that is a cheap local construction.
type Provider struct {
	apiKey string
}

// Ensure Provider implements llm.Provider
var _ llm.Provider = &Provider{}

func NewProvider(apiKey string) *Provider {
	return &Provider{apiKey: apiKey}
}

func (p *Provider) newClient(ctx context.Context) (*genai.Client, error) {
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

// EmbedBatch embeds all texts in one request with text-embedding-004.
func (p *Provider) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	client, err := p.newClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	contents := make([]*genai.Content, len(texts))
	for i, text := range texts {
		contents[i] = genai.NewContentFromText(text, genai.RoleUser)
	}

	resp, err := client.Models.EmbedContent(ctx, embeddingModel, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("gemini embeddings: %w", err)
	}
	if len(resp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("gemini embeddings: got %d vectors for %d inputs", len(resp.Embeddings), len(texts))
	}

	vectors := make([][]float32, len(resp.Embeddings))
	for i, emb := range resp.Embeddings {
		if emb == nil || len(emb.Values) == 0 {
			return nil, fmt.Errorf("gemini embeddings: empty vector at index %d", i)
		}
		vectors[i] = emb.Values
	}
	return vectors, nil
}

// Complete sends the chat history to gemini-2.5-flash and returns the reply
// text. Roles map to Gemini's user/model pair.
func (p *Provider) Complete(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := llm.ApplyOptions(opts...)

	client, err := p.newClient(ctx)
	if err != nil {
		return "", fmt.Errorf("gemini client: %w", err)
	}

	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		role := genai.RoleUser
		if msg.Role == llm.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{genai.NewPartFromText(msg.Content)},
		})
	}

	model := chatModel
	if options.Model != "" {
		model = options.Model
	}

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(options.Temperature)),
	}
	if options.MaxTokens > 0 {
		config.MaxOutputTokens = int32(options.MaxTokens)
	}

	resp, err := client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("gemini generate content: response contained no text")
	}
	return text, nil
}
