package rag

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doc-chat-be/pkg/llm"
	"doc-chat-be/pkg/store"
)

// fakeProvider returns canned vectors and answers and records what it was
// asked, so assembly logic can be asserted without a live backend.
type fakeProvider struct {
	embed    func(texts []string) ([][]float32, error)
	answer   string
	err      error
	history  []llm.Message
	embedded [][]string
}

func (f *fakeProvider) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	f.embedded = append(f.embedded, texts)
	if f.embed != nil {
		return f.embed(texts)
	}
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = []float32{1, 0}
	}
	return vectors, nil
}

func (f *fakeProvider) Complete(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.history = history
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func newSessionWithDocs(t *testing.T, p *Pipeline, provider llm.Provider, docs map[string]string) *store.Session {
	t.Helper()
	session := &store.Session{ID: "test-session"}
	for filename, text := range docs {
		batch, err := p.IngestDocument(context.Background(), provider, text, filename)
		require.NoError(t, err)
		require.NoError(t, session.CommitUpload(filename, batch.Vectors, batch.Passages))
	}
	return session
}

func TestIngestDocumentEmpty(t *testing.T) {
	p := NewPipeline(Config{})
	provider := &fakeProvider{}

	_, err := p.IngestDocument(context.Background(), provider, "   \n ", "empty.txt")
	assert.ErrorIs(t, err, ErrEmptyDocument)
	assert.Empty(t, provider.embedded, "no provider call for empty input")
}

func TestIngestDocumentChunksAndEmbeds(t *testing.T) {
	p := NewPipeline(Config{ChunkSize: 100, ChunkOverlap: 20})
	provider := &fakeProvider{}

	text := strings.Repeat("some sentence about the topic. ", 20)
	batch, err := p.IngestDocument(context.Background(), provider, text, "doc.txt")
	require.NoError(t, err)

	assert.Greater(t, batch.ChunkCount(), 1)
	assert.Len(t, batch.Vectors, batch.ChunkCount())
	require.Len(t, provider.embedded, 1, "one embedding round trip per document")
	assert.Len(t, provider.embedded[0], batch.ChunkCount())

	for i, passage := range batch.Passages {
		assert.Equal(t, "doc.txt", passage.SourceFile)
		assert.Equal(t, i, passage.Index)
	}
}

func TestIngestDocumentEmbeddingError(t *testing.T) {
	p := NewPipeline(Config{})
	provider := &fakeProvider{
		embed: func([]string) ([][]float32, error) {
			return nil, errors.New("invalid api key")
		},
	}

	_, err := p.IngestDocument(context.Background(), provider, "some document text", "doc.txt")
	assert.ErrorIs(t, err, llm.ErrEmbeddingProvider)
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestIngestDocumentVectorCountMismatch(t *testing.T) {
	p := NewPipeline(Config{})
	provider := &fakeProvider{
		embed: func(texts []string) ([][]float32, error) {
			return [][]float32{{1, 0}, {0, 1}}, nil // always two, regardless of input
		},
	}

	_, err := p.IngestDocument(context.Background(), provider, "one short document", "doc.txt")
	assert.ErrorIs(t, err, llm.ErrEmbeddingProvider)
}

func TestQueryWithoutIndex(t *testing.T) {
	p := NewPipeline(Config{})
	session := &store.Session{ID: "fresh"}

	_, _, err := p.Query(context.Background(), &fakeProvider{}, "anything", session)
	assert.ErrorIs(t, err, ErrNoIndex)
}

func TestQueryAnswersFromIndex(t *testing.T) {
	p := NewPipeline(Config{ChunkSize: 50, ChunkOverlap: 10, TopK: 2})
	provider := &fakeProvider{answer: "The refund window is 30 days."}

	session := newSessionWithDocs(t, p, provider, map[string]string{
		"policy.txt": "Refunds are accepted within 30 days of purchase. Contact support to start one.",
	})

	answer, sources, err := p.Query(context.Background(), provider, "How long is the refund window?", session)
	require.NoError(t, err)
	assert.Equal(t, "The refund window is 30 days.", answer)
	assert.Equal(t, []string{"policy.txt"}, sources)

	// The final prompt carries both the retrieved context and the question.
	require.NotEmpty(t, provider.history)
	final := provider.history[len(provider.history)-1]
	assert.Equal(t, llm.RoleHuman, final.Role)
	assert.Contains(t, final.Content, "Refunds are accepted")
	assert.Contains(t, final.Content, "How long is the refund window?")
}

func TestQuerySourcesSpanFiles(t *testing.T) {
	p := NewPipeline(Config{ChunkSize: 2000, TopK: 6})
	provider := &fakeProvider{answer: "ok"}

	session := newSessionWithDocs(t, p, provider, map[string]string{
		"first.txt":  "Content of the first document.",
		"second.txt": "Content of the second document.",
	})
	require.Equal(t, 2, session.Index().Size())

	_, sources, err := p.Query(context.Background(), provider, "what do the documents say?", session)
	require.NoError(t, err)
	assert.Len(t, sources, 2)
	assert.ElementsMatch(t, []string{"first.txt", "second.txt"}, sources)
}

func TestQueryHistoryWindow(t *testing.T) {
	p := NewPipeline(Config{HistoryWindow: 4})
	provider := &fakeProvider{answer: "ok"}

	session := newSessionWithDocs(t, p, provider, map[string]string{
		"doc.txt": "Some indexed content.",
	})
	for i := 0; i < 5; i++ {
		session.AppendExchange("older question", "older answer")
	}

	_, _, err := p.Query(context.Background(), provider, "latest question", session)
	require.NoError(t, err)

	// 4 history messages plus the grounded prompt itself.
	require.Len(t, provider.history, 5)
	for _, msg := range provider.history[:4] {
		assert.Contains(t, []string{llm.RoleHuman, llm.RoleAssistant}, msg.Role)
	}
}

func TestQueryCompletionError(t *testing.T) {
	p := NewPipeline(Config{})
	provider := &fakeProvider{err: errors.New("model overloaded")}

	session := newSessionWithDocs(t, p, provider, map[string]string{
		"doc.txt": "Some indexed content.",
	})

	_, _, err := p.Query(context.Background(), provider, "question", session)
	assert.ErrorIs(t, err, llm.ErrCompletionProvider)
	assert.Empty(t, session.History(), "failed exchange must not be recorded")
}
