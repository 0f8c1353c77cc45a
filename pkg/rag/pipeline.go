package rag

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"doc-chat-be/pkg/llm"
	"doc-chat-be/pkg/rag/prompt"
	"doc-chat-be/pkg/store"
	"doc-chat-be/pkg/utils"
	"doc-chat-be/pkg/vectorstore"
)

var (
	// ErrEmptyDocument means chunking produced nothing to index.
	ErrEmptyDocument = errors.New("document produced no indexable text")

	// ErrNoIndex means a query arrived before any successful upload.
	ErrNoIndex = errors.New("no documents uploaded yet")
)

const (
	DefaultChunkSize     = 2000
	DefaultChunkOverlap  = 400
	DefaultTopK          = 6
	DefaultHistoryWindow = 6 // individual messages, i.e. 3 exchanges

	// Visible delimiter between retrieved passages in the context block.
	contextDelimiter = "\n\n---\n\n"
)

type Config struct {
	ChunkSize     int
	ChunkOverlap  int
	TopK          int
	HistoryWindow int
}

func (c Config) withDefaults() Config {
	if c.ChunkSize <= 0 {
		c.ChunkSize = DefaultChunkSize
	}
	if c.ChunkOverlap <= 0 {
		c.ChunkOverlap = DefaultChunkOverlap
	}
	if c.TopK <= 0 {
		c.TopK = DefaultTopK
	}
	if c.HistoryWindow <= 0 {
		c.HistoryWindow = DefaultHistoryWindow
	}
	return c
}

// Pipeline orchestrates chunk -> embed -> index on ingestion and
// embed -> retrieve -> assemble -> complete on query. It performs no
// retries: a failed provider call surfaces to the caller as-is, wrapped in
// the matching sentinel.
type Pipeline struct {
	cfg Config
}

func NewPipeline(cfg Config) *Pipeline {
	return &Pipeline{cfg: cfg.withDefaults()}
}

// IngestBatch is a chunked and embedded document, ready to be committed to
// a session's index. Keeping the commit separate lets callers apply it
// under the session lock while the embedding call ran outside it.
type IngestBatch struct {
	Passages []vectorstore.Passage
	Vectors  [][]float32
}

func (b *IngestBatch) ChunkCount() int { return len(b.Passages) }

// IngestDocument chunks the extracted text and embeds every passage in a
// single provider round trip.
func (p *Pipeline) IngestDocument(ctx context.Context, provider llm.Provider, text, filename string) (*IngestBatch, error) {
	chunks := utils.SplitText(text, p.cfg.ChunkSize, p.cfg.ChunkOverlap)
	if len(chunks) == 0 {
		return nil, ErrEmptyDocument
	}

	vectors, err := provider.EmbedBatch(ctx, chunks)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", llm.ErrEmbeddingProvider, err)
	}
	if len(vectors) != len(chunks) {
		return nil, fmt.Errorf("%w: got %d vectors for %d chunks", llm.ErrEmbeddingProvider, len(vectors), len(chunks))
	}

	passages := make([]vectorstore.Passage, len(chunks))
	for i, chunk := range chunks {
		passages[i] = vectorstore.Passage{
			Text:       chunk,
			SourceFile: filename,
			Index:      i,
		}
	}

	return &IngestBatch{Passages: passages, Vectors: vectors}, nil
}

// Query answers a question against the session's index: embed the question,
// retrieve the top passages, build a grounded prompt behind the recent
// conversation window, and invoke the completion provider once.
//
// It does not mutate history; the caller appends the exchange after a
// successful response.
func (p *Pipeline) Query(ctx context.Context, provider llm.Provider, question string, session *store.Session) (string, []string, error) {
	index := session.Index()
	if index == nil {
		return "", nil, ErrNoIndex
	}

	queryVectors, err := provider.EmbedBatch(ctx, []string{question})
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", llm.ErrEmbeddingProvider, err)
	}
	if len(queryVectors) != 1 {
		return "", nil, fmt.Errorf("%w: got %d vectors for the query", llm.ErrEmbeddingProvider, len(queryVectors))
	}

	passages := index.Search(queryVectors[0], p.cfg.TopK)

	texts := make([]string, len(passages))
	for i, passage := range passages {
		texts[i] = passage.Text
	}
	contextBlock := strings.Join(texts, contextDelimiter)

	history := session.RecentHistory(p.cfg.HistoryWindow)
	messages := make([]llm.Message, 0, len(history)+1)
	for _, turn := range history {
		messages = append(messages, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, llm.Message{
		Role:    llm.RoleHuman,
		Content: prompt.NewGroundedBuilder(contextBlock, question).Build(),
	})

	answer, err := provider.Complete(ctx, messages, llm.WithTemperature(0))
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", llm.ErrCompletionProvider, err)
	}

	return answer, sourceFiles(passages), nil
}

// sourceFiles deduplicates the retrieved passages' filenames, preserving
// retrieval order.
func sourceFiles(passages []vectorstore.Passage) []string {
	seen := make(map[string]bool, len(passages))
	sources := make([]string, 0, len(passages))
	for _, passage := range passages {
		if passage.SourceFile == "" || seen[passage.SourceFile] {
			continue
		}
		seen[passage.SourceFile] = true
		sources = append(sources, passage.SourceFile)
	}
	return sources
}
