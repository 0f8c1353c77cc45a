package vectorstore

import (
	"fmt"
	"math"
	"sort"
	"sync"
)

// Passage is a contiguous slice of source document text used as the unit of
// retrieval. Immutable once created.
type Passage struct {
	Text       string `json:"text"`
	SourceFile string `json:"source_file"`
	Index      int    `json:"index"`
}

type entry struct {
	embedding []float32
	passage   Passage
}

// Store is an in-memory vector index using brute-force cosine similarity.
// Per-session corpora stay in the single-digit thousands of chunks, so a
// linear scan beats the bookkeeping cost of an approximate index.
//
// All embeddings in one store must share the same dimensionality; that is
// fixed by the session's embedding provider.
type Store struct {
	mu      sync.RWMutex
	entries []entry
}

func New() *Store { return &Store{} }

// Insert appends vector/passage pairs. vectors[i] belongs to passages[i].
func (s *Store) Insert(vectors [][]float32, passages []Passage) error {
	if len(vectors) != len(passages) {
		return fmt.Errorf("vectors and passages length mismatch: %d != %d", len(vectors), len(passages))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range vectors {
		s.entries = append(s.entries, entry{embedding: vectors[i], passage: passages[i]})
	}
	return nil
}

// Search returns up to k passages ranked by descending cosine similarity to
// the query vector. Ties keep insertion order. An empty store returns nil.
func (s *Store) Search(query []float32, k int) []Passage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if k <= 0 || len(s.entries) == 0 {
		return nil
	}

	type scored struct {
		score   float64
		passage Passage
	}
	ranked := make([]scored, len(s.entries))
	for i, e := range s.entries {
		ranked[i] = scored{
			score:   CosineSimilarity(query, e.embedding),
			passage: e.passage,
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if k > len(ranked) {
		k = len(ranked)
	}
	results := make([]Passage, k)
	for i := 0; i < k; i++ {
		results[i] = ranked[i].passage
	}
	return results
}

// Size returns the current entry count.
func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// CosineSimilarity computes dot(a,b) / (||a|| * ||b||) in float64 for
// stability. Defined as 0 when either norm is 0.
func CosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0
	}
	return dot / denom
}
