package store

import (
	"sync"
	"time"

	"doc-chat-be/pkg/llm"
	"doc-chat-be/pkg/vectorstore"
)

// ChatTurn is one message of a conversation, append-only and ordered by
// occurrence.
type ChatTurn struct {
	Role    string `json:"role"` // llm.RoleHuman or llm.RoleAssistant
	Content string `json:"content"`
}

// Session is the unit of isolation between independent conversations. It
// owns its vector index, uploaded file list, and chat history, all guarded
// by a per-session mutex so concurrent requests against the same id
// serialize without blocking unrelated sessions.
//
// Provider calls never happen under the mutex; callers compute embeddings
// and completions first, then commit results through the methods below.
type Session struct {
	ID       string
	Provider llm.ProviderType
	APIKey   string

	mu        sync.Mutex
	index     *vectorstore.Store
	files     []string
	history   []ChatTurn
	createdAt time.Time
}

// Index returns the session's vector index, or nil before the first upload.
func (s *Session) Index() *vectorstore.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// Files returns a copy of the uploaded filenames in upload order.
func (s *Session) Files() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.files...)
}

// History returns a copy of the full conversation history.
func (s *Session) History() []ChatTurn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ChatTurn(nil), s.history...)
}

// RecentHistory returns a copy of the last n history messages.
func (s *Session) RecentHistory(n int) []ChatTurn {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n <= 0 || len(s.history) == 0 {
		return nil
	}
	start := len(s.history) - n
	if start < 0 {
		start = 0
	}
	return append([]ChatTurn(nil), s.history[start:]...)
}

func (s *Session) CreatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createdAt
}

// CommitUpload atomically applies an ingested document: it creates the
// index on first upload, appends the embedded passages, and records the
// filename. Additional uploads merge into the same index.
func (s *Session) CommitUpload(filename string, vectors [][]float32, passages []vectorstore.Passage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index == nil {
		s.index = vectorstore.New()
	}
	if err := s.index.Insert(vectors, passages); err != nil {
		return err
	}

	// files is an ordered set: re-uploading a name must not duplicate it.
	for _, f := range s.files {
		if f == filename {
			return nil
		}
	}
	s.files = append(s.files, filename)
	return nil
}

// AppendExchange records a completed question/answer pair in the history.
func (s *Session) AppendExchange(question, answer string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history,
		ChatTurn{Role: llm.RoleHuman, Content: question},
		ChatTurn{Role: llm.RoleAssistant, Content: answer},
	)
}
