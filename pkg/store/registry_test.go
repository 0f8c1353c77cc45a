package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doc-chat-be/pkg/llm"
	"doc-chat-be/pkg/vectorstore"
)

func TestRegistryCreateAndGet(t *testing.T) {
	r := NewRegistry(time.Minute)

	session, err := r.Create("s1", llm.ProviderOpenAI, "sk-test")
	require.NoError(t, err)
	assert.Equal(t, "s1", session.ID)
	assert.Equal(t, llm.ProviderOpenAI, session.Provider)

	got, err := r.Get("s1")
	require.NoError(t, err)
	assert.Same(t, session, got)
}

func TestRegistryDuplicateCreate(t *testing.T) {
	r := NewRegistry(time.Minute)

	_, err := r.Create("s1", llm.ProviderOpenAI, "key")
	require.NoError(t, err)

	_, err = r.Create("s1", llm.ProviderGemini, "other")
	assert.ErrorIs(t, err, ErrDuplicateSession)
}

func TestRegistryGetUnknown(t *testing.T) {
	r := NewRegistry(time.Minute)

	_, err := r.Get("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRegistryExpiry(t *testing.T) {
	r := NewRegistry(20 * time.Millisecond)

	_, err := r.Create("s1", llm.ProviderOpenAI, "key")
	require.NoError(t, err)

	time.Sleep(40 * time.Millisecond)

	_, err = r.Get("s1")
	assert.ErrorIs(t, err, ErrSessionExpired)

	// The expired read removed the entry; later reads see "not found".
	_, err = r.Get("s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRegistryCreateReusesExpiredId(t *testing.T) {
	r := NewRegistry(20 * time.Millisecond)

	_, err := r.Create("s1", llm.ProviderOpenAI, "key")
	require.NoError(t, err)

	time.Sleep(40 * time.Millisecond)

	session, err := r.Create("s1", llm.ProviderGemini, "new-key")
	require.NoError(t, err)
	assert.Equal(t, llm.ProviderGemini, session.Provider)
}

func TestRegistryUpdateMergesFields(t *testing.T) {
	r := NewRegistry(time.Minute)

	session, err := r.Create("s1", llm.ProviderOpenAI, "key")
	require.NoError(t, err)
	session.AppendExchange("q1", "a1")

	index := vectorstore.New()
	r.Update("s1", Update{
		Index: index,
		Files: []string{"report.txt"},
	})

	assert.Same(t, index, session.Index())
	assert.Equal(t, []string{"report.txt"}, session.Files())
	// History was nil in the update and must survive untouched.
	assert.Len(t, session.History(), 2)
}

func TestRegistryUpdateAbsentIsNoop(t *testing.T) {
	r := NewRegistry(time.Minute)

	// Must not panic or create anything.
	r.Update("ghost", Update{Files: []string{"x.txt"}})

	_, err := r.Get("ghost")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRegistryReset(t *testing.T) {
	r := NewRegistry(time.Minute)

	session, err := r.Create("s1", llm.ProviderGemini, "key")
	require.NoError(t, err)

	require.NoError(t, session.CommitUpload("doc.txt", [][]float32{{1, 0}}, []vectorstore.Passage{{Text: "chunk"}}))
	session.AppendExchange("q", "a")
	before := session.CreatedAt()

	time.Sleep(5 * time.Millisecond)
	r.Reset("s1")

	got, err := r.Get("s1")
	require.NoError(t, err)
	assert.Same(t, session, got)
	assert.Equal(t, "s1", got.ID)
	assert.Equal(t, llm.ProviderGemini, got.Provider)
	assert.Equal(t, "key", got.APIKey)
	assert.Nil(t, got.Index())
	assert.Empty(t, got.Files())
	assert.Empty(t, got.History())
	assert.True(t, got.CreatedAt().After(before))
}

func TestRegistryResetRestartsClock(t *testing.T) {
	r := NewRegistry(50 * time.Millisecond)

	_, err := r.Create("s1", llm.ProviderOpenAI, "key")
	require.NoError(t, err)

	time.Sleep(30 * time.Millisecond)
	r.Reset("s1")
	time.Sleep(30 * time.Millisecond)

	// 60ms since creation but only 30ms since reset.
	_, err = r.Get("s1")
	assert.NoError(t, err)
}

func TestRegistryDelete(t *testing.T) {
	r := NewRegistry(time.Minute)

	_, err := r.Create("s1", llm.ProviderOpenAI, "key")
	require.NoError(t, err)

	r.Delete("s1")
	_, err = r.Get("s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// Deleting again is harmless.
	r.Delete("s1")
}

func TestSessionCommitUpload(t *testing.T) {
	session := &Session{ID: "s1", createdAt: time.Now()}

	err := session.CommitUpload("a.txt", [][]float32{{1, 0}}, []vectorstore.Passage{{Text: "c1", SourceFile: "a.txt"}})
	require.NoError(t, err)
	require.NotNil(t, session.Index())
	assert.Equal(t, 1, session.Index().Size())

	// Second document merges into the same index.
	err = session.CommitUpload("b.txt", [][]float32{{0, 1}}, []vectorstore.Passage{{Text: "c2", SourceFile: "b.txt"}})
	require.NoError(t, err)
	assert.Equal(t, 2, session.Index().Size())
	assert.Equal(t, []string{"a.txt", "b.txt"}, session.Files())

	// Re-uploading a known filename does not duplicate the entry.
	err = session.CommitUpload("a.txt", [][]float32{{1, 1}}, []vectorstore.Passage{{Text: "c3", SourceFile: "a.txt"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt"}, session.Files())
	assert.Equal(t, 3, session.Index().Size())
}

func TestSessionRecentHistory(t *testing.T) {
	session := &Session{ID: "s1", createdAt: time.Now()}
	for i := 0; i < 5; i++ {
		session.AppendExchange("question", "answer")
	}

	assert.Len(t, session.History(), 10)

	recent := session.RecentHistory(6)
	require.Len(t, recent, 6)
	assert.Equal(t, llm.RoleHuman, recent[0].Role)
	assert.Equal(t, llm.RoleAssistant, recent[5].Role)

	assert.Len(t, session.RecentHistory(100), 10)
	assert.Nil(t, session.RecentHistory(0))
}
