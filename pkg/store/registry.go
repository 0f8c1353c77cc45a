package store

import (
	"errors"
	"time"

	"github.com/patrickmn/go-cache"

	"doc-chat-be/pkg/llm"
	"doc-chat-be/pkg/vectorstore"
)

// DefaultTTL is how long a session lives, counted from creation (or the
// last reset), not from last access.
const DefaultTTL = 30 * time.Minute

// Expired sessions stay addressable for this long after their TTL so reads
// can answer ErrSessionExpired instead of ErrSessionNotFound; the janitor
// reclaims whatever is never read again.
const (
	expiredRetention = 10 * time.Minute
	sweepInterval    = 10 * time.Minute
)

var (
	ErrDuplicateSession = errors.New("session already exists")
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionExpired   = errors.New("session expired")
)

// Update carries a partial session mutation: nil fields are left untouched,
// non-nil fields replace the current value.
type Update struct {
	Index   *vectorstore.Store
	Files   []string
	History []ChatTurn
}

// Registry is the process-wide session store. One instance is built at
// bootstrap and injected into every service; it lives for process uptime.
// Expiry is checked lazily on every read, with the go-cache janitor as a
// backstop sweep for sessions nobody touches again.
type Registry struct {
	ttl   time.Duration
	cache *cache.Cache
}

func NewRegistry(ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Registry{
		ttl:   ttl,
		cache: cache.New(ttl+expiredRetention, sweepInterval),
	}
}

// TTL returns the configured session lifetime.
func (r *Registry) TTL() time.Duration { return r.ttl }

// Create registers a fresh session. Callers generate fresh UUIDs, so a
// duplicate id is a caller bug surfaced as ErrDuplicateSession.
func (r *Registry) Create(id string, provider llm.ProviderType, apiKey string) (*Session, error) {
	// Lazily clear an expired occupant first so the id is reusable.
	if _, err := r.lookup(id); err == nil {
		return nil, ErrDuplicateSession
	}

	session := &Session{
		ID:        id,
		Provider:  provider,
		APIKey:    apiKey,
		createdAt: time.Now(),
	}
	if err := r.cache.Add(id, session, r.ttl+expiredRetention); err != nil {
		return nil, ErrDuplicateSession
	}
	return session, nil
}

// Get returns the session for id, lazily removing it once its TTL elapsed.
// The error distinguishes "never existed" from "existed but expired".
func (r *Registry) Get(id string) (*Session, error) {
	return r.lookup(id)
}

// Update merges the provided fields into the session in place. It is a
// silent no-op when the session is absent or expired: "session vanished
// mid-request" is an expected race, not a programming error. Callers that
// care must verify existence via Get first.
func (r *Registry) Update(id string, u Update) {
	session, err := r.lookup(id)
	if err != nil {
		return
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	if u.Index != nil {
		session.index = u.Index
	}
	if u.Files != nil {
		session.files = append([]string(nil), u.Files...)
	}
	if u.History != nil {
		session.history = append([]ChatTurn(nil), u.History...)
	}
}

// Reset clears the index, files, and history and restarts the expiry clock,
// preserving id, provider, and API key. No-op when the session is absent.
func (r *Registry) Reset(id string) {
	session, err := r.lookup(id)
	if err != nil {
		return
	}

	session.mu.Lock()
	session.index = nil
	session.files = nil
	session.history = nil
	session.createdAt = time.Now()
	session.mu.Unlock()

	// Push the janitor deadline out to match the new createdAt.
	r.cache.Set(id, session, r.ttl+expiredRetention)
}

// Delete removes the session unconditionally.
func (r *Registry) Delete(id string) {
	r.cache.Delete(id)
}

// Len reports the number of live entries, expired-but-unswept included.
func (r *Registry) Len() int {
	return r.cache.ItemCount()
}

func (r *Registry) lookup(id string) (*Session, error) {
	v, found := r.cache.Get(id)
	if !found {
		return nil, ErrSessionNotFound
	}
	session := v.(*Session)
	if time.Since(session.CreatedAt()) > r.ttl {
		r.cache.Delete(id)
		return nil, ErrSessionExpired
	}
	return session, nil
}
