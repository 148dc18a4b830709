package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/QuantumCastro/L-Artisan/internal/domain"
	apperrors "github.com/QuantumCastro/L-Artisan/pkg/errors"
)

type entry struct {
	data      []byte
	expiresAt time.Time
}

// SessionRepository implements repository.SessionRepository in process
// memory. Sessions are stored serialised so callers never share state.
type SessionRepository struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// NewSessionRepository creates a new in-memory session repository.
func NewSessionRepository(ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// WithClock replaces the time source used for expiry.
func (r *SessionRepository) WithClock(now func() time.Time) *SessionRepository {
	r.now = now
	return r
}

// Get retrieves a session by ID.
func (r *SessionRepository) Get(_ context.Context, id string) (*domain.Session, error) {
	r.mu.RLock()
	e, ok := r.entries[id]
	r.mu.RUnlock()

	if !ok {
		return nil, apperrors.NotFound("session", id)
	}
	if r.expired(e) {
		return nil, apperrors.SessionExpired(id)
	}

	var session domain.Session
	if err := json.Unmarshal(e.data, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &session, nil
}

// Save stores a snapshot of session with a fresh TTL.
func (r *SessionRepository) Save(_ context.Context, session *domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[session.ID] = entry{data: data, expiresAt: r.now().Add(r.ttl)}
	return nil
}

// Delete removes a session by ID.
func (r *SessionRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
	return nil
}

// Sweep drops expired sessions and returns how many were removed.
func (r *SessionRepository) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, e := range r.entries {
		if r.expired(e) {
			delete(r.entries, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored sessions, expired ones included.
func (r *SessionRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func (r *SessionRepository) expired(e entry) bool {
	return r.ttl > 0 && !r.now().Before(e.expiresAt)
}
