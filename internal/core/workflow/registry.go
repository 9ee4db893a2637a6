package workflow

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

type registryEntry struct {
	session  *Session
	lastSeen time.Time
}

// Registry keeps one Session per client when the workflow is served to
// many clients at once. Sessions idle for longer than the TTL are dropped
// by Sweep.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*registryEntry
	create   func(id string) *Session
	idleTTL  time.Duration
	now      func() time.Time
}

// NewRegistry uses create to build the session for each new id. An idleTTL
// of zero keeps sessions until they are released.
func NewRegistry(create func(id string) *Session, idleTTL time.Duration) *Registry {
	return &Registry{
		sessions: make(map[string]*registryEntry),
		create:   create,
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

// Get returns the session for id, if it exists.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	return e.session, true
}

// Acquire returns the session for id. A well-formed id that is not loaded
// (released or expired) gets a fresh session under the same id, so data
// persisted for it is found again. Anything else gets a new id.
func (r *Registry) Acquire(id string) (string, *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.sessions[id]; ok {
		e.lastSeen = r.now()
		return id, e.session
	}
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}
	s := r.create(id)
	r.sessions[id] = &registryEntry{session: s, lastSeen: r.now()}
	return id, s
}

// Release drops the session for id.
func (r *Registry) Release(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Sweep drops sessions idle for longer than the TTL and reports how many
// went. A session with a payment in flight is kept.
func (r *Registry) Sweep() int {
	if r.idleTTL <= 0 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.idleTTL)
	dropped := 0
	for id, e := range r.sessions {
		if e.lastSeen.Before(cutoff) && !e.session.Busy() {
			delete(r.sessions, id)
			dropped++
		}
	}
	return dropped
}

// StartJanitor sweeps every interval until ctx is cancelled.
func (r *Registry) StartJanitor(ctx context.Context, interval time.Duration) {
	if r.idleTTL <= 0 || interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := r.Sweep(); n > 0 {
					slog.Info("🧹 Expired idle sessions", "count", n, "remaining", r.Len())
				}
			}
		}
	}()
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
