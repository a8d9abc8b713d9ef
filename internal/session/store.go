// Package session keeps per-visitor state: the detail overlay each visitor
// currently has open.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"CatalogBrowser/internal/overlay"
)

type Session struct {
	ID string

	mu       sync.Mutex
	overlay  overlay.Overlay
	lastSeen time.Time
}

// With runs fn with exclusive access to the session overlay, so one
// visitor's events apply one at a time.
func (s *Session) With(fn func(o *overlay.Overlay)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.overlay)
}

type MemStore struct {
	mu  sync.RWMutex
	m   map[string]*Session
	ttl time.Duration
	now func() time.Time
}

func NewMemStore(ttl time.Duration) *MemStore {
	return &MemStore{
		m:   make(map[string]*Session),
		ttl: ttl,
		now: time.Now,
	}
}

func (s *MemStore) Create() *Session {
	sess := &Session{ID: uuid.NewString(), lastSeen: s.now()}

	s.mu.Lock()
	s.m[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

// Get returns a live session and marks it as seen.
func (s *MemStore) Get(id string) (*Session, bool) {
	s.mu.RLock()
	sess, ok := s.m[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}

	now := s.now()

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if s.ttl > 0 && now.Sub(sess.lastSeen) > s.ttl {
		return nil, false
	}
	sess.lastSeen = now
	return sess, true
}

func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}

// Prune drops sessions idle for longer than the TTL and reports how many.
func (s *MemStore) Prune() int {
	if s.ttl <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, sess := range s.m {
		sess.mu.Lock()
		idle := sess.lastSeen.Before(cutoff)
		sess.mu.Unlock()
		if idle {
			delete(s.m, id)
			n++
		}
	}
	return n
}

// Sweep prunes every interval until ctx is done.
func (s *MemStore) Sweep(ctx context.Context, interval time.Duration, log *zap.Logger) {
	if interval <= 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := s.Prune(); n > 0 && log != nil {
				log.Debug("sessions pruned", zap.Int("count", n), zap.Int("live", s.Len()))
			}
		}
	}
}
