// Package session holds the per-player session records between requests.
// The store is process-lifetime only: sessions never survive a restart.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/mrivero/cyberbomb/internal/logger"
	"github.com/mrivero/cyberbomb/internal/models"
)

// Store is the per-player session record keyed by an opaque identifier.
// Reads return a copy; writers put the mutated session back. Concurrent
// double-submits resolve last-write-wins.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
	ttl      time.Duration
	log      *logger.Logger
}

// NewStore creates an empty store. Sessions idle longer than ttl are
// evicted by the janitor.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*models.Session),
		ttl:      ttl,
		log:      logger.Default().WithPrefix("session-store"),
	}
}

// NewID generates an opaque session identifier.
func NewID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// Get returns a copy of the session for id, creating an empty record on
// first contact.
func (st *Store) Get(id string) models.Session {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if ok {
		return *s
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok := st.sessions[id]; ok {
		return *s
	}
	fresh := &models.Session{ID: id}
	st.sessions[id] = fresh
	st.log.Debug("created session record: id=%s", id)
	return *fresh
}

// Put writes the session back. Last write wins.
func (st *Store) Put(s models.Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	copied := s
	st.sessions[s.ID] = &copied
}

// Delete removes the record entirely.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Len returns the number of live records.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// StartJanitor evicts idle sessions periodically until ctx is cancelled.
func (st *Store) StartJanitor(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				st.evictIdle(time.Now())
			}
		}
	}()
}

func (st *Store) evictIdle(now time.Time) {
	st.mu.Lock()
	defer st.mu.Unlock()
	evicted := 0
	for id, s := range st.sessions {
		last := s.LastSeenAt
		if last.IsZero() {
			last = s.CreatedAt
		}
		if !last.IsZero() && now.Sub(last) > st.ttl {
			delete(st.sessions, id)
			evicted++
		}
	}
	if evicted > 0 {
		st.log.Info("evicted %d idle sessions, %d remaining", evicted, len(st.sessions))
	}
}
