package app

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/akarsten/feedbacklens/internal/domain"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// MemoryStore is the in-memory DatasetStore for single-instance mode.
// Expired entries are dropped lazily on access and by the eviction timer.
type MemoryStore struct {
	mu      sync.RWMutex
	clock   clockwork.Clock
	ttl     time.Duration
	entries map[uuid.UUID]memoryEntry
}

type memoryEntry struct {
	dataset   *domain.Dataset
	expiresAt time.Time
}

// NewMemoryStore creates a store whose datasets expire after ttl.
func NewMemoryStore(clock clockwork.Clock, ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		clock:   clock,
		ttl:     ttl,
		entries: make(map[uuid.UUID]memoryEntry),
	}
}

func (s *MemoryStore) Save(_ context.Context, ds *domain.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[ds.ID] = memoryEntry{
		dataset:   ds,
		expiresAt: s.clock.Now().Add(s.ttl),
	}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (*domain.Dataset, error) {
	s.mu.RLock()
	entry, ok := s.entries[id]
	s.mu.RUnlock()

	if !ok {
		return nil, domain.ErrDatasetNotFound
	}
	if s.clock.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, id)
		s.mu.Unlock()
		return nil, domain.ErrDatasetNotFound
	}
	return entry.dataset, nil
}

func (s *MemoryStore) List(_ context.Context) ([]*domain.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.clock.Now()
	out := make([]*domain.Dataset, 0, len(s.entries))
	for _, entry := range s.entries {
		if now.After(entry.expiresAt) {
			continue
		}
		out = append(out, entry.dataset)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}

// StartEvictionTimer sweeps expired entries every interval until the
// returned stop function is called.
func (s *MemoryStore) StartEvictionTimer(interval time.Duration) func() {
	stopCh := make(chan struct{})
	go func() {
		ticker := s.clock.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.Chan():
				s.evictExpired()
			case <-stopCh:
				return
			}
		}
	}()
	return func() { close(stopCh) }
}

func (s *MemoryStore) evictExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	for id, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, id)
		}
	}
}
