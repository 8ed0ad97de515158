package wizard

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrNotFound is returned by stores when a session id has no persisted
// snapshot (never created, expired, or already deleted).
var ErrNotFound = errors.New("wizard: session not found")

// Store persists wizard snapshots keyed by session id.
type Store interface {
	Save(ctx context.Context, sessionID string, snap Snapshot, ttl time.Duration) error
	Load(ctx context.Context, sessionID string) (Snapshot, error)
	Delete(ctx context.Context, sessionID string) error
}

// MemoryStore keeps snapshots in memory. Expiry is checked lazily on Load.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	snap      Snapshot
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Save(
	ctx context.Context,
	sessionID string,
	snap Snapshot,
	ttl time.Duration,
) error {

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := memoryEntry{snap: snap}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}

	s.entries[sessionID] = entry
	return nil
}

func (s *MemoryStore) Load(
	ctx context.Context,
	sessionID string,
) (Snapshot, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[sessionID]
	if !ok {
		return Snapshot{}, ErrNotFound
	}

	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		delete(s.entries, sessionID)
		return Snapshot{}, ErrNotFound
	}

	return entry.snap, nil
}

func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, sessionID)
	return nil
}

// Compile-time check
var _ Store = (*MemoryStore)(nil)
