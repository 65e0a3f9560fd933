package service

import (
	"sync"
	"time"

	"github.com/verdantchain/explorer-backend/internal/model"
)

// HistoryStore retains recent sustainability snapshots in a bounded ring.
// Once the capacity is reached the oldest snapshot is dropped. Safe for
// concurrent use.
type HistoryStore struct {
	mu        sync.RWMutex
	snapshots []model.SustainabilitySnapshot
	capacity  int
}

// NewHistoryStore builds a store holding at most capacity snapshots.
func NewHistoryStore(capacity int) *HistoryStore {
	if capacity <= 0 {
		capacity = 1
	}
	return &HistoryStore{
		snapshots: make([]model.SustainabilitySnapshot, 0, capacity),
		capacity:  capacity,
	}
}

// Append stores snapshots in arrival order, evicting the oldest on overflow.
func (s *HistoryStore) Append(snapshots ...model.SustainabilitySnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshots = append(s.snapshots, snapshots...)
	if overflow := len(s.snapshots) - s.capacity; overflow > 0 {
		s.snapshots = append(s.snapshots[:0], s.snapshots[overflow:]...)
	}
}

// Since returns all snapshots taken at or after the cutoff, oldest first.
func (s *HistoryStore) Since(cutoff time.Time) []model.SustainabilitySnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.SustainabilitySnapshot, 0, len(s.snapshots))
	for _, snap := range s.snapshots {
		if !snap.Timestamp.Before(cutoff) {
			out = append(out, snap)
		}
	}
	return out
}

// Latest returns the most recent snapshot, or false when the store is empty.
func (s *HistoryStore) Latest() (model.SustainabilitySnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.snapshots) == 0 {
		return model.SustainabilitySnapshot{}, false
	}
	return s.snapshots[len(s.snapshots)-1], true
}

// Len reports how many snapshots are retained.
func (s *HistoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.snapshots)
}
