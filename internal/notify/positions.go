package notify

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/vcscsvcscs/dosewise/pkg/model"
)

var (
	// ErrNoPosition means the user never reported a position
	ErrNoPosition = errors.New("no position reported")
	// ErrStalePosition means the last report is older than the accepted age
	ErrStalePosition = errors.New("position is stale")
)

type fix struct {
	location model.Location
	at       time.Time
}

// PositionStore keeps the last position reported by each user's device and
// serves it as reminder.PositionSource
type PositionStore struct {
	mu     sync.RWMutex
	fixes  map[string]fix
	maxAge time.Duration
	now    func() time.Time
}

// NewPositionStore creates a store rejecting positions older than maxAge
func NewPositionStore(maxAge time.Duration) *PositionStore {
	return &PositionStore{
		fixes:  make(map[string]fix),
		maxAge: maxAge,
		now:    time.Now,
	}
}

// Report records a position for a user
func (s *PositionStore) Report(userID string, loc model.Location, at time.Time) {
	if at.IsZero() {
		at = s.now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.fixes[userID]; ok && prev.at.After(at) {
		return
	}
	s.fixes[userID] = fix{location: loc, at: at}
}

// CurrentPosition implements reminder.PositionSource
func (s *PositionStore) CurrentPosition(ctx context.Context, userID string) (model.Location, error) {
	if err := ctx.Err(); err != nil {
		return model.Location{}, err
	}

	s.mu.RLock()
	f, ok := s.fixes[userID]
	s.mu.RUnlock()

	if !ok {
		return model.Location{}, ErrNoPosition
	}
	if s.maxAge > 0 && s.now().Sub(f.at) > s.maxAge {
		return model.Location{}, ErrStalePosition
	}
	return f.location, nil
}
