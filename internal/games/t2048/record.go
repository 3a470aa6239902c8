package t2048

import (
	"context"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const recordTimeout = 2 * time.Second

// RecordKey returns the record-store key for the best score on a board side.
func RecordKey(prefix string, side int) string {
	if prefix == "" {
		prefix = "t2048"
	}
	return fmt.Sprintf("%s:best:%dx%d", prefix, side, side)
}

// Scorekeeper tracks the running score and the persisted best score.
// With a nil store the best score lives in memory only.
type Scorekeeper struct {
	store   core.RecordStore
	key     string
	score   int
	best    int
	hasBest bool
}

// NewScorekeeper creates a scorekeeper persisting under key.
func NewScorekeeper(store core.RecordStore, key string) *Scorekeeper {
	return &Scorekeeper{store: store, key: key}
}

// Load reads the stored best score.
func (s *Scorekeeper) Load() error {
	if s.store == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()

	best, ok, err := s.store.Get(ctx, s.key)
	if err != nil {
		return fmt.Errorf("t2048: load record %s: %w", s.key, err)
	}
	s.best, s.hasBest = best, ok
	return nil
}

// Add credits merged points. Negative amounts are ignored so the score
// never decreases within a game.
func (s *Scorekeeper) Add(points int) {
	if points > 0 {
		s.score += points
	}
}

// Score returns the running score.
func (s *Scorekeeper) Score() int {
	return s.score
}

// Best returns the best score known, including the live score once it
// has been synced past the stored record.
func (s *Scorekeeper) Best() int {
	return s.best
}

// Sync stores the live score as the best when it beats the record, or when
// no record exists yet.
func (s *Scorekeeper) Sync() error {
	if s.hasBest && s.score <= s.best {
		return nil
	}
	return s.save()
}

// Finish closes the game: a score matching or beating the record (or the
// first game ever) is a new record and is stored.
func (s *Scorekeeper) Finish() (bool, error) {
	if s.hasBest && s.score < s.best {
		return false, nil
	}
	return true, s.save()
}

func (s *Scorekeeper) save() error {
	s.best, s.hasBest = s.score, true
	if s.store == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()

	if err := s.store.Set(ctx, s.key, s.score); err != nil {
		return fmt.Errorf("t2048: save record %s: %w", s.key, err)
	}
	return nil
}
