package vocabulary

import (
	"log/slog"

	"github.com/heartmarshall/vocabcore/internal/domain"
)

// ApplyReview records a review outcome against the record for
// snapshot.Word. The update only happens if the live record still has the
// attempt count the caller saw; otherwise the caller's view is stale and
// the call does nothing and reports false. Callers that get false must
// re-read the record before trying again.
func (s *Store) ApplyReview(snapshot domain.Record, result domain.ReviewResult, ts int64) (bool, error) {
	if !result.IsValid() {
		return false, domain.NewValidationError("result", "must be between 0 and 3")
	}

	s.mu.Lock()
	rec, ok := s.index[snapshot.Word]
	if !ok || rec.Attempts != snapshot.Attempts {
		s.mu.Unlock()
		s.log.Debug("stale review ignored",
			slog.String("word", snapshot.Word),
			slog.Int("snapshot_attempts", snapshot.Attempts),
		)
		return false, nil
	}

	last := ts
	next := ts + max(0, s.interval(snapshot, result, ts))
	rec.Last = &last
	rec.Next = &next
	rec.Attempts++
	if result.Success() {
		rec.Successes++
	}
	rec.Failed = !result.Success()
	s.persistChunkLocked(ChunkOf(rec.Word))
	s.mu.Unlock()

	s.notifyChanged()
	return true, nil
}

// ClearFailed takes word out of the failure-review queue without touching
// its statistics. It reports whether a record existed.
func (s *Store) ClearFailed(word string) bool {
	s.mu.Lock()
	rec, ok := s.index[word]
	if !ok {
		s.mu.Unlock()
		return false
	}
	rec.Failed = false
	s.persistChunkLocked(ChunkOf(word))
	s.mu.Unlock()

	s.notifyChanged()
	return true
}
