// Package interval provides the default review interval policy: a fixed ladder
// of increasing intervals that a word climbs on good answers and falls back
// down on poor ones.
package interval

import (
	"fmt"
	"time"

	"github.com/heartmarshall/vocabcore/internal/domain"
)

// Ladder is a pure interval policy. No DB, no context, no logger.
type Ladder struct {
	steps   []time.Duration
	failure time.Duration
}

// NewLadder validates steps (non-empty, positive, strictly increasing) and
// the interval applied after a failed review.
func NewLadder(steps []time.Duration, failure time.Duration) (*Ladder, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("interval ladder: at least one step is required")
	}
	for i, s := range steps {
		if s <= 0 {
			return nil, fmt.Errorf("interval ladder: step %d must be > 0 (got %v)", i, s)
		}
		if i > 0 && s <= steps[i-1] {
			return nil, fmt.Errorf("interval ladder: step %d (%v) must exceed step %d (%v)", i, s, i-1, steps[i-1])
		}
	}
	if failure < 0 {
		return nil, fmt.Errorf("interval ladder: failure interval must be >= 0 (got %v)", failure)
	}
	return &Ladder{steps: append([]time.Duration(nil), steps...), failure: failure}, nil
}

// Next returns the interval in seconds until rec is due again after a review
// with the given result. rec is the record as it was before the review.
//
// A perfect answer climbs one rung, a minor error holds the rung, a major
// error drops one rung and a failure resets to the failure interval. Words
// that were never reviewed or failed last time start below the first rung.
func (l *Ladder) Next(rec domain.Record, result domain.ReviewResult, _ int64) int64 {
	if !result.Success() {
		return int64(l.failure / time.Second)
	}

	rung := l.rung(rec)
	switch result {
	case domain.ResultPerfect:
		rung++
	case domain.ResultMajor:
		rung--
	}
	rung = max(0, min(rung, len(l.steps)-1))

	return int64(l.steps[rung] / time.Second)
}

// rung locates the last interval of rec on the ladder: the highest step not
// longer than it, or -1 when there is no usable previous interval.
func (l *Ladder) rung(rec domain.Record) int {
	if rec.Failed || rec.Last == nil || rec.Next == nil {
		return -1
	}
	last := time.Duration(*rec.Next-*rec.Last) * time.Second

	rung := -1
	for i, s := range l.steps {
		if s > last {
			break
		}
		rung = i
	}
	return rung
}

// Steps returns a copy of the configured ladder.
func (l *Ladder) Steps() []time.Duration {
	return append([]time.Duration(nil), l.steps...)
}
