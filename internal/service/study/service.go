// Package study exposes the vocabulary store to transports: it validates
// input, fills in defaults such as the review timestamp, and logs state
// changes.
package study

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/vocabcore/internal/domain"
	"github.com/heartmarshall/vocabcore/internal/vocabulary"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type recordStore interface {
	AddToList(word, listID string) error
	RemoveFromList(listID string) (updated, deleted int)
	Lookup(word string) (domain.Record, bool)
	ClearFailed(word string) bool
	ApplyReview(snapshot domain.Record, result domain.ReviewResult, ts int64) (bool, error)
	SetBlacklisted(item domain.BlacklistItem, blacklisted bool) error
	Blacklist(ctx context.Context) ([]domain.BlacklistItem, error)
	NewCursor(pred domain.Predicate) *vocabulary.Cursor
	Count(pred domain.Predicate) int
	Stats() domain.Stats
}

// Service provides the study operations over a single learner's vocabulary.
type Service struct {
	store recordStore
	log   *slog.Logger
	now   func() time.Time
}

// NewService creates a new study service.
func NewService(log *slog.Logger, store recordStore) *Service {
	return &Service{
		store: store,
		log:   log.With("service", "study"),
		now:   time.Now,
	}
}
