package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/vocabcore/internal/domain"
)

// Review applies a review outcome if the client's view of the word is
// still current. The client's view is identified by Attempts: if another
// review landed first, nothing changes and the outcome is not applied.
// Reviewing a word with no record is also a no-op, not an error.
func (s *Service) Review(ctx context.Context, input ReviewInput) (ReviewOutcome, error) {
	if err := input.Validate(); err != nil {
		return ReviewOutcome{}, err
	}

	current, ok := s.store.Lookup(input.Word)
	if !ok {
		s.log.DebugContext(ctx, "review of unknown word ignored", slog.String("word", input.Word))
		return ReviewOutcome{Record: domain.Record{Word: input.Word, Lists: []string{}}}, nil
	}

	ts := s.now().Unix()
	if input.Timestamp != nil {
		ts = *input.Timestamp
	}

	snapshot := current
	snapshot.Attempts = input.Attempts

	applied, err := s.store.ApplyReview(snapshot, input.Result, ts)
	if err != nil {
		return ReviewOutcome{}, fmt.Errorf("apply review for %q: %w", input.Word, err)
	}

	if after, ok := s.store.Lookup(input.Word); ok {
		current = after
	}

	if applied {
		s.log.DebugContext(ctx, "review applied",
			slog.String("word", input.Word),
			slog.Int("result", int(input.Result)),
			slog.Int("attempts", current.Attempts),
		)
	} else {
		s.log.InfoContext(ctx, "stale review rejected",
			slog.String("word", input.Word),
			slog.Int("client_attempts", input.Attempts),
			slog.Int("attempts", current.Attempts),
		)
	}

	return ReviewOutcome{Applied: applied, Record: current}, nil
}

// ClearFailed removes word from the failure queue. A word with no record
// is left alone.
func (s *Service) ClearFailed(ctx context.Context, word string) error {
	if errs := validateWord(nil, word); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	if !s.store.ClearFailed(word) {
		s.log.DebugContext(ctx, "clear failed on unknown word ignored", slog.String("word", word))
	}
	return nil
}
