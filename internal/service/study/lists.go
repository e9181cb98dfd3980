package study

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/vocabcore/internal/domain"
)

// AddToList adds the word to the list, creating its record if needed, and
// returns the record.
func (s *Service) AddToList(ctx context.Context, input AddToListInput) (domain.Record, error) {
	if err := input.Validate(); err != nil {
		return domain.Record{}, err
	}

	if err := s.store.AddToList(input.Word, input.List); err != nil {
		return domain.Record{}, fmt.Errorf("add %q to list %q: %w", input.Word, input.List, err)
	}

	rec, ok := s.store.Lookup(input.Word)
	if !ok {
		return domain.Record{}, fmt.Errorf("word %q: %w", input.Word, domain.ErrNotFound)
	}

	s.log.DebugContext(ctx, "word added to list",
		slog.String("word", input.Word),
		slog.String("list", input.List),
	)
	return rec, nil
}

// RemoveList drops the list from every record. Records left without lists
// and without review history are deleted.
func (s *Service) RemoveList(ctx context.Context, listID string) (RemoveListResult, error) {
	if strings.TrimSpace(listID) == "" {
		return RemoveListResult{}, domain.NewValidationError("list", "required")
	}

	updated, deleted := s.store.RemoveFromList(listID)

	s.log.InfoContext(ctx, "list removed",
		slog.String("list", listID),
		slog.Int("updated", updated),
		slog.Int("deleted", deleted),
	)
	return RemoveListResult{Updated: updated, Deleted: deleted}, nil
}

// GetWord returns the record for word, blacklisted or not.
func (s *Service) GetWord(_ context.Context, word string) (domain.Record, error) {
	if errs := validateWord(nil, word); len(errs) > 0 {
		return domain.Record{}, domain.NewValidationErrors(errs)
	}

	rec, ok := s.store.Lookup(word)
	if !ok {
		return domain.Record{}, fmt.Errorf("word %q: %w", word, domain.ErrNotFound)
	}
	return rec, nil
}
