package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/vocabcore/internal/domain"
)

// Ban adds a word to the blacklist. The word need not have a record.
func (s *Service) Ban(ctx context.Context, input BlacklistInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	item := domain.BlacklistItem{Word: input.Word, Pinyin: input.Pinyin, Definition: input.Definition}
	if err := s.store.SetBlacklisted(item, true); err != nil {
		return fmt.Errorf("ban %q: %w", input.Word, err)
	}

	s.log.InfoContext(ctx, "word banned", slog.String("word", input.Word))
	return nil
}

// Unban removes word from the blacklist. Unbanning a word that is not
// banned is a no-op.
func (s *Service) Unban(ctx context.Context, word string) error {
	if errs := validateWord(nil, word); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}

	if err := s.store.SetBlacklisted(domain.BlacklistItem{Word: word}, false); err != nil {
		return fmt.Errorf("unban %q: %w", word, err)
	}

	s.log.InfoContext(ctx, "word unbanned", slog.String("word", word))
	return nil
}

// Blacklist returns the persisted blacklist sorted by word.
func (s *Service) Blacklist(ctx context.Context) ([]domain.BlacklistItem, error) {
	items, err := s.store.Blacklist(ctx)
	if err != nil {
		return nil, fmt.Errorf("read blacklist: %w", err)
	}
	return items, nil
}
