package vocabulary

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/heartmarshall/vocabcore/internal/domain"
)

// SetBlacklisted adds item to the blacklist or removes it. Blacklisting a
// word pulls its record out of the active set without touching the record;
// lifting the ban puts the record back if it still belongs to a list.
// The whole blacklist is rewritten on every change.
func (s *Store) SetBlacklisted(item domain.BlacklistItem, blacklisted bool) error {
	if strings.TrimSpace(item.Word) == "" {
		return domain.NewValidationError("word", "required")
	}

	s.mu.Lock()
	_, banned := s.blacklist[item.Word]
	if banned == blacklisted {
		s.mu.Unlock()
		return nil
	}

	if blacklisted {
		s.blacklist[item.Word] = item
		s.deactivateLocked(item.Word)
	} else {
		delete(s.blacklist, item.Word)
		if rec, ok := s.index[item.Word]; ok && s.isActiveLocked(rec) {
			s.activateLocked(rec)
		}
	}
	s.persistBlacklistLocked()
	s.mu.Unlock()

	s.log.Debug("blacklist updated",
		slog.String("word", item.Word),
		slog.Bool("blacklisted", blacklisted),
	)

	s.notifyChanged()
	return nil
}

// IsBlacklisted reports whether word is on the blacklist.
func (s *Store) IsBlacklisted(word string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.blacklist[word]
	return ok
}

// Blacklist reads the stored blacklist through the persistent dict.
func (s *Store) Blacklist(ctx context.Context) ([]domain.BlacklistItem, error) {
	data, ok, err := s.dict.Get(ctx, BlacklistKey)
	if err != nil {
		return nil, fmt.Errorf("get blacklist: %w", err)
	}
	if !ok {
		return []domain.BlacklistItem{}, nil
	}

	items, err := decodeBlacklist(data)
	if err != nil {
		return nil, fmt.Errorf("decode blacklist: %w", err)
	}
	if items == nil {
		items = []domain.BlacklistItem{}
	}
	return items, nil
}

func (s *Store) blacklistItemsLocked() []domain.BlacklistItem {
	items := make([]domain.BlacklistItem, 0, len(s.blacklist))
	for _, it := range s.blacklist {
		items = append(items, it)
	}
	slices.SortFunc(items, func(a, b domain.BlacklistItem) int {
		return strings.Compare(a.Word, b.Word)
	})
	return items
}
