// Package vocabulary is the scheduling core of the trainer: it owns every
// word record, partitions records into fixed chunks for persistence, keeps
// the set of records eligible for study, and selects the next due word.
//
// A record is active when it belongs to at least one list and its word is
// not blacklisted. A record that leaves its last list survives only if it
// has review history. Every mutation rewrites only the chunks it touched.
package vocabulary

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/heartmarshall/vocabcore/internal/domain"
)

// IntervalFunc returns the number of seconds until a word reviewed at ts
// with the given result should be shown again. rec is the caller's view of
// the record before the review.
type IntervalFunc func(rec domain.Record, result domain.ReviewResult, ts int64) int64

type dict interface {
	Load(ctx context.Context, onLoad func(values map[string][]byte) error) error
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(key string, value []byte)
}

// Option configures a Store.
type Option func(*Store)

// WithRand makes cursor tie-breaks draw from src instead of the global
// generator. Useful for reproducible tests.
func WithRand(src rand.Source) Option {
	return func(s *Store) {
		r := rand.New(src)
		var mu sync.Mutex
		s.intN = func(n int) int {
			mu.Lock()
			defer mu.Unlock()
			return r.IntN(n)
		}
	}
}

// Store holds all records in memory and writes touched chunks through to
// the persistent dict. All methods are safe for concurrent use.
//
// Dict subscribers must not call back into the Store: chunks are handed to
// the dict while the Store's lock is held so that writes for the same
// chunk reach the dict in mutation order.
type Store struct {
	dict     dict
	interval IntervalFunc
	log      *slog.Logger
	intN     func(n int) int

	mu        sync.Mutex
	chunks    [NumChunks][]*domain.Record
	index     map[string]*domain.Record
	active    []*domain.Record
	activePos map[string]int
	blacklist map[string]domain.BlacklistItem

	changed chan struct{}
	subs    map[int]func()
	nextSub int
}

// NewStore creates an empty Store. Call Load before serving requests.
// A nil interval schedules every review as due immediately.
func NewStore(d dict, interval IntervalFunc, log *slog.Logger, opts ...Option) *Store {
	s := &Store{
		dict:      d,
		interval:  interval,
		log:       log.With("component", "vocabulary_store"),
		intN:      rand.IntN,
		index:     make(map[string]*domain.Record),
		activePos: make(map[string]int),
		blacklist: make(map[string]domain.BlacklistItem),
		changed:   make(chan struct{}),
		subs:      make(map[int]func()),
	}
	if s.interval == nil {
		s.interval = func(domain.Record, domain.ReviewResult, int64) int64 { return 0 }
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory state with what the dict holds and rebuilds
// the index, the active set and the blacklist.
func (s *Store) Load(ctx context.Context) error {
	if err := s.dict.Load(ctx, s.rebuild); err != nil {
		return fmt.Errorf("load vocabulary: %w", err)
	}
	return nil
}

func (s *Store) rebuild(values map[string][]byte) error {
	items, err := decodeBlacklist(values[BlacklistKey])
	if err != nil {
		return err
	}
	blacklist := make(map[string]domain.BlacklistItem, len(items))
	for _, it := range items {
		blacklist[it.Word] = it
	}

	var chunks [NumChunks][]*domain.Record
	index := make(map[string]*domain.Record)
	dirty := make(map[int]bool)
	orphans := 0

	for i := range NumChunks {
		entries, err := decodeChunk(values[ChunkKey(i)])
		if err != nil {
			return fmt.Errorf("chunk %d: %w", i, err)
		}
		for _, e := range entries {
			if _, dup := index[e.Word]; dup {
				return fmt.Errorf("chunk %d: %w: duplicate word %q", i, domain.ErrCorrupt, e.Word)
			}
			if len(e.Lists) == 0 && e.Attempts == 0 {
				dirty[i] = true
				orphans++
				continue
			}
			home := ChunkOf(e.Word)
			if home != i {
				dirty[i] = true
				dirty[home] = true
			}
			chunks[home] = append(chunks[home], e)
			index[e.Word] = e
		}
	}

	s.mu.Lock()
	s.chunks = chunks
	s.index = index
	s.blacklist = blacklist
	s.rebuildActiveLocked()
	for i := range dirty {
		s.persistChunkLocked(i)
	}
	s.mu.Unlock()

	if orphans > 0 {
		s.log.Warn("dropped records with no list and no reviews", slog.Int("records", orphans))
	}
	if len(dirty) > 0 {
		s.log.Warn("rewrote chunks on load", slog.Int("chunks", len(dirty)))
	}
	s.log.Info("vocabulary loaded",
		slog.Int("records", len(index)),
		slog.Int("blacklisted", len(blacklist)),
	)

	s.notifyChanged()
	return nil
}

// AddToList adds word to list listID, creating the record if needed.
// Re-adding an existing pair only rewrites the owning chunk.
func (s *Store) AddToList(word, listID string) error {
	if err := validateWord(word, listID); err != nil {
		return err
	}

	s.mu.Lock()
	rec, ok := s.index[word]
	if !ok {
		r := domain.NewRecord(word)
		rec = &r
		i := ChunkOf(word)
		s.chunks[i] = append(s.chunks[i], rec)
		s.index[word] = rec
	}
	if !rec.InList(listID) {
		rec.Lists = append(rec.Lists, listID)
		if s.isActiveLocked(rec) {
			s.activateLocked(rec)
		}
	}
	s.persistChunkLocked(ChunkOf(word))
	s.mu.Unlock()

	s.notifyChanged()
	return nil
}

// RemoveFromList drops listID from every record. Records left without
// lists and without review history are deleted. All chunks are rewritten.
// It returns how many records lost the list and how many were deleted.
func (s *Store) RemoveFromList(listID string) (updated, deleted int) {
	s.mu.Lock()

	var chunks [NumChunks][]*domain.Record
	for i, chunk := range s.chunks {
		kept := make([]*domain.Record, 0, len(chunk))
		for _, rec := range chunk {
			if rec.InList(listID) {
				updated++
				lists := make([]string, 0, len(rec.Lists)-1)
				for _, l := range rec.Lists {
					if l != listID {
						lists = append(lists, l)
					}
				}
				rec.Lists = lists
			}
			if len(rec.Lists) == 0 && rec.Attempts == 0 {
				delete(s.index, rec.Word)
				deleted++
				continue
			}
			kept = append(kept, rec)
		}
		chunks[i] = kept
	}
	s.chunks = chunks
	s.rebuildActiveLocked()
	for i := range NumChunks {
		s.persistChunkLocked(i)
	}
	s.mu.Unlock()

	s.log.Info("list removed",
		slog.String("list", listID),
		slog.Int("updated", updated),
		slog.Int("deleted", deleted),
	)

	s.notifyChanged()
	return updated, deleted
}

// Lookup returns a copy of the record for word.
func (s *Store) Lookup(word string) (domain.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.index[word]
	if !ok {
		return domain.Record{}, false
	}
	return rec.Clone(), true
}

// Count returns the number of active records matching pred.
func (s *Store) Count(pred domain.Predicate) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if pred == nil {
		return len(s.active)
	}
	n := 0
	for _, rec := range s.active {
		if pred(*rec) {
			n++
		}
	}
	return n
}

// Size returns the number of records in the index, active or not.
func (s *Store) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.index)
}

// Subscribe registers fn to run after every change to the store.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func validateWord(word, listID string) error {
	var errs []domain.FieldError

	switch {
	case strings.TrimSpace(word) == "":
		errs = append(errs, domain.FieldError{Field: "word", Message: "required"})
	case !utf8.ValidString(word):
		errs = append(errs, domain.FieldError{Field: "word", Message: "must be valid UTF-8"})
	}
	if strings.TrimSpace(listID) == "" {
		errs = append(errs, domain.FieldError{Field: "list", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (s *Store) isActiveLocked(rec *domain.Record) bool {
	if len(rec.Lists) == 0 {
		return false
	}
	_, banned := s.blacklist[rec.Word]
	return !banned
}

func (s *Store) activateLocked(rec *domain.Record) {
	if _, ok := s.activePos[rec.Word]; ok {
		return
	}
	s.activePos[rec.Word] = len(s.active)
	s.active = append(s.active, rec)
}

func (s *Store) deactivateLocked(word string) {
	i, ok := s.activePos[word]
	if !ok {
		return
	}
	last := len(s.active) - 1
	if i != last {
		s.active[i] = s.active[last]
		s.activePos[s.active[i].Word] = i
	}
	s.active[last] = nil
	s.active = s.active[:last]
	delete(s.activePos, word)
}

func (s *Store) rebuildActiveLocked() {
	s.active = make([]*domain.Record, 0, len(s.index))
	s.activePos = make(map[string]int, len(s.index))
	for _, chunk := range s.chunks {
		for _, rec := range chunk {
			if s.isActiveLocked(rec) {
				s.activateLocked(rec)
			}
		}
	}
}

func (s *Store) persistChunkLocked(i int) {
	data, err := encodeChunk(s.chunks[i])
	if err != nil {
		s.log.Error("encode chunk", slog.Int("chunk", i), slog.String("error", err.Error()))
		return
	}
	s.dict.Set(ChunkKey(i), data)
}

func (s *Store) persistBlacklistLocked() {
	items := s.blacklistItemsLocked()
	data, err := encodeBlacklist(items)
	if err != nil {
		s.log.Error("encode blacklist", slog.String("error", err.Error()))
		return
	}
	s.dict.Set(BlacklistKey, data)
}

// notifyChanged wakes cursors created before this point and runs
// subscribers. Must be called without holding s.mu.
func (s *Store) notifyChanged() {
	s.mu.Lock()
	close(s.changed)
	s.changed = make(chan struct{})
	subs := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}
