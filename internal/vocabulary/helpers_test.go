package vocabulary

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/vocabcore/internal/domain"
)

// fakeDict is an in-memory dict that records every Set.
type fakeDict struct {
	mu      sync.Mutex
	values  map[string][]byte
	sets    []string
	loadErr error
}

func newFakeDict(values map[string][]byte) *fakeDict {
	if values == nil {
		values = make(map[string][]byte)
	}
	return &fakeDict{values: values}
}

func (d *fakeDict) Load(_ context.Context, onLoad func(map[string][]byte) error) error {
	if d.loadErr != nil {
		return d.loadErr
	}
	d.mu.Lock()
	values := make(map[string][]byte, len(d.values))
	for k, v := range d.values {
		values[k] = v
	}
	d.mu.Unlock()
	return onLoad(values)
}

func (d *fakeDict) Get(_ context.Context, key string) ([]byte, bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, ok := d.values[key]
	return v, ok, nil
}

func (d *fakeDict) Set(key string, value []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.values[key] = value
	d.sets = append(d.sets, key)
}

// takeSets returns the keys written since the last call, deduplicated and sorted.
func (d *fakeDict) takeSets() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	keys := slices.Clone(d.sets)
	d.sets = nil
	slices.Sort(keys)
	return slices.Compact(keys)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedInterval(seconds int64) IntervalFunc {
	return func(domain.Record, domain.ReviewResult, int64) int64 { return seconds }
}

func newTestStore(t *testing.T, d *fakeDict, interval IntervalFunc) *Store {
	t.Helper()
	s := NewStore(d, interval, discardLogger(), WithRand(rand.NewPCG(1, 2)))
	require.NoError(t, s.Load(context.Background()))
	d.takeSets()
	return s
}

func ptr[T any](v T) *T { return &v }

// requireInvariants checks every structural invariant of the store.
func requireInvariants(t *testing.T, s *Store) {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool)
	for i, chunk := range s.chunks {
		for _, rec := range chunk {
			require.Equal(t, i, ChunkOf(rec.Word), "record %q in wrong chunk", rec.Word)
			require.False(t, seen[rec.Word], "record %q stored twice", rec.Word)
			seen[rec.Word] = true
			require.Same(t, rec, s.index[rec.Word], "index entry for %q is not the chunk record", rec.Word)

			require.GreaterOrEqual(t, rec.Successes, 0)
			require.LessOrEqual(t, rec.Successes, rec.Attempts, "successes > attempts for %q", rec.Word)
			if len(rec.Lists) == 0 {
				require.Positive(t, rec.Attempts, "listless record %q without history survived", rec.Word)
			}

			_, banned := s.blacklist[rec.Word]
			_, active := s.activePos[rec.Word]
			require.Equal(t, len(rec.Lists) > 0 && !banned, active, "active membership of %q", rec.Word)
		}
	}
	require.Len(t, s.index, len(seen))

	require.Len(t, s.activePos, len(s.active))
	for i, rec := range s.active {
		require.Equal(t, i, s.activePos[rec.Word])
	}
}
