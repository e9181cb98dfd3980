package vocabulary

import (
	"github.com/heartmarshall/vocabcore/internal/domain"
)

// Cursor is a snapshot of the active records matching a predicate, taken
// when the cursor was created. Later store changes are not reflected;
// Changed signals when the snapshot has gone out of date.
type Cursor struct {
	records []domain.Record
	changed <-chan struct{}
	intN    func(n int) int
}

// NewCursor snapshots the active records matching pred (all of them when
// pred is nil).
func (s *Store) NewCursor(pred domain.Predicate) *Cursor {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]domain.Record, 0, len(s.active))
	for _, rec := range s.active {
		if pred.Match(*rec) {
			records = append(records, rec.Clone())
		}
	}

	return &Cursor{
		records: records,
		changed: s.changed,
		intN:    s.intN,
	}
}

// Changed is closed on the first store mutation after the cursor was made.
// Re-run the query to observe the new state.
func (c *Cursor) Changed() <-chan struct{} {
	return c.changed
}

// Count returns the number of records in the snapshot.
func (c *Cursor) Count() int {
	return len(c.records)
}

// Fetch returns independent copies of every record in the snapshot.
func (c *Cursor) Fetch() []domain.Record {
	out := make([]domain.Record, len(c.records))
	for i, r := range c.records {
		out[i] = r.Clone()
	}
	return out
}

// Next returns the record with the earliest due time. Records that were
// never reviewed count as due at +∞. Ties are broken uniformly at random
// with a single pass of reservoir sampling: the k-th record seen at the
// current minimum replaces the pick with probability 1/k.
func (c *Cursor) Next() (domain.Record, bool) {
	best := -1
	var bestDue due
	count := 0

	for i := range c.records {
		d := dueOf(c.records[i])
		switch {
		case best < 0 || d.before(bestDue):
			best, bestDue, count = i, d, 1
		case d == bestDue:
			count++
			if c.intN(count) == 0 {
				best = i
			}
		}
	}

	if best < 0 {
		return domain.Record{}, false
	}
	return c.records[best].Clone(), true
}

// due orders records by next due time with "never" after every timestamp.
type due struct {
	never bool
	at    int64
}

func dueOf(r domain.Record) due {
	if r.Next == nil {
		return due{never: true}
	}
	return due{at: *r.Next}
}

func (d due) before(o due) bool {
	if d.never != o.never {
		return !d.never
	}
	return d.at < o.at
}
