package vocabulary

import "github.com/heartmarshall/vocabcore/internal/domain"

// IsNew matches records that have never been reviewed.
func IsNew(r domain.Record) bool {
	return r.Attempts == 0
}

// DueBy matches reviewed records last seen before lastCutoff and due
// before nextCutoff.
func DueBy(lastCutoff, nextCutoff int64) domain.Predicate {
	return func(r domain.Record) bool {
		if r.Attempts == 0 || r.Last == nil || r.Next == nil {
			return false
		}
		return *r.Last < lastCutoff && *r.Next < nextCutoff
	}
}

// Extra matches records that can pad a session: new ones and those due
// before cutoff.
func Extra(cutoff int64) domain.Predicate {
	return func(r domain.Record) bool {
		return r.Attempts == 0 || (r.Next != nil && *r.Next < cutoff)
	}
}

// FailedIn matches records whose last review failed within [start, end).
func FailedIn(start, end int64) domain.Predicate {
	return func(r domain.Record) bool {
		if !r.Failed || r.Last == nil {
			return false
		}
		return start <= *r.Last && *r.Last < end
	}
}

// NewItems returns a cursor over never-reviewed active records.
func (s *Store) NewItems() *Cursor {
	return s.NewCursor(IsNew)
}

// ItemsDueBy returns a cursor over reviewed records that are due.
func (s *Store) ItemsDueBy(lastCutoff, nextCutoff int64) *Cursor {
	return s.NewCursor(DueBy(lastCutoff, nextCutoff))
}

// ExtraItems returns a cursor over records that can pad a session.
func (s *Store) ExtraItems(cutoff int64) *Cursor {
	return s.NewCursor(Extra(cutoff))
}

// FailuresInRange returns a cursor over records failed within [start, end).
func (s *Store) FailuresInRange(start, end int64) *Cursor {
	return s.NewCursor(FailedIn(start, end))
}
