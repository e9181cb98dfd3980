package vocabulary

import "github.com/heartmarshall/vocabcore/internal/domain"

// Stats summarizes the active set. A record counts as a success once it
// has been recalled at least once; attempted records that never were count
// as failures.
func (s *Store) Stats() domain.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := domain.Stats{Total: len(s.active)}
	for _, rec := range s.active {
		if rec.Attempts > 0 {
			st.Attempted++
		}
		if rec.Successes > 0 {
			st.Successes++
		}
	}
	st.Failures = st.Attempted - st.Successes
	st.Unseen = st.Total - st.Attempted
	return st
}
