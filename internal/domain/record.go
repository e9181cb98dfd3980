package domain

import "slices"

// Record is the study state of a single word.
type Record struct {
	Word      string
	Last      *int64 // Unix seconds of the most recent review; nil if never reviewed.
	Next      *int64 // Unix seconds when the word is next due; nil if never reviewed.
	Lists     []string
	Attempts  int
	Successes int
	Failed    bool
}

// NewRecord returns a never-reviewed record that belongs to no list.
func NewRecord(word string) Record {
	return Record{Word: word, Lists: []string{}}
}

// Clone returns a deep copy that shares no memory with r.
func (r Record) Clone() Record {
	out := r
	if r.Last != nil {
		v := *r.Last
		out.Last = &v
	}
	if r.Next != nil {
		v := *r.Next
		out.Next = &v
	}
	out.Lists = slices.Clone(r.Lists)
	if out.Lists == nil {
		out.Lists = []string{}
	}
	return out
}

// InList reports whether the record belongs to the given list.
func (r Record) InList(listID string) bool {
	return slices.Contains(r.Lists, listID)
}

// Reviewed reports whether the record has at least one recorded attempt.
func (r Record) Reviewed() bool { return r.Attempts > 0 }

// BlacklistItem is a word the learner never wants to study.
// Pinyin and Definition are display text only.
type BlacklistItem struct {
	Word       string
	Pinyin     string
	Definition string
}

// Predicate filters records. A nil Predicate matches everything.
type Predicate func(Record) bool

// Match applies p, treating nil as match-all.
func (p Predicate) Match(r Record) bool {
	return p == nil || p(r)
}

// ReviewResult is the severity of a review outcome: 0 is a perfect recall,
// 3 is a failure. Anything below ResultFailure counts as a success.
type ReviewResult int

const (
	ResultPerfect ReviewResult = 0
	ResultMinor   ReviewResult = 1
	ResultMajor   ReviewResult = 2
	ResultFailure ReviewResult = 3
)

func (r ReviewResult) IsValid() bool {
	return r >= ResultPerfect && r <= ResultFailure
}

// Success reports whether the outcome counts toward Successes.
func (r ReviewResult) Success() bool { return r < ResultFailure }

// Stats summarizes the active set for progress displays.
type Stats struct {
	Total     int
	Attempted int
	Successes int
	Failures  int
	Unseen    int
}
