package study

import "github.com/heartmarshall/vocabcore/internal/domain"

// RemoveListResult reports what RemoveList changed.
type RemoveListResult struct {
	Updated int
	Deleted int
}

// ReviewOutcome reports whether a review was applied and the record as it
// stands afterwards. A stale review leaves Applied false and returns the
// current record so the client can retry from it.
type ReviewOutcome struct {
	Applied bool
	Record  domain.Record
}

// QueueResult is the answer to a queue request. Count is always set;
// Record is set for ModeNext when the queue is non-empty; Records for ModeAll.
type QueueResult struct {
	Count   int
	Record  *domain.Record
	Records []domain.Record
}
