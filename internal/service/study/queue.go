package study

import (
	"context"

	"github.com/heartmarshall/vocabcore/internal/domain"
	"github.com/heartmarshall/vocabcore/internal/vocabulary"
)

const defaultFailureWindow = 24 * 60 * 60

// Queue runs one of the selection queries over the active set.
func (s *Service) Queue(_ context.Context, input QueueInput) (QueueResult, error) {
	if err := input.Validate(); err != nil {
		return QueueResult{}, err
	}

	cur := s.store.NewCursor(s.predicate(input))
	res := QueueResult{Count: cur.Count()}

	switch input.Mode {
	case ModeAll:
		res.Records = cur.Fetch()
	case ModeCount:
	default:
		if rec, ok := cur.Next(); ok {
			res.Record = &rec
		}
	}
	return res, nil
}

// ActiveCount returns the number of words currently eligible for study.
func (s *Service) ActiveCount(_ context.Context) int {
	return s.store.Count(nil)
}

// Stats summarizes the active set.
func (s *Service) Stats(_ context.Context) domain.Stats {
	return s.store.Stats()
}

func (s *Service) predicate(input QueueInput) domain.Predicate {
	now := s.now().Unix()
	or := func(v *int64, def int64) int64 {
		if v != nil {
			return *v
		}
		return def
	}

	switch input.Kind {
	case QueueDue:
		return vocabulary.DueBy(or(input.LastBefore, now), or(input.DueBefore, now))
	case QueueExtra:
		return vocabulary.Extra(or(input.Before, now))
	case QueueFailures:
		// End is exclusive; +1 keeps a failure recorded this second.
		end := or(input.End, now+1)
		return vocabulary.FailedIn(or(input.Start, end-1-defaultFailureWindow), end)
	default:
		return vocabulary.IsNew
	}
}
