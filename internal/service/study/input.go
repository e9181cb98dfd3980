package study

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/vocabcore/internal/domain"
)

const maxWordLength = 64

// QueueKind names one of the selection queries.
type QueueKind string

const (
	QueueNew      QueueKind = "new"
	QueueDue      QueueKind = "due"
	QueueExtra    QueueKind = "extra"
	QueueFailures QueueKind = "failures"
)

func (k QueueKind) IsValid() bool {
	switch k {
	case QueueNew, QueueDue, QueueExtra, QueueFailures:
		return true
	}
	return false
}

// QueueMode selects what a queue request returns.
type QueueMode string

const (
	ModeNext  QueueMode = "next"
	ModeAll   QueueMode = "all"
	ModeCount QueueMode = "count"
)

func (m QueueMode) IsValid() bool {
	switch m {
	case ModeNext, ModeAll, ModeCount:
		return true
	}
	return false
}

func validateWord(errs []domain.FieldError, word string) []domain.FieldError {
	switch {
	case strings.TrimSpace(word) == "":
		errs = append(errs, domain.FieldError{Field: "word", Message: "required"})
	case !utf8.ValidString(word):
		errs = append(errs, domain.FieldError{Field: "word", Message: "must be valid UTF-8"})
	case utf8.RuneCountInString(word) > maxWordLength:
		errs = append(errs, domain.FieldError{Field: "word", Message: "max 64 characters"})
	}
	return errs
}

// AddToListInput holds the parameters for adding a word to a list.
type AddToListInput struct {
	Word string
	List string
}

// Validate checks all fields and collects all errors.
func (i AddToListInput) Validate() error {
	errs := validateWord(nil, i.Word)
	if strings.TrimSpace(i.List) == "" {
		errs = append(errs, domain.FieldError{Field: "list", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ReviewInput holds the outcome of one review as the client saw it.
// Attempts is the attempt count the client read before reviewing.
type ReviewInput struct {
	Word      string
	Attempts  int
	Result    domain.ReviewResult
	Timestamp *int64 // Unix seconds; nil = now
}

// Validate checks all fields and collects all errors.
func (i ReviewInput) Validate() error {
	errs := validateWord(nil, i.Word)
	if i.Attempts < 0 {
		errs = append(errs, domain.FieldError{Field: "attempts", Message: "must be non-negative"})
	}
	if !i.Result.IsValid() {
		errs = append(errs, domain.FieldError{Field: "result", Message: "must be between 0 and 3"})
	}
	if i.Timestamp != nil && *i.Timestamp < 0 {
		errs = append(errs, domain.FieldError{Field: "timestamp", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// BlacklistInput describes a word to ban from study.
type BlacklistInput struct {
	Word       string
	Pinyin     string
	Definition string
}

// Validate checks all fields and collects all errors.
func (i BlacklistInput) Validate() error {
	errs := validateWord(nil, i.Word)
	if len(i.Definition) > 1000 {
		errs = append(errs, domain.FieldError{Field: "definition", Message: "max 1000 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// QueueInput selects a queue and what to return from it. Cutoffs left nil
// default relative to now.
type QueueInput struct {
	Kind QueueKind
	Mode QueueMode // empty = next

	// due: last review before LastBefore and due before DueBefore.
	LastBefore *int64
	DueBefore  *int64
	// extra: due before Before.
	Before *int64
	// failures: failed within [Start, End).
	Start *int64
	End   *int64
}

// Validate checks all fields and collects all errors.
func (i QueueInput) Validate() error {
	var errs []domain.FieldError

	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be new, due, extra, or failures"})
	}
	if i.Mode != "" && !i.Mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "must be next, all, or count"})
	}
	if i.Start != nil && i.End != nil && *i.Start > *i.End {
		errs = append(errs, domain.FieldError{Field: "start", Message: "must not be after end"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
