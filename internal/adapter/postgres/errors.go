package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/vocabcore/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors. Context errors pass
// through unmapped.
func MapError(err error, namespace, key string) error {
	if err == nil {
		return nil
	}

	ref := namespace
	if key != "" {
		ref = namespace + "/" + key
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", ref, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", ref, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23502", "23514": // not_null_violation, check_violation
			return fmt.Errorf("%s: %w", ref, domain.ErrValidation)
		case "22021": // character_not_in_repertoire
			return fmt.Errorf("%s: %w", ref, domain.ErrCorrupt)
		}
	}

	return fmt.Errorf("%s: %w", ref, err)
}
