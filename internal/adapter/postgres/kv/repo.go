// Package kv implements persistence.Backend on a PostgreSQL kv_entries table.
// Each Repo owns one namespace; keys are unique within it.
package kv

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/vocabcore/internal/adapter/postgres"
)

const table = "kv_entries"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Repo provides namespaced key/value persistence backed by PostgreSQL.
type Repo struct {
	pool      *pgxpool.Pool
	tx        txManager
	namespace string
}

// New creates a repository for namespace.
func New(pool *pgxpool.Pool, tx txManager, namespace string) *Repo {
	return &Repo{pool: pool, tx: tx, namespace: namespace}
}

func (r *Repo) LoadAll(ctx context.Context) (map[string][]byte, error) {
	query, args, err := psql.Select("key", "value").
		From(table).
		Where(sq.Eq{"namespace": r.namespace}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build load query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, r.namespace, "")
	}
	defer rows.Close()

	out := make(map[string][]byte)
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, postgres.MapError(err, r.namespace, "")
		}
		out[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, r.namespace, "")
	}

	return out, nil
}

func (r *Repo) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query, args, err := psql.Select("value").
		From(table).
		Where(sq.Eq{"namespace": r.namespace, "key": key}).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("build get query: %w", err)
	}

	var value []byte
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, postgres.MapError(err, r.namespace, key)
	}
	return value, true, nil
}

// SetMany upserts every value in a single transaction using one batch.
func (r *Repo) SetMany(ctx context.Context, values map[string][]byte) error {
	if len(values) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	keys := make([]string, 0, len(values))
	for key, value := range values {
		query, args, err := psql.Insert(table).
			Columns("namespace", "key", "value", "updated_at").
			Values(r.namespace, key, value, sq.Expr("now()")).
			Suffix("ON CONFLICT (namespace, key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("build upsert: %w", err)
		}
		batch.Queue(query, args...)
		keys = append(keys, key)
	}

	return r.tx.RunInTx(ctx, func(ctx context.Context) error {
		br := postgres.QuerierFromCtx(ctx, r.pool).SendBatch(ctx, batch)
		for _, key := range keys {
			if _, err := br.Exec(); err != nil {
				_ = br.Close()
				return postgres.MapError(err, r.namespace, key)
			}
		}
		if err := br.Close(); err != nil {
			return postgres.MapError(err, r.namespace, "")
		}
		return nil
	})
}
