// Package sqlite stores persistence values in an embedded SQLite file, for
// single-learner installs that do not run PostgreSQL.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

const schema = `
CREATE TABLE IF NOT EXISTS kv_entries (
	namespace  TEXT    NOT NULL,
	key        TEXT    NOT NULL,
	value      BLOB    NOT NULL,
	updated_at INTEGER NOT NULL,
	PRIMARY KEY (namespace, key)
);`

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// Backend keeps one namespace of kv_entries.
type Backend struct {
	db        *sql.DB
	namespace string
}

// Open opens (creating if needed) the database at path and prepares the
// schema. Values are scoped to namespace.
func Open(ctx context.Context, path, namespace string) (*Backend, error) {
	db, err := openDB("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	// SQLite allows a single writer; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	for _, stmt := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA busy_timeout = 5000;",
		schema,
	} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("prepare sqlite %s: %w", path, err)
		}
	}

	return &Backend{db: db, namespace: namespace}, nil
}

// Close releases the database.
func (b *Backend) Close() error {
	return b.db.Close()
}

// Ping checks that the database file is reachable.
func (b *Backend) Ping(ctx context.Context) error {
	return b.db.PingContext(ctx)
}

func (b *Backend) LoadAll(ctx context.Context) (map[string][]byte, error) {
	query, args, err := psql.Select("key", "value").
		From("kv_entries").
		Where(sq.Eq{"namespace": b.namespace}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build load query: %w", err)
	}

	rows, err := b.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", b.namespace, err)
	}
	defer rows.Close()

	out := make(map[string][]byte)
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan %s: %w", b.namespace, err)
		}
		out[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", b.namespace, err)
	}

	return out, nil
}

func (b *Backend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query, args, err := psql.Select("value").
		From("kv_entries").
		Where(sq.Eq{"namespace": b.namespace, "key": key}).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("build get query: %w", err)
	}

	var value []byte
	err = b.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s/%s: %w", b.namespace, key, err)
	}
	return value, true, nil
}

// SetMany upserts all values in one transaction.
func (b *Backend) SetMany(ctx context.Context, values map[string][]byte) (err error) {
	if len(values) == 0 {
		return nil
	}

	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	now := time.Now().Unix()
	for key, value := range values {
		query, args, buildErr := psql.Insert("kv_entries").
			Columns("namespace", "key", "value", "updated_at").
			Values(b.namespace, key, value, now).
			Suffix("ON CONFLICT (namespace, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
			ToSql()
		if buildErr != nil {
			return fmt.Errorf("build upsert: %w", buildErr)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert %s/%s: %w", b.namespace, key, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
