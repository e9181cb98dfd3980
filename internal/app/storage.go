package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/heartmarshall/vocabcore/internal/adapter/memory"
	"github.com/heartmarshall/vocabcore/internal/adapter/postgres"
	"github.com/heartmarshall/vocabcore/internal/adapter/postgres/kv"
	"github.com/heartmarshall/vocabcore/internal/adapter/sqlite"
	"github.com/heartmarshall/vocabcore/internal/config"
	"github.com/heartmarshall/vocabcore/internal/domain"
	"github.com/heartmarshall/vocabcore/internal/persistence"
	"github.com/heartmarshall/vocabcore/internal/service/interval"
	"github.com/heartmarshall/vocabcore/internal/vocabulary"
)

// Storage is an opened persistence backend together with its health probe.
type Storage struct {
	Backend persistence.Backend
	Pinger  interface {
		Ping(ctx context.Context) error
	}
	close func()
}

// Close releases the backend's connections.
func (s *Storage) Close() {
	if s.close != nil {
		s.close()
	}
}

// OpenStorage connects the backend selected by cfg.Store.Driver.
func OpenStorage(ctx context.Context, cfg config.Config, log *slog.Logger) (*Storage, error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		if cfg.Database.MigrateOnStart {
			if err := postgres.Migrate(ctx, cfg.Database.DSN, log); err != nil {
				pool.Close()
				return nil, err
			}
		}
		repo := kv.New(pool, postgres.NewTxManager(pool), cfg.Store.Namespace)
		return &Storage{Backend: repo, Pinger: pool, close: pool.Close}, nil

	case config.DriverSQLite:
		b, err := sqlite.Open(ctx, cfg.Store.SQLitePath, cfg.Store.Namespace)
		if err != nil {
			return nil, err
		}
		return &Storage{Backend: b, Pinger: b, close: func() {
			if err := b.Close(); err != nil {
				log.Error("close sqlite", slog.String("error", err.Error()))
			}
		}}, nil

	case config.DriverMemory:
		log.Warn("memory store selected, nothing will survive a restart")
		b := memory.New()
		return &Storage{Backend: b, Pinger: b}, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// Vocabulary bundles a loaded record store with the layers beneath it.
type Vocabulary struct {
	Store   *vocabulary.Store
	Dict    *persistence.Dict
	Storage *Storage
	log     *slog.Logger

	changes atomic.Int64
	queued  atomic.Int64
	unsub   []func()
}

// Activity reports how many store changes and queued key writes were seen
// since the vocabulary was opened.
func (v *Vocabulary) Activity() (changes, queued int64) {
	return v.changes.Load(), v.queued.Load()
}

func (v *Vocabulary) watch() {
	v.unsub = append(v.unsub,
		v.Store.Subscribe(func() { v.changes.Add(1) }),
		v.Dict.Subscribe(func(key string) {
			if key != "" {
				v.queued.Add(1)
			}
		}),
	)
}

// OpenVocabulary opens storage, loads every persisted chunk and builds the
// record store. A corrupt chunk refuses startup.
func OpenVocabulary(ctx context.Context, cfg config.Config, log *slog.Logger) (*Vocabulary, error) {
	ladder, err := interval.NewLadder(cfg.Schedule.Steps, cfg.Schedule.FailureInterval)
	if err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}

	storage, err := OpenStorage(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	dict := persistence.NewDict(cfg.Store.Namespace, storage.Backend, log,
		persistence.WithFlushInterval(cfg.Store.FlushInterval),
		persistence.WithWriteTimeout(cfg.Store.WriteTimeout),
	)
	store := vocabulary.NewStore(dict, ladder.Next, log)

	if err := store.Load(ctx); err != nil {
		// Nothing was written yet, so closing cannot lose data.
		_ = dict.Close(ctx)
		storage.Close()
		if errors.Is(err, domain.ErrCorrupt) {
			return nil, fmt.Errorf("refusing to start on corrupt data: %w", err)
		}
		return nil, err
	}

	log.Info("vocabulary ready",
		slog.String("driver", cfg.Store.Driver),
		slog.String("namespace", cfg.Store.Namespace),
		slog.Int("active", store.Count(nil)),
	)

	v := &Vocabulary{Store: store, Dict: dict, Storage: storage, log: log}
	v.watch()
	return v, nil
}

// Close flushes pending writes and closes storage.
func (v *Vocabulary) Close(ctx context.Context) error {
	for _, fn := range v.unsub {
		fn()
	}
	v.unsub = nil

	changes, queued := v.Activity()
	v.log.Info("closing vocabulary",
		slog.Int64("changes", changes),
		slog.Int64("queued_writes", queued),
		slog.Int("pending", v.Dict.Pending()),
	)

	err := v.Dict.Close(ctx)
	if err != nil {
		v.log.Error("flush on close", slog.String("error", err.Error()))
	}
	v.Storage.Close()
	return err
}
