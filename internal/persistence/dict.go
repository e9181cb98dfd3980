// Package persistence provides Dict, an in-memory key→value mirror of a
// Backend. Reads are served from memory once loaded; writes update memory
// immediately and are flushed to the Backend by a background writer, so
// callers never wait for durability. Dependents can subscribe to changes.
package persistence

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"sync"
	"time"
)

//go:generate mockgen -source=dict.go -destination=mock_backend_test.go -package=persistence Backend

// Backend is durable key→value storage.
type Backend interface {
	LoadAll(ctx context.Context) (map[string][]byte, error)
	Get(ctx context.Context, key string) ([]byte, bool, error)
	SetMany(ctx context.Context, values map[string][]byte) error
}

// Option configures a Dict.
type Option func(*Dict)

// WithFlushInterval delays each background flush by d so that bursts of
// writes to the same key coalesce into one backend write. Zero flushes as
// soon as the writer wakes.
func WithFlushInterval(d time.Duration) Option {
	return func(dict *Dict) { dict.interval = d }
}

// WithRetryDelay sets how long the writer waits before retrying a failed
// background flush.
func WithRetryDelay(d time.Duration) Option {
	return func(dict *Dict) { dict.retryDelay = d }
}

// WithWriteTimeout bounds every backend write issued by the writer.
func WithWriteTimeout(d time.Duration) Option {
	return func(dict *Dict) { dict.writeTimeout = d }
}

// Dict mirrors a Backend in memory.
type Dict struct {
	name         string
	backend      Backend
	log          *slog.Logger
	interval     time.Duration
	retryDelay   time.Duration
	writeTimeout time.Duration

	mu      sync.Mutex
	loaded  bool
	values  map[string][]byte
	pending map[string][]byte
	subs    map[int]func(key string)
	nextSub int

	flushMu sync.Mutex

	wake      chan struct{}
	done      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
}

// NewDict creates a Dict and starts its background writer.
// Close must be called to drain pending writes.
func NewDict(name string, backend Backend, log *slog.Logger, opts ...Option) *Dict {
	d := &Dict{
		name:         name,
		backend:      backend,
		log:          log.With("dict", name),
		retryDelay:   time.Second,
		writeTimeout: 5 * time.Second,
		values:       make(map[string][]byte),
		pending:      make(map[string][]byte),
		subs:         make(map[int]func(string)),
		wake:         make(chan struct{}, 1),
		done:         make(chan struct{}),
		stopped:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}

	go d.run()

	return d
}

// Load reads every stored key and hands the full value set to onLoad.
// Subscribers are notified with an empty key afterwards.
func (d *Dict) Load(ctx context.Context, onLoad func(values map[string][]byte) error) error {
	values, err := d.backend.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("%s: load: %w", d.name, err)
	}
	if values == nil {
		values = make(map[string][]byte)
	}

	d.mu.Lock()
	d.values = maps.Clone(values)
	d.loaded = true
	d.mu.Unlock()

	if err := onLoad(values); err != nil {
		return fmt.Errorf("%s: on load: %w", d.name, err)
	}

	d.log.Debug("dict loaded", slog.Int("keys", len(values)))
	d.notify("")

	return nil
}

// Get returns the value stored under key. Before Load has run the call
// reads through to the backend.
func (d *Dict) Get(ctx context.Context, key string) ([]byte, bool, error) {
	d.mu.Lock()
	if d.loaded {
		v, ok := d.values[key]
		d.mu.Unlock()
		return v, ok, nil
	}
	d.mu.Unlock()

	v, ok, err := d.backend.Get(ctx, key)
	if err != nil {
		return nil, false, fmt.Errorf("%s: get %q: %w", d.name, key, err)
	}
	return v, ok, nil
}

// Set replaces the value for key, schedules a backend write, and notifies
// subscribers. It never blocks on I/O.
func (d *Dict) Set(key string, value []byte) {
	d.mu.Lock()
	d.values[key] = value
	d.pending[key] = value
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
	}

	d.notify(key)
}

// Subscribe registers fn to be called after every Set (with the key) and
// after Load (with an empty key). The returned func removes the subscription.
func (d *Dict) Subscribe(fn func(key string)) (unsubscribe func()) {
	d.mu.Lock()
	id := d.nextSub
	d.nextSub++
	d.subs[id] = fn
	d.mu.Unlock()

	return func() {
		d.mu.Lock()
		delete(d.subs, id)
		d.mu.Unlock()
	}
}

// Pending returns the number of keys waiting to be written.
func (d *Dict) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// Flush writes all pending keys to the backend in one SetMany call.
// On failure the keys stay pending unless a newer value replaced them.
func (d *Dict) Flush(ctx context.Context) error {
	d.flushMu.Lock()
	defer d.flushMu.Unlock()

	d.mu.Lock()
	if len(d.pending) == 0 {
		d.mu.Unlock()
		return nil
	}
	batch := d.pending
	d.pending = make(map[string][]byte)
	d.mu.Unlock()

	if err := d.backend.SetMany(ctx, batch); err != nil {
		d.mu.Lock()
		for k, v := range batch {
			if _, newer := d.pending[k]; !newer {
				d.pending[k] = v
			}
		}
		d.mu.Unlock()
		return fmt.Errorf("%s: write %d keys: %w", d.name, len(batch), err)
	}

	d.log.Debug("dict flushed", slog.Int("keys", len(batch)))
	return nil
}

// Close stops the writer after a final flush. It returns ctx.Err() if the
// writer does not finish in time.
func (d *Dict) Close(ctx context.Context) error {
	d.closeOnce.Do(func() { close(d.done) })

	select {
	case <-d.stopped:
	case <-ctx.Done():
		return ctx.Err()
	}

	if n := d.Pending(); n > 0 {
		return fmt.Errorf("%s: %d keys not written", d.name, n)
	}
	return nil
}

func (d *Dict) run() {
	defer close(d.stopped)

	var retry <-chan time.Time
	for {
		retrying := false
		select {
		case <-d.done:
			d.flushLogged()
			return
		case <-d.wake:
		case <-retry:
			retrying = true
		}
		retry = nil

		if d.interval > 0 && !retrying {
			t := time.NewTimer(d.interval)
			select {
			case <-d.done:
				t.Stop()
				d.flushLogged()
				return
			case <-t.C:
			}
		}

		// Failed keys stay pending; retry them even if no Set arrives.
		if !d.flushLogged() {
			retry = time.After(d.retryDelay)
		}
	}
}

func (d *Dict) flushLogged() bool {
	ctx, cancel := context.WithTimeout(context.Background(), d.writeTimeout)
	defer cancel()

	if err := d.Flush(ctx); err != nil {
		d.log.Error("background flush failed",
			slog.String("error", err.Error()),
			slog.Duration("retry_in", d.retryDelay),
		)
		return false
	}
	return true
}

func (d *Dict) notify(key string) {
	d.mu.Lock()
	subs := make([]func(string), 0, len(d.subs))
	for _, fn := range d.subs {
		subs = append(subs, fn)
	}
	d.mu.Unlock()

	for _, fn := range subs {
		fn(key)
	}
}
