package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padel-cup/internal/padel"
)

// Runner is the single writer in front of a Store. Every repository call runs
// inside a Unit obtained from Do, so an entity write and the counter update
// that goes with it are committed together.
type Runner struct {
	mu        sync.Mutex
	store     Store
	codec     Codec
	onFailure func(key Key, err error)
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithFailureHook registers fn to be called on every swallowed read failure and every failed commit.
func WithFailureHook(fn func(key Key, err error)) RunnerOption {
	return func(r *Runner) {
		r.onFailure = fn
	}
}

// NewRunner wraps store. A nil codec means JSON.
func NewRunner(store Store, codec Codec, opts ...RunnerOption) *Runner {
	if codec == nil {
		codec = JSONCodec{}
	}
	r := &Runner{store: store, codec: codec}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type unitKey struct{}

// Do runs fn inside a unit of work and commits its writes when fn returns nil.
// When ctx already carries a unit of this runner, fn joins it and nothing is
// committed until the outermost Do returns.
func (r *Runner) Do(ctx context.Context, fn func(ctx context.Context, u *Unit) error) error {
	if u, ok := ctx.Value(unitKey{}).(*Unit); ok && u.runner == r {
		return fn(ctx, u)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	u := &Unit{
		runner: r,
		blobs:  make(map[Key][]byte),
		dirty:  make(map[Key]bool),
		failed: make(map[Key]error),
	}
	if err := fn(context.WithValue(ctx, unitKey{}, u), u); err != nil {
		return err
	}
	return u.commit(ctx)
}

// Atomically runs fn in a unit of work that any repository call made with the
// passed context joins.
func (r *Runner) Atomically(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.Do(ctx, func(ctx context.Context, _ *Unit) error {
		return fn(ctx)
	})
}

// Close closes the underlying store.
func (r *Runner) Close() error {
	return r.store.Close()
}

func (r *Runner) failure(key Key, err error) {
	if r.onFailure != nil {
		r.onFailure(key, err)
	}
}

// Unit buffers the collections read and written by one Do call.
// A collection whose load failed reads as empty but cannot be written in the same unit.
type Unit struct {
	runner *Runner
	blobs  map[Key][]byte
	dirty  map[Key]bool
	failed map[Key]error
}

func (u *Unit) blob(ctx context.Context, key Key) []byte {
	if b, ok := u.blobs[key]; ok {
		return b
	}
	b, err := u.runner.store.Load(ctx, key)
	if err != nil {
		log.Error("Failed to load collection, treating as empty", "collection", key, "error", err)
		u.runner.failure(key, err)
		u.failed[key] = err
		b = nil
	}
	u.blobs[key] = b
	return b
}

func (u *Unit) commit(ctx context.Context) error {
	if len(u.dirty) == 0 {
		return nil
	}
	values := make(map[Key][]byte, len(u.dirty))
	for key := range u.dirty {
		values[key] = u.blobs[key]
	}
	if err := u.runner.store.Save(ctx, values); err != nil {
		log.Error("Failed to save collections", "count", len(values), "error", err)
		for key := range values {
			u.runner.failure(key, err)
		}
		return fmt.Errorf("%w: %v", padel.ErrStorage, err)
	}
	log.Debug("Committed collections", "count", len(values))
	return nil
}

// Read decodes the collection stored under key. A missing or malformed
// collection is logged and read as empty.
func Read[T any](ctx context.Context, u *Unit, key Key) []T {
	raw := u.blob(ctx, key)
	if len(raw) == 0 {
		return []T{}
	}
	var items []T
	if err := u.runner.codec.Unmarshal(raw, &items); err != nil {
		log.Error("Failed to decode collection, treating as empty", "collection", key, "codec", u.runner.codec.Name(), "error", err)
		u.runner.failure(key, err)
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// Write replaces the collection stored under key within the unit. It fails
// with ErrStorage when the unit could not load key, so the stored collection
// is never replaced by a partial view of it.
func Write[T any](u *Unit, key Key, items []T) error {
	if err, ok := u.failed[key]; ok {
		return fmt.Errorf("%w: %s was not loaded: %v", padel.ErrStorage, key, err)
	}
	if items == nil {
		items = []T{}
	}
	raw, err := u.runner.codec.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %v", padel.ErrStorage, key, err)
	}
	u.blobs[key] = raw
	u.dirty[key] = true
	return nil
}
