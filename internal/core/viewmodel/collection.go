// Package viewmodel holds observable, mutex-guarded collections of domain
// entities synchronised with the backend.
package viewmodel

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/martijn/trainhub/internal/adapter/apiclient"
	"github.com/martijn/trainhub/internal/logging"
)

// State is a snapshot of a collection. Items is a copy owned by the caller.
type State[D any] struct {
	Items        []D
	IsLoading    bool
	ErrorMessage string
}

// Collection keeps the mapped items of one backend resource.
// W is the wire entity, D the domain entity.
type Collection[W, D any, C, U apiclient.Payload] struct {
	resource *apiclient.Resource[W, C, U]
	toDomain func(W) D
	idOf     func(D) int64
	logger   *slog.Logger

	mu           sync.RWMutex
	items        []D
	pending      int
	errorMessage string

	fetches singleflight.Group

	subMu  sync.Mutex
	subs   map[int]func(State[D])
	nextID int
}

func newCollection[W, D any, C, U apiclient.Payload](
	resource *apiclient.Resource[W, C, U],
	toDomain func(W) D,
	idOf func(D) int64,
	logger *slog.Logger,
) *Collection[W, D, C, U] {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Collection[W, D, C, U]{
		resource: resource,
		toDomain: toDomain,
		idOf:     idOf,
		logger:   logger.With("resource", resource.Path()),
		subs:     make(map[int]func(State[D])),
	}
}

// State returns a snapshot of the collection.
func (c *Collection[W, D, C, U]) State() State[D] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot()
}

// Items returns a copy of the current items.
func (c *Collection[W, D, C, U]) Items() []D {
	return c.State().Items
}

func (c *Collection[W, D, C, U]) IsLoading() bool {
	return c.State().IsLoading
}

func (c *Collection[W, D, C, U]) ErrorMessage() string {
	return c.State().ErrorMessage
}

// snapshot must be called with mu held.
func (c *Collection[W, D, C, U]) snapshot() State[D] {
	return State[D]{
		Items:        append([]D(nil), c.items...),
		IsLoading:    c.pending > 0,
		ErrorMessage: c.errorMessage,
	}
}

// Subscribe registers fn to receive a snapshot after every change. The
// returned func removes the subscription.
func (c *Collection[W, D, C, U]) Subscribe(fn func(State[D])) (cancel func()) {
	c.subMu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	c.subMu.Unlock()

	return func() {
		c.subMu.Lock()
		delete(c.subs, id)
		c.subMu.Unlock()
	}
}

func (c *Collection[W, D, C, U]) notify() {
	state := c.State()

	c.subMu.Lock()
	fns := make([]func(State[D]), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.subMu.Unlock()

	for _, fn := range fns {
		fn(state)
	}
}

// mutate applies fn under the lock and notifies subscribers.
func (c *Collection[W, D, C, U]) mutate(fn func()) {
	c.mu.Lock()
	fn()
	c.mu.Unlock()
	c.notify()
}

func (c *Collection[W, D, C, U]) begin() {
	c.mutate(func() { c.pending++ })
}

// finish ends an operation. On failure it records err and leaves the items
// alone; on success it clears the message and runs apply.
func (c *Collection[W, D, C, U]) finish(err error, apply func()) {
	c.mutate(func() {
		c.pending--
		if err != nil {
			c.errorMessage = apiclient.UserMessage(err)
			return
		}
		c.errorMessage = ""
		if apply != nil {
			apply()
		}
	})
}

// FetchAll replaces the items with the backend list. On failure the items
// are kept and the error message is set. Concurrent calls share one
// request.
func (c *Collection[W, D, C, U]) FetchAll(ctx context.Context) error {
	_, err, _ := c.fetches.Do("fetch", func() (any, error) {
		c.begin()
		wires, err := c.resource.List(ctx)
		if err != nil {
			logging.FromContext(ctx, c.logger).Warn("failed to fetch collection", "error", err)
			c.finish(err, nil)
			return nil, err
		}

		mapped := make([]D, 0, len(wires))
		for _, w := range wires {
			mapped = append(mapped, c.toDomain(w))
		}
		c.finish(nil, func() { c.items = mapped })
		return nil, nil
	})
	return err
}

// Get fetches one entity without touching the collection.
func (c *Collection[W, D, C, U]) Get(ctx context.Context, id int64) (D, error) {
	w, err := c.resource.Get(ctx, id)
	if err != nil {
		var zero D
		return zero, err
	}
	return c.toDomain(w), nil
}

// Create appends the created entity on success.
func (c *Collection[W, D, C, U]) Create(ctx context.Context, payload C) (D, error) {
	c.begin()
	w, err := c.resource.Create(ctx, payload)
	if err != nil {
		logging.FromContext(ctx, c.logger).Warn("failed to create", "error", err)
		c.finish(err, nil)
		var zero D
		return zero, err
	}

	created := c.toDomain(w)
	c.finish(nil, func() { c.items = append(c.items, created) })
	return created, nil
}

// Update replaces the entity with the same id on success. An entity not
// yet in the collection is left out.
func (c *Collection[W, D, C, U]) Update(ctx context.Context, id int64, payload U) (D, error) {
	c.begin()
	w, err := c.resource.Update(ctx, id, payload)
	if err != nil {
		logging.FromContext(ctx, c.logger).Warn("failed to update", "id", id, "error", err)
		c.finish(err, nil)
		var zero D
		return zero, err
	}

	updated := c.toDomain(w)
	c.finish(nil, func() {
		for i := range c.items {
			if c.idOf(c.items[i]) == id {
				c.items[i] = updated
				break
			}
		}
	})
	return updated, nil
}

// Delete removes the entity from the collection on success.
func (c *Collection[W, D, C, U]) Delete(ctx context.Context, id int64) error {
	c.begin()
	if err := c.resource.Delete(ctx, id); err != nil {
		logging.FromContext(ctx, c.logger).Warn("failed to delete", "id", id, "error", err)
		c.finish(err, nil)
		return err
	}

	c.finish(nil, func() {
		kept := c.items[:0:0]
		for _, item := range c.items {
			if c.idOf(item) != id {
				kept = append(kept, item)
			}
		}
		c.items = kept
	})
	return nil
}
