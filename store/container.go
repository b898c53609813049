// Package store holds client-side application state: one Container per
// entity kind, a persisted session snapshot, and route guards. It is the
// state layer an app embedding the API client builds screens on.
package store

import (
	"context"
	"errors"
	"sync"
	"volunteermatch-backend/client"
)

// Status is the lifecycle of a container's last operation.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Container caches one entity collection plus the currently selected and
// currently connected (logged-in) entity. All methods are safe for
// concurrent use.
//
// Each operation gets a sequence number when it starts; a completion
// whose number is no longer current is discarded, so a slow response
// can never overwrite the result of an operation started after it.
type Container[E any] struct {
	mu        sync.RWMutex
	status    Status
	errMsg    string
	items     []E
	selected  *E
	connected *E
	token     string
	seq       uint64
}

func NewContainer[E any]() *Container[E] {
	return &Container[E]{status: StatusIdle}
}

func (c *Container[E]) begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.status = StatusLoading
	c.errMsg = ""
	return c.seq
}

// current reports whether seq still identifies the latest operation.
// Callers must hold c.mu.
func (c *Container[E]) current(seq uint64) bool {
	return seq == c.seq
}

func (c *Container[E]) fail(seq uint64, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.current(seq) {
		return
	}
	c.status = StatusFailed
	c.errMsg = errorMessage(err)
}

// errorMessage keeps the bare server-supplied message for API errors so
// views show "Email already registered", not the kind/status framing.
func errorMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

// FetchAll loads the collection through fetch and replaces items.
func (c *Container[E]) FetchAll(ctx context.Context, fetch func(context.Context) ([]E, error)) {
	seq := c.begin()
	items, err := fetch(ctx)
	if err != nil {
		c.fail(seq, err)
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.current(seq) {
		return
	}
	c.status = StatusSucceeded
	c.items = items
}

// FetchByID loads one entity and makes it the selected one.
func (c *Container[E]) FetchByID(ctx context.Context, fetch func(context.Context) (*E, error)) {
	seq := c.begin()
	item, err := fetch(ctx)
	if err != nil {
		c.fail(seq, err)
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.current(seq) {
		return
	}
	c.status = StatusSucceeded
	c.selected = item
}

// Create runs create and appends the result to the collection.
func (c *Container[E]) Create(ctx context.Context, create func(context.Context) (*E, error)) {
	seq := c.begin()
	item, err := create(ctx)
	if err != nil {
		c.fail(seq, err)
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.current(seq) {
		return
	}
	c.status = StatusSucceeded
	c.items = append(c.items, *item)
}

// Update runs update and replaces the selected entity with the result.
// The cached collection is left as-is; it refreshes on the next FetchAll.
func (c *Container[E]) Update(ctx context.Context, update func(context.Context) (*E, error)) {
	seq := c.begin()
	item, err := update(ctx)
	if err != nil {
		c.fail(seq, err)
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.current(seq) {
		return
	}
	c.status = StatusSucceeded
	c.selected = item
}

// Delete runs del and drops matching entities from the collection.
func (c *Container[E]) Delete(ctx context.Context, del func(context.Context) error, match func(E) bool) {
	seq := c.begin()
	if err := del(ctx); err != nil {
		c.fail(seq, err)
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.current(seq) {
		return
	}
	c.status = StatusSucceeded
	kept := c.items[:0:0]
	for _, item := range c.items {
		if !match(item) {
			kept = append(kept, item)
		}
	}
	c.items = kept
	if c.selected != nil && match(*c.selected) {
		c.selected = nil
	}
}

// Login authenticates through login and records the logged-in entity as
// both selected and connected, plus its token. Detail views read the
// account through selected.
func (c *Container[E]) Login(ctx context.Context, login func(context.Context) (*E, string, error)) {
	seq := c.begin()
	entity, token, err := login(ctx)
	if err != nil {
		c.fail(seq, err)
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.current(seq) {
		return
	}
	c.status = StatusSucceeded
	c.selected = entity
	c.connected = entity
	c.token = token
}

// Signup registers a new entity; on success it is appended to the
// collection, selected, and connected, matching the
// signup-then-straight-in flow.
func (c *Container[E]) Signup(ctx context.Context, signup func(context.Context) (*E, string, error)) {
	seq := c.begin()
	entity, token, err := signup(ctx)
	if err != nil {
		c.fail(seq, err)
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.current(seq) {
		return
	}
	c.status = StatusSucceeded
	c.items = append(c.items, *entity)
	c.selected = entity
	c.connected = entity
	c.token = token
}

// Logout clears everything unconditionally, including any in-flight
// operation (its completion will be discarded as stale).
func (c *Container[E]) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.status = StatusIdle
	c.errMsg = ""
	c.items = nil
	c.selected = nil
	c.connected = nil
	c.token = ""
}

// ShouldFetch is the one-shot initial-fetch guard: true only before the
// first operation runs. A failed load does not rearm it; retrying is an
// explicit FetchAll.
func (c *Container[E]) ShouldFetch() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status == StatusIdle
}

func (c *Container[E]) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

func (c *Container[E]) Err() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.errMsg
}

// Items returns a copy of the cached collection.
func (c *Container[E]) Items() []E {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]E, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Container[E]) Selected() *E {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.selected
}

func (c *Container[E]) Connected() *E {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

func (c *Container[E]) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Select makes item the selected entity without any network activity.
func (c *Container[E]) Select(item *E) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = item
}

// Restore reinstalls a logged-in entity and token from a persisted
// session snapshot, same shape a fresh login leaves behind.
func (c *Container[E]) Restore(entity *E, token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = entity
	c.connected = entity
	c.token = token
}
