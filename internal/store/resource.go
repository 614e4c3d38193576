// Package store implements the client-side resource cache: a typed
// collection of server-owned entities synchronized through a fixed set of
// asynchronous operations, each of which drives a shared status record
// through Idle -> Pending -> (Succeeded | Failed).
//
// A Resource is the single writer of its collection, singleton and status.
// Operations take the transport call as a closure, so the engine stays
// independent of how requests are issued. Transitions are applied and
// delivered to subscribers strictly before an operation returns, so a
// caller always observes post-transition state after settlement.
//
// Status is deliberately shared across concurrent operations on the same
// resource: a second invocation overwrites Pending, and settlements apply
// in settlement order (last-settled wins). This mirrors the behavior the
// UI contract was built on and is covered by tests.
package store

import (
	"context"
	"log/slog"
	"sync"

	"propmart/internal/errors"
)

// Entity is any server-owned record with a stable unique identifier.
type Entity interface {
	EntityID() string
}

// CreatePolicy controls what a successful create does to the collection.
type CreatePolicy int

const (
	// RequireRefetch leaves the collection untouched on create; the caller
	// is expected to re-run List to pick up the new entity.
	RequireRefetch CreatePolicy = iota
	// Append adds the created entity to the end of the collection.
	Append
)

// Snapshot is the immutable view delivered to subscribers. Items is a
// copy; mutating it does not affect the resource.
type Snapshot[E Entity] struct {
	Items   []E
	Current *E
	Status  Status
}

// Resource holds the authoritative client-side view of one server-owned
// collection plus an optional focused singleton.
type Resource[E Entity] struct {
	name   string
	logger *slog.Logger

	mu      sync.Mutex
	items   []E
	current *E
	status  Status
	subs    map[uint64]func(Snapshot[E])
	nextSub uint64
}

// New creates an empty resource. The name is used only for logging.
func New[E Entity](name string, logger *slog.Logger) *Resource[E] {
	if logger == nil {
		logger = slog.Default()
	}

	return &Resource[E]{
		name:   name,
		logger: logger,
		subs:   make(map[uint64]func(Snapshot[E])),
	}
}

// Name returns the resource name.
func (r *Resource[E]) Name() string {
	return r.name
}

// Items returns a copy of the current collection.
func (r *Resource[E]) Items() []E {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]E(nil), r.items...)
}

// Len returns the number of entities in the collection.
func (r *Resource[E]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.items)
}

// Find returns the collection element with the given identifier.
func (r *Resource[E]) Find(id string) (E, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range r.items {
		if item.EntityID() == id {
			return item, true
		}
	}

	var zero E

	return zero, false
}

// Current returns the focused singleton, or nil if none is set.
func (r *Resource[E]) Current() *E {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return nil
	}
	cp := *r.current

	return &cp
}

// Status returns the shared request status.
func (r *Resource[E]) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.status
}

// Snapshot returns a consistent view of collection, singleton and status.
func (r *Resource[E]) Snapshot() Snapshot[E] {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.snapshotLocked()
}

// Subscribe registers fn to be called synchronously after every state
// transition. The returned cancel function removes the subscription.
func (r *Resource[E]) Subscribe(fn func(Snapshot[E])) (cancel func()) {
	r.mu.Lock()
	id := r.nextSub
	r.nextSub++
	r.subs[id] = fn
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.subs, id)
		r.mu.Unlock()
	}
}

// Reset returns the status to Idle and clears the message. Collection and
// singleton are kept. Resetting an already idle resource is a no-op apart
// from notifying subscribers.
func (r *Resource[E]) Reset() {
	r.mu.Lock()
	r.status = Status{}
	snap, fns := r.observersLocked()
	r.mu.Unlock()

	r.notify(snap, fns)
}

// List replaces the collection wholesale with the fetched entities, in
// server order. No merge with prior contents happens.
func (r *Resource[E]) List(ctx context.Context, fallback string, fetch func(context.Context) ([]E, error)) ([]E, error) {
	r.begin()

	items, err := fetch(ctx)
	if err != nil {
		return nil, r.fail(err, fallback)
	}

	r.commit(func(s *state[E]) {
		s.items = items
	})

	return items, nil
}

// Get fetches a single entity and sets it as the focused singleton. The
// collection is not touched.
func (r *Resource[E]) Get(ctx context.Context, fallback string, fetch func(context.Context) (E, error)) (E, error) {
	r.begin()

	item, err := fetch(ctx)
	if err != nil {
		var zero E

		return zero, r.fail(err, fallback)
	}

	r.commit(func(s *state[E]) {
		cp := item
		s.current = &cp
	})

	return item, nil
}

// Create submits a new entity. On success the collection is either left
// untouched (RequireRefetch) or the created entity is appended (Append).
func (r *Resource[E]) Create(ctx context.Context, fallback string, policy CreatePolicy, call func(context.Context) (E, error)) (E, error) {
	r.begin()

	item, err := call(ctx)
	if err != nil {
		var zero E

		return zero, r.fail(err, fallback)
	}

	r.commit(func(s *state[E]) {
		if policy == Append {
			s.items = append(s.items, item)
		}
	})

	return item, nil
}

// Update submits a mutation for the entity with the given identifier and,
// on success, replaces the matching collection element in place with the
// server-returned entity. The singleton is updated too if it matches. An
// identifier absent from the collection leaves it unchanged.
func (r *Resource[E]) Update(ctx context.Context, id, fallback string, call func(context.Context) (E, error)) (E, error) {
	r.begin()

	item, err := call(ctx)
	if err != nil {
		var zero E

		return zero, r.fail(err, fallback)
	}

	r.commit(func(s *state[E]) {
		s.replace(id, item)
	})

	return item, nil
}

// Delete submits a removal and, on success, removes the matching element
// from the collection. Whether deleting an absent identifier fails is up
// to the server; the engine performs no pre-check.
func (r *Resource[E]) Delete(ctx context.Context, id, fallback string, call func(context.Context) error) error {
	r.begin()

	if err := call(ctx); err != nil {
		return r.fail(err, fallback)
	}

	r.commit(func(s *state[E]) {
		s.remove(id)
	})

	return nil
}

// Discard removes an element locally without a request lifecycle. It is
// used when a sibling resource mirrors a server-confirmed removal (e.g.
// one delete call settling against two cached lists). Status is untouched.
func (r *Resource[E]) Discard(id string) {
	r.mu.Lock()
	st := state[E]{items: r.items, current: r.current}
	st.remove(id)
	r.items = st.items
	r.current = st.current
	snap, fns := r.observersLocked()
	r.mu.Unlock()

	r.notify(snap, fns)
}

// state is the mutable view handed to transition functions inside commit.
type state[E Entity] struct {
	items   []E
	current *E
}

func (s *state[E]) replace(id string, item E) {
	for i := range s.items {
		if s.items[i].EntityID() == id {
			s.items[i] = item

			break
		}
	}

	if s.current != nil && (*s.current).EntityID() == id {
		cp := item
		s.current = &cp
	}
}

func (s *state[E]) remove(id string) {
	kept := s.items[:0:0]
	for _, item := range s.items {
		if item.EntityID() != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
}

// begin arms the shared status to Pending and clears any recorded message.
func (r *Resource[E]) begin() {
	r.mu.Lock()
	r.status = Status{Phase: Pending}
	snap, fns := r.observersLocked()
	r.mu.Unlock()

	r.notify(snap, fns)
}

// commit applies a pure transition, marks the status Succeeded and
// notifies subscribers before returning to the operation caller.
func (r *Resource[E]) commit(apply func(*state[E])) {
	r.mu.Lock()
	st := state[E]{items: r.items, current: r.current}
	apply(&st)
	r.items = st.items
	r.current = st.current
	r.status = Status{Phase: Succeeded}
	snap, fns := r.observersLocked()
	r.mu.Unlock()

	r.notify(snap, fns)
}

// fail records the normalized message, leaves collection and singleton
// untouched and returns the settlement error handed back to the caller.
func (r *Resource[E]) fail(err error, fallback string) error {
	msg := normalizeMessage(err, fallback)

	r.mu.Lock()
	r.status = Status{Phase: Failed, Message: msg}
	snap, fns := r.observersLocked()
	r.mu.Unlock()

	r.logger.Debug("operation failed",
		slog.String("resource", r.name),
		slog.String("message", msg),
	)

	r.notify(snap, fns)

	return &OpError{message: msg, cause: err}
}

func (r *Resource[E]) snapshotLocked() Snapshot[E] {
	snap := Snapshot[E]{
		Items:  append([]E(nil), r.items...),
		Status: r.status,
	}
	if r.current != nil {
		cp := *r.current
		snap.Current = &cp
	}

	return snap
}

func (r *Resource[E]) observersLocked() (Snapshot[E], []func(Snapshot[E])) {
	fns := make([]func(Snapshot[E]), 0, len(r.subs))
	for _, fn := range r.subs {
		fns = append(fns, fn)
	}

	return r.snapshotLocked(), fns
}

func (r *Resource[E]) notify(snap Snapshot[E], fns []func(Snapshot[E])) {
	for _, fn := range fns {
		fn(snap)
	}
}

// apiMessenger is implemented by transport errors that carry a
// server-provided message.
type apiMessenger interface {
	APIMessage() string
}

// normalizeMessage extracts the server-provided message from err, falling
// back to the operation's fixed message when the transport gives none.
func normalizeMessage(err error, fallback string) string {
	var m apiMessenger
	if errors.As(err, &m) && m.APIMessage() != "" {
		return m.APIMessage()
	}

	return fallback
}

// OpError is the settlement error returned by failed operations. Its text
// is exactly the message recorded on the resource status, so callers can
// surface it without reading the shared status.
type OpError struct {
	message string
	cause   error
}

// Error returns the normalized message.
func (e *OpError) Error() string {
	return e.message
}

// Unwrap returns the underlying transport error.
func (e *OpError) Unwrap() error {
	return e.cause
}
