package view

import (
	"context"
	"sync"
)

// Snapshot is the view state of one resource
type Snapshot[T any] struct {
	Data    T
	Loading bool
	Err     error
	Loaded  bool // data was applied at least once
}

// Resource is a fetched value with loading and error flags. Each Load
// starts a new generation; a fetch that settles after a newer one started
// is discarded.
type Resource[T any] struct {
	mu       sync.Mutex
	gen      uint64
	snap     Snapshot[T]
	onChange func(Snapshot[T])
}

// NewResource creates an empty resource
func NewResource[T any]() *Resource[T] {
	return &Resource[T]{}
}

// SetChangeCallback sets the callback run after every state change
func (r *Resource[T]) SetChangeCallback(callback func(Snapshot[T])) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onChange = callback
}

// Snapshot returns the current state
func (r *Resource[T]) Snapshot() Snapshot[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snap
}

// Load runs fetch as a new fetch cycle. It returns the fetch error, or
// ErrStale when a newer cycle started meanwhile and the result was dropped.
func (r *Resource[T]) Load(ctx context.Context, fetch func(context.Context) (T, error)) error {
	r.mu.Lock()
	r.gen++
	gen := r.gen
	r.snap.Loading = true
	r.snap.Err = nil
	snap := r.snap
	r.mu.Unlock()
	r.notify(snap)

	data, err := fetch(ctx)

	r.mu.Lock()
	if gen != r.gen {
		r.mu.Unlock()
		return ErrStale
	}
	r.snap.Loading = false
	if err != nil {
		r.snap.Err = err
	} else {
		r.snap.Data = data
		r.snap.Loaded = true
	}
	snap = r.snap
	r.mu.Unlock()
	r.notify(snap)
	return err
}

// Update replaces the data with fn's result without a fetch. It is used
// after the backend confirmed a change.
func (r *Resource[T]) Update(fn func(T) T) {
	r.mu.Lock()
	r.snap.Data = fn(r.snap.Data)
	snap := r.snap
	r.mu.Unlock()
	r.notify(snap)
}

// Clear drops data and error and invalidates any fetch in flight
func (r *Resource[T]) Clear() {
	r.mu.Lock()
	r.gen++
	r.snap = Snapshot[T]{}
	snap := r.snap
	r.mu.Unlock()
	r.notify(snap)
}

func (r *Resource[T]) notify(snap Snapshot[T]) {
	r.mu.Lock()
	onChange := r.onChange
	r.mu.Unlock()
	if onChange != nil {
		onChange(snap)
	}
}
