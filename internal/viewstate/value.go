// Package viewstate provides framework-independent observable state
// containers: a state holder publishes on change, renderers subscribe.
package viewstate

import "sync"

// Value holds a single piece of view state and notifies subscribers on every
// Set. Safe for concurrent use; callbacks run on the calling goroutine,
// outside the internal lock.
type Value[T any] struct {
	mu     sync.Mutex
	v      T
	subs   map[int]func(T)
	nextID int
}

// NewValue returns a Value holding initial.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{v: initial, subs: make(map[int]func(T))}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.v
}

// Set stores nv and notifies every subscriber. Notification is
// unconditional; deciding whether a change is interesting is the
// subscriber's job.
func (v *Value[T]) Set(nv T) {
	v.mu.Lock()
	v.v = nv
	fns := make([]func(T), 0, len(v.subs))
	for _, fn := range v.subs {
		fns = append(fns, fn)
	}
	v.mu.Unlock()

	for _, fn := range fns {
		fn(nv)
	}
}

// Subscribe registers fn to run on every Set and returns a cancel func.
func (v *Value[T]) Subscribe(fn func(T)) func() {
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.subs[id] = fn
	v.mu.Unlock()

	return func() {
		v.mu.Lock()
		delete(v.subs, id)
		v.mu.Unlock()
	}
}
