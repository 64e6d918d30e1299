// Package state provides the reactive values hosts use to own a modal's
// open flag between renders.
package state

import (
	"reflect"
	"sync"
)

// Unsubscribe is a function returned by Subscribe to remove the subscription.
type Unsubscribe func()

// Subscriber is a callback function that receives value updates.
type Subscriber[T any] func(T)

type subEntry[T any] struct {
	id uint64
	fn Subscriber[T]
}

// Rune holds a value of type T and notifies subscribers when it changes.
type Rune[T any] struct {
	mu          sync.RWMutex
	value       T
	subscribers []subEntry[T]
	nextSubID   uint64
}

// NewRune creates a new Rune with the given initial value.
//
// Example:
//
//	open := state.NewRune(true)
//	cfg := modal.New(modal.WithOpen(open.Get()), modal.WithOnClose(func() { open.Set(false) }))
func NewRune[T any](initial T) *Rune[T] {
	return &Rune[T]{
		value:     initial,
		nextSubID: 1,
	}
}

// Get returns the current value.
func (r *Rune[T]) Get() T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.value
}

// Set updates the value and notifies subscribers if it changed.
func (r *Rune[T]) Set(value T) {
	r.Update(func(T) T { return value })
}

// Update applies fn to the current value and stores the result.
func (r *Rune[T]) Update(fn func(T) T) {
	r.mu.Lock()
	newValue := fn(r.value)
	if reflect.DeepEqual(r.value, newValue) {
		r.mu.Unlock()
		return
	}
	r.value = newValue
	subs := make([]subEntry[T], len(r.subscribers))
	copy(subs, r.subscribers)
	r.mu.Unlock()

	// Notify outside the lock so subscribers may read the rune.
	for _, sub := range subs {
		sub.fn(newValue)
	}
}

// Subscribe registers a callback called synchronously on every change.
func (r *Rune[T]) Subscribe(fn Subscriber[T]) Unsubscribe {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextSubID
	r.nextSubID++
	r.subscribers = append(r.subscribers, subEntry[T]{id: id, fn: fn})

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		for i, sub := range r.subscribers {
			if sub.id == id {
				r.subscribers = append(r.subscribers[:i], r.subscribers[i+1:]...)
				break
			}
		}
	}
}
