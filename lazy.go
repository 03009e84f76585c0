package coerce

import "sync"

// Lazy is a deferred-initialization cell: an opaque handle of type T whose
// real state is resolved by exactly one initializer call on first access.
// After that the handle behaves as a fully realized T for the rest of its
// lifetime.
type Lazy[T any] struct {
	once    sync.Once
	init    func(*T)
	factory func() *T
	value   *T
}

// NewLazyGhost defers population of a zero instance: init fills the
// instance's own state in place on first touch.
func NewLazyGhost[T any](init func(*T)) *Lazy[T] {
	return &Lazy[T]{init: init}
}

// NewLazyProxy defers construction entirely: factory produces the
// replacement instance on first touch.
func NewLazyProxy[T any](factory func() *T) *Lazy[T] {
	return &Lazy[T]{factory: factory}
}

// Value resolves the cell, triggering the deferred callback exactly once.
// Safe for concurrent first access.
func (l *Lazy[T]) Value() *T {
	l.once.Do(func() {
		if l.factory != nil {
			l.value = l.factory()
			return
		}
		l.value = new(T)
		if l.init != nil {
			l.init(l.value)
		}
	})
	return l.value
}
