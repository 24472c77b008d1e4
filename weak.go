package weakify

import "weak"

func noRelease() {}

// Weak is a [Handle] backed by a runtime weak pointer.
//
// The owner counts as gone once the garbage collector has reclaimed it. Weak is a
// comparable value: handles made from the same owner are equal.
type Weak[T any] struct {
	pointer weak.Pointer[T]
}

// Make returns a weak handle to owner.
//
// A nil owner yields a handle that never resolves.
func Make[T any](owner *T) Weak[T] {
	return Weak[T]{pointer: weak.Make(owner)}
}

// Resolve implements [Handle]. The returned release is a no-op: the strong pointer
// itself keeps the owner alive for as long as the caller holds it.
func (w Weak[T]) Resolve() (*T, func(), bool) {
	owner := w.pointer.Value()

	if owner == nil {
		return nil, nil, false
	}

	return owner, noRelease, true
}

// Expired reports whether the owner has been reclaimed.
func (w Weak[T]) Expired() bool {
	return w.pointer.Value() == nil
}
