package weakify

// Handle is a non-owning reference to an owner of type T.
//
// Handles are safe to share between goroutines. Holding a handle must not keep
// the owner alive.
type Handle[T any] interface {
	// Resolve upgrades the handle to a strong pointer.
	//
	// On success the pointer stays valid until release is called, and release must
	// be called exactly once. If the owner is gone, Resolve returns nil, nil, false.
	Resolve() (owner *T, release func(), ok bool)
}
