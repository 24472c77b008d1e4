package weakify

import (
	"context"
	"reflect"
	"sync"
	"weak"
)

// Destroyer is implemented by owners that want a hook once their [Lifetime] has
// ended and every in-flight callback has returned.
type Destroyer interface {
	Destroy()
}

// Lifetime is a [Handle] for owners whose end of life is an explicit call.
//
// Resolution fails as soon as End has been requested, or once the owner has been
// garbage collected. Calls that resolved before End run to completion, and Wait
// blocks until they have. The owner is held weakly, so a Lifetime never keeps it
// in memory either.
//
// The zero Lifetime is usable and tracks no owner: it never resolves, and End,
// Wait, Done and Ctx behave as for any other lifetime.
type Lifetime[T any] struct {
	key            string
	pointer        weak.Pointer[T]
	ctx            context.Context
	cancel         context.CancelFunc
	done           chan struct{}
	initializeOnce sync.Once
	inflight       sync.WaitGroup
	mutex          sync.Mutex
	isEnded        bool
}

// NewLifetime starts a lifetime for owner.
func NewLifetime[T any](owner *T) *Lifetime[T] {
	return &Lifetime[T]{pointer: weak.Make(owner)}
}

func (l *Lifetime[T]) initialize() {
	l.initializeOnce.Do(func() {
		l.ctx, l.cancel = context.WithCancel(context.Background())
		l.done = make(chan struct{})
	})
}

func (l *Lifetime[T]) kind() string {
	t := reflect.TypeFor[T]()

	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t.Name() == "" {
		return "Unknown"
	}

	return t.Name()
}

func (l *Lifetime[T]) debug(step string) {
	logTransition(l.kind(), l.Key(), step)
}

// SetKey attaches an identifier used in log records. It panics if a key is already set.
func (l *Lifetime[T]) SetKey(key string) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if l.key != "" {
		panic("Key already set.")
	}

	l.key = key
}

// Key returns the lifetime key (if any).
func (l *Lifetime[T]) Key() string {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.key
}

// Resolve implements [Handle].
//
// A successful resolution counts as an in-flight call until release is called.
func (l *Lifetime[T]) Resolve() (*T, func(), bool) {
	l.mutex.Lock()

	if l.isEnded {
		l.mutex.Unlock()
		return nil, nil, false
	}

	owner := l.pointer.Value()

	if owner == nil {
		l.mutex.Unlock()
		return nil, nil, false
	}

	l.inflight.Add(1)
	l.mutex.Unlock()
	return owner, l.inflight.Done, true
}

// End requests the end of the lifetime and returns without waiting.
//
// After End returns every new resolution fails. Calling End again is a no-op.
func (l *Lifetime[T]) End() {
	l.initialize()
	l.mutex.Lock()

	if l.isEnded {
		l.mutex.Unlock()
		return
	}

	l.isEnded = true
	l.mutex.Unlock()

	l.debug("ending...")
	l.cancel()
	l.debug("ended.")

	go func() {
		l.inflight.Wait()
		l.destroy()
		close(l.done)
	}()
}

func (l *Lifetime[T]) destroy() {
	owner := l.pointer.Value()

	if owner == nil {
		return
	}

	destroyer, ok := any(owner).(Destroyer)

	if !ok {
		return
	}

	l.debug("destroying...")
	destroyer.Destroy()
	l.debug("destroyed.")
}

// Ended reports whether End has been requested.
func (l *Lifetime[T]) Ended() bool {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.isEnded
}

// Wait blocks until End has been requested and every in-flight call has returned.
//
// Calling Wait from a callback bound to the same lifetime never returns.
func (l *Lifetime[T]) Wait() {
	l.initialize()
	<-l.done
}

// Done returns a channel that is closed once the lifetime has ended and drained.
func (l *Lifetime[T]) Done() <-chan struct{} {
	l.initialize()
	return l.done
}

// Ctx returns a context canceled as soon as End is requested.
//
// Owners use it to stop background work tied to the lifetime.
func (l *Lifetime[T]) Ctx() context.Context {
	l.initialize()
	return l.ctx
}
