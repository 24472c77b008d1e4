// Package weakify builds callbacks that refer to their owner without keeping it alive.
//
// The core idea is:
//   - Hand an owner and a function taking that owner to one of the combinators
//     ([Func], [Value], [Arg], [ArgValue]).
//   - Register the returned callback wherever a plain func is expected: a timer,
//     an event emitter, a completion handler.
//   - The callback holds only a weak reference. Every call resolves it again and
//     silently does nothing once the owner is gone.
//
// Call shapes:
//   - [Func]:     func(*T)       -> func()
//   - [Value]:    func(*T) R     -> func() (R, bool)
//   - [Arg]:      func(*T, A)    -> func(A)
//   - [ArgValue]: func(*T, A) R  -> func(A) (R, bool)
//
// Value-returning callbacks report a gone owner with ok == false and the zero R.
//
// Ownership models (high level):
//   - The pointer forms use [Weak], backed by the runtime's weak pointers: the owner
//     is gone once the garbage collector reclaims it.
//   - [Lifetime] is for owners that are shut down explicitly while still referenced
//     elsewhere. [Lifetime.End] stops new calls and [Lifetime.Wait] drains running ones.
//   - Any other model can plug in by implementing [Handle] and using [Bind] or its
//     BindFunc/BindValue/BindArg siblings.
//
// Callbacks carry no locks and may be invoked concurrently.

package weakify
