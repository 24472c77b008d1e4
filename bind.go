package weakify

// Bind wraps fn into a callback that resolves h on every call.
//
// While the owner is alive the callback runs fn with the resolved owner and
// returns its result with ok == true. Once the owner is gone it returns the zero R
// and false without calling fn. The strong reference is released when fn returns,
// including when fn panics.
//
// Bind is the general form; the other combinators are shorthands over it. H is
// usually inferred: a [Weak], a *[Lifetime], or any other [Handle] implementation.
//
// fn must not capture the owner itself. Pass a method expression such as
// (*View).Refresh, not the method value view.Refresh, which holds view strongly.
func Bind[H Handle[T], T, A, R any](h H, fn func(*T, A) R) func(A) (R, bool) {
	assertBind(h, fn)

	return func(arg A) (R, bool) {
		owner, release, ok := h.Resolve()

		if !ok {
			var zero R
			return zero, false
		}

		defer release()
		return fn(owner, arg), true
	}
}

// BindFunc wraps fn into a callback that does nothing once the owner behind h is gone.
func BindFunc[H Handle[T], T any](h H, fn func(*T)) func() {
	assertBind(h, fn)

	call := Bind(h, func(owner *T, _ struct{}) struct{} {
		fn(owner)
		return struct{}{}
	})

	return func() {
		call(struct{}{})
	}
}

// BindValue wraps fn into a callback returning fn's result, or false once the
// owner behind h is gone.
func BindValue[H Handle[T], T, R any](h H, fn func(*T) R) func() (R, bool) {
	assertBind(h, fn)

	call := Bind(h, func(owner *T, _ struct{}) R {
		return fn(owner)
	})

	return func() (R, bool) {
		return call(struct{}{})
	}
}

// BindArg wraps fn into a callback taking fn's extra argument that does nothing
// once the owner behind h is gone.
func BindArg[H Handle[T], T, A any](h H, fn func(*T, A)) func(A) {
	assertBind(h, fn)

	call := Bind(h, func(owner *T, arg A) struct{} {
		fn(owner, arg)
		return struct{}{}
	})

	return func(arg A) {
		call(arg)
	}
}

// Func returns a callback running fn(owner) while owner is alive and doing nothing
// after it has been garbage collected.
//
// The callback holds owner weakly; see [Make].
func Func[T any](owner *T, fn func(*T)) func() {
	return BindFunc(Make(owner), fn)
}

// Value returns a callback yielding fn(owner), true while owner is alive and the
// zero R, false after it has been garbage collected.
//
// If R is itself optional-like (a pointer, an interface), check ok rather than the
// result to tell a gone owner from a nil result.
func Value[T, R any](owner *T, fn func(*T) R) func() (R, bool) {
	return BindValue(Make(owner), fn)
}

// Arg returns a callback running fn(owner, arg) while owner is alive and doing
// nothing after it has been garbage collected.
func Arg[T, A any](owner *T, fn func(*T, A)) func(A) {
	return BindArg(Make(owner), fn)
}

// ArgValue returns a callback yielding fn(owner, arg), true while owner is alive
// and the zero R, false after it has been garbage collected.
func ArgValue[T, A, R any](owner *T, fn func(*T, A) R) func(A) (R, bool) {
	return Bind(Make(owner), fn)
}
