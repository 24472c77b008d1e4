//go:build debug

package weakify

import (
	"fmt"
	"reflect"
)

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Interface, reflect.Map, reflect.Chan, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}

// assertBind panics if a callback is built from a nil handle or a nil function (debug only).
func assertBind(handle any, fn any) {
	if isNil(handle) {
		panic("weakify: contract violation: callback bound to a nil handle")
	}

	if isNil(fn) {
		panic(
			fmt.Sprintf(
				"weakify: contract violation: nil %T bound as callback; "+
					"pass the function to run while the owner is alive",
				fn,
			),
		)
	}
}
