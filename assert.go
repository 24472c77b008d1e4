//go:build !debug

package weakify

func assertBind(handle any, fn any) {}
