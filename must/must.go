// Package must turns (value, error) and (value, ok) results into
// plain values, panicking when the result is unusable.
package must

import "errors"

// ErrNotOK is the panic value of OK when ok is false.
var ErrNotOK = errors.New("must: not ok")

// Value returns v, or panics with err if it is not nil.
func Value[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// OK returns v, or panics with ErrNotOK if ok is false.
func OK[T any](v T, ok bool) T {
	if !ok {
		panic(ErrNotOK)
	}
	return v
}
