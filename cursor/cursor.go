// Package cursor provides lazy, value-typed cursors over sequences,
// and adapters that compose them without building intermediate containers.
//
// A cursor is a position in a sequence. Advancing a cursor never changes it;
// Next returns a new cursor, so any cursor value may be kept, copied and
// advanced independently of its copies:
//
//	for c := cursor.FromSlice(s); c.Valid(); c = c.Next() {
//		v := c.Get().MustGet()
//		... do stuff with v ...
//	}
//
// Reaching the end of a sequence is not an error. An exhausted cursor is
// simply not Valid, and stays that way no matter how often Next is called.
package cursor

import (
	"fmt"

	"go.lepak.sg/lazyseq/option"
)

// Cursor is the contract every cursor in this package satisfies.
// T is the element type and C is the concrete cursor type itself,
// so adapters can be nested without boxing.
//
// Implementations must keep these laws:
//   - Valid reports whether Get is defined.
//   - Next on an invalid cursor returns an invalid cursor.
//   - Invalid returns an exhausted cursor of the same type.
//   - No method mutates the receiver.
type Cursor[T, C any] interface {
	Valid() bool
	Get() option.Option[T]
	Next() C
	Invalid() C
}

// Pair is the element type of zipped cursors.
type Pair[L, R any] struct {
	Left  L
	Right R
}

func (p Pair[L, R]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Left, p.Right)
}

// Drain calls sink with every element from c up to the end of the sequence.
func Drain[T any, C Cursor[T, C]](c C, sink func(T)) {
	for ; c.Valid(); c = c.Next() {
		if v, ok := c.Get().Value(); ok {
			sink(v)
		}
	}
}

// AppendTo appends every element from c to dst and returns the result.
func AppendTo[T any, C Cursor[T, C]](dst []T, c C) []T {
	Drain(c, func(v T) {
		dst = append(dst, v)
	})
	return dst
}

// Find returns the first position from c, inclusive, whose element
// satisfies p. If there is none, the result is c.Invalid().
func Find[T any, C Cursor[T, C]](c C, p func(T) bool) C {
	for ; c.Valid(); c = c.Next() {
		if v, ok := c.Get().Value(); ok && p(v) {
			return c
		}
	}
	return c.Invalid()
}
