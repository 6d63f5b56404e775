package cursor

import (
	"fmt"

	"go.lepak.sg/lazyseq/option"
	"golang.org/x/exp/slices"
)

var _ Cursor[int, Slice[int]] = Slice[int]{}

// Slice is a cursor over a slice, between a current and an end position.
// The slice is shared with the caller and must not be modified
// while the cursor is in use.
type Slice[T any] struct {
	s        []T
	pos, end int
}

// FromSlice returns a cursor at the first element of s.
func FromSlice[T any](s []T) Slice[T] {
	return Slice[T]{
		s:   s,
		end: len(s),
	}
}

// Between returns a cursor over s[begin:end].
// It panics if the bounds are out of range, like slicing would.
func Between[T any](s []T, begin, end int) Slice[T] {
	if begin < 0 || end > len(s) || begin > end {
		panic(fmt.Sprintf("cursor: bounds [%d:%d] out of range with length %d",
			begin, end, len(s)))
	}
	return Slice[T]{
		s:   s,
		pos: begin,
		end: end,
	}
}

func (c Slice[T]) Valid() bool {
	return c.pos != c.end
}

func (c Slice[T]) Get() option.Option[T] {
	if !c.Valid() {
		return option.None[T]()
	}
	return option.Some(c.s[c.pos])
}

func (c Slice[T]) Next() Slice[T] {
	if !c.Valid() {
		return c
	}
	c.pos++
	return c
}

func (c Slice[T]) Invalid() Slice[T] {
	c.pos = c.end
	return c
}

// Remaining returns a copy of the elements from the current position
// to the end.
func (c Slice[T]) Remaining() []T {
	return slices.Clone(c.s[c.pos:c.end])
}
