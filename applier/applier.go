// Package applier provides Applier, which binds a cursor to chaining
// operations (Map, Filter, Zip, ZipWithIndex) and to terminal operations
// that walk it and produce a result.
//
// Chaining never visits elements, except Filter which moves to the first
// accepted element straight away. Each chained Applier has a new cursor
// type wrapping the previous one, so a chain is a single value:
//
//	a := applier.FromSlice([]int{0, 1, 2, 3, 4})
//	evens := applier.Filter(a, func(x int) bool { return x%2 == 0 })
//	s := applier.Map(evens, strconv.Itoa).ToSlice() // ["0", "2", "4"]
//
// Chaining operations are functions rather than methods because Go
// methods cannot introduce new type parameters.
package applier

import (
	"go.lepak.sg/lazyseq/cursor"
	"go.lepak.sg/lazyseq/option"
	"golang.org/x/exp/constraints"
)

// Applier owns one cursor of type C over elements of type T.
// Appliers are values; copying one copies its cursor.
// Terminal operations start at the cursor's position and do not
// change the Applier they are called on.
type Applier[T any, C cursor.Cursor[T, C]] struct {
	c C
}

// New returns an Applier over c. The element type cannot be inferred
// from c, so call it as New[T](c).
func New[T any, C cursor.Cursor[T, C]](c C) Applier[T, C] {
	return Applier[T, C]{c: c}
}

// FromSlice returns an Applier over the elements of s.
func FromSlice[T any](s []T) Applier[T, cursor.Slice[T]] {
	return New[T](cursor.FromSlice(s))
}

// FromRange returns an Applier over begin, begin+1, ... excluding end.
func FromRange[I constraints.Integer](begin, end I) Applier[I, cursor.Range[I]] {
	return New[I](cursor.NewRange(begin, end))
}

// FromRangeStep returns an Applier over begin, begin+step, ... excluding end.
// It panics with cursor.ErrZeroStep if step is 0.
func FromRangeStep[I constraints.Integer](begin, end, step I) Applier[I, cursor.Range[I]] {
	return New[I](cursor.NewRangeStep(begin, end, step))
}

// FromOption returns an Applier over the value of o, if any.
func FromOption[T any](o option.Option[T]) Applier[T, cursor.OptionCursor[T]] {
	return New[T](cursor.FromOption(o))
}

// Cursor returns the cursor owned by a.
func (a Applier[T, C]) Cursor() C {
	return a.c
}

// Map returns an Applier whose elements are those of a transformed by f.
// f is not called until a terminal operation needs the element.
func Map[T, U any, C cursor.Cursor[T, C]](
	a Applier[T, C], f func(T) U,
) Applier[U, cursor.Mapped[T, U, C]] {
	return New[U](cursor.NewMapped(a.c, f))
}

// Filter returns an Applier over the elements of a that satisfy p.
// Unlike the other chaining operations, Filter walks a up to the first
// such element before returning.
func Filter[T any, C cursor.Cursor[T, C]](
	a Applier[T, C], p func(T) bool,
) Applier[T, cursor.Filtered[T, C]] {
	return New[T](cursor.NewFiltered(a.c, p))
}

// ZipWithIndex pairs every element of a with its index, counting from 0.
func ZipWithIndex[T any, C cursor.Cursor[T, C]](
	a Applier[T, C],
) Applier[cursor.Pair[T, int], cursor.Zipped[T, int, C, cursor.Range[int]]] {
	return New[cursor.Pair[T, int]](cursor.NewZipped[T, int](a.c, cursor.From(0)))
}

// Zip pairs the elements of a with those of other, stopping at the end
// of the shorter one. The element type of other cannot be inferred,
// so call it as Zip[R](a, other).
func Zip[R, T any, C cursor.Cursor[T, C], RC cursor.Cursor[R, RC]](
	a Applier[T, C], other RC,
) Applier[cursor.Pair[T, R], cursor.Zipped[T, R, C, RC]] {
	return New[cursor.Pair[T, R]](cursor.NewZipped[T, R](a.c, other))
}
