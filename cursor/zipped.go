package cursor

import "go.lepak.sg/lazyseq/option"

var _ Cursor[Pair[int, string], Zipped[int, string, Range[int], Slice[string]]] = Zipped[int, string, Range[int], Slice[string]]{}

// Zipped is a cursor over pairs of elements taken from two cursors in
// lockstep. It ends as soon as either side ends, so it yields as many
// pairs as the shorter side has elements.
type Zipped[L, R any, LC Cursor[L, LC], RC Cursor[R, RC]] struct {
	left  LC
	right RC
}

// NewZipped pairs up left and right. The element types cannot be
// inferred, so call it as NewZipped[L, R](left, right).
func NewZipped[L, R any, LC Cursor[L, LC], RC Cursor[R, RC]](left LC, right RC) Zipped[L, R, LC, RC] {
	return Zipped[L, R, LC, RC]{
		left:  left,
		right: right,
	}
}

func (z Zipped[L, R, LC, RC]) Valid() bool {
	return z.left.Valid() && z.right.Valid()
}

func (z Zipped[L, R, LC, RC]) Get() option.Option[Pair[L, R]] {
	return option.FlatMap(z.left.Get(), func(l L) option.Option[Pair[L, R]] {
		return option.Map(z.right.Get(), func(r R) Pair[L, R] {
			return Pair[L, R]{Left: l, Right: r}
		})
	})
}

// Next advances both sides, even if one of them is already exhausted.
func (z Zipped[L, R, LC, RC]) Next() Zipped[L, R, LC, RC] {
	z.left = z.left.Next()
	z.right = z.right.Next()
	return z
}

func (z Zipped[L, R, LC, RC]) Invalid() Zipped[L, R, LC, RC] {
	z.left = z.left.Invalid()
	z.right = z.right.Invalid()
	return z
}
