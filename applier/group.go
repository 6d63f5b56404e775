package applier

import (
	"go.lepak.sg/lazyseq/cursor"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// GroupBy collects the elements of a into groups sharing the same key.
// Groups appear in the order their first element was seen, and keep
// the order of their elements.
func GroupBy[K comparable, T any, C cursor.Cursor[T, C]](
	a Applier[T, C], key func(T) K,
) (out [][]T) {
	groups := make(map[K]int)

	a.ForEach(func(el T) {
		k := key(el)
		i, ok := groups[k]
		if !ok {
			i = len(out)
			groups[k] = i
			out = append(out, nil)
		}
		out[i] = append(out[i], el)
	})

	return
}

// GroupAndOrderBy is like GroupBy, but orders the groups by key.
func GroupAndOrderBy[K constraints.Ordered, T any, C cursor.Cursor[T, C]](
	a Applier[T, C], key func(T) K,
) [][]T {
	out := GroupBy(a, key)

	slices.SortFunc(out, func(x, y []T) bool {
		return key(x[0]) < key(y[0])
	})

	return out
}
