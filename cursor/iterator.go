package cursor

import "go.lepak.sg/lazyseq/must"

// Iterator adapts a cursor to the stateful pull style:
//
//	i := cursor.Iter[int](c)
//	for i.Next() {
//		v := i.Item()
//		... do stuff with v ...
//	}
//
// Next must always be called before Item, even for the first element.
// If Next returns false, Item must not be called.
// The cursor passed to Iter is not affected by the iteration.
type Iterator[T any, C Cursor[T, C]] struct {
	at      C
	started bool
}

// Iter returns an Iterator starting at c.
func Iter[T any, C Cursor[T, C]](c C) *Iterator[T, C] {
	return &Iterator[T, C]{at: c}
}

// Next returns true if there is an element to yield with Item.
// After the end, Next keeps returning false.
func (i *Iterator[T, C]) Next() bool {
	if i.started {
		i.at = i.at.Next()
	}
	i.started = true
	return i.at.Valid()
}

// Item returns the current element. It panics with must.ErrNotOK if the
// last call to Next returned false.
func (i *Iterator[T, C]) Item() T {
	return must.OK(i.at.Get().Value())
}

// Cursor returns the current position. Before the first call to Next,
// this is the cursor passed to Iter.
func (i *Iterator[T, C]) Cursor() C {
	return i.at
}
