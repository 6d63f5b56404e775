package cursor

import "go.lepak.sg/lazyseq/option"

var _ Cursor[int, Filtered[int, Range[int]]] = Filtered[int, Range[int]]{}

// Filtered is a cursor over the elements of a base cursor that satisfy p.
//
// A Filtered cursor never rests on a rejected element: NewFiltered and
// Next both skip forward to the next accepted element, or to the end.
// Each call to Next may therefore visit many elements of the base.
type Filtered[T any, C Cursor[T, C]] struct {
	base C
	p    func(T) bool
}

// NewFiltered returns a cursor at the first element from base,
// inclusive, that satisfies p.
func NewFiltered[T any, C Cursor[T, C]](base C, p func(T) bool) Filtered[T, C] {
	return Filtered[T, C]{
		base: Find(base, p),
		p:    p,
	}
}

func (f Filtered[T, C]) Valid() bool {
	return f.base.Valid()
}

func (f Filtered[T, C]) Get() option.Option[T] {
	return f.base.Get()
}

func (f Filtered[T, C]) Next() Filtered[T, C] {
	if !f.base.Valid() {
		return f
	}
	return NewFiltered(f.base.Next(), f.p)
}

func (f Filtered[T, C]) Invalid() Filtered[T, C] {
	f.base = f.base.Invalid()
	return f
}
