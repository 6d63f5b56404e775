package cursor

import "go.lepak.sg/lazyseq/option"

var _ Cursor[string, Mapped[int, string, Range[int]]] = Mapped[int, string, Range[int]]{}

// Mapped is a cursor over the elements of a base cursor, transformed by f.
// f is applied on every call to Get and its results are not kept, so it
// should be cheap and free of side effects.
type Mapped[A, B any, C Cursor[A, C]] struct {
	base C
	f    func(A) B
}

func NewMapped[A, B any, C Cursor[A, C]](base C, f func(A) B) Mapped[A, B, C] {
	return Mapped[A, B, C]{
		base: base,
		f:    f,
	}
}

func (m Mapped[A, B, C]) Valid() bool {
	return m.base.Valid()
}

func (m Mapped[A, B, C]) Get() option.Option[B] {
	return option.Map(m.base.Get(), m.f)
}

func (m Mapped[A, B, C]) Next() Mapped[A, B, C] {
	m.base = m.base.Next()
	return m
}

func (m Mapped[A, B, C]) Invalid() Mapped[A, B, C] {
	m.base = m.base.Invalid()
	return m
}
