package cursor

import "go.lepak.sg/lazyseq/option"

var _ Cursor[int, OptionCursor[int]] = OptionCursor[int]{}

// OptionCursor is a cursor over the value of an Option: one element
// if it is defined, none otherwise.
type OptionCursor[T any] struct {
	o option.Option[T]
}

// FromOption returns a cursor over the value of o, if it has one.
func FromOption[T any](o option.Option[T]) OptionCursor[T] {
	return OptionCursor[T]{o: o}
}

func (c OptionCursor[T]) Valid() bool {
	return c.o.IsDefined()
}

func (c OptionCursor[T]) Get() option.Option[T] {
	return c.o
}

func (c OptionCursor[T]) Next() OptionCursor[T] {
	return c.Invalid()
}

func (c OptionCursor[T]) Invalid() OptionCursor[T] {
	return OptionCursor[T]{}
}
