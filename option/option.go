// Package option provides Option, a value that may or may not be present.
// It is what every cursor returns when asked for its current element.
package option

import (
	"errors"
	"fmt"

	"go.lepak.sg/lazyseq/must"
)

// ErrNoValue is returned when reading the value of an empty Option.
var ErrNoValue = errors.New("option: no value")

// Option holds either a value of type T or nothing.
// The zero value is an empty Option.
// Options are values: copying one copies the contained value.
type Option[T any] struct {
	value   T
	defined bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{
		value:   v,
		defined: true,
	}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// New builds an Option from a comma-ok pair, such as a map lookup.
func New[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

func (o Option[T]) IsDefined() bool {
	return o.defined
}

func (o Option[T]) IsEmpty() bool {
	return !o.defined
}

// Get returns the contained value, or ErrNoValue if o is empty.
func (o Option[T]) Get() (v T, err error) {
	if !o.defined {
		err = ErrNoValue
		return
	}
	return o.value, nil
}

// MustGet is like Get, but panics with ErrNoValue if o is empty.
// Only call it after checking IsDefined.
func (o Option[T]) MustGet() T {
	return must.Value(o.Get())
}

// Value behaves like the map access `v, ok := m[k]`.
func (o Option[T]) Value() (T, bool) {
	return o.value, o.defined
}

// GetOrElse returns the contained value, or def if o is empty.
func (o Option[T]) GetOrElse(def T) T {
	if !o.defined {
		return def
	}
	return o.value
}

// Filter returns o if it is defined and its value satisfies p,
// otherwise an empty Option.
func (o Option[T]) Filter(p func(T) bool) Option[T] {
	if o.defined && p(o.value) {
		return o
	}
	return None[T]()
}

func (o Option[T]) String() string {
	if !o.defined {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Map applies f to the value of o, if there is one.
// An empty Option stays empty, but changes its type to Option[U].
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.defined {
		return None[U]()
	}
	return Some(f(o.value))
}

// FlatMap is like Map, except f returns an Option itself.
// The result is not wrapped again.
func FlatMap[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.defined {
		return None[U]()
	}
	return f(o.value)
}

// Equal reports whether a and b are both empty, or both defined with
// equal values.
func Equal[T comparable](a, b Option[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal, but compares values with eq.
// The Options may be of different types; two empty Options are always equal.
func EqualFunc[T, U any](a Option[T], b Option[U], eq func(T, U) bool) bool {
	if a.defined != b.defined {
		return false
	}
	if !a.defined {
		return true
	}
	return eq(a.value, b.value)
}
