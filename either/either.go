// Package either provides Either, which holds a value of one of two types.
// By convention Left holds a failure and Right a success.
package either

import (
	"errors"
	"fmt"

	"go.lepak.sg/lazyseq/must"
	"go.lepak.sg/lazyseq/option"
)

var (
	ErrNotLeft  = errors.New("either: not a left value")
	ErrNotRight = errors.New("either: not a right value")
)

// Either holds exactly one of a left value L or a right value R.
// The zero value holds the zero value of L.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left returns an Either holding the left value v.
func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{left: v}
}

// Right returns an Either holding the right value v.
func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{right: v, isRight: true}
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// Left returns the left value, or ErrNotLeft if e holds a right value.
func (e Either[L, R]) Left() (v L, err error) {
	if e.isRight {
		err = ErrNotLeft
		return
	}
	return e.left, nil
}

// Right returns the right value, or ErrNotRight if e holds a left value.
func (e Either[L, R]) Right() (v R, err error) {
	if !e.isRight {
		err = ErrNotRight
		return
	}
	return e.right, nil
}

func (e Either[L, R]) MustLeft() L {
	return must.Value(e.Left())
}

func (e Either[L, R]) MustRight() R {
	return must.Value(e.Right())
}

func (e Either[L, R]) LeftOption() option.Option[L] {
	return option.New(e.left, !e.isRight)
}

func (e Either[L, R]) RightOption() option.Option[R] {
	return option.New(e.right, e.isRight)
}

// GetOrElse returns the right value, or def if e holds a left value.
func (e Either[L, R]) GetOrElse(def R) R {
	if !e.isRight {
		return def
	}
	return e.right
}

// ForEach calls f with the right value, if there is one.
func (e Either[L, R]) ForEach(f func(R)) {
	if e.isRight {
		f(e.right)
	}
}

// Swap exchanges the sides: a left value becomes a right value
// and the other way around.
func (e Either[L, R]) Swap() Either[R, L] {
	return Either[R, L]{
		left:    e.right,
		right:   e.left,
		isRight: !e.isRight,
	}
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// Fold calls onLeft or onRight with whichever value e holds.
func Fold[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// Map applies f to the right value of e. A left value is passed
// through unchanged.
func Map[L, R, U any](e Either[L, R], f func(R) U) Either[L, U] {
	if !e.isRight {
		return Left[L, U](e.left)
	}
	return Right[L](f(e.right))
}

// FlatMap is like Map, except f returns an Either itself.
// The result is not wrapped again.
func FlatMap[L, R, U any](e Either[L, R], f func(R) Either[L, U]) Either[L, U] {
	if !e.isRight {
		return Left[L, U](e.left)
	}
	return f(e.right)
}
