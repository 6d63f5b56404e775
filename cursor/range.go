package cursor

import (
	"errors"
	"fmt"

	"go.lepak.sg/lazyseq/option"
	"golang.org/x/exp/constraints"
)

// ErrZeroStep is the panic value of NewRangeStep when step is 0.
var ErrZeroStep = errors.New("cursor: range step must not be zero")

var _ Cursor[int, Range[int]] = Range[int]{}

// Range is a cursor over an arithmetic progression from a current value
// towards an exclusive end. With a positive step it counts up while below
// end; with a negative step it counts down while above end.
type Range[I constraints.Integer] struct {
	current, end, step I
}

// NewRange returns a cursor over begin, begin+1, ... up to but excluding end.
// If begin >= end the cursor is already exhausted.
func NewRange[I constraints.Integer](begin, end I) Range[I] {
	return NewRangeStep(begin, end, 1)
}

// NewRangeStep returns a cursor over begin, begin+step, ... up to but
// excluding end. It panics with ErrZeroStep if step is 0.
func NewRangeStep[I constraints.Integer](begin, end, step I) Range[I] {
	if step == 0 {
		panic(ErrZeroStep)
	}
	return Range[I]{
		current: begin,
		end:     end,
		step:    step,
	}
}

// From returns a cursor counting up from begin, bounded only by the
// largest value of I.
func From[I constraints.Integer](begin I) Range[I] {
	return NewRange(begin, maxOf[I]())
}

func maxOf[I constraints.Integer]() I {
	m := ^I(0)
	if m > 0 {
		// unsigned
		return m
	}

	var x I = 1
	for x<<1|1 > x {
		x = x<<1 | 1
	}
	return x
}

func (r Range[I]) Valid() bool {
	if r.step > 0 {
		return r.current < r.end
	}
	return r.current > r.end
}

func (r Range[I]) Get() option.Option[I] {
	return option.New(r.current, r.Valid())
}

// Next advances by step. Stepping past end, or overflowing I, lands on
// the same value as Invalid.
func (r Range[I]) Next() Range[I] {
	if !r.Valid() {
		return r
	}

	next := r.current + r.step
	if r.step > 0 && (next <= r.current || next >= r.end) {
		return r.Invalid()
	}
	if r.step < 0 && (next >= r.current || next <= r.end) {
		return r.Invalid()
	}

	r.current = next
	return r
}

func (r Range[I]) Invalid() Range[I] {
	r.current = r.end
	return r
}

func (r Range[I]) String() string {
	return fmt.Sprintf("Range(%d, %d, %d)", r.current, r.end, r.step)
}
