// Package testutils holds helpers shared by the tests of this module.
package testutils

import (
	"github.com/stretchr/testify/assert"
	"go.lepak.sg/lazyseq/option"
)

type TestT interface {
	Log(...any)
	Logf(string, ...any)
	Error(...any)
	Errorf(string, ...any) // also used by testify/assert
}

// Walker is the subset of the cursor contract used to walk a sequence.
// It is repeated here so that the cursor package can use these helpers
// in its own tests.
type Walker[T, C any] interface {
	Valid() bool
	Get() option.Option[T]
	Next() C
	Invalid() C
}

// Drain walks c to the end and returns the elements it yielded,
// stopping early with an error if there are more than limit elements.
// On the way it checks that Valid agrees with Get at every position,
// and that the end of the sequence is stable under Next.
func Drain[T any, C Walker[T, C]](t TestT, c C, limit int) []T {
	var out []T
	for ; c.Valid(); c = c.Next() {
		if len(out) == limit {
			t.Errorf("cursor did not end after %d elements", limit)
			return out
		}

		el, ok := c.Get().Value()
		if !ok {
			t.Errorf("cursor is valid but has no element at i=%d", len(out))
			continue
		}
		out = append(out, el)
	}

	if c.Get().IsDefined() {
		t.Errorf("invalid cursor has an element: %v", c.Get())
	}
	if c.Next().Valid() {
		t.Error("cursor became valid again after the end")
	}
	if inv := c.Invalid(); inv.Valid() || inv.Next().Valid() {
		t.Error("Invalid returned a valid cursor")
	}

	return out
}

// Expect expects c to yield exactly the elements of want, in order.
func Expect[T any, C Walker[T, C]](t TestT, want []T, c C) {
	t.Logf("walking: expecting %v", want)
	got := Drain[T](t, c, len(want))
	if len(want) == 0 && len(got) == 0 {
		return
	}
	assert.Equal(t, want, got)
}
