package applier

import (
	"container/list"
	"fmt"
	"strconv"
	"strings"

	"go.lepak.sg/lazyseq/cursor"
	"go.lepak.sg/lazyseq/option"
)

// ToSlice returns the elements of a, in order, in a new slice.
func (a Applier[T, C]) ToSlice() []T {
	if s, ok := any(a.c).(cursor.Slice[T]); ok {
		if !s.Valid() {
			return nil
		}
		return s.Remaining()
	}
	return cursor.AppendTo[T](nil, a.c)
}

// ToList returns the elements of a, in order, in a new list.
// Every list element's Value has type T.
func (a Applier[T, C]) ToList() *list.List {
	l := list.New()
	a.ForEach(func(v T) {
		l.PushBack(v)
	})
	return l
}

// ForEach calls f with every element of a, in order.
func (a Applier[T, C]) ForEach(f func(T)) {
	cursor.Drain(a.c, f)
}

// Fold combines the elements of a from left to right, starting with zero:
// f(f(f(zero, e0), e1), e2).
func (a Applier[T, C]) Fold(zero T, f func(T, T) T) T {
	return FoldLeft(a, zero, f)
}

// FoldLeft is like Fold, but the accumulated result may be of a
// different type than the elements.
func FoldLeft[T, R any, C cursor.Cursor[T, C]](a Applier[T, C], zero R, f func(R, T) R) R {
	acc := zero
	cursor.Drain(a.c, func(v T) {
		acc = f(acc, v)
	})
	return acc
}

// FoldRight combines the elements of a from right to left, starting with
// zero: f(f(f(zero, e2), e1), e0).
//
// Cursors only move forward, so FoldRight first copies all the elements
// of a into a slice. It uses memory proportional to the length of a,
// unlike every other terminal operation.
func FoldRight[T, R any, C cursor.Cursor[T, C]](a Applier[T, C], zero R, f func(R, T) R) R {
	buf := a.ToSlice()
	acc := zero
	for i := len(buf) - 1; i >= 0; i-- {
		acc = f(acc, buf[i])
	}
	return acc
}

// Exists reports whether any element of a satisfies p.
// It stops at the first one that does.
func (a Applier[T, C]) Exists(p func(T) bool) bool {
	return cursor.Find(a.c, p).Valid()
}

// ForAll reports whether every element of a satisfies p.
// It stops at the first one that does not.
func (a Applier[T, C]) ForAll(p func(T) bool) bool {
	return !a.Exists(func(v T) bool { return !p(v) })
}

// Find returns the first element of a that satisfies p.
func (a Applier[T, C]) Find(p func(T) bool) option.Option[T] {
	return cursor.Find(a.c, p).Get()
}

// Head returns the current element of a.
func (a Applier[T, C]) Head() option.Option[T] {
	return a.c.Get()
}

// Count returns the number of elements in a.
func (a Applier[T, C]) Count() int {
	return FoldLeft(a, 0, func(n int, _ T) int { return n + 1 })
}

// MakeString renders every element of a and joins them with sep,
// enclosed in left and right. Empty strings are left out.
//
// Strings are used as they are, numbers are formatted with strconv,
// and anything else with fmt, so a String method is used if present.
func (a Applier[T, C]) MakeString(sep, left, right string) string {
	var b strings.Builder
	b.WriteString(left)

	first := true
	a.ForEach(func(v T) {
		if !first {
			b.WriteString(sep)
		}
		first = false
		b.WriteString(stringify(v))
	})

	b.WriteString(right)
	return b.String()
}

func stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(v)
	}
}
