package cursor

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/lazyseq/testutils"
)

func TestMapped(t *testing.T) {
	set := []int{0, 1, 2, 3}
	mapped := NewMapped(FromSlice(set), strconv.Itoa)
	check := []string{"0", "1", "2", "3"}
	for i := 0; i < 4; i++ {
		assert.True(t, mapped.Valid())
		first := mapped.Get()
		assert.True(t, first.IsDefined())
		assert.Equal(t, check[i], first.MustGet())
		mapped = mapped.Next()
	}
	assert.False(t, mapped.Valid())
	assert.True(t, mapped.Get().IsEmpty())
	assert.False(t, mapped.Next().Valid())
}

func TestMapped_Lazy(t *testing.T) {
	calls := 0
	square := func(x int) int {
		calls++
		return x * x
	}

	m := NewMapped(NewRange(1, 4), square)
	assert.Equal(t, 0, calls, "mapped on construction")

	m = m.Next()
	assert.Equal(t, 0, calls, "mapped on Next")

	assert.Equal(t, 4, m.Get().MustGet())
	assert.Equal(t, 4, m.Get().MustGet())
	assert.Equal(t, 2, calls)
}

func TestMapped_Nested(t *testing.T) {
	m := NewMapped(NewMapped(NewRange(0, 3), func(x int) int { return x + 1 }),
		func(x int) float64 { return float64(x) / 2 })
	testutils.Expect[float64](t, []float64{0.5, 1, 1.5}, m)
}

func TestMapped_Invalid(t *testing.T) {
	m := NewMapped(NewRange(0, 3), strconv.Itoa)
	inv := m.Invalid()
	assert.False(t, inv.Valid())
	assert.False(t, inv.Next().Valid())
	assert.Equal(t, NewRange(0, 3).Invalid(), inv.Next().base)

	// advancing a copy leaves the original alone
	m2 := m.Next()
	assert.Equal(t, "0", m.Get().MustGet())
	assert.Equal(t, "1", m2.Get().MustGet())
}
