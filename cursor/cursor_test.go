package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrain(t *testing.T) {
	var got []int
	Drain[int](NewRange(0, 4), func(x int) {
		got = append(got, x)
	})
	assert.Equal(t, []int{0, 1, 2, 3}, got)

	Drain[int](NewRange(0, 0), func(x int) {
		t.Errorf("sink called on empty cursor: %d", x)
	})
}

func TestAppendTo(t *testing.T) {
	dst := []int{-1}
	dst = AppendTo[int](dst, NewRange(0, 3))
	assert.Equal(t, []int{-1, 0, 1, 2}, dst)

	assert.Nil(t, AppendTo[int](nil, NewRange(0, 0)))
}

func TestFind(t *testing.T) {
	c := Find[int](NewRange(0, 10), func(x int) bool { return x > 6 })
	assert.Equal(t, 7, c.Get().MustGet())

	// inclusive of the starting position
	assert.Equal(t, c, Find[int](c, func(x int) bool { return x > 6 }))

	none := Find[int](NewRange(0, 10), func(x int) bool { return x > 60 })
	assert.False(t, none.Valid())
	assert.Equal(t, NewRange(0, 10).Invalid(), none)
}

// The original cursor is never changed by deriving others from it.
func TestValueIndependence(t *testing.T) {
	c := NewMapped(NewFiltered(FromSlice([]int{1, 2, 3, 4}), isEven),
		func(x int) int { return x * 10 })

	c2 := c.Next()
	c3 := c2.Next()

	assert.True(t, c.Valid())
	assert.Equal(t, 20, c.Get().MustGet())
	assert.Equal(t, 40, c2.Get().MustGet())
	assert.False(t, c3.Valid())
	assert.Equal(t, 20, c.Get().MustGet())
}
