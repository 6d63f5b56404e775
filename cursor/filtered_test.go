package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/lazyseq/testutils"
)

func isEven(x int) bool {
	return x%2 == 0
}

func TestFiltered(t *testing.T) {
	set := []int{0, 1, 2, 3, 4, 5}
	filtered := NewFiltered(FromSlice(set), func(x int) bool { return x >= 3 })
	for i := 3; i < 6; i++ {
		assert.True(t, filtered.Valid())
		first := filtered.Get()
		assert.True(t, first.IsDefined())
		assert.Equal(t, i, first.MustGet())
		filtered = filtered.Next()
	}
	assert.False(t, filtered.Valid())
}

func TestFiltered_Walk(t *testing.T) {
	tests := []struct {
		name string
		set  []int
		p    func(int) bool
		want []int
	}{
		{
			name: "edge",
			set:  []int{0, 1, 2, 3, 4, 5, 6},
			p:    isEven,
			want: []int{0, 2, 4, 6},
		},
		{
			name: "skip first and last",
			set:  []int{1, 2, 3, 4, 5},
			p:    isEven,
			want: []int{2, 4},
		},
		{
			name: "empty",
			set:  nil,
			p:    isEven,
			want: nil,
		},
		{
			name: "none",
			set:  []int{1, 3, 5},
			p:    isEven,
			want: nil,
		},
		{
			name: "all",
			set:  []int{2, 4},
			p:    isEven,
			want: []int{2, 4},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutils.Expect[int](t, tt.want, NewFiltered(FromSlice(tt.set), tt.p))
		})
	}
}

func TestFiltered_ScansOnConstruction(t *testing.T) {
	f := NewFiltered(FromSlice([]int{1, 3, 4, 5}), isEven)
	assert.Equal(t, 2, f.base.pos)
	assert.Equal(t, 4, f.Get().MustGet())

	none := NewFiltered(FromSlice([]int{1, 3}), isEven)
	empty := NewFiltered(FromSlice([]int{}), isEven)
	assert.False(t, none.Valid())
	assert.False(t, empty.Valid())
	assert.Equal(t, none.base.Invalid(), none.base)
}

func TestFiltered_Invariant(t *testing.T) {
	divisibleBy3 := func(x int) bool { return x%3 == 0 }
	f := NewFiltered(NewRange(-20, 50), divisibleBy3)
	for ; f.Valid(); f = f.Next() {
		assert.True(t, divisibleBy3(f.Get().MustGet()))
	}
	assert.False(t, f.Next().Valid())
	assert.False(t, f.Invalid().Valid())
}

func TestFiltered_Independent(t *testing.T) {
	f := NewFiltered(NewRange(0, 10), isEven)
	f2 := f.Next().Next()
	assert.Equal(t, 0, f.Get().MustGet())
	assert.Equal(t, 4, f2.Get().MustGet())
}
