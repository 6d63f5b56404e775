package applier_test

import (
	"fmt"
	"strconv"

	"go.lepak.sg/lazyseq/applier"
	"go.lepak.sg/lazyseq/cursor"
)

func Example() {
	a := applier.FromSlice([]int{0, 1, 2, 3, 4})
	evens := applier.Filter(a, func(x int) bool { return x%2 == 0 })
	strs := applier.Map(evens, strconv.Itoa)

	fmt.Println(strs.ToSlice())
	fmt.Println(evens.MakeString(",", "[", "]"))
	// Output:
	// [0 2 4]
	// [0,2,4]
}

func ExampleFoldRight() {
	a := applier.FromSlice([]int{1, 2, 3})
	left := applier.FoldLeft(a, "x", func(r string, s int) string {
		return r + strconv.Itoa(s)
	})
	right := applier.FoldRight(a, "x", func(r string, s int) string {
		return strconv.Itoa(s) + r
	})

	fmt.Println(left, right)
	// Output: x123 123x
}

func ExampleZipWithIndex() {
	a := applier.ZipWithIndex(applier.FromSlice([]string{"a", "b"}))
	a.ForEach(func(p cursor.Pair[string, int]) {
		fmt.Println(p.Right, p.Left)
	})
	// Output:
	// 0 a
	// 1 b
}
