package seq_test

import (
	"fmt"
	"strings"

	"github.com/charmingruby/lambdalab/seq"
)

func ExampleMap() {
	g7 := seq.Of("USA", "Japan", "France", "Germany", "Italy", "U.K.", "Canada")
	fmt.Println(seq.Join(seq.Map(g7, strings.ToUpper), ", "))
	// Output:
	// USA, JAPAN, FRANCE, GERMANY, ITALY, U.K., CANADA
}

func ExampleDistinct() {
	squares := seq.Map(seq.Of(9, 10, 3, 4, 7, 3, 4), func(i int) int { return i * i })
	fmt.Println(seq.ToSlice(seq.Distinct(squares)))
	// Output:
	// [81 100 9 16 49]
}

func ExampleIterate() {
	seq.ForEach(seq.Take(seq.Iterate(0, func(x int) int { return x + 1 }), 5), func(v int) {
		fmt.Println(v)
	})
	// Output:
	// 0
	// 1
	// 2
	// 3
	// 4
}
