package seq_test

import (
	"fmt"

	"github.com/ib-77/kit3/pkg/kit/seq"
)

func ExampleUnique() {
	fmt.Println(seq.Unique([]int{4, 2, 2, 5, 1, 4, 3}))
	// Output: [1 2 3 4 5]
}

func ExampleZip() {
	fmt.Println(seq.Zip([]int{1, 2, 3}, []string{"a", "b"}))
	// Output: [(1, a) (2, b)]
}

func ExampleMerge() {
	fmt.Println(seq.Merge([]int{1, 2, 3}, []int{2, 3, 4}))
	// Output: [1 2 2 3 3 4]
}

func ExampleSplit() {
	fmt.Printf("%q\n", seq.Split("a,b,,c", ','))
	// Output: ["a" "b" "" "c"]
}

func ExampleFind() {
	first := seq.Find([]string{"go", "rust", "zig"}, func(s string) bool { return len(s) > 2 })
	fmt.Println(first)
	// Output: Some(rust)
}
