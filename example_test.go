package sortbench_test

import (
	"fmt"
	"math/rand"

	"github.com/feather-lang/sortbench"
)

func ExampleQuick() {
	var st sortbench.Stats
	gen := sortbench.NewGenerator(rand.New(rand.NewSource(1)))
	a := gen.Generate(100, sortbench.Descending)

	q := &sortbench.Quick{Stats: &st}
	q.Sort(a)

	fmt.Println(a[0], a[99], st.Comparisons)
	// Output: 0 99 4950
}

func ExampleGenerator_Generate() {
	gen := sortbench.NewGenerator(rand.New(rand.NewSource(1)))
	fmt.Println(gen.Generate(5, sortbench.Ascending))
	fmt.Println(gen.Generate(5, sortbench.Descending))
	// Output:
	// [0 1 2 3 4]
	// [4 3 2 1 0]
}
