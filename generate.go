package sortbench

import (
	"fmt"
	"math/rand"
	"time"
)

// RandomRange is the exclusive upper bound of randomly generated elements.
const RandomRange = 1_000_000

// Ordering is the initial arrangement of a generated array.
type Ordering int

const (
	Ascending Ordering = iota
	Descending
	Random
)

var orderingNames = [...]string{
	Ascending:  "Crescente",
	Descending: "Decrescente",
	Random:     "Aleatorio",
}

// String returns the name written to the results file.
func (o Ordering) String() string {
	if o < 0 || int(o) >= len(orderingNames) {
		return fmt.Sprintf("Ordering(%d)", int(o))
	}
	return orderingNames[o]
}

// Orderings lists every ordering in benchmark order.
func Orderings() []Ordering {
	return []Ordering{Ascending, Descending, Random}
}

// ParseOrdering maps a results-file name back to its Ordering.
func ParseOrdering(name string) (Ordering, error) {
	for i, n := range orderingNames {
		if n == name {
			return Ordering(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrdering, name)
}

// Generator builds benchmark inputs. A Generator is not safe for concurrent
// use.
type Generator struct {
	rnd *rand.Rand
}

// NewGenerator returns a generator drawing random elements from rnd.
func NewGenerator(rnd *rand.Rand) *Generator {
	return &Generator{rnd: rnd}
}

// NewTimeSeededGenerator returns a generator seeded from the current time.
// Create one per process.
func NewTimeSeededGenerator() *Generator {
	return NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// Fill overwrites a with the given ordering for n = len(a).
func (g *Generator) Fill(a []int32, o Ordering) {
	n := len(a)
	switch o {
	case Ascending:
		for i := range a {
			a[i] = int32(i)
		}
	case Descending:
		for i := range a {
			a[i] = int32(n - 1 - i)
		}
	case Random:
		for i := range a {
			a[i] = g.rnd.Int31n(RandomRange)
		}
	}
}

// Generate returns a new array of n elements in the given ordering.
func (g *Generator) Generate(n int, o Ordering) []int32 {
	a := make([]int32, n)
	g.Fill(a, o)
	return a
}
