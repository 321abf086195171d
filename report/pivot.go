package report

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// ErrNoData is returned by Pivot when no row matches.
var ErrNoData = errors.New("no data")

// Table holds milliseconds by size and algorithm for one ordering.
type Table struct {
	Ordering   string
	Sizes      []int       // ascending
	Algorithms []string    // those with at least one row, in requested order
	Millis     [][]float64 // [size][algorithm]; NaN where missing
}

// Max returns the largest value in the table, or 0 if it is empty.
func (t *Table) Max() float64 {
	var m float64
	for _, row := range t.Millis {
		for _, v := range row {
			if !math.IsNaN(v) && v > m {
				m = v
			}
		}
	}
	return m
}

// Orderings returns the distinct orderings in the order they first appear.
func Orderings(rows []Row) []string {
	var out []string
	for _, r := range rows {
		if !slices.Contains(out, r.Ordering) {
			out = append(out, r.Ordering)
		}
	}
	return out
}

// Pivot arranges the rows of one ordering restricted to algorithms into a
// Table. A second row for the same size and algorithm is an error.
func Pivot(rows []Row, ordering string, algorithms []string) (*Table, error) {
	type key struct {
		size int
		alg  string
	}
	values := make(map[key]float64)
	var sizes []int
	present := make(map[string]bool)

	for _, r := range rows {
		if r.Ordering != ordering || !slices.Contains(algorithms, r.Algorithm) {
			continue
		}
		k := key{r.Size, r.Algorithm}
		if _, dup := values[k]; dup {
			return nil, fmt.Errorf("duplicate entry for %s, n=%d (%s)", r.Algorithm, r.Size, ordering)
		}
		values[k] = r.Millis
		present[r.Algorithm] = true
		if !slices.Contains(sizes, r.Size) {
			sizes = append(sizes, r.Size)
		}
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w for %v (%s)", ErrNoData, algorithms, ordering)
	}
	slices.Sort(sizes)

	t := &Table{Ordering: ordering, Sizes: sizes}
	for _, alg := range algorithms {
		if present[alg] {
			t.Algorithms = append(t.Algorithms, alg)
		}
	}
	t.Millis = make([][]float64, len(sizes))
	for i, n := range sizes {
		t.Millis[i] = make([]float64, len(t.Algorithms))
		for j, alg := range t.Algorithms {
			v, ok := values[key{n, alg}]
			if !ok {
				v = math.NaN()
			}
			t.Millis[i][j] = v
		}
	}
	return t, nil
}
