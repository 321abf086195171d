package sortbench

import (
	"errors"
	"fmt"
)

// Algorithm names as they appear in the results file.
const (
	InsertionSortName = "InsertionSort"
	MergeSortName     = "MergeSort"
	QuickSortName     = "QuickSort"
)

var (
	// ErrUnknownAlgorithm is returned when an algorithm name is not recognized.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrUnknownOrdering is returned when an ordering name is not recognized.
	ErrUnknownOrdering = errors.New("unknown ordering")
)

// Algorithm is an in-place sort over fixed-width integers.
type Algorithm interface {
	// Name returns the name written to the results file.
	Name() string

	// Sort sorts a in non-decreasing order. On error a is left unmodified.
	Sort(a []int32) error
}

// Stats counts the work done by an instrumented sort.
// A nil *Stats disables counting.
type Stats struct {
	Comparisons int64 // element-to-element comparisons
	Writes      int64 // element stores into the array being sorted
}

func (s *Stats) compare() {
	if s != nil {
		s.Comparisons++
	}
}

func (s *Stats) write(n int) {
	if s != nil {
		s.Writes += int64(n)
	}
}

// Reset zeroes the counters.
func (s *Stats) Reset() {
	*s = Stats{}
}

// AlgorithmNames lists the algorithm names in benchmark order.
func AlgorithmNames() []string {
	return []string{InsertionSortName, MergeSortName, QuickSortName}
}

// DefaultAlgorithms returns one instance of each algorithm in benchmark order.
// Merge sort allocates its scratch buffer through alloc; nil means the heap.
func DefaultAlgorithms(alloc Allocator) []Algorithm {
	algs := make([]Algorithm, 0, 3)
	for _, name := range AlgorithmNames() {
		a, _ := NewAlgorithm(name, alloc)
		algs = append(algs, a)
	}
	return algs
}

// NewAlgorithm returns the algorithm with the given results-file name.
func NewAlgorithm(name string, alloc Allocator) (Algorithm, error) {
	switch name {
	case InsertionSortName:
		return &Insertion{}, nil
	case MergeSortName:
		return &Merge{Alloc: alloc}, nil
	case QuickSortName:
		return &Quick{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}
