package sortbench

// Quick is an in-place quicksort using Lomuto partitioning with the last
// element of each range as pivot. It is not stable, and sorted or reversed
// input drives it to its quadratic worst case.
type Quick struct {
	Stats *Stats
}

// Name implements Algorithm.
func (s *Quick) Name() string { return QuickSortName }

// Sort implements Algorithm. It never fails.
func (s *Quick) Sort(a []int32) error {
	if len(a) < 2 {
		return nil
	}
	quickSort(a, 0, len(a)-1, s.Stats)
	return nil
}

// QuickSort sorts a in place.
func QuickSort(a []int32) {
	if len(a) < 2 {
		return
	}
	quickSort(a, 0, len(a)-1, nil)
}

func quickSort(a []int32, low, high int, st *Stats) {
	if low >= high {
		return
	}
	p := partition(a, low, high, st)
	quickSort(a, low, p-1, st)
	quickSort(a, p+1, high, st)
}

// partition places a[high] at its final index and returns that index.
// Everything left of it is smaller; everything right is greater or equal.
func partition(a []int32, low, high int, st *Stats) int {
	pivot := a[high]
	i := low - 1 // last slot known to hold an element < pivot
	for j := low; j < high; j++ {
		st.compare()
		if a[j] < pivot {
			i++
			a[i], a[j] = a[j], a[i]
			st.write(2)
		}
	}
	a[i+1], a[high] = a[high], a[i+1]
	st.write(2)
	return i + 1
}
