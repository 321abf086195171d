package sortbench

// Insertion is a stable in-place insertion sort.
type Insertion struct {
	Stats *Stats
}

// Name implements Algorithm.
func (s *Insertion) Name() string { return InsertionSortName }

// Sort implements Algorithm. It never fails.
func (s *Insertion) Sort(a []int32) error {
	insertionSort(a, nil, s.Stats)
	return nil
}

// InsertionSort sorts a in place.
func InsertionSort(a []int32) {
	insertionSort(a, nil, nil)
}

// insertionSort sorts a. If tags is non-nil it receives the same moves as a.
func insertionSort(a, tags []int32, st *Stats) {
	for i := 1; i < len(a); i++ {
		key := a[i]
		var tag int32
		if tags != nil {
			tag = tags[i]
		}
		j := i - 1
		// Only strictly greater elements move, which keeps the sort stable.
		for j >= 0 {
			st.compare()
			if a[j] <= key {
				break
			}
			a[j+1] = a[j]
			if tags != nil {
				tags[j+1] = tags[j]
			}
			st.write(1)
			j--
		}
		a[j+1] = key
		if tags != nil {
			tags[j+1] = tag
		}
		st.write(1)
	}
}
