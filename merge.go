package sortbench

// Merge is a top-down merge sort. Each call to Sort allocates one scratch
// buffer the size of the input; recursive calls share it.
type Merge struct {
	// Alloc provides the scratch buffer. Nil means HeapAllocator{}.
	Alloc Allocator
	Stats *Stats
}

// Name implements Algorithm.
func (s *Merge) Name() string { return MergeSortName }

// Sort implements Algorithm. If the scratch buffer cannot be allocated it
// returns an *AllocError and leaves a untouched.
func (s *Merge) Sort(a []int32) error {
	return s.sort(a, nil)
}

// sort sorts a, applying the same moves to tags when it is non-nil.
func (s *Merge) sort(a, tags []int32) error {
	n := len(a)
	if n < 2 {
		return nil
	}
	alloc := s.Alloc
	if alloc == nil {
		alloc = HeapAllocator{}
	}
	scratch, err := alloc.Alloc("merge sort scratch buffer", n)
	if err != nil {
		return err
	}
	m := merger{a: a, b: scratch, st: s.Stats}
	if tags != nil {
		m.tags, m.tagScratch = tags, make([]int32, n)
	}
	m.sort(0, n-1)
	if rel, ok := alloc.(Releaser); ok {
		rel.Release(scratch)
	}
	return nil
}

// MergeSort sorts a in place using a heap-allocated scratch buffer.
func MergeSort(a []int32) error {
	return (&Merge{}).Sort(a)
}

type merger struct {
	a  []int32
	b  []int32
	st *Stats

	tags       []int32
	tagScratch []int32
}

// sort orders the inclusive range [low, high].
func (m *merger) sort(low, high int) {
	if low >= high {
		return
	}
	mid := (low + high) / 2
	m.sort(low, mid)
	m.sort(mid+1, high)
	m.merge(low, mid, high)
}

// merge combines the sorted runs [low, mid] and [mid+1, high] through the
// scratch buffer. Ties take the left element.
func (m *merger) merge(low, mid, high int) {
	a, b := m.a, m.b
	i, j, k := low, mid+1, low
	for i <= mid && j <= high {
		m.st.compare()
		if a[i] <= a[j] {
			b[k] = a[i]
			m.carry(k, i)
			i++
		} else {
			b[k] = a[j]
			m.carry(k, j)
			j++
		}
		k++
	}
	for ; i <= mid; i, k = i+1, k+1 {
		b[k] = a[i]
		m.carry(k, i)
	}
	for ; j <= high; j, k = j+1, k+1 {
		b[k] = a[j]
		m.carry(k, j)
	}

	m.st.write(copy(a[low:high+1], b[low:high+1]))
	if m.tags != nil {
		copy(m.tags[low:high+1], m.tagScratch[low:high+1])
	}
}

func (m *merger) carry(to, from int) {
	if m.tags != nil {
		m.tagScratch[to] = m.tags[from]
	}
}
