// Package sortbench provides the sorting algorithms, input generator, and
// timer used by the sortbench benchmark.
//
// # Overview
//
// sortbench measures three classic in-memory sorts on arrays of fixed-width
// integers:
//
//   - Insertion sort, the O(n²) baseline
//   - Top-down merge sort with a single scratch buffer per call
//   - Quicksort with Lomuto partitioning and a last-element pivot
//
// The benchmark driver that iterates over sizes, orderings, and algorithms
// lives in the harness package. The command line lives in cmd/sortbench.
//
// # Quick Start
//
//	import "github.com/feather-lang/sortbench"
//
//	func main() {
//	    gen := sortbench.NewTimeSeededGenerator()
//	    data := gen.Generate(10000, sortbench.Random)
//
//	    timer := sortbench.NewTimer(sortbench.SystemClock{})
//	    secs, err := timer.Time(&sortbench.Merge{}, data)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("%.6fs\n", secs)
//	}
//
// # Algorithms
//
// Each algorithm implements [Algorithm] and sorts its argument in place.
// The plain functions [InsertionSort], [MergeSort], and [QuickSort] are
// shortcuts for the zero values of [Insertion], [Merge], and [Quick].
//
// Attach a [Stats] to count comparisons and element writes:
//
//	var st sortbench.Stats
//	q := &sortbench.Quick{Stats: &st}
//	q.Sort(sortbench.NewGenerator(rand.New(rand.NewSource(1))).Generate(100, sortbench.Descending))
//	fmt.Println(st.Comparisons) // 4950
//
// # Allocation
//
// Buffers are obtained through an [Allocator]. The default [HeapAllocator]
// reports failures as [*AllocError] instead of crashing, so the caller
// decides whether to abort.
package sortbench
