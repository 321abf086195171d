package harness

import (
	"context"
	"errors"
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/feather-lang/sortbench"
)

// memSink keeps results in memory.
type memSink struct {
	rows []TrialResult
	err  error
}

func (s *memSink) Append(r TrialResult) error {
	if s.err != nil {
		return s.err
	}
	s.rows = append(s.rows, r)
	return nil
}

// scriptedAllocator fails the request whose description matches failWhat
// once it has seen failAfter matching requests. It records releases.
type scriptedAllocator struct {
	failWhat  string
	failAfter int

	seen     int
	live     int
	released int
}

func (a *scriptedAllocator) Alloc(what string, n int) ([]int32, error) {
	if what == a.failWhat {
		if a.seen >= a.failAfter {
			return nil, &sortbench.AllocError{What: what, Elements: n, Err: errors.New("out of memory")}
		}
		a.seen++
	}
	a.live++
	return make([]int32, n), nil
}

func (a *scriptedAllocator) Release(buf []int32) {
	a.live--
	a.released++
}

// stepClock advances one millisecond per reading.
type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.now = c.now.Add(time.Millisecond)
	return c.now
}

func newTestRunner(plan Plan, sink RecordSink) *BenchmarkRunner {
	r := NewBenchmarkRunner(plan, sink, nil)
	r.Reporter = nil
	r.Generator = sortbench.NewGenerator(rand.New(rand.NewSource(1)))
	r.Timer = sortbench.NewTimer(&stepClock{})
	return r
}

func smallPlan() Plan {
	return Plan{
		Sizes:      []int{0, 1, 50, 200},
		Orderings:  sortbench.Orderings(),
		Algorithms: sortbench.AlgorithmNames(),
	}
}

func TestRunnerOrderAndFields(t *testing.T) {
	sink := &memSink{}
	plan := smallPlan()
	results, err := newTestRunner(plan, sink).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(results) != plan.Trials() {
		t.Fatalf("expected %d results, got %d", plan.Trials(), len(results))
	}
	if !slices.Equal(results, sink.rows) {
		t.Error("returned results differ from the rows written")
	}

	i := 0
	for _, n := range plan.Sizes {
		for _, o := range plan.Orderings {
			for _, alg := range plan.Algorithms {
				got := results[i]
				want := TrialResult{Algorithm: alg, Ordering: o.String(), Size: n, Seconds: 0.001}
				if got != want {
					t.Errorf("result %d: expected %+v, got %+v", i, want, got)
				}
				i++
			}
		}
	}
}

// copyCheckClock verifies, on the reading taken just before each sort,
// that the trial array is an exact copy of the base array.
type copyCheckClock struct {
	t      *testing.T
	r      *BenchmarkRunner
	calls  int
	checks int
	now    time.Time
}

func (c *copyCheckClock) Now() time.Time {
	if c.calls%2 == 0 {
		c.checks++
		if !slices.Equal(c.r.trial, c.r.base) {
			c.t.Errorf("trial %d: sort started on something other than a fresh copy", c.calls/2)
		}
	}
	c.calls++
	c.now = c.now.Add(time.Microsecond)
	return c.now
}

func TestRunnerGivesEveryTrialAFreshCopy(t *testing.T) {
	plan := Plan{
		Sizes:      []int{64, 128},
		Orderings:  []sortbench.Ordering{sortbench.Random, sortbench.Descending},
		Algorithms: []string{"QuickSort", "InsertionSort", "MergeSort"},
	}
	r := newTestRunner(plan, &memSink{})
	clock := &copyCheckClock{t: t, r: r}
	r.Timer = sortbench.NewTimer(clock)

	if _, err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if clock.checks != plan.Trials() {
		t.Errorf("expected %d checks, got %d", plan.Trials(), clock.checks)
	}
}

func TestRunnerAbortsOnArrayAllocationFailure(t *testing.T) {
	sink := &memSink{}
	plan := smallPlan()
	r := newTestRunner(plan, sink)
	alloc := &scriptedAllocator{failWhat: "trial array", failAfter: 2}
	r.Alloc = alloc

	results, err := r.Run(context.Background())
	var allocErr *sortbench.AllocError
	if !errors.As(err, &allocErr) {
		t.Fatalf("expected *AllocError, got %v", err)
	}
	if allocErr.What != "trial array" || allocErr.Elements != 50 {
		t.Errorf("unexpected error: %+v", allocErr)
	}

	// Sizes 0 and 1 completed before the failure.
	want := 2 * len(plan.Orderings) * len(plan.Algorithms)
	if len(results) != want || len(sink.rows) != want {
		t.Errorf("expected %d completed rows, got %d results and %d rows", want, len(results), len(sink.rows))
	}
	if alloc.live != 0 {
		t.Errorf("expected all buffers released, %d still live", alloc.live)
	}
}

func TestRunnerAbortsOnMergeScratchFailure(t *testing.T) {
	sink := &memSink{}
	plan := Plan{
		Sizes:      []int{10, 20},
		Orderings:  []sortbench.Ordering{sortbench.Ascending},
		Algorithms: sortbench.AlgorithmNames(),
	}
	r := newTestRunner(plan, sink)
	alloc := &scriptedAllocator{failWhat: "merge sort scratch buffer", failAfter: 1}
	r.Alloc = alloc

	results, err := r.Run(context.Background())
	var allocErr *sortbench.AllocError
	if !errors.As(err, &allocErr) {
		t.Fatalf("expected *AllocError, got %v", err)
	}

	// n=10 ran all three; n=20 ran insertion sort, then merge sort failed.
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	last := sink.rows[len(sink.rows)-1]
	if last.Algorithm != "InsertionSort" || last.Size != 20 {
		t.Errorf("unexpected last row: %+v", last)
	}
	if alloc.live != 0 {
		t.Errorf("expected all buffers released, %d still live", alloc.live)
	}
}

func TestRunnerStopsOnSinkError(t *testing.T) {
	sink := &memSink{err: errors.New("disk full")}
	_, err := newTestRunner(smallPlan(), sink).Run(context.Background())
	if err == nil || !errors.Is(err, sink.err) {
		t.Errorf("expected sink error, got %v", err)
	}
}

func TestRunnerHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := newTestRunner(smallPlan(), &memSink{}).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestRunnerRejectsInvalidPlan(t *testing.T) {
	plan := Plan{Sizes: []int{10}, Orderings: sortbench.Orderings(), Algorithms: []string{"BogoSort"}}
	_, err := newTestRunner(plan, &memSink{}).Run(context.Background())
	if !errors.Is(err, ErrInvalidPlan) {
		t.Errorf("expected ErrInvalidPlan, got %v", err)
	}
}
