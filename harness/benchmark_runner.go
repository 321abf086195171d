package harness

import (
	"context"
	"fmt"
	"io"

	"github.com/feather-lang/sortbench"
)

// BenchmarkRunner executes a plan, one trial at a time.
type BenchmarkRunner struct {
	Plan      Plan
	Sink      RecordSink
	Generator *sortbench.Generator
	Timer     *sortbench.Timer
	Alloc     sortbench.Allocator
	Reporter  *BenchmarkReporter // optional

	base  []int32
	trial []int32
}

// NewBenchmarkRunner creates a runner for plan that writes results to sink
// and progress to output. The generator is seeded from the current time.
func NewBenchmarkRunner(plan Plan, sink RecordSink, output io.Writer) *BenchmarkRunner {
	return &BenchmarkRunner{
		Plan:      plan,
		Sink:      sink,
		Generator: sortbench.NewTimeSeededGenerator(),
		Timer:     sortbench.NewTimer(sortbench.SystemClock{}),
		Alloc:     sortbench.HeapAllocator{},
		Reporter:  NewBenchmarkReporter(output, false),
	}
}

// Run executes every trial of the plan and returns the results in the
// order they were written. It stops at the first error, returning the
// results recorded so far. Allocation failures, including a merge sort
// scratch buffer, surface as errors wrapping *sortbench.AllocError.
// The context is checked between trials.
func (r *BenchmarkRunner) Run(ctx context.Context) ([]TrialResult, error) {
	if err := r.Plan.Validate(); err != nil {
		return nil, err
	}
	algs := make([]sortbench.Algorithm, 0, len(r.Plan.Algorithms))
	for _, name := range r.Plan.Algorithms {
		alg, err := sortbench.NewAlgorithm(name, r.Alloc)
		if err != nil {
			return nil, err
		}
		algs = append(algs, alg)
	}

	defer r.release()
	results := make([]TrialResult, 0, r.Plan.Trials())

	for _, n := range r.Plan.Sizes {
		r.Reporter.ReportSize(n)
		if err := r.allocate(n); err != nil {
			return results, err
		}

		for _, ordering := range r.Plan.Orderings {
			r.Generator.Fill(r.base, ordering)

			for _, alg := range algs {
				if err := ctx.Err(); err != nil {
					return results, err
				}
				result, err := r.runTrial(alg, ordering, n)
				if err != nil {
					return results, err
				}
				results = append(results, result)
				r.Reporter.ReportTrial(result)
			}
		}
	}

	return results, nil
}

// runTrial times alg on a fresh copy of the base array and records the result.
func (r *BenchmarkRunner) runTrial(alg sortbench.Algorithm, ordering sortbench.Ordering, n int) (TrialResult, error) {
	copy(r.trial, r.base)

	secs, err := r.Timer.Time(alg, r.trial)
	if err != nil {
		return TrialResult{}, fmt.Errorf("%s on %s array of %d: %w", alg.Name(), ordering, n, err)
	}

	result := TrialResult{
		Algorithm: alg.Name(),
		Ordering:  ordering.String(),
		Size:      n,
		Seconds:   secs,
	}
	if err := r.Sink.Append(result); err != nil {
		return TrialResult{}, fmt.Errorf("writing result: %w", err)
	}
	return result, nil
}

// allocate replaces the base and trial arrays with buffers of length n.
func (r *BenchmarkRunner) allocate(n int) error {
	r.release()

	var err error
	if r.base, err = r.Alloc.Alloc("base array", n); err != nil {
		return err
	}
	if r.trial, err = r.Alloc.Alloc("trial array", n); err != nil {
		r.release()
		return err
	}
	return nil
}

// release drops the base and trial arrays, handing them back to the
// allocator when it wants them.
func (r *BenchmarkRunner) release() {
	if rel, ok := r.Alloc.(sortbench.Releaser); ok {
		if r.base != nil {
			rel.Release(r.base)
		}
		if r.trial != nil {
			rel.Release(r.trial)
		}
	}
	r.base, r.trial = nil, nil
}
