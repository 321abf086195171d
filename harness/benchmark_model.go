package harness

import (
	"time"

	"github.com/feather-lang/sortbench"
)

// Plan captures the trials a benchmark run executes: every size, for every
// ordering, for every algorithm, in that nesting order.
type Plan struct {
	Sizes      []int
	Orderings  []sortbench.Ordering
	Algorithms []string // names accepted by sortbench.NewAlgorithm
}

// DefaultSizes are the array lengths of the standard run.
var DefaultSizes = []int{1000, 5000, 10000, 20000, 50000}

// DefaultPlan returns the standard run: five sizes, all orderings, all
// algorithms.
func DefaultPlan() Plan {
	return Plan{
		Sizes:      append([]int(nil), DefaultSizes...),
		Orderings:  sortbench.Orderings(),
		Algorithms: sortbench.AlgorithmNames(),
	}
}

// Trials returns the number of trials the plan executes.
func (p Plan) Trials() int {
	return len(p.Sizes) * len(p.Orderings) * len(p.Algorithms)
}

// TrialResult holds the outcome of one timed sort. It is a value and is
// never modified after the runner creates it.
type TrialResult struct {
	Algorithm string  // algorithm name
	Ordering  string  // ordering name of the input
	Size      int     // array length
	Seconds   float64 // elapsed wall-clock seconds
}

// Duration returns the elapsed time as a time.Duration.
func (r TrialResult) Duration() time.Duration {
	return time.Duration(r.Seconds * float64(time.Second))
}
