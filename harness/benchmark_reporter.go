package harness

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// BenchmarkReporter prints human-readable progress. A nil reporter prints
// nothing.
type BenchmarkReporter struct {
	output  io.Writer
	verbose bool
	tty     bool // rewrite trial lines in place

	trials  int
	elapsed float64
	pending bool // a trial line is waiting for a newline
}

// NewBenchmarkReporter creates a new benchmark reporter. With verbose set,
// every trial is reported as well as every size.
func NewBenchmarkReporter(output io.Writer, verbose bool) *BenchmarkReporter {
	r := &BenchmarkReporter{output: output, verbose: verbose}
	if f, ok := output.(*os.File); ok {
		r.tty = term.IsTerminal(int(f.Fd()))
	}
	return r
}

// ReportStart announces a run.
func (r *BenchmarkReporter) ReportStart(runID string, plan Plan, path string) {
	if r == nil {
		return
	}
	fmt.Fprintf(r.output, "Starting benchmark run %s\n", runID)
	fmt.Fprintf(r.output, "  %d sizes x %d orderings x %d algorithms = %d trials -> %s\n",
		len(plan.Sizes), len(plan.Orderings), len(plan.Algorithms), plan.Trials(), path)
}

// ReportSize announces the array size now under test.
func (r *BenchmarkReporter) ReportSize(n int) {
	if r == nil {
		return
	}
	r.endLine()
	fmt.Fprintf(r.output, "-> n = %d\n", n)
}

// ReportTrial reports a single completed trial.
func (r *BenchmarkReporter) ReportTrial(result TrialResult) {
	if r == nil {
		return
	}
	r.trials++
	r.elapsed += result.Seconds
	if !r.verbose {
		return
	}

	line := fmt.Sprintf("   %-13s %-11s %s", result.Algorithm, result.Ordering,
		formatDuration(result.Duration()))
	if r.tty {
		fmt.Fprintf(r.output, "\r\033[K%s", line)
		r.pending = true
		return
	}
	fmt.Fprintln(r.output, line)
}

// ReportDone announces the end of a run. err is the error that stopped the
// run, if any.
func (r *BenchmarkReporter) ReportDone(runID string, path string, err error) {
	if r == nil {
		return
	}
	r.endLine()

	fmt.Fprintf(r.output, "\n--- Summary ---\n")
	fmt.Fprintf(r.output, "Run: %s  Trials: %d  Time sorting: %s\n\n",
		runID, r.trials, formatDuration(time.Duration(r.elapsed*float64(time.Second))))
	if err != nil {
		fmt.Fprintf(r.output, "Aborted! Partial results saved to %s\n", path)
		return
	}
	fmt.Fprintf(r.output, "Finished! Results saved to %s\n", path)
}

func (r *BenchmarkReporter) endLine() {
	if r.pending {
		fmt.Fprintln(r.output)
		r.pending = false
	}
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	// Choose appropriate unit
	if d < time.Microsecond {
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
	if d < time.Millisecond {
		return fmt.Sprintf("%.2fµs", float64(d.Nanoseconds())/1000.0)
	}
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1000000.0)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
