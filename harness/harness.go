package harness

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/feather-lang/sortbench"
)

// DefaultOutputPath is where results go when no path is configured.
const DefaultOutputPath = "resultados.csv"

// Config holds the configuration for a benchmark run.
type Config struct {
	OutputPath string // results file; DefaultOutputPath if empty
	PlanPath   string // YAML plan; DefaultPlan if empty
	Seed       int64  // random seed; 0 seeds from the current time
	Verbose    bool
	Output     io.Writer
	ErrOutput  io.Writer

	// Alloc and Clock override the heap allocator and system clock.
	Alloc sortbench.Allocator
	Clock sortbench.Clock
}

// Run executes a benchmark run with the given configuration.
// Returns 0 on success, 1 on error.
func Run(cfg Config) int {
	return RunContext(context.Background(), cfg)
}

// RunContext is Run with a context that can stop the run between trials.
func RunContext(ctx context.Context, cfg Config) int {
	if err := run(ctx, cfg); err != nil {
		fmt.Fprintf(cfg.ErrOutput, "error: %v\n", err)
		return 1
	}
	return 0
}

func run(ctx context.Context, cfg Config) error {
	plan := DefaultPlan()
	if cfg.PlanPath != "" {
		var err error
		if plan, err = LoadPlan(cfg.PlanPath); err != nil {
			return err
		}
	}

	path := cfg.OutputPath
	if path == "" {
		path = DefaultOutputPath
	}
	f, err := CreateCSVFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	sink, err := NewCSVSink(f)
	if err != nil {
		return err
	}

	runner := NewBenchmarkRunner(plan, sink, cfg.Output)
	runner.Reporter = NewBenchmarkReporter(cfg.Output, cfg.Verbose)
	if cfg.Seed != 0 {
		runner.Generator = sortbench.NewGenerator(rand.New(rand.NewSource(cfg.Seed)))
	}
	if cfg.Alloc != nil {
		runner.Alloc = cfg.Alloc
	}
	if cfg.Clock != nil {
		runner.Timer = sortbench.NewTimer(cfg.Clock)
	}

	runID := uuid.NewString()
	start := time.Now()
	runner.Reporter.ReportStart(runID, plan, path)
	_, err = runner.Run(ctx)
	runner.Reporter.ReportDone(runID, path, err)
	if err != nil {
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	fmt.Fprintf(cfg.Output, "Wall time: %s\n", formatDuration(time.Since(start)))
	return nil
}
