package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDir is where charts go when no directory is configured.
const DefaultDir = "graficos"

// Mode selects which algorithms a chart shows.
type Mode struct {
	Name       string // used in file names
	Title      string // used in chart titles
	Algorithms []string
}

// Modes are the charts drawn for every ordering: all algorithms, then only
// the O(n log n) pair, whose lines the quadratic one would flatten.
var Modes = []Mode{
	{Name: "GERAL", Title: "GERAL", Algorithms: []string{"InsertionSort", "MergeSort", "QuickSort"}},
	{Name: "ZOOM", Title: "ZOOM (O(n log n))", Algorithms: []string{"MergeSort", "QuickSort"}},
}

// Config holds the configuration for generating a report.
type Config struct {
	CSVPath string
	Dir     string
	Output  io.Writer
}

// Generate reads the results file and writes one PNG per ordering and mode,
// plus index.html, into the chart directory.
func Generate(cfg Config) error {
	dir := cfg.Dir
	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating chart directory: %w", err)
	}

	fmt.Fprintf(cfg.Output, "Loading data from '%s'...\n", cfg.CSVPath)
	rows, err := LoadFile(cfg.CSVPath)
	if err != nil {
		return err
	}

	orderings := Orderings(rows)
	fmt.Fprintf(cfg.Output, "Orderings found: %s\n", strings.Join(orderings, ", "))
	fmt.Fprintf(cfg.Output, "\nGenerating charts...\n\n")

	var sections []Section
	for _, ordering := range orderings {
		fmt.Fprintf(cfg.Output, "Processing ordering: %s\n", ordering)
		sec := Section{Ordering: ordering}

		for _, mode := range Modes {
			table, err := Pivot(rows, ordering, mode.Algorithms)
			if errors.Is(err, ErrNoData) {
				fmt.Fprintf(cfg.Output, "    ! no data found for %v (%s)\n", mode.Algorithms, ordering)
				continue
			}
			if err != nil {
				return err
			}

			name := fmt.Sprintf("grafico_%s_%s.png", ordering, mode.Name)
			if err := writeChartFile(filepath.Join(dir, name), table); err != nil {
				return err
			}
			fmt.Fprintf(cfg.Output, "    chart saved to %s\n", filepath.Join(dir, name))

			sec.Charts = append(sec.Charts, Figure{
				Title: fmt.Sprintf("Desempenho %s – Vetor %s", mode.Title, ordering),
				File:  name,
				Table: table,
			})
			if sec.Table == nil {
				sec.Table = table
			}
		}
		sections = append(sections, sec)
	}

	index := filepath.Join(dir, "index.html")
	f, err := os.Create(index)
	if err != nil {
		return fmt.Errorf("creating index: %w", err)
	}
	defer f.Close()
	if err := WriteIndex(f, sections); err != nil {
		return fmt.Errorf("writing index: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing index: %w", err)
	}

	fmt.Fprintf(cfg.Output, "\nFinished! Charts saved in: %s\n", dir)
	return nil
}

func writeChartFile(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart: %w", err)
	}
	defer f.Close()
	if err := WriteChart(f, t); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
