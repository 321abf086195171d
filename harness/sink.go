package harness

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Header is the first row of every results file.
var Header = []string{"algoritmo", "tipo_vetor", "tamanho_n", "tempo_s"}

// RecordSink receives trial results as they complete.
type RecordSink interface {
	Append(TrialResult) error
}

// CSVSink writes results as CSV rows. Every row is flushed, and synced if
// the destination supports it, before Append returns.
type CSVSink struct {
	out io.Writer
	w   *csv.Writer
}

// NewCSVSink writes the header row to out and returns the sink.
func NewCSVSink(out io.Writer) (*CSVSink, error) {
	s := &CSVSink{out: out, w: csv.NewWriter(out)}
	if err := s.write(Header); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}
	return s, nil
}

// Append implements RecordSink.
func (s *CSVSink) Append(r TrialResult) error {
	return s.write([]string{
		r.Algorithm,
		r.Ordering,
		strconv.Itoa(r.Size),
		FormatSeconds(r.Seconds),
	})
}

func (s *CSVSink) write(record []string) error {
	if err := s.w.Write(record); err != nil {
		return err
	}
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		return err
	}
	if f, ok := s.out.(interface{ Sync() error }); ok {
		return f.Sync()
	}
	return nil
}

// FormatSeconds renders elapsed seconds the way the results file stores
// them: fixed notation with six decimals.
func FormatSeconds(secs float64) string {
	return strconv.FormatFloat(secs, 'f', 6, 64)
}

// CreateCSVFile creates or truncates the results file at path.
func CreateCSVFile(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return f, nil
}
