package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Row is one trial read back from a results file.
type Row struct {
	Algorithm string
	Ordering  string
	Size      int
	Seconds   float64
	Millis    float64
}

var columns = []string{"algoritmo", "tipo_vetor", "tamanho_n", "tempo_s"}

// LoadFile reads a results file. Rows with a non-positive time are dropped.
func LoadFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening results: %w", err)
	}
	defer f.Close()

	rows, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return rows, nil
}

// Load reads results in CSV form. Columns are located by header name, so
// extra columns and reordering are tolerated.
func Load(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("empty results file")
	}
	if err != nil {
		return nil, err
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	for _, c := range columns {
		if _, ok := idx[c]; !ok {
			return nil, fmt.Errorf("missing column %q", c)
		}
	}

	var rows []Row
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)

		size, err := strconv.Atoi(rec[idx["tamanho_n"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad size: %w", line, err)
		}
		secs, err := strconv.ParseFloat(rec[idx["tempo_s"]], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad time: %w", line, err)
		}
		if secs <= 0 {
			continue
		}
		rows = append(rows, Row{
			Algorithm: rec[idx["algoritmo"]],
			Ordering:  rec[idx["tipo_vetor"]],
			Size:      size,
			Seconds:   secs,
			Millis:    secs * 1000,
		})
	}
	return rows, nil
}
