package bench

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// WriteCSV writes results to path in csvHeader's column order. No ecosystem
// CSV-writer library appears anywhere in the example corpus (see
// DESIGN.md), so this stays on encoding/csv.
func WriteCSV(path string, results []Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bench.WriteCSV(%s): %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("bench.WriteCSV(%s): %w", path, err)
	}

	for _, r := range results {
		if err := w.Write(row(r)); err != nil {
			return fmt.Errorf("bench.WriteCSV(%s): %w", path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("bench.WriteCSV(%s): %w", path, err)
	}

	return nil
}

func row(r Result) []string {
	return []string{
		r.Graph,
		r.Algorithm,
		r.Configuration,
		strconv.FormatInt(int64(r.Vertices), 10),
		strconv.Itoa(r.Edges),
		strconv.FormatInt(int64(r.Source), 10),
		strconv.FormatFloat(r.Delta, 'g', -1, 64),
		strconv.Itoa(r.Threads),
		strconv.FormatFloat(r.MinTimeMs, 'f', 3, 64),
		strconv.FormatFloat(r.AvgTimeMs, 'f', 3, 64),
		strconv.FormatFloat(r.MaxTimeMs, 'f', 3, 64),
		strconv.Itoa(r.NumRuns),
		strconv.FormatFloat(r.Speedup, 'f', 3, 64),
		strconv.FormatFloat(r.Efficiency, 'f', 3, 64),
		strconv.FormatBool(r.Correct),
	}
}
