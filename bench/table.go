package bench

import (
	"io"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

// PrintTable renders results as a console table via w, humanizing vertex
// and edge counts (grounded on gazette-core's cmd/gazctl table output,
// which renders through the same tablewriter.NewWriter/Append/Render cycle).
func PrintTable(w io.Writer, results []Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(csvHeader)

	for _, r := range results {
		table.Append([]string{
			r.Graph,
			r.Algorithm,
			r.Configuration,
			humanize.Comma(int64(r.Vertices)),
			humanize.Comma(int64(r.Edges)),
			humanize.Comma(int64(r.Source)),
			humanize.Ftoa(r.Delta),
			humanize.Comma(int64(r.Threads)),
			humanize.Ftoa(r.MinTimeMs),
			humanize.Ftoa(r.AvgTimeMs),
			humanize.Ftoa(r.MaxTimeMs),
			humanize.Comma(int64(r.NumRuns)),
			humanize.Ftoa(r.Speedup),
			humanize.Ftoa(r.Efficiency),
			boolCell(r.Correct),
		})
	}

	table.Render()
}

func boolCell(ok bool) string {
	if ok {
		return "PASS"
	}
	return "FAIL"
}
