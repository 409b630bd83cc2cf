package bench

// Result is one row of benchmark output.
type Result struct {
	Graph         string
	Algorithm     string
	Configuration string
	Vertices      int32
	Edges         int
	Source        int32
	Delta         float64
	Threads       int
	MinTimeMs     float64
	AvgTimeMs     float64
	MaxTimeMs     float64
	NumRuns       int
	Speedup       float64
	Efficiency    float64
	Correct       bool
}

// csvHeader is the CSV column order shared by WriteCSV and PrintTable.
var csvHeader = []string{
	"Graph", "Algorithm", "Configuration", "Vertices", "Edges", "Source",
	"Delta", "Threads", "Min_Time_ms", "Avg_Time_ms", "Max_Time_ms",
	"Num_Runs", "Speedup", "Efficiency", "Correct",
}
