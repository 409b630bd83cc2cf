// Package bench runs a Solver repeatedly over a graph and reports timing
// statistics, the way a benchmark harness collects Min/Avg/Max over N runs
// and renders them both as a console table (github.com/olekukonko/
// tablewriter, grounded on gazette-core's cmd/gazctl table output) and as a
// CSV file for downstream analysis.
package bench
