// ssspbench times every registered solver over a set of graph files,
// comparing parallel configurations against the sequential baseline, and
// reports results as both a console table and a CSV file.
package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"deltastep/bench"
	"deltastep/core"
	"deltastep/deltastep"
	"deltastep/dijkstra"
	"deltastep/graphio"
	"deltastep/solver"
)

var (
	runs       int
	delta      float64
	source     int32
	outputPath string
)

// defaultGraphPattern is scanned when no graph files are given on the
// command line.
const defaultGraphPattern = "assets/test_cases/*.txt"

func resolveGraphPaths(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	matches, err := filepath.Glob(defaultGraphPattern)
	if err != nil {
		return nil, errors.Wrapf(err, "ssspbench: scanning %s", defaultGraphPattern)
	}
	sort.Strings(matches)

	return matches, nil
}

func threadCounts() []int {
	return []int{1, 2, 4, 8}
}

func benchmarkGraph(path string) ([]bench.Result, error) {
	g, err := graphio.Load(path)
	if err != nil {
		return nil, errors.Wrapf(err, "ssspbench: loading %s", path)
	}

	want, err := dijkstra.NewOracle().Compute(g, source)
	if err != nil {
		return nil, errors.Wrapf(err, "ssspbench: oracle on %s", path)
	}

	name := filepath.Base(path)
	var results []bench.Result

	baseline, err := timeSolver(g, deltastep.NewSequential(delta), name, "sequential", 0, 1, want)
	if err != nil {
		return nil, err
	}
	results = append(results, baseline)

	for _, threads := range threadCounts() {
		r, err := timeSolver(g, deltastep.NewParallel(delta, threads), name,
			fmt.Sprintf("parallel,threads=%d", threads), 0, threads, want)
		if err != nil {
			return nil, err
		}

		if baseline.AvgTimeMs > 0 {
			r.Speedup = baseline.AvgTimeMs / r.AvgTimeMs
			r.Efficiency = r.Speedup / float64(threads)
		}
		results = append(results, r)
	}

	return results, nil
}

func timeSolver(g *core.Graph, s solver.Solver, graphName, configuration string, configDelta float64, threads int, want []float64) (bench.Result, error) {
	timing, err := bench.Time(s, g, source, runs)
	if err != nil {
		return bench.Result{}, errors.Wrapf(err, "ssspbench: timing %s on %s", s.Name(), graphName)
	}

	correct := distancesMatch(want, timing.Dist)

	return bench.Result{
		Graph:         graphName,
		Algorithm:     s.Name(),
		Configuration: configuration,
		Vertices:      g.N(),
		Edges:         g.EdgeCount(),
		Source:        source,
		Delta:         delta,
		Threads:       threads,
		MinTimeMs:     timing.MinMs,
		AvgTimeMs:     timing.AvgMs,
		MaxTimeMs:     timing.MaxMs,
		NumRuns:       timing.Runs,
		Speedup:       1.0,
		Efficiency:    1.0,
		Correct:       correct,
	}, nil
}

func distancesMatch(want, got []float64) bool {
	if len(want) != len(got) {
		return false
	}
	for i := range want {
		if math.IsInf(want[i], 1) || math.IsInf(got[i], 1) {
			if math.IsInf(want[i], 1) != math.IsInf(got[i], 1) {
				return false
			}
			continue
		}
		if math.Abs(want[i]-got[i]) > 1e-9 {
			return false
		}
	}

	return true
}

func run(args []string) error {
	paths, err := resolveGraphPaths(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return errors.New("ssspbench: no graph files given and none found under " + defaultGraphPattern)
	}

	var all []bench.Result
	for _, path := range paths {
		results, err := benchmarkGraph(path)
		if err != nil {
			return err
		}
		all = append(all, results...)
	}

	bench.PrintTable(os.Stdout, all)

	if err := bench.WriteCSV(outputPath, all); err != nil {
		return errors.Wrap(err, "ssspbench: writing results")
	}
	fmt.Printf("wrote %s\n", outputPath)

	return nil
}

func main() {
	cmd := &cobra.Command{
		Use:   "ssspbench [graph files...]",
		Short: "Benchmark Δ-stepping solvers against the sequential baseline",
		Long: `ssspbench times every registered Solver over the given graph files (or
assets/test_cases/*.txt if none are given), reporting Min/Avg/Max time,
speedup, and efficiency relative to the sequential baseline.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args)
		},
		SilenceUsage: true,
	}

	cmd.Flags().IntVar(&runs, "runs", 5, "iterations per (graph, config) pair")
	cmd.Flags().Float64Var(&delta, "delta", 0.5, "Δ-stepping bucket width")
	cmd.Flags().Int32Var(&source, "source", 0, "source vertex")
	cmd.Flags().StringVar(&outputPath, "output", "benchmark_results.csv", "CSV output path")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
