// ssspcheck is the correctness driver: it takes no arguments, runs every
// registered solver against the Dijkstra oracle over the scenario and
// boundary-case graphs, and prints a PASS/FAIL summary.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"deltastep/core"
	"deltastep/deltastep"
	"deltastep/dijkstra"
	"deltastep/graphio"
	"deltastep/solver"
)

const distTolerance = 1e-9

// namedGraph pairs a graph with the label it is reported under.
type namedGraph struct {
	name   string
	g      *core.Graph
	source int32
}

func buildCheckGraphs() ([]namedGraph, error) {
	mk := func(n int, edges [][3]float64) (*core.Graph, error) {
		b := core.NewBuilder(n)
		for _, e := range edges {
			if err := b.AddEdge(int32(e[0]), int32(e[1]), e[2]); err != nil {
				return nil, err
			}
		}
		return b.Build()
	}

	pathG, err := mk(4, [][3]float64{{0, 1, 0.3}, {1, 2, 0.7}, {2, 3, 0.2}})
	if err != nil {
		return nil, err
	}
	completeG, err := mk(3, [][3]float64{
		{0, 1, 0.2}, {0, 2, 0.9}, {1, 0, 0.2}, {1, 2, 0.3}, {2, 0, 0.9}, {2, 1, 0.3},
	})
	if err != nil {
		return nil, err
	}
	disconnectedG, err := mk(2, nil)
	if err != nil {
		return nil, err
	}
	triangleG, err := mk(3, [][3]float64{{0, 1, 1.0}, {0, 2, 1.0}, {1, 2, 1.0}})
	if err != nil {
		return nil, err
	}

	const cycleLength = 16
	cycleEdges := make([][3]float64, cycleLength)
	for i := 0; i < cycleLength; i++ {
		cycleEdges[i] = [3]float64{float64(i), float64(i + 1), 1.0}
	}
	bucketCyclingG, err := mk(cycleLength+1, cycleEdges)
	if err != nil {
		return nil, err
	}

	const leaves = 50
	starEdges := make([][3]float64, leaves)
	for i := 0; i < leaves; i++ {
		starEdges[i] = [3]float64{0, float64(i + 1), 0.9}
	}
	heavyTailG, err := mk(leaves+1, starEdges)
	if err != nil {
		return nil, err
	}

	singleG, err := mk(1, nil)
	if err != nil {
		return nil, err
	}
	selfLoopG, err := mk(1, [][3]float64{{0, 0, 1.0}})
	if err != nil {
		return nil, err
	}
	parallelEdgesG, err := mk(2, [][3]float64{{0, 1, 0.9}, {0, 1, 0.2}})
	if err != nil {
		return nil, err
	}

	return []namedGraph{
		{"path_graph", pathG, 0},
		{"complete_graph", completeG, 0},
		{"disconnected", disconnectedG, 0},
		{"triangle_with_ties", triangleG, 0},
		{"bucket_cycling_stress", bucketCyclingG, 0},
		{"heavy_tail_in_degree", heavyTailG, 0},
		{"single_vertex", singleG, 0},
		{"self_loop", selfLoopG, 0},
		{"parallel_edges", parallelEdgesG, 0},
	}, nil
}

func solversUnderTest(delta float64) []solver.Solver {
	return []solver.Solver{
		deltastep.NewSequential(delta),
		deltastep.NewParallel(delta, 1),
		deltastep.NewParallel(delta, 2),
		deltastep.NewParallel(delta, 4),
		deltastep.NewParallel(delta, 8),
	}
}

func distEqual(want, got []float64) bool {
	if len(want) != len(got) {
		return false
	}
	for i := range want {
		if math.IsInf(want[i], 1) != math.IsInf(got[i], 1) {
			return false
		}
		if math.IsInf(want[i], 1) {
			continue
		}
		if math.Abs(want[i]-got[i]) > distTolerance {
			return false
		}
	}

	return true
}

// diffAndReport prints the per-vertex distance deltas for up to the first
// limit mismatching vertices between want and got.
func diffAndReport(want, got []float64, limit int) {
	fmt.Println("  vertex       want          got         delta")

	shown := 0
	for v := range want {
		if shown >= limit {
			fmt.Printf("  ... (stopped after %d violating vertices)\n", limit)
			return
		}

		w, g := want[v], got[v]
		infMismatch := math.IsInf(w, 1) != math.IsInf(g, 1)
		if !infMismatch && math.IsInf(w, 1) {
			continue
		}
		if !infMismatch && math.Abs(w-g) <= distTolerance {
			continue
		}

		switch {
		case infMismatch:
			fmt.Printf("  %6d   %10s   %10s   mismatch\n", v, fmtDist(w), fmtDist(g))
		default:
			fmt.Printf("  %6d   %10.6f   %10.6f   %+.6f\n", v, w, g, g-w)
		}
		shown++
	}
}

func fmtDist(d float64) string {
	if math.IsInf(d, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.6f", d)
}

func run() error {
	graphs, err := buildCheckGraphs()
	if err != nil {
		return errors.Wrap(err, "ssspcheck: building check graphs")
	}

	deltas := []float64{0.05, 0.1, 0.25, 0.5, 1.0}
	allPassed := true

	for _, ng := range graphs {
		want, err := dijkstra.NewOracle().Compute(ng.g, ng.source)
		if err != nil {
			return errors.Wrapf(err, "ssspcheck: oracle on %s", ng.name)
		}

		for _, delta := range deltas {
			for _, s := range solversUnderTest(delta) {
				got, err := s.Compute(ng.g, ng.source)
				if err != nil {
					fmt.Printf("FAIL %-24s delta=%-6g %-40s error: %v\n", ng.name, delta, s.Name(), err)
					allPassed = false
					continue
				}

				if !distEqual(want, got) {
					fmt.Printf("FAIL %-24s delta=%-6g %-40s distance mismatch\n", ng.name, delta, s.Name())
					diffAndReport(want, got, 20)
					allPassed = false

					if err := graphio.Save("failed_graph_multi_solver.txt", ng.g); err != nil {
						logrus.WithError(err).Warn("ssspcheck: failed to write failing graph")
					}

					return errors.Errorf("ssspcheck: %s delta=%g %s: distance mismatch, halting on first failure", ng.name, delta, s.Name())
				}

				fmt.Printf("PASS %-24s delta=%-6g %-40s\n", ng.name, delta, s.Name())
			}
		}
	}

	if !allPassed {
		return errors.New("ssspcheck: one or more solver/graph/delta combinations failed")
	}

	return nil
}

func main() {
	cmd := &cobra.Command{
		Use:   "ssspcheck",
		Short: "Validate every Δ-stepping solver against the Dijkstra oracle",
		Long: `ssspcheck runs every registered Solver over a fixed set of scenario and
boundary-case graphs, compares each against a sequential Dijkstra oracle,
and prints a PASS/FAIL line per combination.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
		SilenceUsage: true,
	}

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
