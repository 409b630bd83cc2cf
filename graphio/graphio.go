package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"deltastep/core"
)

// Load reads the graph file at path using the format documented in doc.go.
func Load(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio.Load(%s): %w", path, err)
	}
	defer f.Close()

	g, err := LoadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("graphio.Load(%s): %w", path, err)
	}

	return g, nil
}

// LoadFrom parses the graph file format from an arbitrary reader. External
// vertex ids are remapped to the dense [0,n) range in the order they are
// first seen; malformed lines are skipped with a logged warning rather than
// aborting the parse.
func LoadFrom(r io.Reader) (*core.Graph, error) {
	scanner := bufio.NewScanner(r)
	remap := make(map[int64]int32)
	var next int32

	b := core.NewBuilder(0)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			logrus.WithField("line", lineNum).Warn("graphio: malformed line, expected \"u v w\", skipping")
			continue
		}

		ue, errU := strconv.ParseInt(fields[0], 10, 64)
		ve, errV := strconv.ParseInt(fields[1], 10, 64)
		w, errW := strconv.ParseFloat(fields[2], 64)
		if errU != nil || errV != nil || errW != nil || ue < 0 || ve < 0 {
			logrus.WithField("line", lineNum).Warn("graphio: malformed fields, skipping")
			continue
		}

		u := denseID(remap, &next, ue)
		v := denseID(remap, &next, ve)
		if err := b.AddEdge(u, v, w); err != nil {
			logrus.WithFields(logrus.Fields{"line": lineNum, "error": err}).Warn("graphio: rejected edge, skipping")
			continue
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("graphio: scan: %w", err)
	}

	return b.Build()
}

// denseID returns the dense id assigned to external id ext, assigning the
// next free dense id on first sight.
func denseID(remap map[int64]int32, next *int32, ext int64) int32 {
	if id, ok := remap[ext]; ok {
		return id
	}
	id := *next
	remap[ext] = id
	*next++

	return id
}

// Save writes g to path in the format documented in doc.go, using g's own
// dense vertex ids as the external ids. Only edges are written, so vertices
// with no edges are not preserved, and Load renumbers ids in first-seen
// order; Save followed by Load reproduces g only when every vertex has an
// edge and ids first appear in ascending order in the written lines.
func Save(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio.Save(%s): %w", path, err)
	}
	defer f.Close()

	if err := SaveTo(f, g); err != nil {
		return fmt.Errorf("graphio.Save(%s): %w", path, err)
	}

	return nil
}

// SaveTo writes g to w in the format documented in doc.go.
func SaveTo(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)

	for v := int32(0); v < g.N(); v++ {
		for _, e := range g.Edges(v) {
			if _, err := fmt.Fprintf(bw, "%d %d %g\n", v, e.To, e.Weight); err != nil {
				return fmt.Errorf("graphio: write: %w", err)
			}
		}
	}

	return bw.Flush()
}
