// Package graphio loads and saves core.Graph values in the line-oriented
// text adjacency format: one edge per line, "u v w" separated by ASCII
// spaces, external integer ids remapped to the dense [0,n) range expected by
// core.Builder in first-seen order. Malformed lines are skipped with a
// logrus warning rather than aborting the whole load, the way a parser
// consuming arbitrary ingested text tolerates bad records instead of one bad
// line taking down the run.
package graphio
