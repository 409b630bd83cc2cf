// Package graphgen builds core.Graph fixtures for testing and benchmarking:
// a family of Constructor closures composed by one public orchestrator,
// configured through functional options that panic on nonsensical values
// and validated inside each constructor with sentinel errors (the same
// shape lvlath/builder uses for its own topology constructors).
//
// Every constructor adds vertices and edges directly to a *core.Builder;
// vertex IDs are always the dense integer index in [0,n), so there is no
// separate ID-scheme option.
package graphgen
