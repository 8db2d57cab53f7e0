// Package spantree builds minimum spanning trees over in-memory weighted
// graphs, with interchangeable algorithm strategies and per-run
// instrumentation.
//
// 🚀 What is spantree?
//
//	A focused, pure-Go library that brings together:
//		• Core primitives: validated vertices & edges, immutable graphs
//		• Graph analysis: density classification, connectivity, components
//		• Prim's algorithm: binary heap, d-ary heap, or linear-scan queues
//		• Kruskal's algorithm: stable / heap / bucket edge sorting,
//		  union-find with toggleable optimizations
//		• Instrumented, self-validating results with comparison reports
//		• Concurrent batch computation across many graphs
//
// ✨ Why choose spantree?
//
//   - Deterministic – sorted iteration and explicit tie-breaking, so every
//     run over the same graph yields the same tree
//   - Honest numbers – explicit operation counters per run, not guesses
//   - Pure Go – no cgo, one tiny concurrency helper, nothing hidden
//
// Everything is organized under two subpackages:
//
//	core/ — fundamental Graph, Vertex, Edge types, builders & statistics
//	mst/  — Prim, Kruskal, their strategies, results & batch processing
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	a square with four vertices; its MST keeps the three cheapest edges.
//
//	go get github.com/alinairsymova/spantree
package spantree
