// Package gridpath is the root of a small shortest-path toolkit: a generic
// best-first search engine and its instantiation for passability grids.
//
// What's inside:
//
//	search/           generic Dijkstra-style engine: pluggable positions,
//	                  cost tables and expansion policies, lazy decrease-key
//	gridpath/         grid construction and parsing, the 4/8-neighbour
//	                  expansion policy, dense cost table, Solve
//	internal/config   YAML / .env / environment configuration for the CLI
//	internal/log      zerolog logger factory
//	cmd/gridpath      command-line solver
//
// Quick ASCII example:
//
//	..#
//	#..
//	...
//
// has 7 passable cells; a shortest path from the top-left to the bottom-right
// corner covers 5 of them, so Solve reports 2.
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
