// Package minegrid is a terminal grid-reveal puzzle: a square field of hidden
// hazards, a cursor, reveal and flag commands, and a flood that opens empty
// areas in one move.
//
// What is in the module?
//
//	A small engine and a thin front end:
//		• Board engine: hazard placement, neighbor counts, flood reveal,
//		  command dispatch, win/loss evaluation
//		• Grid geometry: bounds-clipped 4/8-neighborhoods, connected regions
//		• Traversal: breadth-first walk with hooks, filters and dead ends
//		• Terminal UI: tcell renderer, key decoding, input loop
//
// Under the hood, everything is organized under these subpackages:
//
//	board/       Board, Cell, Command, Signal: the game state engine
//	bfs/         breadth-first search over a gridgraph.Grid
//	gridgraph/   Grid and Pos: geometry, neighbors, components
//	config/      YAML/env/flag configuration via viper
//	tui/         Renderer, Decode, Session on top of tcell
//	cmd/minegrid/ the binary
//
// Quick ASCII example (5×5, one hazard in the middle, after one reveal):
//
//	+ - + - + - + - + - +
//	|   |   |   |   |   |
//	+ - + - + - + - + - +
//	|   | 1 | 1 | 1 |   |
//	+ - + - + - + - + - +
//	|   | 1 | # | 1 |   |
//	+ - + - + - + - + - +
//	|   | 1 | 1 | 1 |   |
//	+ - + - + - + - + - +
//	|   |   |   |   |   |
//	+ - + - + - + - + - +
//
//	go install github.com/katalvlaran/minegrid/cmd/minegrid@latest
package minegrid
