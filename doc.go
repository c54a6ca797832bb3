// Package mineexpress plans shortest routes through block-grid mazes observed
// by an agent, and turns them into discrete movement commands.
//
// What is in here?
//
//	gridgraph/ — observation grids: labels, indexing, neighbours, endpoint
//	             markers, JSON observation decoding and text rendering
//	dijkstra/  — minimum-cost path over a grid with an indexed min-heap
//	bfs/       — breadth-first flood fill over a grid (step counts, regions)
//	moves/     — path → North/South/West/East actions → "move<dir> 1" commands
//	planner/   — locate endpoints, search, convert; YAML config and logging hook
//	maze/      — seeded corridor-maze generator producing observation grids
//	cmd/mazeplan — CLI: generate a maze, plan a route, render both
//
// Quick example:
//
//	S . #        start (emerald_block) at 0, exit (redstone_block) at 5
//	# . E        '#' is air, everything else is walkable
//	# # #
//
//	p, _ := planner.New(planner.DefaultConfig())
//	plan, err := p.Plan(g)
//	// plan.Path     = [0 1 4 5]
//	// plan.Commands = [moveeast 1, movesouth 1, moveeast 1]
//
// Indexing: cell (x, y, layer) lives at layer*stride² + y*stride + x; north is
// −stride, south +stride, west −1, east +1. Moves never wrap across a row.
package mineexpress
