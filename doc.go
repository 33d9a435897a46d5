// Package stepviz animates classic algorithms one visible step at a time.
//
// Every algorithm is an explicit state machine (a step.Procedure) driven by a
// step.Handler that owns the run state: NotBegun, Running, Paused, Stopped.
// Each Step call performs one visible mutation on the shared model (core
// arrays, graphs, grid cells, allocator records), asks the render target to
// redraw it, and returns.
//
// Packages, leaves first:
//
//	geom/          point, segment and grid-cell math
//	core/          display states, arrays and the graph model
//	step/          handler, notifier, render target and paint helpers
//	dsu/ pq/       union-find and a decrease-key priority queue
//	table/         distance/predecessor tables and the path tracer
//	sorting/       bubble, insertion, selection, merge and quick sort
//	bfs/ dfs/      unweighted traversals with optional target
//	dijkstra/      weighted shortest paths with a heuristic hook
//	astar/         grid heuristics on top of dijkstra
//	bellmanford/   shortest paths with negative cycle detection
//	prim_kruskal/  minimum spanning trees and forests
//	gridgraph/     wall grids, graph conversion, components and breaching
//	maze/          randomized-Kruskal maze carving
//	alloc/         toy heap with generation-checked handles
//	linkedlist/    a singly linked list stored in alloc
//	config/        YAML scene configuration
//
// The stepviz command (cmd/stepviz) plays any of them in the terminal.
package stepviz
