// Package gridgraph models a rectangular grid of cells, each either open or
// a wall, and converts it to a core.Graph for the path procedures.
//
// What:
//
//   - Grid holds Rows×Cols display states (core.None for open, core.Wall for
//     walls) in row-major order; cells render through core.CellRef(index).
//   - ToGraph builds a 4-connected undirected graph over open cells with
//     every edge weighted StepCost, so grid heuristics scaled by the same
//     factor stay admissible.
//   - Components lists the 4-connected regions of open cells.
//   - Breach finds the fewest walls to knock down between two cells (0-1 BFS).
//
// Complexity:
//
//   - ToGraph, Components, Breach: O(R×C) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: parsed rows differ in length.
//   - ErrOutOfBounds: a cell lies outside the grid.
package gridgraph
