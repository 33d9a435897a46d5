// Package maze animates maze generation by randomized Kruskal.
//
// An R×C maze lives on a (2R+1)×(2C+1) gridgraph.Grid: cells with two odd
// coordinates are rooms, the cells between two orthogonally adjacent rooms
// are candidate walls, everything else is permanent wall. Candidate walls
// are shuffled; each one whose rooms are still in different dsu sets is
// carved open. The result is a spanning tree over the rooms: connected,
// acyclic, exactly R·C−1 carvings, one yield each.
package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/dsu"
	"github.com/katalvlaran/stepviz/geom"
	"github.com/katalvlaran/stepviz/gridgraph"
	"github.com/katalvlaran/stepviz/step"
)

// MaxSide bounds rows and cols.
const MaxSide = 200

// ErrBadSize is returned for rows or cols outside 1..MaxSide.
var ErrBadSize = errors.New("maze: rows and cols must be within 1..200")

// Maze is the animated generation of one maze.
type Maze struct {
	*step.Handler

	rows, cols int
	seed       int64
	grid       *gridgraph.Grid
	carved     int
	stepOpts   []step.Option
}

// Option configures a Maze.
type Option func(*Maze)

// WithSeed fixes the shuffle seed so runs are reproducible. Without it
// the seed comes from the wall clock.
func WithSeed(seed int64) Option {
	return func(m *Maze) { m.seed = seed }
}

// WithStepOptions passes handler options (delay, clock, logger, notifier).
func WithStepOptions(opts ...step.Option) Option {
	return func(m *Maze) { m.stepOpts = append(m.stepOpts, opts...) }
}

// New builds a rows×cols maze, laid out with every candidate wall standing.
func New(rows, cols int, opts ...Option) (*Maze, error) {
	if rows < 1 || cols < 1 || rows > MaxSide || cols > MaxSide {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadSize, rows, cols)
	}
	m := &Maze{rows: rows, cols: cols, seed: time.Now().UnixNano()}
	for _, o := range opts {
		o(m)
	}
	grid, err := gridgraph.New(2*rows+1, 2*cols+1)
	if err != nil {
		return nil, err
	}
	m.grid = grid
	m.layout()
	m.Handler = step.NewHandler(m, m.stepOpts...)

	return m, nil
}

// Grid returns the underlying cell grid.
func (m *Maze) Grid() *gridgraph.Grid { return m.grid }

// Carved returns the number of walls carved so far.
func (m *Maze) Carved() int { return m.carved }

// Seed returns the shuffle seed of the next run.
func (m *Maze) Seed() int64 { return m.seed }

// Room returns the grid cell of room (r, c), zero-based.
func Room(r, c int) geom.Cell { return geom.Cell{Row: 2*r + 1, Col: 2*c + 1} }

// Entrance returns the top-left room.
func (m *Maze) Entrance() geom.Cell { return Room(0, 0) }

// Exit returns the bottom-right room.
func (m *Maze) Exit() geom.Cell { return Room(m.rows-1, m.cols-1) }

// Init re-lays the grid, replaces the seed, and resets the handler.
func (m *Maze) Init(seed int64) {
	m.seed = seed
	m.layout()
	m.Reset()
}

// layout walls every cell, then opens the rooms.
func (m *Maze) layout() {
	m.carved = 0
	m.grid.Fill(core.Wall)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			_ = m.grid.Set(Room(r, c), core.None)
		}
	}
}

// Begin implements step.Algorithm.
func (m *Maze) Begin() (step.Procedure, error) {
	m.layout()
	var walls []geom.Cell
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if c+1 < m.cols {
				walls = append(walls, geom.Cell{Row: 2*r + 1, Col: 2*c + 2})
			}
			if r+1 < m.rows {
				walls = append(walls, geom.Cell{Row: 2*r + 2, Col: 2*c + 1})
			}
		}
	}
	rng := rand.New(rand.NewSource(m.seed))
	rng.Shuffle(len(walls), func(i, j int) { walls[i], walls[j] = walls[j], walls[i] })

	return &carver{m: m, walls: walls, sets: dsu.New[geom.Cell](m.rows * m.cols)}, nil
}

// Cleanup implements step.Algorithm. The carved grid is the result, so
// nothing is cleared.
func (m *Maze) Cleanup() {}

// carver is the maze procedure.
type carver struct {
	m       *Maze
	walls   []geom.Cell
	i       int
	sets    *dsu.Set[geom.Cell]
	painted bool
}

// rooms returns the two rooms a candidate wall separates.
func rooms(w geom.Cell) (geom.Cell, geom.Cell) {
	if w.Row%2 == 1 {
		return geom.Cell{Row: w.Row, Col: w.Col - 1}, geom.Cell{Row: w.Row, Col: w.Col + 1}
	}

	return geom.Cell{Row: w.Row - 1, Col: w.Col}, geom.Cell{Row: w.Row + 1, Col: w.Col}
}

func (c *carver) Step(t step.Target) (bool, error) {
	m := c.m
	for c.i < len(c.walls) {
		w := c.walls[c.i]
		c.i++
		a, b := rooms(w)
		if !c.sets.Union(a, b) {
			continue
		}
		if !c.painted {
			t.Repaint()
			c.painted = true
		}
		if err := m.grid.Set(w, core.None); err != nil {
			return true, err
		}
		m.carved++
		t.Render(core.CellRef(m.grid.Index(w)))
		return false, nil
	}

	return true, nil
}
