// Package astar animates A* search on grid graphs.
//
// AStar is a dijkstra.Dijkstra with a grid heuristic installed: the queue
// priority becomes dist + h(cell, goal). Heuristics read core.Node.Cell and
// are scaled by D = 2, the step cost gridgraph assigns to every move, so
// Manhattan and Euclidean stay admissible on 4-connected grids.
//
// Chebyshev and Octile assume diagonal moves. On a 4-connected grid they
// still never overestimate, they are only less informed.
package astar

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/dijkstra"
	"github.com/katalvlaran/stepviz/geom"
	"github.com/katalvlaran/stepviz/step"
)

// D is the heuristic scale and the grid step cost.
const D = 2.0

// Kind selects a heuristic.
type Kind int

const (
	Manhattan Kind = iota
	Euclidean
	Chebyshev
	Octile
)

var kindNames = [...]string{"manhattan", "euclidean", "chebyshev", "octile"}

// ErrUnknownHeuristic is returned by ParseKind and New.
var ErrUnknownHeuristic = errors.New("astar: unknown heuristic")

// String returns the lower-case heuristic name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Kinds lists every heuristic.
func Kinds() []Kind { return []Kind{Manhattan, Euclidean, Chebyshev, Octile} }

// ParseKind maps a name (case-insensitive) to its Kind.
func ParseKind(s string) (Kind, error) {
	for i, n := range kindNames {
		if strings.EqualFold(s, n) {
			return Kind(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownHeuristic, s)
}

// Estimate returns the heuristic of kind k between two cells.
func Estimate(k Kind, a, b geom.Cell) float64 {
	ix, iy := geom.Delta(a, b)
	dx, dy := float64(ix), float64(iy)
	switch k {
	case Euclidean:
		return D * math.Sqrt(dx*dx+dy*dy)
	case Chebyshev:
		return D * math.Max(dx, dy)
	case Octile:
		return D*(dx+dy) + (D*math.Sqrt2-2*D)*math.Min(dx, dy)
	default:
		return D * (dx + dy)
	}
}

// Heuristic returns k as a dijkstra.Heuristic over node cells.
func (k Kind) Heuristic() dijkstra.Heuristic {
	return func(n, goal *core.Node) float64 { return Estimate(k, n.Cell, goal.Cell) }
}

// AStar is the animated A* search of one grid graph.
type AStar struct {
	*dijkstra.Dijkstra
	kind Kind
}

// New binds an A* search using heuristic k to g.
func New(g *core.Graph, k Kind, opts ...step.Option) (*AStar, error) {
	if k < Manhattan || k > Octile {
		return nil, fmt.Errorf("%w: %d", ErrUnknownHeuristic, int(k))
	}
	a := &AStar{Dijkstra: dijkstra.New(g, opts...), kind: k}
	a.SetHeuristic(k.Heuristic())

	return a, nil
}

// Kind returns the heuristic in use.
func (a *AStar) Kind() Kind { return a.kind }

// SetKind switches heuristic; takes effect on the next Begin.
func (a *AStar) SetKind(k Kind) error {
	if k < Manhattan || k > Octile {
		return fmt.Errorf("%w: %d", ErrUnknownHeuristic, int(k))
	}
	a.kind = k
	a.SetHeuristic(k.Heuristic())

	return nil
}
