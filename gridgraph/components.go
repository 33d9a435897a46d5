package gridgraph

import (
	"container/list"
	"fmt"

	"github.com/katalvlaran/stepviz/geom"
)

// Components finds every 4-connected region of open cells. Regions are
// listed in row-major order of their first cell; cells inside a region are
// in BFS order from that cell.
func (g *Grid) Components() [][]geom.Cell {
	seen := make([]bool, len(g.cells))
	var comps [][]geom.Cell
	for i := range g.cells {
		c := g.Coordinate(i)
		if seen[i] || g.IsWall(c) {
			continue
		}
		seen[i] = true
		queue := []geom.Cell{c}
		for qi := 0; qi < len(queue); qi++ {
			for _, n := range g.Neighbors(queue[qi]) {
				if j := g.Index(n); !seen[j] {
					seen[j] = true
					queue = append(queue, n)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// Breach returns the cheapest route from a to b where entering a wall costs
// 1 and entering an open cell costs 0, along with the number of walls on it.
// Endpoints themselves may be walls.
func (g *Grid) Breach(a, b geom.Cell) ([]geom.Cell, int, error) {
	if !g.InBounds(a) || !g.InBounds(b) {
		return nil, 0, fmt.Errorf("%w: %v -> %v", ErrOutOfBounds, a, b)
	}
	n := len(g.cells)
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i], prev[i] = inf, -1
	}
	src, dst := g.Index(a), g.Index(b)
	dist[src] = 0
	if g.IsWall(a) {
		dist[src] = 1
	}

	// 0-1 BFS: zero-cost moves go to the front, wall moves to the back.
	dq := list.New()
	dq.PushFront(src)
	for dq.Len() > 0 {
		u := dq.Remove(dq.Front()).(int)
		if u == dst {
			break
		}
		uc := g.Coordinate(u)
		for _, d := range geom.Offsets4 {
			vc := uc.Add(d)
			if !g.InBounds(vc) {
				continue
			}
			v := g.Index(vc)
			w := 0
			if g.IsWall(vc) {
				w = 1
			}
			if nd := dist[u] + w; nd < dist[v] {
				dist[v], prev[v] = nd, u
				if w == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}
	var path []geom.Cell
	for at := dst; at >= 0; at = prev[at] {
		path = append([]geom.Cell{g.Coordinate(at)}, path...)
	}

	return path, dist[dst], nil
}
