// Package geom provides the small amount of planar geometry the visualizer
// shells need: points and vectors, segments, circle/segment intersection,
// and integer grid cells used by grid heuristics.
//
// Every function is pure: no state, no allocation beyond return values.
//
// Contracts:
//
//	Dist(a,b)            – Euclidean length of b−a.
//	Lerp(a,b,t)          – a + t·(b−a); t is not clamped.
//	Intersect(s1,s2)     – intersection point of two closed segments, ok=false when parallel or disjoint.
//	CircleExit(c,r,to)   – point where the ray c→to leaves the circle (c,r); used to trim edges to node rims.
//	CircleSegment(c,r,s) – 0, 1 or 2 points where segment s crosses the circle boundary, ordered along s.
package geom

import "math"

// eps is the tolerance used for parallelism and on-segment checks.
const eps = 1e-9

// Point is a position or a vector in canvas space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p−q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p·k.
func (p Point) Scale(k float64) Point { return Point{p.X * k, p.Y * k} }

// Dot returns the dot product p·q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Cross returns the z component of p×q.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Len returns the Euclidean norm of p.
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

// Unit returns p scaled to length 1. The zero vector is returned unchanged.
func (p Point) Unit() Point {
	l := p.Len()
	if l < eps {
		return p
	}

	return p.Scale(1 / l)
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Point) float64 { return b.Sub(a).Len() }

// Lerp interpolates between a (t=0) and b (t=1).
func Lerp(a, b Point, t float64) Point {
	return Point{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point { return Lerp(a, b, 0.5) }

// Segment is the closed line segment A–B.
type Segment struct {
	A, B Point
}

// Len returns the segment length.
func (s Segment) Len() float64 { return Dist(s.A, s.B) }

// At returns the point at parameter t along the segment.
func (s Segment) At(t float64) Point { return Lerp(s.A, s.B, t) }

// Closest returns the point of s nearest to p.
func (s Segment) Closest(p Point) Point {
	d := s.B.Sub(s.A)
	l2 := d.Dot(d)
	if l2 < eps {
		return s.A
	}
	t := p.Sub(s.A).Dot(d) / l2
	switch {
	case t < 0:
		t = 0
	case t > 1:
		t = 1
	}

	return s.At(t)
}

// DistTo returns the distance from p to the nearest point of s.
// Shells use it for edge hit-testing.
func (s Segment) DistTo(p Point) float64 { return Dist(p, s.Closest(p)) }

// Intersect returns the intersection point of s1 and s2.
// Parallel (including collinear) segments report ok=false.
func Intersect(s1, s2 Segment) (Point, bool) {
	r := s1.B.Sub(s1.A)
	q := s2.B.Sub(s2.A)
	den := r.Cross(q)
	if math.Abs(den) < eps {
		return Point{}, false
	}
	w := s2.A.Sub(s1.A)
	t := w.Cross(q) / den
	u := w.Cross(r) / den
	if t < -eps || t > 1+eps || u < -eps || u > 1+eps {
		return Point{}, false
	}

	return s1.At(t), true
}

// CircleExit returns the point on the boundary of the circle (c, r) in the
// direction of to. When to coincides with c the rightmost rim point is returned.
func CircleExit(c Point, r float64, to Point) Point {
	d := to.Sub(c)
	if d.Len() < eps {
		return Point{c.X + r, c.Y}
	}

	return c.Add(d.Unit().Scale(r))
}

// EdgeBetween trims the segment joining two circle centers so that it starts
// and ends on the circle rims. Overlapping circles yield a zero-length segment
// at the midpoint.
func EdgeBetween(a Point, ra float64, b Point, rb float64) Segment {
	if Dist(a, b) <= ra+rb {
		m := Midpoint(a, b)
		return Segment{m, m}
	}

	return Segment{CircleExit(a, ra, b), CircleExit(b, rb, a)}
}

// CircleSegment returns the points where s crosses the boundary of the
// circle (c, r), ordered from s.A to s.B. Tangency yields a single point.
func CircleSegment(c Point, r float64, s Segment) []Point {
	d := s.B.Sub(s.A)
	f := s.A.Sub(c)
	a := d.Dot(d)
	if a < eps {
		return nil
	}
	b := 2 * f.Dot(d)
	k := f.Dot(f) - r*r
	disc := b*b - 4*a*k
	if disc < -eps {
		return nil
	}
	if disc < eps {
		t := -b / (2 * a)
		if t < -eps || t > 1+eps {
			return nil
		}
		return []Point{s.At(t)}
	}

	sq := math.Sqrt(disc)
	out := make([]Point, 0, 2)
	for _, t := range [2]float64{(-b - sq) / (2 * a), (-b + sq) / (2 * a)} {
		if t >= -eps && t <= 1+eps {
			out = append(out, s.At(t))
		}
	}

	return out
}

// InCircle reports whether p lies inside or on the circle (c, r).
func InCircle(c Point, r float64, p Point) bool { return Dist(c, p) <= r+eps }
