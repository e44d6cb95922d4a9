package monodromy

import (
	"math"
	"math/cmplx"
)

// Bowyer–Watson Delaunay triangulation in the complex plane. The Voronoi
// diagram used by the path network is read off as the dual: circumcenters
// of adjacent triangles. Point counts here are tiny (branch points plus
// four padding points), so the incremental O(n²) construction is fine.

type triangle struct {
	a, b, c int // indices into the point slice, sorted ascending
}

type triEdge struct {
	u, v int // sorted pair
}

func newTriangle(a, b, c int) triangle {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return triangle{a, b, c}
}

func (t triangle) edges() [3]triEdge {
	return [3]triEdge{{t.a, t.b}, {t.a, t.c}, {t.b, t.c}}
}

func (t triangle) has(i int) bool { return t.a == i || t.b == i || t.c == i }

// circumcenter returns the center of the circle through a, b, c and
// false when the points are (numerically) collinear.
func circumcenter(a, b, c complex128) (complex128, bool) {
	ax, ay := real(a), imag(a)
	bx, by := real(b), imag(b)
	cx, cy := real(c), imag(c)
	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	scale := math.Max(cmplx.Abs(b-a), cmplx.Abs(c-a))
	if math.Abs(d) < 1e-12*scale*scale {
		return 0, false
	}
	a2 := ax*ax + ay*ay
	b2 := bx*bx + by*by
	c2 := cx*cx + cy*cy
	ux := (a2*(by-cy) + b2*(cy-ay) + c2*(ay-by)) / d
	uy := (a2*(cx-bx) + b2*(ax-cx) + c2*(bx-ax)) / d
	return complex(ux, uy), true
}

// inCircumcircle reports whether p lies strictly inside the circumcircle
// of the triangle.
func inCircumcircle(a, b, c, p complex128) bool {
	center, ok := circumcenter(a, b, c)
	if !ok {
		return false
	}
	return cmplx.Abs(p-center) < cmplx.Abs(a-center)*(1+1e-12)
}

// delaunay triangulates the points and returns triangles indexing into
// pts. Triangles touching the synthetic super-triangle are dropped.
func delaunay(pts []complex128) []triangle {
	n := len(pts)
	if n < 3 {
		return nil
	}

	// bounding super-triangle
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX = math.Min(minX, real(p))
		maxX = math.Max(maxX, real(p))
		minY = math.Min(minY, imag(p))
		maxY = math.Max(maxY, imag(p))
	}
	span := math.Max(maxX-minX, maxY-minY) + 1
	midX, midY := (minX+maxX)/2, (minY+maxY)/2
	all := make([]complex128, n, n+3)
	copy(all, pts)
	all = append(all,
		complex(midX-40*span, midY-span),
		complex(midX+40*span, midY-span),
		complex(midX, midY+40*span),
	)
	tris := []triangle{newTriangle(n, n+1, n+2)}

	for i := 0; i < n; i++ {
		p := all[i]
		var bad []triangle
		var keep []triangle
		for _, t := range tris {
			if inCircumcircle(all[t.a], all[t.b], all[t.c], p) {
				bad = append(bad, t)
			} else {
				keep = append(keep, t)
			}
		}
		// boundary of the cavity: edges belonging to exactly one bad triangle
		edgeCount := make(map[triEdge]int)
		for _, t := range bad {
			for _, e := range t.edges() {
				edgeCount[e]++
			}
		}
		tris = keep
		for _, t := range bad {
			for _, e := range t.edges() {
				if edgeCount[e] == 1 {
					tris = append(tris, newTriangle(e.u, e.v, i))
				}
			}
		}
	}

	out := tris[:0]
	for _, t := range tris {
		if t.has(n) || t.has(n+1) || t.has(n+2) {
			continue
		}
		out = append(out, t)
	}
	return out
}
