package monodromy

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/algcurve/vankampen/pkg/algebra"
)

// Network is the path skeleton in the x-plane: vertices and segments of
// the bounded Voronoi ridges of the branch points. Every segment stays
// maximally far from the branch points on either side, so fiber roots
// never collide while a strand is tracked along it.
//
// Vertices are exact Gaussian rationals (the float Voronoi vertices
// rationalized), sorted lexicographically; Points holds their float
// shadows under the same indexing. Segments are index pairs with
// Segments[k][0] < Segments[k][1], sorted, so two runs over the same
// branch points produce the identical network.
type Network struct {
	Vertices []algebra.Gaussian
	Points   []complex128
	Segments [][2]int
	Branch   []complex128
}

// Basepoint returns the index of the distinguished vertex used for the
// projective relator and as the root of the generator numbering.
func (n *Network) Basepoint() int { return 0 }

// BuildNetwork computes the path network for the given branch points.
//
// The branch points are padded with four axis points at distance
// R = 3·max|p|+1 so that every branch point is enclosed by bounded
// Voronoi cells. The Voronoi diagram is the dual of the Delaunay
// triangulation: each finite triangle contributes its circumcenter as a
// vertex, and each pair of triangles sharing an edge contributes the
// ridge between their circumcenters.
//
// Degenerate inputs still yield a usable network: with no branch points
// the fibration is trivial and the network is the single basepoint at
// the origin with no segments.
func BuildNetwork(branch []complex128) *Network {
	if len(branch) == 0 {
		return &Network{
			Vertices: []algebra.Gaussian{algebra.Zero()},
			Points:   []complex128{0},
			Branch:   nil,
		}
	}

	maxmod := 0.0
	for _, p := range branch {
		maxmod = math.Max(maxmod, cmplx.Abs(p))
	}
	radius := 3*maxmod + 1
	pts := make([]complex128, 0, len(branch)+4)
	pts = append(pts, branch...)
	pts = append(pts,
		complex(radius, 0), complex(-radius, 0),
		complex(0, radius), complex(0, -radius),
	)

	tris := delaunay(pts)

	// Dedupe circumcenters: cocircular point groups (the symmetric
	// padding points among them) split into triangles sharing one
	// center, which would otherwise yield zero-length ridges.
	quantum := radius * 1e-9
	type qkey struct{ re, im int64 }
	quantize := func(z complex128) qkey {
		return qkey{
			re: int64(math.Round(real(z) / quantum)),
			im: int64(math.Round(imag(z) / quantum)),
		}
	}
	centerID := make(map[qkey]int)
	var centers []complex128
	triCenter := make([]int, len(tris)) // triangle index -> vertex id, -1 if degenerate
	for i, t := range tris {
		c, ok := circumcenter(pts[t.a], pts[t.b], pts[t.c])
		if !ok {
			triCenter[i] = -1
			continue
		}
		k := quantize(c)
		id, seen := centerID[k]
		if !seen {
			id = len(centers)
			centerID[k] = id
			centers = append(centers, c)
		}
		triCenter[i] = id
	}

	// Bounded ridges: Delaunay edges shared by two finite triangles.
	edgeTris := make(map[triEdge][]int)
	for i, t := range tris {
		if triCenter[i] < 0 {
			continue
		}
		for _, e := range t.edges() {
			edgeTris[e] = append(edgeTris[e], i)
		}
	}
	segSet := make(map[[2]int]bool)
	for _, owners := range edgeTris {
		if len(owners) != 2 {
			continue
		}
		u, v := triCenter[owners[0]], triCenter[owners[1]]
		if u == v {
			continue
		}
		if u > v {
			u, v = v, u
		}
		segSet[[2]int{u, v}] = true
	}

	// Rationalize and sort the vertices canonically, then remap.
	exact := make([]algebra.Gaussian, len(centers))
	order := make([]int, len(centers))
	for i, c := range centers {
		exact[i] = algebra.GaussianFloat(real(c), imag(c))
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return exact[order[i]].Cmp(exact[order[j]]) < 0
	})
	remap := make([]int, len(centers))
	net := &Network{
		Vertices: make([]algebra.Gaussian, len(centers)),
		Points:   make([]complex128, len(centers)),
		Branch:   branch,
	}
	for rank, old := range order {
		remap[old] = rank
		net.Vertices[rank] = exact[old]
		net.Points[rank] = exact[old].Complex128()
	}
	for s := range segSet {
		u, v := remap[s[0]], remap[s[1]]
		if u > v {
			u, v = v, u
		}
		net.Segments = append(net.Segments, [2]int{u, v})
	}
	sort.Slice(net.Segments, func(i, j int) bool {
		if net.Segments[i][0] != net.Segments[j][0] {
			return net.Segments[i][0] < net.Segments[j][0]
		}
		return net.Segments[i][1] < net.Segments[j][1]
	})
	return net
}
