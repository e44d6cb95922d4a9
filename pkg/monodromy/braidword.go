package monodromy

import (
	"sort"

	"github.com/algcurve/vankampen/pkg/braid"
)

// strandPoint is one plotted position of a strand at a grid time.
type strandPoint struct {
	re, im float64
}

func (p strandPoint) less(q strandPoint) bool {
	if p.re != q.re {
		return p.re < q.re
	}
	return p.im < q.im
}

// BraidFromStrands linearizes the crossing pattern of piecewise linear
// strands into a braid word. Every strand runs from t=0 to t=1; the
// strands are first resampled onto the union of their time grids, then
// each consecutive grid slice is scanned for order flips in the
// lexicographic (re, im) ordering.
//
// For a flip between slice-sorted strands k < j the crossing time t* is
// interpolated from the real-part projections (t* = 1/2 when both real
// parts are constant across the slice) and the generator sign is the
// comparison of the two interpolated imaginary parts at t*. Crossings
// are emitted in increasing t*; crossings sharing a t* are resolved
// greedily, always emitting the pending crossing whose strands are
// closest in the running position permutation, re-scoring the rest
// after each transposition. The emitted generator index is the smaller
// of the two strand positions at emission time.
//
// The word is empty when no strand ever overtakes another.
func BraidFromStrands(strands []Strand) braid.Word {
	if len(strands) < 2 {
		return nil
	}
	grid := mergeGrids(strands)

	var word braid.Word
	n := len(strands)
	for i := 0; i+1 < len(grid); i++ {
		word = append(word, sliceCrossings(grid[i], grid[i+1], n)...)
	}
	return word
}

// mergeGrids resamples all strands onto the union of their time grids by
// linear interpolation. grid[i][j] is strand j's position at slice i.
func mergeGrids(strands []Strand) [][]strandPoint {
	n := len(strands)
	idx := make([]int, n)
	for j := range idx {
		idx[j] = 1
	}
	cur := strands[0][1].T
	for _, s := range strands[1:] {
		if s[1].T < cur {
			cur = s[1].T
		}
	}

	grid := [][]strandPoint{make([]strandPoint, n)}
	for j, s := range strands {
		grid[0][j] = strandPoint{s[0].Re, s[0].Im}
	}
	for cur < 1 {
		slice := make([]strandPoint, n)
		for j, s := range strands {
			if s[idx[j]].T > cur {
				a, b := s[idx[j]-1], s[idx[j]]
				frac := (cur - a.T) / (b.T - a.T)
				slice[j] = strandPoint{
					re: a.Re + (b.Re-a.Re)*frac,
					im: a.Im + (b.Im-a.Im)*frac,
				}
			} else {
				slice[j] = strandPoint{s[idx[j]].Re, s[idx[j]].Im}
				idx[j]++
			}
		}
		grid = append(grid, slice)
		cur = strands[0][idx[0]].T
		for j, s := range strands[1:] {
			if s[idx[j+1]].T < cur {
				cur = s[idx[j+1]].T
			}
		}
	}
	last := make([]strandPoint, n)
	for j, s := range strands {
		last[j] = strandPoint{s[len(s)-1].Re, s[len(s)-1].Im}
	}
	grid = append(grid, last)
	return grid
}

// crossing is an order flip inside one slice: sorted strands k < j swap,
// at fraction t of the slice, with the given generator sign.
type crossing struct {
	t    float64
	k, j int
	sign int
}

// sliceCrossings returns the generators emitted between two consecutive
// slices.
func sliceCrossings(l1, l2 []strandPoint, n int) braid.Word {
	// Sort strands by their slice-start position (slice-end breaks ties)
	// so that an inversion at the slice end is exactly a crossing.
	order := make([]int, n)
	for s := range order {
		order[s] = s
	}
	sort.Slice(order, func(a, b int) bool {
		pa, pb := l1[order[a]], l1[order[b]]
		if pa != pb {
			return pa.less(pb)
		}
		return l2[order[a]].less(l2[order[b]])
	})
	s1 := make([]strandPoint, n)
	s2 := make([]strandPoint, n)
	for rank, s := range order {
		s1[rank] = l1[s]
		s2[rank] = l2[s]
	}

	var crossings []crossing
	for j := 0; j < n; j++ {
		for k := 0; k < j; k++ {
			if !s2[j].less(s2[k]) {
				continue
			}
			den := s2[k].re - s1[k].re + s1[j].re - s2[j].re
			t := 0.5
			if den != 0 {
				t = (s1[j].re - s1[k].re) / den
			}
			yk := s1[k].im*(1-t) + t*s2[k].im
			yj := s1[j].im*(1-t) + t*s2[j].im
			sign := 1
			if yk > yj {
				sign = -1
			}
			crossings = append(crossings, crossing{t: t, k: k, j: j, sign: sign})
		}
	}
	if len(crossings) == 0 {
		return nil
	}
	sort.Slice(crossings, func(a, b int) bool {
		ca, cb := crossings[a], crossings[b]
		if ca.t != cb.t {
			return ca.t < cb.t
		}
		if ca.k != cb.k {
			return ca.k < cb.k
		}
		if ca.j != cb.j {
			return ca.j < cb.j
		}
		return ca.sign < cb.sign
	})

	var word braid.Word
	perm := braid.Identity(n)
	for len(crossings) > 0 {
		g := 1
		for g < len(crossings) && crossings[g].t == crossings[0].t {
			g++
		}
		pending := append([]crossing(nil), crossings[:g]...)
		crossings = crossings[g:]
		word = append(word, resolveSimultaneous(pending, perm)...)
	}
	return word
}

// resolveSimultaneous orders crossings that share a crossing time. The
// interpolated geometry cannot order them, so they are resolved
// greedily: emit the pending crossing whose two strands sit closest in
// the running permutation (position distance, then strand indices, then
// sign), transpose, and re-score the remainder. The result depends only
// on this fixed convention, keeping the word reproducible across runs.
func resolveSimultaneous(pending []crossing, perm braid.Permutation) braid.Word {
	var word braid.Word
	for len(pending) > 0 {
		sort.Slice(pending, func(a, b int) bool {
			ca, cb := pending[a], pending[b]
			da := perm.Pos(ca.j+1) - perm.Pos(ca.k+1)
			db := perm.Pos(cb.j+1) - perm.Pos(cb.k+1)
			if da != db {
				return da < db
			}
			if ca.k != cb.k {
				return ca.k < cb.k
			}
			if ca.j != cb.j {
				return ca.j < cb.j
			}
			return ca.sign < cb.sign
		})
		c := pending[0]
		pending = pending[1:]
		pk, pj := perm.Pos(c.k+1), perm.Pos(c.j+1)
		gen := pk
		if pj < pk {
			gen = pj
		}
		word = append(word, c.sign*gen)
		perm.SwapStrands(c.k+1, c.j+1)
	}
	return word
}
