package braid

// Permutation maps 1-based strand indices to 1-based positions.
// Index 0 is unused so the representation matches the generator
// numbering. Identity(n) maps every strand to its own position.
type Permutation []int

// Identity returns the identity permutation on n strands.
func Identity(n int) Permutation {
	p := make(Permutation, n+1)
	for i := range p {
		p[i] = i
	}
	return p
}

// Pos returns the current position of strand i.
func (p Permutation) Pos(i int) int { return p[i] }

// SwapStrands exchanges the positions of strands i and j in place.
// This is the update applied after emitting a crossing generator: the
// two strands trade places and every later distance computation sees
// the new arrangement.
func (p Permutation) SwapStrands(i, j int) {
	p[i], p[j] = p[j], p[i]
}

// InducedPermutation returns the permutation of strand positions induced
// by a braid word on n strands: generator k transposes positions k and
// k+1. The word is read left to right.
func InducedPermutation(w Word, n int) Permutation {
	// track which strand occupies each position
	at := make([]int, n+1)
	for i := range at {
		at[i] = i
	}
	for _, g := range w {
		k := g
		if k < 0 {
			k = -k
		}
		at[k], at[k+1] = at[k+1], at[k]
	}
	p := Identity(n)
	for pos := 1; pos <= n; pos++ {
		p[at[pos]] = pos
	}
	return p
}
