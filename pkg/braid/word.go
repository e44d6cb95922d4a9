package braid

import (
	"strconv"
	"strings"
)

// Word is a group word: signed 1-based generator indices composed left
// to right. The zero value is the identity.
type Word []int

// Inverse returns the inverse word (reversed with flipped signs).
func (w Word) Inverse() Word {
	inv := make(Word, len(w))
	for i, g := range w {
		inv[len(w)-1-i] = -g
	}
	return inv
}

// Compose concatenates words and freely reduces the result.
func Compose(words ...Word) Word {
	var out Word
	for _, w := range words {
		for _, g := range w {
			if n := len(out); n > 0 && out[n-1] == -g {
				out = out[:n-1]
			} else {
				out = append(out, g)
			}
		}
	}
	return out
}

// FreeReduce cancels adjacent inverse pairs until none remain.
func (w Word) FreeReduce() Word {
	return Compose(w)
}

// CyclicReduce removes matching inverse pairs from the two ends of an
// already freely reduced word. Conjugate words reduce to the same length.
func (w Word) CyclicReduce() Word {
	r := w.FreeReduce()
	for len(r) >= 2 && r[0] == -r[len(r)-1] {
		r = r[1 : len(r)-1]
	}
	return r
}

// IsIdentity reports whether the word freely reduces to the identity.
func (w Word) IsIdentity() bool { return len(w.FreeReduce()) == 0 }

// MaxGenerator returns the largest generator index referenced, or 0 for
// the identity.
func (w Word) MaxGenerator() int {
	m := 0
	for _, g := range w {
		if g < 0 {
			g = -g
		}
		if g > m {
			m = g
		}
	}
	return m
}

// Reindex returns the word with every generator mapped through fn, which
// receives the absolute index and returns the new absolute index. Signs
// are preserved.
func (w Word) Reindex(fn func(int) int) Word {
	out := make(Word, len(w))
	for i, g := range w {
		if g > 0 {
			out[i] = fn(g)
		} else {
			out[i] = -fn(-g)
		}
	}
	return out
}

// Clone returns a copy of w.
func (w Word) Clone() Word {
	c := make(Word, len(w))
	copy(c, w)
	return c
}

// Equal reports element-wise equality (no reduction is applied).
func (w Word) Equal(v Word) bool {
	if len(w) != len(v) {
		return false
	}
	for i := range w {
		if w[i] != v[i] {
			return false
		}
	}
	return true
}

// String formats the word as generator symbols, e.g. "s1*s2^-1".
// The identity formats as "1".
func (w Word) String() string {
	if len(w) == 0 {
		return "1"
	}
	parts := make([]string, len(w))
	for i, g := range w {
		if g > 0 {
			parts[i] = "s" + strconv.Itoa(g)
		} else {
			parts[i] = "s" + strconv.Itoa(-g) + "^-1"
		}
	}
	return strings.Join(parts, "*")
}
