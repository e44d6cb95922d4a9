package braid

import (
	"fmt"
	"sort"
	"strings"
)

// Presentation is a finite group presentation: generators 1..NumGenerators
// and a set of relator words over them.
type Presentation struct {
	NumGenerators int
	Relators      []Word
}

// Validate checks that every relator references only declared generators.
func (p Presentation) Validate() error {
	for i, r := range p.Relators {
		if m := r.MaxGenerator(); m > p.NumGenerators {
			return fmt.Errorf("relator %d references generator %d of %d", i, m, p.NumGenerators)
		}
		for _, g := range r {
			if g == 0 {
				return fmt.Errorf("relator %d contains generator index 0", i)
			}
		}
	}
	return nil
}

// String formats the presentation in angle-bracket notation.
func (p Presentation) String() string {
	gens := make([]string, p.NumGenerators)
	for i := range gens {
		gens[i] = fmt.Sprintf("s%d", i+1)
	}
	rels := make([]string, len(p.Relators))
	for i, r := range p.Relators {
		rels[i] = r.String()
	}
	return fmt.Sprintf("< %s | %s >", strings.Join(gens, ", "), strings.Join(rels, ", "))
}

// canonicalKey returns a rotation- and inversion-invariant key for a
// cyclically reduced relator, used to deduplicate equivalent relators.
func canonicalKey(w Word) string {
	if len(w) == 0 {
		return ""
	}
	best := ""
	for _, base := range []Word{w, w.Inverse()} {
		for shift := 0; shift < len(base); shift++ {
			var b strings.Builder
			for k := 0; k < len(base); k++ {
				fmt.Fprintf(&b, "%d,", base[(shift+k)%len(base)])
			}
			if s := b.String(); best == "" || s < best {
				best = s
			}
		}
	}
	return best
}

// Simplified returns a Tietze-reduced presentation: relators are freely
// and cyclically reduced and deduplicated up to rotation and inversion,
// generators defined by a relator in which they occur exactly once are
// eliminated by substitution, and generators forced trivial by a
// length-one relator are removed. Surviving generators are renumbered
// consecutively. The group is unchanged up to isomorphism, but the
// surviving generators are no longer guaranteed to be meridians.
func (p Presentation) Simplified() Presentation {
	alive := make([]bool, p.NumGenerators+1)
	for i := 1; i <= p.NumGenerators; i++ {
		alive[i] = true
	}
	rels := make([]Word, 0, len(p.Relators))
	for _, r := range p.Relators {
		rels = append(rels, r.CyclicReduce())
	}

	for pass := 0; pass <= p.NumGenerators; pass++ {
		rels = dedupe(rels)
		idx, gen, repl := findElimination(rels)
		if idx < 0 {
			break
		}
		alive[gen] = false
		next := make([]Word, 0, len(rels)-1)
		for i, r := range rels {
			if i == idx {
				continue
			}
			next = append(next, substitute(r, gen, repl).CyclicReduce())
		}
		rels = next
	}
	rels = dedupe(rels)

	// renumber surviving generators consecutively
	remap := make([]int, p.NumGenerators+1)
	n := 0
	for i := 1; i <= p.NumGenerators; i++ {
		if alive[i] {
			n++
			remap[i] = n
		}
	}
	out := Presentation{NumGenerators: n, Relators: make([]Word, len(rels))}
	for i, r := range rels {
		out.Relators[i] = r.Reindex(func(g int) int { return remap[g] })
	}
	sort.Slice(out.Relators, func(i, j int) bool {
		return canonicalKey(out.Relators[i]) < canonicalKey(out.Relators[j])
	})
	return out
}

// dedupe drops identity relators and duplicates up to rotation/inversion.
func dedupe(rels []Word) []Word {
	seen := make(map[string]bool)
	out := rels[:0]
	for _, r := range rels {
		if len(r) == 0 {
			continue
		}
		key := canonicalKey(r)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	return out
}

// findElimination locates a relator that defines one of its generators:
// either a length-one relator (the generator is trivial) or a relator in
// which some generator occurs exactly once. It returns the relator
// index, the generator, and the replacement word (empty for trivial
// generators), or (-1, 0, nil) when no elimination applies.
func findElimination(rels []Word) (int, int, Word) {
	for i, r := range rels {
		if len(r) == 1 {
			g := r[0]
			if g < 0 {
				g = -g
			}
			return i, g, nil
		}
	}
	for i, r := range rels {
		counts := make(map[int]int)
		for _, g := range r {
			if g < 0 {
				g = -g
			}
			counts[g]++
		}
		// deterministic choice: smallest single-occurrence generator
		best := 0
		for g, c := range counts {
			if c == 1 && (best == 0 || g < best) {
				best = g
			}
		}
		if best == 0 {
			continue
		}
		// rotate so the occurrence leads: r = g^s · w, hence g = (w⁻¹)^s
		pos, sign := 0, 0
		for k, g := range r {
			if g == best || g == -best {
				pos = k
				if g > 0 {
					sign = 1
				} else {
					sign = -1
				}
				break
			}
		}
		w := make(Word, 0, len(r)-1)
		for k := 1; k < len(r); k++ {
			w = append(w, r[(pos+k)%len(r)])
		}
		repl := w.Inverse()
		if sign < 0 {
			repl = w
		}
		return i, best, repl
	}
	return -1, 0, nil
}

// substitute replaces every occurrence of ±gen in r with the replacement
// word (or its inverse). A nil replacement deletes the occurrences.
func substitute(r Word, gen int, repl Word) Word {
	var out Word
	inv := repl.Inverse()
	for _, g := range r {
		switch {
		case g == gen:
			out = append(out, repl...)
		case g == -gen:
			out = append(out, inv...)
		default:
			out = append(out, g)
		}
	}
	return out.FreeReduce()
}
