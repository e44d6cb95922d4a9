package braid

import (
	"strings"
	"testing"
)

func TestPresentationValidate(t *testing.T) {
	p := Presentation{NumGenerators: 2, Relators: []Word{{1, -2}}}
	if err := p.Validate(); err != nil {
		t.Errorf("valid presentation: %v", err)
	}

	p = Presentation{NumGenerators: 2, Relators: []Word{{1, 3}}}
	if err := p.Validate(); err == nil {
		t.Error("out-of-range generator should fail validation")
	}

	p = Presentation{NumGenerators: 2, Relators: []Word{{1, 0}}}
	if err := p.Validate(); err == nil {
		t.Error("zero generator index should fail validation")
	}
}

func TestPresentationString(t *testing.T) {
	p := Presentation{NumGenerators: 2, Relators: []Word{{1, -2}}}
	s := p.String()
	for _, sub := range []string{"s1", "s2", "|", "s1*s2^-1"} {
		if !strings.Contains(s, sub) {
			t.Errorf("String() = %q, missing %q", s, sub)
		}
	}
}

func TestSimplifiedTrivialGenerators(t *testing.T) {
	// s1 = 1 and s1*s2 = 1 force both generators trivial.
	p := Presentation{NumGenerators: 2, Relators: []Word{{1}, {1, 2}}}
	s := p.Simplified()
	if s.NumGenerators != 0 || len(s.Relators) != 0 {
		t.Errorf("Simplified = %v, want the trivial presentation", s)
	}
}

func TestSimplifiedIdentification(t *testing.T) {
	// s2*s1^-1 = 1 identifies the generators, leaving a free group of rank 1.
	p := Presentation{NumGenerators: 2, Relators: []Word{{2, -1}}}
	s := p.Simplified()
	if s.NumGenerators != 1 || len(s.Relators) != 0 {
		t.Errorf("Simplified = %v, want 1 generator and no relators", s)
	}
}

func TestSimplifiedSingleOccurrenceElimination(t *testing.T) {
	// s1 occurs once in s2*s1*s2, so it can be expressed in s2 and dropped.
	p := Presentation{NumGenerators: 2, Relators: []Word{{2, 1, 2}}}
	s := p.Simplified()
	if s.NumGenerators != 1 || len(s.Relators) != 0 {
		t.Errorf("Simplified = %v, want a free group of rank 1", s)
	}
}

func TestSimplifiedDedupe(t *testing.T) {
	// three copies of the same relator up to rotation and inversion
	p := Presentation{NumGenerators: 2, Relators: []Word{
		{1, 2, 1, 2},
		{2, 1, 2, 1},
		{-1, -2, -1, -2},
	}}
	s := p.Simplified()
	if s.NumGenerators != 2 || len(s.Relators) != 1 {
		t.Errorf("Simplified = %v, want 2 generators and 1 relator", s)
	}
}

func TestSimplifiedKeepsBraidRelator(t *testing.T) {
	// the trefoil relator s1*s2*s1*s2^-1*s1^-1*s2^-1 has no single-occurrence
	// generator, so simplification must not change the presentation's shape
	p := Presentation{NumGenerators: 2, Relators: []Word{{1, 2, 1, -2, -1, -2}}}
	s := p.Simplified()
	if s.NumGenerators != 2 || len(s.Relators) != 1 {
		t.Errorf("Simplified = %v, want 2 generators and 1 relator", s)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate after Simplified: %v", err)
	}
}

func TestSimplifiedIdempotent(t *testing.T) {
	p := Presentation{NumGenerators: 3, Relators: []Word{
		{1, 2, 1, -2, -1, -2},
		{3, -1},
	}}
	once := p.Simplified()
	twice := once.Simplified()
	if once.NumGenerators != twice.NumGenerators || len(once.Relators) != len(twice.Relators) {
		t.Fatalf("not idempotent: %v vs %v", once, twice)
	}
	for i := range once.Relators {
		if !once.Relators[i].Equal(twice.Relators[i]) {
			t.Errorf("relator %d changed on second pass", i)
		}
	}
}
