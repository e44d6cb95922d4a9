package numeric

import (
	"errors"
	"math"
	"math/big"
	"testing"
)

func pointCoeff(prec uint, re float64) Complex {
	return ComplexPoint(prec, big.NewFloat(re), new(big.Float))
}

func TestTrackSqrtFamily(t *testing.T) {
	// g(t,y) = y^2 - (1+t): the root starting at 1 ends at sqrt(2).
	const prec = 64
	recs := []CoeffRecord{
		{DegY: 2, DegT: 0, Coeff: pointCoeff(prec, 1)},
		{DegY: 0, DegT: 0, Coeff: pointCoeff(prec, -1)},
		{DegY: 0, DegT: 1, Coeff: pointCoeff(prec, -1)},
	}
	samples, err := Track(2, recs, big.NewFloat(1), new(big.Float), prec)
	if err != nil {
		t.Fatalf("Track: %v", err)
	}
	if len(samples) < 2 {
		t.Fatalf("got %d samples, want at least 2", len(samples))
	}
	if samples[0].T != 0 || samples[len(samples)-1].T != 1 {
		t.Errorf("endpoints t = %v .. %v, want 0 .. 1", samples[0].T, samples[len(samples)-1].T)
	}
	for i := 1; i < len(samples); i++ {
		if samples[i].T <= samples[i-1].T {
			t.Fatalf("sample times not strictly increasing at index %d", i)
		}
	}
	for _, s := range samples {
		want := math.Sqrt(1 + s.T)
		if math.Abs(s.Re-want) > 1e-9 || math.Abs(s.Im) > 1e-9 {
			t.Errorf("at t=%v: (%v, %v), want (%v, 0)", s.T, s.Re, s.Im, want)
		}
	}
}

func TestTrackNegativeBranch(t *testing.T) {
	// The root starting at -1 must stay on the negative branch.
	const prec = 64
	recs := []CoeffRecord{
		{DegY: 2, DegT: 0, Coeff: pointCoeff(prec, 1)},
		{DegY: 0, DegT: 0, Coeff: pointCoeff(prec, -1)},
		{DegY: 0, DegT: 1, Coeff: pointCoeff(prec, -1)},
	}
	samples, err := Track(2, recs, big.NewFloat(-1), new(big.Float), prec)
	if err != nil {
		t.Fatalf("Track: %v", err)
	}
	last := samples[len(samples)-1]
	if math.Abs(last.Re+math.Sqrt2) > 1e-9 {
		t.Errorf("final value %v, want -sqrt(2)", last.Re)
	}
}

func TestTrackFailsAtBranchPoint(t *testing.T) {
	// g(t,y) = y^2 - t has a double root at t=0; the derivative vanishes
	// there and no certification is possible at any precision.
	const prec = 64
	recs := []CoeffRecord{
		{DegY: 2, DegT: 0, Coeff: pointCoeff(prec, 1)},
		{DegY: 0, DegT: 1, Coeff: pointCoeff(prec, -1)},
	}
	_, err := Track(2, recs, new(big.Float), new(big.Float), prec)
	if !errors.Is(err, ErrCertification) {
		t.Fatalf("err = %v, want ErrCertification", err)
	}
}

func TestTrackLinearFamily(t *testing.T) {
	// g(t,y) = y - t: the single root moves from 0 to 1.
	const prec = 53
	recs := []CoeffRecord{
		{DegY: 1, DegT: 0, Coeff: pointCoeff(prec, 1)},
		{DegY: 0, DegT: 1, Coeff: pointCoeff(prec, -1)},
	}
	samples, err := Track(1, recs, new(big.Float), new(big.Float), prec)
	if err != nil {
		t.Fatalf("Track: %v", err)
	}
	for _, s := range samples {
		if math.Abs(s.Re-s.T) > 1e-9 {
			t.Errorf("at t=%v: Re=%v, want %v", s.T, s.Re, s.T)
		}
	}
}
