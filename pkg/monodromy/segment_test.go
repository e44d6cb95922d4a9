package monodromy

import (
	"testing"

	"github.com/algcurve/vankampen/pkg/algebra"
	"github.com/algcurve/vankampen/pkg/errors"
)

func TestCorrectionBraidIdentity(t *testing.T) {
	roots := []complex128{-1, 1}
	approx := []complex128{complex(-1.01, 0.005), complex(0.99, -0.002)}
	w, err := correctionBraid(roots, approx, false)
	if err != nil {
		t.Fatalf("correctionBraid: %v", err)
	}
	if !w.IsIdentity() {
		t.Errorf("nearby matching gave %v, want the identity", w)
	}
}

func TestCorrectionBraidAmbiguous(t *testing.T) {
	// both approximations are nearest to the same root
	roots := []complex128{0, 100}
	approx := []complex128{complex(0.1, 0), complex(0.2, 0)}
	_, err := correctionBraid(roots, approx, true)
	if err == nil {
		t.Fatal("expected an error for a double match")
	}
	if !errors.Is(err, errors.ErrCodeAmbiguousRoot) {
		t.Errorf("code = %v, want AMBIGUOUS_ROOT", errors.GetCode(err))
	}
}

func TestSegmentBraidSmoothLine(t *testing.T) {
	// y - x: one sheet, so every segment braid is trivial
	f := algebra.BiPolyFromTerms([]algebra.Term{
		{Coeff: algebra.One(), DegY: 1},
		{Coeff: algebra.GaussianInt(-1, 0), DegX: 1},
	})
	w, err := SegmentBraid(f, algebra.Zero(), algebra.One(), 53, 4096)
	if err != nil {
		t.Fatalf("SegmentBraid: %v", err)
	}
	if !w.IsIdentity() {
		t.Errorf("got %v, want the identity", w)
	}
}

func TestSegmentBraidConicAwayFromBranchPoint(t *testing.T) {
	// y^2 - x between x=1 and x=4: both sheets stay real and separated,
	// so the strands never cross.
	f := algebra.BiPolyFromTerms([]algebra.Term{
		{Coeff: algebra.One(), DegY: 2},
		{Coeff: algebra.GaussianInt(-1, 0), DegX: 1},
	})
	w, err := SegmentBraid(f, algebra.One(), algebra.GaussianInt(4, 0), 53, 4096)
	if err != nil {
		t.Fatalf("SegmentBraid: %v", err)
	}
	if !w.IsIdentity() {
		t.Errorf("got %v, want the identity", w)
	}
}

func TestSubstituteLine(t *testing.T) {
	// f = y^2 - x along x(t) = 1 + 3t gives g(t,y) = y^2 - 1 - 3t
	f := algebra.BiPolyFromTerms([]algebra.Term{
		{Coeff: algebra.One(), DegY: 2},
		{Coeff: algebra.GaussianInt(-1, 0), DegX: 1},
	})
	coeffs := substituteLine(f, algebra.One(), algebra.GaussianInt(4, 0))
	want := map[[2]int]algebra.Gaussian{
		{0, 2}: algebra.One(),
		{0, 0}: algebra.GaussianInt(-1, 0),
		{1, 0}: algebra.GaussianInt(-3, 0),
	}
	if len(coeffs) != len(want) {
		t.Fatalf("got %d coefficients, want %d", len(coeffs), len(want))
	}
	for _, lc := range coeffs {
		w, ok := want[[2]int{lc.degT, lc.degY}]
		if !ok {
			t.Errorf("unexpected monomial t^%d y^%d", lc.degT, lc.degY)
			continue
		}
		if !lc.c.Equal(w) {
			t.Errorf("coefficient of t^%d y^%d = %v, want %v", lc.degT, lc.degY, lc.c, w)
		}
	}
}

func TestFollowStrandPrecisionExhausted(t *testing.T) {
	// y^2 - x from the branch point x=0: the double root can never be
	// certified, so escalation must hit the cap.
	f := algebra.BiPolyFromTerms([]algebra.Term{
		{Coeff: algebra.One(), DegY: 2},
		{Coeff: algebra.GaussianInt(-1, 0), DegX: 1},
	})
	_, err := FollowStrand(f, algebra.Zero(), algebra.One(), 0, 53, 106)
	if err == nil {
		t.Fatal("expected an error when starting at a double root")
	}
	if !errors.Is(err, errors.ErrCodePrecisionExhausted) {
		t.Errorf("code = %v, want PRECISION_EXHAUSTED", errors.GetCode(err))
	}
}
