package algebra

import (
	"math"
	"math/cmplx"
	"testing"
)

func upolyInts(coeffs ...int64) UPoly {
	gs := make([]Gaussian, len(coeffs))
	for i, c := range coeffs {
		gs[i] = GaussianInt(c, 0)
	}
	return NewUPoly(gs...)
}

func TestUPolyNormalization(t *testing.T) {
	p := NewUPoly(GaussianInt(1, 0), GaussianInt(0, 0), GaussianInt(0, 0))
	if p.Degree() != 0 {
		t.Errorf("trailing zeros should be trimmed, degree = %d", p.Degree())
	}
	z := NewUPoly(GaussianInt(0, 0))
	if !z.IsZero() || z.Degree() != -1 {
		t.Error("all-zero coefficients should normalize to the zero polynomial")
	}
}

func TestUPolyMul(t *testing.T) {
	// (x+1)(x-1) = x^2 - 1
	p := upolyInts(1, 1)
	q := upolyInts(-1, 1)
	if got := p.Mul(q); !got.Equal(upolyInts(-1, 0, 1)) {
		t.Errorf("Mul: got %v", got)
	}
}

func TestUPolyQuoRem(t *testing.T) {
	// x^3 - 1 = (x - 1)(x^2 + x + 1)
	p := upolyInts(-1, 0, 0, 1)
	q := upolyInts(-1, 1)
	quo, rem := p.QuoRem(q)
	if !rem.IsZero() {
		t.Fatalf("remainder = %v, want 0", rem)
	}
	if !quo.Equal(upolyInts(1, 1, 1)) {
		t.Errorf("quotient = %v", quo)
	}

	// non-exact division
	_, rem = upolyInts(1, 0, 1).QuoRem(upolyInts(-1, 1))
	if rem.IsZero() {
		t.Error("x^2+1 should not be divisible by x-1")
	}
}

func TestUPolyGCD(t *testing.T) {
	// gcd((x-1)(x+2), (x-1)(x-3)) = x - 1
	a := upolyInts(-1, 1).Mul(upolyInts(2, 1))
	b := upolyInts(-1, 1).Mul(upolyInts(-3, 1))
	if got := a.GCD(b); !got.Equal(upolyInts(-1, 1)) {
		t.Errorf("GCD = %v, want x-1", got)
	}

	// coprime inputs give gcd 1
	if got := upolyInts(1, 1).GCD(upolyInts(-1, 1)); got.Degree() != 0 {
		t.Errorf("coprime GCD degree = %d, want 0", got.Degree())
	}
}

func TestUPolySquareFreePart(t *testing.T) {
	// (x-1)^2 (x+1) -> (x-1)(x+1) = x^2 - 1
	p := upolyInts(-1, 1).Mul(upolyInts(-1, 1)).Mul(upolyInts(1, 1))
	if got := p.SquareFreePart(); !got.Equal(upolyInts(-1, 0, 1)) {
		t.Errorf("SquareFreePart = %v, want x^2-1", got)
	}
}

func TestUPolyEval(t *testing.T) {
	p := upolyInts(-6, 11, -6, 1) // (x-1)(x-2)(x-3)
	for _, root := range []int64{1, 2, 3} {
		if got := p.Eval(GaussianInt(root, 0)); !got.IsZero() {
			t.Errorf("p(%d) = %v, want 0", root, got)
		}
	}
	if got := p.Eval(GaussianInt(0, 0)); !got.Equal(GaussianInt(-6, 0)) {
		t.Errorf("p(0) = %v, want -6", got)
	}
}

func TestRoots(t *testing.T) {
	p := upolyInts(-6, 11, -6, 1) // roots 1, 2, 3
	roots, err := p.Roots(53)
	if err != nil {
		t.Fatalf("Roots: %v", err)
	}
	if len(roots) != 3 {
		t.Fatalf("got %d roots, want 3", len(roots))
	}
	for _, want := range []complex128{1, 2, 3} {
		found := false
		for _, r := range roots {
			if cmplx.Abs(r-want) < 1e-9 {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing root %v in %v", want, roots)
		}
	}
}

func TestRootsCubeRootsOfUnity(t *testing.T) {
	p := upolyInts(-1, 0, 0, 1) // x^3 - 1
	roots, err := p.Roots(80)
	if err != nil {
		t.Fatalf("Roots: %v", err)
	}
	if len(roots) != 3 {
		t.Fatalf("got %d roots, want 3", len(roots))
	}
	for _, r := range roots {
		if math.Abs(cmplx.Abs(r)-1) > 1e-9 {
			t.Errorf("|root| = %v, want 1", cmplx.Abs(r))
		}
		if v := cmplx.Abs(p.EvalComplex(r)); v > 1e-9 {
			t.Errorf("residual |p(r)| = %v", v)
		}
	}
}
