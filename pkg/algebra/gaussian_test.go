package algebra

import (
	"math/big"
	"testing"
)

func TestGaussianArithmetic(t *testing.T) {
	a := GaussianInt(1, 2)
	b := GaussianInt(3, -1)

	if got := a.Add(b); !got.Equal(GaussianInt(4, 1)) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); !got.Equal(GaussianInt(-2, 3)) {
		t.Errorf("Sub: got %v", got)
	}
	// (1+2i)(3-i) = 3 - i + 6i - 2i^2 = 5 + 5i
	if got := a.Mul(b); !got.Equal(GaussianInt(5, 5)) {
		t.Errorf("Mul: got %v", got)
	}
	if got := a.Mul(b).Div(b); !got.Equal(a) {
		t.Errorf("Div: got %v", got)
	}
	if got := I().Mul(I()); !got.Equal(GaussianInt(-1, 0)) {
		t.Errorf("i^2: got %v", got)
	}
}

func TestGaussianInv(t *testing.T) {
	g := GaussianInt(3, 4)
	inv := g.Inv()
	if got := g.Mul(inv); !got.Equal(One()) {
		t.Errorf("g * 1/g = %v, want 1", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("Inv of zero should panic")
		}
	}()
	Zero().Inv()
}

func TestGaussianNorm(t *testing.T) {
	g := GaussianInt(3, 4)
	if got := g.Norm(); got.Cmp(big.NewRat(25, 1)) != 0 {
		t.Errorf("Norm(3+4i) = %v, want 25", got)
	}
}

func TestGaussianCmp(t *testing.T) {
	tests := []struct {
		a, b Gaussian
		want int
	}{
		{GaussianInt(0, 0), GaussianInt(0, 0), 0},
		{GaussianInt(1, 0), GaussianInt(2, 0), -1},
		{GaussianInt(2, -5), GaussianInt(1, 5), 1},
		{GaussianInt(1, 1), GaussianInt(1, 2), -1},
	}
	for _, tt := range tests {
		if got := tt.a.Cmp(tt.b); got != tt.want {
			t.Errorf("Cmp(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestGaussianString(t *testing.T) {
	tests := []struct {
		g    Gaussian
		want string
	}{
		{GaussianInt(0, 0), "0"},
		{GaussianInt(3, 0), "3"},
		{GaussianInt(0, 1), "1i"},
		{GaussianInt(1, -2), "1-2i"},
		{NewGaussian(big.NewRat(3, 2), big.NewRat(1, 4)), "3/2+1/4i"},
	}
	for _, tt := range tests {
		if got := tt.g.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestGaussianFloatRoundTrip(t *testing.T) {
	g := GaussianFloat(0.5, -0.25)
	if got := g.Complex128(); got != complex(0.5, -0.25) {
		t.Errorf("Complex128() = %v", got)
	}
	if !g.Equal(NewGaussian(big.NewRat(1, 2), big.NewRat(-1, 4))) {
		t.Error("float conversion should be exact for dyadic values")
	}
}
