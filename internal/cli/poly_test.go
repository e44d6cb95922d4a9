package cli

import (
	"math/big"
	"testing"

	"github.com/algcurve/vankampen/pkg/algebra"
	"github.com/algcurve/vankampen/pkg/errors"
)

func TestParsePoly(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  algebra.BiPoly
	}{
		{
			name:  "fermat cubic",
			input: "y^3 + x^3 - 1",
			want: algebra.BiPolyFromTerms([]algebra.Term{
				{Coeff: algebra.One(), DegY: 3},
				{Coeff: algebra.One(), DegX: 3},
				{Coeff: algebra.GaussianInt(-1, 0)},
			}),
		},
		{
			name:  "implicit multiplication",
			input: "3x y^2",
			want: algebra.BiPolyFromTerms([]algebra.Term{
				{Coeff: algebra.GaussianInt(3, 0), DegX: 1, DegY: 2},
			}),
		},
		{
			name:  "explicit multiplication",
			input: "3*x*y^2",
			want: algebra.BiPolyFromTerms([]algebra.Term{
				{Coeff: algebra.GaussianInt(3, 0), DegX: 1, DegY: 2},
			}),
		},
		{
			name:  "rational coefficient",
			input: "3/2*y - x",
			want: algebra.BiPolyFromTerms([]algebra.Term{
				{Coeff: algebra.NewGaussian(big.NewRat(3, 2), nil), DegY: 1},
				{Coeff: algebra.GaussianInt(-1, 0), DegX: 1},
			}),
		},
		{
			name:  "imaginary unit",
			input: "i*x + y",
			want: algebra.BiPolyFromTerms([]algebra.Term{
				{Coeff: algebra.I(), DegX: 1},
				{Coeff: algebra.One(), DegY: 1},
			}),
		},
		{
			name:  "leading minus",
			input: "-x + y",
			want: algebra.BiPolyFromTerms([]algebra.Term{
				{Coeff: algebra.GaussianInt(-1, 0), DegX: 1},
				{Coeff: algebra.One(), DegY: 1},
			}),
		},
		{
			name:  "repeated variables multiply",
			input: "x*x*y",
			want: algebra.BiPolyFromTerms([]algebra.Term{
				{Coeff: algebra.One(), DegX: 2, DegY: 1},
			}),
		},
		{
			name:  "i squared collapses to -1",
			input: "i*i*x + x",
			want:  nil, // x - x = 0, rejected below
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePoly(tt.input)
			if tt.want == nil {
				if err == nil {
					t.Fatalf("ParsePoly(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePoly(%q): %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParsePoly(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParsePolyErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"zero polynomial", "x - x"},
		{"trailing operator", "x +"},
		{"missing operator", "x ? y"},
		{"unknown variable", "x + z"},
		{"zero denominator", "1/0*x"},
		{"bare exponent", "x^"},
		{"double sign", "x + + y"},
		{"huge number", "99999999999999999999*x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePoly(tt.input)
			if err == nil {
				t.Fatalf("ParsePoly(%q) succeeded, want error", tt.input)
			}
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("code = %v, want INVALID_INPUT", errors.GetCode(err))
			}
		})
	}
}
