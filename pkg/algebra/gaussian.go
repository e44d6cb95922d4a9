package algebra

import (
	"fmt"
	"math/big"
)

// Gaussian is a complex number with rational real and imaginary parts.
// The zero value is not usable; construct values with NewGaussian and
// friends. Gaussians are immutable: arithmetic returns new values.
type Gaussian struct {
	re, im *big.Rat
}

// NewGaussian creates a Gaussian rational from rational parts.
// Nil parts are treated as zero. The inputs are copied.
func NewGaussian(re, im *big.Rat) Gaussian {
	g := Gaussian{re: new(big.Rat), im: new(big.Rat)}
	if re != nil {
		g.re.Set(re)
	}
	if im != nil {
		g.im.Set(im)
	}
	return g
}

// GaussianInt creates a Gaussian rational from integer parts.
func GaussianInt(re, im int64) Gaussian {
	return Gaussian{re: big.NewRat(re, 1), im: big.NewRat(im, 1)}
}

// GaussianFloat creates a Gaussian rational from float64 parts.
// The conversion is exact: every finite float64 is a rational number.
func GaussianFloat(re, im float64) Gaussian {
	g := Gaussian{re: new(big.Rat), im: new(big.Rat)}
	g.re.SetFloat64(re)
	g.im.SetFloat64(im)
	return g
}

// Zero returns the Gaussian rational 0.
func Zero() Gaussian { return GaussianInt(0, 0) }

// One returns the Gaussian rational 1.
func One() Gaussian { return GaussianInt(1, 0) }

// I returns the imaginary unit.
func I() Gaussian { return GaussianInt(0, 1) }

// Re returns a copy of the real part.
func (g Gaussian) Re() *big.Rat { return new(big.Rat).Set(g.re) }

// Im returns a copy of the imaginary part.
func (g Gaussian) Im() *big.Rat { return new(big.Rat).Set(g.im) }

// IsZero reports whether g is exactly zero.
func (g Gaussian) IsZero() bool {
	return g.re.Sign() == 0 && g.im.Sign() == 0
}

// Equal reports exact equality.
func (g Gaussian) Equal(h Gaussian) bool {
	return g.re.Cmp(h.re) == 0 && g.im.Cmp(h.im) == 0
}

// Add returns g + h.
func (g Gaussian) Add(h Gaussian) Gaussian {
	return Gaussian{
		re: new(big.Rat).Add(g.re, h.re),
		im: new(big.Rat).Add(g.im, h.im),
	}
}

// Sub returns g - h.
func (g Gaussian) Sub(h Gaussian) Gaussian {
	return Gaussian{
		re: new(big.Rat).Sub(g.re, h.re),
		im: new(big.Rat).Sub(g.im, h.im),
	}
}

// Neg returns -g.
func (g Gaussian) Neg() Gaussian {
	return Gaussian{
		re: new(big.Rat).Neg(g.re),
		im: new(big.Rat).Neg(g.im),
	}
}

// Mul returns g * h.
func (g Gaussian) Mul(h Gaussian) Gaussian {
	ac := new(big.Rat).Mul(g.re, h.re)
	bd := new(big.Rat).Mul(g.im, h.im)
	ad := new(big.Rat).Mul(g.re, h.im)
	bc := new(big.Rat).Mul(g.im, h.re)
	return Gaussian{
		re: ac.Sub(ac, bd),
		im: ad.Add(ad, bc),
	}
}

// Conj returns the complex conjugate of g.
func (g Gaussian) Conj() Gaussian {
	return Gaussian{re: new(big.Rat).Set(g.re), im: new(big.Rat).Neg(g.im)}
}

// Norm returns |g|^2 = re^2 + im^2 as an exact rational.
func (g Gaussian) Norm() *big.Rat {
	rr := new(big.Rat).Mul(g.re, g.re)
	ii := new(big.Rat).Mul(g.im, g.im)
	return rr.Add(rr, ii)
}

// Inv returns 1/g. It panics if g is zero; callers must check IsZero
// when the operand is not known to be a unit.
func (g Gaussian) Inv() Gaussian {
	n := g.Norm()
	if n.Sign() == 0 {
		panic("algebra: inverse of zero Gaussian rational")
	}
	inv := new(big.Rat).Inv(n)
	c := g.Conj()
	return Gaussian{
		re: new(big.Rat).Mul(c.re, inv),
		im: new(big.Rat).Mul(c.im, inv),
	}
}

// Div returns g / h. It panics if h is zero.
func (g Gaussian) Div(h Gaussian) Gaussian {
	return g.Mul(h.Inv())
}

// IsRational reports whether the imaginary part is zero.
func (g Gaussian) IsRational() bool { return g.im.Sign() == 0 }

// Complex128 returns the nearest complex128 approximation.
func (g Gaussian) Complex128() complex128 {
	re, _ := g.re.Float64()
	im, _ := g.im.Float64()
	return complex(re, im)
}

// Floats returns big.Float approximations of the parts at prec bits.
func (g Gaussian) Floats(prec uint) (re, im *big.Float) {
	re = new(big.Float).SetPrec(prec).SetRat(g.re)
	im = new(big.Float).SetPrec(prec).SetRat(g.im)
	return re, im
}

// Cmp orders Gaussians lexicographically by real then imaginary part.
// This is not a field ordering; it exists to sort vertices canonically.
func (g Gaussian) Cmp(h Gaussian) int {
	if c := g.re.Cmp(h.re); c != 0 {
		return c
	}
	return g.im.Cmp(h.im)
}

// String formats g as "a+bi" with exact rational parts.
func (g Gaussian) String() string {
	if g.im.Sign() == 0 {
		return g.re.RatString()
	}
	if g.re.Sign() == 0 {
		return g.im.RatString() + "i"
	}
	if g.im.Sign() < 0 {
		return fmt.Sprintf("%s%si", g.re.RatString(), g.im.RatString())
	}
	return fmt.Sprintf("%s+%si", g.re.RatString(), g.im.RatString())
}
