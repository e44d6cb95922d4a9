package numeric

import (
	"errors"
	"math/big"
)

// ErrCertification signals that the kernel could not certify a unique
// continuation path at the current working precision. Callers recover by
// doubling the precision and restarting the whole continuation.
var ErrCertification = errors.New("continuation certification failed")

// CoeffRecord is one monomial of the substituted family g(t,y): the
// degree pair and an interval enclosure of the complex coefficient.
// This fixed schema is the serialization contract between the tracker
// and the kernel; records are never mutated by the kernel.
type CoeffRecord struct {
	DegT  int
	DegY  int
	Coeff Complex
}

// Sample is one accepted point of a tracked root path.
type Sample struct {
	T  float64
	Re float64
	Im float64
}

const (
	initialStep = 0.25
	minStep     = 1.0 / (1 << 26)
	newtonIters = 80
)

// Track follows one root of g(t,·) from t=0 to t=1 starting at the
// approximation y0re + i·y0im, working at prec bits. The returned
// samples start at t=0, end at t=1, and are strictly increasing in t;
// between consecutive samples an interval Newton contraction has
// certified a disk that contains exactly one root of g(t,·) for every t
// in the subinterval, so the polyline's tubular neighborhood encloses
// the true path and no other root.
//
// Track returns ErrCertification when step bisection bottoms out or a
// Newton iteration degenerates; both indicate insufficient precision.
func Track(degY int, recs []CoeffRecord, y0re, y0im *big.Float, prec uint) ([]Sample, error) {
	g := newFamily(degY, recs, prec)

	yr := new(big.Float).SetPrec(prec).Set(y0re)
	yi := new(big.Float).SetPrec(prec).Set(y0im)
	if !g.newtonAt(0, yr, yi) {
		return nil, ErrCertification
	}

	samples := []Sample{sampleOf(0, yr, yi)}
	t := 0.0
	h := initialStep
	for t < 1 {
		if t+h > 1 {
			h = 1 - t
		}
		for !g.certifyStep(t, h, yr, yi) {
			h /= 2
			if h < minStep {
				return nil, ErrCertification
			}
		}
		t += h
		if t > 1 {
			t = 1
		}
		if !g.newtonAt(t, yr, yi) {
			return nil, ErrCertification
		}
		samples = append(samples, sampleOf(t, yr, yi))
		if h < initialStep {
			h *= 2
		}
	}
	return samples, nil
}

func sampleOf(t float64, yr, yi *big.Float) Sample {
	r, _ := yr.Float64()
	i, _ := yi.Float64()
	return Sample{T: t, Re: r, Im: i}
}

// family holds the coefficients of g(t,y) arranged for Horner
// evaluation: tc[i] are the t-coefficients of the y^i coefficient.
type family struct {
	prec uint
	degY int
	tc   [][]Complex
}

func newFamily(degY int, recs []CoeffRecord, prec uint) *family {
	f := &family{prec: prec, degY: degY, tc: make([][]Complex, degY+1)}
	degT := 0
	for _, r := range recs {
		if r.DegT > degT {
			degT = r.DegT
		}
	}
	zero := ComplexPoint(prec, new(big.Float), new(big.Float))
	for i := range f.tc {
		f.tc[i] = make([]Complex, degT+1)
		for j := range f.tc[i] {
			f.tc[i][j] = zero
		}
	}
	for _, r := range recs {
		if r.DegY > degY {
			continue
		}
		f.tc[r.DegY][r.DegT] = f.tc[r.DegY][r.DegT].Add(r.Coeff)
	}
	return f
}

// yCoeffs evaluates each y-coefficient over the t-interval by Horner.
func (f *family) yCoeffs(t Complex) []Complex {
	out := make([]Complex, f.degY+1)
	for i, coeffs := range f.tc {
		acc := ComplexPoint(f.prec, new(big.Float), new(big.Float))
		for j := len(coeffs) - 1; j >= 0; j-- {
			acc = acc.Mul(t).Add(coeffs[j])
		}
		out[i] = acc
	}
	return out
}

// evalBoth evaluates g and ∂g/∂y over the box y given precomputed
// y-coefficients.
func (f *family) evalBoth(cy []Complex, y Complex) (val, deriv Complex) {
	zero := ComplexPoint(f.prec, new(big.Float), new(big.Float))
	val, deriv = zero, zero
	for i := len(cy) - 1; i >= 0; i-- {
		if i >= 1 {
			scale := IntervalFromFloat64(f.prec, float64(i))
			c := Complex{Re: cy[i].Re.Mul(scale), Im: cy[i].Im.Mul(scale)}
			deriv = deriv.Mul(y).Add(c)
		}
		val = val.Mul(y).Add(cy[i])
	}
	return val, deriv
}

// newtonAt refines (yr, yi) in place to a root of g(t,·) at the point
// parameter t. Returns false when the derivative degenerates or the
// iteration fails to contract.
func (f *family) newtonAt(t float64, yr, yi *big.Float) bool {
	tIv := Complex{
		Re: IntervalFromFloat64(f.prec, t),
		Im: IntervalFromFloat64(f.prec, 0),
	}
	cy := f.yCoeffs(tIv)
	tol := new(big.Float).SetPrec(f.prec).SetMantExp(big.NewFloat(1), -int(f.prec)+4)
	for iter := 0; iter < newtonIters; iter++ {
		y := ComplexPoint(f.prec, yr, yi)
		val, deriv := f.evalBoth(cy, y)
		den := deriv.Re.Sqr().Add(deriv.Im.Sqr())
		if den.ContainsZero() {
			return false
		}
		step := val.Div(deriv)
		sr, si := step.Re.Mid(), step.Im.Mid()
		yr.Sub(yr, sr)
		yi.Sub(yi, si)
		mag := new(big.Float).SetPrec(f.prec).Abs(sr)
		mag.Add(mag, new(big.Float).Abs(si))
		scale := new(big.Float).SetPrec(f.prec).Abs(yr)
		scale.Add(scale, new(big.Float).Abs(yi))
		scale.Add(scale, big.NewFloat(1))
		if mag.Cmp(new(big.Float).Mul(tol, scale)) < 0 {
			return true
		}
	}
	return false
}

// certifyStep checks the interval Newton contraction over t in [t, t+h]:
// a box around the current approximation must map strictly into itself
// under K(Y) = y - g(T,y)/g'(T,Y), which proves a unique root stays in
// the box throughout the step.
func (f *family) certifyStep(t, h float64, yr, yi *big.Float) bool {
	lo := new(big.Float).SetPrec(f.prec).SetFloat64(t)
	hi := new(big.Float).SetPrec(f.prec).SetFloat64(t + h)
	T := Complex{
		Re: NewInterval(f.prec, lo, hi),
		Im: IntervalFromFloat64(f.prec, 0),
	}
	cy := f.yCoeffs(T)

	yPoint := ComplexPoint(f.prec, yr, yi)
	val, deriv := f.evalBoth(cy, yPoint)
	if deriv.ContainsZero() {
		return false
	}
	derivLow := deriv.AbsLower()
	if derivLow.Sign() == 0 {
		return false
	}

	// inclusion radius from the Newton correction magnitude
	r := new(big.Float).SetPrec(f.prec).Quo(val.AbsUpper(), derivLow)
	r.Mul(r, big.NewFloat(8))
	floor := new(big.Float).SetPrec(f.prec).SetMantExp(big.NewFloat(1), -int(f.prec)/2)
	if r.Cmp(floor) < 0 {
		r = floor
	}

	Y := ComplexBox(f.prec, yr, yi, r)
	_, derivBox := f.evalBoth(cy, Y)
	if derivBox.ContainsZero() {
		return false
	}
	k := yPoint.Sub(val.Div(derivBox))
	return Y.ContainsStrict(k)
}
