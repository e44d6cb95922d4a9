package numeric

import (
	"math/big"
)

// Interval is a closed real interval with big.Float endpoints. Endpoint
// operations round outward (Lo toward -inf, Hi toward +inf), so every
// derived interval encloses the exact result. Intervals are immutable.
type Interval struct {
	Lo, Hi *big.Float
}

// NewInterval creates an interval from endpoints, copied at prec bits.
func NewInterval(prec uint, lo, hi *big.Float) Interval {
	l := new(big.Float).SetPrec(prec).SetMode(big.ToNegativeInf).Set(lo)
	h := new(big.Float).SetPrec(prec).SetMode(big.ToPositiveInf).Set(hi)
	return Interval{Lo: l, Hi: h}
}

// PointInterval creates the degenerate interval [v, v] at prec bits.
func PointInterval(prec uint, v *big.Float) Interval {
	return NewInterval(prec, v, v)
}

// IntervalFromRat creates the tightest prec-bit enclosure of a rational.
func IntervalFromRat(prec uint, r *big.Rat) Interval {
	lo := new(big.Float).SetPrec(prec).SetMode(big.ToNegativeInf).SetRat(r)
	hi := new(big.Float).SetPrec(prec).SetMode(big.ToPositiveInf).SetRat(r)
	return Interval{Lo: lo, Hi: hi}
}

// IntervalFromFloat64 creates the degenerate interval [v, v].
// Every float64 is exactly representable, so no rounding occurs.
func IntervalFromFloat64(prec uint, v float64) Interval {
	f := new(big.Float).SetPrec(prec).SetFloat64(v)
	return PointInterval(prec, f)
}

func (a Interval) prec() uint { return a.Lo.Prec() }

func down(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).SetMode(big.ToNegativeInf)
}

func up(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).SetMode(big.ToPositiveInf)
}

// Add returns the enclosure of a + b.
func (a Interval) Add(b Interval) Interval {
	p := a.prec()
	return Interval{
		Lo: down(p).Add(a.Lo, b.Lo),
		Hi: up(p).Add(a.Hi, b.Hi),
	}
}

// Sub returns the enclosure of a - b.
func (a Interval) Sub(b Interval) Interval {
	p := a.prec()
	return Interval{
		Lo: down(p).Sub(a.Lo, b.Hi),
		Hi: up(p).Sub(a.Hi, b.Lo),
	}
}

// Neg returns -a.
func (a Interval) Neg() Interval {
	p := a.prec()
	return Interval{
		Lo: down(p).Neg(a.Hi),
		Hi: up(p).Neg(a.Lo),
	}
}

// Mul returns the enclosure of a * b, taking the extrema of the four
// endpoint products under both rounding directions.
func (a Interval) Mul(b Interval) Interval {
	p := a.prec()
	lo := down(p).Mul(a.Lo, b.Lo)
	hi := up(p).Mul(a.Lo, b.Lo)
	for _, pair := range [][2]*big.Float{{a.Lo, b.Hi}, {a.Hi, b.Lo}, {a.Hi, b.Hi}} {
		l := down(p).Mul(pair[0], pair[1])
		h := up(p).Mul(pair[0], pair[1])
		if l.Cmp(lo) < 0 {
			lo = l
		}
		if h.Cmp(hi) > 0 {
			hi = h
		}
	}
	return Interval{Lo: lo, Hi: hi}
}

// Div returns the enclosure of a / b. It panics if b contains zero;
// callers must check b.ContainsZero first.
func (a Interval) Div(b Interval) Interval {
	if b.ContainsZero() {
		panic("numeric: interval division by interval containing zero")
	}
	p := a.prec()
	lo := down(p).Quo(a.Lo, b.Lo)
	hi := up(p).Quo(a.Lo, b.Lo)
	for _, pair := range [][2]*big.Float{{a.Lo, b.Hi}, {a.Hi, b.Lo}, {a.Hi, b.Hi}} {
		l := down(p).Quo(pair[0], pair[1])
		h := up(p).Quo(pair[0], pair[1])
		if l.Cmp(lo) < 0 {
			lo = l
		}
		if h.Cmp(hi) > 0 {
			hi = h
		}
	}
	return Interval{Lo: lo, Hi: hi}
}

// Sqr returns the enclosure of a², tightened for intervals straddling 0.
func (a Interval) Sqr() Interval {
	p := a.prec()
	if a.ContainsZero() {
		h1 := up(p).Mul(a.Lo, a.Lo)
		h2 := up(p).Mul(a.Hi, a.Hi)
		if h2.Cmp(h1) > 0 {
			h1 = h2
		}
		return Interval{Lo: down(p), Hi: h1} // lo = 0
	}
	return a.Mul(a)
}

// ContainsZero reports whether 0 lies in a.
func (a Interval) ContainsZero() bool {
	return a.Lo.Sign() <= 0 && a.Hi.Sign() >= 0
}

// Contains reports whether b lies entirely inside a (not necessarily
// strictly).
func (a Interval) Contains(b Interval) bool {
	return a.Lo.Cmp(b.Lo) <= 0 && a.Hi.Cmp(b.Hi) >= 0
}

// ContainsStrict reports whether b lies in the interior of a.
func (a Interval) ContainsStrict(b Interval) bool {
	return a.Lo.Cmp(b.Lo) < 0 && a.Hi.Cmp(b.Hi) > 0
}

// Mid returns the midpoint, rounded to nearest.
func (a Interval) Mid() *big.Float {
	m := new(big.Float).SetPrec(a.prec()).Add(a.Lo, a.Hi)
	return m.Quo(m, big.NewFloat(2))
}

// Width returns an upper bound on Hi - Lo.
func (a Interval) Width() *big.Float {
	return up(a.prec()).Sub(a.Hi, a.Lo)
}

// AbsUpper returns an upper bound on |x| over x in a.
func (a Interval) AbsUpper() *big.Float {
	l := new(big.Float).SetPrec(a.prec()).Abs(a.Lo)
	h := new(big.Float).SetPrec(a.prec()).Abs(a.Hi)
	if l.Cmp(h) > 0 {
		return l
	}
	return h
}

// AbsLower returns a lower bound on |x| over x in a (the mignitude).
// It is zero when a contains zero.
func (a Interval) AbsLower() *big.Float {
	if a.ContainsZero() {
		return new(big.Float).SetPrec(a.prec())
	}
	l := new(big.Float).SetPrec(a.prec()).Abs(a.Lo)
	h := new(big.Float).SetPrec(a.prec()).Abs(a.Hi)
	if l.Cmp(h) < 0 {
		return l
	}
	return h
}

// Complex is a rectangular complex interval: a box in the complex plane.
type Complex struct {
	Re, Im Interval
}

// ComplexPoint creates the degenerate box {re + i·im} at prec bits.
func ComplexPoint(prec uint, re, im *big.Float) Complex {
	return Complex{Re: PointInterval(prec, re), Im: PointInterval(prec, im)}
}

// ComplexBox creates the square box centered at (re, im) with radius r.
func ComplexBox(prec uint, re, im, r *big.Float) Complex {
	reLo := down(prec).Sub(re, r)
	reHi := up(prec).Add(re, r)
	imLo := down(prec).Sub(im, r)
	imHi := up(prec).Add(im, r)
	return Complex{
		Re: Interval{Lo: reLo, Hi: reHi},
		Im: Interval{Lo: imLo, Hi: imHi},
	}
}

// Add returns the enclosure of a + b.
func (a Complex) Add(b Complex) Complex {
	return Complex{Re: a.Re.Add(b.Re), Im: a.Im.Add(b.Im)}
}

// Sub returns the enclosure of a - b.
func (a Complex) Sub(b Complex) Complex {
	return Complex{Re: a.Re.Sub(b.Re), Im: a.Im.Sub(b.Im)}
}

// Mul returns the enclosure of a * b.
func (a Complex) Mul(b Complex) Complex {
	return Complex{
		Re: a.Re.Mul(b.Re).Sub(a.Im.Mul(b.Im)),
		Im: a.Re.Mul(b.Im).Add(a.Im.Mul(b.Re)),
	}
}

// Div returns the enclosure of a / b via multiplication by the conjugate.
// It panics if b's modulus interval contains zero.
func (a Complex) Div(b Complex) Complex {
	den := b.Re.Sqr().Add(b.Im.Sqr())
	if den.ContainsZero() {
		panic("numeric: complex interval division by box containing zero")
	}
	num := a.Mul(Complex{Re: b.Re, Im: b.Im.Neg()})
	return Complex{Re: num.Re.Div(den), Im: num.Im.Div(den)}
}

// ContainsZero reports whether the box contains the origin.
func (a Complex) ContainsZero() bool {
	return a.Re.ContainsZero() && a.Im.ContainsZero()
}

// Contains reports whether b lies inside a.
func (a Complex) Contains(b Complex) bool {
	return a.Re.Contains(b.Re) && a.Im.Contains(b.Im)
}

// ContainsStrict reports whether b lies in the interior of a.
func (a Complex) ContainsStrict(b Complex) bool {
	return a.Re.ContainsStrict(b.Re) && a.Im.ContainsStrict(b.Im)
}

// AbsUpper returns an upper bound on |z| over the box (|re| + |im|).
func (a Complex) AbsUpper() *big.Float {
	p := a.Re.prec()
	return up(p).Add(a.Re.AbsUpper(), a.Im.AbsUpper())
}

// AbsLower returns a lower bound on |z| over the box
// (max of the component mignitudes).
func (a Complex) AbsLower() *big.Float {
	r := a.Re.AbsLower()
	i := a.Im.AbsLower()
	if r.Cmp(i) >= 0 {
		return r
	}
	return i
}
