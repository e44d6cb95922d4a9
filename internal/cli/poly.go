package cli

import (
	"math/big"
	"strings"
	"unicode"

	"github.com/algcurve/vankampen/pkg/algebra"
	"github.com/algcurve/vankampen/pkg/errors"
)

// ParsePoly parses the CLI polynomial syntax into a bivariate polynomial
// over the Gaussian rationals. The grammar is a sum of terms, each a
// product of factors:
//
//	y^3 + x^3 - 1
//	x^2 + y^3
//	3/2*x*y^2 - i*x + 2
//
// Factors are rational numbers (with optional /denominator), the
// imaginary unit i, and the variables x and y with an optional ^exponent.
// The * between factors may be omitted (3x == 3*x). Whitespace is
// ignored.
func ParsePoly(input string) (algebra.BiPoly, error) {
	p := &polyParser{src: strings.TrimSpace(input)}
	terms, err := p.parse()
	if err != nil {
		return nil, err
	}
	f := algebra.BiPolyFromTerms(terms)
	if f.IsZero() {
		return nil, errors.New(errors.ErrCodeInvalidInput, "polynomial %q is zero", input)
	}
	return f, nil
}

type polyParser struct {
	src string
	pos int
}

func (p *polyParser) parse() ([]algebra.Term, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "empty polynomial")
	}
	sign := 1
	switch p.src[p.pos] {
	case '-':
		sign = -1
		p.pos++
	case '+':
		p.pos++
	}

	var terms []algebra.Term
	for {
		term, err := p.parseTerm(sign)
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
		p.skipSpace()
		if p.pos >= len(p.src) {
			return terms, nil
		}
		switch p.src[p.pos] {
		case '+':
			sign = 1
		case '-':
			sign = -1
		default:
			return nil, p.errAt("expected '+' or '-'")
		}
		p.pos++
	}
}

func (p *polyParser) parseTerm(sign int) (algebra.Term, error) {
	coeff := algebra.GaussianInt(int64(sign), 0)
	degX, degY := 0, 0
	sawFactor := false

	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			break
		}
		c := p.src[p.pos]
		switch {
		case c == '*':
			p.pos++
			continue
		case c == '+' || c == '-':
			if !sawFactor {
				return algebra.Term{}, p.errAt("expected a factor")
			}
			// term ends; sign handled by caller
			return algebra.Term{Coeff: coeff, DegX: degX, DegY: degY}, nil
		case c >= '0' && c <= '9':
			r, err := p.parseRational()
			if err != nil {
				return algebra.Term{}, err
			}
			coeff = coeff.Mul(algebra.NewGaussian(r, nil))
			sawFactor = true
		case c == 'i':
			p.pos++
			coeff = coeff.Mul(algebra.I())
			sawFactor = true
		case c == 'x' || c == 'y':
			p.pos++
			exp := 1
			p.skipSpace()
			if p.pos < len(p.src) && p.src[p.pos] == '^' {
				p.pos++
				var err error
				exp, err = p.parseInt()
				if err != nil {
					return algebra.Term{}, err
				}
			}
			if c == 'x' {
				degX += exp
			} else {
				degY += exp
			}
			sawFactor = true
		default:
			return algebra.Term{}, p.errAt("unexpected character %q", rune(c))
		}
	}
	if !sawFactor {
		return algebra.Term{}, p.errAt("expected a factor")
	}
	return algebra.Term{Coeff: coeff, DegX: degX, DegY: degY}, nil
}

func (p *polyParser) parseRational() (*big.Rat, error) {
	num, err := p.parseInt()
	if err != nil {
		return nil, err
	}
	den := 1
	p.skipSpace()
	if p.pos < len(p.src) && p.src[p.pos] == '/' {
		p.pos++
		den, err = p.parseInt()
		if err != nil {
			return nil, err
		}
		if den == 0 {
			return nil, p.errAt("zero denominator")
		}
	}
	return big.NewRat(int64(num), int64(den)), nil
}

func (p *polyParser) parseInt() (int, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	if start == p.pos {
		return 0, p.errAt("expected a number")
	}
	n := 0
	for _, c := range p.src[start:p.pos] {
		n = n*10 + int(c-'0')
		if n > 1<<30 {
			return 0, p.errAt("number too large")
		}
	}
	return n, nil
}

func (p *polyParser) skipSpace() {
	for p.pos < len(p.src) && unicode.IsSpace(rune(p.src[p.pos])) {
		p.pos++
	}
}

func (p *polyParser) errAt(format string, args ...any) *errors.Error {
	args = append(args, p.pos)
	return errors.New(errors.ErrCodeInvalidInput, format+" at position %d", args...)
}
