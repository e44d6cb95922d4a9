package monodromy

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/algcurve/vankampen/pkg/algebra"
	"github.com/algcurve/vankampen/pkg/braid"
	"github.com/algcurve/vankampen/pkg/errors"
	"github.com/algcurve/vankampen/pkg/observability"
)

// Default working precisions in bits. Continuation starts at the low
// default and doubles on certification failure; the cap turns a runaway
// escalation into ErrCodePrecisionExhausted instead of an unbounded
// retry loop.
const (
	DefaultPrecision    uint = 53
	DefaultMaxPrecision uint = 4096
)

// Options configure the fundamental group computation.
type Options struct {
	// Simplified applies a Tietze reduction to the presentation. The
	// unsimplified presentation has d·|vertices| generators, all of them
	// meridians of the curve; simplification loses that guarantee.
	Simplified bool

	// Projective computes the group of the projective completion's
	// complement: the shear loop additionally enforces total degree d
	// and the product of the base-vertex generators is added as a
	// relator.
	Projective bool

	// Precision is the initial working precision in bits (default 53).
	Precision uint

	// MaxPrecision caps the certification retry escalation
	// (default 4096).
	MaxPrecision uint

	// Workers bounds the number of concurrent segment computations
	// (default GOMAXPROCS).
	Workers int
}

func (o Options) withDefaults() Options {
	if o.Precision == 0 {
		o.Precision = DefaultPrecision
	}
	if o.MaxPrecision == 0 {
		o.MaxPrecision = DefaultMaxPrecision
	}
	if o.MaxPrecision < o.Precision {
		o.MaxPrecision = o.Precision
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	return o
}

// Prepare reduces f to the model the pipeline works on: the square-free
// part in y, sheared by x -> x+y until the leading y-coefficient is
// constant (so no fiber degenerates) and, for the projective group,
// until the total degree equals the y-degree.
func Prepare(f algebra.BiPoly, projective bool) (algebra.BiPoly, error) {
	if f.IsZero() || (f.DegY() < 1 && f.DegX() < 1) {
		return nil, errors.New(errors.ErrCodeDegenerateDegree, "polynomial is constant")
	}
	g := f.SquareFreePartY()
	d := g.DegY()
	for !g.LeadY().IsConst() || (projective && g.TotalDegree() > d) {
		g = g.Shear()
		d = g.DegY()
	}
	if d < 1 {
		return nil, errors.New(errors.ErrCodeDegenerateDegree,
			"polynomial has y-degree 0 after shearing; the curve has no vertical fibration")
	}
	return g, nil
}

// SegmentBraids computes the braid word of every network segment. One
// goroutine per segment, bounded by workers, failing fast on the first
// error; results are indexed by segment, so the output is independent
// of completion order.
func SegmentBraids(ctx context.Context, g algebra.BiPoly, net *Network, prec, maxPrec uint, workers int) ([]braid.Word, error) {
	words := make([]braid.Word, len(net.Segments))
	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(workers)
	total := len(net.Segments)
	for idx, seg := range net.Segments {
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			observability.Pipeline().OnSegmentStart(ctx, idx, total)
			start := time.Now()
			w, err := SegmentBraid(g, net.Vertices[seg[0]], net.Vertices[seg[1]], prec, maxPrec)
			observability.Pipeline().OnSegmentComplete(ctx, idx, len(w), time.Since(start), err)
			if err != nil {
				return err
			}
			words[idx] = w
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return words, nil
}

// AssemblePresentation turns per-segment braid words into a presentation
// of the fundamental group. The generator space is d generators per
// network vertex, numbered d·i+1 .. d·i+d for vertex i; a segment from
// vertex i to vertex j with braid b contributes, for each sheet k, the
// relator
//
//	braid.Act(x_{k+1}, b⁻¹) shifted into vertex i's block  ·  (generator d·j+k+1)⁻¹
//
// identifying the transported meridian with the matching meridian at j.
// Transport is the mapping class action of the braid on the free group,
// not concatenation. For the projective group the product of the base
// vertex's d generators is added.
func AssemblePresentation(g algebra.BiPoly, net *Network, words []braid.Word, opts Options) (braid.Presentation, error) {
	d := g.DegY()
	pres := braid.Presentation{NumGenerators: d * len(net.Vertices)}
	if opts.Projective {
		rel := make(braid.Word, d)
		base := net.Basepoint()
		for k := 0; k < d; k++ {
			rel[k] = d*base + k + 1
		}
		pres.Relators = append(pres.Relators, rel)
	}
	for s, seg := range net.Segments {
		i, j := seg[0], seg[1]
		binv := words[s].Inverse()
		for k := 0; k < d; k++ {
			local := braid.Act(braid.Word{k + 1}, binv)
			w1 := local.Reindex(func(a int) int { return d*i + a })
			w2 := braid.Word{d*j + k + 1}
			pres.Relators = append(pres.Relators, braid.Compose(w1, w2.Inverse()))
		}
	}
	if err := pres.Validate(); err != nil {
		return braid.Presentation{}, errors.Wrap(errors.ErrCodeGroupConstruction, err,
			"relator indices escape the generator space")
	}
	if opts.Simplified {
		pres = pres.Simplified()
	}
	return pres, nil
}

// FundamentalGroup computes a presentation of the fundamental group of
// the complement of the curve f(x,y) = 0 in the complex affine plane
// (or its projective completion when opts.Projective is set).
//
// Without simplification the generators are meridians of the curve, d
// per network vertex; with it the presentation is Tietze-reduced and
// the meridian property is lost.
func FundamentalGroup(ctx context.Context, f algebra.BiPoly, opts Options) (braid.Presentation, error) {
	opts = opts.withDefaults()

	g, err := Prepare(f, opts.Projective)
	if err != nil {
		return braid.Presentation{}, err
	}

	observability.Pipeline().OnDiscriminantStart(ctx, g.DegY())
	start := time.Now()
	branch, err := Discriminant(g, opts.Precision)
	observability.Pipeline().OnDiscriminantComplete(ctx, len(branch), time.Since(start), err)
	if err != nil {
		return braid.Presentation{}, err
	}

	start = time.Now()
	net := BuildNetwork(branch)
	observability.Pipeline().OnNetworkComplete(ctx, len(net.Vertices), len(net.Segments), time.Since(start))

	words, err := SegmentBraids(ctx, g, net, opts.Precision, opts.MaxPrecision, opts.Workers)
	if err != nil {
		return braid.Presentation{}, err
	}

	start = time.Now()
	pres, err := AssemblePresentation(g, net, words, opts)
	observability.Pipeline().OnAssemblyComplete(ctx, pres.NumGenerators, len(pres.Relators), time.Since(start), err)
	return pres, err
}
