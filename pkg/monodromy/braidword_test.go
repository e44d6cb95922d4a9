package monodromy

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/algcurve/vankampen/pkg/braid"
	"github.com/algcurve/vankampen/pkg/numeric"
)

// mkStrand builds a strand from (t, re, im) triples.
func mkStrand(points ...[3]float64) Strand {
	s := make(Strand, len(points))
	for i, p := range points {
		s[i] = numeric.Sample{T: p[0], Re: p[1], Im: p[2]}
	}
	return s
}

func TestBraidFromStrandsParallel(t *testing.T) {
	strands := []Strand{
		mkStrand([3]float64{0, -1, 0}, [3]float64{1, -1, 0}),
		mkStrand([3]float64{0, 1, 0}, [3]float64{0.3, 1, 0.5}, [3]float64{1, 1, 0}),
	}
	if w := BraidFromStrands(strands); !w.IsIdentity() {
		t.Errorf("parallel strands gave %v, want the identity", w)
	}
}

func TestBraidFromStrandsSingleStrand(t *testing.T) {
	strands := []Strand{mkStrand([3]float64{0, 0, 0}, [3]float64{1, 5, 3})}
	if w := BraidFromStrands(strands); w != nil {
		t.Errorf("one strand gave %v, want nil", w)
	}
}

func TestBraidFromStrandsPositiveCrossing(t *testing.T) {
	// two strands trade places; equal imaginary parts at the crossing
	// resolve to a positive generator
	strands := []Strand{
		mkStrand([3]float64{0, -1, 0}, [3]float64{1, 1, 0}),
		mkStrand([3]float64{0, 1, 0}, [3]float64{1, -1, 0}),
	}
	if w := BraidFromStrands(strands); !w.Equal(braid.Word{1}) {
		t.Errorf("got %v, want [1]", w)
	}
}

func TestBraidFromStrandsNegativeCrossing(t *testing.T) {
	// the left strand passes above (larger imaginary part), so the
	// crossing is negative
	strands := []Strand{
		mkStrand([3]float64{0, -1, 1}, [3]float64{1, 1, 1}),
		mkStrand([3]float64{0, 1, 0}, [3]float64{1, -1, 0}),
	}
	if w := BraidFromStrands(strands); !w.Equal(braid.Word{-1}) {
		t.Errorf("got %v, want [-1]", w)
	}
}

func TestBraidFromStrandsThreeStrands(t *testing.T) {
	// the first strand sweeps left past both others, crossing each once
	strands := []Strand{
		mkStrand(
			[3]float64{0, 0, 1},
			[3]float64{0.2, -1, -0.5},
			[3]float64{0.8, -1, 0},
			[3]float64{1, 0, -1},
		),
		mkStrand([3]float64{0, -1, 0}, [3]float64{0.5, 0, -1}, [3]float64{1, 1, 0}),
		mkStrand([3]float64{0, 1, 0}, [3]float64{0.5, 1, 1}, [3]float64{1, 0, 1}),
	}
	if w := BraidFromStrands(strands); !w.Equal(braid.Word{1, 2}) {
		t.Errorf("got %v, want [1 2]", w)
	}
}

func TestBraidFromStrandsResamplingInvariant(t *testing.T) {
	base := []Strand{
		mkStrand([3]float64{0, -1, 0}, [3]float64{1, 1, 0}),
		mkStrand([3]float64{0, 1, 0}, [3]float64{1, -1, 0}),
	}
	// the second strand with a collinear midpoint inserted
	resampled := []Strand{
		base[0],
		mkStrand([3]float64{0, 1, 0}, [3]float64{0.3, 0.4, 0}, [3]float64{1, -1, 0}),
	}
	w1 := BraidFromStrands(base)
	w2 := BraidFromStrands(resampled)
	if !w1.Equal(w2) {
		t.Errorf("resampling changed the word: %v vs %v", w1, w2)
	}
}

func TestBraidFromStrandsStrandOrderIrrelevant(t *testing.T) {
	a := mkStrand([3]float64{0, -1, 0}, [3]float64{1, 1, 0})
	b := mkStrand([3]float64{0, 1, 0}, [3]float64{1, -1, 0})
	w1 := BraidFromStrands([]Strand{a, b})
	w2 := BraidFromStrands([]Strand{b, a})
	if !w1.Equal(w2) {
		t.Errorf("strand order changed the word: %v vs %v", w1, w2)
	}
}

func TestParallelStrandsNeverCrossProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("parallel strands give the empty braid", prop.ForAll(
		func(n int, mid float64) bool {
			strands := make([]Strand, n)
			for i := range strands {
				x := float64(i)
				strands[i] = mkStrand(
					[3]float64{0, x, 0},
					[3]float64{mid, x, 0},
					[3]float64{1, x, 0},
				)
			}
			return BraidFromStrands(strands).IsIdentity()
		},
		gen.IntRange(2, 6),
		gen.Float64Range(0.05, 0.95),
	))

	properties.TestingRun(t)
}
