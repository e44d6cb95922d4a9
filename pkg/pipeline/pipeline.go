// Package pipeline provides the staged fundamental-group computation.
//
// This package wraps the pkg/monodromy stages behind a Runner that adds
// caching, logging, and run statistics, so the CLI and tests share one
// execution path instead of duplicating orchestration.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Discriminant: branch points of the prepared polynomial
//  2. Network: bounded Voronoi skeleton around the branch points
//  3. Braids: one certified braid word per network segment (parallel)
//  4. Assembly: relators and the final presentation
//
// Segment braids dominate the cost and are cached individually, so a
// rerun with different assembly options reuses every braid.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Poly:       f,
//	    Simplified: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Presentation)
package pipeline

import (
	"runtime"
	"time"

	"github.com/charmbracelet/log"

	"github.com/algcurve/vankampen/pkg/algebra"
	"github.com/algcurve/vankampen/pkg/braid"
	"github.com/algcurve/vankampen/pkg/errors"
	"github.com/algcurve/vankampen/pkg/monodromy"
)

// Options contains all configuration for a pipeline run.
type Options struct {
	// Poly is the parsed input polynomial.
	Poly algebra.BiPoly `json:"-"`

	// Polynomial is the textual form, kept for logs and cache metadata.
	Polynomial string `json:"polynomial,omitempty"`

	// Assembly options
	Simplified bool `json:"simplified,omitempty"`
	Projective bool `json:"projective,omitempty"`

	// Numeric options
	Precision    uint `json:"precision,omitempty"`
	MaxPrecision uint `json:"max_precision,omitempty"`
	Workers      int  `json:"workers,omitempty"`

	// Refresh bypasses cache reads (results are still written).
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Poly.IsZero() {
		return errors.New(errors.ErrCodeInvalidInput, "no polynomial given")
	}
	if o.Precision == 0 {
		o.Precision = monodromy.DefaultPrecision
	}
	if o.MaxPrecision == 0 {
		o.MaxPrecision = monodromy.DefaultMaxPrecision
	}
	if o.MaxPrecision < o.Precision {
		return errors.New(errors.ErrCodeInvalidInput,
			"max precision %d is below the starting precision %d", o.MaxPrecision, o.Precision)
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.Polynomial == "" {
		o.Polynomial = o.Poly.String()
	}
	o.validated = true
	return nil
}

// monodromyOptions converts to the core package's option set.
func (o Options) monodromyOptions() monodromy.Options {
	return monodromy.Options{
		Simplified:   o.Simplified,
		Projective:   o.Projective,
		Precision:    o.Precision,
		MaxPrecision: o.MaxPrecision,
		Workers:      o.Workers,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies this run in logs and hook events.
	RunID string

	// Presentation is the assembled fundamental group presentation.
	Presentation braid.Presentation

	// Prepared is the sheared square-free model actually computed on.
	Prepared algebra.BiPoly

	// PolyHash is the content hash of the prepared polynomial.
	PolyHash string

	// Network is the path skeleton (nil on a full presentation cache hit).
	Network *monodromy.Network

	// Braids are the per-segment braid words, indexed like
	// Network.Segments (nil on a full presentation cache hit).
	Braids []braid.Word

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	BranchPoints int
	Vertices     int
	Segments     int
	Generators   int
	Relators     int

	DiscriminantTime time.Duration
	NetworkTime      time.Duration
	BraidTime        time.Duration
	AssemblyTime     time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	PresentationHit bool // Whole presentation came from cache
	BraidHits       int  // Segment braids served from cache
	BraidMisses     int  // Segment braids computed this run
}
