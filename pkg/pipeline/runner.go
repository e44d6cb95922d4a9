package pipeline

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/algcurve/vankampen/pkg/algebra"
	"github.com/algcurve/vankampen/pkg/braid"
	"github.com/algcurve/vankampen/pkg/cache"
	"github.com/algcurve/vankampen/pkg/errors"
	"github.com/algcurve/vankampen/pkg/monodromy"
	"github.com/algcurve/vankampen/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger; it stores no
// run results. Multiple goroutines can safely share one Runner with
// different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// A nil keyer gets the DefaultKeyer; a nil cache gets a NullCache
// (caching disabled); a nil logger gets log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute runs the complete discriminant → network → braids → assembly
// pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := r.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	}

	result := &Result{RunID: uuid.NewString()}
	logger = logger.With("run", result.RunID)

	prepared, err := monodromy.Prepare(opts.Poly, opts.Projective)
	if err != nil {
		return nil, err
	}
	result.Prepared = prepared
	result.PolyHash = cache.Hash([]byte(prepared.String()))

	presKey := r.Keyer.PresentationKey(result.PolyHash, cache.PresentationKeyOpts{
		Simplified: opts.Simplified,
		Projective: opts.Projective,
		Precision:  opts.Precision,
	})
	if !opts.Refresh {
		if pres, ok := r.cachedPresentation(ctx, presKey); ok {
			logger.Info("presentation from cache",
				"generators", pres.NumGenerators,
				"relators", len(pres.Relators))
			result.Presentation = pres
			result.CacheInfo.PresentationHit = true
			result.Stats.Generators = pres.NumGenerators
			result.Stats.Relators = len(pres.Relators)
			return result, nil
		}
	}

	mopts := opts.monodromyOptions()

	// Stage 1: Discriminant
	start := time.Now()
	observability.Pipeline().OnDiscriminantStart(ctx, prepared.DegY())
	branch, err := monodromy.Discriminant(prepared, opts.Precision)
	result.Stats.DiscriminantTime = time.Since(start)
	observability.Pipeline().OnDiscriminantComplete(ctx, len(branch), result.Stats.DiscriminantTime, err)
	if err != nil {
		return nil, err
	}
	result.Stats.BranchPoints = len(branch)
	logger.Info("located branch points",
		"count", len(branch),
		"duration", result.Stats.DiscriminantTime)

	// Stage 2: Network
	start = time.Now()
	net := monodromy.BuildNetwork(branch)
	result.Network = net
	result.Stats.NetworkTime = time.Since(start)
	result.Stats.Vertices = len(net.Vertices)
	result.Stats.Segments = len(net.Segments)
	observability.Pipeline().OnNetworkComplete(ctx, len(net.Vertices), len(net.Segments), result.Stats.NetworkTime)
	logger.Info("built path network",
		"vertices", len(net.Vertices),
		"segments", len(net.Segments),
		"duration", result.Stats.NetworkTime)

	// Stage 3: Per-segment braids, cached individually
	start = time.Now()
	words, info, err := r.segmentBraids(ctx, prepared, net, opts)
	result.Stats.BraidTime = time.Since(start)
	if err != nil {
		return nil, err
	}
	result.Braids = words
	result.CacheInfo.BraidHits = info.BraidHits
	result.CacheInfo.BraidMisses = info.BraidMisses
	logger.Info("computed segment braids",
		"segments", len(words),
		"cache_hits", info.BraidHits,
		"duration", result.Stats.BraidTime)

	// Stage 4: Assembly
	start = time.Now()
	pres, err := monodromy.AssemblePresentation(prepared, net, words, mopts)
	result.Stats.AssemblyTime = time.Since(start)
	observability.Pipeline().OnAssemblyComplete(ctx, pres.NumGenerators, len(pres.Relators), result.Stats.AssemblyTime, err)
	if err != nil {
		return nil, err
	}
	result.Presentation = pres
	result.Stats.Generators = pres.NumGenerators
	result.Stats.Relators = len(pres.Relators)
	logger.Info("assembled presentation",
		"generators", pres.NumGenerators,
		"relators", len(pres.Relators),
		"duration", result.Stats.AssemblyTime)

	if data, err := json.Marshal(pres); err == nil {
		_ = r.Cache.Set(ctx, presKey, data, cache.TTLPresentation)
		observability.Cache().OnCacheSet(ctx, "presentation", len(data))
	}
	return result, nil
}

// Close releases the runner's cache resources.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) cachedPresentation(ctx context.Context, key string) (braid.Presentation, bool) {
	data, ok, err := r.Cache.Get(ctx, key)
	if err != nil || !ok {
		observability.Cache().OnCacheMiss(ctx, "presentation")
		return braid.Presentation{}, false
	}
	var pres braid.Presentation
	if err := json.Unmarshal(data, &pres); err != nil {
		return braid.Presentation{}, false
	}
	observability.Cache().OnCacheHit(ctx, "presentation")
	return pres, true
}

// segmentBraids computes (or fetches) every segment's braid word. One
// goroutine per segment bounded by opts.Workers, failing fast on the
// first error. Words are indexed by segment, so the result does not
// depend on scheduling.
func (r *Runner) segmentBraids(ctx context.Context, g algebra.BiPoly, net *monodromy.Network, opts Options) ([]braid.Word, CacheInfo, error) {
	polyHash := cache.Hash([]byte(g.String()))
	words := make([]braid.Word, len(net.Segments))

	var mu sync.Mutex
	var info CacheInfo

	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(opts.Workers)
	total := len(net.Segments)
	for idx, seg := range net.Segments {
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			x0, x1 := net.Vertices[seg[0]], net.Vertices[seg[1]]
			key := r.Keyer.BraidKey(polyHash, cache.BraidKeyOpts{
				X0:        x0.String(),
				X1:        x1.String(),
				Precision: opts.Precision,
			})
			if !opts.Refresh {
				if data, ok, err := r.Cache.Get(ctx, key); err == nil && ok {
					var w braid.Word
					if json.Unmarshal(data, &w) == nil {
						observability.Cache().OnCacheHit(ctx, "braid")
						mu.Lock()
						info.BraidHits++
						mu.Unlock()
						words[idx] = w
						return nil
					}
				}
				observability.Cache().OnCacheMiss(ctx, "braid")
			}

			observability.Pipeline().OnSegmentStart(ctx, idx, total)
			start := time.Now()
			w, err := monodromy.SegmentBraid(g, x0, x1, opts.Precision, opts.MaxPrecision)
			observability.Pipeline().OnSegmentComplete(ctx, idx, len(w), time.Since(start), err)
			if err != nil {
				code := errors.GetCode(err)
				if code == "" {
					code = errors.ErrCodeInternal
				}
				return errors.Wrap(code, err, "segment %d of %d", idx, total)
			}
			words[idx] = w
			mu.Lock()
			info.BraidMisses++
			mu.Unlock()
			if data, err := json.Marshal(w); err == nil {
				_ = r.Cache.Set(ctx, key, data, cache.TTLBraid)
				observability.Cache().OnCacheSet(ctx, "braid", len(data))
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, info, err
	}
	return words, info, nil
}
