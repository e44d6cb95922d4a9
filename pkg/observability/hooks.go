// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about pipeline execution, precision escalation, and cache
// operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnSegmentStart(ctx, idx, total)
//	// ... track the segment braid ...
//	observability.Pipeline().OnSegmentComplete(ctx, idx, wordLen, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the fundamental-group pipeline.
type PipelineHooks interface {
	// Discriminant events
	OnDiscriminantStart(ctx context.Context, degY int)
	OnDiscriminantComplete(ctx context.Context, branchPoints int, duration time.Duration, err error)

	// Path network events
	OnNetworkComplete(ctx context.Context, vertices, segments int, duration time.Duration)

	// Per-segment braid events
	OnSegmentStart(ctx context.Context, index, total int)
	OnSegmentComplete(ctx context.Context, index, wordLen int, duration time.Duration, err error)

	// Presentation assembly events
	OnAssemblyComplete(ctx context.Context, generators, relators int, duration time.Duration, err error)
}

// =============================================================================
// Tracker Hooks
// =============================================================================

// TrackerHooks receives events from the certified root continuation.
// These run deep inside per-segment numeric code and carry no context.
type TrackerHooks interface {
	// OnPrecisionRetry records a restart at the given working precision
	// after a certification failure.
	OnPrecisionRetry(bits uint)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnDiscriminantStart(context.Context, int) {}
func (NoopPipelineHooks) OnDiscriminantComplete(context.Context, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnNetworkComplete(context.Context, int, int, time.Duration)          {}
func (NoopPipelineHooks) OnSegmentStart(context.Context, int, int)                            {}
func (NoopPipelineHooks) OnSegmentComplete(context.Context, int, int, time.Duration, error)   {}
func (NoopPipelineHooks) OnAssemblyComplete(context.Context, int, int, time.Duration, error)  {}

// NoopTrackerHooks is a no-op implementation of TrackerHooks.
type NoopTrackerHooks struct{}

func (NoopTrackerHooks) OnPrecisionRetry(uint) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	trackerHooks  TrackerHooks  = NoopTrackerHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetTrackerHooks registers custom continuation hooks.
// This should be called once at application startup before any pipeline operations.
func SetTrackerHooks(h TrackerHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		trackerHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Tracker returns the registered continuation hooks.
func Tracker() TrackerHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return trackerHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	trackerHooks = NoopTrackerHooks{}
	cacheHooks = NoopCacheHooks{}
}
