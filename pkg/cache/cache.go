// Package cache provides caching for expensive pipeline stages.
//
// The per-segment braid words dominate the pipeline's running time and
// depend only on the polynomial, the segment endpoints, and the working
// precision, so they cache well: recomputing a presentation with
// different assembly options (simplified, projective) reuses every
// braid. Entries are content-addressed through the Keyer, which hashes
// the exact inputs; stale data is therefore impossible and TTLs exist
// only to bound disk usage.
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface. Implementations must be safe for
// concurrent use; the pipeline reads and writes from per-segment
// goroutines.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Cache TTLs. Keys are content hashes of the exact inputs, so entries
// never go stale; the TTLs only bound how long unused results occupy
// the cache directory.
const (
	// TTLBraid applies to per-segment braid words.
	TTLBraid = 30 * 24 * time.Hour

	// TTLPresentation applies to assembled presentations.
	TTLPresentation = 30 * 24 * time.Hour
)
