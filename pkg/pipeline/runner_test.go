package pipeline

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algcurve/vankampen/pkg/cache"
)

func quietRunner(c cache.Cache) *Runner {
	return NewRunner(c, nil, log.New(io.Discard))
}

func TestExecuteLine(t *testing.T) {
	r := quietRunner(nil)
	result, err := r.Execute(context.Background(), Options{Poly: testLine()})
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)
	assert.Len(t, result.PolyHash, 64)
	assert.Equal(t, 1, result.Presentation.NumGenerators)
	assert.Empty(t, result.Presentation.Relators)
	assert.Equal(t, 0, result.Stats.BranchPoints)
	assert.Equal(t, 1, result.Stats.Vertices)
	assert.Equal(t, 0, result.Stats.Segments)
	assert.False(t, result.CacheInfo.PresentationHit)
}

func TestExecuteConic(t *testing.T) {
	r := quietRunner(nil)
	result, err := r.Execute(context.Background(), Options{Poly: testConic()})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.BranchPoints)
	assert.Equal(t, 4, result.Stats.Vertices)
	assert.Equal(t, 4, result.Stats.Segments)
	assert.Equal(t, 8, result.Presentation.NumGenerators)
	assert.Len(t, result.Presentation.Relators, 8)
	assert.Len(t, result.Braids, 4)
	assert.Equal(t, 4, result.CacheInfo.BraidMisses)
}

func TestExecutePresentationCache(t *testing.T) {
	store, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	r := quietRunner(store)
	defer r.Close()
	ctx := context.Background()

	first, err := r.Execute(ctx, Options{Poly: testConic()})
	require.NoError(t, err)
	assert.False(t, first.CacheInfo.PresentationHit)
	assert.Equal(t, 4, first.CacheInfo.BraidMisses)

	second, err := r.Execute(ctx, Options{Poly: testConic()})
	require.NoError(t, err)
	assert.True(t, second.CacheInfo.PresentationHit)
	assert.Equal(t, first.Presentation.NumGenerators, second.Presentation.NumGenerators)
	assert.Equal(t, len(first.Presentation.Relators), len(second.Presentation.Relators))
}

func TestExecuteBraidCacheSurvivesOptionChange(t *testing.T) {
	store, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	r := quietRunner(store)
	defer r.Close()
	ctx := context.Background()

	_, err = r.Execute(ctx, Options{Poly: testConic()})
	require.NoError(t, err)

	// a different assembly option misses the presentation cache but
	// reuses every segment braid
	result, err := r.Execute(ctx, Options{Poly: testConic(), Simplified: true})
	require.NoError(t, err)
	assert.False(t, result.CacheInfo.PresentationHit)
	assert.Equal(t, 4, result.CacheInfo.BraidHits)
	assert.Equal(t, 0, result.CacheInfo.BraidMisses)
	assert.Equal(t, 1, result.Presentation.NumGenerators)
	assert.Empty(t, result.Presentation.Relators)
}

func TestExecuteRefreshBypassesReads(t *testing.T) {
	store, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	r := quietRunner(store)
	defer r.Close()
	ctx := context.Background()

	_, err = r.Execute(ctx, Options{Poly: testConic()})
	require.NoError(t, err)

	result, err := r.Execute(ctx, Options{Poly: testConic(), Refresh: true})
	require.NoError(t, err)
	assert.False(t, result.CacheInfo.PresentationHit)
	assert.Equal(t, 0, result.CacheInfo.BraidHits)
	assert.Equal(t, 4, result.CacheInfo.BraidMisses)
}

func TestExecuteInvalidOptions(t *testing.T) {
	r := quietRunner(nil)
	_, err := r.Execute(context.Background(), Options{})
	assert.Error(t, err)
}
