package cache

// Keyer generates cache keys for the pipeline's cacheable stages. Keys
// must encode every input the cached value depends on: the polynomial
// hash already pins the curve, so the remaining fields pin the segment
// geometry and the computation options.
type Keyer interface {
	// BraidKey keys one segment's braid word.
	BraidKey(polyHash string, opts BraidKeyOpts) string

	// PresentationKey keys an assembled presentation.
	PresentationKey(polyHash string, opts PresentationKeyOpts) string
}

// BraidKeyOpts pin a segment braid: the exact endpoint coordinates (as
// canonical strings) and the starting precision, which fixes the root
// matching at the fiber boundaries.
type BraidKeyOpts struct {
	X0        string
	X1        string
	Precision uint
}

// PresentationKeyOpts pin an assembled presentation.
type PresentationKeyOpts struct {
	Simplified bool
	Projective bool
	Precision  uint
}

// DefaultKeyer hashes the inputs with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// BraidKey generates a key for one segment's braid word.
func (k *DefaultKeyer) BraidKey(polyHash string, opts BraidKeyOpts) string {
	return hashKey("braid", polyHash, opts.X0, opts.X1, opts.Precision)
}

// PresentationKey generates a key for an assembled presentation.
func (k *DefaultKeyer) PresentationKey(polyHash string, opts PresentationKeyOpts) string {
	return hashKey("presentation", polyHash, opts.Simplified, opts.Projective, opts.Precision)
}

// ScopedKeyer wraps a Keyer with a prefix, giving callers that share a
// cache directory separate namespaces.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to every key.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// BraidKey generates a prefixed braid key.
func (k *ScopedKeyer) BraidKey(polyHash string, opts BraidKeyOpts) string {
	return k.prefix + k.inner.BraidKey(polyHash, opts)
}

// PresentationKey generates a prefixed presentation key.
func (k *ScopedKeyer) PresentationKey(polyHash string, opts PresentationKeyOpts) string {
	return k.prefix + k.inner.PresentationKey(polyHash, opts)
}
