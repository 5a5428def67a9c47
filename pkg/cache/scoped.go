package cache

// ScopedKeyer prefixes every key of an inner [Keyer]. It is what the
// cache.prefix setting of `miniart serve` installs, so a staging and a
// production gallery can share one redis without serving each other's pages:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or the [DefaultKeyer] when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// TileKey returns the prefixed tile key.
func (k *ScopedKeyer) TileKey(attrs map[string]any, opts TileKeyOpts) string {
	return k.prefix + k.inner.TileKey(attrs, opts)
}

// PageKey returns the prefixed gallery page key.
func (k *ScopedKeyer) PageKey(opts PageKeyOpts) string {
	return k.prefix + k.inner.PageKey(opts)
}
