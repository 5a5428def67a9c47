// Package cache provides the render cache that sits in front of tile and
// page markup.
//
// Rendering a tile is cheap but not free, and a gallery page renders many of
// them. Since the output is a pure function of the input bag, markup can be
// cached under a key derived from that bag and served again without running
// the pipeline.
//
// # Backends
//
//   - [NullCache]: stores nothing (caching disabled)
//   - [FileCache]: one JSON file per entry, for the CLI
//   - [RedisCache]: shared cache for multi-instance servers
//
// A cache failure is never fatal to a render: callers treat errors as a miss
// and log them.
//
// # Keys
//
// Keys are produced by a [Keyer] so that every backend agrees on them.
// [ScopedKeyer] prefixes another keyer's keys to share one backend between
// several deployments.
package cache

import (
	"context"
	"time"
)

// Default entry lifetimes.
const (
	// TTLTile is the lifetime of a single tile's markup.
	TTLTile = 24 * time.Hour

	// TTLPage is the lifetime of a rendered gallery page.
	TTLPage = time.Hour
)

// Cache stores opaque byte values under string keys.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the value for key. The boolean is false on a miss; an
	// expired entry is a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer derives cache keys.
type Keyer interface {
	// TileKey identifies the markup of one tile.
	TileKey(attrs map[string]any, opts TileKeyOpts) string

	// PageKey identifies a rendered gallery page.
	PageKey(opts PageKeyOpts) string
}

// TileKeyOpts are the render options that change a tile's markup.
type TileKeyOpts struct {
	ID    string `json:"id,omitempty"`
	Class string `json:"class,omitempty"`
}

// PageKeyOpts are the inputs that change a gallery page.
type PageKeyOpts struct {
	Title string `json:"title"`
	Query string `json:"query"`
	Size  string `json:"size"`
}

// keyVersion is bumped whenever the rendered markup changes shape, so old
// entries stop matching.
const keyVersion = 1

// DefaultKeyer is the standard [Keyer]: a type prefix and a SHA-256 over the
// key inputs.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// TileKey returns "tile:<hash>". Map keys are hashed in sorted order, so the
// key does not depend on how the bag was built.
func (DefaultKeyer) TileKey(attrs map[string]any, opts TileKeyOpts) string {
	return hashKey("tile", keyVersion, attrs, opts)
}

// PageKey returns "page:<hash>".
func (DefaultKeyer) PageKey(opts PageKeyOpts) string {
	return hashKey("page", keyVersion, opts)
}
