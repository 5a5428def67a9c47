package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/miniart/pkg/art"
	"github.com/matzehuels/miniart/pkg/cache"
	"github.com/matzehuels/miniart/pkg/observability"
	"github.com/matzehuels/miniart/pkg/render/ssr"
)

// Runner encapsulates tile rendering with caching.
// Both CLI and server use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache, logger and random source. It
// is safe for concurrent use.
type Runner struct {
	Cache      cache.Cache
	Keyer      cache.Keyer
	Logger     *log.Logger
	Randomizer *art.Randomizer // nil uses the process-wide source

	// TTL is the lifetime of cached tile markup. Zero means cache.TTLTile.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
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
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// RenderTile renders the tile described by a. Markup comes from the cache
// when possible; cache failures are logged and treated as a miss.
func (r *Runner) RenderTile(ctx context.Context, a art.Attrs, opts TileOptions) (Tile, error) {
	if opts.Strict {
		if err := art.Validate(a); err != nil {
			return Tile{}, fmt.Errorf("validate tile: %w", err)
		}
	}

	cfg := art.Normalize(a)
	tile := Tile{
		ID:      opts.ID,
		Attrs:   a,
		Config:  cfg,
		Query:   art.ToQuery(a),
		Caption: art.Caption(a),
	}

	key := r.Keyer.TileKey(a, cache.TileKeyOpts{ID: opts.ID, Class: opts.Class})
	if !opts.NoCache {
		if data, ok := r.cacheGet(ctx, "tile", key); ok {
			tile.Markup = string(data)
			tile.Cached = true
			return tile, nil
		}
	}

	template := string(cfg.Template)
	if !cfg.Template.Valid() {
		template = string(art.DefaultTemplate)
	}
	hooks := observability.Render()
	hooks.OnTileStart(ctx, template)
	start := time.Now()

	var tileOpts []ssr.TileOption
	if opts.ID != "" {
		tileOpts = append(tileOpts, ssr.WithID(opts.ID))
	}
	if opts.Class != "" {
		tileOpts = append(tileOpts, ssr.WithClass(opts.Class))
	}
	tile.Markup = ssr.RenderTile(a, tileOpts...)
	hooks.OnTileComplete(ctx, template, len(tile.Markup), time.Since(start))

	if !opts.NoCache {
		ttl := r.TTL
		if ttl == 0 {
			ttl = cache.TTLTile
		}
		r.cacheSet(ctx, "tile", key, []byte(tile.Markup), ttl)
	}
	return tile, nil
}

// Page returns the page identified by opts from the cache, or calls render
// and stores its output for cache.TTLPage. The boolean reports a cache hit.
// Errors from render are returned unchanged and nothing is stored.
func (r *Runner) Page(ctx context.Context, opts cache.PageKeyOpts, render func() ([]byte, error)) ([]byte, bool, error) {
	key := r.Keyer.PageKey(opts)
	if data, ok := r.cacheGet(ctx, "page", key); ok {
		return data, true, nil
	}
	data, err := render()
	if err != nil {
		return nil, false, err
	}
	r.cacheSet(ctx, "page", key, data, cache.TTLPage)
	return data, false, nil
}

// Random samples a bag from the runner's random source.
func (r *Runner) Random() art.Attrs {
	if r.Randomizer != nil {
		return r.Randomizer.Attrs()
	}
	return art.Randomize()
}

// cacheGet reads key, reporting hits, misses and errors to the hooks.
func (r *Runner) cacheGet(ctx context.Context, keyType, key string) ([]byte, bool) {
	hooks := observability.Cache()
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Debug("cache get failed", "type", keyType, "err", err)
		hooks.OnCacheError(ctx, keyType, err)
		return nil, false
	}
	if !hit {
		hooks.OnCacheMiss(ctx, keyType)
		return nil, false
	}
	hooks.OnCacheHit(ctx, keyType)
	return data, true
}

// cacheSet stores data under key. Failures are logged only.
func (r *Runner) cacheSet(ctx context.Context, keyType, key string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Debug("cache set failed", "type", keyType, "err", err)
		observability.Cache().OnCacheError(ctx, keyType, err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
