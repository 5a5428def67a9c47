package pipeline

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/miniart/pkg/art"
	"github.com/matzehuels/miniart/pkg/observability"
)

// RandomParam is the query parameter that switches a gallery to random
// tiles.
const RandomParam = "random"

// cardNamespace scopes the name-based UUIDs of gallery cards.
var cardNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/matzehuels/miniart/card"))

// GalleryOptions describe a gallery page.
type GalleryOptions struct {
	// Title defaults to DefaultTitle.
	Title string

	// Query is the request query. Recognized keys describe a tile shown
	// before the canonical ones; ?random=N replaces everything with N
	// random tiles.
	Query url.Values

	// Tiles are the canonical tiles. Nil means CanonicalTiles.
	Tiles []art.Attrs

	// RandomSize overrides the size of random tiles when set.
	RandomSize string

	// DefaultRandom is used when ?random is not a usable count. Zero means
	// DefaultRandomCount.
	DefaultRandom int

	// MaxRandom caps ?random. Zero means DefaultMaxRandom.
	MaxRandom int

	// Sanitize drops query values that could break out of the stylesheet.
	// Servers facing the public should set it.
	Sanitize bool
}

func (o *GalleryOptions) setDefaults() {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Tiles == nil {
		o.Tiles = CanonicalTiles
	}
	if o.DefaultRandom == 0 {
		o.DefaultRandom = DefaultRandomCount
	}
	if o.MaxRandom == 0 {
		o.MaxRandom = DefaultMaxRandom
	}
}

// Gallery is a rendered gallery page body.
type Gallery struct {
	Title     string
	Tiles     []Tile
	Random    bool // tiles were sampled
	FromQuery bool // the first tile came from the request query
	Stats     Stats
}

// Gallery renders the tiles of a gallery page. Card ids are name-based
// UUIDs of position and share query, so a page renders identically on every
// request and stays cacheable.
func (r *Runner) Gallery(ctx context.Context, opts GalleryOptions) (*Gallery, error) {
	opts.setDefaults()
	start := time.Now()

	g := &Gallery{Title: opts.Title}
	var err error
	if opts.Query.Has(RandomParam) {
		err = r.randomTiles(ctx, g, opts)
	} else {
		err = r.queryTiles(ctx, g, opts)
	}

	g.Stats.Tiles = len(g.Tiles)
	g.Stats.RenderTime = time.Since(start)
	observability.Render().OnPageComplete(ctx, len(g.Tiles), g.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}

	r.Logger.Debug("rendered gallery",
		"tiles", g.Stats.Tiles,
		"cache_hits", g.Stats.CacheHits,
		"random", g.Random,
		"duration", g.Stats.RenderTime)
	return g, nil
}

func (r *Runner) randomTiles(ctx context.Context, g *Gallery, opts GalleryOptions) error {
	g.Random = true
	n := RandomCount(opts.Query.Get(RandomParam), opts.DefaultRandom, opts.MaxRandom)
	for i := 0; i < n; i++ {
		a := r.Random()
		if opts.RandomSize != "" {
			a[art.KeySize] = opts.RandomSize
		}
		tile, err := r.RenderTile(ctx, a, TileOptions{ID: "card-" + uuid.NewString(), NoCache: true})
		if err != nil {
			return fmt.Errorf("random tile %d: %w", i, err)
		}
		g.Tiles = append(g.Tiles, tile)
	}
	return nil
}

func (r *Runner) queryTiles(ctx context.Context, g *Gallery, opts GalleryOptions) error {
	var bags []art.Attrs
	q := art.FromQuery(opts.Query)
	if opts.Sanitize {
		var dropped []string
		if q, dropped = art.Sanitize(q); len(dropped) > 0 {
			r.Logger.Warn("dropped unsafe query values", "keys", dropped)
		}
	}
	if q.HasValue() {
		g.FromQuery = true
		bags = append(bags, q)
	}
	bags = append(bags, opts.Tiles...)

	for i, a := range bags {
		tile, err := r.RenderTile(ctx, a, TileOptions{ID: cardID(i, a)})
		if err != nil {
			return fmt.Errorf("tile %d: %w", i, err)
		}
		if tile.Cached {
			g.Stats.CacheHits++
		}
		g.Tiles = append(g.Tiles, tile)
	}
	return nil
}

// cardID derives a stable element id for the i-th card showing a.
func cardID(i int, a art.Attrs) string {
	name := strconv.Itoa(i) + "?" + art.Identity(a)
	return "card-" + uuid.NewSHA1(cardNamespace, []byte(name)).String()
}

// RandomCount parses a requested random tile count. Missing, malformed or
// non-positive values yield def; values above max are capped.
func RandomCount(s string, def, max int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		n = def
	}
	if err := checkCount(n, max); err != nil {
		return max
	}
	return n
}
