// Package pipeline runs the tile pipeline for miniart.
//
// This package wires the pure core (normalize → synthesize → render) to the
// impure edges: a render cache, observability hooks and logging. The CLI and
// the HTTP server both go through it, so they cache, log and validate the
// same way.
//
// # Architecture
//
// A single tile goes through three steps:
//
//  1. Normalize: the raw bag becomes an art.Config (seed preset, overrides)
//  2. Synthesize: the config becomes a style.Style
//  3. Render: the style becomes markup, a stylesheet or JSON
//
// A gallery is an ordered list of tiles: the tile described by the request
// query (if any) followed by the canonical tiles, or N random tiles.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	tile, err := runner.RenderTile(ctx, art.Attrs{"seed": "3"}, pipeline.TileOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(tile.Markup)
//
//	g, err := runner.Gallery(ctx, pipeline.GalleryOptions{Query: r.URL.Query()})
package pipeline

import (
	"fmt"
	"time"

	"github.com/matzehuels/miniart/pkg/art"
	apperr "github.com/matzehuels/miniart/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultTitle is the gallery page title.
	DefaultTitle = "mini-art-bw (SSR + Shadow DOM)"

	// DefaultTileSize is the size given to gallery tiles that carry none.
	DefaultTileSize = art.DefaultRandomSize

	// DefaultRandomCount is the number of tiles on a random page when the
	// requested count is missing or unusable.
	DefaultRandomCount = 6

	// DefaultMaxRandom bounds the number of random tiles per page.
	DefaultMaxRandom = 48
)

// CanonicalTiles are shown on every gallery page that is not random.
var CanonicalTiles = []art.Attrs{
	{"seed": "1", "size": "280px"},
	{"seed": "3", "size": "280px", "lit": "62%"},
	{"seed": "5", "size": "280px", "cell": "10px", "r": ".90"},
	{"size": "280px", "a1": ".05turn", "a2": ".25turn", "a3": ".6turn", "lit": "70%"},
	{"seed": "2", "size": "280px", "animate": true},
}

// Format constants for single-tile output.
const (
	FormatHTML = "html"
	FormatCSS  = "css"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatHTML: true,
	FormatCSS:  true,
	FormatJSON: true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return apperr.New(apperr.ErrCodeInvalidFormat, "invalid format: %q (must be one of: html, css, json)", format)
	}
	return nil
}

// =============================================================================
// Options and Results
// =============================================================================

// TileOptions control how a single tile is rendered.
type TileOptions struct {
	// ID and Class are set on the host element.
	ID    string
	Class string

	// Strict rejects bags that fail art.Validate instead of degrading them.
	Strict bool

	// NoCache skips both cache lookup and store, e.g. for random tiles that
	// will never be requested again.
	NoCache bool
}

// Tile is one rendered tile.
type Tile struct {
	ID      string     `json:"id,omitempty"`
	Attrs   art.Attrs  `json:"attrs"`
	Config  art.Config `json:"config"`
	Markup  string     `json:"markup"`
	Query   string     `json:"query"`   // share-link query, see art.ToQuery
	Caption string     `json:"caption"` // attribute-syntax summary, see art.Caption
	Cached  bool       `json:"cached"`
}

// Link returns the gallery URL that reproduces the tile.
func (t Tile) Link() string {
	if t.Query == "" {
		return "/"
	}
	return "/?" + t.Query
}

// Stats contains gallery execution statistics.
type Stats struct {
	Tiles      int
	CacheHits  int
	RenderTime time.Duration
}

// checkCount validates a requested random tile count against max.
func checkCount(n, max int) error {
	if err := apperr.ValidateCount("random", n, max); err != nil {
		return fmt.Errorf("random tiles: %w", err)
	}
	return nil
}
