// Package pkg provides the core libraries for miniart, pure-CSS black and
// white art tiles.
//
// # Overview
//
// A tile is a <mini-art-bw> custom element whose look is fully described by
// a handful of attributes: a seed preset, lightness, grain, vignette radius,
// three angles, a layer template and an optional flat background. The pkg
// directory is organized into these areas:
//
//  1. [art] - Input bags, normalization, seeds, randomization, validation
//  2. [art/style] - Style synthesis (CSS variables, layers, colors, animation)
//  3. [render] - Server markup ([render/ssr]) and the client element
//     ([render/element])
//  4. [pipeline] - Orchestration (normalize → synthesize → render) with
//     caching and galleries
//  5. [cache], [errors], [observability], [buildinfo] - Infrastructure
//
// # Architecture
//
// The data flow through miniart:
//
//	raw attribute bag (query string or element attributes)
//	         ↓
//	    [art] Normalize (seed preset, then explicit overrides)
//	         ↓
//	    [art/style] Synthesize
//	         ↓
//	    [render/ssr] declarative shadow DOM   or   [render/element] live styles
//
// Both render paths consume the same synthesized style, so a tile rendered
// on the server and a tile built in the browser look the same.
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/miniart/pkg/art"
//	    "github.com/matzehuels/miniart/pkg/render/ssr"
//	)
//
//	markup := ssr.RenderTile(art.Attrs{"seed": "3", "lit": "62%"})
//
// [art]: github.com/matzehuels/miniart/pkg/art
// [art/style]: github.com/matzehuels/miniart/pkg/art/style
// [render]: github.com/matzehuels/miniart/pkg/render
// [render/ssr]: github.com/matzehuels/miniart/pkg/render/ssr
// [render/element]: github.com/matzehuels/miniart/pkg/render/element
// [pipeline]: github.com/matzehuels/miniart/pkg/pipeline
// [cache]: github.com/matzehuels/miniart/pkg/cache
// [errors]: github.com/matzehuels/miniart/pkg/errors
// [observability]: github.com/matzehuels/miniart/pkg/observability
// [buildinfo]: github.com/matzehuels/miniart/pkg/buildinfo
package pkg
