// Package ssr renders mini-art tiles as static markup.
//
// The output uses declarative shadow DOM: a <template shadowrootmode="open">
// holding a stylesheet and a single empty .art node. Browsers attach the
// shadow root while parsing, so a tile is fully styled before any script
// runs. The browser module in pkg/render/element later adopts that root
// instead of building a new one.
//
// Every per-tile value is resolved by [style.Synthesize] and written into the
// stylesheet as a literal. Nothing is escaped: configuration values are
// trusted to have the documented CSS shapes. Callers exposing the renderer to
// untrusted input should pass bags through art.Sanitize first.
//
//	cfg := art.Normalize(art.Attrs{"seed": "3", "template": "grid"})
//	shadow := ssr.RenderShadow(cfg)
//
//	tile := ssr.RenderTile(art.Attrs{"seed": "3"}, ssr.WithID("card-1"))
package ssr
