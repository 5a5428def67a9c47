// Package render groups the two ways a tile reaches the page.
//
// # Server
//
// The [ssr] subpackage writes a tile as a <mini-art-bw> host wrapping a
// declarative shadow root. Browsers attach that root while parsing, so the
// tile is styled before any script runs.
//
//	markup := ssr.RenderTile(art.Attrs{"seed": "5", "template": "radial"})
//
// # Client
//
// The [element] subpackage models the custom element over
// golang.org/x/net/html nodes: it adopts a server-rendered root or builds
// one, and restyles the art node in place when observed attributes change.
// It also serves the browser module, mini-art-bw.js, whose lookup tables
// are generated from the same Go tables.
//
// Both paths read the same style.Style, which keeps their output equal for
// equal input.
//
// [ssr]: github.com/matzehuels/miniart/pkg/render/ssr
// [element]: github.com/matzehuels/miniart/pkg/render/element
package render
