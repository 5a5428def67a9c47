// Package element models the client side of a mini-art tile: the
// <mini-art-bw> custom element that restyles itself whenever one of its
// attributes changes.
//
// The model works on golang.org/x/net/html nodes instead of a browser DOM.
// An [Element] wraps a host node, adopts the declarative shadow tree that
// pkg/render/ssr produced (or builds one when there is none) and, on every
// observed attribute change, re-derives its configuration from its own
// attributes and hands it to a [Lifecycle]. The default lifecycle,
// [Applier], writes the synthesized style onto the .art node's inline style
// one property at a time and toggles the animate class, exactly like the
// browser module does.
//
// The browser module itself is embedded and served by [Script]. Its seed,
// color and layer tables are generated from the Go tables, so the two
// implementations read the same data.
package element
