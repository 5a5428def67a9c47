// Package style turns a normalized [art.Config] into the CSS that draws a
// tile.
//
// [Synthesize] is a pure function: it fills defaults for unset fields, forces
// the hue and saturation variables to grayscale, picks the three
// background-image layers for the configured template and resolves the flat
// background color. The result is an immutable [Style] value that both
// renderers consume: pkg/render/ssr prints it into a stylesheet, and
// pkg/render/element applies it to a live node one property at a time. Both
// read the same strings, so the two paths cannot disagree.
//
// The lookup tables ([Layers], [Colors], [DefaultTiming]) are process-wide
// constants. They are exported so the browser module can be generated from
// them rather than maintained by hand.
package style
