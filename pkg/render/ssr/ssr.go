package ssr

import (
	"bytes"
	"fmt"

	"golang.org/x/net/html"

	"github.com/matzehuels/miniart/pkg/art"
	"github.com/matzehuels/miniart/pkg/art/style"
)

// TagName is the custom element name of a tile host.
const TagName = "mini-art-bw"

// ArtLabel is the accessible name of the art node.
const ArtLabel = "Mini Art (B/W)"

// hostCSS sizes the host element around the art node.
const hostCSS = `:host{display:inline-block}
:host([size]) .art{width:var(--size)}`

// frameCSS holds the fixed, per-tile independent part of the .art rule.
const frameCSS = `width:var(--size); aspect-ratio:1/1;
  border-radius:8px; overflow:clip;`

const shadowCSS = `box-shadow:0 4px 16px #0002, inset 0 0 0 1px #0001;`

// propertyCSS registers the angles as typed properties so they interpolate
// while animating.
var propertyCSS = fmt.Sprintf(`@property --a1 { syntax:"<angle>"; inherits:true; initial-value:%s; }
@property --a2 { syntax:"<angle>"; inherits:true; initial-value:%s; }
@property --a3 { syntax:"<angle>"; inherits:true; initial-value:%s; }`,
	art.DefaultA1, art.DefaultA2, art.DefaultA3)

const keyframesCSS = `@keyframes spin-a1 { to { --a1: calc(var(--a1) + 1turn); } }
@keyframes spin-a2 { to { --a2: calc(var(--a2) + 1turn); } }
@keyframes spin-a3 { to { --a3: calc(var(--a3) + 1turn); } }`

// RenderShadow renders the declarative shadow tree of a tile with
// configuration c.
func RenderShadow(c art.Config) string {
	var buf bytes.Buffer
	WriteShadow(&buf, style.Synthesize(c))
	return buf.String()
}

// WriteShadow writes the shadow tree for an already synthesized style.
func WriteShadow(buf *bytes.Buffer, s style.Style) {
	buf.WriteString(`<template shadowrootmode="open">`)
	buf.WriteString("<style>\n")
	WriteStylesheet(buf, s)
	buf.WriteString("</style>\n")
	writeArt(buf, s.Animated())
	buf.WriteString("</template>")
}

// Stylesheet returns the complete stylesheet text for s.
func Stylesheet(s style.Style) string {
	var buf bytes.Buffer
	WriteStylesheet(&buf, s)
	return buf.String()
}

// WriteStylesheet writes the stylesheet of a tile. The .art rule declares the
// resolved variables and the background, one "name: value;" per line. The
// animation rule is always present and only takes effect through the animate
// class.
func WriteStylesheet(buf *bytes.Buffer, s style.Style) {
	buf.WriteString(hostCSS)
	buf.WriteString("\n.art{\n")
	for _, d := range s.Vars {
		fmt.Fprintf(buf, "  %s: %s;\n", d.Name, d.Value)
	}
	fmt.Fprintf(buf, "  %s\n", frameCSS)
	fmt.Fprintf(buf, "  %s: %s;\n", style.PropBackgroundColor, s.BackgroundColor)
	fmt.Fprintf(buf, "  %s: %s;\n", style.PropBackgroundImage, s.BackgroundImage())
	fmt.Fprintf(buf, "  background-blend-mode: %s;\n", s.BlendMode)
	fmt.Fprintf(buf, "  %s\n}\n", shadowCSS)
	buf.WriteString(propertyCSS)
	fmt.Fprintf(buf, "\n.art.animate{ animation: %s; }\n", style.DefaultTiming.Value())
	buf.WriteString(keyframesCSS)
	buf.WriteByte('\n')
}

func writeArt(buf *bytes.Buffer, animate bool) {
	class := "art"
	if animate {
		class += " animate"
	}
	fmt.Fprintf(buf, `<div class="%s" part="art" aria-label="%s"></div>`, class, ArtLabel)
}

// TileOption configures [RenderTile].
type TileOption func(*tileRenderer)

type tileRenderer struct {
	id    string
	class string
}

// WithID sets the id attribute of the host element.
func WithID(id string) TileOption { return func(r *tileRenderer) { r.id = id } }

// WithClass sets the class attribute of the host element.
func WithClass(class string) TileOption { return func(r *tileRenderer) { r.class = class } }

// RenderTile renders a complete tile: the host element carrying the bag as
// attributes, wrapping the shadow tree for the normalized bag. The host
// attributes let the browser module re-derive the same configuration.
func RenderTile(a art.Attrs, opts ...TileOption) string {
	var buf bytes.Buffer
	WriteTile(&buf, a, opts...)
	return buf.String()
}

// WriteTile is like [RenderTile] but writes into buf.
func WriteTile(buf *bytes.Buffer, a art.Attrs, opts ...TileOption) {
	var r tileRenderer
	for _, opt := range opts {
		opt(&r)
	}

	buf.WriteString("<" + TagName)
	if r.id != "" {
		writeAttr(buf, html.Attribute{Key: "id", Val: r.id}, true)
	}
	if r.class != "" {
		writeAttr(buf, html.Attribute{Key: "class", Val: r.class}, true)
	}
	for _, attr := range art.ToAttributes(a) {
		writeAttr(buf, attr, attr.Key != art.KeyAnimate)
	}
	buf.WriteString(">")
	WriteShadow(buf, style.Synthesize(art.Normalize(a)))
	buf.WriteString("</" + TagName + ">")
}

func writeAttr(buf *bytes.Buffer, attr html.Attribute, valued bool) {
	buf.WriteByte(' ')
	buf.WriteString(attr.Key)
	if valued {
		buf.WriteString(`="`)
		buf.WriteString(html.EscapeString(attr.Val))
		buf.WriteByte('"')
	}
}
