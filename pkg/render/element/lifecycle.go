package element

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/matzehuels/miniart/pkg/art"
	"github.com/matzehuels/miniart/pkg/art/style"
	"github.com/matzehuels/miniart/pkg/render/ssr"
)

// Lifecycle is what an [Element] delegates rendering to. The element owns
// attribute bookkeeping and hydration; the lifecycle owns the markup.
type Lifecycle interface {
	// Construct builds a detached shadow tree for c: a template node that
	// contains exactly one .art node.
	Construct(c art.Config) *html.Node
	// OnConfigChange brings the .art node in line with c.
	OnConfigChange(node *html.Node, c art.Config)
}

// Applier is the default [Lifecycle]. It mirrors the browser module: one
// property write per custom property, then the background image and color,
// then the animate class.
type Applier struct{}

var _ Lifecycle = Applier{}

// Construct builds the server rendering of c as nodes, so a tile built on
// the client starts out identical to one rendered on the server. The
// stylesheet is a single text node; no attribute value can reshape the tree.
func (Applier) Construct(c art.Config) *html.Node {
	s := style.Synthesize(c)

	root := element(atom.Template, html.Attribute{Key: "shadowrootmode", Val: "open"})
	sheet := element(atom.Style)
	sheet.AppendChild(&html.Node{Type: html.TextNode, Data: "\n" + ssr.Stylesheet(s)})
	root.AppendChild(sheet)
	root.AppendChild(&html.Node{Type: html.TextNode, Data: "\n"})

	class := "art"
	if s.Animated() {
		class += " animate"
	}
	root.AppendChild(element(atom.Div,
		html.Attribute{Key: "class", Val: class},
		html.Attribute{Key: "part", Val: "art"},
		html.Attribute{Key: "aria-label", Val: ssr.ArtLabel},
	))
	return root
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

// OnConfigChange applies the synthesized style of c to node's inline style.
func (Applier) OnConfigChange(node *html.Node, c art.Config) {
	s := style.Synthesize(c)

	v, _ := getAttr(node, "style")
	inline := ParseInlineStyle(v)
	for _, d := range s.Vars {
		inline.SetProperty(d.Name, d.Value)
	}
	inline.SetProperty(style.PropBackgroundImage, s.BackgroundImage())
	inline.SetProperty(style.PropBackgroundColor, s.BackgroundColor)
	setAttr(node, "style", inline.String())

	toggleClass(node, "animate", s.Animated())
}
