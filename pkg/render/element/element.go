package element

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/matzehuels/miniart/pkg/art"
	"github.com/matzehuels/miniart/pkg/render/ssr"
)

// TagName is the custom element name handled by [Upgrade].
const TagName = ssr.TagName

// ObservedAttributes are the host attributes whose changes trigger a
// restyle.
var ObservedAttributes = art.Keys

// Option configures an [Element].
type Option func(*Element)

// WithLifecycle replaces the default [Applier].
func WithLifecycle(lc Lifecycle) Option {
	return func(e *Element) { e.lc = lc }
}

// Element is a live <mini-art-bw> host. It is not safe for concurrent use,
// just like the DOM node it models.
type Element struct {
	host *html.Node
	root *html.Node
	art  *html.Node
	lc   Lifecycle
}

// New upgrades host. A declarative shadow tree that already holds a .art
// node is adopted as is; otherwise the shadow tree is (re)built by the
// lifecycle, or from the default configuration when the lifecycle's tree has
// no .art node. The element then syncs once.
func New(host *html.Node, opts ...Option) *Element {
	e := &Element{host: host, lc: Applier{}}
	for _, opt := range opts {
		opt(e)
	}
	e.attach()
	e.Sync()
	return e
}

func (e *Element) attach() {
	root := shadowRoot(e.host)
	if root != nil {
		if n := find(root, isArt); n != nil {
			e.root, e.art = root, n
			return
		}
	}

	built := e.lc.Construct(e.Config())
	if find(built, isArt) == nil {
		built = Applier{}.Construct(art.Config{})
	}
	if root == nil {
		e.host.InsertBefore(built, e.host.FirstChild)
		root = built
	} else {
		removeChildren(root)
		for c := built.FirstChild; c != nil; {
			next := c.NextSibling
			built.RemoveChild(c)
			root.AppendChild(c)
			c = next
		}
	}
	e.root, e.art = root, find(root, isArt)
}

// Host returns the host node.
func (e *Element) Host() *html.Node { return e.host }

// ShadowRoot returns the template node holding the shadow tree.
func (e *Element) ShadowRoot() *html.Node { return e.root }

// Art returns the styled .art node.
func (e *Element) Art() *html.Node { return e.art }

// Attrs re-derives the raw input bag from the host attributes.
func (e *Element) Attrs() art.Attrs {
	return art.FromAttributes(e.host.Attr)
}

// Config re-derives the configuration from the host attributes.
func (e *Element) Config() art.Config {
	return art.Normalize(e.Attrs())
}

// Sync restyles the art node from the current attributes. Calling it again
// without an attribute change has no effect.
func (e *Element) Sync() {
	e.lc.OnConfigChange(e.art, e.Config())
}

// AttributeChanged is the attribute-change callback; it restyles when name is
// observed.
func (e *Element) AttributeChanged(name string) {
	if art.IsKey(strings.ToLower(name)) {
		e.Sync()
	}
}

// GetAttribute returns the host attribute name.
func (e *Element) GetAttribute(name string) (string, bool) {
	return getAttr(e.host, name)
}

// HasAttribute reports whether the host carries name.
func (e *Element) HasAttribute(name string) bool {
	_, ok := getAttr(e.host, name)
	return ok
}

// SetAttribute sets a host attribute and fires the change callback.
func (e *Element) SetAttribute(name, value string) {
	setAttr(e.host, name, value)
	e.AttributeChanged(name)
}

// RemoveAttribute removes a host attribute and fires the change callback when
// it was present.
func (e *Element) RemoveAttribute(name string) {
	if removeAttr(e.host, name) {
		e.AttributeChanged(name)
	}
}

// Lit returns the lit attribute.
func (e *Element) Lit() string {
	v, _ := e.GetAttribute(art.KeyLit)
	return v
}

// SetLit sets lit; an empty value removes it.
func (e *Element) SetLit(v string) { e.setOrRemove(art.KeyLit, v) }

// Seed returns the seed attribute.
func (e *Element) Seed() string {
	v, _ := e.GetAttribute(art.KeySeed)
	return v
}

// SetSeed sets seed; an empty value removes it.
func (e *Element) SetSeed(v string) { e.setOrRemove(art.KeySeed, v) }

// Animate reports whether the animate attribute is present.
func (e *Element) Animate() bool { return e.HasAttribute(art.KeyAnimate) }

// SetAnimate adds or removes the animate attribute.
func (e *Element) SetAnimate(on bool) {
	if on {
		e.SetAttribute(art.KeyAnimate, "")
		return
	}
	e.RemoveAttribute(art.KeyAnimate)
}

func (e *Element) setOrRemove(name, v string) {
	if v == "" {
		e.RemoveAttribute(name)
		return
	}
	e.SetAttribute(name, v)
}

// InlineStyle returns a snapshot of the art node's inline style.
func (e *Element) InlineStyle() *InlineStyle {
	v, _ := getAttr(e.art, "style")
	return ParseInlineStyle(v)
}

// Upgrade wraps every <mini-art-bw> host below root, in document order.
func Upgrade(root *html.Node, opts ...Option) []*Element {
	var out []*Element
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == TagName {
				out = append(out, New(c, opts...))
				continue
			}
			walk(c)
		}
	}
	walk(root)
	return out
}
