package element

import (
	"slices"
	"strings"

	"golang.org/x/net/html"
)

func getAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, key) {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, key) {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) bool {
	for i, a := range n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, key) {
			n.Attr = slices.Delete(n.Attr, i, i+1)
			return true
		}
	}
	return false
}

func hasClass(n *html.Node, class string) bool {
	v, _ := getAttr(n, "class")
	return slices.Contains(strings.Fields(v), class)
}

// toggleClass adds or removes class, keeping the other classes in order.
func toggleClass(n *html.Node, class string, on bool) {
	v, _ := getAttr(n, "class")
	fields := strings.Fields(v)
	i := slices.Index(fields, class)
	switch {
	case on && i < 0:
		fields = append(fields, class)
	case !on && i >= 0:
		fields = slices.Delete(fields, i, i+1)
	default:
		return
	}
	setAttr(n, "class", strings.Join(fields, " "))
}

// find returns the first element below n (depth first, n excluded) that
// satisfies match.
func find(n *html.Node, match func(*html.Node) bool) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && match(c) {
			return c
		}
		if found := find(c, match); found != nil {
			return found
		}
	}
	return nil
}

func isShadowTemplate(n *html.Node) bool {
	if n.Data != "template" {
		return false
	}
	_, ok := getAttr(n, "shadowrootmode")
	return ok
}

func isArt(n *html.Node) bool {
	return hasClass(n, "art")
}

// shadowRoot returns the direct template child of host that declares a
// shadow root.
func shadowRoot(host *html.Node) *html.Node {
	for c := host.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && isShadowTemplate(c) {
			return c
		}
	}
	return nil
}

func removeChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
}
