package art

import (
	"net/url"
	"strings"
)

// FromQuery extracts a raw input bag from URL query parameters.
//
// Every recognized key present in q is copied with its first value; animate
// is true when the key is present at all, whatever its value. Unknown keys
// are dropped.
func FromQuery(q url.Values) Attrs {
	a := Attrs{}
	for _, k := range Keys {
		if !q.Has(k) {
			continue
		}
		if k == KeyAnimate {
			a[k] = true
			continue
		}
		a[k] = q.Get(k)
	}
	return a
}

// shareKeys are the keys carried by a share link, in link order. Size is left
// out so a shared tile adopts the size of the page that opens it; hue and sat
// have no visual effect.
var shareKeys = []string{KeyTemplate, KeySeed, KeyLit, KeyCell, KeyR, KeyA1, KeyA2, KeyA3, KeyBg}

// ToQuery encodes the shareable fields of a as a query string, preserving a
// fixed key order so equal bags always produce equal links. Animate is
// written as a bare "animate=" flag.
func ToQuery(a Attrs) string {
	var b strings.Builder
	add := func(k, v string) {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(v))
	}
	for _, k := range shareKeys {
		if v := a.String(k); v != "" {
			add(k, v)
		}
	}
	if a.Flag(KeyAnimate) {
		add(KeyAnimate, "")
	}
	return b.String()
}

// Identity encodes every recognized key of a, in [Keys] order, as a query
// string. Unlike [ToQuery] it keeps size, hue, sat and empty values, so two
// bags share an identity only when they hold the same recognized input.
func Identity(a Attrs) string {
	var b strings.Builder
	for _, k := range Keys {
		var v string
		switch x := a[k].(type) {
		case string:
			v = "=" + url.QueryEscape(x)
		case bool:
			if !x {
				continue
			}
		default:
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteString(v)
	}
	return b.String()
}

// Caption describes the shareable fields of a in attribute syntax, e.g.
// `template="grid" seed="3" animate`.
func Caption(a Attrs) string {
	var parts []string
	for _, k := range shareKeys {
		if v := a.String(k); v != "" {
			parts = append(parts, k+`="`+v+`"`)
		}
	}
	if a.Flag(KeyAnimate) {
		parts = append(parts, KeyAnimate)
	}
	return strings.Join(parts, " ")
}
