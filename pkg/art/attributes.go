package art

import (
	"strings"

	"golang.org/x/net/html"
)

// FromAttributes extracts a raw input bag from an element's attribute list.
//
// It mirrors [FromQuery]: recognized keys are copied as strings, animate is
// true when the attribute is present, and the first occurrence of a key wins.
// Attribute names are matched case-insensitively, as HTML does.
func FromAttributes(attrs []html.Attribute) Attrs {
	a := Attrs{}
	for _, attr := range attrs {
		if attr.Namespace != "" {
			continue
		}
		k := strings.ToLower(attr.Key)
		if !IsKey(k) {
			continue
		}
		if _, seen := a[k]; seen {
			continue
		}
		if k == KeyAnimate {
			a[k] = true
			continue
		}
		a[k] = attr.Val
	}
	return a
}

// ToAttributes renders a as element attributes in [Keys] order. Strings
// become key="value" pairs (empty strings included), true flags become
// bare attributes and false or non-string values are skipped.
func ToAttributes(a Attrs) []html.Attribute {
	var out []html.Attribute
	for _, k := range Keys {
		switch v := a[k].(type) {
		case string:
			out = append(out, html.Attribute{Key: k, Val: v})
		case bool:
			if v {
				out = append(out, html.Attribute{Key: k})
			}
		}
	}
	return out
}
