package art

import apperr "github.com/matzehuels/miniart/pkg/errors"

// Sanitize returns a copy of a without the string values that could escape
// the stylesheet they are printed into, e.g. a size containing "</style>".
// Everything else is kept, including out-of-range values: the permissive
// render path still degrades them on its own. Unrecognized keys are dropped.
//
// The removed keys are returned so callers can log them.
func Sanitize(a Attrs) (Attrs, []string) {
	out := Attrs{}
	var dropped []string
	for _, k := range Keys {
		v, ok := a[k]
		if !ok {
			continue
		}
		if s, isString := v.(string); isString && s != "" {
			if err := apperr.ValidateCSSValue(k, s); err != nil {
				dropped = append(dropped, k)
				continue
			}
		}
		out[k] = v
	}
	return out, dropped
}
