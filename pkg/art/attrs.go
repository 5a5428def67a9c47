package art

// Recognized input keys. Both the query adapter and the attribute adapter
// extract exactly these.
const (
	KeyTemplate = "template"
	KeySize     = "size"
	KeySeed     = "seed"
	KeyHue      = "hue"
	KeySat      = "sat"
	KeyLit      = "lit"
	KeyCell     = "cell"
	KeyR        = "r"
	KeyA1       = "a1"
	KeyA2       = "a2"
	KeyA3       = "a3"
	KeyAnimate  = "animate"
	KeyBg       = "bg"
)

// Keys lists the recognized keys in the order they are written back out as
// element attributes.
var Keys = []string{
	KeyTemplate, KeySize, KeySeed, KeyHue, KeySat, KeyLit,
	KeyCell, KeyR, KeyA1, KeyA2, KeyA3, KeyAnimate, KeyBg,
}

// IsKey reports whether k is a recognized input key.
func IsKey(k string) bool {
	for _, known := range Keys {
		if k == known {
			return true
		}
	}
	return false
}

// Attrs is a raw input bag: recognized key to string, bool, or absent.
// Values of any other type are treated as absent by [Normalize].
type Attrs map[string]any

// String returns the string stored under k, or "" when the key is absent,
// empty, or holds a non-string value.
func (a Attrs) String(k string) string {
	s, _ := a[k].(string)
	return s
}

// Flag reports whether k holds the boolean true.
func (a Attrs) Flag(k string) bool {
	b, _ := a[k].(bool)
	return b
}

// HasValue reports whether the bag carries any recognized, non-empty value.
// A bag with only false flags or empty strings is considered empty.
func (a Attrs) HasValue() bool {
	for _, k := range Keys {
		switch v := a[k].(type) {
		case string:
			if v != "" {
				return true
			}
		case bool:
			if v {
				return true
			}
		}
	}
	return false
}

// Clone returns a shallow copy of a.
func (a Attrs) Clone() Attrs {
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
