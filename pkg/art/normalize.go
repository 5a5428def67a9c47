package art

import "github.com/matzehuels/miniart/pkg/art/seeds"

// Normalize converts a raw input bag into a Config.
//
// If the bag names a registered seed, its lightness and angles form the base.
// Explicit fields then override that base one at a time; a field missing from
// the bag keeps whatever the seed supplied, or stays unset. String slots only
// accept string values (an empty string counts as missing) and animate only
// accepts the boolean true. Nothing is range- or enum-checked here; unknown
// keys, hue and sat never reach the result.
func Normalize(a Attrs) Config {
	var c Config

	if p, ok := seeds.Lookup(a.String(KeySeed)); ok {
		c.L, c.A1, c.A2, c.A3 = p.L, p.A1, p.A2, p.A3
	}

	override(&c.Size, a, KeySize)
	override(&c.L, a, KeyLit)
	override(&c.Cell, a, KeyCell)
	override(&c.R, a, KeyR)
	override(&c.A1, a, KeyA1)
	override(&c.A2, a, KeyA2)
	override(&c.A3, a, KeyA3)

	if t := a.String(KeyTemplate); t != "" {
		c.Template = Template(t)
	}
	if bg := a.String(KeyBg); bg != "" {
		c.Background = Background(bg)
	}
	if a.Flag(KeyAnimate) {
		c.Animate = true
	}
	return c
}

func override(dst *string, a Attrs, key string) {
	if v := a.String(key); v != "" {
		*dst = v
	}
}
