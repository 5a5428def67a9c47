package style

import (
	"strings"

	"github.com/matzehuels/miniart/pkg/art"
)

// Custom property names, in the order they are emitted.
const (
	VarSize = "--size"
	VarCell = "--cell"
	VarR    = "--r"
	VarL    = "--L"
	VarH    = "--H"
	VarSat  = "--SAT"
	VarA1   = "--a1"
	VarA2   = "--a2"
	VarA3   = "--a3"
)

// VarNames lists the custom properties of a tile in emission order.
var VarNames = []string{VarSize, VarCell, VarR, VarL, VarH, VarSat, VarA1, VarA2, VarA3}

// Grayscale values written for --H and --SAT whatever the input says.
const (
	GrayHue        = "0"
	GraySaturation = "0%"
)

// Regular properties set on the art node next to the custom properties.
const (
	PropBackgroundImage = "background-image"
	PropBackgroundColor = "background-color"
)

// Declaration is one CSS property assignment.
type Declaration struct {
	Name  string
	Value string
}

// Timing is the animation applied to each of the three angles.
type Timing struct {
	A1 string
	A2 string
	A3 string
}

// DefaultTiming spins the three angles at different rates; the middle one
// runs backwards.
var DefaultTiming = Timing{
	A1: "18s linear infinite",
	A2: "24s linear infinite reverse",
	A3: "32s linear infinite",
}

// Value renders t as a CSS animation list over the spin-a1..spin-a3
// keyframes.
func (t Timing) Value() string {
	return "spin-a1 " + t.A1 + ", spin-a2 " + t.A2 + ", spin-a3 " + t.A3
}

// Style is the complete visual description of one tile. It is produced by
// [Synthesize] and never modified afterwards.
type Style struct {
	Vars            []Declaration // custom properties, in VarNames order
	Layers          []string      // background-image layers, bottom first
	BlendMode       string
	BackgroundColor string
	Animation       *Timing // nil when the tile is static
}

// Synthesize derives the style of a tile from its configuration. Unset
// fields take their documented defaults and unknown templates fall back to
// [art.DefaultTemplate]. The same Config always yields an equal Style.
func Synthesize(c art.Config) Style {
	l := or(c.L, art.DefaultL)
	s := Style{
		Vars: []Declaration{
			{VarSize, or(c.Size, art.DefaultSize)},
			{VarCell, or(c.Cell, art.DefaultCell)},
			{VarR, or(c.R, art.DefaultR)},
			{VarL, l},
			{VarH, GrayHue},
			{VarSat, GraySaturation},
			{VarA1, or(c.A1, art.DefaultA1)},
			{VarA2, or(c.A2, art.DefaultA2)},
			{VarA3, or(c.A3, art.DefaultA3)},
		},
		Layers:          layersFor(c.Template),
		BlendMode:       BlendMode,
		BackgroundColor: backgroundColor(c.Background, l),
	}
	if c.Animate {
		t := DefaultTiming
		s.Animation = &t
	}
	return s
}

// Var returns the value of the custom property name.
func (s Style) Var(name string) (string, bool) {
	for _, d := range s.Vars {
		if d.Name == name {
			return d.Value, true
		}
	}
	return "", false
}

// BackgroundImage joins the layers into a single background-image value.
func (s Style) BackgroundImage() string {
	return strings.Join(s.Layers, ", ")
}

// AnimationValue returns the CSS animation list, or "" for a static tile.
func (s Style) AnimationValue() string {
	if s.Animation == nil {
		return ""
	}
	return s.Animation.Value()
}

// Animated reports whether the tile spins.
func (s Style) Animated() bool {
	return s.Animation != nil
}

// Properties returns every per-tile property in the order renderers apply
// them: the custom properties, then the background image and color. These
// are the values that must match between the server and client renderings.
func (s Style) Properties() []Declaration {
	out := make([]Declaration, 0, len(s.Vars)+2)
	out = append(out, s.Vars...)
	out = append(out,
		Declaration{PropBackgroundImage, s.BackgroundImage()},
		Declaration{PropBackgroundColor, s.BackgroundColor},
	)
	return out
}

func or(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
