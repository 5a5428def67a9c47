package style

import "github.com/matzehuels/miniart/pkg/art"

// Colors maps background names to the flat color that replaces the grayscale
// fill.
var Colors = map[art.Background]string{
	art.BackgroundWhite:    "#ffffff",
	art.BackgroundBlack:    "#000000",
	art.BackgroundYellow:   "#ffd700",
	art.BackgroundPink:     "#f7768e",
	art.BackgroundGreen:    "#9ece6a",
	art.BackgroundBlue:     "#7aa2f7",
	art.BackgroundSlate:    "#7b82a3",
	art.BackgroundOrange:   "#ff9e64",
	art.BackgroundSoftblue: "#c0caf5",
	art.BackgroundCyan:     "#89ddff",
	art.BackgroundPaleblue: "#e3ecff",
}

// Gray returns the grayscale fill for lightness l, e.g. "hsl(0, 0%, 58%)".
func Gray(l string) string {
	return "hsl(0, 0%, " + l + ")"
}

// backgroundColor resolves the flat fill: the named color when b is in the
// table, otherwise gray at lightness l.
func backgroundColor(b art.Background, l string) string {
	if c, ok := Colors[b]; ok {
		return c
	}
	return Gray(l)
}
