package style

import "github.com/matzehuels/miniart/pkg/art"

// BlendMode composites the three layers: the middle layer multiplies, the
// outer two paint normally.
const BlendMode = "normal, multiply, normal"

// Layers holds the background-image layers of every template, bottom layer
// first. Each expression refers to the tile's custom properties rather than
// to literal values, so changing a variable restyles the tile without
// touching the layer list.
var Layers = map[art.Template][]string{
	// stripes, circles and perpendicular hairlines
	art.TemplateGeometric: {
		`repeating-linear-gradient(var(--a1), #000 0 2px, transparent 2px var(--cell))`,
		`repeating-radial-gradient(circle at 38% 42%, transparent 0 calc(var(--cell) * 1.5), #888 calc(var(--cell) * 1.5) calc(var(--cell) * 1.8), transparent calc(var(--cell) * 1.8) calc(var(--cell) * 2))`,
		`repeating-linear-gradient(var(--a2), transparent 0 calc(var(--cell) * 2.5), #fff 0 calc(var(--cell) * 2.5 + 1px), transparent calc(var(--cell) * 2.5 + 1px) calc(var(--cell) * 3))`,
	},
	// graph paper
	art.TemplateGrid: {
		`repeating-linear-gradient(0deg, #000 0 1px, transparent 1px var(--cell))`,
		`repeating-linear-gradient(90deg, #000 0 1px, transparent 1px var(--cell))`,
		`repeating-linear-gradient(var(--a1), transparent 0 calc(var(--cell) * 4), #888 0 2px, transparent 2px calc(var(--cell) * 5))`,
	},
	// concentric rings around three focal points
	art.TemplateRadial: {
		`repeating-radial-gradient(circle at 30% 30%, #000 0 2px, transparent 2px calc(var(--cell) * 1.2))`,
		`repeating-radial-gradient(circle at 70% 70%, #fff 0 1px, transparent 1px var(--cell))`,
		`repeating-radial-gradient(circle at 50% 50%, #888 0 3px, transparent 3px calc(var(--cell) * 1.8))`,
	},
	// sunburst
	art.TemplateAngular: {
		`repeating-conic-gradient(from var(--a1) at 50% 50%, #000 0 5deg, transparent 5deg 10deg)`,
		`repeating-conic-gradient(from var(--a2) at 50% 50%, #fff 0 3deg, transparent 3deg 8deg)`,
		`repeating-conic-gradient(from var(--a3) at 50% 50%, #888 0 8deg, transparent 8deg 16deg)`,
	},
	// sparse, mostly negative space; the middle layer is a single dot
	art.TemplateMinimal: {
		`repeating-linear-gradient(var(--a1), transparent 0 calc(var(--cell) * 6), #000 0 4px, transparent 4px calc(var(--cell) * 8))`,
		`radial-gradient(circle at 50% 50%, #888 0 calc(var(--cell) * 0.5), transparent calc(var(--cell) * 0.5) 100%)`,
		`repeating-linear-gradient(var(--a2), transparent 0 calc(var(--cell) * 10), #fff 0 2px, transparent 2px calc(var(--cell) * 12))`,
	},
}

// layersFor returns a copy of the layers for t, falling back to the default
// template for unknown or unset names.
func layersFor(t art.Template) []string {
	l, ok := Layers[t]
	if !ok {
		l = Layers[art.DefaultTemplate]
	}
	out := make([]string, len(l))
	copy(out, l)
	return out
}
