// Package seeds holds the fixed seed presets for mini-art tiles.
//
// A seed bundles a base lightness and three rotation angles so a single short
// identifier ("1".."6") reproduces a curated look. The table is process-wide
// constant data; lookups never fail, an unknown id simply has no preset.
package seeds

import "slices"

// Preset is the lightness and angle bundle selected by a seed id.
type Preset struct {
	L  string // base lightness, e.g. "58%"
	A1 string // first pattern angle, e.g. "0turn"
	A2 string
	A3 string
}

var presets = map[string]Preset{
	"1": {L: "58%", A1: "0turn", A2: ".18turn", A3: ".42turn"},
	"2": {L: "54%", A1: ".07turn", A2: ".22turn", A3: ".36turn"},
	"3": {L: "62%", A1: ".12turn", A2: ".31turn", A3: ".50turn"},
	"4": {L: "50%", A1: ".20turn", A2: ".04turn", A3: ".28turn"},
	"5": {L: "65%", A1: ".33turn", A2: ".11turn", A3: ".63turn"},
	"6": {L: "56%", A1: ".41turn", A2: ".27turn", A3: ".79turn"},
}

var ids = []string{"1", "2", "3", "4", "5", "6"}

// Lookup returns the preset for id. The boolean is false for ids outside the
// registry.
func Lookup(id string) (Preset, bool) {
	p, ok := presets[id]
	return p, ok
}

// IDs returns the registered seed ids in ascending order.
func IDs() []string {
	return slices.Clone(ids)
}

// All returns a copy of the registry keyed by seed id.
func All() map[string]Preset {
	out := make(map[string]Preset, len(presets))
	for id, p := range presets {
		out[id] = p
	}
	return out
}
