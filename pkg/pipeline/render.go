package pipeline

import (
	"encoding/json"

	"github.com/matzehuels/miniart/pkg/art"
	"github.com/matzehuels/miniart/pkg/art/style"
	"github.com/matzehuels/miniart/pkg/render/ssr"
)

// Document is the JSON form of a tile: its inputs and every resolved value.
type Document struct {
	Attrs           art.Attrs           `json:"attrs"`
	Config          art.Config          `json:"config"`
	Vars            []style.Declaration `json:"vars"`
	Layers          []string            `json:"layers"`
	BlendMode       string              `json:"blend_mode"`
	BackgroundColor string              `json:"background_color"`
	Animation       string              `json:"animation,omitempty"`
	Query           string              `json:"query"`
}

// NewDocument resolves a into a Document.
func NewDocument(a art.Attrs) Document {
	cfg := art.Normalize(a)
	s := style.Synthesize(cfg)
	return Document{
		Attrs:           a,
		Config:          cfg,
		Vars:            s.Vars,
		Layers:          s.Layers,
		BlendMode:       s.BlendMode,
		BackgroundColor: s.BackgroundColor,
		Animation:       s.AnimationValue(),
		Query:           art.ToQuery(a),
	}
}

// Render produces a tile in the given format: "html" is the full host
// element, "css" the stylesheet alone and "json" a [Document].
func Render(a art.Attrs, format string) ([]byte, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}
	switch format {
	case FormatCSS:
		return []byte(ssr.Stylesheet(style.Synthesize(art.Normalize(a)))), nil
	case FormatJSON:
		return json.MarshalIndent(NewDocument(a), "", "  ")
	default:
		return []byte(ssr.RenderTile(a) + "\n"), nil
	}
}
