package element

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"sync"

	"golang.org/x/net/html"

	"github.com/matzehuels/miniart/pkg/art"
	"github.com/matzehuels/miniart/pkg/art/seeds"
	"github.com/matzehuels/miniart/pkg/art/style"
)

// ScriptPath is where servers conventionally mount [Script].
const ScriptPath = "/web/mini-art-bw.js"

//go:embed assets/mini-art-bw.js
var scriptSource []byte

var tablesMarker = []byte("/*MINIART_TABLES*/ null")

// Tables is the data the browser module runs on.
type Tables struct {
	TagName         string                    `json:"tagName"`
	Keys            []string                  `json:"keys"`
	Seeds           map[string]seeds.Preset   `json:"seeds"`
	Colors          map[art.Background]string `json:"colors"`
	Layers          map[art.Template][]string `json:"layers"`
	DefaultTemplate art.Template              `json:"defaultTemplate"`
	Defaults        map[string]string         `json:"defaults"`
	GrayHue         string                    `json:"grayHue"`
	GraySaturation  string                    `json:"graySaturation"`
	Shadow          string                    `json:"shadow"`
}

// NewTables collects the Go lookup tables for the browser module.
func NewTables() Tables {
	return Tables{
		TagName:         TagName,
		Keys:            ObservedAttributes,
		Seeds:           seeds.All(),
		Colors:          style.Colors,
		Layers:          style.Layers,
		DefaultTemplate: art.DefaultTemplate,
		Defaults: map[string]string{
			"size": art.DefaultSize,
			"cell": art.DefaultCell,
			"r":    art.DefaultR,
			"L":    art.DefaultL,
			"a1":   art.DefaultA1,
			"a2":   art.DefaultA2,
			"a3":   art.DefaultA3,
		},
		GrayHue:        style.GrayHue,
		GraySaturation: style.GraySaturation,
		Shadow:         shadowContent(),
	}
}

// shadowContent renders the inner markup of a default shadow tree, used when
// a host arrives without server-rendered content.
func shadowContent() string {
	root := Applier{}.Construct(art.Config{})
	var buf bytes.Buffer
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			panic("element: render shadow content: " + err.Error())
		}
	}
	return buf.String()
}

var script = sync.OnceValue(func() []byte {
	tables, err := json.Marshal(NewTables())
	if err != nil {
		panic("element: encode tables: " + err.Error())
	}
	return bytes.Replace(scriptSource, tablesMarker, tables, 1)
})

// Script returns the browser module with the lookup tables inlined. The
// result is computed once and must not be modified.
func Script() []byte {
	return script()
}
