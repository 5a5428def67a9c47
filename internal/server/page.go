package server

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/matzehuels/miniart/pkg/pipeline"
	"github.com/matzehuels/miniart/pkg/render/element"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

func parsePage() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/page.html.tmpl")
}

// pageData is the view model of the gallery page.
type pageData struct {
	Title       string
	RandomCount int
	ScriptPath  string
	Tiles       []pageTile
}

type pageTile struct {
	Markup  template.HTML
	Query   string
	Caption string
}

func newPageData(g *pipeline.Gallery, randomCount int) pageData {
	data := pageData{
		Title:       g.Title,
		RandomCount: randomCount,
		ScriptPath:  element.ScriptPath,
		Tiles:       make([]pageTile, len(g.Tiles)),
	}
	for i, t := range g.Tiles {
		// ssr.RenderTile escapes attribute values. Stylesheet values are only
		// safe when the gallery was built with Sanitize.
		data.Tiles[i] = pageTile{
			Markup:  template.HTML(t.Markup),
			Query:   t.Query,
			Caption: t.Caption,
		}
	}
	return data
}

func (s *Server) renderPage(g *pipeline.Gallery) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.page.Execute(&buf, newPageData(g, s.cfg.Gallery.RandomCount)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
