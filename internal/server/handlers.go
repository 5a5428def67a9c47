package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/matzehuels/miniart/pkg/art"
	"github.com/matzehuels/miniart/pkg/buildinfo"
	"github.com/matzehuels/miniart/pkg/cache"
	apperr "github.com/matzehuels/miniart/pkg/errors"
	"github.com/matzehuels/miniart/pkg/pipeline"
	"github.com/matzehuels/miniart/pkg/render/element"
)

// handleGallery renders the gallery page. Pages without ?random are a pure
// function of the query and are cached whole.
func (s *Server) handleGallery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()
	opts := pipeline.GalleryOptions{
		Title:         s.cfg.Gallery.Title,
		Query:         q,
		Tiles:         s.cfg.Gallery.CanonicalTiles(),
		RandomSize:    s.cfg.Gallery.TileSize,
		DefaultRandom: s.cfg.Gallery.RandomCount,
		MaxRandom:     s.cfg.Gallery.MaxRandom,
		Sanitize:      s.cfg.Server.Sanitize,
	}

	render := func() ([]byte, error) {
		g, err := s.runner.Gallery(ctx, opts)
		if err != nil {
			return nil, err
		}
		return s.renderPage(g)
	}

	var (
		body []byte
		err  error
	)
	if q.Has(pipeline.RandomParam) {
		body, err = render()
		w.Header().Set("Cache-Control", "no-store")
	} else {
		body, _, err = s.runner.Page(ctx, cache.PageKeyOpts{
			Title: opts.Title,
			Query: pageQuery(q),
			Size:  opts.RandomSize,
		}, render)
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(body)
}

// pageQuery is the part of q that changes the page: every recognized key, in
// canonical order.
func pageQuery(q url.Values) string {
	return art.Identity(art.FromQuery(q))
}

// handleTile renders a single tile. ?format selects html (default), css or
// json; ?strict rejects malformed values with 400 instead of rendering them
// as given.
func (s *Server) handleTile(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatHTML
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}

	a := art.FromQuery(q)
	if s.cfg.Server.Sanitize {
		var dropped []string
		if a, dropped = art.Sanitize(a); len(dropped) > 0 {
			s.logger.Warn("dropped unsafe query values", "keys", dropped)
		}
	}
	if q.Has("strict") {
		if err := art.Validate(a); err != nil {
			s.writeError(w, r, err)
			return
		}
	}

	switch format {
	case pipeline.FormatHTML:
		tile, err := s.runner.RenderTile(r.Context(), a, pipeline.TileOptions{ID: q.Get("id")})
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(tile.Markup))
	default:
		body, err := pipeline.Render(a, format)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", contentTypes[format])
		_, _ = w.Write(body)
	}
}

var contentTypes = map[string]string{
	pipeline.FormatHTML: "text/html; charset=utf-8",
	pipeline.FormatCSS:  "text/css; charset=utf-8",
	pipeline.FormatJSON: "application/json",
}

// handleScript serves the custom element module.
func (s *Server) handleScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=300")
	_, _ = w.Write(element.Script())
}

// pinger is implemented by caches that can report their health.
type pinger interface {
	Ping(ctx context.Context) error
}

type healthResponse struct {
	Status string `json:"status"`
	buildinfo.Info
	Cache string `json:"cache"`
	Error string `json:"error,omitempty"`
}

// handleHealth reports build info. A cache that fails its ping degrades the
// status to 503.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status: "ok",
		Info:   buildinfo.Get(),
		Cache:  s.cfg.Cache.Backend,
	}
	status := http.StatusOK
	if p, ok := s.runner.Cache.(pinger); ok {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			resp.Status = "degraded"
			resp.Error = err.Error()
			status = http.StatusServiceUnavailable
		}
	}
	writeJSON(w, status, resp)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, r, apperr.New(apperr.ErrCodeNotFound, "no route for %s", r.URL.Path))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
