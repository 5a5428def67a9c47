package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/miniart/pkg/art"
	apperr "github.com/matzehuels/miniart/pkg/errors"
	"github.com/matzehuels/miniart/pkg/pipeline"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"", "html"},
		{"tile.html", "html"},
		{"tile.htm", "html"},
		{"tile.css", "css"},
		{"out/tile.json", "json"},
		{"tile.svg", "html"},
		{"tile", "html"},
	}

	for _, tt := range tests {
		if got := formatFromPath(tt.path); got != tt.want {
			t.Errorf("formatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestMergeQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		attrs art.Attrs
		want  art.Attrs
	}{
		{"empty", "", nil, art.Attrs{}},
		{"query only", "seed=3&lit=62%25", nil, art.Attrs{"seed": "3", "lit": "62%"}},
		{"leading question mark", "?seed=3", nil, art.Attrs{"seed": "3"}},
		{"flags override", "seed=3&lit=62%25", art.Attrs{"lit": "70%"}, art.Attrs{"seed": "3", "lit": "70%"}},
		{"animate flag", "animate=", nil, art.Attrs{"animate": true}},
		{"unknown keys dropped", "seed=1&color=red", nil, art.Attrs{"seed": "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mergeQuery(tt.query, tt.attrs)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mergeQuery() mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, err := mergeQuery("seed=%zz", nil); err == nil {
		t.Error("malformed query should fail")
	}
}

func TestRenderCommandHTML(t *testing.T) {
	out, err := execute(t, "render", "--seed", "3", "--animate", "--id", "x")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, `<mini-art-bw id="x" seed="3" animate>`) {
		t.Errorf("output starts with %.60q", out)
	}
	if !strings.Contains(out, `class="art animate"`) {
		t.Error("animated tile should carry the animate class")
	}
}

func TestRenderCommandJSON(t *testing.T) {
	out, err := execute(t, "render", "--query", "seed=6&lit=60%25", "--bg", "slate", "--format", "json")
	if err != nil {
		t.Fatal(err)
	}
	var doc pipeline.Document
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if doc.Config.L != "60%" || doc.BackgroundColor != "#7b82a3" {
		t.Errorf("unexpected document: L=%q bg=%q", doc.Config.L, doc.BackgroundColor)
	}
}

func TestRenderCommandOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tile.css")
	out, err := execute(t, "render", "--template", "grid", "-o", path)
	if err != nil {
		t.Fatal(err)
	}
	if out != "" {
		t.Errorf("stdout should be empty, got %q", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "repeating-linear-gradient(0deg") {
		t.Error("css output should hold the grid layers")
	}
	if strings.Contains(string(data), "<mini-art-bw") {
		t.Error("format should be inferred from the .css extension")
	}
}

func TestRenderCommandStrict(t *testing.T) {
	for _, format := range []string{"html", "json"} {
		_, err := execute(t, "render", "--lit", "bright", "--strict", "--format", format)
		if !apperr.Is(err, apperr.ErrCodeInvalidPercent) {
			t.Errorf("%s: strict error = %v, want INVALID_PERCENT", format, err)
		}
	}

	if _, err := execute(t, "render", "--lit", "bright"); err != nil {
		t.Errorf("permissive render failed: %v", err)
	}
}

func TestRenderCommandBadFormat(t *testing.T) {
	_, err := execute(t, "render", "--format", "svg")
	if !apperr.Is(err, apperr.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", err)
	}
}
