package style

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/miniart/pkg/art"
)

func TestSynthesizeDefaults(t *testing.T) {
	s := Synthesize(art.Config{})

	want := []Declaration{
		{"--size", "min(72vmin,420px)"},
		{"--cell", "14px"},
		{"--r", ".85"},
		{"--L", "58%"},
		{"--H", "0"},
		{"--SAT", "0%"},
		{"--a1", "0turn"},
		{"--a2", ".125turn"},
		{"--a3", ".33turn"},
	}
	if diff := cmp.Diff(want, s.Vars); diff != "" {
		t.Errorf("Vars mismatch (-want +got):\n%s", diff)
	}
	if s.BlendMode != "normal, multiply, normal" {
		t.Errorf("BlendMode = %q", s.BlendMode)
	}
	if s.BackgroundColor != "hsl(0, 0%, 58%)" {
		t.Errorf("BackgroundColor = %q", s.BackgroundColor)
	}
	if s.Animation != nil || s.AnimationValue() != "" || s.Animated() {
		t.Errorf("static tile has animation %v", s.Animation)
	}
	if diff := cmp.Diff(Layers[art.TemplateGeometric], s.Layers); diff != "" {
		t.Errorf("default layers are not geometric:\n%s", diff)
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	cfg := art.Normalize(art.Attrs{"seed": "4", "template": "radial", "animate": true, "bg": "cyan"})
	a, b := Synthesize(cfg), Synthesize(cfg)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("Synthesize is not deterministic:\n%s", diff)
	}
	if a.BackgroundImage() != b.BackgroundImage() {
		t.Error("BackgroundImage differs between calls")
	}
}

func TestSynthesizeGrayscale(t *testing.T) {
	cfg := art.Normalize(art.Attrs{"hue": "200", "sat": "80%", "lit": "40%"})
	s := Synthesize(cfg)

	if v, _ := s.Var(VarH); v != "0" {
		t.Errorf("--H = %q, want 0", v)
	}
	if v, _ := s.Var(VarSat); v != "0%" {
		t.Errorf("--SAT = %q, want 0%%", v)
	}
	if v, _ := s.Var(VarL); v != "40%" {
		t.Errorf("--L = %q, want 40%%", v)
	}
	if s.BackgroundColor != "hsl(0, 0%, 40%)" {
		t.Errorf("BackgroundColor = %q", s.BackgroundColor)
	}
}

func TestSynthesizeBackground(t *testing.T) {
	tests := []struct {
		bg   art.Background
		l    string
		want string
	}{
		{art.BackgroundPink, "", "#f7768e"},
		{art.BackgroundPink, "30%", "#f7768e"},
		{art.BackgroundPaleblue, "", "#e3ecff"},
		{"", "", "hsl(0, 0%, 58%)"},
		{"", "62%", "hsl(0, 0%, 62%)"},
		{"mauve", "70%", "hsl(0, 0%, 70%)"},
	}
	for _, tt := range tests {
		t.Run(string(tt.bg)+"/"+tt.l, func(t *testing.T) {
			got := Synthesize(art.Config{Background: tt.bg, L: tt.l}).BackgroundColor
			if got != tt.want {
				t.Errorf("BackgroundColor = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEveryBackgroundHasColor(t *testing.T) {
	for _, b := range art.Backgrounds {
		if _, ok := Colors[b]; !ok {
			t.Errorf("background %q has no color", b)
		}
	}
	if len(Colors) != len(art.Backgrounds) {
		t.Errorf("Colors has %d entries, want %d", len(Colors), len(art.Backgrounds))
	}
}

func TestTemplateFallback(t *testing.T) {
	want := Synthesize(art.Config{Template: art.TemplateGeometric}).Layers
	for _, tpl := range []art.Template{"bogus", "", "GRID"} {
		got := Synthesize(art.Config{Template: tpl}).Layers
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("template %q did not fall back to geometric:\n%s", tpl, diff)
		}
	}
}

func TestTemplatesHaveThreeLayers(t *testing.T) {
	seen := map[string]art.Template{}
	for _, tpl := range art.Templates {
		layers := Synthesize(art.Config{Template: tpl}).Layers
		if len(layers) != 3 {
			t.Errorf("%s has %d layers, want 3", tpl, len(layers))
		}
		img := strings.Join(layers, ", ")
		if other, dup := seen[img]; dup {
			t.Errorf("%s and %s draw the same layers", tpl, other)
		}
		seen[img] = tpl
	}
}

func TestLayersAreCopied(t *testing.T) {
	s := Synthesize(art.Config{Template: art.TemplateGrid})
	s.Layers[0] = "none"
	if Layers[art.TemplateGrid][0] == "none" {
		t.Fatal("mutating a Style leaked into the template table")
	}
}

func TestSynthesizeAnimation(t *testing.T) {
	s := Synthesize(art.Config{Animate: true})
	want := "spin-a1 18s linear infinite, spin-a2 24s linear infinite reverse, spin-a3 32s linear infinite"
	if got := s.AnimationValue(); got != want {
		t.Errorf("AnimationValue() = %q, want %q", got, want)
	}
	s.Animation.A1 = "1s"
	if DefaultTiming.A1 != "18s linear infinite" {
		t.Error("mutating a Style leaked into DefaultTiming")
	}
}

func TestSeedPrecedence(t *testing.T) {
	s := Synthesize(art.Normalize(art.Attrs{"seed": "3", "a2": ".9turn"}))
	for name, want := range map[string]string{
		VarL: "62%", VarA1: ".12turn", VarA2: ".9turn", VarA3: ".50turn",
	} {
		if got, _ := s.Var(name); got != want {
			t.Errorf("%s = %q, want %q", name, got, want)
		}
	}
}

func TestProperties(t *testing.T) {
	s := Synthesize(art.Config{Template: art.TemplateAngular, Background: art.BackgroundBlack})
	props := s.Properties()
	if len(props) != len(VarNames)+2 {
		t.Fatalf("Properties() has %d entries", len(props))
	}
	for i, name := range VarNames {
		if props[i].Name != name {
			t.Errorf("props[%d] = %s, want %s", i, props[i].Name, name)
		}
	}
	img, col := props[len(props)-2], props[len(props)-1]
	if img.Name != PropBackgroundImage || img.Value != s.BackgroundImage() {
		t.Errorf("background-image entry = %+v", img)
	}
	if col.Name != PropBackgroundColor || col.Value != "#000000" {
		t.Errorf("background-color entry = %+v", col)
	}
}

func TestVarMissing(t *testing.T) {
	if _, ok := Synthesize(art.Config{}).Var("--nope"); ok {
		t.Error("Var reported an unknown property")
	}
}
