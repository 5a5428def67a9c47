package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/miniart/pkg/art"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestExplore(n int) ExploreModel {
	r := art.NewRandomizer(3)
	return NewExploreModel(n, r.Attrs)
}

func update(m ExploreModel, msg tea.Msg) (ExploreModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(ExploreModel), cmd
}

func TestExploreNavigation(t *testing.T) {
	m := newTestExplore(3)

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.Cursor != 0 {
		t.Errorf("cursor moved above the first row: %d", m.Cursor)
	}
	m, _ = update(m, key("j"))
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.Cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.Cursor)
	}
	m, _ = update(m, key("k"))
	if m.Cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.Cursor)
	}
}

func TestExploreReroll(t *testing.T) {
	m := newTestExplore(2)
	before := art.ToQuery(m.Tiles[0]) + art.Caption(m.Tiles[0])
	other := m.Tiles[1]

	m, _ = update(m, key("r"))
	if art.ToQuery(m.Tiles[0])+art.Caption(m.Tiles[0]) == before {
		t.Error("reroll kept the same tile")
	}
	if art.ToQuery(m.Tiles[1]) != art.ToQuery(other) {
		t.Error("reroll touched another row")
	}
}

func TestExploreTemplateAndAnimate(t *testing.T) {
	m := newTestExplore(1)
	m.Tiles[0] = art.Attrs{art.KeyTemplate: "minimal", art.KeySeed: "1"}
	original := m.Tiles[0]

	m, _ = update(m, key("t"))
	if got := m.Tiles[0].String(art.KeyTemplate); got != string(art.Templates[0]) {
		t.Errorf("template after minimal = %q, want wraparound to %q", got, art.Templates[0])
	}
	if original.String(art.KeyTemplate) != "minimal" {
		t.Error("cycling mutated the previous bag")
	}

	m, _ = update(m, key("a"))
	if !m.Tiles[0].Flag(art.KeyAnimate) {
		t.Error("animate was not toggled on")
	}
	m, _ = update(m, key("a"))
	if m.Tiles[0].Flag(art.KeyAnimate) {
		t.Error("animate was not toggled off")
	}
}

func TestExploreSelect(t *testing.T) {
	m := newTestExplore(2)
	m, _ = update(m, key("j"))
	m, cmd := update(m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should quit")
	}
	if art.ToQuery(m.Selected) != art.ToQuery(m.Tiles[1]) {
		t.Error("selected the wrong tile")
	}

	m = newTestExplore(1)
	m, _ = update(m, key("q"))
	if m.Selected != nil {
		t.Error("quit should not select")
	}
}

func TestExploreView(t *testing.T) {
	m := newTestExplore(2)
	m.Tiles[0] = art.Attrs{art.KeySeed: "3", art.KeyBg: "slate", art.KeyAnimate: true}
	view := m.View()
	for _, want := range []string{"Explore Tiles", "62%", ".12turn .31turn .50turn", "slate", "/?seed=3&bg=slate&animate=", "[1/2]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSwatch(t *testing.T) {
	tests := []struct {
		fill string
		want string
	}{
		{"#7b82a3", "#7b82a3"},
		{"hsl(0, 0%, 0%)", "#000000"},
		{"hsl(0, 0%, 100%)", "#ffffff"},
		{"hsl(0, 0%, 50%)", "#808080"},
		{"hsl(0, 0%, calc(1%))", "#808080"},
	}
	for _, tt := range tests {
		if got := swatch(tt.fill); got != tt.want {
			t.Errorf("swatch(%q) = %q, want %q", tt.fill, got, tt.want)
		}
	}
}
