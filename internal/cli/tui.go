package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/miniart/pkg/art"
	"github.com/matzehuels/miniart/pkg/art/style"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
	headerStyle  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// =============================================================================
// ExploreModel - Interactive tile browser
// =============================================================================

// ExploreModel is the bubbletea model for browsing random tiles. Each row is
// one bag; the selected bag is kept in Selected when the user presses enter.
type ExploreModel struct {
	Tiles    []art.Attrs
	Cursor   int
	Selected art.Attrs
	Height   int
	Offset   int

	sample func() art.Attrs
}

// NewExploreModel creates a model showing n bags drawn from sample.
func NewExploreModel(n int, sample func() art.Attrs) ExploreModel {
	tiles := make([]art.Attrs, n)
	for i := range tiles {
		tiles[i] = sample()
	}
	return ExploreModel{
		Tiles:  tiles,
		Height: 15,
		sample: sample,
	}
}

func (m ExploreModel) Init() tea.Cmd {
	return nil
}

func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Tiles)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "r":
			m.Tiles = replace(m.Tiles, m.Cursor, m.sample())
		case "R":
			for i := range m.Tiles {
				m.Tiles = replace(m.Tiles, i, m.sample())
			}
		case "t":
			m.Tiles = replace(m.Tiles, m.Cursor, withNextTemplate(m.Tiles[m.Cursor]))
		case "a":
			a := m.Tiles[m.Cursor].Clone()
			a[art.KeyAnimate] = !a.Flag(art.KeyAnimate)
			m.Tiles = replace(m.Tiles, m.Cursor, a)
		case "enter":
			m.Selected = m.Tiles[m.Cursor]
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

// replace returns a copy of tiles with tiles[i] set to a, so earlier model
// values stay unchanged.
func replace(tiles []art.Attrs, i int, a art.Attrs) []art.Attrs {
	out := make([]art.Attrs, len(tiles))
	copy(out, tiles)
	out[i] = a
	return out
}

// withNextTemplate returns a copy of a using the template after its current
// one.
func withNextTemplate(a art.Attrs) art.Attrs {
	cur := art.Normalize(a).Template
	next := art.Templates[0]
	for i, t := range art.Templates {
		if t == cur {
			next = art.Templates[(i+1)%len(art.Templates)]
			break
		}
	}
	out := a.Clone()
	out[art.KeyTemplate] = string(next)
	return out
}

func (m ExploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Explore Tiles"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  r reroll  R reroll all  t template  a animate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Tiles))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, tileRow(cursor, m.Tiles[i]))
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Template", "Seed", "Lit", "Cell", "R", "Angles", "Anim", "Fill").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			idx := m.Offset + row
			if idx >= len(m.Tiles) {
				return lipgloss.NewStyle()
			}
			base := lipgloss.NewStyle()
			if col == 8 {
				fill := style.Synthesize(art.Normalize(m.Tiles[idx])).BackgroundColor
				base = base.Background(lipgloss.Color(swatch(fill)))
			}
			if idx == m.Cursor {
				return base.Foreground(colorCyan).Bold(true)
			}
			return base.Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	if len(m.Tiles) > 0 {
		b.WriteString(listDimStyle.Render("  /?" + art.ToQuery(m.Tiles[m.Cursor])))
		b.WriteString("\n")
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Tiles))))

	return b.String()
}

// tileRow lays out the resolved configuration of a for the table.
func tileRow(cursor string, a art.Attrs) []string {
	c := art.Normalize(a)
	s := style.Synthesize(c)
	v := func(name string) string {
		val, _ := s.Var(name)
		return val
	}
	tmpl := c.Template
	if !tmpl.Valid() {
		tmpl = art.DefaultTemplate
	}
	anim := ""
	if c.Animate {
		anim = "✓"
	}
	seed := a.String(art.KeySeed)
	if seed == "" {
		seed = "—"
	}
	fill := string(c.Background)
	if fill == "" {
		fill = "gray"
	}
	return []string{
		cursor,
		string(tmpl),
		seed,
		v(style.VarL),
		v(style.VarCell),
		v(style.VarR),
		strings.Join([]string{v(style.VarA1), v(style.VarA2), v(style.VarA3)}, " "),
		anim,
		fill,
	}
}

// swatch converts a fill into a terminal color: hex colors pass through and
// "hsl(0, 0%, L%)" grays become the matching hex gray.
func swatch(fill string) string {
	if strings.HasPrefix(fill, "#") {
		return fill
	}
	l := strings.TrimSuffix(strings.TrimPrefix(fill, "hsl(0, 0%, "), ")")
	pct, err := strconv.ParseFloat(strings.TrimSuffix(l, "%"), 64)
	if err != nil || pct < 0 || pct > 100 {
		return "#808080"
	}
	v := int(pct/100*255 + 0.5)
	return fmt.Sprintf("#%02x%02x%02x", v, v, v)
}
