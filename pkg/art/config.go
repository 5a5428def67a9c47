package art

// Template names a family of background-image layer compositions.
type Template string

// Available templates.
const (
	TemplateGeometric Template = "geometric"
	TemplateGrid      Template = "grid"
	TemplateRadial    Template = "radial"
	TemplateAngular   Template = "angular"
	TemplateMinimal   Template = "minimal"
)

// DefaultTemplate is used when a configuration names no template, or one that
// does not exist.
const DefaultTemplate = TemplateGeometric

// Templates lists every template in display order.
var Templates = []Template{
	TemplateGeometric,
	TemplateGrid,
	TemplateRadial,
	TemplateAngular,
	TemplateMinimal,
}

// Valid reports whether t is a known template.
func (t Template) Valid() bool {
	for _, known := range Templates {
		if t == known {
			return true
		}
	}
	return false
}

// Background names a flat background color that replaces the grayscale
// lightness fill.
type Background string

// Available backgrounds.
const (
	BackgroundWhite    Background = "white"
	BackgroundBlack    Background = "black"
	BackgroundYellow   Background = "yellow"
	BackgroundPink     Background = "pink"
	BackgroundGreen    Background = "green"
	BackgroundBlue     Background = "blue"
	BackgroundSlate    Background = "slate"
	BackgroundOrange   Background = "orange"
	BackgroundSoftblue Background = "softblue"
	BackgroundCyan     Background = "cyan"
	BackgroundPaleblue Background = "paleblue"
)

// Backgrounds lists every background color name.
var Backgrounds = []Background{
	BackgroundWhite,
	BackgroundBlack,
	BackgroundYellow,
	BackgroundPink,
	BackgroundGreen,
	BackgroundBlue,
	BackgroundSlate,
	BackgroundOrange,
	BackgroundSoftblue,
	BackgroundCyan,
	BackgroundPaleblue,
}

// Valid reports whether b is a known background color name.
func (b Background) Valid() bool {
	for _, known := range Backgrounds {
		if b == known {
			return true
		}
	}
	return false
}

// Config is the canonical configuration of one tile.
//
// An empty string (or the zero value of Template/Background) means the field
// is unset; the style synthesizer fills defaults for unset fields. Config is
// a plain value and is never shared between render calls.
type Config struct {
	Size       string     `json:"size,omitempty"` // CSS length of the tile width
	L          string     `json:"lit,omitempty"`  // base lightness, e.g. "58%"
	Cell       string     `json:"cell,omitempty"` // CSS length controlling pattern grain
	R          string     `json:"r,omitempty"`    // vignette radius in [0,1]
	A1         string     `json:"a1,omitempty"`   // pattern angles in turns
	A2         string     `json:"a2,omitempty"`
	A3         string     `json:"a3,omitempty"`
	Animate    bool       `json:"animate,omitempty"`    // spin the three angles
	Template   Template   `json:"template,omitempty"`   // layer composition
	Background Background `json:"background,omitempty"` // flat color; unset means grayscale from L
}

// Default values for unset Config fields.
const (
	DefaultSize = "min(72vmin,420px)"
	DefaultCell = "14px"
	DefaultR    = ".85"
	DefaultL    = "58%"
	DefaultA1   = "0turn"
	DefaultA2   = ".125turn"
	DefaultA3   = ".33turn"
)
