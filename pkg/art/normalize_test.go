package art

import "testing"

func TestNormalizeSeedPrecedence(t *testing.T) {
	got := Normalize(Attrs{KeySeed: "3"})
	want := Config{L: "62%", A1: ".12turn", A2: ".31turn", A3: ".50turn"}
	if got != want {
		t.Errorf("Normalize(seed=3) = %+v, want %+v", got, want)
	}

	got = Normalize(Attrs{KeySeed: "3", KeyLit: "40%"})
	want.L = "40%"
	if got != want {
		t.Errorf("Normalize(seed=3, lit=40%%) = %+v, want %+v", got, want)
	}
}

func TestNormalizeOverridesFieldByField(t *testing.T) {
	got := Normalize(Attrs{KeySeed: "1", KeyA2: ".9turn", KeyCell: "10px"})
	want := Config{L: "58%", A1: "0turn", A2: ".9turn", A3: ".42turn", Cell: "10px"}
	if got != want {
		t.Errorf("Normalize() = %+v, want %+v", got, want)
	}
}

func TestNormalizeUnknownSeedIsNoop(t *testing.T) {
	for _, seed := range []string{"9", "0", "", "seven"} {
		if got := Normalize(Attrs{KeySeed: seed}); got != Normalize(Attrs{}) {
			t.Errorf("Normalize(seed=%q) = %+v, want zero config", seed, got)
		}
	}
	if got := Normalize(Attrs{}); got != (Config{}) {
		t.Errorf("Normalize({}) = %+v, want zero config", got)
	}
}

func TestNormalizeAllFields(t *testing.T) {
	got := Normalize(Attrs{
		KeyTemplate: "radial",
		KeySize:     "280px",
		KeyLit:      "70%",
		KeyCell:     "9px",
		KeyR:        ".9",
		KeyA1:       ".05turn",
		KeyA2:       ".25turn",
		KeyA3:       ".6turn",
		KeyAnimate:  true,
		KeyBg:       "pink",
	})
	want := Config{
		Size:       "280px",
		L:          "70%",
		Cell:       "9px",
		R:          ".9",
		A1:         ".05turn",
		A2:         ".25turn",
		A3:         ".6turn",
		Animate:    true,
		Template:   TemplateRadial,
		Background: BackgroundPink,
	}
	if got != want {
		t.Errorf("Normalize() = %+v, want %+v", got, want)
	}
}

func TestNormalizeTypeCoercion(t *testing.T) {
	tests := []struct {
		name  string
		attrs Attrs
		want  Config
	}{
		{"number is ignored", Attrs{KeyCell: 12}, Config{}},
		{"bool in string slot is ignored", Attrs{KeyLit: true}, Config{}},
		{"nil is ignored", Attrs{KeySize: nil}, Config{}},
		{"empty string is ignored", Attrs{KeyR: ""}, Config{}},
		{"string animate is ignored", Attrs{KeyAnimate: "true"}, Config{}},
		{"false animate is ignored", Attrs{KeyAnimate: false}, Config{}},
		{"true animate", Attrs{KeyAnimate: true}, Config{Animate: true}},
		{"numeric seed is ignored", Attrs{KeySeed: 3}, Config{}},
		{"unknown keys are ignored", Attrs{"color": "red", "L": "10%"}, Config{}},
		{"hue and sat never reach config", Attrs{KeyHue: "200", KeySat: "80%"}, Config{}},
		{"unknown template is kept for the synthesizer", Attrs{KeyTemplate: "bogus"}, Config{Template: "bogus"}},
		{"unknown bg is kept for the synthesizer", Attrs{KeyBg: "mauve"}, Config{Background: "mauve"}},
		{"out of range values are kept", Attrs{KeyLit: "250%"}, Config{L: "250%"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.attrs); got != tt.want {
				t.Errorf("Normalize(%v) = %+v, want %+v", tt.attrs, got, tt.want)
			}
		})
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	a := Attrs{KeySeed: "2", KeyLit: "44%"}
	_ = Normalize(a)
	if len(a) != 2 || a[KeySeed] != "2" || a[KeyLit] != "44%" {
		t.Errorf("Normalize mutated its input: %v", a)
	}
}

func TestAttrsHasValue(t *testing.T) {
	tests := []struct {
		attrs Attrs
		want  bool
	}{
		{Attrs{}, false},
		{Attrs{KeyAnimate: false}, false},
		{Attrs{KeySeed: ""}, false},
		{Attrs{"unknown": "x"}, false},
		{Attrs{KeySeed: "1"}, true},
		{Attrs{KeyAnimate: true}, true},
	}
	for _, tt := range tests {
		if got := tt.attrs.HasValue(); got != tt.want {
			t.Errorf("%v.HasValue() = %v, want %v", tt.attrs, got, tt.want)
		}
	}
}

func TestTemplateAndBackgroundValid(t *testing.T) {
	for _, tpl := range Templates {
		if !tpl.Valid() {
			t.Errorf("%q should be valid", tpl)
		}
	}
	if Template("bogus").Valid() || Template("").Valid() {
		t.Error("unknown template should be invalid")
	}
	for _, bg := range Backgrounds {
		if !bg.Valid() {
			t.Errorf("%q should be valid", bg)
		}
	}
	if Background("mauve").Valid() {
		t.Error("unknown background should be invalid")
	}
}
