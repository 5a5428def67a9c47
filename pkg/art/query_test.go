package art

import (
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"
)

// hostAttributes parses markup holding one <mini-art-bw> element and returns
// its attributes as the HTML parser sees them.
func hostAttributes(t *testing.T, markup string) []html.Attribute {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse %q: %v", markup, err)
	}
	var found *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "mini-art-bw" && found == nil {
			found = n
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	if found == nil {
		t.Fatalf("no mini-art-bw element in %q", markup)
	}
	return found.Attr
}

func TestQueryAndAttributeAdaptersAgree(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		markup string
	}{
		{
			name:   "empty",
			query:  "",
			markup: `<mini-art-bw></mini-art-bw>`,
		},
		{
			name:   "seed with override",
			query:  "seed=3&lit=40%25",
			markup: `<mini-art-bw seed="3" lit="40%"></mini-art-bw>`,
		},
		{
			name:   "animate presence",
			query:  "template=grid&animate",
			markup: `<mini-art-bw template="grid" animate></mini-art-bw>`,
		},
		{
			name:   "animate with value",
			query:  "animate=false",
			markup: `<mini-art-bw animate="false"></mini-art-bw>`,
		},
		{
			name:   "every key",
			query:  "template=angular&size=280px&seed=5&hue=10&sat=50%25&lit=60%25&cell=9px&r=.9&a1=.1turn&a2=.2turn&a3=.3turn&animate=&bg=cyan",
			markup: `<mini-art-bw template="angular" size="280px" seed="5" hue="10" sat="50%" lit="60%" cell="9px" r=".9" a1=".1turn" a2=".2turn" a3=".3turn" animate bg="cyan"></mini-art-bw>`,
		},
		{
			name:   "unknown keys dropped",
			query:  "seed=2&color=red&id=x",
			markup: `<mini-art-bw seed="2" color="red" id="x"></mini-art-bw>`,
		},
		{
			name:   "empty values kept",
			query:  "cell=&seed=1",
			markup: `<mini-art-bw cell="" seed="1"></mini-art-bw>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("ParseQuery: %v", err)
			}
			fromQuery := FromQuery(q)
			fromAttrs := FromAttributes(hostAttributes(t, tt.markup))

			if diff := cmp.Diff(fromQuery, fromAttrs); diff != "" {
				t.Errorf("bags differ (-query +attributes):\n%s", diff)
			}
			if Normalize(fromQuery) != Normalize(fromAttrs) {
				t.Errorf("normalized configs differ: %+v vs %+v", Normalize(fromQuery), Normalize(fromAttrs))
			}
		})
	}
}

func TestFromQueryFirstValueWins(t *testing.T) {
	q := url.Values{"seed": {"2", "4"}}
	if got := FromQuery(q).String(KeySeed); got != "2" {
		t.Errorf("seed = %q, want %q", got, "2")
	}
}

func TestFromAttributesCaseInsensitive(t *testing.T) {
	got := FromAttributes([]html.Attribute{{Key: "SEED", Val: "4"}, {Key: "Animate"}})
	want := Attrs{KeySeed: "4", KeyAnimate: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromAttributes mismatch (-want +got):\n%s", diff)
	}
}

func TestToQuery(t *testing.T) {
	tests := []struct {
		name  string
		attrs Attrs
		want  string
	}{
		{"empty", Attrs{}, ""},
		{"seed", Attrs{KeySeed: "1", KeySize: "280px"}, "seed=1"},
		{
			"ordering and escaping",
			Attrs{KeyLit: "62%", KeySeed: "3", KeyTemplate: "grid", KeyAnimate: true},
			"template=grid&seed=3&lit=62%25&animate=",
		},
		{"false animate omitted", Attrs{KeyCell: "10px", KeyAnimate: false}, "cell=10px"},
		{"bg included", Attrs{KeyBg: "pink"}, "bg=pink"},
		{"hue and sat omitted", Attrs{KeyHue: "1", KeySat: "2%"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToQuery(tt.attrs); got != tt.want {
				t.Errorf("ToQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToQueryRoundTrip(t *testing.T) {
	r := NewRandomizer(7)
	r.Size = ""
	for i := 0; i < 200; i++ {
		a := r.Attrs()
		q, err := url.ParseQuery(ToQuery(a))
		if err != nil {
			t.Fatalf("ParseQuery(%q): %v", ToQuery(a), err)
		}
		if got, want := Normalize(FromQuery(q)), Normalize(a); got != want {
			t.Fatalf("round trip of %v: got %+v, want %+v", a, got, want)
		}
	}
}

func TestIdentity(t *testing.T) {
	tests := []struct {
		name string
		a    Attrs
		want string
	}{
		{"empty", Attrs{}, ""},
		{"hue only", Attrs{"hue": "210"}, "hue=210"},
		{"sat and size", Attrs{"sat": "40%", "size": "200px"}, "size=200px&sat=40%25"},
		{"empty value kept", Attrs{"lit": ""}, "lit="},
		{"flags", Attrs{"animate": true, "seed": "3"}, "seed=3&animate"},
		{"false flag dropped", Attrs{"animate": false}, ""},
		{"unknown key dropped", Attrs{"x": "1"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Identity(tt.a); got != tt.want {
				t.Errorf("Identity() = %q, want %q", got, tt.want)
			}
		})
	}

	if Identity(Attrs{"hue": "210"}) == Identity(Attrs{}) {
		t.Error("hue does not change the identity")
	}
	if ToQuery(Attrs{"hue": "210"}) != ToQuery(Attrs{}) {
		t.Error("hue should stay out of share links")
	}
}

func TestCaption(t *testing.T) {
	got := Caption(Attrs{KeySeed: "5", KeyCell: "10px", KeyR: ".90", KeySize: "280px", KeyAnimate: true})
	want := `seed="5" cell="10px" r=".90" animate`
	if got != want {
		t.Errorf("Caption() = %q, want %q", got, want)
	}
}

func TestToAttributes(t *testing.T) {
	got := ToAttributes(Attrs{KeyAnimate: true, KeySeed: "2", KeyCell: 4, KeyHue: "", "x": "y"})
	want := []html.Attribute{{Key: KeySeed, Val: "2"}, {Key: KeyHue, Val: ""}, {Key: KeyAnimate}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToAttributes mismatch (-want +got):\n%s", diff)
	}
	if back := FromAttributes(got); back.String(KeySeed) != "2" || !back.Flag(KeyAnimate) {
		t.Errorf("FromAttributes(ToAttributes()) = %v", back)
	}
}
