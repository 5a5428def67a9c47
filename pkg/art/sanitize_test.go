package art

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSanitize(t *testing.T) {
	in := Attrs{
		KeySeed:    "3",
		KeyLit:     "140%",
		KeySize:    `280px;}</style><script>alert(1)</script>`,
		KeyCell:    "14px\n",
		KeyR:       "",
		KeyAnimate: true,
		"onclick":  "x",
	}
	got, dropped := Sanitize(in)

	want := Attrs{KeySeed: "3", KeyLit: "140%", KeyR: "", KeyAnimate: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sanitize mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{KeySize, KeyCell}, dropped); diff != "" {
		t.Errorf("dropped mismatch (-want +got):\n%s", diff)
	}
	if _, ok := in[KeySize]; !ok {
		t.Error("Sanitize mutated its input")
	}
}

func TestSanitizeKeepsRandomBags(t *testing.T) {
	for _, a := range NewRandomizer(8).Batch(100) {
		got, dropped := Sanitize(a)
		if len(dropped) > 0 {
			t.Fatalf("Sanitize(%v) dropped %v", a, dropped)
		}
		if diff := cmp.Diff(a, got); diff != "" {
			t.Fatalf("Sanitize changed a random bag:\n%s", diff)
		}
	}
}
