package art_test

import (
	"fmt"
	"net/url"

	"github.com/matzehuels/miniart/pkg/art"
)

func ExampleNormalize() {
	cfg := art.Normalize(art.Attrs{"seed": "3", "lit": "40%"})
	fmt.Println(cfg.L, cfg.A1, cfg.A2, cfg.A3)
	// Output: 40% .12turn .31turn .50turn
}

func ExampleFromQuery() {
	q, _ := url.ParseQuery("template=grid&seed=2&animate")
	cfg := art.Normalize(art.FromQuery(q))
	fmt.Println(cfg.Template, cfg.L, cfg.Animate)
	// Output: grid 54% true
}

func ExampleToQuery() {
	fmt.Println(art.ToQuery(art.Attrs{"seed": "3", "lit": "62%", "size": "280px"}))
	// Output: seed=3&lit=62%25
}
