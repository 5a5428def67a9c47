package ssr_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/miniart/pkg/art"
	"github.com/matzehuels/miniart/pkg/render/ssr"
)

func ExampleRenderShadow() {
	out := ssr.RenderShadow(art.Config{Animate: true})
	fmt.Println(strings.HasPrefix(out, `<template shadowrootmode="open">`))
	fmt.Println(strings.Contains(out, `<div class="art animate" part="art" aria-label="Mini Art (B/W)"></div>`))
	// Output:
	// true
	// true
}
