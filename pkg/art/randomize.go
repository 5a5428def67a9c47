package art

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/matzehuels/miniart/pkg/art/seeds"
)

// Sampling ranges for random tiles. They keep generated art legible: no
// near-black or near-white lightness, and a dense but visible grain.
const (
	randomCellMin  = 8  // px, inclusive
	randomCellMax  = 14 // px, inclusive
	randomRadiusLo = 0.80
	randomRadiusHi = 0.92
	randomLitMin   = 50 // percent, inclusive
	randomLitMax   = 70 // percent, inclusive
	randomAnimateP = 0.3
	randomSeedP    = 0.5
)

// DefaultRandomSize is the fixed tile size carried by random bags so a
// gallery of random tiles lays out evenly.
const DefaultRandomSize = "280px"

// randomTemplates excludes minimal, which is too sparse to sample blindly.
var randomTemplates = []Template{TemplateGeometric, TemplateGrid, TemplateRadial, TemplateAngular}

// Randomizer samples raw input bags for demo variety. The bags go through
// [Normalize] like any other input; nothing downstream knows they are random.
//
// A Randomizer is safe for concurrent use.
type Randomizer struct {
	// Size is copied into every bag under the size key. Empty leaves the key
	// out.
	Size string

	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomizer returns a Randomizer whose sequence is fully determined by
// seed.
func NewRandomizer(seed uint64) *Randomizer {
	return &Randomizer{
		Size: DefaultRandomSize,
		rng:  rand.New(rand.NewPCG(seed, seed^0xdeadbeef)),
	}
}

var global = &Randomizer{
	Size: DefaultRandomSize,
	rng:  rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
}

// Randomize samples a bag from the process-wide source.
func Randomize() Attrs {
	return global.Attrs()
}

// Attrs samples one bag.
//
// Half of the bags name a seed and leave lightness and angles to it; the
// other half sample lightness and all three angles directly. Both halves
// sample cell, radius and animate independently.
func (r *Randomizer) Attrs() Attrs {
	r.mu.Lock()
	defer r.mu.Unlock()

	a := Attrs{KeyTemplate: string(pick(r.rng, randomTemplates))}
	if r.Size != "" {
		a[KeySize] = r.Size
	}

	if r.rng.Float64() < randomSeedP {
		a[KeySeed] = pick(r.rng, seeds.IDs())
	} else {
		a[KeyLit] = fmt.Sprintf("%d%%", intBetween(r.rng, randomLitMin, randomLitMax))
		a[KeyA1] = randomTurn(r.rng)
		a[KeyA2] = randomTurn(r.rng)
		a[KeyA3] = randomTurn(r.rng)
	}

	a[KeyCell] = fmt.Sprintf("%dpx", intBetween(r.rng, randomCellMin, randomCellMax))
	a[KeyR] = fmt.Sprintf("%.2f", randomRadiusLo+r.rng.Float64()*(randomRadiusHi-randomRadiusLo))
	a[KeyAnimate] = r.rng.Float64() < randomAnimateP
	return a
}

// Batch samples n bags.
func (r *Randomizer) Batch(n int) []Attrs {
	out := make([]Attrs, 0, max(n, 0))
	for range n {
		out = append(out, r.Attrs())
	}
	return out
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}

func intBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

// randomTurn draws thousandths of a turn so the formatted value stays below
// one full turn.
func randomTurn(rng *rand.Rand) string {
	return fmt.Sprintf("%.3fturn", float64(rng.IntN(1000))/1000)
}
