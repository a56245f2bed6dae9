// Package render draws the offline poster used when no external image
// generator is available.
package render

import (
	"fmt"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

type Color struct {
	R, G, B int
}

// RGBA formats the color for SVG paint attributes
func (c Color) RGBA(alpha float64) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%g)", c.R, c.G, c.B, alpha)
}

// Palette derives a stable color from the subject text.
// The seed is xxhash64 of the UTF-8 bytes masked to 32 bits; it feeds a
// private PCG generator, so no state is shared between calls.
func Palette(subject string) Color {
	seed := xxhash.Sum64String(subject) & 0xFFFFFFFF
	rng := rand.New(rand.NewPCG(seed, seed))
	return Color{
		R: between(rng, 70, 230),
		G: between(rng, 60, 210),
		B: between(rng, 80, 240),
	}
}

// between draws from the closed interval [lo, hi]
func between(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}
