// Package catalog holds the fixed word lists a spin draws from.
package catalog

import "math/rand/v2"

var Animals = []string{
	"Lion",
	"Elephant",
	"Penguin",
	"Kangaroo",
	"Giraffe",
	"Panda",
	"Koala",
	"Falcon",
	"Octopus",
	"Dolphin",
	"Crocodile",
	"Armadillo",
	"Rabbit",
	"Hedgehog",
	"Otter",
	"Zebra",
	"Hippo",
	"Parrot",
	"Cheetah",
	"Meerkat",
	"Chameleon",
	"Wolf",
	"Fennec Fox",
	"Capybara",
	"Moose",
}

var Adjectives = []string{
	"Giggly",
	"Sneaky",
	"Glittery",
	"Turbo",
	"Cosmic",
	"Whimsical",
	"Neon",
	"Electric",
	"Dizzy",
	"Galactic",
}

var Punchlines = []string{
	"Certified chaos on paws",
	"Banned from every zoo talent show",
	"Eats only gourmet snacks and compliments",
	"Can and will steal your picnic blanket",
	"World champion of awkward high-fives",
	"Part-time lifeguard, full-time menace",
	"Possesses questionable superpowers",
	"Believes it invented jazz",
	"Won't share its playlists",
	"Makes its own sound effects",
}

// Catalog groups the lists used by one service instance.
// Slices are shared and must not be modified after startup.
type Catalog struct {
	Subjects  []string
	Modifiers []string
	Captions  []string
}

func Default() *Catalog {
	return &Catalog{
		Subjects:  Animals,
		Modifiers: Adjectives,
		Captions:  Punchlines,
	}
}

// Random is the source of uniform choices. Implementations must be safe
// for concurrent use when shared between requests.
type Random interface {
	IntN(n int) int
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int {
	return rand.IntN(n)
}

// Global uses the runtime-seeded, goroutine-safe generator of math/rand/v2
var Global Random = globalRandom{}

// Choice returns a uniformly chosen item, or "" when items is empty
func Choice(r Random, items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[r.IntN(len(items))]
}
