package catalog

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	c := Default()

	assert.Len(t, c.Subjects, 25)
	assert.Len(t, c.Modifiers, 10)
	assert.Len(t, c.Captions, 10)

	seen := make(map[string]bool)
	for _, s := range c.Subjects {
		assert.False(t, seen[s], "duplicate subject %q", s)
		seen[s] = true
	}
}

func TestChoice(t *testing.T) {
	t.Run("empty list yields empty string", func(t *testing.T) {
		assert.Equal(t, "", Choice(Global, nil))
	})

	t.Run("always returns a member", func(t *testing.T) {
		r := rand.New(rand.NewPCG(1, 2))
		for i := 0; i < 100; i++ {
			assert.Contains(t, Adjectives, Choice(r, Adjectives))
		}
	})

	t.Run("global source covers the list", func(t *testing.T) {
		hits := make(map[string]bool)
		for i := 0; i < 1000; i++ {
			hits[Choice(Global, Punchlines)] = true
		}
		assert.Len(t, hits, len(Punchlines))
	})
}
