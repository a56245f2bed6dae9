package mashup

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"SpliceSafari/catalog"
)

// tagSlice is how many runes each animal contributes to the species tag
const tagSlice = 3

type CatalogTooSmallError struct {
	Size int
}

func (e *CatalogTooSmallError) Error() string {
	return fmt.Sprintf("catalog has %d subjects, need at least 2", e.Size)
}

// CheckCatalog validates a catalog once at startup
func CheckCatalog(c *catalog.Catalog) error {
	if c == nil {
		return &CatalogTooSmallError{}
	}
	if len(c.Subjects) < 2 {
		return &CatalogTooSmallError{Size: len(c.Subjects)}
	}
	if len(c.Modifiers) == 0 {
		return errors.New("catalog has no modifiers")
	}
	if len(c.Captions) == 0 {
		return errors.New("catalog has no captions")
	}
	return nil
}

// PickPair draws two distinct subjects uniformly without replacement
func PickPair(r catalog.Random, subjects []string) (string, string, error) {
	n := len(subjects)
	if n < 2 {
		return "", "", &CatalogTooSmallError{Size: n}
	}
	i := r.IntN(n)
	j := r.IntN(n - 1)
	if j >= i {
		j++
	}
	return subjects[i], subjects[j], nil
}

// ComposeName builds "<Modifier> <Tag>" where the tag joins the head of a
// with the tail of b. Strings shorter than the slice are used whole.
func ComposeName(r catalog.Random, a, b string, modifiers []string) string {
	start := capitalize(strings.TrimRightFunc(head(a, tagSlice), unicode.IsSpace))
	end := capitalize(strings.TrimLeftFunc(tail(b, tagSlice), unicode.IsSpace))
	tag := start + end

	modifier := catalog.Choice(r, modifiers)
	if modifier == "" {
		return tag
	}
	return modifier + " " + tag
}

func head(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func tail(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[len(runes)-n:])
}

// capitalize upper-cases the first rune and lower-cases the rest
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
