package render

import (
	"encoding/base64"
	"fmt"
	"html"
	"strings"
	"unicode/utf8"
)

const (
	posterWidth  = 900
	posterHeight = 500
	panelWidth   = 300
	labelRunes   = 8
	fontFamily   = "'Inter','Segoe UI',system-ui,sans-serif"

	// DataURIPrefix marks base64 SVG payloads
	DataURIPrefix = "data:image/svg+xml;base64,"
)

// Poster renders the two-panel fallback artwork and returns it as a data URI.
// It has no error path: every interpolated string is sanitized and escaped.
func Poster(animalA, animalB, speciesName, caption string) string {
	return DataURIPrefix + base64.StdEncoding.EncodeToString([]byte(SVG(animalA, animalB, speciesName, caption)))
}

// SVG renders the raw vector document behind Poster
func SVG(animalA, animalB, speciesName, caption string) string {
	left := Palette(animalA)
	right := Palette(animalB)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" role="img" aria-label="Mashup of %s and %s">`,
		posterWidth, posterHeight, posterWidth, posterHeight, text(animalA), text(animalB))
	b.WriteString(`<defs>`)
	b.WriteString(`<linearGradient id="bg" x1="0" y1="0" x2="1" y2="0">`)
	fmt.Fprintf(&b, `<stop offset="0%%" stop-color="%s"/>`, left.RGBA(0.9))
	fmt.Fprintf(&b, `<stop offset="100%%" stop-color="%s"/>`, right.RGBA(0.9))
	b.WriteString(`</linearGradient>`)
	b.WriteString(grainFilter)
	b.WriteString(`</defs>`)
	b.WriteString(`<rect width="100%" height="100%" fill="url(#bg)"/>`)

	b.WriteString(`<g filter="url(#grain)">`)
	writePanel(&b, 40, animalA, left)
	writePanel(&b, posterWidth-40-panelWidth, animalB, right)
	b.WriteString(`</g>`)

	b.WriteString(`<g transform="translate(40,300)">`)
	b.WriteString(`<rect width="820" height="160" rx="26" fill="rgba(12,15,35,0.62)" stroke="rgba(15,15,25,0.8)" stroke-width="6"/>`)
	fmt.Fprintf(&b, `<text x="26" y="70" font-size="54" fill="#e5e7eb" font-weight="800" font-family="%s">%s</text>`, fontFamily, text(speciesName))
	fmt.Fprintf(&b, `<text x="26" y="116" font-size="24" fill="#cbd5e1" font-family="%s">%s</text>`, fontFamily, text(caption))
	b.WriteString(`</g>`)
	b.WriteString(`</svg>`)
	return b.String()
}

const grainFilter = `<filter id="grain">` +
	`<feTurbulence type="fractalNoise" baseFrequency="0.8" numOctaves="2" stitchTiles="stitch"/>` +
	`<feColorMatrix type="saturate" values="0.2"/>` +
	`<feComponentTransfer>` +
	`<feFuncR type="linear" slope="0.4"/><feFuncG type="linear" slope="0.4"/><feFuncB type="linear" slope="0.4"/>` +
	`</feComponentTransfer>` +
	`<feBlend in="SourceGraphic" mode="overlay"/>` +
	`</filter>`

func writePanel(b *strings.Builder, x int, animal string, c Color) {
	fmt.Fprintf(b, `<g transform="translate(%d,0)">`, x)
	fmt.Fprintf(b, `<rect x="0" y="0" width="%d" height="220" rx="22" fill="%s" stroke="rgba(10,10,16,0.4)" stroke-width="6"/>`, panelWidth, c.RGBA(0.82))
	fmt.Fprintf(b, `<text x="%d" y="120" font-size="52" fill="#f8fafc" font-weight="800" text-anchor="middle" font-family="%s">%s</text>`,
		panelWidth/2, fontFamily, text(truncate(animal, labelRunes)))
	fmt.Fprintf(b, `<text x="%d" y="160" font-size="22" fill="#cbd5e1" text-anchor="middle" font-family="%s">DNA donor</text>`,
		panelWidth/2, fontFamily)
	b.WriteString(`</g>`)
}

// truncate keeps the first n runes
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// text makes arbitrary input safe as XML character data or attribute value
func text(s string) string {
	s = strings.ToValidUTF8(s, "�")
	s = strings.Map(func(r rune) rune {
		if isXMLChar(r) {
			return r
		}
		return -1
	}, s)
	return html.EscapeString(s)
}

// isXMLChar reports whether r is allowed by the XML 1.0 Char production
func isXMLChar(r rune) bool {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	}
	return false
}
