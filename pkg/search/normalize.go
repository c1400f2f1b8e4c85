// Package search normaliza texto para búsquedas insensibles a tildes y
// mayúsculas (nombres de productos y clientes).
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var normalizer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize devuelve el texto en minúsculas y sin marcas diacríticas:
// "Camiseta Fútbol" → "camiseta futbol". Si la transformación falla se
// devuelve el texto en minúsculas sin más.
func Normalize(s string) string {
	lowered := strings.ToLower(strings.TrimSpace(s))
	out, _, err := transform.String(normalizer, lowered)
	if err != nil {
		return lowered
	}
	return out
}
