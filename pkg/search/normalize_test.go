package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// La búsqueda debe ignorar tildes y mayúsculas: "Limón" y "limon" son el
// mismo término.
func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Limón", "limon"},
		{"CAFÉ", "cafe"},
		{"Niño envuelto", "nino envuelto"},
		{"agua", "agua"},
		{"", ""},
		{"Müsli", "musli"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Normalize(tc.in), "Normalize(%q)", tc.in)
	}
}
