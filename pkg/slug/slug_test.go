package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/malithvisio/magcin-api/pkg/slug"
)

func TestMake(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Cañón del Chicamocha", "canon-del-chicamocha"},
		{"Tour  Café   Premium", "tour-cafe-premium"},
		{"  ¡Hola, Mundo!  ", "hola-mundo"},
		{"Playa #1 (2026)", "playa-1-2026"},
		{"ÑOÑO", "nono"},
		{"ya-es-slug", "ya-es-slug"},
		{"", ""},
		{"¡¿!?", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, slug.Make(c.in), "entrada: %q", c.in)
	}
}
