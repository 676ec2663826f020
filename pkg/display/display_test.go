package display_test

import (
	"testing"

	"github.com/gnames/gnnutri/pkg/display"
	"github.com/stretchr/testify/assert"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		msg, name, label string
	}{
		{"recipe", "nombre_de_receta", "Receta"},
		{"energy", "energaenerc_kcal", "Energía (kcal)"},
		{"vitamin a", "vitamina_a_equivalentes_totalesvita_g", "Vitamina A (µg RAE)"},
		{"unknown", "nutr_x", "nutr_x"},
		{"empty", "", ""},
	}

	for _, v := range tests {
		assert.Equal(t, v.label, display.Label(v.name), v.msg)
		assert.Equal(t, v.name, display.Internal(v.label), v.msg)
	}
}

func TestRoundTrip(t *testing.T) {
	names := append(display.Known(), "nutr_x", "Receta", "UT", "otro")
	for _, v := range names {
		lbl := display.Label(v)
		assert.Equal(t, lbl, display.Label(display.Internal(lbl)), v)
	}
	for _, v := range display.Known() {
		assert.Equal(t, v, display.Internal(display.Label(v)), v)
	}
}

func TestDefaultNutrientsHaveLabels(t *testing.T) {
	for _, v := range display.DefaultNutrients {
		assert.NotEqual(t, v, display.Label(v), v)
	}
	assert.Equal(t,
		[]string{"Energía (kcal)", "Proteína (g)"},
		display.Labels(display.DefaultNutrients[:2]),
	)
}
