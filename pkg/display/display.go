// Package display keeps human-readable labels of internal column names.
// Labels are used only by presenters and exporters, the engine works with
// internal snake-case names.
package display

import "slices"

// labels maps internal column names to display labels. Every label is
// unique, so the map can be inverted.
var labels = map[string]string{
	"nombre_de_receta":       "Receta",
	"ingrediente_registrado": "Ingrediente",
	"ut":                     "UT",
	"tipo_receta":            "Tipo de receta",
	"grupo_etareo_recet":     "Grupo etáreo",
	"peso_neto__racion_g":    "Peso neto por ración (g)",

	"energaenerc_kcal":                      "Energía (kcal)",
	"protenas_totalesprocnt_g":              "Proteína (g)",
	"hierrofe_mg":                           "Hierro (mg)",
	"vitamina_a_equivalentes_totalesvita_g": "Vitamina A (µg RAE)",
	"vitamina_cvitc_mg":                     "Vitamina C (mg)",
	"zinczn_mg":                             "Zinc (mg)",
	"grasa_totalfat_g":                      "Grasa total (g)",
	"carbohidratos_totaleschocdf_g":         "Carbohidratos (g)",
	"fibra_dietariafibtg_g":                 "Fibra dietaria (g)",
	"calcioca_mg":                           "Calcio (mg)",
	"fsforop_mg":                            "Fósforo (mg)",
	"sodiona_mg":                            "Sodio (mg)",
	"potasiok_mg":                           "Potasio (mg)",
}

var internals = func() map[string]string {
	res := make(map[string]string, len(labels))
	for k, v := range labels {
		res[v] = k
	}
	return res
}()

// DefaultNutrients are shown when no nutrient selection is given and the
// reference table has them.
var DefaultNutrients = []string{
	"energaenerc_kcal",
	"protenas_totalesprocnt_g",
	"hierrofe_mg",
	"vitamina_a_equivalentes_totalesvita_g",
	"vitamina_cvitc_mg",
}

// Label returns the display label of an internal name. Names without a
// label are returned unchanged.
func Label(name string) string {
	if res, ok := labels[name]; ok {
		return res
	}
	return name
}

// Internal returns the internal name of a display label. Strings that are
// not labels are returned unchanged.
func Internal(label string) string {
	if res, ok := internals[label]; ok {
		return res
	}
	return label
}

// Labels converts a slice of internal names to display labels.
func Labels(names []string) []string {
	res := make([]string, len(names))
	for i := range names {
		res[i] = Label(names[i])
	}
	return res
}

// Known returns sorted internal names that have a display label.
func Known() []string {
	res := make([]string, 0, len(labels))
	for k := range labels {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}
