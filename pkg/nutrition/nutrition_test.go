package nutrition_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnnutri/pkg/errcode"
	"github.com/gnames/gnnutri/pkg/foodkey"
	"github.com/gnames/gnnutri/pkg/layout"
	"github.com/gnames/gnnutri/pkg/nutrition"
	"github.com/gnames/gnnutri/pkg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	energy  = "energaenerc_kcal"
	protein = "protenas_totalesprocnt_g"
)

func testLayout() layout.Layout {
	lay := layout.Default()
	lay.Nutrients = []string{energy, protein}
	return lay
}

func reference() *table.Table {
	return table.New("tpca.csv",
		[]string{"codigo", "grupo", "nombre", energy, protein},
		[][]string{
			{"12", "CEREALES", "Arroz", "300", "7"},
			{"38.0", "lacteos", "Leche", "60", "n.d."},
			{"7", "VERDURAS", "Zanahoria", "40", ""},
		},
	)
}

func recipes(rows ...[]string) *table.Table {
	return table.New("recetas.csv",
		[]string{"Nombre de receta", "Ingrediente registrado", "Codigo",
			"Grupo", "Peso neto  racion g", "UT", "Tipo receta"},
		rows,
	)
}

func errCode(t *testing.T, err error) gn.ErrorCode {
	t.Helper()
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	return gnErr.Code
}

func TestScale(t *testing.T) {
	tests := []struct {
		msg    string
		v, w   float64
		res    float64
		resOk  bool
		amount nutrition.Amount
	}{
		{"basic", 300, 150, 450, true, nutrition.Valid(300)},
		{"zero weight", 300, 0, 0, true, nutrition.Valid(300)},
		{"fraction", 7.3, 33.3, 7.3 * 33.3 / 100, true, nutrition.Valid(7.3)},
		{"missing", 0, 150, 0, false, nutrition.Amount{}},
	}
	for _, v := range tests {
		res := nutrition.Scale(v.amount, v.w)
		assert.Equal(t, v.resOk, res.Valid, v.msg)
		assert.InDelta(t, v.res, res.Value, 1e-9, v.msg)
	}

	for i := 0; i < 100; i++ {
		v := rand.Float64() * 1000
		w := rand.Float64() * 500
		res := nutrition.Scale(nutrition.Valid(v), w)
		assert.InDelta(t, v*w/100.0, res.Value, 1e-9)
	}
}

func TestParse(t *testing.T) {
	assert.Equal(t, nutrition.Valid(1.5), nutrition.ParseAmount(" 1.5 "))
	assert.False(t, nutrition.ParseAmount("").Valid)
	assert.False(t, nutrition.ParseAmount("n.d.").Valid)
	assert.False(t, nutrition.ParseAmount("NaN").Valid)
	assert.False(t, nutrition.ParseAmount("inf").Valid)

	tests := []struct {
		msg, input string
		w          float64
		ok         bool
	}{
		{"number", "150", 150, true},
		{"float", "12.5", 12.5, true},
		{"empty", "", 0, false},
		{"text", "abc", 0, false},
		{"negative", "-3", 0, false},
		{"nan", "nan", 0, false},
	}
	for _, v := range tests {
		w, ok := nutrition.ParseWeight(v.input)
		assert.Equal(t, v.w, w, v.msg)
		assert.Equal(t, v.ok, ok, v.msg)
	}
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 450.0, nutrition.Round1(450))
	assert.Equal(t, 12.3, nutrition.Round1(12.34))
	assert.Equal(t, 12.4, nutrition.Round1(12.36))
	assert.Equal(t, 0.0, nutrition.Round1(0.04))
}

func TestJoinMatch(t *testing.T) {
	rec := recipes(
		[]string{"Arroz con leche", "arroz", "12", "cereales", "150", "UT1", "A"},
	)
	res, err := nutrition.Join(rec, reference(), testLayout())
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)

	row := res.Rows[0]
	assert.True(t, row.Matched)
	assert.Equal(t, foodkey.Key{Code: "12", Group: "CEREALES"}, row.Key)
	assert.Equal(t, 2, row.Line)
	assert.Equal(t, []string{energy, protein}, res.Nutrients)
	assert.Equal(t, nutrition.Valid(450), row.Nutrients[0])
	assert.InDelta(t, 10.5, row.Nutrients[1].Value, 1e-9)
	assert.Equal(t, 1, res.Matched)
	assert.Equal(t, 0, res.Unmatched)
	assert.Empty(t, res.UnmatchedKeys)
}

func TestJoinUnmatched(t *testing.T) {
	rec := recipes(
		[]string{"Sopa", "arroz", "12", "cereales", "100", "", ""},
		[]string{"Sopa", "misterio", "99", "X", "80", "", ""},
		[]string{"Sopa", "misterio", "99.0", "x", "20", "", ""},
		[]string{"Sopa", "arroz sin grupo", "12", "LACTEOS", "10", "", ""},
	)
	res, err := nutrition.Join(rec, reference(), testLayout())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Matched)
	assert.Equal(t, 3, res.Unmatched)
	assert.Equal(t, []foodkey.Key{
		{Code: "99", Group: "X"},
		{Code: "12", Group: "LACTEOS"},
	}, res.UnmatchedKeys)

	for _, row := range res.Rows[1:] {
		assert.False(t, row.Matched)
		require.Len(t, row.Nutrients, 2)
		for _, a := range row.Nutrients {
			assert.False(t, a.Valid)
		}
	}

	sum, err := nutrition.Aggregate(res.Rows, res.Nutrients, nil, 1)
	require.NoError(t, err)
	require.Len(t, sum, 1)
	assert.Equal(t, 300.0, sum[0].Totals[0])
	assert.True(t, sum[0].Incomplete)
	assert.Equal(t, 3, sum[0].UnmatchedIngredients)
}

func TestJoinMissingValues(t *testing.T) {
	rec := recipes(
		[]string{"Postre", "leche", "38", "LACTEOS", "", "", ""},
		[]string{"Postre", "leche", "38", "LACTEOS", "200", "", ""},
		[]string{"Postre", "zanahoria", "7", "VERDURAS", "50", "", ""},
	)
	res, err := nutrition.Join(rec, reference(), testLayout())
	require.NoError(t, err)

	// missing weight gives zero, not missing
	assert.Equal(t, nutrition.Valid(0), res.Rows[0].Nutrients[0])
	assert.False(t, res.Rows[0].WeightValid)
	// non-numeric per-100g value stays missing
	assert.False(t, res.Rows[1].Nutrients[1].Valid)
	assert.Equal(t, nutrition.Valid(120), res.Rows[1].Nutrients[0])
	assert.False(t, res.Rows[2].Nutrients[1].Valid)

	sum, err := nutrition.Aggregate(res.Rows, res.Nutrients, nil, 1)
	require.NoError(t, err)
	assert.Equal(t, 140.0, sum[0].Totals[0])
	assert.Equal(t, 0.0, sum[0].Totals[1])
	assert.Equal(t, 1, sum[0].MissingWeights)
	assert.Equal(t, 0, sum[0].UnmatchedIngredients)
	assert.True(t, sum[0].Incomplete)
}

func TestJoinDeterministic(t *testing.T) {
	rec := recipes(
		[]string{"A", "arroz", "12", "cereales", "150", "", ""},
		[]string{"A", "x", "99", "X", "80", "", ""},
		[]string{"B", "leche", "38", "lacteos", "33.3", "", ""},
	)
	res1, err := nutrition.Join(rec, reference(), testLayout())
	require.NoError(t, err)
	res2, err := nutrition.Join(rec, reference(), testLayout())
	require.NoError(t, err)
	assert.Equal(t, res1, res2)
}

func TestJoinErrors(t *testing.T) {
	t.Run("duplicate reference key", func(t *testing.T) {
		ref := table.New("tpca.csv",
			[]string{"codigo", "grupo", energy, protein},
			[][]string{
				{"12", "CEREALES", "300", "7"},
				{"5", "CEREALES", "300", "7"},
				{"12.0", "cereales ", "310", "7"},
			},
		)
		rec := recipes([]string{"A", "a", "5", "CEREALES", "1", "", ""})
		_, err := nutrition.Join(rec, ref, testLayout())
		require.Error(t, err)
		gnErr := err.(*gn.Error)
		assert.Equal(t, errcode.JoinCardinalityError, gnErr.Code)
		assert.Equal(t, 2, gnErr.Vars[3])
		assert.Equal(t, 4, gnErr.Vars[4])
	})

	t.Run("no weight column", func(t *testing.T) {
		rec := table.New("recetas.csv",
			[]string{"receta", "codigo", "grupo"},
			[][]string{{"A", "12", "CEREALES"}},
		)
		_, err := nutrition.Join(rec, reference(), testLayout())
		require.Error(t, err)
		gnErr := err.(*gn.Error)
		assert.Equal(t, errcode.SchemaError, gnErr.Code)
		assert.Equal(t, layout.Weight, gnErr.Vars[0])
	})

	t.Run("no group in reference", func(t *testing.T) {
		ref := table.New("tpca.csv",
			[]string{"codigo", energy, protein},
			[][]string{{"12", "300", "7"}},
		)
		rec := recipes([]string{"A", "a", "12", "CEREALES", "1", "", ""})
		_, err := nutrition.Join(rec, ref, testLayout())
		require.Error(t, err)
		assert.Equal(t, errcode.SchemaError, errCode(t, err))
	})

	t.Run("missing nutrients", func(t *testing.T) {
		lay := testLayout()
		lay.Nutrients = append(lay.Nutrients, "hierrofe_mg")
		rec := recipes([]string{"A", "a", "12", "CEREALES", "1", "", ""})
		_, err := nutrition.Join(rec, reference(), lay)
		require.Error(t, err)
		assert.Equal(t, errcode.SchemaError, errCode(t, err))
	})
}

func TestJoinPositional(t *testing.T) {
	header := []string{"codigo", "grupo", "nombre"}
	row := []string{"12", "CEREALES", "Arroz"}
	for i := 3; i < 30; i++ {
		header = append(header, fmt.Sprintf("n%02d", i))
		row = append(row, fmt.Sprintf("%d", i))
	}
	ref := table.New("tpca.csv", header, [][]string{row})
	rec := recipes([]string{"A", "a", "12", "cereales", "200", "", ""})

	res, err := nutrition.Join(rec, ref, layout.Default())
	require.NoError(t, err)
	require.Len(t, res.Nutrients, 24)
	assert.Equal(t, "n03", res.Nutrients[0])
	assert.Equal(t, "n26", res.Nutrients[23])
	assert.Equal(t, 6.0, res.Rows[0].Nutrients[0].Value)
	assert.Equal(t, 52.0, res.Rows[0].Nutrients[23].Value)
}

func TestAggregateScenario(t *testing.T) {
	rows := []nutrition.JoinedRow{
		joined("Guiso", 450, true),
		joined("Guiso", 120, true),
	}
	sum, err := nutrition.Aggregate(rows, []string{energy}, nil, 2)
	require.NoError(t, err)
	require.Len(t, sum, 1)
	assert.Equal(t, 1140.0, sum[0].Totals[0])
	assert.Equal(t, 2, sum[0].Rations)
	assert.Equal(t, 2, sum[0].Ingredients)
	assert.False(t, sum[0].Incomplete)
}

func TestAggregateRations(t *testing.T) {
	rows := []nutrition.JoinedRow{joined("Guiso", 450, true)}
	for _, r := range []int{0, -1} {
		_, err := nutrition.Aggregate(rows, []string{energy}, nil, r)
		require.Error(t, err)
		assert.Equal(t, errcode.InvalidRationsError, errCode(t, err))
	}

	// rations are checked before the selection
	_, err := nutrition.Aggregate(rows, []string{energy}, []string{"x"}, 0)
	assert.Equal(t, errcode.InvalidRationsError, errCode(t, err))
}

func TestAggregateOrderIndependent(t *testing.T) {
	var rows []nutrition.JoinedRow
	for i := 0; i < 200; i++ {
		name := fmt.Sprintf("R%d", i%7)
		rows = append(rows, joined(name, rand.Float64()*1000, i%11 != 0))
	}
	exp, err := nutrition.Aggregate(rows, []string{energy}, nil, 3)
	require.NoError(t, err)
	require.Len(t, exp, 7)
	assert.Equal(t, "R0", exp[0].Recipe)

	for i := 0; i < 10; i++ {
		perm := make([]nutrition.JoinedRow, len(rows))
		for j, k := range rand.Perm(len(rows)) {
			perm[j] = rows[k]
		}
		res, err := nutrition.Aggregate(perm, []string{energy}, nil, 3)
		require.NoError(t, err)
		assert.Equal(t, exp, res)
	}
}

func TestSelectNutrients(t *testing.T) {
	nutrients := []string{energy, protein, "hierrofe_mg"}

	names, idx, err := nutrition.SelectNutrients(nutrients, nil)
	require.NoError(t, err)
	assert.Equal(t, nutrients, names)
	assert.Equal(t, []int{0, 1, 2}, idx)

	names, idx, err = nutrition.SelectNutrients(
		nutrients, []string{"Hierro (mg)", energy},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"hierrofe_mg", energy}, names)
	assert.Equal(t, []int{2, 0}, idx)

	names, _, err = nutrition.SelectNutrients(
		nutrients, []string{energy, "Energía (kcal)"},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{energy}, names)

	_, _, err = nutrition.SelectNutrients(nutrients, []string{"Zinc (mg)", "x"})
	require.Error(t, err)
	gnErr := err.(*gn.Error)
	assert.Equal(t, errcode.UnknownNutrientError, gnErr.Code)
	assert.Contains(t, gnErr.Err.Error(), "Zinc (mg)")
}

func TestProject(t *testing.T) {
	rec := recipes(
		[]string{"Arroz con leche", "arroz", "12", "cereales", "150", "", ""},
		[]string{"Puré", "zanahoria", "7", "VERDURAS", "100", "", ""},
		[]string{"Arroz con leche", "leche", "38", "LACTEOS", "200", "", ""},
		[]string{"Arroz con leche", "canela", "1", "ESPECIAS", "2", "", ""},
	)
	res, err := nutrition.Join(rec, reference(), testLayout())
	require.NoError(t, err)

	d, err := nutrition.Project(res.Rows, res.Nutrients, "", []string{"Energía (kcal)"}, 2)
	require.NoError(t, err)
	assert.Equal(t, "Arroz con leche", d.Recipe)
	assert.Equal(t,
		[]string{nutrition.ColIngredient, nutrition.ColWeight, energy},
		d.Header(),
	)
	require.Len(t, d.Rows, 4)
	assert.Equal(t, "arroz", d.Rows[0].Ingredient)
	assert.Equal(t, nutrition.Valid(300), d.Rows[0].Weight)
	assert.Equal(t, []float64{900}, d.Rows[0].Values)
	assert.Equal(t, []float64{240}, d.Rows[1].Values)
	assert.Equal(t, []float64{0}, d.Rows[2].Values)

	total := d.Total()
	assert.True(t, total.Total)
	assert.Equal(t, nutrition.TotalLabel, total.Ingredient)
	assert.False(t, total.Weight.Valid)
	assert.Equal(t, []float64{1140}, total.Values)

	d, err = nutrition.Project(res.Rows, res.Nutrients, "Puré", nil, 1)
	require.NoError(t, err)
	require.Len(t, d.Rows, 2)
	assert.Equal(t, []float64{40, 0}, d.Total().Values)

	_, err = nutrition.Project(res.Rows, res.Nutrients, "Tamal", nil, 1)
	require.Error(t, err)
	assert.Equal(t, errcode.UnknownRecipeError, errCode(t, err))

	_, err = nutrition.Project(res.Rows, res.Nutrients, "Puré", nil, 0)
	require.Error(t, err)
	assert.Equal(t, errcode.InvalidRationsError, errCode(t, err))

	assert.Equal(t,
		[]string{"Arroz con leche", "Puré"},
		nutrition.Recipes(res.Rows),
	)
}

func TestDataset(t *testing.T) {
	rec := table.New("recetas.csv",
		[]string{"receta", "codigo", "grupo", "peso_g", "nota", energy},
		[][]string{
			{"A", "12.0", "cereales", "150", "007", "999"},
			{"A", "99", "x", "", "", ""},
			{"A", "12", "cereales", "n/a", "", ""},
			{"A", "12", "cereales", "-5", "", ""},
		},
	)
	res, err := nutrition.Join(rec, reference(), testLayout())
	require.NoError(t, err)

	header, rows := nutrition.Dataset(res)
	assert.Equal(t,
		[]string{"receta", "codigo", "grupo", "peso_g", "nota", energy, protein},
		header,
	)
	require.Len(t, rows, 4)
	assert.Equal(t,
		[]nutrition.Cell{"A", 12.0, "CEREALES", 150.0, 7.0, 450.0, 10.5},
		rows[0],
	)

	// invalid weights keep their raw cells, amounts are scaled with 0
	assert.Equal(t,
		[]nutrition.Cell{"A", 99.0, "X", nil, nil, nil, nil},
		rows[1],
	)
	assert.Equal(t,
		[]nutrition.Cell{"A", 12.0, "CEREALES", "n/a", nil, 0.0, 0.0},
		rows[2],
	)
	assert.Equal(t,
		[]nutrition.Cell{"A", 12.0, "CEREALES", -5.0, nil, 0.0, 0.0},
		rows[3],
	)
}

func TestFilter(t *testing.T) {
	rows := []nutrition.JoinedRow{
		attrs("A", "UT1", "Desayuno", "Niños"),
		attrs("B", "ut1", "Almuerzo", "Niños"),
		attrs("C", "UT2", "Almuerzo", "Adultos"),
	}

	tests := []struct {
		msg string
		f   nutrition.Filter
		res []string
	}{
		{"empty", nutrition.Filter{}, []string{"A", "B", "C"}},
		{"ut", nutrition.Filter{UT: []string{" UT1"}}, []string{"A", "B"}},
		{"two lists", nutrition.Filter{
			UT:         []string{"UT1", "UT2"},
			RecipeType: []string{"almuerzo"},
		}, []string{"B", "C"}},
		{"none", nutrition.Filter{AgeGroup: []string{"x"}}, nil},
	}
	for _, v := range tests {
		assert.Equal(t, v.res, nutrition.Recipes(v.f.Apply(rows)), v.msg)
	}

	ch := nutrition.Choices(rows)
	assert.Equal(t, []string{"UT1", "UT2", "ut1"}, ch.UT)
	assert.Equal(t, []string{"Adultos", "Niños"}, ch.AgeGroup)
}

func joined(recipe string, energy float64, matched bool) nutrition.JoinedRow {
	res := nutrition.JoinedRow{
		IngredientRow: nutrition.IngredientRow{
			Recipe:      recipe,
			Weight:      100,
			WeightValid: true,
		},
		Matched:   matched,
		Nutrients: []nutrition.Amount{{}},
	}
	if matched {
		res.Nutrients[0] = nutrition.Valid(energy)
	}
	return res
}

func attrs(recipe, ut, rt, ag string) nutrition.JoinedRow {
	return nutrition.JoinedRow{
		IngredientRow: nutrition.IngredientRow{
			Recipe:     recipe,
			UT:         ut,
			RecipeType: rt,
			AgeGroup:   ag,
		},
	}
}
