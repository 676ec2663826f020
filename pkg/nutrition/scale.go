package nutrition

// Scale converts a per-100g amount to the amount in weight grams.
// A missing amount stays missing, a zero weight gives zero.
func Scale(per100g Amount, weight float64) Amount {
	if !per100g.Valid {
		return Amount{}
	}
	return Valid(per100g.Value * (weight / 100.0))
}

// ScaleProfile scales every nutrient of a profile to weight grams.
func ScaleProfile(p Profile, weight float64) []Amount {
	res := make([]Amount, len(p))
	for i := range p {
		res[i] = Scale(p[i], weight)
	}
	return res
}
