package cmd

import (
	"fmt"
	"os"

	gnnutri "github.com/gnames/gnnutri/pkg"
	"github.com/gnames/gnnutri/pkg/config"
	"github.com/spf13/cobra"
)

func versionFlag(cmd *cobra.Command) {
	hasVersionFlag, _ := cmd.Flags().GetBool("version")
	if hasVersionFlag {
		fmt.Printf("\nversion: %s\nbuild: %s\n\n", gnnutri.Version, gnnutri.Build)
		os.Exit(0)
	}
}

// addInputFlags registers locations of input tables.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("recipes", "r", "",
		"recipe-ingredient table (.xlsx, .csv, .tsv, .txt)")
	cmd.Flags().StringP("reference", "t", "",
		"food-composition table (.xlsx, .csv, .tsv, .txt, .sqlite, .db)")
	cmd.Flags().String("sqlite-table", "",
		"table name of a SQLite reference (default: tpca)")
}

// addReportFlags registers nutrient selection, rations and output format.
func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceP("nutrients", "n", nil,
		"nutrients to show, internal names or labels (comma separated)")
	cmd.Flags().IntP("rations", "x", 0,
		"number of rations (default from config, 1)")
	cmd.Flags().StringP("format", "f", "",
		"output format: table, csv or json")
}

// addFilterFlags registers filters of recipe rows.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("ut", nil, "keep rows of these UT values")
	cmd.Flags().StringSlice("type", nil, "keep rows of these recipe types")
	cmd.Flags().StringSlice("age-group", nil, "keep rows of these age groups")
}

// flagOptions converts flags that were set explicitly to config
// options. Flags that a command does not have are skipped. Rations are
// not converted, see rationsValue.
func flagOptions(cmd *cobra.Command) []config.Option {
	var res []config.Option
	fs := cmd.Flags()
	changed := func(name string) bool {
		return fs.Lookup(name) != nil && fs.Changed(name)
	}

	if changed("recipes") {
		s, _ := fs.GetString("recipes")
		res = append(res, config.OptInputRecipes(s))
	}
	if changed("reference") {
		s, _ := fs.GetString("reference")
		res = append(res, config.OptInputReference(s))
	}
	if changed("sqlite-table") {
		s, _ := fs.GetString("sqlite-table")
		res = append(res, config.OptInputSQLiteTable(s))
	}
	if changed("reports-dir") {
		s, _ := fs.GetString("reports-dir")
		res = append(res, config.OptReportDir(s))
	}
	if changed("nutrients") {
		ss, _ := fs.GetStringSlice("nutrients")
		res = append(res, config.OptReportNutrients(ss))
	}
	if changed("format") {
		s, _ := fs.GetString("format")
		res = append(res, config.OptReportFormat(s))
	}
	if changed("ut") {
		ss, _ := fs.GetStringSlice("ut")
		res = append(res, config.OptFilterUT(ss))
	}
	if changed("type") {
		ss, _ := fs.GetStringSlice("type")
		res = append(res, config.OptFilterRecipeType(ss))
	}
	if changed("age-group") {
		ss, _ := fs.GetStringSlice("age-group")
		res = append(res, config.OptFilterAgeGroup(ss))
	}
	return res
}

// rationsValue returns rations given by the flag or the configured value.
// The flag value is used as is, so invalid rations are reported by the
// engine instead of being replaced by the default.
func rationsValue(cmd *cobra.Command) int {
	fs := cmd.Flags()
	if fs.Lookup("rations") != nil && fs.Changed("rations") {
		i, _ := fs.GetInt("rations")
		return i
	}
	return cfg.Report.Rations
}
