/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"os"

	"github.com/gnames/gn"
	"github.com/gnames/gnnutri/internal/iocalc"
	"github.com/gnames/gnnutri/internal/ioexport"
	"github.com/gnames/gnnutri/internal/iolayout"
	"github.com/gnames/gnnutri/internal/ioprint"
	"github.com/spf13/cobra"
)

// getSummaryCmd returns the summary command.
func getSummaryCmd() *cobra.Command {
	var export bool

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Show nutrient totals of recipes",
		Long: `Show nutrient totals of every recipe multiplied by rations.

Recipes marked with '*' have ingredients without reference data or
weight, those ingredients add 0 to the totals.

Examples:
  gnnutri summary
  gnnutri summary -n "Energía (kcal),Hierro (mg)" -x 20
  gnnutri summary --ut UT1,UT2 --type Almuerzo -f csv
  gnnutri summary --export`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runSummary(cmd, export)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addInputFlags(summaryCmd)
	addReportFlags(summaryCmd)
	addFilterFlags(summaryCmd)
	summaryCmd.Flags().BoolVar(&export, "export", false,
		"write recetas_nutricional_export.xlsx")
	summaryCmd.Flags().StringP("reports-dir", "o", "",
		"directory for exported workbooks")

	return summaryCmd
}

func runSummary(cmd *cobra.Command, export bool) error {
	ctx := context.Background()
	cfg.Update(flagOptions(cmd))

	sess := iocalc.NewSession(cfg, iocalc.New(cfg, iolayout.New(cfg)))
	res, err := sess.Result(ctx)
	if err != nil {
		return err
	}

	sel := iocalc.Selection(res.Nutrients, cfg.Report.Nutrients)
	sums, names, err := sess.Summaries(ctx, sel, rationsValue(cmd))
	if err != nil {
		return err
	}

	err = ioprint.Summaries(os.Stdout, cfg.Report.Format, names, sums)
	if err != nil {
		return err
	}

	if export {
		path, err := ioexport.New(cfg.ReportsDir()).
			ExportSummary(res, names, sums)
		if err != nil {
			return err
		}
		gn.Info("Summary exported to <em>%s</em>", path)
	}
	return nil
}
