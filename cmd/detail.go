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
	"fmt"
	"os"

	"github.com/gnames/gn"
	"github.com/gnames/gnnutri/internal/iocalc"
	"github.com/gnames/gnnutri/internal/iolayout"
	"github.com/gnames/gnnutri/internal/ioprint"
	"github.com/gnames/gnnutri/pkg/nutrition"
	"github.com/spf13/cobra"
)

// getDetailCmd returns the detail command.
func getDetailCmd() *cobra.Command {
	var list bool

	detailCmd := &cobra.Command{
		Use:   "detail [recipe]",
		Short: "Show ingredients of a recipe with their nutrients",
		Long: `Show weight and nutrients of every ingredient of a recipe,
multiplied by rations, followed by the TOTAL row.

Without a recipe name the first recipe of the table is shown.

Examples:
  gnnutri detail "Arroz con leche"
  gnnutri detail "Arroz con leche" -x 20 -n "Energía (kcal)"
  gnnutri detail --list --ut UT1`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runDetail(cmd, args, list)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addInputFlags(detailCmd)
	addReportFlags(detailCmd)
	addFilterFlags(detailCmd)
	detailCmd.Flags().BoolVarP(&list, "list", "l", false,
		"list recipe names instead")

	return detailCmd
}

func runDetail(cmd *cobra.Command, args []string, list bool) error {
	ctx := context.Background()
	cfg.Update(flagOptions(cmd))

	sess := iocalc.NewSession(cfg, iocalc.New(cfg, iolayout.New(cfg)))
	res, err := sess.Result(ctx)
	if err != nil {
		return err
	}

	if list {
		for _, v := range nutrition.Recipes(sess.Rows(res)) {
			fmt.Println(v)
		}
		return nil
	}

	var recipe string
	if len(args) > 0 {
		recipe = args[0]
	}

	sel := iocalc.Selection(res.Nutrients, cfg.Report.Nutrients)
	d, err := sess.Detail(ctx, recipe, sel, rationsValue(cmd))
	if err != nil {
		return err
	}

	if cfg.Report.Format == ioprint.Table {
		gn.Info("<em>%s</em>, rations: %d", d.Recipe, d.Rations)
	}
	return ioprint.Detail(os.Stdout, cfg.Report.Format, d)
}
