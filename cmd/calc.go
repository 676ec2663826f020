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
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnnutri/internal/iocalc"
	"github.com/gnames/gnnutri/internal/iodb"
	"github.com/gnames/gnnutri/internal/ioexport"
	"github.com/gnames/gnnutri/internal/iolayout"
	"github.com/gnames/gnnutri/internal/iostore"
	"github.com/gnames/gnnutri/pkg/errcode"
	"github.com/gnames/gnnutri/pkg/nutrition"
	"github.com/gnames/gnnutri/pkg/schema"
	"github.com/spf13/cobra"
)

// getCalcCmd returns the calc command.
func getCalcCmd() *cobra.Command {
	var store bool

	calcCmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate nutrients of every recipe ingredient",
		Long: `Join recipe rows with the reference table and scale nutrients.

This command:
  1. Reads recipe and reference tables
  2. Matches rows by normalized (code, group) food key
  3. Converts per-100g values to the portion weight of each ingredient
  4. Writes recetas_calculo_nutricional.xlsx with results and metadata
  5. Writes recetas_sin_match.xlsx if some ingredients were not found
  6. Optionally stores the run in PostgreSQL (--store)

Examples:
  gnnutri calc -r recetas.xlsx -t tpca.xlsx
  gnnutri calc -t tpca.sqlite --sqlite-table tpca_2017
  gnnutri calc -o ./reports --store`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runCalc(cmd, store)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addInputFlags(calcCmd)
	calcCmd.Flags().StringP("reports-dir", "o", "",
		"directory for exported workbooks")
	calcCmd.Flags().BoolVar(&store, "store", false,
		"store the run in PostgreSQL")

	return calcCmd
}

func runCalc(cmd *cobra.Command, store bool) error {
	ctx := context.Background()
	cfg.Update(flagOptions(cmd))

	calc := iocalc.New(cfg, iolayout.New(cfg))
	res, err := calc.Calculate(ctx)
	if err != nil {
		return err
	}

	exp := ioexport.New(cfg.ReportsDir())
	resPath, err := exp.ExportResults(res)
	if err != nil {
		return err
	}
	unmPath, err := exp.ExportUnmatched(res)
	if err != nil {
		return err
	}

	if res.Unmatched > 0 {
		gn.Warn(
			"<warn>%s recipe rows (%d distinct food keys) "+
				"have no reference data</warn>",
			humanize.Comma(int64(res.Unmatched)), len(res.UnmatchedKeys),
		)
	}

	var runID string
	if store {
		if runID, err = storeRun(ctx, res); err != nil {
			return err
		}
	}

	msg := fmt.Sprintf(`
<em>Rows:</em>       %s
<em>Matched:</em>    %s
<em>Unmatched:</em>  %s
<em>Nutrients:</em>  %d

<em>Results:</em>    %s`,
		humanize.Comma(int64(len(res.Rows))),
		humanize.Comma(int64(res.Matched)),
		humanize.Comma(int64(res.Unmatched)),
		len(res.Nutrients),
		resPath,
	)
	if unmPath != "" {
		msg += "\n<em>Unmatched:</em>  " + unmPath
	}
	if runID != "" {
		msg += "\n<em>Stored run:</em> " + runID
	}
	gn.Message(msg + "\n")
	return nil
}

// storeRun saves totals of all nutrients of the run.
func storeRun(ctx context.Context, res *nutrition.Result) (string, error) {
	sums, err := nutrition.Aggregate(
		res.Rows, res.Nutrients, nil, cfg.Report.Rations,
	)
	if err != nil {
		return "", err
	}

	op := iodb.NewPgxOperator()
	if err = op.Connect(ctx, &cfg.Database); err != nil {
		return "", err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	exists, err := op.TableExists(ctx, schema.Run{}.TableName())
	if err != nil {
		return "", err
	}
	if !exists {
		err = &gn.Error{
			Code: errcode.DBEmptyDatabaseError,
			Msg: `<err>Tables for stored runs do not exist.</err>
   Run <em>'gnnutri create'</em> first to initialize the schema.`,
			Err: errors.New("cannot store a run in empty database"),
		}
		return "", err
	}

	return iostore.New(cfg, op).Save(ctx, res, res.Nutrients, sums)
}
