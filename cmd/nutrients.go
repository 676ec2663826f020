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
	"github.com/gnames/gnnutri/internal/iolayout"
	"github.com/gnames/gnnutri/internal/ioprint"
	"github.com/spf13/cobra"
)

// getNutrientsCmd returns the nutrients command.
func getNutrientsCmd() *cobra.Command {
	nutrientsCmd := &cobra.Command{
		Use:   "nutrients",
		Short: "List nutrient columns of the reference table",
		Long: `List nutrient columns found in the reference table with their
display labels. Both names and labels can be used with --nutrients.

Examples:
  gnnutri nutrients
  gnnutri nutrients -f json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runNutrients(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addInputFlags(nutrientsCmd)
	nutrientsCmd.Flags().StringP("format", "f", "",
		"output format: table, csv or json")

	return nutrientsCmd
}

func runNutrients(cmd *cobra.Command) error {
	cfg.Update(flagOptions(cmd))

	calc := iocalc.New(cfg, iolayout.New(cfg))
	res, err := calc.Calculate(context.Background())
	if err != nil {
		return err
	}
	return ioprint.Nutrients(os.Stdout, cfg.Report.Format, res.Nutrients)
}
