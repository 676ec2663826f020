// Package ioexport implements the Exporter interface. It writes
// computed data to Excel workbooks in the reports directory.
package ioexport

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gnames/gnnutri/internal/iofs"
	"github.com/gnames/gnnutri/pkg/display"
	"github.com/gnames/gnnutri/pkg/lifecycle"
	"github.com/gnames/gnnutri/pkg/nutrition"
	"github.com/xuri/excelize/v2"
)

// Names of generated workbooks.
const (
	ResultsFile   = "recetas_calculo_nutricional.xlsx"
	UnmatchedFile = "recetas_sin_match.xlsx"
	SummaryFile   = "recetas_nutricional_export.xlsx"
)

// Names of workbook sheets.
const (
	SheetResults   = "resultados"
	SheetMetadata  = "metadatos"
	SheetUnmatched = "sin_match"
	SheetSummary   = "Resumen"
	SheetFullData  = "Data completa"
)

// minColWidth is the smallest column width of the summary workbook.
const minColWidth = 12

type ioexport struct {
	dir string
	now func() time.Time
}

// New creates an Exporter that writes workbooks to dir.
func New(dir string) lifecycle.Exporter {
	return &ioexport{dir: dir, now: time.Now}
}

// ExportResults writes the full dataset to the "resultados" sheet and
// information about the run to the "metadatos" sheet.
func (e *ioexport) ExportResults(res *nutrition.Result) (string, error) {
	header, rows := nutrition.Dataset(res)

	f := excelize.NewFile()
	defer f.Close()

	err := writeSheet(f, "Sheet1", SheetResults, header, rows, false)
	if err != nil {
		return "", ExportError(ResultsFile, err)
	}

	meta := [][]nutrition.Cell{
		{"fecha_proceso", e.now().Format("2006-01-02 15:04:05")},
		{"fuente_tpca", res.ReferenceSource},
		{"fuente_recetas", res.RecipesSource},
		{"filas_resultado", len(rows)},
		{"columnas_resultado", len(header)},
		{"filas_con_match", res.Matched},
		{"filas_sin_match", res.Unmatched},
	}
	err = writeSheet(f, "", SheetMetadata, []string{"campo", "valor"}, meta, false)
	if err != nil {
		return "", ExportError(ResultsFile, err)
	}

	return e.save(f, ResultsFile)
}

// ExportUnmatched writes distinct (code, group) pairs that were not found
// in the reference table. Nothing is written when every row matched.
func (e *ioexport) ExportUnmatched(res *nutrition.Result) (string, error) {
	if len(res.UnmatchedKeys) == 0 {
		return "", nil
	}

	rows := make([][]nutrition.Cell, len(res.UnmatchedKeys))
	for i, k := range res.UnmatchedKeys {
		rows[i] = []nutrition.Cell{codeCell(k.Code), k.Group}
	}

	f := excelize.NewFile()
	defer f.Close()

	err := writeSheet(f, "Sheet1", SheetUnmatched,
		[]string{"codigo", "grupo"}, rows, false)
	if err != nil {
		return "", ExportError(UnmatchedFile, err)
	}
	return e.save(f, UnmatchedFile)
}

// ExportSummary writes rounded recipe totals with display labels and the
// full dataset with display labels.
func (e *ioexport) ExportSummary(
	res *nutrition.Result,
	nutrients []string,
	sums []nutrition.RecipeSummary,
) (string, error) {
	sumHeader := make([]string, 0, len(nutrients)+1)
	sumHeader = append(sumHeader, display.Label("nombre_de_receta"))
	sumHeader = append(sumHeader, display.Labels(nutrients)...)

	sumRows := make([][]nutrition.Cell, len(sums))
	for i := range sums {
		row := make([]nutrition.Cell, 0, len(sumHeader))
		row = append(row, sums[i].Recipe)
		for _, v := range sums[i].Totals {
			row = append(row, nutrition.Round1(v))
		}
		sumRows[i] = row
	}

	header, rows := nutrition.Dataset(res)
	header = display.Labels(header)

	f := excelize.NewFile()
	defer f.Close()

	err := writeSheet(f, "Sheet1", SheetSummary, sumHeader, sumRows, true)
	if err == nil {
		err = writeSheet(f, "", SheetFullData, header, rows, true)
	}
	if err != nil {
		return "", ExportError(SummaryFile, err)
	}

	return e.save(f, SummaryFile)
}

// save writes the workbook to a temporary file of the reports directory
// and renames it to its final name. A failed save leaves no partial file.
func (e *ioexport) save(f *excelize.File, name string) (string, error) {
	path := filepath.Join(e.dir, name)
	if err := iofs.EnsureDir(e.dir); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(e.dir, "."+name+".*.tmp")
	if err != nil {
		return "", ExportError(path, err)
	}
	tmpPath := tmp.Name()

	_, err = f.WriteTo(tmp)
	err = errors.Join(err, tmp.Close())
	if err == nil {
		err = os.Rename(tmpPath, path)
	}
	if err != nil {
		_ = os.Remove(tmpPath)
		return "", ExportError(path, err)
	}

	slog.Info("Workbook saved", "path", path)
	return path, nil
}

// writeSheet writes a header and rows to a sheet. If rename is not empty,
// an existing sheet with that name is renamed, otherwise a new sheet is
// created. With fit, column widths follow header lengths.
func writeSheet(
	f *excelize.File,
	rename, sheet string,
	header []string,
	rows [][]nutrition.Cell,
	fit bool,
) error {
	var err error
	if rename != "" {
		err = f.SetSheetName(rename, sheet)
	} else {
		_, err = f.NewSheet(sheet)
	}
	if err != nil {
		return err
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}

	if fit {
		if err = setWidths(sw, header); err != nil {
			return err
		}
	}

	hdr := make([]any, len(header))
	for i := range header {
		hdr[i] = header[i]
	}
	if err = sw.SetRow("A1", hdr); err != nil {
		return err
	}

	bar := newProgressBar(len(rows), "Writing "+sheet+": ")
	defer bar.Finish()
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err = sw.SetRow(cell, rows[i]); err != nil {
			return err
		}
		bar.Increment()
	}
	return sw.Flush()
}

// setWidths must run before the first row is written.
func setWidths(sw *excelize.StreamWriter, header []string) error {
	for i, v := range header {
		width := max(minColWidth, len([]rune(v))+2)
		err := sw.SetColWidth(i+1, i+1, float64(width))
		if err != nil {
			return err
		}
	}
	return nil
}

// codeCell writes integral codes as numbers, the way they appear in
// input sheets.
func codeCell(code string) nutrition.Cell {
	if code == "" {
		return nil
	}
	if v, err := strconv.Atoi(code); err == nil {
		return v
	}
	return code
}
