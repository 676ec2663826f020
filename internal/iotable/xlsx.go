package iotable

import (
	"errors"

	"github.com/gnames/gnnutri/pkg/table"
	"github.com/xuri/excelize/v2"
)

// readXLSX reads the first sheet of a workbook. Cells are read without
// number formatting, so numbers keep their stored precision.
func readXLSX(path string) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, ReadFileError(path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ReadFileError(path, errors.New("workbook has no sheets"))
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, ReadFileError(path, err)
	}
	if len(rows) == 0 {
		return table.New(path, nil, nil), nil
	}
	return table.New(path, rows[0], rows[1:]), nil
}
