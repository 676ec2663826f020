// Package table holds raw tabular data read from spreadsheets, delimited
// text files or SQLite tables, before any domain interpretation.
//
// Headers are cleaned the same way for every source, so column lookups
// do not depend on the file format or on the capitalization used by the
// person who edited the spreadsheet.
package table

import (
	"regexp"
	"strings"

	"github.com/gnames/gnlib"
)

var notWordChar = regexp.MustCompile(`[^a-z0-9_]`)

// Table is a header plus rows of text cells. Every row has exactly
// len(Header) cells.
type Table struct {
	// Source is the file path (or path#table for SQLite) the data
	// came from. Used in messages and export metadata.
	Source string

	// Header contains cleaned column names.
	Header []string

	// Rows contains trimmed cells.
	Rows [][]string

	// Lines keeps the 1-based line number of each row in the source,
	// header being line 1. Blank rows are dropped, so Lines are not
	// necessarily consecutive.
	Lines []int
}

// New creates a Table from raw header and rows. Header names are
// cleaned with CleanHeader, cells are trimmed, rows are padded or
// truncated to the header length and fully blank rows are dropped.
// Cells are converted to valid NFC-normalized UTF-8, so the same recipe
// name typed in different editors groups together.
func New(source string, header []string, rows [][]string) *Table {
	res := Table{
		Source: source,
		Header: make([]string, len(header)),
	}
	for i := range header {
		res.Header[i] = CleanHeader(header[i])
	}

	for i, row := range rows {
		cells := make([]string, len(header))
		var blank = true
		for j := range cells {
			if j >= len(row) {
				break
			}
			cells[j] = strings.TrimSpace(gnlib.FixUtf8(row[j]))
			if cells[j] != "" {
				blank = false
			}
		}
		if blank {
			continue
		}
		res.Rows = append(res.Rows, cells)
		res.Lines = append(res.Lines, i+2)
	}
	return &res
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Index returns the position of a column with the given cleaned name,
// or -1 if there is no such column.
func (t *Table) Index(name string) int {
	for i := range t.Header {
		if t.Header[i] == name {
			return i
		}
	}
	return -1
}

// Cell returns a cell value or an empty string if the column index is
// negative.
func (t *Table) Cell(row, col int) string {
	if col < 0 || col >= len(t.Header) {
		return ""
	}
	return t.Rows[row][col]
}

// CleanHeader converts a column name to the internal snake-case form:
// trimmed, lower-cased, spaces replaced by underscores and every
// character outside of [a-z0-9_] removed.
//
//	"Peso neto  Ración (g)" -> "peso_neto__racin_g"
func CleanHeader(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	return notWordChar.ReplaceAllString(s, "")
}
