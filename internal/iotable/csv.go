package iotable

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/gnames/gnnutri/pkg/table"
)

// delimiters are tried when the delimiter of a text file is sniffed.
var delimiters = []rune{',', ';', '\t', '|'}

func readCSV(path, ext string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ReadFileError(path, err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	sep := '\t'
	if ext != ".tsv" {
		line, err := br.Peek(peekSize(br))
		if err != nil && err != io.EOF {
			return nil, ReadFileError(path, err)
		}
		sep = sniff(string(line))
	}

	r := csv.NewReader(br)
	r.Comma = sep
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	recs, err := r.ReadAll()
	if err != nil {
		return nil, ReadFileError(path, err)
	}
	if len(recs) == 0 {
		return table.New(path, nil, nil), nil
	}
	return table.New(path, recs[0], recs[1:]), nil
}

func peekSize(br *bufio.Reader) int {
	return min(br.Size(), 4096)
}

// sniff picks the delimiter that occurs most often in the first line.
// Comma wins ties.
func sniff(data string) rune {
	line, _, _ := strings.Cut(data, "\n")
	res := delimiters[0]
	var best int
	for _, d := range delimiters {
		if n := strings.Count(line, string(d)); n > best {
			best = n
			res = d
		}
	}
	return res
}
