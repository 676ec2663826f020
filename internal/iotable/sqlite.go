package iotable

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gnames/gnnutri/pkg/table"
	_ "modernc.org/sqlite"
)

// readSQLite reads all rows of a table from a SQLite database.
func readSQLite(
	ctx context.Context,
	path, name string,
) (*table.Table, error) {
	source := path + "#" + name
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, ReadFileError(source, err)
	}
	defer db.Close()

	var exists bool
	q := `SELECT COUNT(*) > 0 FROM sqlite_master
		WHERE type IN ('table', 'view') AND name = ?`
	if err = db.QueryRowContext(ctx, q, name).Scan(&exists); err != nil {
		return nil, ReadFileError(source, err)
	}
	if !exists {
		return nil, MissingSourceFileError("reference", source)
	}

	q = fmt.Sprintf(`SELECT * FROM "%s"`, strings.ReplaceAll(name, `"`, `""`))
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, ReadFileError(source, err)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return nil, ReadFileError(source, err)
	}

	var data [][]string
	vals := make([]any, len(header))
	ptrs := make([]any, len(header))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	for rows.Next() {
		if err = rows.Scan(ptrs...); err != nil {
			return nil, ReadFileError(source, err)
		}
		row := make([]string, len(vals))
		for i, v := range vals {
			row[i] = cellString(v)
		}
		data = append(data, row)
	}
	if err = rows.Err(); err != nil {
		return nil, ReadFileError(source, err)
	}
	return table.New(source, header, data), nil
}

func cellString(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}
