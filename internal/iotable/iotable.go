// Package iotable reads recipe and reference tables from spreadsheets,
// delimited text files and SQLite databases.
package iotable

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnames/gnnutri/pkg/config"
	"github.com/gnames/gnnutri/pkg/layout"
	"github.com/gnames/gnnutri/pkg/table"
	"golang.org/x/sync/errgroup"
)

// Read loads a table from path. The format is chosen by the file
// extension. For SQLite databases sqliteTable names the table to read.
func Read(ctx context.Context, path, sqliteTable string) (*table.Table, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".xlsx", ".xlsm":
		return readXLSX(path)
	case ".csv", ".tsv", ".txt":
		return readCSV(path, ext)
	case ".sqlite", ".sqlite3", ".db":
		return readSQLite(ctx, path, sqliteTable)
	default:
		return nil, UnsupportedFormatError(path, ext)
	}
}

// Load reads recipe and reference tables set in the config. Both files
// are read concurrently, the first failure cancels the other read.
func Load(
	ctx context.Context,
	cfg *config.Config,
) (*table.Table, *table.Table, error) {
	if cfg.Input.Recipes == "" {
		return nil, nil, InputNotSetError(
			layout.RecipeTable, "--recipes", "input.recipes",
		)
	}
	if cfg.Input.Reference == "" {
		return nil, nil, InputNotSetError(
			layout.ReferenceTable, "--reference", "input.reference",
		)
	}

	var recipes, reference *table.Table
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		recipes, err = load(ctx, layout.RecipeTable, cfg.Input.Recipes, "")
		return err
	})
	g.Go(func() error {
		var err error
		reference, err = load(
			ctx, layout.ReferenceTable, cfg.Input.Reference,
			cfg.Input.SQLiteTable,
		)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return recipes, reference, nil
}

func load(
	ctx context.Context,
	kind, path, sqliteTable string,
) (*table.Table, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, MissingSourceFileError(kind, path)
		}
		return nil, ReadFileError(path, err)
	}

	res, err := Read(ctx, path, sqliteTable)
	if err != nil {
		return nil, err
	}
	if res.Len() == 0 {
		return nil, EmptyInputError(kind, res.Source)
	}
	slog.Info("Table loaded",
		"table", kind,
		"source", res.Source,
		"rows", res.Len(),
		"columns", len(res.Header),
	)
	slog.Debug("Table header", "table", kind, "header", res.Header)
	return res, nil
}
