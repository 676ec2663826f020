// Package iolayout reads the column layout of input tables from
// layout.yaml.
package iolayout

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/gnames/gnnutri/pkg/config"
	"github.com/gnames/gnnutri/pkg/layout"
	"gopkg.in/yaml.v3"
)

type iolayout struct {
	path string
}

// New creates a layout loader for layout.yaml of the config directory.
func New(cfg *config.Config) layout.Loader {
	return NewFromFile(config.LayoutFilePath(cfg.HomeDir))
}

// NewFromFile creates a layout loader for a given file.
func NewFromFile(path string) layout.Loader {
	return &iolayout{path: path}
}

// Load reads the layout file and merges it with the built-in layout.
// A missing file gives the built-in layout.
func (l *iolayout) Load() (layout.Layout, error) {
	var res layout.Layout

	data, err := os.ReadFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info("Layout file not found, using built-in layout", "path", l.path)
		return layout.Default().Normalize(), nil
	}
	if err != nil {
		return res, LayoutFileError(l.path, err)
	}

	res, err = parse(data)
	if err != nil {
		return res, LayoutFileError(l.path, err)
	}
	if err = res.Validate(); err != nil {
		return res, err
	}
	slog.Info("Layout loaded",
		"path", l.path,
		"nutrients", len(res.Nutrients),
	)
	return res, nil
}

func parse(data []byte) (layout.Layout, error) {
	var lay layout.Layout
	if err := yaml.Unmarshal(data, &lay); err != nil {
		return lay, err
	}
	return lay.Merge(layout.Default()).Normalize(), nil
}
