// Package iocalc implements the Calculator interface. It reads input
// tables, loads the column layout and runs the join-and-scale engine.
package iocalc

import (
	"context"
	"log/slog"
	"time"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnnutri/internal/iotable"
	"github.com/gnames/gnnutri/pkg/config"
	"github.com/gnames/gnnutri/pkg/display"
	"github.com/gnames/gnnutri/pkg/layout"
	"github.com/gnames/gnnutri/pkg/lifecycle"
	"github.com/gnames/gnnutri/pkg/nutrition"
)

type calculator struct {
	cfg    *config.Config
	loader layout.Loader
}

// New creates a Calculator that reads inputs set in cfg and the layout
// provided by the loader.
func New(cfg *config.Config, loader layout.Loader) lifecycle.Calculator {
	return &calculator{cfg: cfg, loader: loader}
}

// Calculate reads both tables and joins them.
func (c *calculator) Calculate(ctx context.Context) (*nutrition.Result, error) {
	start := time.Now()

	lay, err := c.loader.Load()
	if err != nil {
		return nil, err
	}

	recipes, reference, err := iotable.Load(ctx, c.cfg)
	if err != nil {
		return nil, err
	}

	res, err := nutrition.Join(recipes, reference, lay)
	if err != nil {
		return nil, err
	}

	for _, k := range res.UnmatchedKeys {
		slog.Warn("Recipe rows without reference data",
			"code", k.Code,
			"group", k.Group,
		)
	}
	slog.Info("Join complete",
		"rows", len(res.Rows),
		"matched", res.Matched,
		"unmatched", res.Unmatched,
		"nutrients", len(res.Nutrients),
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return res, nil
}

// Selection returns the nutrient selection of a report. A configured
// selection is used as is. Otherwise default nutrients found in the run
// are selected, and if none of them are present, all nutrients are.
func Selection(nutrients, configured []string) []string {
	if len(configured) > 0 {
		return configured
	}
	var res []string
	for _, v := range display.DefaultNutrients {
		for _, n := range nutrients {
			if n == v {
				res = append(res, v)
				break
			}
		}
	}
	return res
}
