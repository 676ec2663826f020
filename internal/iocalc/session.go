package iocalc

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/gnames/gnnutri/pkg/config"
	"github.com/gnames/gnnutri/pkg/lifecycle"
	"github.com/gnames/gnnutri/pkg/nutrition"
)

// Session keeps the last computed result and reuses it while input
// files do not change. Views of the same data (summary, detail, export)
// share one computation.
type Session struct {
	cfg  *config.Config
	calc lifecycle.Calculator

	mu  sync.Mutex
	key string
	res *nutrition.Result
}

// NewSession creates a Session around a Calculator.
func NewSession(cfg *config.Config, calc lifecycle.Calculator) *Session {
	return &Session{cfg: cfg, calc: calc}
}

// Result returns the joined data, computing it only when inputs changed
// since the previous call.
func (s *Session) Result(ctx context.Context) (*nutrition.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := s.fingerprint()
	if s.res != nil && key == s.key {
		slog.Debug("Using cached result", "key", key)
		return s.res, nil
	}

	res, err := s.calc.Calculate(ctx)
	if err != nil {
		return nil, err
	}
	s.key, s.res = key, res
	return res, nil
}

// Summaries returns recipe totals of filtered rows and the selected
// nutrient names.
func (s *Session) Summaries(
	ctx context.Context,
	selection []string,
	rations int,
) ([]nutrition.RecipeSummary, []string, error) {
	res, err := s.Result(ctx)
	if err != nil {
		return nil, nil, err
	}
	if rations < 1 {
		return nil, nil, nutrition.InvalidRationsError(rations)
	}
	names, _, err := nutrition.SelectNutrients(res.Nutrients, selection)
	if err != nil {
		return nil, nil, err
	}
	sums, err := nutrition.Aggregate(s.Rows(res), res.Nutrients, selection, rations)
	if err != nil {
		return nil, nil, err
	}
	return sums, names, nil
}

// Detail returns the ingredient view of one recipe of filtered rows.
func (s *Session) Detail(
	ctx context.Context,
	recipe string,
	selection []string,
	rations int,
) (*nutrition.Detail, error) {
	res, err := s.Result(ctx)
	if err != nil {
		return nil, err
	}
	return nutrition.Project(s.Rows(res), res.Nutrients, recipe, selection, rations)
}

// Rows returns rows of the result that pass the filter of the config.
func (s *Session) Rows(res *nutrition.Result) []nutrition.JoinedRow {
	f := nutrition.Filter{
		UT:         s.cfg.Filter.UT,
		RecipeType: s.cfg.Filter.RecipeType,
		AgeGroup:   s.cfg.Filter.AgeGroup,
	}
	return f.Apply(res.Rows)
}

// fingerprint identifies inputs by path, size and modification time.
func (s *Session) fingerprint() string {
	files := []string{
		s.cfg.Input.Recipes,
		s.cfg.Input.Reference,
		config.LayoutFilePath(s.cfg.HomeDir),
	}
	res := s.cfg.Input.SQLiteTable
	for _, v := range files {
		res += "|" + v
		if info, err := os.Stat(v); err == nil {
			res += fmt.Sprintf(":%d:%d", info.Size(), info.ModTime().UnixNano())
		}
	}
	return res
}
