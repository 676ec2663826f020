// Package iostore implements the Store interface. A run is saved to
// PostgreSQL in one transaction, rows are sent with CopyFrom.
package iostore

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gnnutri/pkg/config"
	"github.com/gnames/gnnutri/pkg/db"
	"github.com/gnames/gnnutri/pkg/lifecycle"
	"github.com/gnames/gnnutri/pkg/nutrition"
	"github.com/gnames/gnnutri/pkg/schema"
	"github.com/gnames/gnuuid"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type store struct {
	cfg      *config.Config
	operator db.Operator
}

// New creates a Store that uses a connected operator.
func New(cfg *config.Config, op db.Operator) lifecycle.Store {
	return &store{cfg: cfg, operator: op}
}

// Save stores the run, its ingredient rows with their nutrient amounts,
// recipe totals and unmatched keys. Nothing is stored if any part fails.
func (s *store) Save(
	ctx context.Context,
	res *nutrition.Result,
	nutrients []string,
	sums []nutrition.RecipeSummary,
) (string, error) {
	if s.operator == nil || s.operator.Pool() == nil {
		return "", NotConnectedError()
	}

	run := newRun(res, nutrients, sums)
	tables := []struct {
		name string
		cols []string
		rows [][]any
	}{
		{
			name: schema.IngredientResult{}.TableName(),
			cols: schema.Columns(schema.IngredientResult{}),
			rows: ingredientRows(run.ID, res),
		},
		{
			name: schema.IngredientAmount{}.TableName(),
			cols: schema.Columns(schema.IngredientAmount{}),
			rows: amountRows(run.ID, res),
		},
		{
			name: schema.RecipeTotal{}.TableName(),
			cols: schema.Columns(schema.RecipeTotal{}),
			rows: totalRows(run.ID, nutrients, sums),
		},
		{
			name: schema.UnmatchedKey{}.TableName(),
			cols: schema.Columns(schema.UnmatchedKey{}),
			rows: unmatchedRows(run.ID, res),
		},
	}

	tx, err := s.operator.Pool().Begin(ctx)
	if err != nil {
		return "", StoreRunError(err)
	}
	// no-op after Commit
	defer func() { _ = tx.Rollback(ctx) }()

	if err = insertRun(ctx, tx, run); err != nil {
		return "", StoreRunError(err)
	}

	var total int
	for _, t := range tables {
		total += len(t.rows)
	}
	bar := pb.Full.Start(total)
	bar.Set("prefix", "Storing run: ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	for _, t := range tables {
		err = s.copyRows(ctx, tx, t.name, t.cols, t.rows, bar)
		if err != nil {
			return "", err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return "", StoreRunError(err)
	}

	slog.Info("Run stored",
		"id", run.ID.String(),
		"rows", humanize.Comma(int64(total)),
	)
	return run.ID.String(), nil
}

func (s *store) copyRows(
	ctx context.Context,
	tx pgx.Tx,
	table string,
	cols []string,
	rows [][]any,
	bar *pb.ProgressBar,
) error {
	batchSize := s.cfg.Database.BatchSize
	if batchSize < 1 {
		batchSize = 10_000
	}

	for i := 0; i < len(rows); i += batchSize {
		end := min(i+batchSize, len(rows))
		batch := rows[i:end]

		_, err := tx.CopyFrom(
			ctx,
			pgx.Identifier{table},
			cols,
			pgx.CopyFromRows(batch),
		)
		if err != nil {
			return StoreRowsError(table, err)
		}
		bar.Add(len(batch))
	}
	return nil
}

func insertRun(ctx context.Context, tx pgx.Tx, run schema.Run) error {
	cols := schema.Columns(run)
	names := make([]string, len(cols))
	params := make([]string, len(cols))
	for i, v := range cols {
		names[i] = pgx.Identifier{v}.Sanitize()
		params[i] = fmt.Sprintf("$%d", i+1)
	}
	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		pgx.Identifier{run.TableName()}.Sanitize(),
		strings.Join(names, ", "),
		strings.Join(params, ", "),
	)

	_, err := tx.Exec(ctx, q,
		run.ID,
		run.CreatedAt,
		run.RecipesFile,
		run.ReferenceFile,
		run.RowsTotal,
		run.RowsMatched,
		run.RowsUnmatched,
		run.NutrientsNumber,
		run.Rations,
	)
	return err
}

func newRun(
	res *nutrition.Result,
	nutrients []string,
	sums []nutrition.RecipeSummary,
) schema.Run {
	rations := 1
	if len(sums) > 0 {
		rations = sums[0].Rations
	}
	return schema.Run{
		ID:              uuid.New(),
		CreatedAt:       time.Now().UTC(),
		RecipesFile:     res.RecipesSource,
		ReferenceFile:   res.ReferenceSource,
		RowsTotal:       len(res.Rows),
		RowsMatched:     res.Matched,
		RowsUnmatched:   res.Unmatched,
		NutrientsNumber: len(nutrients),
		Rations:         rations,
	}
}

// ingredientRows follow schema.Columns(schema.IngredientResult{}).
func ingredientRows(runID uuid.UUID, res *nutrition.Result) [][]any {
	rows := make([][]any, len(res.Rows))
	for i := range res.Rows {
		r := &res.Rows[i]
		rows[i] = []any{
			runID,
			r.Line,
			r.Recipe,
			r.Ingredient,
			gnuuid.New(r.Key.String()),
			r.Key.Code,
			r.Key.Group,
			r.Weight,
			r.WeightValid,
			r.Matched,
		}
	}
	return rows
}

// amountRows follow schema.Columns(schema.IngredientAmount{}). Amounts
// are kept for every nutrient of the run, so a stored run can give any
// detail view.
func amountRows(runID uuid.UUID, res *nutrition.Result) [][]any {
	var rows [][]any
	for i := range res.Rows {
		r := &res.Rows[i]
		for j, a := range r.Nutrients {
			if !a.Valid {
				continue
			}
			rows = append(rows, []any{runID, r.Line, res.Nutrients[j], a.Value})
		}
	}
	return rows
}

// totalRows follow schema.Columns(schema.RecipeTotal{}).
func totalRows(
	runID uuid.UUID,
	nutrients []string,
	sums []nutrition.RecipeSummary,
) [][]any {
	rows := make([][]any, 0, len(sums)*len(nutrients))
	for _, s := range sums {
		recipeID := gnuuid.New(s.Recipe)
		for i, n := range nutrients {
			rows = append(rows, []any{
				runID,
				recipeID,
				n,
				s.Recipe,
				s.Totals[i],
				s.Incomplete,
			})
		}
	}
	return rows
}

// unmatchedRows follow schema.Columns(schema.UnmatchedKey{}).
func unmatchedRows(runID uuid.UUID, res *nutrition.Result) [][]any {
	rows := make([][]any, len(res.UnmatchedKeys))
	for i, k := range res.UnmatchedKeys {
		rows[i] = []any{
			runID,
			gnuuid.New(k.String()),
			k.Code,
			k.Group,
		}
	}
	return rows
}
