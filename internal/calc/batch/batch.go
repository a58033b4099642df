// Package batch evaluates many riser cases concurrently.
package batch

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"Riserwt/internal/calc/autodesign"
	"Riserwt/internal/calc/lifecycle"
	"Riserwt/internal/calc/recommend"
	"Riserwt/internal/casefile"
)

type Options struct {
	Workers                int
	RecommendedUtilization float64
	Catalogue              autodesign.Catalogue
	Weights                lifecycle.WeightCalculator
}

// Item is the outcome of one case. Err is set when the case could not be
// evaluated; the other fields are then empty.
type Item struct {
	Case        casefile.Case               `json:"case"`
	Nominal     *lifecycle.Run              `json:"nominal,omitempty"`
	Search      autodesign.Result           `json:"search"`
	Propagation recommend.PropagationResult `json:"propagation"`
	Notes       []string                    `json:"notes,omitempty"`
	Err         string                      `json:"error,omitempty"`
}

type Result struct {
	Items  []Item `json:"items"`
	Failed int    `json:"failed"`
}

// Evaluate runs every case and returns the items in input order. A case
// that fails validation is recorded and does not stop the others; only
// cancellation of ctx aborts the batch.
func Evaluate(ctx context.Context, cases []casefile.Case, opt Options) (Result, error) {
	if len(cases) == 0 {
		return Result{}, fmt.Errorf("no items")
	}
	if opt.Workers <= 0 {
		opt.Workers = 1
	}

	out := Result{Items: make([]Item, len(cases))}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opt.Workers)
	for i, c := range cases {
		i, c := i, c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			item, err := evaluateCase(c, opt)
			if err != nil {
				slog.Warn("Case evaluation failed", "case", c.Name, "error", err)
				item = Item{Case: c, Err: err.Error()}
			} else {
				slog.Debug("Case evaluated",
					"case", c.Name,
					"candidates", len(item.Search.Candidates),
					"least_passing", item.Search.LeastPassing)
			}
			out.Items[i] = item
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	for _, it := range out.Items {
		if it.Err != "" {
			out.Failed++
		}
	}
	slog.Info("Batch evaluated", "cases", len(cases), "failed", out.Failed)
	return out, nil
}

func evaluateCase(c casefile.Case, opt Options) (Item, error) {
	item := Item{Case: c}
	if c.Pipe.NominalWTIn > 0 {
		run, err := lifecycle.Analyze(c.Pipe, c.Load, c.Pipe.NominalWTIn, opt.Weights)
		if err != nil {
			return Item{}, err
		}
		item.Nominal = &run
		item.Notes = recommend.VerificationNotes(run)
		prop, err := recommend.RunPropagationThickness(run)
		if err != nil {
			return Item{}, err
		}
		item.Propagation = prop
	}
	res, err := autodesign.Search(autodesign.Input{
		Pipe:                   c.Pipe,
		Load:                   c.Load,
		Catalogue:              opt.Catalogue,
		Weights:                opt.Weights,
		TargetWT:               c.TargetWT,
		RecommendedUtilization: opt.RecommendedUtilization,
		Workers:                1,
	})
	if err != nil {
		return Item{}, err
	}
	item.Search = res
	return item, nil
}
