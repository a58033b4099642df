// Package autodesign selects a standard wall thickness for a riser by
// evaluating every catalogue candidate over the full life cycle.
package autodesign

import (
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"Riserwt/internal/calc/lifecycle"
	"Riserwt/internal/calc/model"
	"Riserwt/internal/catalog"
)

// DefaultRecommendedUtilization caps the recommended thickness.
const DefaultRecommendedUtilization = 0.85

// Catalogue lists standard thicknesses for an outside diameter in
// ascending order, nil when the diameter is not catalogued.
type Catalogue interface {
	Lookup(od float64) []float64
}

type Input struct {
	Pipe      model.PipeGeometry
	Load      model.LoadingCondition
	Catalogue Catalogue                  // defaults to the B36.10 table
	Weights   lifecycle.WeightCalculator // defaults to seawater weights
	// TargetWT is the thickness to search above, defaults to the pipe's
	// nominal wall thickness.
	TargetWT               float64
	RecommendedUtilization float64
	Workers                int
}

// Candidate is one evaluated catalogue thickness. MaxUtilization is
// meaningless when Invalid is set.
type Candidate struct {
	WT             float64       `json:"wt"`
	AllPass        bool          `json:"all_pass"`
	Invalid        bool          `json:"invalid"`
	MaxUtilization float64       `json:"max_utilization"`
	Run            lifecycle.Run `json:"-"`
}

type Result struct {
	TargetWT     float64     `json:"target_wt"`
	Candidates   []Candidate `json:"candidates"`
	NoCandidates bool        `json:"no_candidates"`
	// Indices into Candidates, -1 when nothing qualifies.
	LeastPassing        int    `json:"least_passing"`
	Recommended         int    `json:"recommended"`
	RecommendedFallback bool   `json:"recommended_fallback"`
	ClosestAbove        int    `json:"closest_above"`
	Notes               string `json:"notes"`
}

func (r Result) pick(i int) (Candidate, bool) {
	if i < 0 || i >= len(r.Candidates) {
		return Candidate{}, false
	}
	return r.Candidates[i], true
}

// Least is the thinnest candidate that passes every cell.
func (r Result) Least() (Candidate, bool) { return r.pick(r.LeastPassing) }

// Recommendation is the thinnest passing candidate within the utilisation
// cap, or Least when none is.
func (r Result) Recommendation() (Candidate, bool) { return r.pick(r.Recommended) }

// Closest is the thinnest passing candidate at or above the target.
func (r Result) Closest() (Candidate, bool) { return r.pick(r.ClosestAbove) }

// Search evaluates every catalogue thickness for the pipe's diameter. All
// candidates are fully evaluated since pass/fail is not assumed monotonic in
// thickness; the selections are then taken in ascending order.
func Search(in Input) (Result, error) {
	if in.Catalogue == nil {
		in.Catalogue = catalog.Standard()
	}
	if in.RecommendedUtilization <= 0 {
		in.RecommendedUtilization = DefaultRecommendedUtilization
	}
	if in.TargetWT <= 0 {
		in.TargetWT = in.Pipe.NominalWTIn
	}
	if in.Workers <= 0 {
		in.Workers = 1
	}
	pipe := in.Pipe.WithDefaults()
	if err := pipe.Validate(); err != nil {
		return Result{}, fmt.Errorf("invalid pipe: %w", err)
	}
	if err := in.Load.WithDefaults().Validate(); err != nil {
		return Result{}, fmt.Errorf("invalid loading: %w", err)
	}

	out := Result{TargetWT: in.TargetWT, LeastPassing: -1, Recommended: -1, ClosestAbove: -1}
	wts := append([]float64(nil), in.Catalogue.Lookup(pipe.OuterDiameterIn)...)
	if len(wts) == 0 {
		out.NoCandidates = true
		out.Notes = fmt.Sprintf("No standard thicknesses for %.3f in OD.", pipe.OuterDiameterIn)
		return out, nil
	}
	sort.Float64s(wts)

	out.Candidates = make([]Candidate, len(wts))
	var g errgroup.Group
	g.SetLimit(in.Workers)
	for i, wt := range wts {
		i, wt := i, wt
		g.Go(func() error {
			run, err := lifecycle.Analyze(in.Pipe, in.Load, wt, in.Weights)
			if err != nil {
				return fmt.Errorf("wt %.3f: %w", wt, err)
			}
			out.Candidates[i] = Candidate{
				WT:             wt,
				AllPass:        run.AllPass,
				Invalid:        run.Invalid(),
				MaxUtilization: run.MaxUtilization(),
				Run:            run,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	for i, c := range out.Candidates {
		if !c.AllPass {
			continue
		}
		if out.LeastPassing < 0 {
			out.LeastPassing = i
		}
		if out.Recommended < 0 && c.MaxUtilization <= in.RecommendedUtilization {
			out.Recommended = i
		}
		if out.ClosestAbove < 0 && c.WT >= in.TargetWT-1e-9 {
			out.ClosestAbove = i
		}
	}
	if out.Recommended < 0 && out.LeastPassing >= 0 {
		out.Recommended = out.LeastPassing
		out.RecommendedFallback = true
	}

	switch {
	case out.LeastPassing < 0:
		out.Notes = "No standard thickness passes every condition."
	case out.RecommendedFallback:
		out.Notes = fmt.Sprintf("No passing thickness within %.2f utilisation; recommending the least passing thickness.", in.RecommendedUtilization)
	default:
		out.Notes = "Standard thickness selected over the full life cycle."
	}
	return out, nil
}
