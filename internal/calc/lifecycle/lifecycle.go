// Package lifecycle evaluates a wall thickness over every life-cycle stage,
// riser position and wall-thickness deduction.
package lifecycle

import (
	"fmt"

	"Riserwt/internal/calc/checks"
	"Riserwt/internal/calc/model"
	"Riserwt/internal/calc/pressure"
	"Riserwt/internal/calc/wallthickness"
	"Riserwt/internal/calc/weight"
)

// WeightCalculator supplies pipe self-weight per foot. Only the empty
// submerged weight feeds the tension checks.
type WeightCalculator interface {
	Weights(od, wt, fluidSG float64) weight.Weights
}

// Cell is one (stage, position, variant) combination. Bending is set only
// when the stage carries a bending strain; like Stress it is informational.
type Cell struct {
	Stage       model.Stage             `json:"stage"`
	Position    model.Position          `json:"position"`
	Variant     wallthickness.Variant   `json:"variant"`
	EffectiveWT float64                 `json:"effective_wt"`
	Po          float64                 `json:"po"`
	Pi          map[model.Check]float64 `json:"pi"`
	TopTension  float64                 `json:"top_tension"`
	Weights     weight.Weights          `json:"weights"`
	Results     []model.CheckResult     `json:"results"`
	Bending     *model.CheckResult      `json:"bending,omitempty"`
	Stress      checks.Stress           `json:"stress"`
	Pass        bool                    `json:"pass"`
	Limiting    model.Check             `json:"limiting"`
	LimitingSF  model.SafetyFactor      `json:"limiting_sf"`
}

// Result returns the outcome of one check in the cell, including the
// bending interaction when it was evaluated.
func (c Cell) Result(check model.Check) (model.CheckResult, bool) {
	for _, r := range c.Results {
		if r.Check == check {
			return r, true
		}
	}
	if c.Bending != nil && check == model.CheckBending {
		return *c.Bending, true
	}
	return model.CheckResult{}, false
}

// Invalid reports whether any check of the cell could not be evaluated. The
// utilisation of such a cell is meaningless.
func (c Cell) Invalid() bool {
	for _, r := range c.Results {
		if r.Invalid {
			return true
		}
	}
	return false
}

// MaxUtilization is the largest demand/allowable ratio among the cell's checks.
func (c Cell) MaxUtilization() float64 {
	m := 0.0
	for _, r := range c.Results {
		if r.Utilization > m {
			m = r.Utilization
		}
	}
	return m
}

func (c Cell) Label() string {
	return fmt.Sprintf("%s / %s / %s", c.Stage, c.Position, c.Variant)
}

// Run is the complete evaluation of one nominal wall thickness.
type Run struct {
	Pipe      model.PipeGeometry     `json:"pipe"`
	Load      model.LoadingCondition `json:"load"`
	NominalWT float64                `json:"nominal_wt"`
	MOP       float64                `json:"mop"`
	Cells     []Cell                 `json:"cells"`
	AllPass   bool                   `json:"all_pass"`
}

// Invalid reports whether any cell holds an invalid-geometry result.
func (r Run) Invalid() bool {
	for _, c := range r.Cells {
		if c.Invalid() {
			return true
		}
	}
	return false
}

// MaxUtilization is the largest utilisation over every check of every cell.
// Invalid results carry no utilisation; see Invalid.
func (r Run) MaxUtilization() float64 {
	m := 0.0
	for _, c := range r.Cells {
		if u := c.MaxUtilization(); u > m {
			m = u
		}
	}
	return m
}

// Governing returns the cell and check with the lowest finite safety factor.
// ok is false when every valid check in the run is favorable.
func (r Run) Governing() (cell Cell, res model.CheckResult, ok bool) {
	for _, c := range r.Cells {
		for _, cr := range c.Results {
			if cr.Invalid || cr.Favorable {
				continue
			}
			if !ok || cr.SafetyFactor.Less(res.SafetyFactor) {
				cell, res, ok = c, cr, true
			}
		}
	}
	return cell, res, ok
}

// Failures lists the failing cells.
func (r Run) Failures() []Cell {
	var out []Cell
	for _, c := range r.Cells {
		if !c.Pass {
			out = append(out, c)
		}
	}
	return out
}

// Analyze evaluates nominalWT for the pipe and loading. A nil weights uses
// the seawater weight calculator. The result depends only on the arguments.
func Analyze(pipe model.PipeGeometry, load model.LoadingCondition, nominalWT float64, weights WeightCalculator) (Run, error) {
	pipe = pipe.WithDefaults()
	load = load.WithDefaults()
	if err := pipe.Validate(); err != nil {
		return Run{}, fmt.Errorf("invalid pipe: %w", err)
	}
	if err := load.Validate(); err != nil {
		return Run{}, fmt.Errorf("invalid loading: %w", err)
	}
	if weights == nil {
		weights = weight.Calculator{}
	}

	res := pressure.New(pipe.FluidSG, load)
	run := Run{Pipe: pipe, Load: load, NominalWT: nominalWT, MOP: res.MOP(), AllPass: true}
	for _, stage := range model.Stages {
		for _, pos := range model.Positions {
			for _, v := range wallthickness.Variants(stage) {
				c := evaluateCell(pipe, res, weights, stage, pos, v, nominalWT)
				run.AllPass = run.AllPass && c.Pass
				run.Cells = append(run.Cells, c)
			}
		}
	}
	return run, nil
}

func evaluateCell(pipe model.PipeGeometry, res pressure.Resolver, weights WeightCalculator,
	stage model.Stage, pos model.Position, v wallthickness.Variant, nominal float64) Cell {

	wt := wallthickness.Effective(pipe, nominal, v)
	w := weights.Weights(pipe.OuterDiameterIn, wt, pipe.FluidSG)
	ta := 0.0
	if pos == model.Top {
		ta = w.VoidSubmerged * res.RiserLengthFt()
	}

	c := Cell{
		Stage:       stage,
		Position:    pos,
		Variant:     v,
		EffectiveWT: wt,
		Po:          res.External(pos),
		Pi:          make(map[model.Check]float64, len(model.AllChecks)),
		TopTension:  ta,
		Weights:     w,
		Pass:        true,
	}
	strain := res.BendingStrain(stage)
	for _, check := range model.AllChecks {
		pi := res.Internal(stage, check, pos)
		c.Pi[check] = pi
		r := checks.Run(check, checks.Input{
			Pipe:       pipe,
			Stage:      stage,
			Pi:         pi,
			Po:         c.Po,
			WT:         wt,
			TopTension: ta,
		})
		c.Pass = c.Pass && r.Pass
		c.Results = append(c.Results, r)
	}
	c.Limiting, c.LimitingSF = limiting(c.Results)

	// Bending uses the collapse internal pressure, the stress state the
	// burst one. Neither affects Pass.
	c.Stress = checks.Stresses(checks.Input{
		Pipe:          pipe,
		Stage:         stage,
		Pi:            c.Pi[model.CheckBurst],
		Po:            c.Po,
		WT:            wt,
		TopTension:    ta,
		BendingStrain: strain,
	})
	if strain > 0 {
		b := checks.Bending(checks.Input{
			Pipe:          pipe,
			Stage:         stage,
			Pi:            c.Pi[model.CheckCollapse],
			Po:            c.Po,
			WT:            wt,
			BendingStrain: strain,
		})
		c.Bending = &b
	}
	return c
}

// limiting picks the lowest finite safety factor among the pressure checks,
// first one wins on ties. CheckNone when all are favorable or invalid.
func limiting(results []model.CheckResult) (model.Check, model.SafetyFactor) {
	check, sf := model.CheckNone, model.Favorable()
	for _, want := range model.PressureChecks {
		for _, r := range results {
			if r.Check != want || r.Invalid || r.Favorable {
				continue
			}
			if check == model.CheckNone || r.SafetyFactor.Less(sf) {
				check, sf = r.Check, r.SafetyFactor
			}
		}
	}
	return check, sf
}
