// Package checks implements the API RP 1111 and ASME B31.4/B31.8 wall
// thickness checks. Every check is a pure function of the pipe, the resolved
// pressures and the effective wall thickness.
package checks

import (
	"math"

	"Riserwt/internal/calc/model"
	"Riserwt/internal/calc/wallthickness"
)

// Input carries everything a check needs. Pi and Po are in psi, WT is the
// effective wall thickness (in) and TopTension the submerged self-weight
// hanging below the position (lb).
type Input struct {
	Pipe          model.PipeGeometry
	Stage         model.Stage
	Pi            float64
	Po            float64
	WT            float64
	TopTension    float64
	BendingStrain float64
}

func (in Input) od() float64 { return in.Pipe.OuterDiameterIn }

func (in Input) degenerate() bool { return wallthickness.Degenerate(in.WT, in.od()) }

// Section holds the cross-section areas (in²) for an effective thickness.
type Section struct {
	ID    float64
	Ao    float64
	Ai    float64
	Steel float64
}

func SectionOf(od, wt float64) Section {
	id := od - 2*wt
	ao := math.Pi / 4 * od * od
	ai := math.Pi / 4 * id * id
	return Section{ID: id, Ao: ao, Ai: ai, Steel: ao - ai}
}

// Run dispatches to the named check.
func Run(c model.Check, in Input) model.CheckResult {
	switch c {
	case model.CheckBurst:
		return Burst(in)
	case model.CheckCollapse:
		return Collapse(in)
	case model.CheckPropagation:
		return Propagation(in)
	case model.CheckHoop:
		return Hoop(in)
	case model.CheckLongitudinal:
		return Longitudinal(in)
	case model.CheckCombined:
		return Combined(in)
	case model.CheckBending:
		return Bending(in)
	}
	return model.Invalid(c, in.WT, in.od())
}

// evaluate applies the common sign convention: a demand at or below zero is
// favorable and passes with an unbounded safety factor.
func evaluate(c model.Check, capacity, factor, allowable, demand float64, details map[string]float64) model.CheckResult {
	r := model.CheckResult{
		Check:        c,
		Capacity:     capacity,
		Factor:       factor,
		Allowable:    allowable,
		Demand:       demand,
		SafetyFactor: model.Ratio(allowable, demand),
		Details:      details,
	}
	if demand <= 0 {
		r.Favorable = true
		r.Pass = true
		return r
	}
	if allowable <= 0 {
		r.Invalid = true
		r.Notes = model.InvalidGeometry
		r.SafetyFactor = model.Finite(0)
		return r
	}
	r.Utilization = demand / allowable
	r.Pass = demand <= allowable
	return r
}
