package checks

import (
	"math"

	"Riserwt/internal/calc/model"
)

// BendingStrainLimit is the allowable bending strain eb = 2 t S / (D E).
func BendingStrainLimit(od, wt, smys, e float64) float64 {
	if od <= 0 || e <= 0 {
		return 0
	}
	return 2 * wt * smys / (od * e)
}

// OvalityFunction is g(δ) = 1 - 3.5 δ, floored at zero.
func OvalityFunction(ovality float64) float64 {
	return math.Max(0, 1-3.5*ovality)
}

// Bending checks the API RP 1111 bending and external pressure interaction
// e/eb + (Po - Pi)/Pc <= g(δ). It is reported alongside the pressure checks
// but does not decide pass or fail of a cell.
func Bending(in Input) model.CheckResult {
	if in.degenerate() {
		return model.Invalid(model.CheckBending, in.WT, in.od())
	}
	eb := BendingStrainLimit(in.od(), in.WT, in.Pipe.SMYSPsi, in.Pipe.EPsi)
	_, _, pc := CollapsePressures(in.Pipe, in.WT)
	if eb <= 0 || pc <= 0 {
		return model.Invalid(model.CheckBending, in.WT, in.od())
	}
	g := OvalityFunction(in.Pipe.Ovality)
	bendingTerm := in.BendingStrain / eb
	pressureTerm := (in.Po - in.Pi) / pc
	ratio := bendingTerm + pressureTerm
	r := evaluate(model.CheckBending, g, 1, g, ratio, map[string]float64{
		"strain":        in.BendingStrain,
		"eb":            eb,
		"pc":            pc,
		"g":             g,
		"bending_term":  bendingTerm,
		"pressure_term": pressureTerm,
		"ratio":         ratio,
		"pi":            in.Pi,
		"po":            in.Po,
	})
	if !r.Invalid {
		r.Notes = "Bending and external pressure interaction"
	}
	return r
}
