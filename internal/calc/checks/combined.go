package checks

import (
	"math"

	"Riserwt/internal/calc/model"
)

// CombinedDesignFactor is 0.90 in operation and 0.96 for the temporary
// installation and hydrotest stages.
func CombinedDesignFactor(stage model.Stage) float64 {
	if stage == model.Operation {
		return 0.90
	}
	return 0.96
}

// Combined checks sqrt(((Pi-Po)/Pb)^2 + (Teff/Ty)^2) <= factor.
func Combined(in Input) model.CheckResult {
	if in.degenerate() {
		return model.Invalid(model.CheckCombined, in.WT, in.od())
	}
	pb := BurstCapacity(in.od(), in.WT, in.Pipe.SMYSPsi, in.Pipe.UTSPsi)
	s := SectionOf(in.od(), in.WT)
	ty := in.Pipe.SMYSPsi * s.Steel
	if pb <= 0 || ty <= 0 {
		return model.Invalid(model.CheckCombined, in.WT, in.od())
	}
	teff := EffectiveTension(in.TopTension, in.Pi, in.Po, s)
	pressureTerm := (in.Pi - in.Po) / pb
	tensionTerm := teff / ty
	ratio := math.Sqrt(pressureTerm*pressureTerm + tensionTerm*tensionTerm)
	f := CombinedDesignFactor(in.Stage)
	r := evaluate(model.CheckCombined, 1, f, f, ratio, map[string]float64{
		"pb":            pb,
		"ty":            ty,
		"teff":          teff,
		"pressure_term": pressureTerm,
		"tension_term":  tensionTerm,
		"ratio":         ratio,
	})
	r.Notes = "Combined pressure and tension interaction"
	return r
}
