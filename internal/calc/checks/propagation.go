package checks

import (
	"math"

	"Riserwt/internal/calc/model"
)

// PropagationFactor is fp.
const PropagationFactor = 0.80

// PropagationCapacity is Pp = 35 SMYS (t/D)^2.5.
func PropagationCapacity(od, wt, smys float64) float64 {
	if od <= 0 || wt <= 0 {
		return 0
	}
	return 35 * smys * math.Pow(wt/od, 2.5)
}

// Propagation checks (Po - Pi) <= fp Pp.
func Propagation(in Input) model.CheckResult {
	if in.degenerate() {
		return model.Invalid(model.CheckPropagation, in.WT, in.od())
	}
	pp := PropagationCapacity(in.od(), in.WT, in.Pipe.SMYSPsi)
	r := evaluate(model.CheckPropagation, pp, PropagationFactor, PropagationFactor*pp, in.Po-in.Pi, map[string]float64{
		"pp": pp,
		"fp": PropagationFactor,
		"pi": in.Pi,
		"po": in.Po,
	})
	r.Notes = "API RP 1111 4.3.2.3 buckle propagation"
	return r
}
