package checks

import (
	"math"

	"Riserwt/internal/calc/model"
)

// CollapseFactor is fo: 0.70 for seamless and ERW pipe, 0.60 for DSAW.
func CollapseFactor(m model.Manufacturing) float64 {
	if m == model.DSAW {
		return 0.60
	}
	return 0.70
}

// CollapsePressures returns the yield (Py), elastic (Pe) and critical (Pc)
// collapse pressures.
func CollapsePressures(p model.PipeGeometry, wt float64) (py, pe, pc float64) {
	td := wt / p.OuterDiameterIn
	py = 2 * p.SMYSPsi * td
	pe = 2 * p.EPsi * math.Pow(td, 3) / ((1 - p.Poisson*p.Poisson) * (1 + p.Ovality))
	if py > 0 && pe > 0 {
		pc = py * pe / math.Sqrt(py*py+pe*pe)
	}
	return py, pe, pc
}

// CollapseMode classifies the collapse regime from Py/Pe.
func CollapseMode(py, pe float64) string {
	if pe <= 0 {
		return "Yield"
	}
	switch ratio := py / pe; {
	case ratio <= 1.5:
		return "Elastic"
	case ratio >= 4.0:
		return "Yield"
	default:
		return "Plastic"
	}
}

// Collapse checks (Po - Pi) <= fo Pc.
func Collapse(in Input) model.CheckResult {
	if in.degenerate() {
		return model.Invalid(model.CheckCollapse, in.WT, in.od())
	}
	py, pe, pc := CollapsePressures(in.Pipe, in.WT)
	fo := CollapseFactor(in.Pipe.Manufacturing)
	details := map[string]float64{
		"py":      py,
		"pe":      pe,
		"pc":      pc,
		"fo":      fo,
		"ovality": in.Pipe.Ovality,
		"pi":      in.Pi,
		"po":      in.Po,
	}
	if pe > 0 {
		details["py_pe"] = py / pe
	}
	r := evaluate(model.CheckCollapse, pc, fo, fo*pc, in.Po-in.Pi, details)
	r.Notes = "Collapse mode: " + CollapseMode(py, pe)
	return r
}
