package checks

import "Riserwt/internal/calc/model"

// HoopDesignFactor follows ASME B31.4/B31.8: 0.72 for pipelines, 0.50 for gas
// risers and 0.60 for liquid or multiphase risers.
func HoopDesignFactor(cat model.DesignCategory, fluid model.FluidCategory) float64 {
	if cat == model.Pipeline {
		return 0.72
	}
	switch fluid {
	case model.Gas, model.WetGas:
		return 0.50
	case model.Oil, model.Multiphase:
		return 0.60
	}
	return 0.72
}

// Hoop checks the Barlow hoop stress against F x SMYS. An empty pipe carries
// the compressive hoop stress Po D / 2t.
func Hoop(in Input) model.CheckResult {
	if in.degenerate() {
		return model.Invalid(model.CheckHoop, in.WT, in.od())
	}
	f := HoopDesignFactor(in.Pipe.Category, in.Pipe.Fluid)
	compressive := 0.0
	var sh float64
	if in.Pi <= 0 {
		sh = in.Po * in.od() / (2 * in.WT)
		compressive = 1
	} else {
		sh = (in.Pi - in.Po) * in.od() / (2 * in.WT)
	}
	r := evaluate(model.CheckHoop, in.Pipe.SMYSPsi, f, f*in.Pipe.SMYSPsi, sh, map[string]float64{
		"sh":          sh,
		"f":           f,
		"compressive": compressive,
		"pi":          in.Pi,
		"po":          in.Po,
	})
	if compressive == 1 {
		r.Notes = "Barlow hoop stress, empty pipe (compressive)"
	} else {
		r.Notes = "Barlow hoop stress"
	}
	return r
}
