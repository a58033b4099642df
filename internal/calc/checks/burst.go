package checks

import "Riserwt/internal/calc/model"

// Weld and temperature derating factors for API RP 1111 burst. Seamless, ERW
// and DSAW line pipe at ambient seabed temperature all take 1.0.
const (
	WeldFactor        = 1.0
	TemperatureFactor = 1.0
)

// BurstCapacity is Pb = 0.90 (SMYS + UTS) t / (D - t).
func BurstCapacity(od, wt, smys, uts float64) float64 {
	if od <= wt {
		return 0
	}
	return 0.90 * (smys + uts) * wt / (od - wt)
}

// BurstDesignFactor is fd: 0.90 for pipelines, 0.75 for risers.
func BurstDesignFactor(cat model.DesignCategory) float64 {
	if cat == model.Pipeline {
		return 0.90
	}
	return 0.75
}

// Burst checks (Pi - Po) <= fd fe ft Pb.
func Burst(in Input) model.CheckResult {
	if in.degenerate() {
		return model.Invalid(model.CheckBurst, in.WT, in.od())
	}
	pb := BurstCapacity(in.od(), in.WT, in.Pipe.SMYSPsi, in.Pipe.UTSPsi)
	fd := BurstDesignFactor(in.Pipe.Category)
	factor := fd * WeldFactor * TemperatureFactor
	r := evaluate(model.CheckBurst, pb, factor, factor*pb, in.Pi-in.Po, map[string]float64{
		"pb": pb,
		"fd": fd,
		"fe": WeldFactor,
		"ft": TemperatureFactor,
		"pi": in.Pi,
		"po": in.Po,
	})
	r.Notes = "API RP 1111 4.3.1 burst"
	return r
}
