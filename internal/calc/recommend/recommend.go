// Package recommend flags questionable inputs and estimates the wall
// thickness needed against propagation buckling.
package recommend

import (
	"fmt"
	"math"

	"Riserwt/internal/calc/checks"
	"Riserwt/internal/calc/lifecycle"
	"Riserwt/internal/calc/model"
)

type PropagationInput struct {
	OuterDiameterIn float64 `json:"outer_diameter_in"`
	SMYSPsi         float64 `json:"smys_psi"`
	// NetExternalPsi is Po - Pi.
	NetExternalPsi float64 `json:"net_external_psi"`
}

type PropagationResult struct {
	RequiredWTIn float64 `json:"required_wt_in"`
	Notes        string  `json:"notes"`
}

// PropagationThickness solves fp 35 S (t/D)^2.5 = Po - Pi for t.
func PropagationThickness(in PropagationInput) (PropagationResult, error) {
	if in.OuterDiameterIn <= 0 || in.SMYSPsi <= 0 {
		return PropagationResult{}, fmt.Errorf("invalid input")
	}
	if in.NetExternalPsi <= 0 {
		return PropagationResult{Notes: "Net internal pressure; propagation buckling cannot occur."}, nil
	}
	ratio := in.NetExternalPsi / (checks.PropagationFactor * 35 * in.SMYSPsi)
	t := in.OuterDiameterIn * math.Pow(ratio, 1/2.5)
	return PropagationResult{
		RequiredWTIn: t,
		Notes:        "Minimum effective wall thickness against propagation buckling.",
	}, nil
}

// RunPropagationThickness takes the worst net external pressure over the
// cells of a run.
func RunPropagationThickness(run lifecycle.Run) (PropagationResult, error) {
	worst := 0.0
	for _, c := range run.Cells {
		if dp := c.Po - c.Pi[model.CheckPropagation]; dp > worst {
			worst = dp
		}
	}
	return PropagationThickness(PropagationInput{
		OuterDiameterIn: run.Pipe.OuterDiameterIn,
		SMYSPsi:         run.Pipe.SMYSPsi,
		NetExternalPsi:  worst,
	})
}

// Thresholds for the verification notes.
const (
	MaxDOverT           = 120
	MaxShutInRatio      = 1.5
	MinFluidSG          = 0.02
	MaxFluidSG          = 1.2
	MaxCorrosionAllowIn = 0.25
	MinGoverningSafety  = 1.0
)

// VerificationNotes lists input and result conditions a reviewer should
// look at before accepting a design. An empty slice means nothing stood out.
func VerificationNotes(run lifecycle.Run) []string {
	pipe, load := run.Pipe, run.Load
	var notes []string
	ca := pipe.CorrosionAllowance()
	if run.NominalWT <= ca {
		notes = append(notes, "Corrosion allowance exceeds or matches wall thickness.")
	}
	if pipe.OuterDiameterIn/math.Max(run.NominalWT, 1e-6) > MaxDOverT {
		notes = append(notes, "High D/t ratio; check ovality and fabrication tolerances.")
	}
	if load.ShutInPressurePsi > load.DesignPressurePsi*MaxShutInRatio {
		notes = append(notes, "Shut-in pressure is more than 1.5x design; confirm well control assumptions.")
	}
	if pipe.FluidSG < MinFluidSG || pipe.FluidSG > MaxFluidSG {
		notes = append(notes, "Fluid specific gravity is outside typical range; validate input.")
	}
	if ca > MaxCorrosionAllowIn {
		notes = append(notes, "Corrosion allowance > 0.25 in; verify design life assumptions.")
	}
	if _, gov, ok := run.Governing(); ok {
		if sf, _ := gov.SafetyFactor.Value(); sf < MinGoverningSafety {
			notes = append(notes, fmt.Sprintf("Governing %s check below SF 1.0; review load case or material grade.", gov.Check))
		}
	}
	return notes
}
