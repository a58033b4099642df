// Package pressure resolves the internal and external pressures acting on the
// riser wall for each life-cycle stage, check and position.
package pressure

import (
	"math"

	"Riserwt/internal/calc/model"
)

// HydrotestFactor scales design pressure to the test pressure (API RP 1111 App. C).
const HydrotestFactor = 1.25

// Resolver is pure: it holds only the loading constants and the content
// specific gravity.
type Resolver struct {
	fluidSG float64
	load    model.LoadingCondition
}

func New(fluidSG float64, load model.LoadingCondition) Resolver {
	return Resolver{fluidSG: fluidSG, load: load.WithDefaults()}
}

// External is the seawater pressure at a position. The top of the riser is
// taken at the sea surface.
func (r Resolver) External(pos model.Position) float64 {
	switch pos {
	case model.Bottom:
		return model.AtmosphericPsi + model.HeadPsi(model.SeawaterPcf, model.FeetFromMeters(r.load.WaterDepthM))
	default:
		return model.AtmosphericPsi
	}
}

// BendingStrain is the applied bending strain of a stage.
func (r Resolver) BendingStrain(stage model.Stage) float64 {
	return r.load.BendingStrainFor(stage)
}

// RiserLengthFt is the vertical length of the riser in feet.
func (r Resolver) RiserLengthFt() float64 {
	return model.FeetFromMeters(r.load.RiserLengthM)
}

// FluidDensityPcf is the riser content density, referenced to seawater.
func (r Resolver) FluidDensityPcf() float64 {
	return r.fluidSG * model.SeawaterPcf
}

// HydrostaticHead is the pressure of a full riser-length column of contents.
// The hydrotest fluid is taken equal to the operating fluid.
func (r Resolver) HydrostaticHead() float64 {
	return model.HeadPsi(r.FluidDensityPcf(), r.RiserLengthFt())
}

// MOP is the maximum operating pressure at the end of the riser opposite a
// subsea wellhead. With the wellhead at the top it equals the shut-in pressure.
func (r Resolver) MOP() float64 {
	if r.load.Wellhead == model.TopOfRiser {
		return r.load.ShutInPressurePsi
	}
	return math.Max(0, r.load.ShutInPressurePsi-r.HydrostaticHead())
}

// HydrotestBase is the test pressure applied at the bottom of the riser.
func (r Resolver) HydrotestBase() float64 {
	return r.load.DesignPressurePsi * HydrotestFactor
}

// Internal resolves the internal pressure for a stage, check and position.
func (r Resolver) Internal(stage model.Stage, check model.Check, pos model.Position) float64 {
	switch stage {
	case model.Installation:
		return 0
	case model.Hydrotest:
		return r.hydrotest(pos)
	case model.Operation:
		if check.Stability() {
			return r.shutIn(pos)
		}
		return r.load.DesignPressurePsi
	}
	return 0
}

func (r Resolver) hydrotest(pos model.Position) float64 {
	base := r.HydrotestBase()
	switch pos {
	case model.Top:
		return math.Max(0, base-r.HydrostaticHead())
	default:
		return base
	}
}

// shutIn gives the full shut-in pressure at the wellhead end of the riser and
// the head-adjusted value at the other end.
func (r Resolver) shutIn(pos model.Position) float64 {
	if pos == r.load.Wellhead.Position() {
		return r.load.ShutInPressurePsi
	}
	if r.load.Wellhead == model.TopOfRiser {
		return r.load.ShutInPressurePsi + r.HydrostaticHead()
	}
	return r.MOP()
}
