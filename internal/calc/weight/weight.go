// Package weight computes pipe weight per foot in air and submerged for empty,
// flooded and product-filled pipe (API RP 1111 Appendix A).
package weight

import (
	"math"

	"Riserwt/internal/calc/model"
)

// Weights are in lb/ft.
type Weights struct {
	VoidDry                float64 `json:"void_dry"`
	VoidSubmerged          float64 `json:"void_submerged"`
	FloodedDry             float64 `json:"flooded_dry"`
	FloodedSubmerged       float64 `json:"flooded_submerged"`
	ProductFilledDry       float64 `json:"product_filled_dry"`
	ProductFilledSubmerged float64 `json:"product_filled_submerged"`
	PipeSG                 float64 `json:"pipe_sg"`
}

// Calculator uses seawater buoyancy unless Freshwater is set.
type Calculator struct {
	Freshwater bool
}

// Weights computes the weight table for an outer diameter and wall thickness
// in inches. Product density is fluidSG times the freshwater density.
func (c Calculator) Weights(od, wt, fluidSG float64) Weights {
	water := model.SeawaterPcf
	if c.Freshwater {
		water = model.FreshwaterPcf
	}
	odFt := od / 12
	idFt := math.Max(0, od-2*wt) / 12
	aOuter := math.Pi / 4 * odFt * odFt
	aVoid := math.Pi / 4 * idFt * idFt
	aSteel := aOuter - aVoid

	buoyancy := water * aOuter
	w := Weights{VoidDry: model.SteelPcf * aSteel}
	w.VoidSubmerged = w.VoidDry - buoyancy
	w.FloodedDry = w.VoidDry + water*aVoid
	w.FloodedSubmerged = w.FloodedDry - buoyancy
	w.ProductFilledDry = w.VoidDry + fluidSG*model.FreshwaterPcf*aVoid
	w.ProductFilledSubmerged = w.ProductFilledDry - buoyancy
	if buoyancy > 0 {
		w.PipeSG = w.VoidDry / buoyancy
	}
	return w
}
