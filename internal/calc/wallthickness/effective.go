// Package wallthickness applies mill-tolerance and corrosion deductions to a
// nominal wall thickness.
package wallthickness

import (
	"fmt"
	"math"

	"Riserwt/internal/calc/model"
)

// Epsilon is the floor for an effective wall thickness (in). A thickness at
// the floor is treated as invalid geometry by the checks.
const Epsilon = 0.001

// Variant selects which deductions are applied.
type Variant struct {
	MillTolerance bool `json:"mill_tolerance"`
	Corrosion     bool `json:"corrosion"`
}

func (v Variant) String() string {
	switch {
	case v.MillTolerance && v.Corrosion:
		return "Mill tol. + corrosion"
	case v.MillTolerance:
		return "Mill tol."
	case v.Corrosion:
		return "Corrosion"
	}
	return "Nominal"
}

// Variants lists the deductions evaluated for a stage. Installation and
// hydrotest happen before any corrosion, so only the tolerance is toggled.
func Variants(stage model.Stage) []Variant {
	if stage == model.Operation {
		return []Variant{
			{},
			{MillTolerance: true},
			{Corrosion: true},
			{MillTolerance: true, Corrosion: true},
		}
	}
	return []Variant{{}, {MillTolerance: true}}
}

// Effective returns max(Epsilon, nominal*(1-tol) - corrosion allowance) with
// each deduction applied only when the variant asks for it.
func Effective(pipe model.PipeGeometry, nominal float64, v Variant) float64 {
	wt := nominal
	if v.MillTolerance {
		wt *= 1 - pipe.MillTolerance
	}
	if v.Corrosion {
		wt -= pipe.CorrosionAllowance()
	}
	return math.Max(Epsilon, wt)
}

// Degenerate reports whether wt leaves no bore or no steel for the diameter.
func Degenerate(wt, od float64) bool {
	return wt <= Epsilon || 2*wt >= od
}

// Describe formats the deductions applied for reporting.
func Describe(pipe model.PipeGeometry, nominal float64, v Variant) string {
	return fmt.Sprintf("%.4f in nominal, %s -> %.4f in", nominal, v, Effective(pipe, nominal, v))
}
