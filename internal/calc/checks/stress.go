package checks

import "math"

// Stress is the longitudinal and hoop stress state of a section (psi).
// Longitudinal is the axial self-weight stress plus the bending stress.
type Stress struct {
	Axial        float64 `json:"axial"`
	Bending      float64 `json:"bending"`
	Longitudinal float64 `json:"longitudinal"`
	Hoop         float64 `json:"hoop"`
	VonMises     float64 `json:"von_mises"`
}

// VonMises is the equivalent stress sqrt(sl² + sh² - sl sh).
func VonMises(longitudinal, hoop float64) float64 {
	return math.Sqrt(longitudinal*longitudinal + hoop*hoop - longitudinal*hoop)
}

// Stresses combines the top tension, the applied bending strain and the
// Barlow hoop stress. A degenerate section has no stress state.
func Stresses(in Input) Stress {
	if in.degenerate() {
		return Stress{}
	}
	s := SectionOf(in.od(), in.WT)
	st := Stress{
		Axial:   in.TopTension / s.Steel,
		Bending: in.Pipe.EPsi * in.BendingStrain,
		Hoop:    (in.Pi - in.Po) * in.od() / (2 * in.WT),
	}
	st.Longitudinal = st.Axial + st.Bending
	st.VonMises = VonMises(st.Longitudinal, st.Hoop)
	return st
}
