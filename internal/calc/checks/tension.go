package checks

import "Riserwt/internal/calc/model"

// TensionFactor limits effective tension to a fraction of the yield tension.
const TensionFactor = 0.60

// EffectiveTension is Teff = Ta - Pi Ai + Po Ao (lb).
func EffectiveTension(ta, pi, po float64, s Section) float64 {
	return ta - pi*s.Ai + po*s.Ao
}

// Longitudinal checks Teff <= 0.60 SMYS As. Compression is favorable.
func Longitudinal(in Input) model.CheckResult {
	if in.degenerate() {
		return model.Invalid(model.CheckLongitudinal, in.WT, in.od())
	}
	s := SectionOf(in.od(), in.WT)
	ty := in.Pipe.SMYSPsi * s.Steel
	teff := EffectiveTension(in.TopTension, in.Pi, in.Po, s)
	r := evaluate(model.CheckLongitudinal, ty, TensionFactor, TensionFactor*ty, teff, map[string]float64{
		"ta":      in.TopTension,
		"teff":    teff,
		"ty":      ty,
		"a_steel": s.Steel,
		"a_i":     s.Ai,
		"a_o":     s.Ao,
		"pi":      in.Pi,
		"po":      in.Po,
	})
	r.Notes = "Effective tension against yield tension"
	return r
}
