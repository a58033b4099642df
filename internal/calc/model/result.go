package model

// CheckResult is the uniform outcome of one structural check.
//
// Capacity is the raw resistance (burst, collapse or propagation pressure,
// yield tension, or 1.0 for the combined interaction), Factor the product of
// the design factors applied to it and Allowable = Factor * Capacity (for the
// hoop check, Factor * SMYS). Demand carries the sign convention of the check;
// Demand <= 0 means the failure mode cannot occur and the result is Favorable.
type CheckResult struct {
	Check        Check              `json:"check"`
	Capacity     float64            `json:"capacity"`
	Factor       float64            `json:"factor"`
	Allowable    float64            `json:"allowable"`
	Demand       float64            `json:"demand"`
	SafetyFactor SafetyFactor       `json:"safety_factor"`
	Utilization  float64            `json:"utilization"`
	Pass         bool               `json:"pass"`
	Favorable    bool               `json:"favorable"`
	Invalid      bool               `json:"invalid"`
	Details      map[string]float64 `json:"details,omitempty"`
	Notes        string             `json:"notes"`
}

// InvalidGeometry is the note attached to checks that could not be evaluated.
const InvalidGeometry = "invalid geometry"

// Invalid returns a failing result for a wall thickness that leaves no bore
// or no steel.
func Invalid(c Check, wt, od float64) CheckResult {
	return CheckResult{
		Check:   c,
		Invalid: true,
		Details: map[string]float64{"wt_eff": wt, "od": od},
		Notes:   InvalidGeometry,
	}
}
