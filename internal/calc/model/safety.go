package model

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// SafetyFactor is either a finite ratio of allowable to demand, or Favorable
// when the demand is zero or acts against the failure mode. The zero value is
// Finite(0).
type SafetyFactor struct {
	value     float64
	favorable bool
}

func Finite(v float64) SafetyFactor { return SafetyFactor{value: v} }

func Favorable() SafetyFactor { return SafetyFactor{favorable: true} }

func (s SafetyFactor) IsFavorable() bool { return s.favorable }

// Value returns the finite safety factor. ok is false for Favorable.
func (s SafetyFactor) Value() (v float64, ok bool) {
	if s.favorable {
		return 0, false
	}
	return s.value, true
}

// Less orders safety factors with Favorable above every finite value.
func (s SafetyFactor) Less(o SafetyFactor) bool {
	switch {
	case s.favorable:
		return false
	case o.favorable:
		return true
	}
	return s.value < o.value
}

func (s SafetyFactor) String() string {
	if s.favorable {
		return "∞"
	}
	return strconv.FormatFloat(s.value, 'f', 2, 64)
}

func (s SafetyFactor) MarshalJSON() ([]byte, error) {
	if s.favorable {
		return []byte(`"favorable"`), nil
	}
	return json.Marshal(s.value)
}

func (s *SafetyFactor) UnmarshalJSON(b []byte) error {
	if string(b) == `"favorable"` {
		*s = Favorable()
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("safety factor: %w", err)
	}
	*s = Finite(v)
	return nil
}

// Ratio builds the safety factor allowable/demand, Favorable when demand <= 0.
func Ratio(allowable, demand float64) SafetyFactor {
	if demand <= 0 {
		return Favorable()
	}
	return Finite(allowable / demand)
}
