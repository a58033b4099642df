package model

import (
	"fmt"
	"strings"
)

// Stage is a life-cycle stage of the riser.
type Stage int

const (
	Installation Stage = iota
	Hydrotest
	Operation
)

// Stages lists every life-cycle stage in evaluation order.
var Stages = []Stage{Installation, Hydrotest, Operation}

func (s Stage) String() string {
	switch s {
	case Installation:
		return "Installation"
	case Hydrotest:
		return "Hydrotest"
	case Operation:
		return "Operation"
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

func (s Stage) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Stage) UnmarshalText(b []byte) error {
	for _, v := range Stages {
		if normalize(v.String()) == normalize(string(b)) {
			*s = v
			return nil
		}
	}
	return fmt.Errorf("unknown stage %q", b)
}

// Position is the location along the riser where pressures are resolved.
type Position int

const (
	Top Position = iota
	Bottom
)

// Positions lists both riser positions, top first.
var Positions = []Position{Top, Bottom}

func (p Position) String() string {
	switch p {
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	}
	return fmt.Sprintf("Position(%d)", int(p))
}

func (p Position) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Position) UnmarshalText(b []byte) error {
	for _, v := range Positions {
		if normalize(v.String()) == normalize(string(b)) {
			*p = v
			return nil
		}
	}
	return fmt.Errorf("unknown position %q", b)
}

// Check identifies one of the structural checks. CheckNone is used where no
// check applies, e.g. a cell whose pressure checks are all favorable.
type Check int

const (
	CheckNone Check = iota
	CheckBurst
	CheckCollapse
	CheckPropagation
	CheckHoop
	CheckLongitudinal
	CheckCombined
	CheckBending
)

// AllChecks lists the six checks in reporting order.
var AllChecks = []Check{CheckBurst, CheckCollapse, CheckPropagation, CheckHoop, CheckLongitudinal, CheckCombined}

// PressureChecks are the checks that compete for the limiting check of a cell.
var PressureChecks = []Check{CheckBurst, CheckCollapse, CheckPropagation, CheckHoop}

// ReportedChecks are evaluated for information only. They never fail a cell
// and never become its limiting check.
var ReportedChecks = []Check{CheckBending}

// Stability reports whether the check is governed by external overpressure
// (collapse, propagation) and therefore uses shut-in/MOP internal pressure
// during operation.
func (c Check) Stability() bool {
	return c == CheckCollapse || c == CheckPropagation
}

func (c Check) String() string {
	switch c {
	case CheckNone:
		return "None"
	case CheckBurst:
		return "Burst"
	case CheckCollapse:
		return "Collapse"
	case CheckPropagation:
		return "Propagation"
	case CheckHoop:
		return "Hoop Stress"
	case CheckLongitudinal:
		return "Longitudinal Tension"
	case CheckCombined:
		return "Combined Loading"
	case CheckBending:
		return "Bending and Pressure"
	}
	return fmt.Sprintf("Check(%d)", int(c))
}

func (c Check) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText accepts the report names and their first word, e.g. "Hoop".
func (c *Check) UnmarshalText(b []byte) error {
	want := normalize(string(b))
	known := append([]Check{CheckNone}, AllChecks...)
	for _, v := range append(known, ReportedChecks...) {
		name := v.String()
		if normalize(name) == want || normalize(strings.Fields(name)[0]) == want {
			*c = v
			return nil
		}
	}
	return fmt.Errorf("unknown check %q", b)
}

// WellheadLocation is where the shut-in valve sits.
type WellheadLocation string

const (
	SubseaWellhead WellheadLocation = "SubseaWellhead"
	TopOfRiser     WellheadLocation = "TopOfRiser"
)

// ParseWellhead accepts the canonical names and the labels used on input forms.
func ParseWellhead(s string) (WellheadLocation, error) {
	switch normalize(s) {
	case "subseawellhead", "subsea", "bottom":
		return SubseaWellhead, nil
	case "topofriser", "top", "surface":
		return TopOfRiser, nil
	}
	return "", fmt.Errorf("unknown wellhead location %q", s)
}

// UnmarshalText leaves an empty value unset so WithDefaults or Validate
// can deal with it.
func (w *WellheadLocation) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*w = ""
		return nil
	}
	v, err := ParseWellhead(string(b))
	if err != nil {
		return err
	}
	*w = v
	return nil
}

// Position returns the riser position co-located with the wellhead.
func (w WellheadLocation) Position() Position {
	if w == TopOfRiser {
		return Top
	}
	return Bottom
}

// Manufacturing is the pipe manufacturing process.
type Manufacturing string

const (
	Seamless Manufacturing = "Seamless"
	ERW      Manufacturing = "ERW"
	DSAW     Manufacturing = "DSAW"
)

func ParseManufacturing(s string) (Manufacturing, error) {
	switch normalize(s) {
	case "seamless", "smls":
		return Seamless, nil
	case "erw":
		return ERW, nil
	case "dsaw":
		return DSAW, nil
	}
	return "", fmt.Errorf("unknown manufacturing process %q", s)
}

func (m *Manufacturing) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*m = ""
		return nil
	}
	v, err := ParseManufacturing(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// DesignCategory selects riser or pipeline design factors.
type DesignCategory string

const (
	Riser    DesignCategory = "Riser"
	Pipeline DesignCategory = "Pipeline"
)

func ParseDesignCategory(s string) (DesignCategory, error) {
	switch normalize(s) {
	case "riser":
		return Riser, nil
	case "pipeline":
		return Pipeline, nil
	}
	return "", fmt.Errorf("unknown design category %q", s)
}

func (d *DesignCategory) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = ""
		return nil
	}
	v, err := ParseDesignCategory(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// FluidCategory is the conveyed product; it selects the hoop design factor.
type FluidCategory string

const (
	Gas        FluidCategory = "Gas"
	WetGas     FluidCategory = "WetGas"
	Oil        FluidCategory = "Oil"
	Multiphase FluidCategory = "Multiphase"
)

func ParseFluidCategory(s string) (FluidCategory, error) {
	switch normalize(s) {
	case "gas":
		return Gas, nil
	case "wetgas":
		return WetGas, nil
	case "oil":
		return Oil, nil
	case "multiphase":
		return Multiphase, nil
	}
	return "", fmt.Errorf("unknown fluid category %q", s)
}

func (f *FluidCategory) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*f = ""
		return nil
	}
	v, err := ParseFluidCategory(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// normalize lower-cases s and strips spaces, dashes and underscores so that
// "Wet Gas", "wet_gas" and "WetGas" compare equal.
func normalize(s string) string {
	r := strings.NewReplacer(" ", "", "-", "", "_", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(s)))
}
