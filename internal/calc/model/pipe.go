package model

import (
	"fmt"
	"sort"
	"strings"
)

// PipeGeometry describes the pipe, its material and the conveyed fluid.
// Pressures and stresses are in psi, lengths in inches.
type PipeGeometry struct {
	OuterDiameterIn float64        `json:"od_in" yaml:"od_in"`
	NominalWTIn     float64        `json:"wt_in" yaml:"wt_in"`
	MillTolerance   float64        `json:"mill_tolerance" yaml:"mill_tolerance"` // fraction, e.g. 0.125
	CorrosionRate   float64        `json:"corrosion_rate_in_yr" yaml:"corrosion_rate_in_yr"`
	DesignLifeYr    float64        `json:"design_life_yr" yaml:"design_life_yr"`
	Ovality         float64        `json:"ovality" yaml:"ovality"`
	Manufacturing   Manufacturing  `json:"manufacturing" yaml:"manufacturing"`
	Category        DesignCategory `json:"design_category" yaml:"design_category"`
	Fluid           FluidCategory  `json:"fluid" yaml:"fluid"`
	FluidSG         float64        `json:"fluid_sg" yaml:"fluid_sg"`
	Grade           string         `json:"grade" yaml:"grade"`
	SMYSPsi         float64        `json:"smys_psi" yaml:"smys_psi"`
	UTSPsi          float64        `json:"uts_psi" yaml:"uts_psi"`
	EPsi            float64        `json:"e_psi" yaml:"e_psi"`
	Poisson         float64        `json:"poisson" yaml:"poisson"`
}

// CorrosionAllowance is the wall loss over the design life (in).
func (p PipeGeometry) CorrosionAllowance() float64 {
	return p.CorrosionRate * p.DesignLifeYr
}

// WithDefaults fills unset material constants: SMYS/UTS from the grade table,
// E, Poisson ratio and design life from the usual steel values.
func (p PipeGeometry) WithDefaults() PipeGeometry {
	if p.SMYSPsi <= 0 || p.UTSPsi <= 0 {
		if g, ok := GradeProperties(p.Grade); ok {
			if p.SMYSPsi <= 0 {
				p.SMYSPsi = g.SMYSPsi
			}
			if p.UTSPsi <= 0 {
				p.UTSPsi = g.UTSPsi
			}
		}
	}
	if p.EPsi <= 0 {
		p.EPsi = DefaultEPsi
	}
	if p.Poisson <= 0 {
		p.Poisson = DefaultPoisson
	}
	if p.DesignLifeYr <= 0 && p.CorrosionRate > 0 {
		p.DesignLifeYr = DefaultDesignLife
	}
	if p.Manufacturing == "" {
		p.Manufacturing = Seamless
	}
	if p.Category == "" {
		p.Category = Riser
	}
	return p
}

func (p PipeGeometry) Validate() error {
	switch {
	case p.OuterDiameterIn <= 0:
		return fmt.Errorf("outer diameter must be positive, got %g", p.OuterDiameterIn)
	case p.SMYSPsi <= 0:
		return fmt.Errorf("SMYS must be positive (grade %q)", p.Grade)
	case p.UTSPsi <= 0:
		return fmt.Errorf("UTS must be positive (grade %q)", p.Grade)
	case p.EPsi <= 0:
		return fmt.Errorf("elastic modulus must be positive")
	case p.Poisson < 0 || p.Poisson >= 0.5:
		return fmt.Errorf("poisson ratio %g out of range [0, 0.5)", p.Poisson)
	case p.MillTolerance < 0 || p.MillTolerance >= 1:
		return fmt.Errorf("mill tolerance %g out of range [0, 1)", p.MillTolerance)
	case p.CorrosionRate < 0 || p.DesignLifeYr < 0:
		return fmt.Errorf("corrosion rate and design life must not be negative")
	case p.Ovality < 0:
		return fmt.Errorf("ovality must not be negative")
	case p.FluidSG < 0:
		return fmt.Errorf("fluid specific gravity must not be negative")
	}
	if _, err := ParseManufacturing(string(p.Manufacturing)); err != nil {
		return err
	}
	if _, err := ParseDesignCategory(string(p.Category)); err != nil {
		return err
	}
	if _, err := ParseFluidCategory(string(p.Fluid)); err != nil {
		return err
	}
	return nil
}

// LoadingCondition holds pressures (psi) and lengths (m) for one riser.
// Bending strains are dimensionless; zero leaves the bending check out.
type LoadingCondition struct {
	DesignPressurePsi         float64          `json:"design_pressure_psi" yaml:"design_pressure_psi"`
	ShutInPressurePsi         float64          `json:"shut_in_pressure_psi" yaml:"shut_in_pressure_psi"`
	Wellhead                  WellheadLocation `json:"wellhead" yaml:"wellhead"`
	WaterDepthM               float64          `json:"water_depth_m" yaml:"water_depth_m"`
	RiserLengthM              float64          `json:"riser_length_m" yaml:"riser_length_m"`
	BendingStrain             float64          `json:"bending_strain,omitempty" yaml:"bending_strain,omitempty"`
	InstallationBendingStrain float64          `json:"installation_bending_strain,omitempty" yaml:"installation_bending_strain,omitempty"`
}

// WithDefaults sets the riser length to the water depth when unset, places
// the wellhead subsea and uses the design bending strain during installation
// when no lay strain is given.
func (l LoadingCondition) WithDefaults() LoadingCondition {
	if l.RiserLengthM <= 0 {
		l.RiserLengthM = l.WaterDepthM
	}
	if l.InstallationBendingStrain <= 0 {
		l.InstallationBendingStrain = l.BendingStrain
	}
	if l.Wellhead == "" {
		l.Wellhead = SubseaWellhead
	}
	return l
}

func (l LoadingCondition) Validate() error {
	switch {
	case l.DesignPressurePsi < 0:
		return fmt.Errorf("design pressure must not be negative")
	case l.ShutInPressurePsi < 0:
		return fmt.Errorf("shut-in pressure must not be negative")
	case l.WaterDepthM < 0:
		return fmt.Errorf("water depth must not be negative")
	case l.RiserLengthM < 0:
		return fmt.Errorf("riser length must not be negative")
	case l.BendingStrain < 0 || l.InstallationBendingStrain < 0:
		return fmt.Errorf("bending strain must not be negative")
	}
	if _, err := ParseWellhead(string(l.Wellhead)); err != nil {
		return err
	}
	return nil
}

// BendingStrainFor returns the applied bending strain of a stage.
func (l LoadingCondition) BendingStrainFor(s Stage) float64 {
	if s == Installation {
		return l.InstallationBendingStrain
	}
	return l.BendingStrain
}

// Grade holds the strength properties of a line pipe grade (psi).
type Grade struct {
	Name    string
	SMYSPsi float64
	UTSPsi  float64
}

// API 5L PSL2 minimum strengths.
var grades = map[string]Grade{
	"X-42": {"X-42", 42000, 60200},
	"X-52": {"X-52", 52000, 66000},
	"X-56": {"X-56", 56000, 71100},
	"X-60": {"X-60", 60000, 75000},
	"X-65": {"X-65", 65000, 77000},
	"X-70": {"X-70", 70000, 82700},
	"X-80": {"X-80", 80000, 90600},
}

// GradeProperties looks up a grade by name; "X52", "x-52" and "X-52" match.
func GradeProperties(name string) (Grade, bool) {
	n := strings.ToUpper(strings.TrimSpace(name))
	if len(n) > 1 && n[0] == 'X' && n[1] != '-' {
		n = "X-" + n[1:]
	}
	g, ok := grades[n]
	return g, ok
}

// GradeNames returns the known grades ordered by strength.
func GradeNames() []string {
	out := make([]string, 0, len(grades))
	for k := range grades {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return grades[out[i]].SMYSPsi < grades[out[j]].SMYSPsi })
	return out
}
