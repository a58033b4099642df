// Package casefile reads and writes riser cases as YAML documents.
package casefile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"Riserwt/internal/calc/model"
)

// Case is one riser to evaluate. TargetWT, when set, is the thickness the
// search reports the closest passing standard size above.
type Case struct {
	Name     string                 `json:"name" yaml:"name"`
	Pipe     model.PipeGeometry     `json:"pipe" yaml:"pipe"`
	Load     model.LoadingCondition `json:"load" yaml:"load"`
	TargetWT float64                `json:"target_wt,omitempty" yaml:"target_wt,omitempty"`
}

type document struct {
	Cases []Case `yaml:"cases"`
}

// Decode reads a document holding a "cases" list.
func Decode(r io.Reader) ([]Case, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty case file")
		}
		return nil, fmt.Errorf("decode cases: %w", err)
	}
	if len(doc.Cases) == 0 {
		return nil, fmt.Errorf("no cases")
	}
	for i := range doc.Cases {
		if doc.Cases[i].Name == "" {
			doc.Cases[i].Name = fmt.Sprintf("Case %d", i+1)
		}
	}
	return doc.Cases, nil
}

func Encode(w io.Writer, cases []Case) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Cases: cases}); err != nil {
		return fmt.Errorf("encode cases: %w", err)
	}
	return enc.Close()
}

func Load(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cases, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cases, nil
}

func Save(path string, cases []Case) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, cases); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// References are the worked risers used to check the engine end to end.
func References() []Case {
	const life = model.DefaultDesignLife
	return []Case{
		{
			Name: "Gas Riser (ID 3)",
			Pipe: model.PipeGeometry{
				OuterDiameterIn: 20,
				NominalWTIn:     0.75,
				MillTolerance:   0.125,
				CorrosionRate:   0.125 / life,
				DesignLifeYr:    life,
				Ovality:         model.DefaultOvality,
				Manufacturing:   model.Seamless,
				Category:        model.Riser,
				Fluid:           model.Gas,
				FluidSG:         0.05,
				Grade:           "X-52",
			},
			Load: model.LoadingCondition{
				DesignPressurePsi: 211,
				ShutInPressurePsi: 250,
				Wellhead:          model.SubseaWellhead,
				WaterDepthM:       700,
			},
		},
		{
			Name: "Oil Riser (ID 8)",
			Pipe: model.PipeGeometry{
				OuterDiameterIn: 8.63,
				NominalWTIn:     0.5,
				MillTolerance:   0.125,
				CorrosionRate:   0.125 / life,
				DesignLifeYr:    life,
				Ovality:         model.DefaultOvality,
				Manufacturing:   model.Seamless,
				Category:        model.Riser,
				Fluid:           model.Oil,
				FluidSG:         0.82,
				Grade:           "X-52",
			},
			Load: model.LoadingCondition{
				DesignPressurePsi: 195,
				ShutInPressurePsi: 230,
				Wellhead:          model.SubseaWellhead,
				WaterDepthM:       960,
			},
		},
		{
			Name: "Multiphase Riser (MOP)",
			Pipe: model.PipeGeometry{
				OuterDiameterIn: 16,
				NominalWTIn:     0.75,
				MillTolerance:   0.125,
				Ovality:         model.DefaultOvality,
				Manufacturing:   model.Seamless,
				Category:        model.Riser,
				Fluid:           model.Multiphase,
				FluidSG:         0.57,
				Grade:           "X-52",
			},
			Load: model.LoadingCondition{
				DesignPressurePsi: 1400,
				ShutInPressurePsi: 1236,
				Wellhead:          model.SubseaWellhead,
				WaterDepthM:       920,
				RiserLengthM:      920,
			},
		},
	}
}
