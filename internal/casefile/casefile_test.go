package casefile

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Riserwt/internal/calc/model"
)

const sample = `
cases:
  - name: Export riser
    pipe:
      od_in: 12.75
      wt_in: 0.5
      grade: X52
      manufacturing: SMLS
      design_category: riser
      fluid: wet gas
      fluid_sg: 0.2
      mill_tolerance: 0.125
    load:
      design_pressure_psi: 1500
      shut_in_pressure_psi: 1800
      wellhead: top
      water_depth_m: 300
    target_wt: 0.6
  - pipe:
      od_in: 8.625
      wt_in: 0.322
      fluid: oil
    load:
      water_depth_m: 100
`

func TestDecode(t *testing.T) {
	cases, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, cases, 2)

	c := cases[0]
	assert.Equal(t, "Export riser", c.Name)
	assert.Equal(t, model.Seamless, c.Pipe.Manufacturing)
	assert.Equal(t, model.Riser, c.Pipe.Category)
	assert.Equal(t, model.WetGas, c.Pipe.Fluid)
	assert.Equal(t, model.TopOfRiser, c.Load.Wellhead)
	assert.Equal(t, 0.6, c.TargetWT)
	assert.Equal(t, 52000.0, c.Pipe.WithDefaults().SMYSPsi)

	assert.Equal(t, "Case 2", cases[1].Name)
	assert.Equal(t, model.Oil, cases[1].Pipe.Fluid)
}

func TestDecodeErrors(t *testing.T) {
	for name, doc := range map[string]string{
		"empty":            "",
		"no cases":         "cases: []\n",
		"unknown fluid":    "cases:\n  - pipe: {fluid: steam}\n",
		"unknown wellhead": "cases:\n  - load: {wellhead: midwater}\n",
		"malformed":        "cases: [",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.yaml")
	require.NoError(t, Save(path, References()))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, References(), got)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestReferencesAreValid(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, References()))
	assert.Contains(t, buf.String(), "Oil Riser (ID 8)")

	for _, c := range References() {
		assert.NoError(t, c.Pipe.WithDefaults().Validate(), c.Name)
		assert.NoError(t, c.Load.WithDefaults().Validate(), c.Name)
	}
	assert.InDelta(t, 0.125, References()[0].Pipe.CorrosionAllowance(), 1e-12)
}
