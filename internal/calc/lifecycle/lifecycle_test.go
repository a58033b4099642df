package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Riserwt/internal/calc/model"
	"Riserwt/internal/calc/weight"
)

func multiphase() (model.PipeGeometry, model.LoadingCondition) {
	pipe := model.PipeGeometry{
		OuterDiameterIn: 16,
		NominalWTIn:     0.5,
		MillTolerance:   0.125,
		Ovality:         0.005,
		Manufacturing:   model.Seamless,
		Category:        model.Riser,
		Fluid:           model.Multiphase,
		FluidSG:         0.57,
		Grade:           "X-52",
	}
	load := model.LoadingCondition{
		DesignPressurePsi: 1400,
		ShutInPressurePsi: 1236,
		Wellhead:          model.SubseaWellhead,
		WaterDepthM:       920,
	}
	return pipe, load
}

type fixedWeights struct {
	w     weight.Weights
	calls int
}

func (f *fixedWeights) Weights(od, wt, fluidSG float64) weight.Weights {
	f.calls++
	return f.w
}

func TestAnalyzeGrid(t *testing.T) {
	pipe, load := multiphase()
	run, err := Analyze(pipe, load, 0.5, nil)
	require.NoError(t, err)
	require.Len(t, run.Cells, 16)

	perStage := map[model.Stage]int{}
	for _, c := range run.Cells {
		perStage[c.Stage]++
		assert.Len(t, c.Results, len(model.AllChecks))
		if c.Position == model.Bottom {
			assert.Zero(t, c.TopTension)
		}
	}
	assert.Equal(t, 4, perStage[model.Installation])
	assert.Equal(t, 4, perStage[model.Hydrotest])
	assert.Equal(t, 8, perStage[model.Operation])
	assert.InDelta(t, 471.35, run.MOP, 0.5)
}

func TestAnalyzeDeterministic(t *testing.T) {
	pipe, load := multiphase()
	a, err := Analyze(pipe, load, 0.625, nil)
	require.NoError(t, err)
	b, err := Analyze(pipe, load, 0.625, nil)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestInstallationHasNoInternalPressure(t *testing.T) {
	pipe, load := multiphase()
	run, err := Analyze(pipe, load, 0.5, nil)
	require.NoError(t, err)

	for _, c := range run.Cells {
		if c.Stage != model.Installation {
			continue
		}
		for _, p := range c.Pi {
			assert.Zero(t, p)
		}
		burst, ok := c.Result(model.CheckBurst)
		require.True(t, ok)
		assert.True(t, burst.Favorable)
		assert.NotEqual(t, model.CheckBurst, c.Limiting)
	}
}

func TestTopTensionUsesSubmergedWeight(t *testing.T) {
	pipe, load := multiphase()
	w := &fixedWeights{w: weight.Weights{VoidSubmerged: 10}}
	run, err := Analyze(pipe, load, 0.5, w)
	require.NoError(t, err)
	assert.Equal(t, 16, w.calls)

	lengthFt := model.FeetFromMeters(920)
	for _, c := range run.Cells {
		if c.Position == model.Top {
			assert.InDelta(t, 10*lengthFt, c.TopTension, 1e-6)
		}
	}
}

func TestThinWallFailsAtDepth(t *testing.T) {
	pipe, load := multiphase()
	thin, err := Analyze(pipe, load, 0.5, nil)
	require.NoError(t, err)
	thick, err := Analyze(pipe, load, 1.0, nil)
	require.NoError(t, err)

	assert.False(t, thin.AllPass)
	assert.False(t, thin.Invalid())
	assert.NotEmpty(t, thin.Failures())
	assert.Greater(t, thin.MaxUtilization(), 1.0)
	assert.Less(t, thick.MaxUtilization(), thin.MaxUtilization())

	collapseFailsAtBottom := false
	for _, c := range thin.Failures() {
		if r, ok := c.Result(model.CheckCollapse); ok && !r.Pass && c.Position == model.Bottom {
			collapseFailsAtBottom = true
		}
	}
	assert.True(t, collapseFailsAtBottom)

	_, gov, ok := thin.Governing()
	require.True(t, ok)
	sf, _ := gov.SafetyFactor.Value()
	assert.Less(t, sf, 1.0)
}

func TestDegenerateThicknessFailsEveryCell(t *testing.T) {
	pipe, load := multiphase()
	run, err := Analyze(pipe, load, 10.0, nil)
	require.NoError(t, err)

	assert.False(t, run.AllPass)
	assert.True(t, run.Invalid())
	for _, c := range run.Cells {
		assert.False(t, c.Pass)
		assert.True(t, c.Invalid())
		assert.Equal(t, model.CheckNone, c.Limiting)
		assert.True(t, c.LimitingSF.IsFavorable())
	}
}

func TestBendingIsReportedOnly(t *testing.T) {
	pipe, load := multiphase()
	plain, err := Analyze(pipe, load, 1.218, nil)
	require.NoError(t, err)
	for _, c := range plain.Cells {
		assert.Nil(t, c.Bending)
		_, ok := c.Result(model.CheckBending)
		assert.False(t, ok)
	}

	load.BendingStrain = 0.01
	bent, err := Analyze(pipe, load, 1.218, nil)
	require.NoError(t, err)
	assert.Equal(t, plain.AllPass, bent.AllPass)
	assert.True(t, bent.AllPass)
	for i, c := range bent.Cells {
		require.NotNil(t, c.Bending, c.Label())
		assert.False(t, c.Bending.Pass, c.Label())
		r, ok := c.Result(model.CheckBending)
		require.True(t, ok)
		assert.Equal(t, *c.Bending, r)
		assert.Equal(t, plain.Cells[i].Limiting, c.Limiting)
		assert.Equal(t, plain.Cells[i].Pass, c.Pass)
		assert.Equal(t, c.Pi[model.CheckCollapse], r.Details["pi"])
		assert.Greater(t, c.Stress.VonMises, plain.Cells[i].Stress.VonMises)
	}
}

func TestAnalyzeRejectsBadInput(t *testing.T) {
	pipe, load := multiphase()
	pipe.OuterDiameterIn = 0
	_, err := Analyze(pipe, load, 0.5, nil)
	assert.Error(t, err)

	pipe, load = multiphase()
	load.DesignPressurePsi = -1
	_, err = Analyze(pipe, load, 0.5, nil)
	assert.Error(t, err)
}

func TestLimiting(t *testing.T) {
	results := []model.CheckResult{
		{Check: model.CheckBurst, SafetyFactor: model.Finite(2)},
		{Check: model.CheckCollapse, SafetyFactor: model.Finite(1.5)},
		{Check: model.CheckPropagation, SafetyFactor: model.Finite(1.5)},
		{Check: model.CheckHoop, SafetyFactor: model.Finite(3)},
		{Check: model.CheckLongitudinal, SafetyFactor: model.Finite(0.5)},
	}
	check, sf := limiting(results)
	assert.Equal(t, model.CheckCollapse, check)
	assert.Equal(t, model.Finite(1.5), sf)

	all := []model.CheckResult{
		{Check: model.CheckBurst, Favorable: true, SafetyFactor: model.Favorable()},
		{Check: model.CheckCollapse, Invalid: true},
	}
	check, sf = limiting(all)
	assert.Equal(t, model.CheckNone, check)
	assert.True(t, sf.IsFavorable())
}
