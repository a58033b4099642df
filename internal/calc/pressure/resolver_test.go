package pressure

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"Riserwt/internal/calc/model"
)

func multiphaseLoad(wellhead model.WellheadLocation) model.LoadingCondition {
	return model.LoadingCondition{
		DesignPressurePsi: 1400,
		ShutInPressurePsi: 1236,
		Wellhead:          wellhead,
		WaterDepthM:       920,
		RiserLengthM:      920,
	}
}

func TestMOPSubseaWellhead(t *testing.T) {
	r := New(0.57, multiphaseLoad(model.SubseaWellhead))

	assert.InDelta(t, 3018.4, r.RiserLengthFt(), 0.05)
	assert.InDelta(t, 36.48, r.FluidDensityPcf(), 1e-9)
	assert.InDelta(t, 764.85, r.HydrostaticHead(), 0.5)
	assert.InDelta(t, 471.15, r.MOP(), 0.5)
	assert.InDelta(t, 1236-r.HydrostaticHead(), r.MOP(), 1e-9)
}

func TestMOPFlooredAtZero(t *testing.T) {
	load := multiphaseLoad(model.SubseaWellhead)
	load.ShutInPressurePsi = 100
	r := New(0.57, load)
	assert.Equal(t, 0.0, r.MOP())
	assert.Equal(t, 0.0, r.Internal(model.Operation, model.CheckCollapse, model.Top))
}

func TestHydrotestPressures(t *testing.T) {
	r := New(0.57, multiphaseLoad(model.SubseaWellhead))

	assert.Equal(t, 1750.0, r.HydrotestBase())
	for _, c := range model.AllChecks {
		assert.InDelta(t, 985.15, r.Internal(model.Hydrotest, c, model.Top), 0.5, c.String())
		assert.Equal(t, 1750.0, r.Internal(model.Hydrotest, c, model.Bottom), c.String())
	}

	t.Run("top floored at zero", func(t *testing.T) {
		load := multiphaseLoad(model.SubseaWellhead)
		load.DesignPressurePsi = 100
		assert.Equal(t, 0.0, New(0.57, load).Internal(model.Hydrotest, model.CheckBurst, model.Top))
	})
}

func TestExternalPressure(t *testing.T) {
	r := New(0.57, multiphaseLoad(model.SubseaWellhead))
	assert.Equal(t, 14.7, r.External(model.Top))
	assert.InDelta(t, 1356.4, r.External(model.Bottom), 0.5)
	assert.InDelta(t, 14.7+64*920*3.28084/144, r.External(model.Bottom), 1e-9)
}

func TestInstallationIsEmpty(t *testing.T) {
	r := New(0.57, multiphaseLoad(model.SubseaWellhead))
	for _, c := range model.AllChecks {
		for _, p := range model.Positions {
			assert.Equal(t, 0.0, r.Internal(model.Installation, c, p))
		}
	}
}

func TestOperationPressures(t *testing.T) {
	strength := []model.Check{model.CheckBurst, model.CheckHoop, model.CheckLongitudinal, model.CheckCombined}

	t.Run("strength checks use design pressure", func(t *testing.T) {
		for _, w := range []model.WellheadLocation{model.SubseaWellhead, model.TopOfRiser} {
			r := New(0.57, multiphaseLoad(w))
			for _, c := range strength {
				for _, p := range model.Positions {
					assert.Equal(t, 1400.0, r.Internal(model.Operation, c, p))
				}
			}
		}
	})

	t.Run("subsea wellhead", func(t *testing.T) {
		r := New(0.57, multiphaseLoad(model.SubseaWellhead))
		for _, c := range []model.Check{model.CheckCollapse, model.CheckPropagation} {
			assert.Equal(t, 1236.0, r.Internal(model.Operation, c, model.Bottom))
			assert.Equal(t, r.MOP(), r.Internal(model.Operation, c, model.Top))
		}
	})

	t.Run("wellhead at top of riser", func(t *testing.T) {
		r := New(0.57, multiphaseLoad(model.TopOfRiser))
		assert.Equal(t, 1236.0, r.MOP())
		assert.Equal(t, 1236.0, r.Internal(model.Operation, model.CheckCollapse, model.Top))
		assert.InDelta(t, 1236+r.HydrostaticHead(), r.Internal(model.Operation, model.CheckPropagation, model.Bottom), 1e-9)
	})
}

func TestRiserLengthDefaultsToWaterDepth(t *testing.T) {
	load := multiphaseLoad(model.SubseaWellhead)
	load.RiserLengthM = 0
	assert.Equal(t, New(0.57, multiphaseLoad(model.SubseaWellhead)).HydrostaticHead(), New(0.57, load).HydrostaticHead())
}
