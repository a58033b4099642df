package model

// Unit conversions and reference densities used throughout the engine.
const (
	FtPerM            = 3.28084
	SqInPerSqFt       = 144.0
	AtmosphericPsi    = 14.7
	SeawaterPcf       = 64.0 // lb/ft³
	FreshwaterPcf     = 62.4 // lb/ft³
	SteelPcf          = 490.0
	DefaultEPsi       = 2.9e7
	DefaultPoisson    = 0.30
	DefaultOvality    = 0.005
	DefaultDesignLife = 20.0
)

// FeetFromMeters converts a length in metres to feet.
func FeetFromMeters(m float64) float64 { return m * FtPerM }

// HeadPsi is the hydrostatic pressure of a column of fluid with the given
// density (lb/ft³) and height (ft).
func HeadPsi(densityPcf, heightFt float64) float64 {
	return densityPcf * heightFt / SqInPerSqFt
}
