package beerlambert

import "github.com/lumoslab/physchem/internal/options"

// Input is the sparse record of known quantities for one Solve call.
// Quantities are supplied through the With* options; a quantity that was never
// set is treated as unknown, which is distinct from being set to zero.
type Input struct {
	epsilon       float64 // molar absorptivity (M⁻¹cm⁻¹)
	pathLength    float64 // path length (cm)
	concentration float64 // concentration (M)
	absorbance    float64 // absorbance (unitless)

	hasEpsilon       bool
	hasPathLength    bool
	hasConcentration bool
	hasAbsorbance    bool
}

// Option configures an Input.
type Option = options.Option[*Input]

// WithEpsilon supplies the molar absorptivity ε in M⁻¹cm⁻¹.
func WithEpsilon(epsilon float64) Option {
	return options.NoError(func(in *Input) {
		in.epsilon = epsilon
		in.hasEpsilon = true
	})
}

// WithPathLength supplies the optical path length l in cm.
func WithPathLength(pathLength float64) Option {
	return options.NoError(func(in *Input) {
		in.pathLength = pathLength
		in.hasPathLength = true
	})
}

// WithConcentration supplies the concentration c in M.
func WithConcentration(concentration float64) Option {
	return options.NoError(func(in *Input) {
		in.concentration = concentration
		in.hasConcentration = true
	})
}

// WithAbsorbance supplies the measured absorbance A (unitless).
func WithAbsorbance(absorbance float64) Option {
	return options.NoError(func(in *Input) {
		in.absorbance = absorbance
		in.hasAbsorbance = true
	})
}
