package thermo

import "github.com/lumoslab/physchem/internal/options"

// CelsiusOffset converts °C to K: K = °C + 273.15.
const CelsiusOffset = 273.15

// Input is the sparse record of known quantities for one Solve call.
// Quantities are supplied through the With* options; a quantity that was never
// set is treated as unknown, which is distinct from being set to zero.
type Input struct {
	deltaG       float64 // kJ/mol
	deltaH       float64 // kJ/mol
	deltaS       float64 // J/mol·K
	temperatureK float64 // K
	temperatureC float64 // °C
	equilibriumK float64 // dimensionless

	hasDeltaG       bool
	hasDeltaH       bool
	hasDeltaS       bool
	hasTemperatureK bool
	hasTemperatureC bool
	hasEquilibriumK bool
}

// deriveKelvin fills in the Kelvin temperature from Celsius when only Celsius
// was supplied. When both were supplied Kelvin takes precedence and the
// Celsius value is ignored.
func (in *Input) deriveKelvin() {
	if !in.hasTemperatureK && in.hasTemperatureC {
		in.temperatureK = in.temperatureC + CelsiusOffset
		in.hasTemperatureK = true
	}
}

// Option configures an Input.
type Option = options.Option[*Input]

// WithDeltaG supplies the Gibbs free energy change ΔG in kJ/mol.
func WithDeltaG(deltaG float64) Option {
	return options.NoError(func(in *Input) {
		in.deltaG = deltaG
		in.hasDeltaG = true
	})
}

// WithDeltaH supplies the enthalpy change ΔH in kJ/mol.
func WithDeltaH(deltaH float64) Option {
	return options.NoError(func(in *Input) {
		in.deltaH = deltaH
		in.hasDeltaH = true
	})
}

// WithDeltaS supplies the entropy change ΔS in J/mol·K.
func WithDeltaS(deltaS float64) Option {
	return options.NoError(func(in *Input) {
		in.deltaS = deltaS
		in.hasDeltaS = true
	})
}

// WithTemperature supplies the temperature in kelvin.
func WithTemperature(kelvin float64) Option {
	return options.NoError(func(in *Input) {
		in.temperatureK = kelvin
		in.hasTemperatureK = true
	})
}

// WithTemperatureCelsius supplies the temperature in °C. It is converted to
// kelvin unless a kelvin temperature was also supplied, in which case the
// kelvin value wins.
func WithTemperatureCelsius(celsius float64) Option {
	return options.NoError(func(in *Input) {
		in.temperatureC = celsius
		in.hasTemperatureC = true
	})
}

// WithEquilibriumConstant supplies the equilibrium constant K (dimensionless).
func WithEquilibriumConstant(k float64) Option {
	return options.NoError(func(in *Input) {
		in.equilibriumK = k
		in.hasEquilibriumK = true
	})
}
