package thermo

import (
	"fmt"
	"math"

	"github.com/lumoslab/physchem/errs"
	"github.com/lumoslab/physchem/internal/options"
)

// GasConstant is the universal gas constant R in J/(mol·K).
const GasConstant = 8.314

// Result is the outcome of one Solve call.
//
// Fields:
//   - Value: the computed quantity in the units reported by Units
//   - Mode: the mode the value answers
//   - Units: units string of the computed quantity (static per mode)
//   - Equation: human-readable equation label (static per mode)
//   - Inputs: echo of the input quantities used, formatted with their units
//
// Units, Equation, and Inputs are display metadata for the presentation layer
// and carry no further invariants.
type Result struct {
	Value    float64
	Mode     Mode
	Units    string
	Equation string
	Inputs   map[string]string
}

// Solve computes the quantity selected by mode from the known quantities
// supplied through opts.
//
// Required inputs per mode:
//   - ModeGibbsFreeEnergy: ΔH, ΔS, T
//   - ModeEnthalpy: ΔG, ΔS, T
//   - ModeEntropy: ΔG, ΔH, T
//   - ModeTemperature: ΔG, ΔH, ΔS
//   - ModeEquilibriumConstant: ΔG, T
//   - ModeGibbsFromK: K, T
//
// Validation order: presence of the mode's required quantities
// (errs.ErrMissingParameter) first; then the cross-mode domain rules, applied
// whenever the quantity is present regardless of mode: T > 0 and K > 0
// (errs.ErrInvalidParameter); then the formula. ModeTemperature additionally
// fails with errs.ErrNonPhysicalResult when ΔS = 0 (temperature undefined) or
// when the computed temperature is at or below 0 K.
//
// Example:
//
//	res, err := thermo.Solve(thermo.ModeEquilibriumConstant,
//	    thermo.WithDeltaG(-10),
//	    thermo.WithTemperature(298.15),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("K = %g %s\n", res.Value, res.Units)
func Solve(mode Mode, opts ...Option) (*Result, error) {
	var in Input
	if err := options.Apply(&in, opts...); err != nil {
		return nil, err
	}
	in.deriveKelvin()

	if err := in.validate(mode); err != nil {
		return nil, err
	}

	switch mode {
	case ModeGibbsFreeEnergy:
		return in.solveGibbs(), nil
	case ModeEnthalpy:
		return in.solveEnthalpy(), nil
	case ModeEntropy:
		return in.solveEntropy(), nil
	case ModeTemperature:
		return in.solveTemperature()
	case ModeEquilibriumConstant:
		return in.solveEquilibriumConstant(), nil
	case ModeGibbsFromK:
		return in.solveGibbsFromK(), nil
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownMode, int(mode))
	}
}

// validate checks presence of the mode's required quantities, then the
// cross-mode domain rules for every quantity that is present.
func (in *Input) validate(mode Mode) error {
	var reqs []required
	switch mode {
	case ModeGibbsFreeEnergy:
		reqs = []required{{"ΔH", in.hasDeltaH}, {"ΔS", in.hasDeltaS}, {"T", in.hasTemperatureK}}
	case ModeEnthalpy:
		reqs = []required{{"ΔG", in.hasDeltaG}, {"ΔS", in.hasDeltaS}, {"T", in.hasTemperatureK}}
	case ModeEntropy:
		reqs = []required{{"ΔG", in.hasDeltaG}, {"ΔH", in.hasDeltaH}, {"T", in.hasTemperatureK}}
	case ModeTemperature:
		reqs = []required{{"ΔG", in.hasDeltaG}, {"ΔH", in.hasDeltaH}, {"ΔS", in.hasDeltaS}}
	case ModeEquilibriumConstant:
		reqs = []required{{"ΔG", in.hasDeltaG}, {"T", in.hasTemperatureK}}
	case ModeGibbsFromK:
		reqs = []required{{"K", in.hasEquilibriumK}, {"T", in.hasTemperatureK}}
	default:
		return fmt.Errorf("%w: %d", errs.ErrUnknownMode, int(mode))
	}

	for _, r := range reqs {
		if !r.present {
			return fmt.Errorf("%w: %s is required to calculate %s", errs.ErrMissingParameter, r.name, mode)
		}
	}

	// Cross-mode rules: checked whenever the quantity is present, before any
	// formula runs, regardless of which value is being solved for.
	if in.hasTemperatureK && in.temperatureK <= 0 {
		return fmt.Errorf("%w: temperature must be positive (> 0 K), got %g", errs.ErrInvalidParameter, in.temperatureK)
	}
	if in.hasEquilibriumK && in.equilibriumK <= 0 {
		return fmt.Errorf("%w: equilibrium constant must be positive, got %g", errs.ErrInvalidParameter, in.equilibriumK)
	}

	return nil
}

// required pairs a quantity name with its presence flag for validation.
type required struct {
	name    string
	present bool
}

// solveGibbs computes ΔG = ΔH − T·(ΔS/1000) in kJ/mol.
func (in *Input) solveGibbs() *Result {
	deltaSkJ := in.deltaS / 1000
	value := in.deltaH - in.temperatureK*deltaSkJ

	return in.result(ModeGibbsFreeEnergy, value, "ΔH", "ΔS", "T")
}

// solveEnthalpy computes ΔH = ΔG + T·(ΔS/1000) in kJ/mol.
func (in *Input) solveEnthalpy() *Result {
	deltaSkJ := in.deltaS / 1000
	value := in.deltaG + in.temperatureK*deltaSkJ

	return in.result(ModeEnthalpy, value, "ΔG", "ΔS", "T")
}

// solveEntropy computes ΔS = 1000·(ΔH − ΔG)/T in J/mol·K.
func (in *Input) solveEntropy() *Result {
	value := (in.deltaH - in.deltaG) / in.temperatureK * 1000

	return in.result(ModeEntropy, value, "ΔG", "ΔH", "T")
}

// solveTemperature computes T = (ΔH − ΔG)/(ΔS/1000) in K.
// ΔS = 0 leaves the temperature undefined, and a computed T at or below 0 K
// is not physically meaningful; both fail with ErrNonPhysicalResult.
func (in *Input) solveTemperature() (*Result, error) {
	if in.deltaS == 0 {
		return nil, fmt.Errorf("%w: cannot calculate temperature when ΔS = 0", errs.ErrNonPhysicalResult)
	}

	deltaSkJ := in.deltaS / 1000
	value := (in.deltaH - in.deltaG) / deltaSkJ
	if value <= 0 {
		return nil, fmt.Errorf("%w: calculated temperature %g K is not physically meaningful (≤ 0 K)", errs.ErrNonPhysicalResult, value)
	}

	return in.result(ModeTemperature, value, "ΔG", "ΔH", "ΔS"), nil
}

// solveEquilibriumConstant computes K = exp(−(ΔG·1000)/(R·T)).
func (in *Input) solveEquilibriumConstant() *Result {
	deltaGJ := in.deltaG * 1000
	value := math.Exp(-deltaGJ / (GasConstant * in.temperatureK))

	return in.result(ModeEquilibriumConstant, value, "ΔG", "T")
}

// solveGibbsFromK computes ΔG = −R·T·ln(K)/1000 in kJ/mol.
func (in *Input) solveGibbsFromK() *Result {
	deltaGJ := -GasConstant * in.temperatureK * math.Log(in.equilibriumK)

	return in.result(ModeGibbsFromK, deltaGJ/1000, "K", "T")
}

// result assembles a Result with the mode's static display metadata and an
// echo of the named input quantities.
func (in *Input) result(mode Mode, value float64, inputNames ...string) *Result {
	inputs := make(map[string]string, len(inputNames))
	for _, name := range inputNames {
		switch name {
		case "ΔG":
			inputs[name] = fmt.Sprintf("%g kJ/mol", in.deltaG)
		case "ΔH":
			inputs[name] = fmt.Sprintf("%g kJ/mol", in.deltaH)
		case "ΔS":
			inputs[name] = fmt.Sprintf("%g J/mol·K", in.deltaS)
		case "T":
			inputs[name] = fmt.Sprintf("%g K", in.temperatureK)
		case "K":
			inputs[name] = fmt.Sprintf("%g", in.equilibriumK)
		}
	}

	return &Result{
		Value:    value,
		Mode:     mode,
		Units:    mode.Units(),
		Equation: mode.Equation(),
		Inputs:   inputs,
	}
}
