// Package physchem provides unit-aware calculators for two physical-chemistry
// relationships: the Beer-Lambert absorbance law and the Gibbs-Helmholtz /
// van't Hoff thermodynamic relations.
//
// The module is aimed at laboratory scientists doing quick parameter
// inversions and curve fitting: every engine operation is a stateless pure
// function that validates its inputs and returns a typed result or a
// classified error, never a NaN or Inf sentinel.
//
// # Packages
//
//   - beerlambert: inverts A = ε·l·c for any quantity, generates theoretical
//     standard curves, and fits measured (concentration, absorbance) data
//   - thermo: inverts ΔG = ΔH − TΔS and ΔG = −RT·ln(K) for six target
//     quantities, sweeps ΔG and K against temperature, and performs van't
//     Hoff analysis
//   - regression: the shared ordinary-least-squares primitive
//   - dataset: loads (x, y) tables from .xlsx and .csv files
//   - errs: the sentinel error taxonomy, matched with errors.Is
//
// # Quick Calculations
//
// This package wraps the most common one-shot calculations so simple callers
// can avoid assembling a request:
//
//	a, err := physchem.Absorbance(55000, 1.0, 1e-6) // 0.055
//	k, err := physchem.EquilibriumConstant(-10, 298.15)
//
// For the full mode set, sweeps, and curve fitting, use the beerlambert and
// thermo packages directly.
package physchem

import (
	"github.com/lumoslab/physchem/beerlambert"
	"github.com/lumoslab/physchem/thermo"
)

// Absorbance computes A = ε·l·c.
func Absorbance(epsilon, pathLength, concentration float64) (float64, error) {
	return beerlambert.Solve(beerlambert.ModeAbsorbance,
		beerlambert.WithEpsilon(epsilon),
		beerlambert.WithPathLength(pathLength),
		beerlambert.WithConcentration(concentration),
	)
}

// Concentration computes c = A / (ε·l).
func Concentration(absorbance, epsilon, pathLength float64) (float64, error) {
	return beerlambert.Solve(beerlambert.ModeConcentration,
		beerlambert.WithAbsorbance(absorbance),
		beerlambert.WithEpsilon(epsilon),
		beerlambert.WithPathLength(pathLength),
	)
}

// GibbsFreeEnergy computes ΔG = ΔH − TΔS in kJ/mol, with ΔH in kJ/mol,
// ΔS in J/mol·K, and the temperature in kelvin.
func GibbsFreeEnergy(deltaH, deltaS, temperature float64) (float64, error) {
	res, err := thermo.Solve(thermo.ModeGibbsFreeEnergy,
		thermo.WithDeltaH(deltaH),
		thermo.WithDeltaS(deltaS),
		thermo.WithTemperature(temperature),
	)
	if err != nil {
		return 0, err
	}

	return res.Value, nil
}

// EquilibriumConstant computes K = exp(−ΔG/RT), with ΔG in kJ/mol and the
// temperature in kelvin.
func EquilibriumConstant(deltaG, temperature float64) (float64, error) {
	res, err := thermo.Solve(thermo.ModeEquilibriumConstant,
		thermo.WithDeltaG(deltaG),
		thermo.WithTemperature(temperature),
	)
	if err != nil {
		return 0, err
	}

	return res.Value, nil
}
