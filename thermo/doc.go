// Package thermo inverts the Gibbs-Helmholtz and van't Hoff relations for any
// one of six target quantities and analyzes temperature-dependent equilibrium
// data.
//
// Quantities and units:
//   - ΔG: Gibbs free energy change (kJ/mol)
//   - ΔH: enthalpy change (kJ/mol)
//   - ΔS: entropy change (J/mol·K)
//   - T: temperature (K); may be supplied in °C and is derived as K = °C + 273.15
//   - K: equilibrium constant (dimensionless)
//
// Key equations:
//
//	Gibbs-Helmholtz: ΔG = ΔH − TΔS
//	Equilibrium:     ΔG = −RT·ln(K)
//
// with the gas constant R = 8.314 J/(mol·K). ΔS is carried in J/mol·K while
// ΔG and ΔH are in kJ/mol, so the formulas convert with the /1000 factors
// spelled out in each mode's documentation.
//
// # Solving
//
//	res, err := thermo.Solve(thermo.ModeGibbsFreeEnergy,
//	    thermo.WithDeltaH(-50),
//	    thermo.WithDeltaS(-100),
//	    thermo.WithTemperature(298.15),
//	)
//
// Solve validates presence of the mode's required quantities first, then the
// cross-mode domain rules (T > 0 and K > 0 whenever supplied, regardless of
// mode), and only then applies the formula. The Result carries the computed
// value together with display metadata: the units string, the equation label,
// and an echo of the inputs used.
//
// # Temperature input policy
//
// When only °C is given, Kelvin is derived from it. When both are given,
// Kelvin takes precedence and the Celsius value is ignored; this is a
// documented policy, not a silent loss.
//
// # Curve analysis
//
// SweepGibbs and SweepEquilibrium generate 100-point theoretical curves over
// a temperature range for plotting. VanHoff fits ln(K) against 1/T by
// ordinary least squares and recovers ΔH and ΔS from the slope and intercept.
//
// All functions are pure and keep no state between calls.
package thermo
