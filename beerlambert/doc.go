// Package beerlambert inverts the Beer-Lambert absorbance law A = ε·l·c for
// any one of its four quantities and analyzes standard-curve data.
//
// Quantities and units:
//   - A: absorbance (unitless optical density)
//   - ε: molar absorptivity (M⁻¹cm⁻¹)
//   - l: optical path length (cm)
//   - c: concentration (M)
//
// # Solving
//
// A request is a sparse set of known quantities plus a Mode selecting the one
// to solve for. The quantities are supplied through functional options:
//
//	conc, err := beerlambert.Solve(beerlambert.ModeConcentration,
//	    beerlambert.WithAbsorbance(0.055),
//	    beerlambert.WithEpsilon(55000),
//	    beerlambert.WithPathLength(1.0),
//	)
//
// Validation runs presence checks first (errs.ErrMissingParameter), then
// domain checks (errs.ErrInvalidParameter): ε, l, and c must be strictly
// positive wherever they are required as known inputs, and A must be
// non-negative. All four modes are exact algebraic inversions; no result is
// ever a NaN or Inf sentinel.
//
// # Curves
//
// GenerateCurve produces a theoretical absorbance-versus-concentration curve
// for plotting, and FitStandardCurve fits measured standard-curve points by
// ordinary least squares, deriving ε from the slope when the path length is
// known.
//
// All functions are pure and keep no state between calls.
package beerlambert
