// Package regression provides the ordinary least-squares primitive shared by
// the physchem calculation engines.
//
// Both engines reduce their curve analyses to a straight-line fit of y on x:
// the Beer-Lambert standard curve fits absorbance against concentration, and
// van't Hoff analysis fits ln(K) against 1/T. This package performs that fit
// and reports the statistics the engines derive physical constants from.
//
// # Fitting
//
// Fit uses the standard sums-of-deviation formulas:
//
//	slope     = Σ(x−x̄)(y−ȳ) / Σ(x−x̄)²
//	intercept = ȳ − slope·x̄
//
// along with the coefficient of determination R² = 1 − SSres/SStot and the
// standard error of the slope sqrt(MSE/Σ(x−x̄)²) with MSE = SSres/(n−2).
//
// Two degenerate-but-valid cases are defined rather than failing: R² is 0 when
// all y values are identical (SStot = 0), and the standard error is 0 when
// n = 2 (no residual degrees of freedom).
//
// # Usage
//
//	fit, err := regression.Fit([]regression.Point{{0, 0}, {1, 2}, {2, 4}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("slope=%.2f intercept=%.2f R²=%.4f\n", fit.Slope, fit.Intercept, fit.RSquared)
//
// Fit is a pure function over a snapshot of the caller's points; it retains no
// state, so concurrent calls need no coordination.
package regression
