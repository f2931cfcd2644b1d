package thermo

import (
	"fmt"
	"math"

	"github.com/lumoslab/physchem/errs"
	"github.com/lumoslab/physchem/regression"
)

// Observation is a single (temperature, equilibrium constant) measurement for
// van't Hoff analysis. A caller-held slice of Observations forms a dataset;
// the engine only reads snapshots of it and never retains one.
type Observation struct {
	Temperature float64 // K
	K           float64 // dimensionless
}

// VanHoffResult is the outcome of a van't Hoff analysis.
//
// The fit is ln(K) = −ΔH/R · (1/T) + ΔS/R, so the slope and intercept are
// reported in the transformed (1/T, ln K) coordinates, and the recovered
// thermodynamic parameters are derived from them.
type VanHoffResult struct {
	// Slope of ln(K) versus 1/T, equal to −ΔH/R.
	Slope float64
	// Intercept of the fit, equal to ΔS/R.
	Intercept float64
	// DeltaH is the recovered enthalpy change in kJ/mol.
	DeltaH float64
	// DeltaS is the recovered entropy change in J/mol·K.
	DeltaS float64
	// RSquared is the coefficient of determination of the fit.
	RSquared float64
	// StdError is the standard error of the slope.
	StdError float64
	// Line is the fitted regression line sampled at SweepPoints evenly spaced
	// 1/T values spanning the observed range, for overlay plotting.
	Line []regression.Point
}

// VanHoff performs van't Hoff analysis on temperature-dependent equilibrium
// data.
//
// Parameters:
//   - obs: at least 2 (temperature, K) measurements with all temperatures and
//     equilibrium constants strictly positive
//
// Returns:
//   - *VanHoffResult: fit statistics, recovered ΔH (kJ/mol) and ΔS (J/mol·K),
//     and a SweepPoints-point regression line over the observed 1/T range
//   - error: errs.ErrInsufficientData for fewer than 2 points,
//     errs.ErrInvalidParameter for a non-positive temperature or K, or the
//     regression preconditions (errs.ErrDegenerateInput for identical
//     temperatures)
//
// Example:
//
//	res, err := thermo.VanHoff(obs)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("ΔH = %.2f kJ/mol, ΔS = %.2f J/mol·K (R²=%.4f)\n",
//	    res.DeltaH, res.DeltaS, res.RSquared)
func VanHoff(obs []Observation) (*VanHoffResult, error) {
	if len(obs) < 2 {
		return nil, fmt.Errorf("%w: van't Hoff analysis requires at least 2 points, got %d", errs.ErrInsufficientData, len(obs))
	}

	points := make([]regression.Point, len(obs))
	for i, o := range obs {
		if o.Temperature <= 0 {
			return nil, fmt.Errorf("%w: observation %d: temperature must be positive (> 0 K), got %g", errs.ErrInvalidParameter, i, o.Temperature)
		}
		if o.K <= 0 {
			return nil, fmt.Errorf("%w: observation %d: equilibrium constant must be positive, got %g", errs.ErrInvalidParameter, i, o.K)
		}
		points[i] = regression.Point{X: 1 / o.Temperature, Y: math.Log(o.K)}
	}

	fit, err := regression.Fit(points)
	if err != nil {
		return nil, err
	}

	minX, maxX := points[0].X, points[0].X
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
	}

	return &VanHoffResult{
		Slope:     fit.Slope,
		Intercept: fit.Intercept,
		DeltaH:    -fit.Slope * GasConstant / 1000,
		DeltaS:    fit.Intercept * GasConstant,
		RSquared:  fit.RSquared,
		StdError:  fit.StdError,
		Line:      fit.Line(minX, maxX, SweepPoints),
	}, nil
}
