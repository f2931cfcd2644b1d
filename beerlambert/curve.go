package beerlambert

import (
	"fmt"

	"github.com/lumoslab/physchem/errs"
	"github.com/lumoslab/physchem/regression"
)

// DefaultCurvePoints is the number of points GenerateCurve produces when the
// caller does not ask for a specific count.
const DefaultCurvePoints = 20

// DataPoint is a single (concentration, absorbance) measurement of a standard
// curve. A caller-held slice of DataPoints forms a dataset; the engine only
// reads snapshots of it and never retains one.
type DataPoint struct {
	Concentration float64 // M
	Absorbance    float64 // unitless
}

// GenerateCurve produces the theoretical standard curve A = ε·l·c as numPoints
// evenly spaced concentrations from 0 to maxConcentration inclusive.
//
// Parameters:
//   - epsilon: molar absorptivity in M⁻¹cm⁻¹, must be positive
//   - pathLength: path length in cm, must be positive
//   - maxConcentration: upper end of the curve in M, must be positive
//   - numPoints: number of points; values <= 0 select DefaultCurvePoints,
//     and the count must end up at least 2
//
// The sequence is a pure function of its arguments: regenerating it with the
// same arguments yields the same points.
func GenerateCurve(epsilon, pathLength, maxConcentration float64, numPoints int) ([]DataPoint, error) {
	if err := firstErr(
		positive("epsilon", epsilon),
		positive("path length", pathLength),
		positive("max concentration", maxConcentration),
	); err != nil {
		return nil, err
	}

	if numPoints <= 0 {
		numPoints = DefaultCurvePoints
	}
	if numPoints < 2 {
		return nil, fmt.Errorf("%w: curve needs at least 2 points, got %d", errs.ErrInvalidParameter, numPoints)
	}

	points := make([]DataPoint, numPoints)
	step := maxConcentration / float64(numPoints-1)
	for i := range points {
		conc := float64(i) * step
		if i == numPoints-1 {
			conc = maxConcentration
		}
		points[i] = DataPoint{
			Concentration: conc,
			Absorbance:    epsilon * pathLength * conc,
		}
	}

	return points, nil
}

// StandardCurveFit is the result of fitting measured standard-curve points.
// It embeds the regression statistics; when the path length was supplied the
// derived molar absorptivity ε = slope / l is attached.
type StandardCurveFit struct {
	regression.Result

	// Epsilon is the derived molar absorptivity in M⁻¹cm⁻¹.
	// Only meaningful when HasEpsilon is true.
	Epsilon float64
	// HasEpsilon reports whether Epsilon was derived.
	HasEpsilon bool
}

// FitStandardCurve fits absorbance against concentration by ordinary least
// squares.
//
// Parameters:
//   - points: measured (concentration, absorbance) pairs; all coordinates must
//     be non-negative
//   - pathLength: path length in cm; when positive the derived
//     ε = slope / pathLength is attached to the result, otherwise the path
//     length is treated as unknown and no ε is derived
//
// Returns:
//   - *StandardCurveFit: slope (= ε·l), intercept, R², standard error of the
//     slope, and the optional derived ε
//   - error: regression preconditions (errs.ErrInsufficientData,
//     errs.ErrDegenerateInput) or errs.ErrInvalidParameter for a negative
//     coordinate
func FitStandardCurve(points []DataPoint, pathLength float64) (*StandardCurveFit, error) {
	xy := make([]regression.Point, len(points))
	for i, p := range points {
		if p.Concentration < 0 || p.Absorbance < 0 {
			return nil, fmt.Errorf("%w: point %d: concentration and absorbance must be non-negative", errs.ErrInvalidParameter, i)
		}
		xy[i] = regression.Point{X: p.Concentration, Y: p.Absorbance}
	}

	fit, err := regression.Fit(xy)
	if err != nil {
		return nil, err
	}

	result := &StandardCurveFit{Result: fit}
	if pathLength > 0 {
		result.Epsilon = fit.Slope / pathLength
		result.HasEpsilon = true
	}

	return result, nil
}
