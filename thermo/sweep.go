package thermo

import (
	"fmt"
	"math"

	"github.com/lumoslab/physchem/errs"
)

// SweepPoints is the number of points each temperature sweep produces.
const SweepPoints = 100

// Range is a closed temperature interval in kelvin.
type Range struct {
	Min float64
	Max float64
}

// DefaultRange is the 200-400 K interval the presentation layer sweeps when
// the user has not picked one.
var DefaultRange = Range{Min: 200, Max: 400}

func (r Range) validate() error {
	if r.Min <= 0 {
		return fmt.Errorf("%w: sweep temperatures must be positive (> 0 K), got min %g", errs.ErrInvalidParameter, r.Min)
	}
	if r.Max <= r.Min {
		return fmt.Errorf("%w: sweep range must satisfy min < max, got [%g, %g]", errs.ErrInvalidParameter, r.Min, r.Max)
	}

	return nil
}

// Point is a single (temperature, value) sample of a sweep. Value is ΔG in
// kJ/mol for SweepGibbs and the dimensionless K for SweepEquilibrium.
type Point struct {
	Temperature float64 // K
	Value       float64
}

// SweepGibbs samples ΔG = ΔH − T·(ΔS/1000) at SweepPoints evenly spaced
// temperatures across the closed interval tr.
//
// Parameters:
//   - deltaH: enthalpy change in kJ/mol
//   - deltaS: entropy change in J/mol·K
//   - tr: temperature interval in K; Min must be positive and below Max
//
// The sequence is a pure function of its arguments and includes both
// endpoints exactly.
func SweepGibbs(deltaH, deltaS float64, tr Range) ([]Point, error) {
	if err := tr.validate(); err != nil {
		return nil, err
	}

	deltaSkJ := deltaS / 1000

	return sweep(tr, func(t float64) float64 {
		return deltaH - t*deltaSkJ
	}), nil
}

// SweepEquilibrium samples K = exp(−(ΔG·1000)/(R·T)) at SweepPoints evenly
// spaced temperatures across the closed interval tr. K can span many orders
// of magnitude over a modest temperature range, so callers typically plot the
// values on a logarithmic scale.
func SweepEquilibrium(deltaG float64, tr Range) ([]Point, error) {
	if err := tr.validate(); err != nil {
		return nil, err
	}

	deltaGJ := deltaG * 1000

	return sweep(tr, func(t float64) float64 {
		return math.Exp(-deltaGJ / (GasConstant * t))
	}), nil
}

// sweep samples fn at SweepPoints evenly spaced temperatures in [tr.Min, tr.Max].
func sweep(tr Range, fn func(t float64) float64) []Point {
	points := make([]Point, SweepPoints)
	step := (tr.Max - tr.Min) / float64(SweepPoints-1)
	for i := range points {
		t := tr.Min + float64(i)*step
		if i == SweepPoints-1 {
			t = tr.Max
		}
		points[i] = Point{Temperature: t, Value: fn(t)}
	}

	return points
}
