package regression

import (
	"fmt"
	"math"

	"github.com/lumoslab/physchem/errs"
)

// Point is a single (x, y) observation.
type Point struct {
	X float64
	Y float64
}

// Result holds the outcome of an ordinary least-squares fit of y on x.
//
// Fields:
//   - Slope: fitted slope of the line y = slope·x + intercept
//   - Intercept: fitted y-intercept
//   - RSquared: coefficient of determination (0-1); 0 when all y are identical
//   - StdError: standard error of the slope; 0 when the fit has exactly 2 points
type Result struct {
	Slope     float64
	Intercept float64
	RSquared  float64
	StdError  float64
}

// Fit performs an ordinary least-squares fit of y on x.
//
// Parameters:
//   - points: the (x, y) observations; at least 2, with at least two distinct
//     x values, and every coordinate finite
//
// Returns:
//   - Result: slope, intercept, R², and standard error of the slope
//   - error: errs.ErrInsufficientData for fewer than 2 points,
//     errs.ErrInvalidParameter for a NaN or infinite coordinate,
//     errs.ErrDegenerateInput when all x values are identical
//
// Example:
//
//	fit, err := regression.Fit(points)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	epsilon := fit.Slope / pathLength
func Fit(points []Point) (Result, error) {
	n := len(points)
	if n < 2 {
		return Result{}, fmt.Errorf("%w: regression requires at least 2 points, got %d", errs.ErrInsufficientData, n)
	}

	var sumX, sumY float64
	for i, p := range points {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return Result{}, fmt.Errorf("%w: point %d is not finite", errs.ErrInvalidParameter, i)
		}
		sumX += p.X
		sumY += p.Y
	}

	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var sxx, sxy float64
	for _, p := range points {
		dx := p.X - meanX
		sxx += dx * dx
		sxy += dx * (p.Y - meanY)
	}

	if sxx == 0 {
		return Result{}, fmt.Errorf("%w: all x values are identical", errs.ErrDegenerateInput)
	}

	slope := sxy / sxx
	intercept := meanY - slope*meanX

	var ssRes, ssTot float64
	for _, p := range points {
		resid := p.Y - (slope*p.X + intercept)
		ssRes += resid * resid
		dy := p.Y - meanY
		ssTot += dy * dy
	}

	rSquared := 0.0
	if ssTot != 0 {
		rSquared = 1 - ssRes/ssTot
	}

	stdError := 0.0
	if n > 2 {
		mse := ssRes / float64(n-2)
		stdError = math.Sqrt(mse / sxx)
	}

	return Result{
		Slope:     slope,
		Intercept: intercept,
		RSquared:  rSquared,
		StdError:  stdError,
	}, nil
}

// At returns the fitted value slope·x + intercept.
func (r Result) At(x float64) float64 {
	return r.Slope*x + r.Intercept
}

// Line samples the fitted line at n evenly spaced x values across the closed
// interval [x0, x1]. The first point lands exactly on x0 and the last exactly
// on x1. It returns nil when n <= 0 and a single point at x0 when n == 1.
//
// The engines use this to produce overlay sequences for plotting, e.g. the
// 100-point regression line of a van't Hoff analysis.
func (r Result) Line(x0, x1 float64, n int) []Point {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []Point{{X: x0, Y: r.At(x0)}}
	}

	points := make([]Point, n)
	step := (x1 - x0) / float64(n-1)
	for i := range points {
		x := x0 + float64(i)*step
		if i == n-1 {
			x = x1
		}
		points[i] = Point{X: x, Y: r.At(x)}
	}

	return points
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
