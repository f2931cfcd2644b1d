package regression

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumoslab/physchem/errs"
)

func TestFit_PerfectLine(t *testing.T) {
	fit, err := Fit([]Point{{0, 0}, {1, 2}, {2, 4}})

	require.NoError(t, err)
	require.Equal(t, 2.0, fit.Slope)
	require.Equal(t, 0.0, fit.Intercept)
	require.Equal(t, 1.0, fit.RSquared)
	require.Equal(t, 0.0, fit.StdError)
}

func TestFit_InterceptAndNoise(t *testing.T) {
	// y = 3x + 1 with a small symmetric perturbation on two points.
	points := []Point{
		{0, 1.0},
		{1, 4.1},
		{2, 7.0},
		{3, 9.9},
		{4, 13.0},
	}

	fit, err := Fit(points)

	require.NoError(t, err)
	require.InDelta(t, 3.0, fit.Slope, 0.05)
	require.InDelta(t, 1.0, fit.Intercept, 0.15)
	require.Greater(t, fit.RSquared, 0.999)
	require.Greater(t, fit.StdError, 0.0)
}

func TestFit_TooFewPoints(t *testing.T) {
	_, err := Fit([]Point{{1, 1}})
	require.ErrorIs(t, err, errs.ErrInsufficientData)

	_, err = Fit(nil)
	require.ErrorIs(t, err, errs.ErrInsufficientData)
}

func TestFit_IdenticalX(t *testing.T) {
	_, err := Fit([]Point{{1, 1}, {1, 2}})
	require.ErrorIs(t, err, errs.ErrDegenerateInput)
}

func TestFit_NonFiniteCoordinate(t *testing.T) {
	_, err := Fit([]Point{{0, 0}, {1, math.NaN()}})
	require.ErrorIs(t, err, errs.ErrInvalidParameter)

	_, err = Fit([]Point{{math.Inf(1), 0}, {1, 2}})
	require.ErrorIs(t, err, errs.ErrInvalidParameter)
}

func TestFit_AllYIdentical(t *testing.T) {
	// SStot = 0: R² is defined as 0 instead of dividing by zero.
	fit, err := Fit([]Point{{0, 5}, {1, 5}, {2, 5}})

	require.NoError(t, err)
	require.Equal(t, 0.0, fit.Slope)
	require.Equal(t, 5.0, fit.Intercept)
	require.Equal(t, 0.0, fit.RSquared)
}

func TestFit_TwoPointsZeroStdError(t *testing.T) {
	// n = 2 leaves no residual degrees of freedom; StdError is defined as 0.
	fit, err := Fit([]Point{{0, 1}, {2, 5}})

	require.NoError(t, err)
	require.Equal(t, 2.0, fit.Slope)
	require.Equal(t, 1.0, fit.Intercept)
	require.Equal(t, 0.0, fit.StdError)
}

func TestResult_At(t *testing.T) {
	fit := Result{Slope: 2, Intercept: 1}
	require.Equal(t, 5.0, fit.At(2))
}

func TestResult_Line(t *testing.T) {
	fit := Result{Slope: 2, Intercept: 0}

	line := fit.Line(0, 1, 5)
	require.Len(t, line, 5)
	require.Equal(t, Point{X: 0, Y: 0}, line[0])
	require.Equal(t, Point{X: 1, Y: 2}, line[4])
	require.InDelta(t, 0.25, line[1].X, 1e-12)
	require.InDelta(t, 0.5, line[1].Y, 1e-12)
}

func TestResult_Line_SmallCounts(t *testing.T) {
	fit := Result{Slope: 1, Intercept: 0}

	require.Nil(t, fit.Line(0, 1, 0))
	require.Equal(t, []Point{{X: 2, Y: 2}}, fit.Line(2, 3, 1))
}
