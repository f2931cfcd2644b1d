package physchem_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumoslab/physchem"
	"github.com/lumoslab/physchem/errs"
	"github.com/lumoslab/physchem/thermo"
)

func TestAbsorbance(t *testing.T) {
	a, err := physchem.Absorbance(55000, 1.0, 1e-6)
	require.NoError(t, err)
	require.InDelta(t, 0.055, a, 1e-12)
}

func TestConcentration_RoundTrip(t *testing.T) {
	a, err := physchem.Absorbance(21000, 0.5, 2e-5)
	require.NoError(t, err)

	c, err := physchem.Concentration(a, 21000, 0.5)
	require.NoError(t, err)
	require.InDelta(t, 2e-5, c, 1e-12)
}

func TestGibbsFreeEnergy(t *testing.T) {
	g, err := physchem.GibbsFreeEnergy(-50, -0.1, 298.15)
	require.NoError(t, err)
	require.InDelta(t, -20.185, g, 1e-9)
}

func TestEquilibriumConstant_RoundTrip(t *testing.T) {
	k, err := physchem.EquilibriumConstant(-10, 298.15)
	require.NoError(t, err)
	require.InDelta(t, math.Exp(10000/(thermo.GasConstant*298.15)), k, 1e-9)

	res, err := thermo.Solve(thermo.ModeGibbsFromK,
		thermo.WithEquilibriumConstant(k),
		thermo.WithTemperature(298.15),
	)
	require.NoError(t, err)
	require.InDelta(t, -10, res.Value, 1e-9)
}

func TestHelpers_PropagateErrors(t *testing.T) {
	_, err := physchem.Concentration(0.5, 0, 1.0)
	require.True(t, errors.Is(err, errs.ErrInvalidParameter))

	_, err = physchem.GibbsFreeEnergy(-50, -0.1, 0)
	require.True(t, errors.Is(err, errs.ErrInvalidParameter))
}

func ExampleGibbsFreeEnergy() {
	g, _ := physchem.GibbsFreeEnergy(-50, -0.1, 298.15)
	fmt.Printf("%.3f kJ/mol\n", g)
	// Output: -20.185 kJ/mol
}
