package thermo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumoslab/physchem/errs"
)

func TestSolve_GibbsFreeEnergy(t *testing.T) {
	res, err := Solve(ModeGibbsFreeEnergy,
		WithDeltaH(-50),
		WithDeltaS(-100),
		WithTemperature(298.15),
	)

	require.NoError(t, err)
	require.InDelta(t, -20.185, res.Value, 1e-9)
	require.Equal(t, ModeGibbsFreeEnergy, res.Mode)
	require.Equal(t, "kJ/mol", res.Units)
	require.Equal(t, "ΔG = ΔH - TΔS", res.Equation)
	require.Equal(t, map[string]string{
		"ΔH": "-50 kJ/mol",
		"ΔS": "-100 J/mol·K",
		"T":  "298.15 K",
	}, res.Inputs)
}

func TestSolve_EnthalpyRoundTrip(t *testing.T) {
	gibbs, err := Solve(ModeGibbsFreeEnergy,
		WithDeltaH(-50), WithDeltaS(-100), WithTemperature(298.15))
	require.NoError(t, err)

	// Feeding {ΔG, ΔS, T} back into enthalpy mode must return ΔH.
	res, err := Solve(ModeEnthalpy,
		WithDeltaG(gibbs.Value), WithDeltaS(-100), WithTemperature(298.15))

	require.NoError(t, err)
	require.InDelta(t, -50, res.Value, 1e-9)
	require.Equal(t, "kJ/mol", res.Units)
	require.Equal(t, "ΔH = ΔG + TΔS", res.Equation)
}

func TestSolve_Entropy(t *testing.T) {
	// ΔS = 1000·(ΔH − ΔG)/T with ΔH=-50, ΔG=-20.185, T=298.15 recovers -100.
	res, err := Solve(ModeEntropy,
		WithDeltaG(-20.185), WithDeltaH(-50), WithTemperature(298.15))

	require.NoError(t, err)
	require.InDelta(t, -100, res.Value, 1e-9)
	require.Equal(t, "J/mol·K", res.Units)
	require.Equal(t, "ΔS = (ΔH - ΔG) / T", res.Equation)
}

func TestSolve_Temperature(t *testing.T) {
	res, err := Solve(ModeTemperature,
		WithDeltaG(-20.185), WithDeltaH(-50), WithDeltaS(-100))

	require.NoError(t, err)
	require.InDelta(t, 298.15, res.Value, 1e-9)
	require.Equal(t, "K", res.Units)
	require.Equal(t, "T = (ΔH - ΔG) / ΔS", res.Equation)
}

func TestSolve_Temperature_ZeroEntropy(t *testing.T) {
	_, err := Solve(ModeTemperature,
		WithDeltaG(-20), WithDeltaH(-50), WithDeltaS(0))

	require.ErrorIs(t, err, errs.ErrNonPhysicalResult)
}

func TestSolve_Temperature_NonPhysical(t *testing.T) {
	// (ΔH − ΔG)/ΔS < 0: the computed temperature is below 0 K.
	_, err := Solve(ModeTemperature,
		WithDeltaG(-20), WithDeltaH(-50), WithDeltaS(100))

	require.ErrorIs(t, err, errs.ErrNonPhysicalResult)
}

func TestSolve_EquilibriumConstantAndBack(t *testing.T) {
	res, err := Solve(ModeEquilibriumConstant,
		WithDeltaG(-10), WithTemperature(298.15))

	require.NoError(t, err)
	wantK := math.Exp(10000 / (GasConstant * 298.15))
	require.InDelta(t, wantK, res.Value, wantK*1e-12)
	require.Equal(t, "dimensionless", res.Units)
	require.Equal(t, "K = exp(-ΔG/RT)", res.Equation)

	// ΔG = −RT·ln(K) must invert back to -10 kJ/mol.
	back, err := Solve(ModeGibbsFromK,
		WithEquilibriumConstant(res.Value), WithTemperature(298.15))

	require.NoError(t, err)
	require.InDelta(t, -10, back.Value, 1e-9)
	require.Equal(t, "kJ/mol", back.Units)
	require.Equal(t, "ΔG = -RT ln(K)", back.Equation)
}

func TestSolve_CelsiusDerivation(t *testing.T) {
	fromKelvin, err := Solve(ModeGibbsFreeEnergy,
		WithDeltaH(-50), WithDeltaS(-100), WithTemperature(298.15))
	require.NoError(t, err)

	fromCelsius, err := Solve(ModeGibbsFreeEnergy,
		WithDeltaH(-50), WithDeltaS(-100), WithTemperatureCelsius(25))
	require.NoError(t, err)

	require.InDelta(t, fromKelvin.Value, fromCelsius.Value, 1e-12)
	require.Equal(t, "298.15 K", fromCelsius.Inputs["T"])
}

func TestSolve_KelvinWinsOverCelsius(t *testing.T) {
	// Both supplied: the kelvin value takes precedence, Celsius is ignored.
	res, err := Solve(ModeGibbsFreeEnergy,
		WithDeltaH(-50), WithDeltaS(-100),
		WithTemperature(300), WithTemperatureCelsius(25))

	require.NoError(t, err)
	require.InDelta(t, -50+300*0.1, res.Value, 1e-12)
	require.Equal(t, "300 K", res.Inputs["T"])
}

func TestSolve_MissingParameter(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		opts []Option
	}{
		{"gibbs without temperature", ModeGibbsFreeEnergy, []Option{WithDeltaH(-50), WithDeltaS(-100)}},
		{"enthalpy without deltaG", ModeEnthalpy, []Option{WithDeltaS(-100), WithTemperature(298.15)}},
		{"entropy without deltaH", ModeEntropy, []Option{WithDeltaG(-20), WithTemperature(298.15)}},
		{"temperature without deltaS", ModeTemperature, []Option{WithDeltaG(-20), WithDeltaH(-50)}},
		{"equilibrium without deltaG", ModeEquilibriumConstant, []Option{WithTemperature(298.15)}},
		{"gibbs-from-K without K", ModeGibbsFromK, []Option{WithTemperature(298.15)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Solve(tt.mode, tt.opts...)
			require.ErrorIs(t, err, errs.ErrMissingParameter)
		})
	}
}

func TestSolve_CrossModeValidation(t *testing.T) {
	// T and K must be positive whenever present, regardless of mode.
	_, err := Solve(ModeGibbsFreeEnergy,
		WithDeltaH(-50), WithDeltaS(-100), WithTemperature(0))
	require.ErrorIs(t, err, errs.ErrInvalidParameter)

	_, err = Solve(ModeGibbsFromK,
		WithEquilibriumConstant(-1), WithTemperature(298.15))
	require.ErrorIs(t, err, errs.ErrInvalidParameter)

	_, err = Solve(ModeEquilibriumConstant,
		WithDeltaG(-10), WithTemperature(-5))
	require.ErrorIs(t, err, errs.ErrInvalidParameter)
}

func TestSolve_UnknownMode(t *testing.T) {
	_, err := Solve(Mode(42))
	require.ErrorIs(t, err, errs.ErrUnknownMode)
}

func TestModeFromString(t *testing.T) {
	require.Equal(t, ModeEntropy, ModeFromString("entropy"))
	require.Equal(t, ModeGibbsFromK, ModeFromString("GIBBS_FROM_KEQ"))
	require.Equal(t, Mode(-1), ModeFromString("fugacity"))
}
