package thermo

import "strings"

// Mode selects which thermodynamic quantity Solve computes.
type Mode int

const (
	// ModeGibbsFreeEnergy computes ΔG = ΔH − TΔS.
	ModeGibbsFreeEnergy Mode = iota
	// ModeEnthalpy computes ΔH = ΔG + TΔS.
	ModeEnthalpy
	// ModeEntropy computes ΔS = (ΔH − ΔG) / T.
	ModeEntropy
	// ModeTemperature computes T = (ΔH − ΔG) / ΔS.
	ModeTemperature
	// ModeEquilibriumConstant computes K = exp(−ΔG/RT).
	ModeEquilibriumConstant
	// ModeGibbsFromK computes ΔG = −RT·ln(K).
	ModeGibbsFromK
)

// modeNames maps Mode to their string representations.
var modeNames = map[Mode]string{
	ModeGibbsFreeEnergy:     "gibbs_free_energy",
	ModeEnthalpy:            "enthalpy",
	ModeEntropy:             "entropy",
	ModeTemperature:         "temperature",
	ModeEquilibriumConstant: "equilibrium_constant",
	ModeGibbsFromK:          "gibbs_from_keq",
}

// modeUnits maps Mode to the units of the computed quantity.
var modeUnits = map[Mode]string{
	ModeGibbsFreeEnergy:     "kJ/mol",
	ModeEnthalpy:            "kJ/mol",
	ModeEntropy:             "J/mol·K",
	ModeTemperature:         "K",
	ModeEquilibriumConstant: "dimensionless",
	ModeGibbsFromK:          "kJ/mol",
}

// modeEquations maps Mode to the human-readable equation it applies.
var modeEquations = map[Mode]string{
	ModeGibbsFreeEnergy:     "ΔG = ΔH - TΔS",
	ModeEnthalpy:            "ΔH = ΔG + TΔS",
	ModeEntropy:             "ΔS = (ΔH - ΔG) / T",
	ModeTemperature:         "T = (ΔH - ΔG) / ΔS",
	ModeEquilibriumConstant: "K = exp(-ΔG/RT)",
	ModeGibbsFromK:          "ΔG = -RT ln(K)",
}

// String returns the string representation of the mode.
func (m Mode) String() string {
	if name, exists := modeNames[m]; exists {
		return name
	}

	return "unknown"
}

// Units returns the units of the quantity the mode solves for.
func (m Mode) Units() string {
	if units, exists := modeUnits[m]; exists {
		return units
	}

	return "unknown"
}

// Equation returns the human-readable equation label for the mode.
func (m Mode) Equation() string {
	if eq, exists := modeEquations[m]; exists {
		return eq
	}

	return "unknown"
}

// modeFromString maps string names to Mode.
var modeFromString = map[string]Mode{
	"gibbs_free_energy":    ModeGibbsFreeEnergy,
	"enthalpy":             ModeEnthalpy,
	"entropy":              ModeEntropy,
	"temperature":          ModeTemperature,
	"equilibrium_constant": ModeEquilibriumConstant,
	"gibbs_from_keq":       ModeGibbsFromK,
}

// ModeFromString returns the Mode for a given string name.
// Returns Mode(-1) for unknown names.
func ModeFromString(name string) Mode {
	if mode, exists := modeFromString[strings.ToLower(name)]; exists {
		return mode
	}

	return Mode(-1)
}
