package beerlambert

import "strings"

// Mode selects which Beer-Lambert quantity Solve computes.
type Mode int

const (
	// ModeAbsorbance computes A = ε·l·c.
	ModeAbsorbance Mode = iota
	// ModeConcentration computes c = A / (ε·l).
	ModeConcentration
	// ModeEpsilon computes ε = A / (l·c).
	ModeEpsilon
	// ModePathLength computes l = A / (ε·c).
	ModePathLength
)

// modeNames maps Mode to their string representations.
var modeNames = map[Mode]string{
	ModeAbsorbance:    "absorbance",
	ModeConcentration: "concentration",
	ModeEpsilon:       "epsilon",
	ModePathLength:    "path_length",
}

// modeUnits maps Mode to the units of the computed quantity.
var modeUnits = map[Mode]string{
	ModeAbsorbance:    "unitless",
	ModeConcentration: "M",
	ModeEpsilon:       "M⁻¹cm⁻¹",
	ModePathLength:    "cm",
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

// modeFromString maps string names to Mode.
var modeFromString = map[string]Mode{
	"absorbance":    ModeAbsorbance,
	"concentration": ModeConcentration,
	"epsilon":       ModeEpsilon,
	"path_length":   ModePathLength,
}

// ModeFromString returns the Mode for a given string name.
// Returns Mode(-1) for unknown names.
func ModeFromString(name string) Mode {
	if mode, exists := modeFromString[strings.ToLower(name)]; exists {
		return mode
	}

	return Mode(-1)
}
