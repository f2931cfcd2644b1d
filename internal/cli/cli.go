// Package cli declares the flag surface of every physchem subcommand and
// parses argv into typed option structs. Parsing is side-effect free:
// flag sets are configured with ContinueOnError and discard their own
// output, so callers decide where usage and errors go.
package cli

import (
	"flag"
	"fmt"
	"io"

	"github.com/lumoslab/physchem/thermo"
)

// Options carries the parsed flags of one subcommand. Float flags cannot
// distinguish "absent" from "zero" on their own, so Set records which flag
// names were explicitly given on the command line.
type Options struct {
	Mode   string
	Kind   string
	Input  string
	Points int

	Absorbance    float64
	Epsilon       float64
	PathLength    float64
	Concentration float64
	MaxConc       float64

	DeltaG  float64
	DeltaH  float64
	DeltaS  float64
	Kelvin  float64
	Celsius float64
	EquilK  float64
	TempMin float64
	TempMax float64

	Set map[string]bool
}

// Has reports whether the named flag was explicitly supplied.
func (o *Options) Has(name string) bool { return o.Set[name] }

// NewFlagSet returns a FlagSet for a physchem subcommand with a usage
// banner in the house style. Output is discarded until the caller
// redirects it.
func NewFlagSet(name, synopsis string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: physchem %s [flags]\n\n  %s\n\nFlags:\n", name, synopsis)
		fs.PrintDefaults()
	}

	return fs
}

// ParseBeer parses flags for the beer subcommand.
func ParseBeer(argv []string) (Options, *flag.FlagSet, error) {
	fs := NewFlagSet("beer", "Solve the Beer-Lambert law A = ε·l·c for one quantity.")

	var opt Options
	fs.StringVar(&opt.Mode, "mode", "", "quantity to solve for: absorbance, concentration, epsilon, path_length")
	fs.Float64Var(&opt.Absorbance, "A", 0, "absorbance (unitless)")
	fs.Float64Var(&opt.Epsilon, "epsilon", 0, "molar absorptivity (M⁻¹cm⁻¹)")
	fs.Float64Var(&opt.PathLength, "l", 0, "path length (cm)")
	fs.Float64Var(&opt.Concentration, "c", 0, "concentration (M)")

	err := parse(fs, argv, &opt)

	return opt, fs, err
}

// ParseThermo parses flags for the thermo subcommand.
func ParseThermo(argv []string) (Options, *flag.FlagSet, error) {
	fs := NewFlagSet("thermo", "Solve ΔG = ΔH - TΔS or ΔG = -RT·ln(K) for one quantity.")

	var opt Options
	fs.StringVar(&opt.Mode, "mode", "", "quantity to solve for: gibbs, enthalpy, entropy, temperature, keq, gibbs_from_keq")
	fs.Float64Var(&opt.DeltaG, "dG", 0, "Gibbs free energy change (kJ/mol)")
	fs.Float64Var(&opt.DeltaH, "dH", 0, "enthalpy change (kJ/mol)")
	fs.Float64Var(&opt.DeltaS, "dS", 0, "entropy change (J/mol·K)")
	fs.Float64Var(&opt.Kelvin, "T", 0, "temperature (K)")
	fs.Float64Var(&opt.Celsius, "celsius", 0, "temperature (°C), used when -T is absent")
	fs.Float64Var(&opt.EquilK, "K", 0, "equilibrium constant (dimensionless)")

	err := parse(fs, argv, &opt)

	return opt, fs, err
}

// ParseCurve parses flags for the curve subcommand.
func ParseCurve(argv []string) (Options, *flag.FlagSet, error) {
	fs := NewFlagSet("curve", "Generate a theoretical standard curve over [0, max-conc].")

	var opt Options
	fs.Float64Var(&opt.Epsilon, "epsilon", 0, "molar absorptivity (M⁻¹cm⁻¹)")
	fs.Float64Var(&opt.PathLength, "l", 0, "path length (cm)")
	fs.Float64Var(&opt.MaxConc, "max-conc", 0, "maximum concentration (M)")
	fs.IntVar(&opt.Points, "points", 0, "number of curve points (0 = default 20)")

	err := parse(fs, argv, &opt)

	return opt, fs, err
}

// ParseSweep parses flags for the sweep subcommand.
func ParseSweep(argv []string) (Options, *flag.FlagSet, error) {
	fs := NewFlagSet("sweep", "Sweep ΔG or K across a temperature range.")

	var opt Options
	fs.StringVar(&opt.Kind, "kind", "gibbs", "quantity to sweep: gibbs or keq")
	fs.Float64Var(&opt.DeltaG, "dG", 0, "Gibbs free energy change (kJ/mol), for -kind keq")
	fs.Float64Var(&opt.DeltaH, "dH", 0, "enthalpy change (kJ/mol), for -kind gibbs")
	fs.Float64Var(&opt.DeltaS, "dS", 0, "entropy change (J/mol·K), for -kind gibbs")
	fs.Float64Var(&opt.TempMin, "tmin", thermo.DefaultRange.Min, "sweep start temperature (K)")
	fs.Float64Var(&opt.TempMax, "tmax", thermo.DefaultRange.Max, "sweep end temperature (K)")

	err := parse(fs, argv, &opt)

	return opt, fs, err
}

// ParseFit parses flags for the fit subcommand.
func ParseFit(argv []string) (Options, *flag.FlagSet, error) {
	fs := NewFlagSet("fit", "Fit a standard curve to (concentration, absorbance) data from a file.")

	var opt Options
	fs.StringVar(&opt.Input, "input", "", "input file (.csv or .xlsx) with concentration and absorbance columns")
	fs.Float64Var(&opt.PathLength, "l", 0, "path length (cm); when given, ε is derived from the slope")

	err := parse(fs, argv, &opt)

	return opt, fs, err
}

// ParseVanHoff parses flags for the vanthoff subcommand.
func ParseVanHoff(argv []string) (Options, *flag.FlagSet, error) {
	fs := NewFlagSet("vanthoff", "Run van't Hoff analysis on (temperature, K) data from a file.")

	var opt Options
	fs.StringVar(&opt.Input, "input", "", "input file (.csv or .xlsx) with temperature (K) and equilibrium-constant columns")

	err := parse(fs, argv, &opt)

	return opt, fs, err
}

func parse(fs *flag.FlagSet, argv []string, opt *Options) error {
	if err := fs.Parse(argv); err != nil {
		return err
	}
	opt.Set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { opt.Set[f.Name] = true })

	return nil
}
