// Package app wires the physchem subcommands to the engine packages. It is
// deliberately free of os globals: Run takes argv and two writers and
// returns an exit code, which keeps the whole CLI testable in-process.
package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lumoslab/physchem/beerlambert"
	"github.com/lumoslab/physchem/dataset"
	"github.com/lumoslab/physchem/internal/cli"
	"github.com/lumoslab/physchem/thermo"
)

// Exit codes: 0 success, 1 calculation error, 2 usage error.
const (
	exitOK    = 0
	exitCalc  = 1
	exitUsage = 2
)

const usageText = `physchem: Beer-Lambert and thermodynamics calculators

Usage: physchem <command> [flags]

Commands:
  beer      solve A = ε·l·c for one quantity
  thermo    solve ΔG = ΔH - TΔS or ΔG = -RT·ln(K) for one quantity
  curve     generate a theoretical standard curve
  sweep     sweep ΔG or K across a temperature range
  fit       fit a standard curve to measured data from a file
  vanthoff  van't Hoff analysis of (temperature, K) data from a file

Run 'physchem <command> -h' for command flags.
`

// Run executes one subcommand and returns the process exit code.
func Run(argv []string, stdout, stderr io.Writer) int {
	if len(argv) == 0 {
		fmt.Fprint(stdout, usageText)

		return exitOK
	}

	cmd, rest := argv[0], argv[1:]
	switch cmd {
	case "beer":
		return runBeer(rest, stdout, stderr)
	case "thermo":
		return runThermo(rest, stdout, stderr)
	case "curve":
		return runCurve(rest, stdout, stderr)
	case "sweep":
		return runSweep(rest, stdout, stderr)
	case "fit":
		return runFit(rest, stdout, stderr)
	case "vanthoff":
		return runVanHoff(rest, stdout, stderr)
	case "-h", "-help", "--help", "help":
		fmt.Fprint(stdout, usageText)

		return exitOK
	default:
		fmt.Fprintf(stderr, "physchem: unknown command %q\n\n", cmd)
		fmt.Fprint(stderr, usageText)

		return exitUsage
	}
}

// parseFailure converts a flag-parsing error into an exit code, printing
// usage on -h.
func parseFailure(err error, fs *flag.FlagSet, stdout, stderr io.Writer) int {
	if errors.Is(err, flag.ErrHelp) {
		fs.SetOutput(stdout)
		fs.Usage()

		return exitOK
	}
	fmt.Fprintf(stderr, "physchem: %v\n", err)
	fs.SetOutput(stderr)
	fs.Usage()

	return exitUsage
}

func runBeer(argv []string, stdout, stderr io.Writer) int {
	opt, fs, err := cli.ParseBeer(argv)
	if err != nil {
		return parseFailure(err, fs, stdout, stderr)
	}
	if !opt.Has("mode") {
		fmt.Fprintln(stderr, "physchem: beer requires -mode")

		return exitUsage
	}
	mode := beerlambert.ModeFromString(opt.Mode)
	if mode == beerlambert.Mode(-1) {
		fmt.Fprintf(stderr, "physchem: unknown beer mode %q\n", opt.Mode)

		return exitUsage
	}

	var opts []beerlambert.Option
	if opt.Has("A") {
		opts = append(opts, beerlambert.WithAbsorbance(opt.Absorbance))
	}
	if opt.Has("epsilon") {
		opts = append(opts, beerlambert.WithEpsilon(opt.Epsilon))
	}
	if opt.Has("l") {
		opts = append(opts, beerlambert.WithPathLength(opt.PathLength))
	}
	if opt.Has("c") {
		opts = append(opts, beerlambert.WithConcentration(opt.Concentration))
	}

	value, err := beerlambert.Solve(mode, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "physchem: %v\n", err)

		return exitCalc
	}
	fmt.Fprintf(stdout, "%s = %g %s\n", mode, value, mode.Units())

	return exitOK
}

// thermoModeAliases maps the short CLI spellings onto mode names.
var thermoModeAliases = map[string]string{
	"gibbs": "gibbs_free_energy",
	"keq":   "equilibrium_constant",
}

func runThermo(argv []string, stdout, stderr io.Writer) int {
	opt, fs, err := cli.ParseThermo(argv)
	if err != nil {
		return parseFailure(err, fs, stdout, stderr)
	}
	if !opt.Has("mode") {
		fmt.Fprintln(stderr, "physchem: thermo requires -mode")

		return exitUsage
	}
	name := strings.ToLower(opt.Mode)
	if full, ok := thermoModeAliases[name]; ok {
		name = full
	}
	mode := thermo.ModeFromString(name)
	if mode == thermo.Mode(-1) {
		fmt.Fprintf(stderr, "physchem: unknown thermo mode %q\n", opt.Mode)

		return exitUsage
	}

	var opts []thermo.Option
	if opt.Has("dG") {
		opts = append(opts, thermo.WithDeltaG(opt.DeltaG))
	}
	if opt.Has("dH") {
		opts = append(opts, thermo.WithDeltaH(opt.DeltaH))
	}
	if opt.Has("dS") {
		opts = append(opts, thermo.WithDeltaS(opt.DeltaS))
	}
	if opt.Has("T") {
		opts = append(opts, thermo.WithTemperature(opt.Kelvin))
	}
	if opt.Has("celsius") {
		opts = append(opts, thermo.WithTemperatureCelsius(opt.Celsius))
	}
	if opt.Has("K") {
		opts = append(opts, thermo.WithEquilibriumConstant(opt.EquilK))
	}

	res, err := thermo.Solve(mode, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "physchem: %v\n", err)

		return exitCalc
	}

	fmt.Fprintf(stdout, "%s = %g %s\n", res.Mode, res.Value, res.Units)
	fmt.Fprintf(stdout, "equation: %s\n", res.Equation)
	names := make([]string, 0, len(res.Inputs))
	for n := range res.Inputs {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintf(stdout, "input: %s = %s\n", n, res.Inputs[n])
	}

	return exitOK
}

func runCurve(argv []string, stdout, stderr io.Writer) int {
	opt, fs, err := cli.ParseCurve(argv)
	if err != nil {
		return parseFailure(err, fs, stdout, stderr)
	}

	curve, err := beerlambert.GenerateCurve(opt.Epsilon, opt.PathLength, opt.MaxConc, opt.Points)
	if err != nil {
		fmt.Fprintf(stderr, "physchem: %v\n", err)

		return exitCalc
	}

	fmt.Fprintln(stdout, "concentration_M\tabsorbance")
	for _, p := range curve {
		fmt.Fprintf(stdout, "%g\t%g\n", p.Concentration, p.Absorbance)
	}

	return exitOK
}

func runSweep(argv []string, stdout, stderr io.Writer) int {
	opt, fs, err := cli.ParseSweep(argv)
	if err != nil {
		return parseFailure(err, fs, stdout, stderr)
	}

	tr := thermo.Range{Min: opt.TempMin, Max: opt.TempMax}

	var (
		points []thermo.Point
		label  string
	)
	switch opt.Kind {
	case "gibbs":
		points, err = thermo.SweepGibbs(opt.DeltaH, opt.DeltaS, tr)
		label = "gibbs_kJ_per_mol"
	case "keq":
		points, err = thermo.SweepEquilibrium(opt.DeltaG, tr)
		label = "equilibrium_constant"
	default:
		fmt.Fprintf(stderr, "physchem: unknown sweep kind %q\n", opt.Kind)

		return exitUsage
	}
	if err != nil {
		fmt.Fprintf(stderr, "physchem: %v\n", err)

		return exitCalc
	}

	fmt.Fprintf(stdout, "temperature_K\t%s\n", label)
	for _, p := range points {
		fmt.Fprintf(stdout, "%g\t%g\n", p.Temperature, p.Value)
	}

	return exitOK
}

func runFit(argv []string, stdout, stderr io.Writer) int {
	opt, fs, err := cli.ParseFit(argv)
	if err != nil {
		return parseFailure(err, fs, stdout, stderr)
	}
	if opt.Input == "" {
		fmt.Fprintln(stderr, "physchem: fit requires -input")

		return exitUsage
	}

	raw, err := dataset.Read(opt.Input)
	if err != nil {
		fmt.Fprintf(stderr, "physchem: %v\n", err)

		return exitCalc
	}

	fit, err := beerlambert.FitStandardCurve(dataset.StandardCurve(raw), opt.PathLength)
	if err != nil {
		fmt.Fprintf(stderr, "physchem: %v\n", err)

		return exitCalc
	}

	fmt.Fprintf(stdout, "points: %d\n", len(raw))
	fmt.Fprintf(stdout, "slope: %g\n", fit.Slope)
	fmt.Fprintf(stdout, "intercept: %g\n", fit.Intercept)
	fmt.Fprintf(stdout, "r_squared: %g\n", fit.RSquared)
	fmt.Fprintf(stdout, "std_error: %g\n", fit.StdError)
	if fit.HasEpsilon {
		fmt.Fprintf(stdout, "epsilon: %g M⁻¹cm⁻¹\n", fit.Epsilon)
	}

	return exitOK
}

func runVanHoff(argv []string, stdout, stderr io.Writer) int {
	opt, fs, err := cli.ParseVanHoff(argv)
	if err != nil {
		return parseFailure(err, fs, stdout, stderr)
	}
	if opt.Input == "" {
		fmt.Fprintln(stderr, "physchem: vanthoff requires -input")

		return exitUsage
	}

	raw, err := dataset.Read(opt.Input)
	if err != nil {
		fmt.Fprintf(stderr, "physchem: %v\n", err)

		return exitCalc
	}

	res, err := thermo.VanHoff(dataset.Observations(raw))
	if err != nil {
		fmt.Fprintf(stderr, "physchem: %v\n", err)

		return exitCalc
	}

	fmt.Fprintf(stdout, "observations: %d\n", len(raw))
	fmt.Fprintf(stdout, "delta_H: %g kJ/mol\n", res.DeltaH)
	fmt.Fprintf(stdout, "delta_S: %g J/mol·K\n", res.DeltaS)
	fmt.Fprintf(stdout, "slope: %g\n", res.Slope)
	fmt.Fprintf(stdout, "intercept: %g\n", res.Intercept)
	fmt.Fprintf(stdout, "r_squared: %g\n", res.RSquared)
	fmt.Fprintf(stdout, "std_error: %g\n", res.StdError)

	return exitOK
}
