package app_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumoslab/physchem/internal/app"
)

func run(t *testing.T, argv ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := app.Run(argv, &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestRun_NoArgsPrintsUsage(t *testing.T) {
	code, out, errOut := run(t)
	require.Equal(t, 0, code)
	require.Contains(t, out, "Usage: physchem")
	require.Empty(t, errOut)
}

func TestRun_UnknownCommand(t *testing.T) {
	code, _, errOut := run(t, "frobnicate")
	require.Equal(t, 2, code)
	require.Contains(t, errOut, `unknown command "frobnicate"`)
}

func TestRun_Beer_Concentration(t *testing.T) {
	code, out, errOut := run(t, "beer", "-mode", "concentration", "-A", "0.055", "-epsilon", "55000", "-l", "1")
	require.Equal(t, 0, code)
	require.Empty(t, errOut)
	require.Equal(t, "concentration = 1e-06 M\n", out)
}

func TestRun_Beer_MissingMode(t *testing.T) {
	code, _, errOut := run(t, "beer", "-A", "0.5")
	require.Equal(t, 2, code)
	require.Contains(t, errOut, "requires -mode")
}

func TestRun_Beer_MissingParameter(t *testing.T) {
	code, _, errOut := run(t, "beer", "-mode", "absorbance", "-epsilon", "55000", "-l", "1")
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "missing parameter")
}

func TestRun_Beer_ZeroEpsilonIsCalcError(t *testing.T) {
	code, _, errOut := run(t, "beer", "-mode", "concentration", "-A", "0.5", "-epsilon", "0", "-l", "1")
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "invalid parameter")
}

func TestRun_Thermo_GibbsAlias(t *testing.T) {
	code, out, errOut := run(t, "thermo", "-mode", "gibbs", "-dH", "-50", "-dS", "-1000", "-T", "300")
	require.Equal(t, 0, code)
	require.Empty(t, errOut)
	require.Contains(t, out, "gibbs_free_energy = 250 kJ/mol\n")
	require.Contains(t, out, "equation: ΔG = ΔH - TΔS\n")
	require.Contains(t, out, "input: T = 300 K\n")
}

func TestRun_Thermo_UnknownMode(t *testing.T) {
	code, _, errOut := run(t, "thermo", "-mode", "volume")
	require.Equal(t, 2, code)
	require.Contains(t, errOut, `unknown thermo mode "volume"`)
}

func TestRun_Thermo_NonPositiveTemperature(t *testing.T) {
	code, _, errOut := run(t, "thermo", "-mode", "keq", "-dG", "-10", "-T", "0")
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "invalid parameter")
}

func TestRun_Curve(t *testing.T) {
	code, out, errOut := run(t, "curve", "-epsilon", "1000", "-l", "1", "-max-conc", "1e-3", "-points", "5")
	require.Equal(t, 0, code)
	require.Empty(t, errOut)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 6)
	require.Equal(t, "concentration_M\tabsorbance", lines[0])
	require.Equal(t, "0\t0", lines[1])
	require.Equal(t, "0.001\t1", lines[5])
}

func TestRun_Sweep_Gibbs(t *testing.T) {
	code, out, _ := run(t, "sweep", "-kind", "gibbs", "-dH", "-50", "-dS", "-100", "-tmin", "200", "-tmax", "400")
	require.Equal(t, 0, code)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 101)
	require.Equal(t, "temperature_K\tgibbs_kJ_per_mol", lines[0])
	require.Equal(t, "200\t-30", lines[1])
	require.Equal(t, "400\t-10", lines[100])
}

func TestRun_Sweep_UnknownKind(t *testing.T) {
	code, _, errOut := run(t, "sweep", "-kind", "entropy")
	require.Equal(t, 2, code)
	require.Contains(t, errOut, `unknown sweep kind "entropy"`)
}

func TestRun_Sweep_BadRange(t *testing.T) {
	code, _, errOut := run(t, "sweep", "-kind", "keq", "-dG", "-10", "-tmin", "400", "-tmax", "200")
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "invalid parameter")
}

func TestRun_Fit_FromCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "standards.csv")
	data := "concentration,absorbance\n0,0\n1,0.5\n2,1\n3,1.5\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	code, out, errOut := run(t, "fit", "-input", path, "-l", "1")
	require.Equal(t, 0, code)
	require.Empty(t, errOut)
	require.Contains(t, out, "points: 4\n")
	require.Contains(t, out, "slope: 0.5\n")
	require.Contains(t, out, "intercept: 0\n")
	require.Contains(t, out, "r_squared: 1\n")
	require.Contains(t, out, "epsilon: 0.5")
}

func TestRun_Fit_MissingInput(t *testing.T) {
	code, _, errOut := run(t, "fit")
	require.Equal(t, 2, code)
	require.Contains(t, errOut, "requires -input")
}

func TestRun_Fit_UnreadableFile(t *testing.T) {
	code, _, errOut := run(t, "fit", "-input", filepath.Join(t.TempDir(), "nope.csv"))
	require.Equal(t, 1, code)
	require.NotEmpty(t, errOut)
}

func TestRun_VanHoff_FromCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keq.csv")
	var sb strings.Builder
	sb.WriteString("temperature,K\n")
	// ln K = -dH/(R·T) + dS/R with dH = -40 kJ/mol, dS = -50 J/mol·K.
	sb.WriteString("280,15.6843\n")
	sb.WriteString("300,4.7466\n")
	sb.WriteString("320,1.7401\n")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o644))

	code, out, errOut := run(t, "vanthoff", "-input", path)
	require.Equal(t, 0, code)
	require.Empty(t, errOut)
	require.Contains(t, out, "observations: 3\n")
	require.Contains(t, out, "delta_H: ")
	require.Contains(t, out, "delta_S: ")
	require.Contains(t, out, "r_squared: ")
}

func TestRun_Help(t *testing.T) {
	code, out, _ := run(t, "help")
	require.Equal(t, 0, code)
	require.Contains(t, out, "Commands:")

	code, out, _ = run(t, "beer", "-h")
	require.Equal(t, 0, code)
	require.Contains(t, out, "Usage: physchem beer")
}
