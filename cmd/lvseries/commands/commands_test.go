package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvseries/cmd/lvseries/commands"
	"github.com/katalvlaran/lvseries/series"
	"github.com/katalvlaran/lvseries/truncate"
)

const (
	onePlusX = `@poly x
@key monomial
@coeff integer
1|0
1|1
`
	geometric = `@poly x
@key monomial
@coeff integer
1|0
1|1
1|2
1|3
`
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))

	return p
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := commands.NewRootCmd()
	root.AddCommand(
		commands.NewMulCmd(),
		commands.NewPowCmd(),
		commands.NewInfoCmd(),
		commands.NewSpectrumCmd(),
		commands.NewBenchCmd(),
	)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return out.String(), err
}

func TestMulWithDegreeFlag(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", onePlusX)
	b := writeFile(t, dir, "b.txt", geometric)

	out, err := run(t, "mul", a, b, "--degree", "3")
	require.NoError(t, err)
	require.Contains(t, out, "1|0\n2|1\n2|2\n")
	require.NotContains(t, out, "|3")
}

func TestMulWithDegreeFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", onePlusX)
	b := writeFile(t, dir, "b.txt", geometric)
	t.Setenv("LVSERIES_TRUNCATE_DEGREE", "2")

	out, err := run(t, "mul", a, b)
	require.NoError(t, err)
	require.Contains(t, out, "1|0\n2|1\n")
	require.NotContains(t, out, "|2\n")
}

func TestMulFromConfigFileToJSON(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", onePlusX)
	b := writeFile(t, dir, "b.txt", geometric)
	conf := writeFile(t, dir, "lvseries.yaml", "algorithm: plain\nthreads: 2\ntruncate:\n  degree: 3\n")
	dst := filepath.Join(dir, "c.json")

	_, err := run(t, "--config", conf, "mul", a, b, "-o", dst)
	require.NoError(t, err)
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Contains(t, string(data), `"coeff":"integer"`)
	require.Contains(t, string(data), `{"c":"2","k":"2"}`)
}

func TestInvalidConfigIsRejected(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", onePlusX)

	_, err := run(t, "pow", a, "2", "--algorithm", "quantum")
	require.Error(t, err)
	require.Contains(t, err.Error(), "algorithm")
}

func TestPow(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", onePlusX)

	out, err := run(t, "pow", a, "4")
	require.NoError(t, err)
	require.Contains(t, out, "1|0\n4|1\n6|2\n4|3\n1|4\n")

	_, err = run(t, "pow", a, "--", "-1")
	require.ErrorIs(t, err, series.ErrNegativePower)
}

func TestInfo(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", geometric)

	out, err := run(t, "info", a, "--degree", "7")
	require.NoError(t, err)
	require.Contains(t, out, "terms")
	require.Contains(t, out, "0..3")
	require.Contains(t, out, "[x]")
	require.True(t, strings.Contains(out, "unbounded"), "minimum degree 0 cannot bound a power series")
}

func TestSpectrum(t *testing.T) {
	base, err := commands.Binomial()
	require.NoError(t, err)
	p, err := series.Pow(context.Background(), base, 4, truncate.None())
	require.NoError(t, err)
	require.Equal(t, []commands.Bin{{Degree: 4, Norm: 16, Terms: 5}}, commands.Spectrum(p))

	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", geometric)
	img := filepath.Join(dir, "spectrum.png")
	out, err := run(t, "spectrum", a, "--png", img)
	require.NoError(t, err)
	require.Equal(t, "0\t1\t1\n1\t1\t1\n2\t1\t1\n3\t1\t1\n", out)
	info, err := os.Stat(img)
	require.NoError(t, err)
	require.Positive(t, info.Size())
}

func TestRunBenchAgreesAcrossAlgorithms(t *testing.T) {
	algs := []series.Algorithm{series.Plain, series.VectorCoded, series.HashCoded}
	res, err := commands.RunBench(context.Background(), 30, algs, series.WithThreads(2))
	require.NoError(t, err)
	require.Len(t, res, len(algs))
	for _, r := range res {
		require.Equal(t, 31, r.Terms, r.Algorithm.String())
	}
}
