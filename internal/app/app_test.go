package app_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/psdkit/internal/app"
	"github.com/katalvlaran/psdkit/tablecodec"
)

// run invokes the CLI and returns (exit code, stdout, stderr).
func run(args ...string) (int, string, string) {
	var out, errBuf bytes.Buffer
	code := app.Run(args, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestRun_NoArgs(t *testing.T) {
	code, _, stderr := run()
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "Usage:")
}

func TestRun_UnknownCommand(t *testing.T) {
	code, _, stderr := run("frobnicate")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "unknown command")
}

// TestGenerate_Flags drives a full generate through flags and decodes
// the emitted table.
func TestGenerate_Flags(t *testing.T) {
	code, stdout, stderr := run("generate",
		"--model", "rosin-rammler", "--d50", "15", "--n", "1.4", "--dmax", "60")
	require.Equal(t, 0, code, "stderr: %s", stderr)

	table, err := tablecodec.Decode(stdout)
	require.NoError(t, err)
	assert.Equal(t, 60, table[len(table)-1].Diameter)
	assert.InDelta(t, 1.0, table.Sum(), 1e-9)
}

// TestGenerate_Spec drives generate through a YAML spec file.
func TestGenerate_Spec(t *testing.T) {
	spec := filepath.Join(t.TempDir(), "psd.yaml")
	require.NoError(t, os.WriteFile(spec, []byte("model: log-normal\nmedian: 10\nsigma: 2\n"), 0o644))

	code, stdout, stderr := run("generate", "--spec", spec)
	require.Equal(t, 0, code, "stderr: %s", stderr)

	table, err := tablecodec.Decode(stdout)
	require.NoError(t, err)
	assert.Equal(t, 75, table[len(table)-1].Diameter, "omitted dmax uses the engine default")
}

// TestGenerate_CustomSpec covers the custom-curve YAML surface.
func TestGenerate_CustomSpec(t *testing.T) {
	spec := filepath.Join(t.TempDir(), "curve.yaml")
	content := strings.Join([]string{
		"model: custom",
		"points:",
		"  - {diameter: 0, fraction: 0}",
		"  - {diameter: 10, fraction: 1}",
		"  - {diameter: 30, fraction: 0}",
	}, "\n")
	require.NoError(t, os.WriteFile(spec, []byte(content), 0o644))

	code, stdout, stderr := run("generate", "--spec", spec)
	require.Equal(t, 0, code, "stderr: %s", stderr)

	table, err := tablecodec.Decode(stdout)
	require.NoError(t, err)
	assert.Equal(t, 30, table[len(table)-1].Diameter)
}

// TestGenerate_NeedsModelOrSpec exercises the usage-error branch: no
// parameter source means exit 2 with the flag summary on stderr, never
// a crash.
func TestGenerate_NeedsModelOrSpec(t *testing.T) {
	code, _, stderr := run("generate")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "need --spec or --model")
	assert.Contains(t, stderr, "--d50", "flag summary accompanies the usage error")
}

// TestGenerate_BadParams surfaces engine validation as exit 1.
func TestGenerate_BadParams(t *testing.T) {
	code, _, stderr := run("generate", "--model", "rosin-rammler", "--d50", "-1", "--n", "1.4", "--dmax", "60")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "d50")
}

// TestConvert_RoundTrip converts a mass fraction and feeds the printed
// value back through the inverse command.
func TestConvert_RoundTrip(t *testing.T) {
	code, stdout, stderr := run("convert", "--mass", "0.032", "--sg", "2.74", "--bulk-sg", "3.15")
	require.Equal(t, 0, code, "stderr: %s", stderr)
	volume := strings.TrimSpace(stdout)

	code, stdout, stderr = run("convert", "--volume", volume, "--sg", "2.74", "--bulk-sg", "3.15")
	require.Equal(t, 0, code, "stderr: %s", stderr)

	back, err := strconv.ParseFloat(strings.TrimSpace(stdout), 64)
	require.NoError(t, err)
	assert.InDelta(t, 0.032, back, 1e-9)
}

func TestConvert_NeedsExactlyOneDirection(t *testing.T) {
	code, _, stderr := run("convert", "--sg", "2.74", "--bulk-sg", "3.15")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "exactly one of --mass or --volume")
	assert.Contains(t, stderr, "--bulk-sg", "flag summary accompanies the usage error")

	code, _, _ = run("convert", "--mass", "0.1", "--volume", "0.1", "--sg", "2.74", "--bulk-sg", "3.15")
	assert.Equal(t, 2, code)
}

// TestCheck_NeedsInput exercises check's usage-error branch.
func TestCheck_NeedsInput(t *testing.T) {
	code, _, stderr := run("check")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "need --in")
	assert.Contains(t, stderr, "--renormalize", "flag summary accompanies the usage error")
}

// TestCheck_ValidAndInvalid validates a good table and each broken kind.
func TestCheck_ValidAndInvalid(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.psd")
	require.NoError(t, os.WriteFile(good, []byte("1\t0.25\n2\t0.75\n"), 0o644))
	code, _, _ := run("check", "--in", good)
	assert.Equal(t, 0, code)

	unordered := filepath.Join(dir, "unordered.psd")
	require.NoError(t, os.WriteFile(unordered, []byte("5\t0.5\n3\t0.5\n"), 0o644))
	code, _, stderr := run("check", "--in", unordered)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "out-of-order")
}

// TestCheck_Renormalize repairs a table whose only defect is closure.
func TestCheck_Renormalize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "off.psd")
	require.NoError(t, os.WriteFile(path, []byte("1\t0.4\n2\t0.4\n3\t0.4\n"), 0o644))

	code, _, _ := run("check", "--in", path)
	assert.Equal(t, 1, code, "without --renormalize the defect is fatal")

	code, stdout, stderr := run("check", "--in", path, "--renormalize")
	require.Equal(t, 0, code, "stderr: %s", stderr)
	fixed, err := tablecodec.Decode(stdout)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, fixed.Sum(), 1e-9)
}
