package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newApp(&out).Run(append([]string{"gradtape"}, args...))
	return out.String(), err
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	exitErr, ok := err.(cli.ExitCoder)
	require.True(t, ok, "expected an exit error, got %v", err)
	return exitErr.ExitCode()
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "gradtape "+version+"\n", out)
}

func TestCases(t *testing.T) {
	out, err := run(t, "cases")
	require.NoError(t, err)
	assert.Contains(t, out, "select/rank1-repeat")
	assert.Contains(t, out, "meandim/rank2-axis0")

	out, err = run(t, "cases", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "scalar/rank0\t[]\n")
}

func TestCheck_Selected(t *testing.T) {
	out, err := run(t, "check", "--plain", "--case", "scalar/rank1", "--case", "select/permutation")
	require.NoError(t, err)
	assert.Contains(t, out, "scalar/rank1\t5\t")
	assert.Contains(t, out, "select/permutation\t4\t")
	assert.NotContains(t, out, "FAIL")
}

func TestCheck_AllAsTable(t *testing.T) {
	out, err := run(t, "check", "--parallel", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "chain/mixed")
	assert.Contains(t, out, "passed")
}

func TestCheck_UnknownCase(t *testing.T) {
	_, err := run(t, "check", "--case", "nope")
	assert.Equal(t, 2, exitCode(t, err))
}

func TestCheck_Config(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte("seed: 3\ncases: [meandim/rank1]\n"), 0o600))
	out, err := run(t, "check", "--plain", "--config", good)
	require.NoError(t, err)
	assert.Contains(t, out, "meandim/rank1")
	assert.NotContains(t, out, "scalar/rank0")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("epsilon: -1\n"), 0o600))
	_, err = run(t, "check", "--config", bad)
	assert.Equal(t, 2, exitCode(t, err))

	_, err = run(t, "check", "--parallel", "0")
	assert.Equal(t, 2, exitCode(t, err))
}
