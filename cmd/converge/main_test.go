package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const helloSrc = `
neuron LIF { tau_m = 20 ms }
layer A[4] : LIF
run for 4 ms step 1 ms
seed 1
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prog.cv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCmdCheckSucceedsOnValidProgram(t *testing.T) {
	path := writeTemp(t, helloSrc)
	assert.Equal(t, exitOK, cmdCheck([]string{path}))
}

func TestCmdCheckFailsOnInvalidProgram(t *testing.T) {
	path := writeTemp(t, "neuron LIF tau_m = 20 ms }")
	assert.Equal(t, exitFailure, cmdCheck([]string{path}))
}

func TestCmdCheckUsageErrorOnMissingPath(t *testing.T) {
	assert.Equal(t, exitUsage, cmdCheck(nil))
}

func TestCmdCheckUsageErrorOnMissingFile(t *testing.T) {
	assert.Equal(t, exitUsage, cmdCheck([]string{filepath.Join(t.TempDir(), "nope.cv")}))
}

func TestCmdASTSucceeds(t *testing.T) {
	path := writeTemp(t, helloSrc)
	assert.Equal(t, exitOK, cmdAST([]string{path}))
}

func TestCmdCVIRSucceeds(t *testing.T) {
	path := writeTemp(t, helloSrc)
	assert.Equal(t, exitOK, cmdCVIR([]string{path}))
}

func TestCmdSimWritesOutFile(t *testing.T) {
	path := writeTemp(t, helloSrc)
	outPath := filepath.Join(t.TempDir(), "summary.json")

	assert.Equal(t, exitOK, cmdSim([]string{"--out", outPath, path}))

	b, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"duration_ns"`)
}

func TestCmdSimFailsOnUnvalidatedProgram(t *testing.T) {
	path := writeTemp(t, "neuron LIF { tau_m = 20 ms }\nlayer A[1] : Missing\nrun for 1 ms\n")
	assert.Equal(t, exitFailure, cmdSim([]string{path}))
}
