package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etherealcomputing/converge/ast"
	"github.com/etherealcomputing/converge/parser"
)

const helloSrc = `
neuron LIF {
  tau_m = 20 ms
  v_th = 1.0
}
layer A[10] : LIF
layer B[10] : LIF
connect A -> B {
  weight = 0.5
  delay = 1 ms
}
run for 100 ms step 1 ms
`

func TestParseProgramHello(t *testing.T) {
	prog, err := parser.ParseProgram(helloSrc)
	require.NoError(t, err)
	require.Len(t, prog.Items, 5)

	neuron, ok := prog.Items[0].(ast.NeuronDef)
	require.True(t, ok)
	assert.Equal(t, "LIF", neuron.Name.Name)
	require.Len(t, neuron.Body, 2)

	layerA, ok := prog.Items[1].(ast.LayerDef)
	require.True(t, ok)
	assert.Equal(t, uint64(10), layerA.Size)
	assert.Equal(t, "LIF", layerA.Neuron.Name)

	connect, ok := prog.Items[3].(ast.ConnectDef)
	require.True(t, ok)
	assert.Equal(t, "A", connect.Src.Name)
	assert.Equal(t, "B", connect.Dst.Name)

	run, ok := prog.Items[4].(ast.RunStmt)
	require.True(t, ok)
	require.NotNil(t, run.Step)
	assert.Equal(t, 100.0, run.Duration.Value)
	assert.Equal(t, 1.0, run.Step.Value)
}

func TestParsePoissonStimulus(t *testing.T) {
	src := `
neuron LIF { tau_m = 20 ms }
layer A[5] : LIF
stimulus A = Poisson(rate = 50 Hz)
run for 10 ms
`
	prog, err := parser.ParseProgram(src)
	require.NoError(t, err)

	var found bool
	for _, item := range prog.Items {
		if sd, ok := item.(ast.StimulusDef); ok {
			found = true
			pm, ok := sd.Model.(ast.PoissonModel)
			require.True(t, ok)
			assert.Equal(t, 50.0, pm.Rate.Value)
		}
	}
	assert.True(t, found)
}

func TestParseSeedStmt(t *testing.T) {
	src := `
neuron LIF { tau_m = 20 ms }
layer A[1] : LIF
seed 7
run for 1 ms
`
	prog, err := parser.ParseProgram(src)
	require.NoError(t, err)

	var found bool
	for _, item := range prog.Items {
		if seed, ok := item.(ast.SeedStmt); ok {
			found = true
			assert.Equal(t, uint64(7), seed.Value)
		}
	}
	assert.True(t, found)
}

func TestParsePoissonMissingRateIsError(t *testing.T) {
	src := `
neuron LIF { tau_m = 20 ms }
layer A[1] : LIF
stimulus A = Poisson()
run for 1 ms
`
	_, err := parser.ParseProgram(src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires rate")
}

func TestParseUnknownStimulusModelIsError(t *testing.T) {
	src := `
neuron LIF { tau_m = 20 ms }
layer A[1] : LIF
stimulus A = Gaussian(rate = 1 Hz)
run for 1 ms
`
	_, err := parser.ParseProgram(src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown stimulus model")
}

func TestParseMissingBraceIsError(t *testing.T) {
	_, err := parser.ParseProgram("neuron LIF tau_m = 20 ms }")
	require.Error(t, err)
}

func TestFormatDiagnosticPointsAtSpan(t *testing.T) {
	_, err := parser.ParseProgram("neuron LIF tau_m = 20 ms }")
	require.Error(t, err)
	out := parser.FormatDiagnostic("neuron LIF tau_m = 20 ms }", err)
	assert.Contains(t, out, "error:")
	assert.Contains(t, out, "-->")
	assert.Contains(t, out, "^")
}

func TestParseUnexpectedTopLevelToken(t *testing.T) {
	_, err := parser.ParseProgram("42")
	require.Error(t, err)
}
