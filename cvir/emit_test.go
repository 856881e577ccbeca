package cvir_test

import (
	"testing"

	"github.com/andreyvit/diff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etherealcomputing/converge/cvir"
	"github.com/etherealcomputing/converge/parser"
)

func TestEmitIsDeterministic(t *testing.T) {
	src := `
neuron LIF { tau_m = 20 ms }
layer A[10] : LIF
layer B[10] : LIF
connect A -> B { w = 0.5, d = 1 ms }
run for 100 ms step 1 ms
seed 42
`
	prog, err := parser.ParseProgram(src)
	require.NoError(t, err)

	a := cvir.Emit(prog)
	b := cvir.Emit(prog)
	assert.Equal(t, a, b)
	assert.Contains(t, a, `"cvir_version": "0.2"`)
}

func TestEmitFoldsSeedIntoRun(t *testing.T) {
	src := `
neuron LIF { tau_m = 20 ms }
layer A[1] : LIF
seed 7
run for 1 ms
`
	prog, err := parser.ParseProgram(src)
	require.NoError(t, err)
	out := cvir.Emit(prog)

	assert.Contains(t, out, `"seed": 7`)
	assert.NotContains(t, out, `"kind": "seed"`)
}

func TestEmitDefaultsStepWhenAbsent(t *testing.T) {
	src := `
neuron LIF { tau_m = 20 ms }
layer A[1] : LIF
run for 5 ms
`
	prog, err := parser.ParseProgram(src)
	require.NoError(t, err)
	out := cvir.Emit(prog)
	assert.Contains(t, out, "\"step\": {\n        \"value\": 1,\n        \"unit\": \"ms\"\n      }")
}

func TestEmitStimulusModel(t *testing.T) {
	src := `
neuron LIF { tau_m = 20 ms }
layer A[1] : LIF
stimulus A = Poisson(rate = 50 Hz)
run for 1 ms
`
	prog, err := parser.ParseProgram(src)
	require.NoError(t, err)
	out := cvir.Emit(prog)
	assert.Contains(t, out, `"type": "poisson"`)
	assert.Contains(t, out, `"unit": "Hz"`)
}

func TestEmitMinimalProgramExactBytes(t *testing.T) {
	src := `
neuron LIF { tau_m = 20 ms }
layer A[1] : LIF
run for 1 ms
seed 9
`
	prog, err := parser.ParseProgram(src)
	require.NoError(t, err)
	out := cvir.Emit(prog)

	want := `{
  "cvir_version": "0.2",
  "items": [
    {
      "kind": "neuron",
      "name": "LIF",
      "body": [
        {
          "key": "tau_m",
          "value": {
            "value": 20,
            "unit": "ms"
          }
        }
      ]
    },
    {
      "kind": "layer",
      "name": "A",
      "size": 1,
      "neuron": "LIF"
    },
    {
      "kind": "run",
      "duration": {
        "value": 1,
        "unit": "ms"
      },
      "step": {
        "value": 1,
        "unit": "ms"
      },
      "seed": 9
    }
  ]
}
`
	if out != want {
		t.Errorf("cvir output mismatch:\n%s", diff.LineDiff(want, out))
	}
}
