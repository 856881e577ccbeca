package simulator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etherealcomputing/converge/parser"
	"github.com/etherealcomputing/converge/simulator"
)

const deterministicSrc = `
neuron LIF { tau_m = 10 ms, v_th = 1.0 }
layer Input[2] : LIF
layer Output[2] : LIF
connect Input -> Output { w = 1.0, d = 1 ms }
stimulus Input = Poisson(rate = 50 Hz)
run for 10 ms step 1 ms
seed 42
`

func TestSimulateIsDeterministic(t *testing.T) {
	prog, err := parser.ParseProgram(deterministicSrc)
	require.NoError(t, err)

	a, err := simulator.Simulate(prog)
	require.NoError(t, err)
	b, err := simulator.Simulate(prog)
	require.NoError(t, err)

	assert.Equal(t, a.TotalSpikes, b.TotalSpikes)
	require.Len(t, a.Layers, 2)
	require.Len(t, b.Layers, 2)
	assert.Equal(t, a.Layers[0].Spikes, b.Layers[0].Spikes)
	assert.Equal(t, a.Layers[1].Spikes, b.Layers[1].Spikes)
}

func TestSimulateReportsDimensions(t *testing.T) {
	prog, err := parser.ParseProgram(deterministicSrc)
	require.NoError(t, err)

	s, err := simulator.Simulate(prog)
	require.NoError(t, err)

	assert.Equal(t, int64(10_000_000), s.DurationNs)
	assert.Equal(t, int64(1_000_000), s.StepNs)
	assert.Equal(t, uint64(42), s.Seed)
}

func TestSimulateMissingRunIsError(t *testing.T) {
	src := `
neuron LIF { tau_m = 10 ms }
layer X[1] : LIF
`
	prog, err := parser.ParseProgram(src)
	require.NoError(t, err)
	_, err = simulator.Simulate(prog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing run statement")
}

func TestSimulateDurationNotDivisibleByStep(t *testing.T) {
	src := `
neuron LIF { tau_m = 10 ms }
layer X[1] : LIF
run for 10 ms step 3 ms
`
	prog, err := parser.ParseProgram(src)
	require.NoError(t, err)
	_, err = simulator.Simulate(prog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "divisible")
}

func TestSimulateDelayNotDivisibleByStep(t *testing.T) {
	src := `
neuron LIF { tau_m = 10 ms }
layer A[1] : LIF
layer B[1] : LIF
connect A -> B { w = 1.0, d = 3 ms }
run for 10 ms step 2 ms
`
	prog, err := parser.ParseProgram(src)
	require.NoError(t, err)
	_, err = simulator.Simulate(prog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delay must be divisible")
}

func TestSimulateNegativeDelayIsError(t *testing.T) {
	src := `
neuron LIF { tau_m = 10 ms }
layer A[1] : LIF
layer B[1] : LIF
connect A -> B { w = 1.0, d = Uniform(-5 ms, -1 ms) }
run for 10 ms step 1 ms
`
	prog, err := parser.ParseProgram(src)
	require.NoError(t, err)
	_, err = simulator.Simulate(prog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative delay")
}

func TestSimulateExcessiveStimulusRateIsError(t *testing.T) {
	src := `
neuron LIF { tau_m = 10 ms }
layer A[1] : LIF
stimulus A = Poisson(rate = 1000 Hz)
run for 100 ms step 100 ms
`
	prog, err := parser.ParseProgram(src)
	require.NoError(t, err)
	_, err = simulator.Simulate(prog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stimulus rate too high")
}

func TestSummaryJSONShape(t *testing.T) {
	prog, err := parser.ParseProgram(deterministicSrc)
	require.NoError(t, err)
	s, err := simulator.Simulate(prog)
	require.NoError(t, err)

	out := simulator.SummaryJSON(s)
	assert.Contains(t, out, `"duration_ns": 10000000,`)
	assert.Contains(t, out, `"seed": 42,`)
	assert.Contains(t, out, `"name": "Input"`)
	assert.Contains(t, out, `"name": "Output"`)
}
