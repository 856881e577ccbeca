package astdump_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etherealcomputing/converge/astdump"
	"github.com/etherealcomputing/converge/parser"
)

func TestDumpContainsNodeNames(t *testing.T) {
	src := `
neuron LIF { tau_m = 20 ms }
layer A[10] : LIF
stimulus A = Poisson(rate = 50 Hz)
run for 100 ms step 1 ms
`
	prog, err := parser.ParseProgram(src)
	require.NoError(t, err)

	out := astdump.Dump(prog)
	assert.Contains(t, out, "Program")
	assert.Contains(t, out, "NeuronDef name=LIF")
	assert.Contains(t, out, "LayerDef name=A size=10 neuron=LIF")
	assert.Contains(t, out, "StimulusDef layer=A")
	assert.Contains(t, out, "PoissonModel rate=50 Hz")
	assert.Contains(t, out, "RunStmt duration=100 ms step=1 ms")
}

func TestDumpFieldLabelsAreCamelCase(t *testing.T) {
	src := `
neuron LIF { tau_m = 20 ms }
layer A[1] : LIF
run for 1 ms
`
	prog, err := parser.ParseProgram(src)
	require.NoError(t, err)

	out := astdump.Dump(prog)
	assert.Contains(t, out, "TauM=20 ms")
}
