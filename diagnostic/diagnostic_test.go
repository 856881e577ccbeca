package diagnostic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/etherealcomputing/converge/diagnostic"
)

func TestErrorWithoutSpan(t *testing.T) {
	d := diagnostic.New("missing run statement")
	assert.Equal(t, "missing run statement", d.Error())
}

func TestErrorWithSpan(t *testing.T) {
	d := diagnostic.New("unexpected character 'x'").WithSpan(diagnostic.NewSpan(3, 4))
	assert.Equal(t, "unexpected character 'x' (3..4)", d.Error())
}

func TestNewfFormats(t *testing.T) {
	d := diagnostic.Newf("duplicate neuron `%s`", "LIF")
	assert.Equal(t, "duplicate neuron `LIF`", d.Message)
}
