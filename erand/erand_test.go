package erand_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/etherealcomputing/converge/erand"
)

func TestRngIsDeterministic(t *testing.T) {
	a := erand.NewRng(42)
	b := erand.NewRng(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.NextU64(), b.NextU64())
	}
}

func TestRngDifferentSeedsDiverge(t *testing.T) {
	a := erand.NewRng(1)
	b := erand.NewRng(2)
	assert.NotEqual(t, a.NextU64(), b.NextU64())
}

func TestNextFloat64InUnitInterval(t *testing.T) {
	r := erand.NewRng(7)
	for i := 0; i < 1000; i++ {
		f := r.NextFloat64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}
}

func TestConstructionRngDiffersFromRuntimeRng(t *testing.T) {
	runtime := erand.NewRng(42)
	construction := erand.NewConstructionRng(42)
	assert.NotEqual(t, runtime.NextU64(), construction.NextU64())
}

func TestConstDist(t *testing.T) {
	d := erand.NewConst(3.5)
	r := erand.NewRng(1)
	assert.Equal(t, 3.5, d.Gen(r))
}

func TestUniformDistInRange(t *testing.T) {
	d := erand.NewUniform(2, 4)
	r := erand.NewRng(9)
	for i := 0; i < 100; i++ {
		v := d.Gen(r)
		assert.GreaterOrEqual(t, v, 2.0)
		assert.Less(t, v, 4.0)
	}
}

func TestNormalDistIsDeterministic(t *testing.T) {
	d := erand.NewNormal(0, 1)
	a := d.Gen(erand.NewRng(5))
	b := d.Gen(erand.NewRng(5))
	assert.Equal(t, a, b)
}
