// Copyright (c) 2026, The Converge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package erand

import "math"

// Kind selects which distribution a Dist samples from.
type Kind int32

const (
	// Const always returns A, ignoring the Rng.
	Const Kind = iota
	// Uniform samples in [A, B).
	Uniform
	// Normal samples from a Gaussian with mean A and stddev B.
	Normal
)

// Dist parameterizes random sampling the way RndParams does in the
// wider ecosystem: one struct, dispatched on Kind, rather than a
// separate type per distribution.
type Dist struct {
	Kind Kind
	A    float64
	B    float64
}

// NewConst returns a Dist that always yields value.
func NewConst(value float64) Dist {
	return Dist{Kind: Const, A: value}
}

// NewUniform returns a Dist sampling uniformly over [lo, hi).
func NewUniform(lo, hi float64) Dist {
	return Dist{Kind: Uniform, A: lo, B: hi}
}

// NewNormal returns a Dist sampling a Gaussian with the given mean
// and standard deviation.
func NewNormal(mean, stddev float64) Dist {
	return Dist{Kind: Normal, A: mean, B: stddev}
}

// Gen draws one sample according to d.Kind, advancing rng.
func (d Dist) Gen(rng *Rng) float64 {
	switch d.Kind {
	case Const:
		return d.A
	case Uniform:
		return d.A + (d.B-d.A)*rng.NextFloat64()
	case Normal:
		u1, u2 := rng.NextFloat64(), rng.NextFloat64()
		z0 := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
		return d.A + z0*d.B
	default:
		return d.A
	}
}
