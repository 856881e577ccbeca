// Copyright (c) 2026, The Converge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package erand provides the deterministic pseudo-random source and
// the distribution sum type used to sample synapse weights, delays,
// and stimulus spikes during a simulation run.
//
// Rng is a 64-bit linear congruential generator, not math/rand:
// simulation results must be bit-reproducible across runs and across
// independent implementations of the same algorithm, which rules out
// math/rand's generator (unspecified across Go versions) in favor of
// a fixed, fully-specified recurrence.
//
//   - Dist: a Const/Uniform/Normal sum type sampled with Gen
//   - Rng: the LCG source itself, seeded with NewRng
//   - NewConstructionRng: derives an independent second stream from the
//     same seed, used to keep network-construction sampling (weights,
//     delays) and runtime sampling (stimulus spikes) decorrelated
package erand
