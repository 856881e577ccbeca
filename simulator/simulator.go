// Copyright (c) 2026, The Converge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package simulator runs the discrete-time LIF spiking simulation
// described by a validated ast.Program and produces a SimSummary.
//
// A run proceeds in two phases: construction builds the fixed network
// (layers, per-layer stimulus rates, and sampled synapses) using a
// seeded construction Rng, then the step loop advances the network
// state with a separate runtime Rng. Splitting the two streams means
// adding a stimulus never perturbs the weights and delays sampled for
// an unrelated connection.
//
// Iteration order is always layers in source order, neurons by index,
// and connections in source order, so two runs over the same program
// and seed produce bit-identical summaries.
package simulator

import (
	"github.com/etherealcomputing/converge/ast"
	"github.com/etherealcomputing/converge/erand"
	"github.com/etherealcomputing/converge/units"
)

// defaultStepNs is used when a run statement omits an explicit step.
const defaultStepNs int64 = 1_000_000

// defaultTauMNs is the leak time constant used when a neuron body
// omits tau_m.
const defaultTauMNs int64 = 20_000_000

// defaultVTh is the spike threshold used when a neuron body omits
// v_th.
const defaultVTh float64 = 1.0

// SimSummary is the result of one completed simulation run.
type SimSummary struct {
	DurationNs  int64
	StepNs      int64
	Seed        uint64
	TotalSpikes uint64
	Layers      []LayerSummary
}

// LayerSummary reports the spike count for a single layer.
type LayerSummary struct {
	Name   string
	Size   uint64
	Spikes uint64
}

// Error describes why a simulation could not be constructed or run.
// It is a distinct type (rather than a bare errors.New) so callers
// can distinguish simulation failures from parse/validate failures
// when choosing an exit code.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

func errf(format string, args ...any) *Error {
	return &Error{Message: sprintf(format, args...)}
}

// Simulate constructs the network described by program and runs it to
// completion, returning a summary of spike activity.
func Simulate(program ast.Program) (SimSummary, error) {
	var seed uint64
	for _, item := range program.Items {
		if s, ok := item.(ast.SeedStmt); ok {
			seed = s.Value
		}
	}

	var run *ast.RunStmt
	for _, item := range program.Items {
		if r, ok := item.(ast.RunStmt); ok {
			r := r
			run = &r
		}
	}
	if run == nil {
		return SimSummary{}, errf("missing run statement")
	}

	durationNs, err := units.TimeToNanos(run.Duration, "run duration")
	if err != nil {
		return SimSummary{}, wrap(err)
	}
	stepNs := defaultStepNs
	if run.Step != nil {
		stepNs, err = units.TimeToNanos(*run.Step, "run step")
		if err != nil {
			return SimSummary{}, wrap(err)
		}
	}
	if durationNs <= 0 || stepNs <= 0 {
		return SimSummary{}, errf("duration and step must be positive")
	}
	if durationNs%stepNs != 0 {
		return SimSummary{}, errf("duration must be divisible by step")
	}
	steps := int(durationNs / stepNs)

	neuronDefs := collectNeuronDefs(program)
	layers, layerIndex, err := buildLayers(program, neuronDefs)
	if err != nil {
		return SimSummary{}, err
	}
	stimuli, err := collectStimuli(program, layerIndex)
	if err != nil {
		return SimSummary{}, err
	}
	connections, err := buildConnections(program, layerIndex, layers, stepNs, seed)
	if err != nil {
		return SimSummary{}, err
	}

	rng := erand.NewRng(seed)
	var totalSpikes uint64

	maxDelay := 0
	for _, c := range connections {
		for _, synList := range c.synapses {
			for _, s := range synList {
				if s.delaySteps > maxDelay {
					maxDelay = s.delaySteps
				}
			}
		}
	}
	queueLen := maxDelay + 1

	queues := make([][][]float64, len(layers))
	for i, layer := range layers {
		queues[i] = make([][]float64, queueLen)
		for b := range queues[i] {
			queues[i][b] = make([]float64, layer.size)
		}
	}

	for step := 0; step < steps; step++ {
		bucket := step % queueLen
		spiked := make([][]int, len(layers))

		for layerIdx := range layers {
			layer := &layers[layerIdx]
			incoming := queues[layerIdx][bucket]
			for i := range incoming {
				layer.v[i] += incoming[i]
				incoming[i] = 0.0
			}

			if rateHz, ok := stimuli[layerIdx]; ok {
				p := rateHz * (float64(stepNs) / 1_000_000_000.0)
				if p > 1.0 {
					return SimSummary{}, errf("stimulus rate too high for step")
				}
				for i := 0; i < layer.size; i++ {
					if rng.NextFloat64() < p {
						layer.v[i] += 1.0
					}
				}
			}

			decay := float64(stepNs) / float64(layer.tauMNs)
			for i := 0; i < layer.size; i++ {
				layer.v[i] += -layer.v[i] * decay
				if layer.v[i] >= layer.vTh {
					layer.v[i] = 0.0
					layer.spikes++
					totalSpikes++
					spiked[layerIdx] = append(spiked[layerIdx], i)
				}
			}
		}

		for _, conn := range connections {
			if len(spiked[conn.srcLayer]) == 0 {
				continue
			}
			for _, srcI := range spiked[conn.srcLayer] {
				for _, syn := range conn.synapses[srcI] {
					targetBucket := (bucket + syn.delaySteps) % queueLen
					queues[conn.dstLayer][targetBucket][syn.dst] += syn.weight
				}
			}
		}
	}

	layerSummaries := make([]LayerSummary, len(layers))
	for i, l := range layers {
		layerSummaries[i] = LayerSummary{
			Name:   l.name,
			Size:   uint64(l.size),
			Spikes: l.spikes,
		}
	}

	return SimSummary{
		DurationNs:  durationNs,
		StepNs:      stepNs,
		Seed:        seed,
		TotalSpikes: totalSpikes,
		Layers:      layerSummaries,
	}, nil
}

type layerState struct {
	name    string
	size    int
	tauMNs  int64
	vTh     float64
	v       []float64
	spikes  uint64
}

type synapse struct {
	dst        int
	weight     float64
	delaySteps int
}

type connection struct {
	srcLayer int
	dstLayer int
	synapses [][]synapse
}

func collectNeuronDefs(program ast.Program) map[string]ast.NeuronDef {
	defs := make(map[string]ast.NeuronDef)
	for _, item := range program.Items {
		if d, ok := item.(ast.NeuronDef); ok {
			defs[d.Name.Name] = d
		}
	}
	return defs
}

func buildLayers(program ast.Program, neuronDefs map[string]ast.NeuronDef) ([]layerState, map[string]int, error) {
	var layers []layerState
	index := make(map[string]int)

	for _, item := range program.Items {
		def, ok := item.(ast.LayerDef)
		if !ok {
			continue
		}
		neuron, ok := neuronDefs[def.Neuron.Name]
		if !ok {
			return nil, nil, errf("unknown neuron type `%s`", def.Neuron.Name)
		}
		tauMNs, vTh, err := lifParams(neuron)
		if err != nil {
			return nil, nil, err
		}

		size := int(def.Size)
		index[def.Name.Name] = len(layers)
		layers = append(layers, layerState{
			name:   def.Name.Name,
			size:   size,
			tauMNs: tauMNs,
			vTh:    vTh,
			v:      make([]float64, size),
		})
	}

	return layers, index, nil
}

func lifParams(neuron ast.NeuronDef) (int64, float64, error) {
	tauMNs := defaultTauMNs
	vTh := defaultVTh
	for _, a := range neuron.Body {
		switch a.Key.Name {
		case "tau_m":
			num, ok := a.Value.(ast.NumberExpr)
			if !ok {
				return 0, 0, errf("tau_m must be a time quantity")
			}
			ns, err := units.TimeToNanos(num.Quantity, "tau_m")
			if err != nil {
				return 0, 0, wrap(err)
			}
			if ns <= 0 {
				return 0, 0, errf("tau_m must be positive")
			}
			tauMNs = ns
		case "v_th":
			num, ok := a.Value.(ast.NumberExpr)
			if !ok {
				return 0, 0, errf("v_th must be a number")
			}
			vTh = num.Quantity.Value
		}
	}
	return tauMNs, vTh, nil
}

func collectStimuli(program ast.Program, layerIndex map[string]int) (map[int]float64, error) {
	stimuli := make(map[int]float64)
	for _, item := range program.Items {
		d, ok := item.(ast.StimulusDef)
		if !ok {
			continue
		}
		idx, ok := layerIndex[d.Layer.Name]
		if !ok {
			return nil, errf("unknown stimulus layer `%s`", d.Layer.Name)
		}
		poisson, ok := d.Model.(ast.PoissonModel)
		if !ok {
			return nil, errf("unsupported stimulus model")
		}
		rate, err := units.RateToHz(poisson.Rate, "Poisson rate")
		if err != nil {
			return nil, wrap(err)
		}
		stimuli[idx] += rate
	}
	return stimuli, nil
}

func buildConnections(program ast.Program, layerIndex map[string]int, layers []layerState, stepNs int64, seed uint64) ([]connection, error) {
	rng := erand.NewConstructionRng(seed)
	var connections []connection

	for _, item := range program.Items {
		d, ok := item.(ast.ConnectDef)
		if !ok {
			continue
		}
		srcIdx, ok := layerIndex[d.Src.Name]
		if !ok {
			return nil, errf("unknown source layer `%s`", d.Src.Name)
		}
		dstIdx, ok := layerIndex[d.Dst.Name]
		if !ok {
			return nil, errf("unknown destination layer `%s`", d.Dst.Name)
		}

		weightDist, err := findDist(d.Body, "w", false)
		if err != nil {
			return nil, err
		}
		delayDist, err := findDist(d.Body, "d", true)
		if err != nil {
			return nil, err
		}

		srcSize := layers[srcIdx].size
		dstSize := layers[dstIdx].size
		synapses := make([][]synapse, srcSize)

		for i := range synapses {
			synList := make([]synapse, 0, dstSize)
			for dstI := 0; dstI < dstSize; dstI++ {
				weight := weightDist.Gen(rng)
				delayNs := delayDist.Gen(rng)
				if delayNs < 0 {
					return nil, errf("negative delay is not allowed")
				}
				delayNsI := roundToInt64(delayNs)
				if delayNsI%stepNs != 0 {
					return nil, errf("delay must be divisible by step")
				}
				synList = append(synList, synapse{
					dst:        dstI,
					weight:     weight,
					delaySteps: int(delayNsI / stepNs),
				})
			}
			synapses[i] = synList
		}

		connections = append(connections, connection{
			srcLayer: srcIdx,
			dstLayer: dstIdx,
			synapses: synapses,
		})
	}

	return connections, nil
}
