// Copyright (c) 2026, The Converge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cvir emits the canonical IR: a deterministic, 2-space
// indented JSON document describing a validated ast.Program. Byte
// stability across runs is a load-bearing property — the same
// program must always produce the same bytes — so the document is
// built with a hand-rolled writer rather than encoding/json.
package cvir

import "github.com/etherealcomputing/converge/ast"

const cvirVersion = "0.2"

// Emit renders program as the canonical CVIR JSON document described
// by cvirVersion. Any standalone SeedStmt is folded into the run
// item's "seed" field and does not appear as its own array entry.
func Emit(program ast.Program) string {
	w := newJSONWriter()
	w.objBegin()

	w.kvStr("cvir_version", cvirVersion)
	w.commaNL()
	w.key("items")
	w.arrayBegin()

	var seed uint64
	for _, item := range program.Items {
		if s, ok := item.(ast.SeedStmt); ok {
			seed = s.Value
		}
	}

	first := true
	for _, item := range program.Items {
		if _, ok := item.(ast.SeedStmt); ok {
			continue
		}
		if !first {
			w.comma()
		}
		first = false
		w.nl()
		emitItem(w, item, seed)
	}
	if !first {
		w.nl()
	}
	w.arrayEnd()

	w.nl()
	w.objEnd()
	w.nl()
	return w.finish()
}

func emitItem(w *jsonWriter, item ast.Item, seed uint64) {
	w.objBegin()
	switch d := item.(type) {
	case ast.NeuronDef:
		w.kvStr("kind", "neuron")
		w.commaNL()
		w.kvStr("name", d.Name.Name)
		w.commaNL()
		w.key("body")
		emitAssigns(w, d.Body)
	case ast.LayerDef:
		w.kvStr("kind", "layer")
		w.commaNL()
		w.kvStr("name", d.Name.Name)
		w.commaNL()
		w.kvU64("size", d.Size)
		w.commaNL()
		w.kvStr("neuron", d.Neuron.Name)
	case ast.ConnectDef:
		w.kvStr("kind", "connect")
		w.commaNL()
		w.kvStr("src", d.Src.Name)
		w.commaNL()
		w.kvStr("dst", d.Dst.Name)
		w.commaNL()
		w.key("body")
		emitAssigns(w, d.Body)
	case ast.StimulusDef:
		w.kvStr("kind", "stimulus")
		w.commaNL()
		w.kvStr("layer", d.Layer.Name)
		w.commaNL()
		w.key("model")
		emitStimulusModel(w, d.Model)
	case ast.RunStmt:
		w.kvStr("kind", "run")
		w.commaNL()
		w.key("duration")
		emitQuantity(w, d.Duration)
		w.commaNL()
		w.key("step")
		if d.Step != nil {
			emitQuantity(w, *d.Step)
		} else {
			emitQuantityValue(w, 1.0, strPtr("ms"))
		}
		w.commaNL()
		w.kvU64("seed", seed)
	}
	w.objEnd()
}

func emitStimulusModel(w *jsonWriter, model ast.StimulusModel) {
	w.objBegin()
	switch m := model.(type) {
	case ast.PoissonModel:
		w.kvStr("type", "poisson")
		w.commaNL()
		w.key("rate")
		emitQuantity(w, m.Rate)
	}
	w.objEnd()
}

func emitAssigns(w *jsonWriter, assigns []ast.Assign) {
	w.arrayBegin()
	for i, a := range assigns {
		if i != 0 {
			w.comma()
		}
		w.nl()
		w.objBegin()
		w.kvStr("key", a.Key.Name)
		w.commaNL()
		w.key("value")
		emitExpr(w, a.Value)
		w.objEnd()
	}
	if len(assigns) != 0 {
		w.nl()
	}
	w.arrayEnd()
}

func emitExpr(w *jsonWriter, e ast.Expr) {
	switch v := e.(type) {
	case ast.NumberExpr:
		emitQuantity(w, v.Quantity)
	case ast.StringExpr:
		w.str(v.Value)
	case ast.IdentExpr:
		w.objBegin()
		w.kvStr("ident", v.Ident.Name)
		w.objEnd()
	case ast.CallExpr:
		w.objBegin()
		w.kvStr("call", v.Call.Name.Name)
		w.commaNL()
		w.key("args")
		w.arrayBegin()
		for i, arg := range v.Call.Args {
			if i != 0 {
				w.comma()
			}
			w.nl()
			if arg.IsNamed() {
				w.objBegin()
				w.kvStr("name", arg.Name.Name)
				w.commaNL()
				w.key("value")
				emitExpr(w, arg.Value)
				w.objEnd()
			} else {
				emitExpr(w, arg.Value)
			}
		}
		if len(v.Call.Args) != 0 {
			w.nl()
		}
		w.arrayEnd()
		w.objEnd()
	}
}

func emitQuantity(w *jsonWriter, q ast.Quantity) {
	var unit *string
	if q.Unit != nil {
		unit = strPtr(q.Unit.Name)
	}
	emitQuantityValue(w, q.Value, unit)
}

func emitQuantityValue(w *jsonWriter, value float64, unit *string) {
	w.objBegin()
	w.kvF64("value", value)
	if unit != nil {
		w.commaNL()
		w.kvStr("unit", *unit)
	}
	w.objEnd()
}

func strPtr(s string) *string { return &s }
