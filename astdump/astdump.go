// Copyright (c) 2026, The Converge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package astdump renders an ast.Program as an indented, human
// readable tree for the `converge ast` subcommand. It exists purely
// for debugging a source file's parse: the tree it prints is not a
// stable interface the way cvir's JSON is.
package astdump

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/etherealcomputing/converge/ast"
)

// Dump renders program as an indented tree.
func Dump(program ast.Program) string {
	var b strings.Builder
	b.WriteString("Program\n")
	for _, item := range program.Items {
		dumpItem(&b, 1, item)
	}
	return b.String()
}

func dumpItem(b *strings.Builder, depth int, item ast.Item) {
	switch d := item.(type) {
	case ast.NeuronDef:
		line(b, depth, "NeuronDef", "name", d.Name.Name)
		dumpAssigns(b, depth+1, d.Body)
	case ast.LayerDef:
		line(b, depth, "LayerDef", "name", d.Name.Name, "size", fmt.Sprint(d.Size), "neuron", d.Neuron.Name)
	case ast.ConnectDef:
		line(b, depth, "ConnectDef", "src", d.Src.Name, "dst", d.Dst.Name)
		dumpAssigns(b, depth+1, d.Body)
	case ast.StimulusDef:
		line(b, depth, "StimulusDef", "layer", d.Layer.Name)
		dumpStimulusModel(b, depth+1, d.Model)
	case ast.RunStmt:
		fields := []string{"duration", quantityString(d.Duration)}
		if d.Step != nil {
			fields = append(fields, "step", quantityString(*d.Step))
		}
		line(b, depth, "RunStmt", fields...)
	case ast.SeedStmt:
		line(b, depth, "SeedStmt", "value", fmt.Sprint(d.Value))
	default:
		writeIndent(b, depth)
		b.WriteString("UnknownItem\n")
	}
}

func dumpStimulusModel(b *strings.Builder, depth int, model ast.StimulusModel) {
	switch m := model.(type) {
	case ast.PoissonModel:
		line(b, depth, "PoissonModel", "rate", quantityString(m.Rate))
	}
}

func dumpAssigns(b *strings.Builder, depth int, assigns []ast.Assign) {
	for _, a := range assigns {
		line(b, depth, "Assign", fieldLabel(a.Key.Name), exprString(a.Value))
	}
}

func exprString(e ast.Expr) string {
	switch v := e.(type) {
	case ast.NumberExpr:
		return quantityString(v.Quantity)
	case ast.StringExpr:
		return fmt.Sprintf("%q", v.Value)
	case ast.IdentExpr:
		return v.Ident.Name
	case ast.CallExpr:
		parts := make([]string, len(v.Call.Args))
		for i, arg := range v.Call.Args {
			if arg.IsNamed() {
				parts[i] = fmt.Sprintf("%s=%s", arg.Name.Name, exprString(arg.Value))
			} else {
				parts[i] = exprString(arg.Value)
			}
		}
		return fmt.Sprintf("%s(%s)", v.Call.Name.Name, strings.Join(parts, ", "))
	default:
		return "<expr>"
	}
}

func quantityString(q ast.Quantity) string {
	if q.Unit == nil {
		return fmt.Sprintf("%g", q.Value)
	}
	return fmt.Sprintf("%g %s", q.Value, q.Unit.Name)
}

// fieldLabel renders a snake_case source field name (tau_m, v_th) as
// the PascalCase label used in the dump tree, matching how the rest
// of the dump's node names are cased.
func fieldLabel(name string) string {
	return strcase.ToCamel(name)
}

func line(b *strings.Builder, depth int, node string, kv ...string) {
	writeIndent(b, depth)
	b.WriteString(node)
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(b, " %s=%s", kv[i], kv[i+1])
	}
	b.WriteByte('\n')
}

func writeIndent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}
