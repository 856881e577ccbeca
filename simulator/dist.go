// Copyright (c) 2026, The Converge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simulator

import (
	"github.com/etherealcomputing/converge/ast"
	"github.com/etherealcomputing/converge/erand"
	"github.com/etherealcomputing/converge/units"
)

// findDist reads the assignment named key out of body, defaulting to
// Const(0) for a time-valued field or Const(1) otherwise when the
// field is absent. isTime controls whether a bare number is parsed as
// a time quantity (and converted to nanoseconds) or a dimensionless
// weight.
func findDist(body []ast.Assign, key string, isTime bool) (erand.Dist, error) {
	for _, a := range body {
		if a.Key.Name == key {
			return distFromExpr(a.Value, isTime)
		}
	}
	if isTime {
		return erand.NewConst(0), nil
	}
	return erand.NewConst(1), nil
}

func distFromExpr(e ast.Expr, isTime bool) (erand.Dist, error) {
	switch v := e.(type) {
	case ast.NumberExpr:
		value, err := quantityToFloat(v.Quantity, isTime)
		if err != nil {
			return erand.Dist{}, err
		}
		return erand.NewConst(value), nil
	case ast.CallExpr:
		if len(v.Call.Args) != 2 {
			return erand.Dist{}, errf("distribution requires two arguments")
		}
		args := make([]float64, 2)
		for i, arg := range v.Call.Args {
			num, ok := arg.Value.(ast.NumberExpr)
			if !ok {
				return erand.Dist{}, errf("distribution arguments must be numbers")
			}
			value, err := quantityToFloat(num.Quantity, isTime)
			if err != nil {
				return erand.Dist{}, err
			}
			args[i] = value
		}
		switch v.Call.Name.Name {
		case "Uniform":
			return erand.NewUniform(args[0], args[1]), nil
		case "Normal":
			return erand.NewNormal(args[0], args[1]), nil
		default:
			return erand.Dist{}, errf("unsupported distribution")
		}
	default:
		return erand.Dist{}, errf("expected number or distribution")
	}
}

func quantityToFloat(q ast.Quantity, isTime bool) (float64, error) {
	if !isTime {
		return q.Value, nil
	}
	ns, err := units.TimeToNanos(q, "delay")
	if err != nil {
		return 0, wrap(err)
	}
	return float64(ns), nil
}
