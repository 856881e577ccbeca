// Copyright (c) 2026, The Converge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package units converts a parsed (value, unit) Quantity into one of
// Converge's two canonical dimensions: integer nanoseconds for time,
// or floating-point hertz for rate.
package units

import (
	"math"

	"github.com/etherealcomputing/converge/ast"
	"github.com/etherealcomputing/converge/diagnostic"
)

// TimeToNanos converts q to canonical integer nanoseconds. context
// names the quantity in error messages (e.g. "run duration").
func TimeToNanos(q ast.Quantity, context string) (int64, error) {
	unit, err := requireUnit(q, context)
	if err != nil {
		return 0, err
	}
	var factor float64
	switch unit.Name {
	case "s":
		factor = 1_000_000_000.0
	case "ms":
		factor = 1_000_000.0
	case "us":
		factor = 1_000.0
	case "ns":
		factor = 1.0
	default:
		return 0, diagnostic.Newf("unsupported time unit `%s` for %s", unit.Name, context).
			WithSpan(unit.Span)
	}
	nanos := q.Value * factor
	if !isFinite(nanos) {
		return 0, diagnostic.Newf("invalid time value for %s", context).WithSpan(q.Span)
	}
	return int64(math.Round(nanos)), nil
}

// RateToHz converts q to canonical hertz, preserving floating-point
// precision (no rounding).
func RateToHz(q ast.Quantity, context string) (float64, error) {
	unit, err := requireUnit(q, context)
	if err != nil {
		return 0, err
	}
	var factor float64
	switch unit.Name {
	case "Hz":
		factor = 1.0
	case "kHz":
		factor = 1_000.0
	default:
		return 0, diagnostic.Newf("unsupported rate unit `%s` for %s", unit.Name, context).
			WithSpan(unit.Span)
	}
	hz := q.Value * factor
	if !isFinite(hz) {
		return 0, diagnostic.Newf("invalid rate value for %s", context).WithSpan(q.Span)
	}
	return hz, nil
}

// ExpectTime validates that q converts to a time quantity, discarding
// the result.
func ExpectTime(q ast.Quantity, context string) error {
	_, err := TimeToNanos(q, context)
	return err
}

// ExpectRate validates that q converts to a rate quantity, discarding
// the result.
func ExpectRate(q ast.Quantity, context string) error {
	_, err := RateToHz(q, context)
	return err
}

func requireUnit(q ast.Quantity, context string) (ast.Ident, error) {
	if q.Unit == nil {
		return ast.Ident{}, diagnostic.Newf("missing unit for %s", context).WithSpan(q.Span)
	}
	return *q.Unit, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
