// Copyright (c) 2026, The Converge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diagnostic defines the span and diagnostic types shared by
// every stage of the Converge front end. A Span is a half-open byte
// range into the original source text; a Diagnostic pairs a message
// with an optional Span so later stages (the CLI, tests) can render a
// caret under the offending source.
package diagnostic

import "fmt"

// Span is a half-open byte range [Start, End) into the source that
// produced it.
type Span struct {
	Start int
	End   int
}

// NewSpan returns a Span covering [start, end).
func NewSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

// Diagnostic is a single reported problem: a message and, where the
// problem can be pinned to source text, the Span of the offending
// bytes.
type Diagnostic struct {
	Message string
	Span    *Span
}

// New returns a Diagnostic with no span.
func New(message string) Diagnostic {
	return Diagnostic{Message: message}
}

// Newf returns a Diagnostic built from a format string, with no span.
func Newf(format string, args ...any) Diagnostic {
	return Diagnostic{Message: fmt.Sprintf(format, args...)}
}

// WithSpan returns a copy of d carrying the given span.
func (d Diagnostic) WithSpan(span Span) Diagnostic {
	d.Span = &span
	return d
}

// Error implements the error interface.
func (d Diagnostic) Error() string {
	if d.Span == nil {
		return d.Message
	}
	return fmt.Sprintf("%s (%d..%d)", d.Message, d.Span.Start, d.Span.End)
}
