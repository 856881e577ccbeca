// Copyright (c) 2026, The Converge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import (
	"fmt"
	"strings"

	"github.com/etherealcomputing/converge/diagnostic"
)

// FormatDiagnostic renders err as a caret-annotated error pointing at
// its source line, in the style of a compiler diagnostic. Errors
// without a Span fall back to their bare message.
func FormatDiagnostic(src string, err error) string {
	d, ok := err.(diagnostic.Diagnostic)
	if !ok {
		return err.Error()
	}
	if d.Span == nil {
		return d.Message
	}
	span := *d.Span

	lineStart := 0
	lineNo := 1
	for idx, r := range src {
		if idx >= span.Start {
			break
		}
		if r == '\n' {
			lineNo++
			lineStart = idx + 1
		}
	}

	lineEnd := strings.IndexByte(src[lineStart:], '\n')
	if lineEnd < 0 {
		lineEnd = len(src)
	} else {
		lineEnd += lineStart
	}
	line := src[lineStart:lineEnd]

	col := span.Start - lineStart + 1
	if col < 1 {
		col = 1
	}
	caretLen := span.End - span.Start
	if caretLen < 1 {
		caretLen = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "error: %s\n", d.Message)
	fmt.Fprintf(&b, "  --> line %d, col %d\n", lineNo, col)
	b.WriteString("   |\n")
	fmt.Fprintf(&b, "%3d | %s\n", lineNo, line)
	b.WriteString("   | ")
	for i := 1; i < col; i++ {
		b.WriteByte(' ')
	}
	for i := 0; i < caretLen; i++ {
		b.WriteByte('^')
	}
	b.WriteByte('\n')
	return b.String()
}
