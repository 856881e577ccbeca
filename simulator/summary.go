// Copyright (c) 2026, The Converge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simulator

import "strings"

// SummaryJSON renders s as the 2-space indented JSON document printed
// by the `sim` command and written to the --out file.
func SummaryJSON(s SimSummary) string {
	var b strings.Builder
	b.WriteString("{\n")
	b.WriteString(kvInt64Line("  ", "duration_ns", s.DurationNs))
	b.WriteString(kvInt64Line("  ", "step_ns", s.StepNs))
	b.WriteString(kvUint64Line("  ", "seed", s.Seed))
	b.WriteString(kvUint64Line("  ", "total_spikes", s.TotalSpikes))
	b.WriteString("  \"layers\": [\n")
	for i, layer := range s.Layers {
		b.WriteString("    {\n")
		b.WriteString("      \"name\": \"" + escapeJSON(layer.Name) + "\",\n")
		b.WriteString(kvUint64Line("      ", "size", layer.Size))
		b.WriteString("      \"spikes\": " + uintToString(layer.Spikes) + "\n")
		b.WriteString("    }")
		if i+1 != len(s.Layers) {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("  ]\n")
	b.WriteString("}\n")
	return b.String()
}

func kvInt64Line(indent, key string, v int64) string {
	return indent + "\"" + key + "\": " + intToString(v) + ",\n"
}

func kvUint64Line(indent, key string, v uint64) string {
	return indent + "\"" + key + "\": " + uintToString(v) + ",\n"
}

func intToString(v int64) string {
	return sprintf("%d", v)
}

func uintToString(v uint64) string {
	return sprintf("%d", v)
}

func escapeJSON(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString("\\\"")
		case '\\':
			b.WriteString("\\\\")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
