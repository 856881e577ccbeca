// Copyright (c) 2026, The Converge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simulator

import (
	"fmt"
	"math"
)

func sprintf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

// wrap adapts a diagnostic (or any other error) from the units or ast
// packages into a simulator Error, so callers only ever see one error
// type out of Simulate.
func wrap(err error) *Error {
	return &Error{Message: err.Error()}
}

func roundToInt64(f float64) int64 {
	return int64(math.Round(f))
}
