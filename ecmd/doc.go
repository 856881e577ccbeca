// Copyright (c) 2026, The Converge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ecmd provides typed command-line flag handling for the
// converge binary's subcommands.
package ecmd
