// Copyright (c) 2026, The Converge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ecmd

// String represents a string valued flag.
type String struct {
	Name string
	Desc string
	Val  string
	Def  string
}

// NewString returns a new String flag.
func NewString(name, def, desc string) *String {
	return &String{Name: name, Desc: desc, Val: def, Def: def}
}

// Bool represents a bool valued flag.
type Bool struct {
	Name string
	Desc string
	Val  bool
	Def  bool
}

// NewBool returns a new Bool flag.
func NewBool(name string, def bool, desc string) *Bool {
	return &Bool{Name: name, Desc: desc, Val: def, Def: def}
}
