/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package meta enumerates the meta-method slots recognized by the object model.
//
// The set is closed: every hook the host dispatches automatically has exactly one
// Slot constant. Host spellings ("__add", "__tostring", ...) are mapped to slots at
// the boundary with Parse and never used as lookup keys internally.
package meta

// Slot identifies one meta-method hook.
type Slot uint8

const (
	Add Slot = iota
	Sub
	Mul
	Div
	Mod
	Pow
	Unm
	IDiv
	BAnd
	BOr
	BXor
	Shl
	Shr
	BNot
	Concat
	Len
	Eq
	Lt
	Le
	Index
	NewIndex
	Call
	ToString
	GC
	Mode
	Close
	Name
	Metatable
	Pairs
	IPairs
	// Init is the initializer run by the instance factory.
	Init

	// NumSlots is the size of the slot set. It is not a slot.
	NumSlots
)

// names holds the host spelling of each slot. The array length pins it to NumSlots.
var names = [NumSlots]string{
	Add:       "__add",
	Sub:       "__sub",
	Mul:       "__mul",
	Div:       "__div",
	Mod:       "__mod",
	Pow:       "__pow",
	Unm:       "__unm",
	IDiv:      "__idiv",
	BAnd:      "__band",
	BOr:       "__bor",
	BXor:      "__bxor",
	Shl:       "__shl",
	Shr:       "__shr",
	BNot:      "__bnot",
	Concat:    "__concat",
	Len:       "__len",
	Eq:        "__eq",
	Lt:        "__lt",
	Le:        "__le",
	Index:     "__index",
	NewIndex:  "__newindex",
	Call:      "__call",
	ToString:  "__tostring",
	GC:        "__gc",
	Mode:      "__mode",
	Close:     "__close",
	Name:      "__name",
	Metatable: "__metatable",
	Pairs:     "__pairs",
	IPairs:    "__ipairs",
	Init:      "__init",
}

var byName = func() map[string]Slot {
	m := make(map[string]Slot, NumSlots)
	for i, n := range names {
		m[n] = Slot(i)
	}
	return m
}()

// String returns the host spelling of s, or "" for an out-of-range value.
func (s Slot) String() string {
	if !s.Valid() {
		return ""
	}
	return names[s]
}

// Valid reports whether s names a slot.
func (s Slot) Valid() bool {
	return s < NumSlots
}

// Parse maps a host spelling to its slot.
func Parse(name string) (Slot, bool) {
	s, ok := byName[name]
	return s, ok
}

// All returns every slot in declaration order.
func All() []Slot {
	out := make([]Slot, NumSlots)
	for i := range out {
		out[i] = Slot(i)
	}
	return out
}
