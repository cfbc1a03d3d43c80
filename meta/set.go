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

package meta

// Set holds at most one value per slot. The zero value is an empty set.
//
// Set is a plain value: assigning or passing it copies every slot, which is how
// snapshots are taken. It is not safe for concurrent mutation; owners guard it.
type Set struct {
	vals [NumSlots]any
}

// Get returns the value stored in slot s.
func (m *Set) Get(s Slot) (any, bool) {
	if !s.Valid() {
		return nil, false
	}
	v := m.vals[s]
	return v, v != nil
}

// Put stores v in slot s. A nil v clears the slot.
func (m *Set) Put(s Slot, v any) {
	if !s.Valid() {
		return
	}
	m.vals[s] = v
}

// Inherit fills every slot that is empty in m with the value from parent.
// Slots already present in m win.
func (m *Set) Inherit(parent Set) {
	for i, v := range parent.vals {
		if m.vals[i] == nil {
			m.vals[i] = v
		}
	}
}

// Len returns the number of occupied slots.
func (m *Set) Len() int {
	n := 0
	for _, v := range m.vals {
		if v != nil {
			n++
		}
	}
	return n
}

// Range calls fn for each occupied slot in declaration order until fn returns false.
func (m *Set) Range(fn func(s Slot, v any) bool) {
	for i, v := range m.vals {
		if v == nil {
			continue
		}
		if !fn(Slot(i), v) {
			return
		}
	}
}
