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

package object

import (
	"sync"

	"dirpx.dev/klass/meta"
)

// Descriptor is the resolution descriptor of a class or instance: its name,
// role, parent link and resolved meta-method slots.
//
// Name, role and parent never change after construction. Slots of a class
// descriptor may be updated through Class.SetMeta; slots of an instance
// descriptor are a snapshot fixed at construction.
type Descriptor struct {
	name   string
	role   Role
	parent *Class

	mu    sync.RWMutex
	slots meta.Set
}

// Name returns the class name (for instances, the owning class's name).
// A nil descriptor has no name.
func (d *Descriptor) Name() string {
	if d == nil {
		return ""
	}
	return d.name
}

// Role returns RoleClass or RoleInstance; RolePlain for a nil descriptor.
func (d *Descriptor) Role() Role {
	if d == nil {
		return RolePlain
	}
	return d.role
}

// Parent returns the lookup target's owner: the superclass (or Root) for a
// class, the owning class for an instance.
func (d *Descriptor) Parent() *Class {
	if d == nil {
		return nil
	}
	return d.parent
}

// Target returns the attribute mapping consulted when a direct lookup misses.
func (d *Descriptor) Target() *Table {
	if p := d.Parent(); p != nil {
		return p.attrs
	}
	return nil
}

// Meta returns the resolved value of slot s.
func (d *Descriptor) Meta(s meta.Slot) (any, bool) {
	if d == nil {
		return nil, false
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.slots.Get(s)
}

// Slots returns a copy of the resolved slot set.
func (d *Descriptor) Slots() meta.Set {
	if d == nil {
		return meta.Set{}
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.slots
}

// define replaces slot s and mirrors it into attrs under the write lock.
// A nil v clears both.
func (d *Descriptor) define(s meta.Slot, v any, attrs *Table) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.slots.Put(s, v)
	attrs.Set(s.String(), v)
}
