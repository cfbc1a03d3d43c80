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
	"fmt"
	"runtime"

	"github.com/google/uuid"

	"dirpx.dev/klass/meta"
)

// Instance is an instance record: its own attributes plus a descriptor
// linking it to its class and holding a snapshot of the class's meta-methods.
type Instance struct {
	id    uuid.UUID
	attrs *Table
	desc  *Descriptor
}

// Instantiate constructs an instance of c. It snapshots c's resolved slots,
// replaces the call slot with a guard that rejects construction from the
// instance, and runs the __init slot, if defined, with the new instance and
// args. The initializer's result is discarded; its error is returned.
// A defined __init or __gc slot that does not hold a Func fails with
// ErrInvalidOperation before the instance is handed out.
func Instantiate(c *Class, args ...any) (*Instance, error) {
	if c == nil || c.desc == nil || c.desc.role != RoleClass {
		return nil, fmt.Errorf("%w: cannot instantiate %s", ErrInvalidArgument, describe(c))
	}

	d := &Descriptor{name: c.desc.name, role: RoleInstance, parent: c, slots: c.desc.Slots()}
	d.slots.Put(meta.Call, Func(notConstructible))
	inst := &Instance{id: uuid.New(), attrs: NewTable(), desc: d}

	var gc Func
	if h, ok := d.slots.Get(meta.GC); ok {
		fn, ok := asFunc(h)
		if !ok {
			return nil, notCallable(meta.GC, d.name, h)
		}
		gc = fn
	}

	if h, ok := d.slots.Get(meta.Init); ok {
		fn, ok := asFunc(h)
		if !ok {
			return nil, notCallable(meta.Init, d.name, h)
		}
		if _, err := fn(inst, args...); err != nil {
			return nil, fmt.Errorf("klass: %s.__init: %w", d.name, err)
		}
	}

	if gc != nil {
		runtime.SetFinalizer(inst, func(i *Instance) { _, _ = gc(i) })
	}
	if c.hook != nil {
		c.hook(inst)
	}
	return inst, nil
}

func notCallable(s meta.Slot, class string, v any) error {
	return fmt.Errorf("%w: %s of %s is not callable (%T)", ErrInvalidOperation, s, class, v)
}

// notConstructible is the call slot of every instance.
func notConstructible(self any, _ ...any) (any, error) {
	return nil, fmt.Errorf("%w: %s is an instance and cannot be constructed from", ErrInvalidOperation, describe(self))
}

// ID returns the instance's identity.
func (i *Instance) ID() uuid.UUID {
	return i.id
}

// Class returns the owning class.
func (i *Instance) Class() *Class {
	return i.desc.parent
}

// ClassName returns the owning class's name.
func (i *Instance) ClassName() string {
	return i.desc.name
}

// Descriptor returns the instance's resolution descriptor.
func (i *Instance) Descriptor() *Descriptor {
	if i == nil {
		return nil
	}
	return i.desc
}

// Attrs returns the instance's own attribute table.
func (i *Instance) Attrs() *Table {
	return i.attrs
}

// Meta returns the slot value captured at construction.
func (i *Instance) Meta(s meta.Slot) (any, bool) {
	return i.desc.Meta(s)
}

// Get resolves key: own attributes, then the class chain, then the __index hook.
func (i *Instance) Get(key string) (any, bool) {
	if v, ok := i.attrs.Get(key); ok {
		return v, true
	}
	if v, ok := lookupChain(i.desc.parent, key); ok {
		return v, true
	}
	h, _ := i.desc.Meta(meta.Index)
	return index(i, h, key)
}

// Set assigns key. When key is not an own attribute and the instance has a
// __newindex hook, the hook receives the assignment instead.
func (i *Instance) Set(key string, v any) error {
	if i.attrs.Has(key) {
		i.attrs.Set(key, v)
		return nil
	}
	switch h := mustMeta(i.desc, meta.NewIndex).(type) {
	case *Table:
		h.Set(key, v)
		return nil
	case NewIndexFunc:
		return h(i, key, v)
	case func(any, string, any) error:
		return h(i, key, v)
	}
	i.attrs.Set(key, v)
	return nil
}

// RawSet assigns key on the instance's own attributes, bypassing __newindex.
func (i *Instance) RawSet(key string, v any) {
	i.attrs.Set(key, v)
}

// String implements fmt.Stringer with the default instance display.
func (i *Instance) String() string {
	return i.desc.name + ": " + i.id.String()
}

func mustMeta(d *Descriptor, s meta.Slot) any {
	v, _ := d.Meta(s)
	return v
}
