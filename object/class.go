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

	"dirpx.dev/klass/meta"
)

// Class is a class record: an attribute table plus a descriptor linking it
// to its superclass.
type Class struct {
	attrs *Table
	// desc is nil only for Root.
	desc *Descriptor
	// hook runs after each successful construction of a direct instance.
	hook func(*Instance)
}

// Root is the implicit top of every inheritance chain. Its only meta-method
// is the call hook that routes a class in construction position to
// Instantiate. It has no descriptor and no name.
var Root = &Class{attrs: NewTable()}

// rootSlots holds Root's meta-methods; Root has no descriptor to carry them.
var rootSlots meta.Set

func init() {
	rootSlots.Put(meta.Call, Func(construct))
}

// construct is Root's call hook.
func construct(self any, args ...any) (any, error) {
	c, ok := self.(*Class)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a class", ErrInvalidOperation, describe(self))
	}
	return Instantiate(c, args...)
}

// ClassOption configures a class record at construction.
type ClassOption func(*Class)

// WithMeta defines slot s on the new class before inheritance is resolved,
// so it overrides whatever the superclass provides.
func WithMeta(s meta.Slot, v any) ClassOption {
	return func(c *Class) {
		if !s.Valid() {
			return
		}
		c.desc.slots.Put(s, v)
		if v != nil {
			c.attrs.Set(s.String(), v)
		}
	}
}

// WithInstanceHook registers fn to run after each instance of the class is
// constructed and initialized.
func WithInstanceHook(fn func(*Instance)) ClassOption {
	return func(c *Class) {
		c.hook = fn
	}
}

// NewClass builds a class record named name whose superclass is parent
// (Root when nil). Every slot not set through options is copied from the
// parent's resolved slots once, here; later changes to the parent's
// meta-methods are not seen by the new class.
//
// NewClass does not validate or register the name; see the builder package.
func NewClass(name string, parent *Class, opts ...ClassOption) *Class {
	if parent == nil {
		parent = Root
	}
	c := &Class{
		attrs: NewTable(),
		desc:  &Descriptor{name: name, role: RoleClass, parent: parent},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.desc.slots.Inherit(parent.Slots())
	return c
}

// IsRoot reports whether c is the root class.
func (c *Class) IsRoot() bool {
	return c == Root
}

// Name returns the class name; "" for Root.
func (c *Class) Name() string {
	if c == nil {
		return ""
	}
	return c.desc.Name()
}

// Super returns the explicit superclass, or nil when the parent is Root.
func (c *Class) Super() *Class {
	p := c.parent()
	if p == nil || p.IsRoot() {
		return nil
	}
	return p
}

// Descriptor returns the class's resolution descriptor; nil for Root.
func (c *Class) Descriptor() *Descriptor {
	if c == nil {
		return nil
	}
	return c.desc
}

// Attrs returns the class's own attribute table.
func (c *Class) Attrs() *Table {
	return c.attrs
}

// Slots returns a copy of the resolved meta-method slots.
func (c *Class) Slots() meta.Set {
	if c.desc == nil {
		return rootSlots
	}
	return c.desc.Slots()
}

// Meta returns the resolved value of slot s.
func (c *Class) Meta(s meta.Slot) (any, bool) {
	if c.desc == nil {
		return rootSlots.Get(s)
	}
	return c.desc.Meta(s)
}

// SetMeta defines or, with a nil v, removes the class's own value for slot s.
// Existing instances and subclasses keep what they resolved earlier.
// The slot and its attribute entry are written under the descriptor's write
// lock, so a reader that observes the slot also finds the attribute.
func (c *Class) SetMeta(s meta.Slot, v any) error {
	if c.desc == nil {
		return fmt.Errorf("%w: root class is read-only", ErrInvalidOperation)
	}
	if !s.Valid() {
		return fmt.Errorf("%w: unknown meta-method slot %d", ErrInvalidArgument, s)
	}
	c.desc.define(s, v, c.attrs)
	return nil
}

// Get resolves key on the class: own attributes, then each ancestor's, then
// the __index hook.
func (c *Class) Get(key string) (any, bool) {
	if v, ok := lookupChain(c, key); ok {
		return v, true
	}
	h, _ := c.Meta(meta.Index)
	return index(c, h, key)
}

// Set stores v in the class's own attributes. A key spelled like a
// meta-method ("__tostring") also defines that slot, as SetMeta does.
func (c *Class) Set(key string, v any) error {
	if c.desc == nil {
		return fmt.Errorf("%w: root class is read-only", ErrInvalidOperation)
	}
	if s, ok := meta.Parse(key); ok {
		return c.SetMeta(s, v)
	}
	c.attrs.Set(key, v)
	return nil
}

// String implements fmt.Stringer with the default class display.
func (c *Class) String() string {
	if c.IsRoot() {
		return "class <root>"
	}
	return "class " + c.Name()
}

// parent returns the next class in the chain, nil past Root.
func (c *Class) parent() *Class {
	if c == nil || c.desc == nil {
		return nil
	}
	return c.desc.parent
}

// lookupChain walks c and its ancestors' attribute tables.
func lookupChain(c *Class, key string) (any, bool) {
	for ; c != nil; c = c.parent() {
		if v, ok := c.attrs.Get(key); ok {
			return v, true
		}
	}
	return nil, false
}
