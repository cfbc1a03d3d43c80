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

// Package klass provides single-inheritance classes and instances for
// dynamically-typed values.
//
// A class is a named record with an ordered attribute table and a resolution
// descriptor. The descriptor links the class to its superclass (or to the
// implicit root class) and holds the class's resolved meta-methods: hooks
// such as __tostring, __add or __init that dispatch runs automatically.
// An instance is a record with its own attribute table and a descriptor that
// links it to its class.
//
// # Resolution
//
// Attribute reads walk an explicit chain:
//
//	instance attributes -> class attributes -> superclass attributes -> ... -> root
//
// and fall back to an __index hook when the chain misses. Meta-methods are
// not walked at dispatch time. They are resolved eagerly:
//
//   - When a class is created, every slot it does not define itself is
//     copied from its superclass's resolved slots.
//   - When an instance is constructed, it takes a snapshot of its class's
//     resolved slots. Later changes to the class do not affect it, but
//     instances constructed afterwards see them.
//
// The root class contributes a single hook, __call, which turns a class in
// construction position into a new instance:
//
//	point, _ := klass.CreateClass("Point")
//	_ = point.SetMeta(meta.Init, object.Func(func(self any, args ...any) (any, error) {
//		p := self.(*object.Instance)
//		p.RawSet("x", args[0])
//		p.RawSet("y", args[1])
//		return nil, nil
//	}))
//	v, _ := klass.Call(point, 1, 2) // same as klass.New(point, 1, 2)
//
// Every instance's __call is a guard: calling an instance fails with
// ErrInvalidOperation.
//
// # Introspection
//
// IsClass, IsInstance, IsInstanceOf, KindOf, NameOf and PrototypeOf accept
// any value. A value without a descriptor is simply "plain": KindOf falls
// back to a native type name ("number", "string", ... or Go type strings,
// see config.WithNativeNames).
//
// # Global state
//
// The package keeps one process-wide snapshot of configuration, registry and
// class factory, published through an atomic pointer. Reads never lock;
// SetConfig, SetRegistry and SetAll build a new snapshot under a mutex and
// swap it in. Code that needs isolation (tests, embedded interpreters)
// constructs its own registry.New and builder.New instead.
//
// # Errors
//
// Errors are returned synchronously and wrap one of ErrInvalidArgument,
// ErrDuplicateName, ErrNotFound or ErrInvalidOperation; test them with
// errors.Is. LookupClass reports an undefined name as ErrNotFound rather
// than panicking, so callers can probe for optional classes.
package klass
