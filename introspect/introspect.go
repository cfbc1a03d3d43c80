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

// Package introspect classifies arbitrary values against the object model.
//
// Every function accepts any value, including nil and primitives; a value
// without a resolution descriptor is a normal, non-error case.
package introspect

import (
	"dirpx.dev/klass/apis"
	"dirpx.dev/klass/builder"
	"dirpx.dev/klass/config"
	"dirpx.dev/klass/object"
)

// defaultResolver backs KindOf.
var defaultResolver = builder.NewResolver()

// IsClass reports whether v is a class record.
func IsClass(v any) bool {
	return object.DescriptorOf(v).Role() == object.RoleClass
}

// IsInstance reports whether v is an instance record.
func IsInstance(v any) bool {
	return object.DescriptorOf(v).Role() == object.RoleInstance
}

// IsInstanceOf reports whether v is an instance of class or of one of its
// subclasses. The walk follows parent links from v's descriptor and stops at
// the root class, which has no descriptor.
func IsInstanceOf(v any, class any) bool {
	if !IsInstance(v) || !IsClass(class) {
		return false
	}
	want := object.DescriptorOf(class)
	for d := object.DescriptorOf(v); d != nil; d = d.Parent().Descriptor() {
		if d == want {
			return true
		}
	}
	return false
}

// KindOf returns "class", "instance", or v's host-native type name under the
// default configuration.
func KindOf(v any) string {
	return KindOfWith(defaultResolver, config.DefaultConfig(), v)
}

// KindOfWith is KindOf using res and cfg.
func KindOfWith(res apis.Resolver, cfg apis.Config, v any) string {
	return res.Kind(v, cfg)
}

// NameOf returns the descriptor name of v: the class name for a class or
// instance, ("", false) otherwise.
func NameOf(v any) (string, bool) {
	d := object.DescriptorOf(v)
	if d == nil {
		return "", false
	}
	return d.Name(), true
}

// PrototypeOf returns v's resolution descriptor, or nil.
func PrototypeOf(v any) *object.Descriptor {
	return object.DescriptorOf(v)
}
