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

package klass

import (
	"errors"
	"sync"
	"sync/atomic"

	"dirpx.dev/klass/apis"
	"dirpx.dev/klass/builder"
	"dirpx.dev/klass/compat"
	"dirpx.dev/klass/config"
	"dirpx.dev/klass/introspect"
	"dirpx.dev/klass/meta"
	"dirpx.dev/klass/object"
	"dirpx.dev/klass/registry"
)

// init publishes the initial snapshot: default config and an empty registry.
func init() {
	st.Store(build(config.DefaultConfig(), registry.New()))
}

var (
	// ErrNilRegistry is returned when a nil registry would be published.
	ErrNilRegistry = errors.New("klass: nil registry")

	// ErrInvalidArgument is object.ErrInvalidArgument.
	ErrInvalidArgument = object.ErrInvalidArgument
	// ErrDuplicateName is object.ErrDuplicateName.
	ErrDuplicateName = object.ErrDuplicateName
	// ErrNotFound is object.ErrNotFound.
	ErrNotFound = object.ErrNotFound
	// ErrInvalidOperation is object.ErrInvalidOperation.
	ErrInvalidOperation = object.ErrInvalidOperation
)

// CreateClass defines a top-level class in the global registry.
func CreateClass(name string) (*object.Class, error) {
	return st.Load().fac.CreateClass(name)
}

// ExtendClass defines a class inheriting from super in the global registry.
func ExtendClass(name string, super any) (*object.Class, error) {
	return st.Load().fac.ExtendClass(name, super)
}

// LookupClass returns the class registered under name. An undefined name
// is reported as an error wrapping ErrNotFound, never a panic.
func LookupClass(name string) (*object.Class, error) {
	return st.Load().fac.LookupClass(name)
}

// New constructs an instance of class, forwarding args to its initializer.
// It is what calling the class does through the root call hook.
func New(class *object.Class, args ...any) (*object.Instance, error) {
	return object.Instantiate(class, args...)
}

// Call invokes v's call meta-method. Calling a class constructs an instance.
func Call(v any, args ...any) (any, error) {
	return object.Call(v, args...)
}

// Invoke dispatches meta-method s on v.
func Invoke(v any, s meta.Slot, args ...any) (any, error) {
	return object.Invoke(v, s, args...)
}

// ToString renders v through __tostring or the configured host's default display.
func ToString(v any) (string, error) {
	return object.ToString(v, st.Load().host)
}

// IsClass reports whether v is a class record.
func IsClass(v any) bool {
	return introspect.IsClass(v)
}

// IsInstance reports whether v is an instance record.
func IsInstance(v any) bool {
	return introspect.IsInstance(v)
}

// IsInstanceOf reports whether v is an instance of class or a subclass of it.
func IsInstanceOf(v any, class any) bool {
	return introspect.IsInstanceOf(v, class)
}

// KindOf returns "class", "instance" or v's native type name under the
// global configuration.
func KindOf(v any) string {
	s := st.Load()
	return introspect.KindOfWith(s.res, s.cfg, v)
}

// NameOf returns the class name carried by v's descriptor.
func NameOf(v any) (string, bool) {
	return introspect.NameOf(v)
}

// PrototypeOf returns v's resolution descriptor, or nil.
func PrototypeOf(v any) *object.Descriptor {
	return introspect.PrototypeOf(v)
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig replaces the global configuration. Registered classes are kept;
// the factory is rebuilt so new classes log and report through cfg.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()
	st.Store(build(cfg, st.Load().reg))
}

// Registry returns the global registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry replaces the global registry. A nil reg is ignored.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}
	buildMu.Lock()
	defer buildMu.Unlock()
	st.Store(build(st.Load().cfg, reg))
}

// Factory returns the global class factory.
func Factory() apis.Factory {
	return st.Load().fac
}

// SetAll replaces configuration and registry in one step.
// A nil cfg keeps the current configuration; a nil reg panics with
// ErrNilRegistry. Tests use it to start from a clean registry.
func SetAll(cfg *apis.Config, reg apis.Registry) {
	if reg == nil {
		panic(ErrNilRegistry)
	}
	buildMu.Lock()
	defer buildMu.Unlock()

	ncfg := st.Load().cfg
	if cfg != nil {
		ncfg = *cfg
	}
	st.Store(build(ncfg, reg))
}

// build assembles a snapshot around reg.
func build(cfg apis.Config, reg apis.Registry) *state {
	return &state{
		cfg:  cfg,
		reg:  reg,
		fac:  builder.New(cfg, reg),
		res:  builder.NewResolver(),
		host: config.Profile(cfg),
	}
}

// buildMu serializes writers so we never publish partially-built snapshots.
var buildMu sync.Mutex

// st is the global klass state.
var st atomic.Pointer[state]

// state is the global klass state snapshot.
// Immutable once published via st.Store; writers create a new state and swap it.
type state struct {
	// cfg is the global configuration.
	cfg apis.Config
	// reg is the global registry.
	reg apis.Registry
	// fac is the class factory writing to reg.
	fac apis.Factory
	// res is the KindOf resolver.
	res apis.Resolver
	// host is the parsed host profile of cfg.
	host compat.Profile
}
