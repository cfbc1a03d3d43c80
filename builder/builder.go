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

package builder

import (
	"fmt"
	"log/slog"

	"dirpx.dev/klass/apis"
	"dirpx.dev/klass/compat"
	"dirpx.dev/klass/config"
	"dirpx.dev/klass/object"
	"dirpx.dev/klass/registry"
	"dirpx.dev/klass/resolver"
	"dirpx.dev/klass/strategy"
)

// New creates a class factory that registers into reg. A nil reg gets a
// fresh, private registry.
func New(cfg apis.Config, reg apis.Registry) apis.Factory {
	if reg == nil {
		reg = registry.New()
	}
	return &builder{
		cfg:  cfg,
		reg:  reg,
		log:  config.Logger(cfg),
		host: config.Profile(cfg),
	}
}

// NewResolver returns the default KindOf chain: descriptor roles first, then
// self-describing values, then native type names.
func NewResolver() apis.Resolver {
	return resolver.New(
		strategy.NewDescriptorStrategy(),
		strategy.NewKinderStrategy(),
		strategy.NewNativeStrategy(),
	)
}

// builder is the Class Factory.
type builder struct {
	cfg  apis.Config
	reg  apis.Registry
	log  *slog.Logger
	host compat.Profile
}

// Ensure builder implements apis.Factory.
var _ apis.Factory = (*builder)(nil)

// CreateClass defines a top-level class.
func (b *builder) CreateClass(name string) (*object.Class, error) {
	return b.define(name, nil)
}

// ExtendClass defines a class inheriting from super.
func (b *builder) ExtendClass(name string, super any) (*object.Class, error) {
	parent, ok := super.(*object.Class)
	if !ok || parent == nil || parent.Descriptor().Role() != object.RoleClass {
		err := fmt.Errorf("%w: superclass of %q must be a class, got %s", object.ErrInvalidArgument, name, kindForError(super))
		b.log.Warn("class definition rejected", slog.String("class", name), slog.Any("err", err))
		return nil, err
	}
	return b.define(name, parent)
}

// LookupClass returns the class registered under name.
func (b *builder) LookupClass(name string) (*object.Class, error) {
	c, ok := b.reg.Lookup(name)
	if b.cfg.Observer != nil {
		b.cfg.Observer.ClassLookup(name, ok)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q", object.ErrNotFound, name)
	}
	return c, nil
}

// Registry returns the registry the factory writes to.
func (b *builder) Registry() apis.Registry {
	return b.reg
}

// define validates name, builds the class record and registers it.
// The record is fully built before it becomes visible through the registry.
func (b *builder) define(name string, parent *object.Class) (*object.Class, error) {
	if name == "" {
		err := fmt.Errorf("%w: empty class name", object.ErrInvalidArgument)
		b.log.Warn("class definition rejected", slog.String("class", name), slog.Any("err", err))
		return nil, err
	}
	// Fast path; Register re-checks atomically.
	if _, ok := b.reg.Lookup(name); ok {
		err := fmt.Errorf("%w: %q", object.ErrDuplicateName, name)
		b.log.Warn("class definition rejected", slog.String("class", name), slog.Any("err", err))
		return nil, err
	}

	c := object.NewClass(name, parent, object.WithInstanceHook(b.instanceCreated))
	if err := b.reg.Register(c); err != nil {
		b.log.Warn("class definition rejected", slog.String("class", name), slog.Any("err", err))
		return nil, err
	}

	b.log.Debug("class created", slog.String("class", name), slog.String("super", c.Super().Name()))
	for _, s := range b.host.Unsupported(c.Slots()) {
		b.log.Debug("inherited meta-method not dispatched by host",
			slog.String("class", name), slog.String("slot", s.String()), slog.String("host", b.host.String()))
	}
	if b.cfg.Observer != nil {
		b.cfg.Observer.ClassCreated(c)
	}
	return c, nil
}

// instanceCreated is installed as every class's instance hook.
func (b *builder) instanceCreated(i *object.Instance) {
	b.log.Debug("instance created", slog.String("class", i.ClassName()), slog.String("id", i.ID().String()))
	if b.cfg.Observer != nil {
		b.cfg.Observer.InstanceCreated(i)
	}
}

// kindForError names the rejected superclass argument.
func kindForError(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case *object.Class:
		if x != nil && x.IsRoot() {
			return "the root class"
		}
		return "nil class"
	case *object.Instance:
		if x == nil {
			return "nil instance"
		}
		return "an instance of " + x.ClassName()
	}
	return fmt.Sprintf("%T", v)
}
