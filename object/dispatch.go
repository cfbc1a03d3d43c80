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

	"dirpx.dev/klass/compat"
	"dirpx.dev/klass/meta"
)

// Func is the signature of callable meta-methods. self is the class or
// instance the hook was dispatched on.
type Func func(self any, args ...any) (any, error)

// IndexFunc is a callable __index hook. It runs after the chain misses.
type IndexFunc func(self any, key string) (any, bool)

// NewIndexFunc is a callable __newindex hook. It runs when assigning a key
// the instance does not own.
type NewIndexFunc func(self any, key string, v any) error

// DescriptorOf returns v's resolution descriptor, or nil when v is neither a
// class nor an instance. Root has no descriptor.
func DescriptorOf(v any) *Descriptor {
	switch x := v.(type) {
	case *Class:
		return x.Descriptor()
	case *Instance:
		return x.Descriptor()
	}
	return nil
}

// Invoke dispatches meta-method s on v with args.
func Invoke(v any, s meta.Slot, args ...any) (any, error) {
	var (
		h  any
		ok bool
	)
	switch x := v.(type) {
	case *Class:
		if x == nil {
			return nil, fmt.Errorf("%w: %s on nil class", ErrInvalidOperation, s)
		}
		h, ok = x.Meta(s)
	case *Instance:
		if x == nil {
			return nil, fmt.Errorf("%w: %s on nil instance", ErrInvalidOperation, s)
		}
		h, ok = x.Meta(s)
	default:
		return nil, fmt.Errorf("%w: %s on %s", ErrInvalidOperation, s, describe(v))
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s has no %s meta-method", ErrInvalidOperation, describe(v), s)
	}
	fn, ok := asFunc(h)
	if !ok {
		return nil, fmt.Errorf("%w: %s of %s is not callable", ErrInvalidOperation, s, describe(v))
	}
	return fn(v, args...)
}

// Call invokes v as a function. A class constructs a new instance through
// the call hook inherited from Root; an instance fails with
// ErrInvalidOperation.
func Call(v any, args ...any) (any, error) {
	return Invoke(v, meta.Call, args...)
}

// ToString renders v, using its __tostring hook when present and the
// profile's default display otherwise.
func ToString(v any, p compat.Profile) (string, error) {
	var h any
	switch x := v.(type) {
	case *Class:
		if x == nil {
			return "nil", nil
		}
		if x.IsRoot() {
			return x.String(), nil
		}
		h, _ = x.Meta(meta.ToString)
		if h == nil {
			return p.Display(RoleClass.String(), x.Name(), ""), nil
		}
	case *Instance:
		if x == nil {
			return "nil", nil
		}
		h, _ = x.Meta(meta.ToString)
		if h == nil {
			return p.Display(RoleInstance.String(), x.ClassName(), x.id.String()), nil
		}
	case nil:
		return "nil", nil
	default:
		return fmt.Sprint(v), nil
	}

	fn, ok := asFunc(h)
	if !ok {
		return "", fmt.Errorf("%w: __tostring of %s is not callable", ErrInvalidOperation, describe(v))
	}
	out, err := fn(v)
	if err != nil {
		return "", err
	}
	if s, ok := out.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("%w: __tostring of %s returned %T, want string", ErrInvalidOperation, describe(v), out)
}

func asFunc(h any) (Func, bool) {
	switch fn := h.(type) {
	case Func:
		return fn, true
	case func(any, ...any) (any, error):
		return fn, true
	}
	return nil, false
}

func index(self any, h any, key string) (any, bool) {
	switch x := h.(type) {
	case *Table:
		return x.Get(key)
	case IndexFunc:
		return x(self, key)
	case func(any, string) (any, bool):
		return x(self, key)
	}
	return nil, false
}

// describe names v for error messages.
func describe(v any) string {
	switch x := v.(type) {
	case *Class:
		if x == nil {
			return "nil class"
		}
		if x.IsRoot() {
			return "root class"
		}
		return "class " + x.Name()
	case *Instance:
		if x == nil {
			return "nil instance"
		}
		return "instance of " + x.ClassName()
	case nil:
		return "nil"
	}
	return fmt.Sprintf("value of type %T", v)
}
