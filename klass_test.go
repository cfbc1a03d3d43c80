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

package klass_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"dirpx.dev/klass"
	"dirpx.dev/klass/apis"
	"dirpx.dev/klass/config"
	"dirpx.dev/klass/meta"
	"dirpx.dev/klass/object"
	"dirpx.dev/klass/registry"
)

// reset gives each test a clean global registry and default config.
func reset(t *testing.T) {
	t.Helper()
	cfg := config.DefaultConfig()
	klass.SetAll(&cfg, registry.New())
}

func mustCreate(t *testing.T, name string) *object.Class {
	t.Helper()
	c, err := klass.CreateClass(name)
	if err != nil {
		t.Fatalf("CreateClass(%s): %v", name, err)
	}
	return c
}

func mustExtend(t *testing.T, name string, super *object.Class) *object.Class {
	t.Helper()
	c, err := klass.ExtendClass(name, super)
	if err != nil {
		t.Fatalf("ExtendClass(%s): %v", name, err)
	}
	return c
}

func tostring(s string) object.Func {
	return func(any, ...any) (any, error) { return s, nil }
}

func TestDistinctNames(t *testing.T) {
	reset(t)
	mustCreate(t, "N1")
	mustCreate(t, "N2")

	c1, err1 := klass.LookupClass("N1")
	c2, err2 := klass.LookupClass("N2")
	if err1 != nil || err2 != nil {
		t.Fatalf("LookupClass errors: %v, %v", err1, err2)
	}
	if c1 == c2 {
		t.Fatal("LookupClass(N1) == LookupClass(N2)")
	}
}

func TestDuplicateName(t *testing.T) {
	reset(t)
	mustCreate(t, "X")
	if _, err := klass.CreateClass("X"); !errors.Is(err, klass.ErrDuplicateName) {
		t.Fatalf("CreateClass(X) twice: want ErrDuplicateName, got %v", err)
	}
}

func TestLookupClass_NotFound(t *testing.T) {
	reset(t)
	if _, err := klass.LookupClass("Ghost"); !errors.Is(err, klass.ErrNotFound) {
		t.Fatalf("LookupClass(Ghost): want ErrNotFound, got %v", err)
	}
}

func TestInheritanceAndIntrospection(t *testing.T) {
	reset(t)
	a := mustCreate(t, "A")
	b := mustExtend(t, "B", a)
	c := mustCreate(t, "C")

	v, err := klass.Call(b)
	if err != nil {
		t.Fatalf("Call(B): %v", err)
	}

	if !klass.IsInstance(v) {
		t.Fatal("IsInstance(b) = false")
	}
	if !klass.IsInstanceOf(v, b) || !klass.IsInstanceOf(v, a) {
		t.Fatal("b must be an instance of B and of A")
	}
	if klass.IsInstanceOf(v, c) {
		t.Fatal("IsInstanceOf(b, C) = true")
	}
	if klass.IsClass(v) || !klass.IsClass(b) {
		t.Fatal("IsClass mismatch")
	}
	if klass.KindOf(b) != "class" || klass.KindOf(v) != "instance" {
		t.Fatalf("KindOf(B)=%q KindOf(b)=%q", klass.KindOf(b), klass.KindOf(v))
	}
	if klass.KindOf(42) != "number" {
		t.Fatalf("KindOf(42) = %q, want number", klass.KindOf(42))
	}
	if n, ok := klass.NameOf(b); !ok || n != "B" {
		t.Fatalf("NameOf(B) = (%q,%v)", n, ok)
	}
	if _, ok := klass.NameOf(42); ok {
		t.Fatal("NameOf(42) must be absent")
	}
	if klass.PrototypeOf(v) == nil || klass.PrototypeOf(42) != nil {
		t.Fatal("PrototypeOf mismatch")
	}
}

func TestKindOf_GoNames(t *testing.T) {
	reset(t)
	klass.SetConfig(config.NewConfig(config.WithNativeNames(apis.NamesGo)))
	if got := klass.KindOf(42); got != "int" {
		t.Fatalf("KindOf(42) = %q, want int", got)
	}
}

func TestMetaMethodInheritance(t *testing.T) {
	reset(t)
	a := mustCreate(t, "A")
	if err := a.Set("__tostring", tostring("an A")); err != nil {
		t.Fatalf("Set(__tostring): %v", err)
	}
	b := mustExtend(t, "B", a)

	bi, _ := klass.New(b)
	if s, err := klass.ToString(bi); err != nil || s != "an A" {
		t.Fatalf("ToString(b) = (%q,%v), want an A", s, err)
	}
}

func TestOverridePrecedence(t *testing.T) {
	reset(t)
	a := mustCreate(t, "A")
	_ = a.SetMeta(meta.ToString, tostring("an A"))
	b := mustExtend(t, "B", a)
	_ = b.SetMeta(meta.ToString, tostring("a B"))

	bi, _ := klass.New(b)
	if s, _ := klass.ToString(bi); s != "a B" {
		t.Fatalf("ToString(b) = %q, want a B", s)
	}
}

// Instances freeze their meta-methods at construction.
func TestSnapshotSemantics(t *testing.T) {
	reset(t)
	b := mustCreate(t, "B")
	_ = b.SetMeta(meta.ToString, tostring("v1"))

	b1, _ := klass.New(b)
	_ = b.SetMeta(meta.ToString, tostring("v2"))
	b2, _ := klass.New(b)

	if s, _ := klass.ToString(b1); s != "v1" {
		t.Fatalf("b1 = %q, want v1", s)
	}
	if s, _ := klass.ToString(b2); s != "v2" {
		t.Fatalf("b2 = %q, want v2", s)
	}
}

func TestCallInstanceFails(t *testing.T) {
	reset(t)
	b := mustCreate(t, "B")
	bi, _ := klass.New(b)
	if _, err := klass.Call(bi); !errors.Is(err, klass.ErrInvalidOperation) {
		t.Fatalf("Call(instance): want ErrInvalidOperation, got %v", err)
	}
}

func TestInitializerForwarding(t *testing.T) {
	reset(t)
	b := mustCreate(t, "B")

	var calls int
	var self any
	var args []any
	_ = b.SetMeta(meta.Init, object.Func(func(s any, a ...any) (any, error) {
		calls++
		self, args = s, a
		return nil, nil
	}))

	bi, err := klass.New(b, "x", 1)
	if err != nil {
		t.Fatalf("New(B): %v", err)
	}
	if calls != 1 || self != bi || !reflect.DeepEqual(args, []any{"x", 1}) {
		t.Fatalf("initializer calls=%d self=%v args=%v", calls, self, args)
	}
}

func TestInvokeOperator(t *testing.T) {
	reset(t)
	vec := mustCreate(t, "Vec")
	_ = vec.SetMeta(meta.Init, object.Func(func(self any, a ...any) (any, error) {
		self.(*object.Instance).RawSet("n", a[0])
		return nil, nil
	}))
	_ = vec.SetMeta(meta.Add, object.Func(func(self any, a ...any) (any, error) {
		l, _ := self.(*object.Instance).Get("n")
		r, _ := a[0].(*object.Instance).Get("n")
		return klass.New(vec, l.(int)+r.(int))
	}))

	x, _ := klass.New(vec, 2)
	y, _ := klass.New(vec, 3)
	sum, err := klass.Invoke(x, meta.Add, y)
	if err != nil {
		t.Fatalf("Invoke(__add): %v", err)
	}
	if n, _ := sum.(*object.Instance).Get("n"); n != 5 {
		t.Fatalf("sum = %v, want 5", n)
	}
}

func TestToString_HostProfile(t *testing.T) {
	reset(t)
	p := mustCreate(t, "P")
	pi, _ := klass.New(p)

	s, _ := klass.ToString(pi)
	if !strings.HasPrefix(s, "P: ") {
		t.Fatalf("Lua 5.4 display = %q", s)
	}
	klass.SetConfig(config.NewConfig(config.WithHostVersion("Lua 5.1")))
	s, _ = klass.ToString(pi)
	if !strings.HasPrefix(s, "table: ") {
		t.Fatalf("Lua 5.1 display = %q", s)
	}
	if s, _ := klass.ToString(p); s != "class P" {
		t.Fatalf("class display = %q", s)
	}
}

func TestSetConfigKeepsRegistry(t *testing.T) {
	reset(t)
	a := mustCreate(t, "A")
	klass.SetConfig(config.NewConfig(config.WithHostVersion("Lua 5.2")))

	if got, err := klass.LookupClass("A"); err != nil || got != a {
		t.Fatalf("LookupClass(A) after SetConfig = (%v,%v)", got, err)
	}
	if klass.Config().HostVersion != "Lua 5.2" {
		t.Fatalf("Config().HostVersion = %q", klass.Config().HostVersion)
	}
}

func TestSetRegistry(t *testing.T) {
	reset(t)
	mustCreate(t, "A")

	reg := registry.New()
	klass.SetRegistry(reg)
	if klass.Registry() != reg || klass.Factory().Registry() != reg {
		t.Fatal("SetRegistry did not publish the new registry")
	}
	if _, err := klass.LookupClass("A"); !errors.Is(err, klass.ErrNotFound) {
		t.Fatalf("A leaked into the new registry: %v", err)
	}

	klass.SetRegistry(nil) // ignored
	if klass.Registry() != reg {
		t.Fatal("SetRegistry(nil) replaced the registry")
	}
}

func TestSetAll_NilRegistryPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != klass.ErrNilRegistry {
			t.Fatalf("recover() = %v, want ErrNilRegistry", r)
		}
	}()
	klass.SetAll(nil, nil)
}
