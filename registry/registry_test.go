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

package registry_test

import (
	"errors"
	"testing"

	"dirpx.dev/klass/object"
	"dirpx.dev/klass/registry"
)

func TestRegister_Lookup(t *testing.T) {
	reg := registry.New()
	a := object.NewClass("A", nil)

	if err := reg.Register(a); err != nil {
		t.Fatalf("Register(A): unexpected error: %v", err)
	}
	if got, ok := reg.Lookup("A"); !ok || got != a {
		t.Fatalf("Lookup(A): got (%v,%v), want (A,true)", got, ok)
	}
	if reg.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", reg.Count())
	}
}

func TestRegister_Duplicate(t *testing.T) {
	reg := registry.New()
	a := object.NewClass("X", nil)
	if err := reg.Register(a); err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}

	// A second record under the same name is rejected...
	if err := reg.Register(object.NewClass("X", nil)); !errors.Is(err, object.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got: %v", err)
	}
	// ...and so is the same record twice.
	if err := reg.Register(a); !errors.Is(err, object.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName on re-register, got: %v", err)
	}
	if got, _ := reg.Lookup("X"); got != a {
		t.Fatal("duplicate registration replaced the original class")
	}
}

func TestRegister_Errors(t *testing.T) {
	reg := registry.New()

	if err := reg.Register(nil); !errors.Is(err, object.ErrInvalidArgument) {
		t.Fatalf("nil class: want ErrInvalidArgument, got %v", err)
	}
	if err := reg.Register(object.Root); !errors.Is(err, object.ErrInvalidArgument) {
		t.Fatalf("root class: want ErrInvalidArgument, got %v", err)
	}
	if err := reg.Register(object.NewClass("", nil)); !errors.Is(err, object.ErrInvalidArgument) {
		t.Fatalf("empty name: want ErrInvalidArgument, got %v", err)
	}
}

func TestEntriesOrderAndReset(t *testing.T) {
	reg := registry.New()
	for _, n := range []string{"C", "A", "B"} {
		if err := reg.Register(object.NewClass(n, nil)); err != nil {
			t.Fatalf("Register(%s): %v", n, err)
		}
	}

	entries := reg.Entries()
	if len(entries) != 3 {
		t.Fatalf("Entries len = %d, want 3", len(entries))
	}
	for i, want := range []string{"C", "A", "B"} {
		if entries[i].Name != want || entries[i].Class.Name() != want {
			t.Fatalf("entries[%d] = %q, want %q", i, entries[i].Name, want)
		}
	}

	reg.Reset()

	if reg.Count() != 0 {
		t.Fatalf("after Reset, Count() = %d, want 0", reg.Count())
	}
	if c, ok := reg.Lookup("A"); ok || c != nil {
		t.Fatalf("Lookup after Reset: got (%v,%v), want (nil,false)", c, ok)
	}
	if len(entries) != 3 {
		t.Fatal("snapshot changed after Reset")
	}
	// names are free again after Reset
	if err := reg.Register(object.NewClass("A", nil)); err != nil {
		t.Fatalf("Register after Reset: %v", err)
	}
}

func TestLookupEmptyAndUnknown(t *testing.T) {
	reg := registry.New()

	if c, ok := reg.Lookup(""); ok || c != nil {
		t.Fatalf("Lookup(\"\"): got (%v,%v), want (nil,false)", c, ok)
	}
	if c, ok := reg.Lookup("Nope"); ok || c != nil {
		t.Fatalf("Lookup(unknown): got (%v,%v), want (nil,false)", c, ok)
	}
}
