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
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	apis "dirpx.dev/klass/apis"
	"dirpx.dev/klass/object"
	"dirpx.dev/klass/registry"
)

// TestConcurrentRegisterSameName verifies that exactly one of many racing
// registrations under one name wins.
func TestConcurrentRegisterSameName(t *testing.T) {
	reg := registry.New()

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4
	var wins, dups atomic.Int64

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			err := reg.Register(object.NewClass("Contended", nil))
			switch {
			case err == nil:
				wins.Add(1)
			case errors.Is(err, object.ErrDuplicateName):
				dups.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if wins.Load() != 1 {
		t.Fatalf("winners = %d, want 1", wins.Load())
	}
	if dups.Load() != int64(workers-1) {
		t.Fatalf("duplicates = %d, want %d", dups.Load(), workers-1)
	}
	if reg.Count() != 1 {
		t.Fatalf("count = %d, want 1", reg.Count())
	}
}

// TestConcurrentRegisterAndLookup verifies that Register/Lookup/Entries/Count
// are race-free and consistent under concurrent use.
func TestConcurrentRegisterAndLookup(t *testing.T) {
	reg := registry.New()

	const n = 64
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("C%02d", i)
	}

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4

	// Writers, each trying every name
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < n; i++ {
				_ = reg.Register(object.NewClass(names[(i+id)%n], nil))
			}
		}(w)
	}

	// Readers
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				if c, ok := reg.Lookup(names[i%n]); ok && c.Name() != names[i%n] {
					t.Errorf("lookup %s returned %s", names[i%n], c.Name())
					return
				}
				_ = reg.Count()
				_ = reg.Entries()
			}
		}()
	}

	wg.Wait()

	// Final consistency checks.
	if reg.Count() != n {
		t.Fatalf("count mismatch: got %d want %d", reg.Count(), n)
	}
	seen := map[string]bool{}
	for _, e := range reg.Entries() {
		if seen[e.Name] {
			t.Fatalf("duplicate entry %q", e.Name)
		}
		seen[e.Name] = true
	}
}

// This ensures the interface is satisfied; not a test but a compile-time check.
var _ apis.Registry = registry.New()
