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

package registry

import (
	"fmt"
	"sync"

	"dirpx.dev/klass/apis"
	"dirpx.dev/klass/object"
)

// New constructs an empty Registry.
func New() apis.Registry {
	return &registry{}
}

// registry is a Registry backed by sync.Map for lock-free lookups.
type registry struct {
	// mu serializes inserts so check-and-insert is atomic and order stays consistent.
	mu sync.Mutex
	// m maps class name to *object.Class.
	m sync.Map // map[string]*object.Class
	// order records names in registration order.
	order []string
}

// Register adds c under c.Name(). Re-registering the same record is still a
// duplicate: a class is created exactly once.
func (r *registry) Register(c *object.Class) error {
	// Validate inputs early.
	if c == nil || c.Descriptor() == nil {
		return fmt.Errorf("%w: registry accepts only class records", object.ErrInvalidArgument)
	}
	name := c.Name()
	if name == "" {
		return fmt.Errorf("%w: empty class name", object.ErrInvalidArgument)
	}

	// Fast read path: reject duplicates without locking.
	if _, ok := r.m.Load(name); ok {
		return fmt.Errorf("%w: %q", object.ErrDuplicateName, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if _, ok := r.m.Load(name); ok {
		return fmt.Errorf("%w: %q", object.ErrDuplicateName, name)
	}

	r.m.Store(name, c)
	r.order = append(r.order, name)
	return nil
}

// Lookup returns the class registered under name.
func (r *registry) Lookup(name string) (*object.Class, bool) {
	if name == "" {
		return nil, false
	}
	if v, ok := r.m.Load(name); ok {
		return v.(*object.Class), true
	}
	return nil, false
}

// Entries returns a snapshot in registration order.
func (r *registry) Entries() []apis.Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	entries := make([]apis.Entry, 0, len(r.order))
	for _, name := range r.order {
		if v, ok := r.m.Load(name); ok {
			entries = append(entries, apis.Entry{Name: name, Class: v.(*object.Class)})
		}
	}
	return entries
}

// Count returns the number of registered classes.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.order)
}

// Reset clears all registered entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m.Clear()
	r.order = nil
}
