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

import "sync"

// Table is an insertion-ordered, mutable attribute mapping.
// It is safe for concurrent use.
type Table struct {
	mu   sync.RWMutex
	keys []string
	vals map[string]any
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{vals: make(map[string]any)}
}

// Get returns the value stored under key.
func (t *Table) Get(key string) (any, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (t *Table) Has(key string) bool {
	_, ok := t.Get(key)
	return ok
}

// Set stores v under key. New keys are appended to the iteration order;
// existing keys keep their position. A nil v removes the key.
func (t *Table) Set(key string, v any) {
	if v == nil {
		t.Delete(key)
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.vals[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.vals[key] = v
}

// Delete removes key and reports whether it was present.
func (t *Table) Delete(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.vals[key]; !ok {
		return false
	}
	delete(t.vals, key)
	for i, k := range t.keys {
		if k == key {
			t.keys = append(t.keys[:i], t.keys[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of keys.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.keys)
}

// Keys returns a snapshot of the keys in insertion order.
func (t *Table) Keys() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Range calls fn for each entry of a snapshot in insertion order until fn
// returns false. fn may mutate the table.
func (t *Table) Range(fn func(key string, v any) bool) {
	t.mu.RLock()
	keys := make([]string, len(t.keys))
	vals := make([]any, len(t.keys))
	for i, k := range t.keys {
		keys[i] = k
		vals[i] = t.vals[k]
	}
	t.mu.RUnlock()

	for i, k := range keys {
		if !fn(k, vals[i]) {
			return
		}
	}
}
