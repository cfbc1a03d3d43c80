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

package apis

import "dirpx.dev/klass/object"

// Registry maps class names to class records. Entries are only ever added by
// class creation; Reset exists for tests and diagnostics.
// Implementations must be safe for concurrent use.
type Registry interface {
	// Register adds c under c.Name(). It fails with object.ErrDuplicateName if
	// the name is taken and object.ErrInvalidArgument for an unnamed class.
	Register(c *object.Class) error
	// Lookup returns the class registered under name.
	Lookup(name string) (*object.Class, bool)
	// Entries returns a snapshot in registration order.
	Entries() []Entry
	// Count returns the number of registered classes.
	Count() int
	// Reset clears all registered entries.
	Reset()
}

// Entry is a single (name, class) association in a Registry snapshot.
type Entry struct {
	// Name is the registered name.
	Name string
	// Class is the class record.
	Class *object.Class
}
