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

// Factory creates and looks up classes against one Registry.
type Factory interface {
	// CreateClass defines a top-level class whose parent is the root class.
	CreateClass(name string) (*object.Class, error)
	// ExtendClass defines a class inheriting from super, which must be a class record.
	ExtendClass(name string, super any) (*object.Class, error)
	// LookupClass returns the class registered under name, or an error
	// wrapping object.ErrNotFound.
	LookupClass(name string) (*object.Class, error)
	// Registry returns the registry the factory writes to.
	Registry() Registry
}
