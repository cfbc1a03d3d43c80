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

// Observer receives lifecycle events from a Factory. Implementations must be
// safe for concurrent use and must not call back into the factory.
type Observer interface {
	// ClassCreated is called after c has been registered.
	ClassCreated(c *object.Class)
	// InstanceCreated is called after i has been initialized.
	InstanceCreated(i *object.Instance)
	// ClassLookup is called for every name lookup with its outcome.
	ClassLookup(name string, found bool)
}
