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

package strategy

import (
	"dirpx.dev/klass/apis"
	"dirpx.dev/klass/object"
)

// NewDescriptorStrategy creates an apis.Strategy that classifies values by
// the role of their resolution descriptor.
func NewDescriptorStrategy() apis.Strategy {
	return descriptorStrategy{}
}

// descriptorStrategy answers "class" or "instance" and falls through for
// everything without a descriptor, including the root class.
type descriptorStrategy struct{}

// Ensure descriptorStrategy implements apis.Strategy.
var _ apis.Strategy = descriptorStrategy{}

// TryKind reports the descriptor role of v.
func (descriptorStrategy) TryKind(v any, _ apis.Config) (string, bool) {
	switch r := object.DescriptorOf(v).Role(); r {
	case object.RoleClass, object.RoleInstance:
		return r.String(), true
	}
	return "", false
}
