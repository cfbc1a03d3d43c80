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

// Role tags what a resolution descriptor describes.
type Role uint8

const (
	// RolePlain is the role of any value without a descriptor.
	RolePlain Role = iota
	// RoleClass marks a class record.
	RoleClass
	// RoleInstance marks an instance record.
	RoleInstance
)

// String returns "plain", "class" or "instance".
func (r Role) String() string {
	switch r {
	case RoleClass:
		return "class"
	case RoleInstance:
		return "instance"
	default:
		return "plain"
	}
}
