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

import "errors"

var (
	// ErrInvalidArgument is returned when a name is empty or a superclass
	// argument is not a class record.
	ErrInvalidArgument = errors.New("klass: invalid argument")
	// ErrDuplicateName is returned when a class name is already registered.
	ErrDuplicateName = errors.New("klass: duplicate class name")
	// ErrNotFound is returned when looking up an undefined class name.
	ErrNotFound = errors.New("klass: class not found")
	// ErrInvalidOperation is returned when a value is used in a way its role
	// forbids, e.g. invoking an instance as if it were a class.
	ErrInvalidOperation = errors.New("klass: invalid operation")
)
