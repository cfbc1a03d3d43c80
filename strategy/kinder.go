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
)

// NewKinderStrategy creates an apis.Strategy that uses apis.Kinder.
func NewKinderStrategy() apis.Strategy {
	return &kinderStrategy{}
}

// kinderStrategy is a zero-cost fast path: if v implements apis.Kinder,
// return its HostKind() and stop the chain.
type kinderStrategy struct{}

// Ensure kinderStrategy implements apis.Strategy.
var _ apis.Strategy = (*kinderStrategy)(nil)

// TryKind checks if v implements apis.Kinder and returns its HostKind().
func (*kinderStrategy) TryKind(v any, _ apis.Config) (string, bool) {
	if v == nil {
		return "", false
	}
	if k, ok := v.(apis.Kinder); ok {
		if kind := k.HostKind(); kind != "" {
			return kind, true
		}
	}
	return "", false
}
