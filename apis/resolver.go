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

// Resolver coordinates strategies to classify values.
// Typical chain: Descriptor -> Kinder -> Native.
type Resolver interface {
	// Kind returns "class", "instance" or a native type name for v.
	Kind(v any, cfg Config) string

	// KindBy is Kind that also returns the strategy which handled v, or nil
	// when no strategy did.
	KindBy(v any, cfg Config) (kind string, by Strategy)
}

// Strategy is a pluggable classification step. A Resolver chains strategies in order.
type Strategy interface {
	// TryKind returns (kind, true) if handled; otherwise ("", false) to fall through.
	TryKind(v any, cfg Config) (kind string, handled bool)
}

// Kinder lets host-side value types report their own native kind
// (e.g. a boxed number returning "number") without reflection.
type Kinder interface {
	// HostKind returns the value's native type name. It must be non-empty.
	HostKind() string
}
