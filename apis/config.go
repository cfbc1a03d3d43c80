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

import (
	"log/slog"
)

// NameStyle selects how KindOf names values that are neither classes nor instances.
type NameStyle uint8

const (
	// NamesHost uses dynamic-host type names: "nil", "boolean", "number",
	// "string", "function", "table", "thread", "userdata".
	NamesHost NameStyle = iota
	// NamesGo uses Go type strings, e.g. "int", "[]string", "*pkg.T".
	NamesGo
)

// String returns "host" or "go".
func (s NameStyle) String() string {
	if s == NamesGo {
		return "go"
	}
	return "host"
}

// Config carries the knobs shared by the factory and the introspection chain.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// HostVersion is the host dialect ("Lua 5.4") used for display formatting
	// and for reporting meta-methods the host never dispatches.
	HostVersion string

	// NativeNames controls KindOf for values without a descriptor.
	NativeNames NameStyle

	// Logger receives factory diagnostics. Nil means discard.
	Logger *slog.Logger

	// Observer, if set, is notified of class and instance lifecycle events.
	Observer Observer
}
