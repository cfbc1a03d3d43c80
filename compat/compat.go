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

// Package compat parses host dialect versions and answers which meta-method
// hooks the host dispatches and how it formats values that lack __tostring.
package compat

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"

	"dirpx.dev/klass/meta"
)

// DefaultVersion is the host dialect assumed when none is configured.
const DefaultVersion = "Lua 5.4"

var (
	// ErrInvalidVersion is returned when a version string cannot be parsed.
	ErrInvalidVersion = errors.New("klass(compat): invalid host version")
	// ErrUnsupportedVersion is returned for dialects older than 5.1.
	ErrUnsupportedVersion = errors.New("klass(compat): unsupported host version")
)

const (
	v51 = "v5.1.0"
	v52 = "v5.2.0"
	v53 = "v5.3.0"
	v54 = "v5.4.0"
)

// since records the first dialect version that dispatches each slot.
var since = [meta.NumSlots]string{
	meta.Add: v51, meta.Sub: v51, meta.Mul: v51, meta.Div: v51, meta.Mod: v51,
	meta.Pow: v51, meta.Unm: v51, meta.Concat: v51, meta.Len: v51,
	meta.Eq: v51, meta.Lt: v51, meta.Le: v51,
	meta.Index: v51, meta.NewIndex: v51, meta.Call: v51, meta.ToString: v51,
	meta.GC: v51, meta.Mode: v51, meta.Metatable: v51, meta.Init: v51,
	meta.Pairs: v52, meta.IPairs: v52,
	meta.IDiv: v53, meta.BAnd: v53, meta.BOr: v53, meta.BXor: v53,
	meta.Shl: v53, meta.Shr: v53, meta.BNot: v53, meta.Name: v53,
	meta.Close: v54,
}

// until records slots the host stopped dispatching, keyed by the first version without them.
var until = map[meta.Slot]string{
	meta.IPairs: v54,
}

// Profile describes one host dialect. The zero value behaves like Default().
type Profile struct {
	version string // canonical semver, e.g. "v5.4.0"
}

// Default returns the profile for DefaultVersion.
func Default() Profile {
	return Profile{version: v54}
}

// Parse accepts "Lua 5.3", "5.3", "v5.3.6" or "LuaJIT 2.1" (treated as 5.1).
func Parse(s string) (Profile, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Profile{}, fmt.Errorf("%w: empty", ErrInvalidVersion)
	}
	if strings.HasPrefix(strings.ToLower(raw), "luajit") {
		return Profile{version: v51}, nil
	}
	v := strings.TrimSpace(strings.TrimPrefix(raw, "Lua"))
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return Profile{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}
	v = semver.Canonical(v)
	if semver.Compare(v, v51) < 0 {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnsupportedVersion, s)
	}
	return Profile{version: v}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Profile {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Version returns the canonical semver form ("v5.4.0").
func (p Profile) Version() string {
	if p.version == "" {
		return v54
	}
	return p.version
}

// String returns the dialect in host form, e.g. "Lua 5.4".
func (p Profile) String() string {
	return "Lua " + strings.TrimPrefix(semver.MajorMinor(p.Version()), "v")
}

// Supports reports whether the host dispatches slot s automatically.
func (p Profile) Supports(s meta.Slot) bool {
	if !s.Valid() {
		return false
	}
	v := p.Version()
	if semver.Compare(v, since[s]) < 0 {
		return false
	}
	if end, ok := until[s]; ok && semver.Compare(v, end) >= 0 {
		return false
	}
	return true
}

// Unsupported returns the slots occupied in set that this host never dispatches.
func (p Profile) Unsupported(set meta.Set) []meta.Slot {
	var out []meta.Slot
	set.Range(func(s meta.Slot, _ any) bool {
		if !p.Supports(s) {
			out = append(out, s)
		}
		return true
	})
	return out
}

// Display formats a value that has no __tostring hook.
// role is "class" or "instance"; id is the value's identity.
func (p Profile) Display(role, name, id string) string {
	if role == "class" {
		return "class " + name
	}
	if p.Supports(meta.Name) && name != "" {
		return name + ": " + id
	}
	return "table: " + id
}
