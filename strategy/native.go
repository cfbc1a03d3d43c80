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
	"reflect"
	"sync"

	"dirpx.dev/klass/apis"
	"dirpx.dev/klass/object"
)

// NewNativeStrategy creates an apis.Strategy that names any value by its
// native type, in the style selected by Config.NativeNames.
func NewNativeStrategy() apis.Strategy {
	return nativeStrategy{}
}

// nativeStrategy is the universal fallback; it always handles the value.
type nativeStrategy struct{}

// Ensure nativeStrategy implements apis.Strategy.
var _ apis.Strategy = nativeStrategy{}

// cacheKey ensures memoization respects the naming style.
type cacheKey struct {
	t     reflect.Type
	style apis.NameStyle
}

// typeNameCache caches native names by (type, style).
var typeNameCache sync.Map // key: cacheKey, val: string

var (
	tableType = reflect.TypeOf((*object.Table)(nil))
	classType = reflect.TypeOf((*object.Class)(nil))
)

// TryKind names v's native type.
func (nativeStrategy) TryKind(v any, cfg apis.Config) (string, bool) {
	if v == nil {
		return "nil", true
	}
	return byType(reflect.TypeOf(v), cfg.NativeNames), true
}

// byType resolves the native name for t with memoization.
func byType(t reflect.Type, style apis.NameStyle) string {
	key := cacheKey{t: t, style: style}
	if v, ok := typeNameCache.Load(key); ok {
		return v.(string)
	}

	var name string
	if style == apis.NamesGo {
		name = t.String()
	} else {
		name = hostName(t)
	}

	typeNameCache.Store(key, name)
	return name
}

// hostName maps a Go type onto the dynamic host's type names.
func hostName(t reflect.Type) string {
	switch t {
	case tableType:
		return "table"
	case classType:
		// Only the root class reaches here; it is not a user-visible class.
		return "table"
	}
	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Func:
		return "function"
	case reflect.Map, reflect.Slice, reflect.Array:
		return "table"
	case reflect.Chan:
		return "thread"
	default:
		return "userdata"
	}
}
