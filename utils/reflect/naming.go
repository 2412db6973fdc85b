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

package reflect

import (
	"reflect"
)

// TypeName derives the stable, fully package-qualified name of t, the form
// storage keys are built from. Unlike display names it keeps the full import
// path and any generic instantiation suffix: two types may share a short name
// across packages, and two instantiations of one generic type are distinct
// types, so neither may collide at the key level.
//
// Named types yield "pkgpath.Name" (or just "Name" for predeclared types).
// Unnamed types fall back to reflect's composite notation, e.g. "*pkg.T" or
// "map[string]pkg.T", which is stable for a fixed type structure.
// A nil type yields "".
func TypeName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	if n := t.Name(); n != "" {
		if p := t.PkgPath(); p != "" {
			return p + "." + n
		}
		return n
	}
	return t.String()
}

// TypeNameFor derives the stable name of the type parameter T.
// It names interface types as themselves rather than their dynamic value,
// which is what addressing a per-interface cell requires.
func TypeNameFor[T any]() string {
	return TypeName(reflect.TypeFor[T]())
}
