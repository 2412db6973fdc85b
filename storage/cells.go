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

package storage

import (
	"reflect"
	"sync"

	"dirpx.dev/ffx/apis"
	uref "dirpx.dev/ffx/utils/reflect"
)

// keyCache memoizes derived keys by (owner, value) type pair. Key derivation
// walks type metadata; cells sit on hot paths, so pairs are computed once.
var keyCache sync.Map // key: [2]reflect.Type, val: apis.Key

// KeyForTypes derives the storage key addressing the cell owned by the owner
// type and holding a value of the value type. The key is built from stable,
// fully package-qualified type names so that independently compiled modules
// naming the same pair address the same cell.
func KeyForTypes(owner, value reflect.Type) apis.Key {
	pair := [2]reflect.Type{owner, value}
	if v, ok := keyCache.Load(pair); ok {
		return v.(apis.Key)
	}
	k := apis.Key{Owner: uref.TypeName(owner), Value: uref.TypeName(value)}
	keyCache.Store(pair, k)
	return k
}

// KeyOf derives the storage key for the (Owner, Value) type pair.
// Interface type parameters name the interface itself.
func KeyOf[Owner, Value any]() apis.Key {
	return KeyForTypes(reflect.TypeFor[Owner](), reflect.TypeFor[Value]())
}

// Cell returns the singleton value cell addressed by the (Owner, Value) type
// pair within s, allocating a zero Value on first access. All callers across
// the process that name the same pair against the same Storage receive the
// identical *Value.
//
// The returned pointer stays valid for the life of the process; returned
// cells are never freed or replaced.
func Cell[Owner, Value any](s apis.Storage) *Value {
	v := s.Cell(KeyOf[Owner, Value](), func() any { return new(Value) })
	// A Storage must return the value its alloc produced; anything else is a
	// broken implementation, and an early panic beats silent cell aliasing.
	return v.(*Value)
}

// Lookup returns the singleton cell for the (Owner, Value) pair if it exists.
// Unlike Cell it never allocates, so it is safe to use from query paths that
// must not leave cells behind.
func Lookup[Owner, Value any](s apis.Storage) (*Value, bool) {
	v, ok := s.Lookup(KeyOf[Owner, Value]())
	if !ok {
		return nil, false
	}
	c, ok := v.(*Value)
	return c, ok
}
