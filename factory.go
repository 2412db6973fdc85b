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

package ffx

import (
	"reflect"

	"dirpx.dev/ffx/apis"
	"dirpx.dev/ffx/registry"
	"dirpx.dev/ffx/storage"
)

// TableOf returns the table for interface I from the global ffx sto,
// creating it on first access with the global ffx configuration.
// Every caller in the process naming the same I gets the same table.
func TableOf[I any]() *registry.Table[I] {
	s := st.Load()
	return registry.For[I](s.sto, s.cfg)
}

// Register adds a generator for id to the global table for interface I.
// This is a convenience wrapper around the global sto.
func Register[I any](id apis.TypeID, gen apis.Generator[I], opts ...registry.RegOption) error {
	return TableOf[I]().Register(id, gen, opts...)
}

// MustRegister is Register, panicking on error.
// Intended for deliberate bootstrap registration, where a duplicate or
// invalid entry is a programming error.
func MustRegister[I any](id apis.TypeID, gen apis.Generator[I], opts ...registry.RegOption) {
	if err := Register[I](id, gen, opts...); err != nil {
		panic(err)
	}
}

// New creates a fresh I instance for id using the generator registered in
// the global table for interface I.
// This is a convenience wrapper around the global sto.
func New[I any](id apis.TypeID) (I, error) {
	return TableOf[I]().New(id)
}

// Types returns the identifiers registered in the global table for
// interface I, in sorted order.
// This is a convenience wrapper around the global sto.
func Types[I any]() []apis.TypeID {
	return TableOf[I]().Types()
}

// IsRegistered reports whether id is registered in the global table for
// interface I.
// This is a convenience wrapper around the global sto.
func IsRegistered[I any](id apis.TypeID) bool {
	return TableOf[I]().IsRegistered(id)
}

// Seal closes the global table for interface I against further registration.
// It returns true on the first call for a given table, false afterwards.
// This is a convenience wrapper around the global sto.
func Seal[I any]() bool {
	return TableOf[I]().Seal()
}

// TypeIDOf resolves the identifier of the provided value v using the global
// ffx res. Values that report their own identifier win over identifiers
// recorded at registration time. Returns the zero TypeID when v has no
// known identity; identity is never invented.
// This is a convenience wrapper around the global res.
func TypeIDOf(v any) apis.TypeID {
	s := st.Load()
	return s.res.Resolve(v, s.cfg)
}

// TypeIDOfType resolves the identifier of the provided reflect.Type t using
// the global ffx res. Returns the zero TypeID when t has no known identity.
// This is a convenience wrapper around the global res.
func TypeIDOfType(t reflect.Type) apis.TypeID {
	s := st.Load()
	return s.res.ResolveType(t, s.cfg)
}

// StaticTypeIDOf returns the identifier recorded for implementation type T
// at registration time, or the zero TypeID if T was never registered
// through a Registrator. The query never allocates storage cells.
func StaticTypeIDOf[T any]() apis.TypeID {
	if id, ok := storage.Lookup[T, apis.TypeID](st.Load().sto); ok {
		return *id
	}
	return ""
}
