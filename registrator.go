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
	"errors"
	"fmt"

	"dirpx.dev/ffx/apis"
	"dirpx.dev/ffx/registry"
	"dirpx.dev/ffx/storage"
	uref "dirpx.dev/ffx/utils/reflect"
)

// ErrNotImplements is returned when the implementation type of a Registrator
// does not implement the interface it is being registered for.
var ErrNotImplements = errors.New("ffx(registrator): implementation does not implement interface")

// ImplementationError reports which implementation failed to satisfy which
// interface. It matches ErrNotImplements in errors.Is chains.
type ImplementationError struct {
	// Interface is the name of the interface the registration targeted.
	Interface string
	// Implementation is the name of the offending implementation type.
	Implementation string
}

// NewImplementationError constructs an ImplementationError.
func NewImplementationError(iface, impl string) *ImplementationError {
	return &ImplementationError{Interface: iface, Implementation: impl}
}

// Error implements the error interface.
func (e *ImplementationError) Error() string {
	return fmt.Sprintf("ffx(registrator): %s does not implement %s", e.Implementation, e.Interface)
}

// Is reports whether target matches this error kind.
func (e *ImplementationError) Is(target error) bool {
	return target == ErrNotImplements
}

// Registrator is a receipt of a completed registration: it couples a
// generator entry in the table for interface I with the identifier recorded
// for implementation type T. Constructing one performs the registration.
type Registrator struct {
	// ID is the identifier the implementation was registered under.
	ID apis.TypeID
	// Interface is the name of the interface the generator serves.
	Interface string
	// Implementation is the name of the concrete type the generator creates.
	Implementation string
}

// String implements fmt.Stringer.
func (r Registrator) String() string {
	return fmt.Sprintf("%s as %q for %s", r.Implementation, string(r.ID), r.Interface)
}

// NewRegistratorIn registers implementation type T under id in the table
// for interface I held by storage s, and records id as T's identifier so
// type-level queries can recover it later.
//
// The registered generator produces a fresh *T per call. T must implement I
// through its pointer method set; otherwise ErrNotImplements is reported and
// nothing is registered. Registration errors from the table (duplicate id,
// sealed table, empty id) pass through unchanged, and no identifier is
// recorded for them.
//
// When T describes itself through apis.Described, its TypeDoc becomes the
// entry documentation; a registry.WithDoc option supplied by the caller
// still wins.
//
// A type registered under several interfaces keeps the most recently
// recorded identifier.
func NewRegistratorIn[I any, T any](s apis.Storage, cfg apis.Config, id apis.TypeID, opts ...registry.RegOption) (Registrator, error) {
	r := Registrator{
		ID:             id,
		Interface:      uref.TypeNameFor[I](),
		Implementation: uref.TypeNameFor[T](),
	}

	gen, ok := generatorFor[I, T]()
	if !ok {
		return r, NewImplementationError(r.Interface, r.Implementation)
	}

	// Self-described types contribute their documentation as the default;
	// caller options are applied after it, so an explicit doc wins.
	if d, ok := any(new(T)).(apis.Described); ok {
		opts = append([]registry.RegOption{registry.WithDoc(d.TypeDoc())}, opts...)
	}

	if err := registry.For[I](s, cfg).Register(id, gen, opts...); err != nil {
		return r, err
	}

	// Record the identifier so the recorded strategy can answer for T.
	*storage.Cell[T, apis.TypeID](s) = id
	return r, nil
}

// NewRegistrator is NewRegistratorIn against the global ffx sto and
// configuration.
func NewRegistrator[I any, T any](id apis.TypeID, opts ...registry.RegOption) (Registrator, error) {
	s := st.Load()
	return NewRegistratorIn[I, T](s.sto, s.cfg, id, opts...)
}

// MustNewRegistrator is NewRegistrator, panicking on error.
// Intended for deliberate bootstrap registration.
func MustNewRegistrator[I any, T any](id apis.TypeID, opts ...registry.RegOption) Registrator {
	r, err := NewRegistrator[I, T](id, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// NewIdentifiedRegistrator registers T under the identifier T reports for
// itself. The identifier must be available on T's zero value; identifiers
// that only exist after registration (such as recorded ones) cannot seed a
// registration.
func NewIdentifiedRegistrator[I any, T apis.Identified](opts ...registry.RegOption) (Registrator, error) {
	var zero T
	return NewRegistrator[I, T](zero.TypeID(), opts...)
}

// MustNewIdentifiedRegistrator is NewIdentifiedRegistrator, panicking on error.
func MustNewIdentifiedRegistrator[I any, T apis.Identified](opts ...registry.RegOption) Registrator {
	r, err := NewIdentifiedRegistrator[I, T](opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// generatorFor returns the canonical generator for implementation type T
// serving interface I, or false when *T does not implement I.
func generatorFor[I any, T any]() (apis.Generator[I], bool) {
	if _, ok := any(new(T)).(I); !ok {
		return nil, false
	}
	return func() I { return any(new(T)).(I) }, true
}
