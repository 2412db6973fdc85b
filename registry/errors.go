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

package registry

import (
	"errors"
	"fmt"

	"dirpx.dev/ffx/apis"
)

var (
	// ErrEmptyID is returned when an empty type identifier is provided.
	ErrEmptyID = errors.New("ffx(registry): empty type identifier provided")
	// ErrNilGenerator is returned when a nil generator is provided.
	ErrNilGenerator = errors.New("ffx(registry): nil generator provided")
	// ErrDuplicate indicates an attempt to register an identifier that is
	// already taken. Match with errors.Is; the concrete error carries the
	// interface and identifier.
	ErrDuplicate = errors.New("ffx(registry): duplicate type registration")
	// ErrUnknown indicates a lookup or instantiation for an unregistered
	// identifier. Match with errors.Is; the concrete error carries the
	// interface and identifier. Recoverable: callers may fall back or report.
	ErrUnknown = errors.New("ffx(registry): unknown type identifier")
	// ErrSealed indicates an attempt to register in a sealed table.
	ErrSealed = errors.New("ffx(registry): sealed table")
)

// UnknownTypeError reports an instantiation or lookup of an identifier that
// was never registered for the interface.
type UnknownTypeError struct {
	// Interface is the stable name of the interface whose table was queried.
	Interface string
	// ID is the identifier that was not found.
	ID apis.TypeID
}

// NewUnknownTypeError constructs an UnknownTypeError.
func NewUnknownTypeError(iface string, id apis.TypeID) *UnknownTypeError {
	return &UnknownTypeError{Interface: iface, ID: id}
}

// Error implements the error interface.
func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("ffx(registry): failed to find type %q in registry for %s", string(e.ID), e.Interface)
}

// Is reports whether target is ErrUnknown, so callers can match the
// sentinel without knowing the concrete type.
func (e *UnknownTypeError) Is(target error) bool { return target == ErrUnknown }

// DuplicateError reports a registration under an identifier that is already
// taken in the interface's table.
type DuplicateError struct {
	// Interface is the stable name of the interface whose table rejected
	// the registration.
	Interface string
	// ID is the contested identifier.
	ID apis.TypeID
}

// NewDuplicateError constructs a DuplicateError.
func NewDuplicateError(iface string, id apis.TypeID) *DuplicateError {
	return &DuplicateError{Interface: iface, ID: id}
}

// Error implements the error interface.
func (e *DuplicateError) Error() string {
	return fmt.Sprintf("ffx(registry): type %q already registered for %s", string(e.ID), e.Interface)
}

// Is reports whether target is ErrDuplicate.
func (e *DuplicateError) Is(target error) bool { return target == ErrDuplicate }
