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

	"dirpx.dev/ffx/apis"
	"dirpx.dev/ffx/storage"
	uref "dirpx.dev/ffx/utils/reflect"
)

// NewRecorded creates an apis.Strategy that consults identifiers recorded in
// storage s at registration time.
func NewRecorded(s apis.Storage) apis.Strategy {
	return &recordedStrategy{sto: s}
}

// recordedStrategy recovers identity for types registered through a
// Registrator, which records the identifier in the (T, TypeID) cell of its
// storage. It works without any capability on the instance: the instance
// type is normalized to its nearest named type and the matching cell is
// peeked. Identity is never invented: a type with no recorded cell stays
// unknown, whatever its name looks like.
type recordedStrategy struct {
	sto apis.Storage
}

// Ensure recordedStrategy implements apis.Strategy.
var _ apis.Strategy = (*recordedStrategy)(nil)

// typeIDType is the value side of every recorded identifier cell.
var typeIDType = reflect.TypeFor[apis.TypeID]()

// TryResolve recovers the recorded identifier for v's type.
func (s *recordedStrategy) TryResolve(v any, cfg apis.Config) (apis.TypeID, bool) {
	if v == nil {
		return "", false
	}
	return s.TryResolveType(reflect.TypeOf(v), cfg)
}

// TryResolveType recovers the recorded identifier for t.
// The lookup never allocates cells, so queries leave no trace in storage.
func (s *recordedStrategy) TryResolveType(t reflect.Type, cfg apis.Config) (apis.TypeID, bool) {
	if t == nil || s.sto == nil {
		return "", false
	}
	base, err := uref.Normalize(t, cfg)
	if err != nil {
		return "", false
	}
	v, ok := s.sto.Lookup(storage.KeyForTypes(base, typeIDType))
	if !ok {
		return "", false
	}
	id, ok := v.(*apis.TypeID)
	if !ok || id.IsZero() {
		return "", false
	}
	return *id, true
}
