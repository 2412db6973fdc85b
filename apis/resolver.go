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
	"reflect"
)

// Resolver coordinates strategies to recover type identifiers for values and
// types. Typical chain: IdentifiedStrategy -> RecordedStrategy.
//
// Identity recovery is soft: an implementation that cannot determine an
// identifier returns the empty TypeID, never an error.
type Resolver interface {
	// Resolve returns the registered identifier for v, or "" if none is known.
	Resolve(v any, cfg Config) TypeID

	// ResolveType returns the registered identifier for t, or "" if none is known.
	ResolveType(t reflect.Type, cfg Config) TypeID
}
