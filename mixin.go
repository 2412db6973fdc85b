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
	"dirpx.dev/ffx/apis"
)

// Mixin equips implementation type T with a TypeID method reporting the
// identifier recorded for T at registration time. Embed it by value, naming
// the embedding type itself:
//
//	type wheel struct {
//		ffx.Mixin[wheel]
//	}
//
// The promoted method consults the global ffx sto, so it reports the zero
// TypeID until T is registered through a Registrator, and it keeps answering
// from the global snapshot even when instances were created elsewhere.
type Mixin[T any] struct{}

// TypeID implements apis.Identified for the embedding type.
func (Mixin[T]) TypeID() apis.TypeID {
	return StaticTypeIDOf[T]()
}

// Ensure the mixin satisfies the capability it promotes.
var _ apis.Identified = Mixin[struct{}]{}
