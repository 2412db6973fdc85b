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

import "dirpx.dev/ffx/api/common"

// TypeID identifies one implementation of an interface within its table.
// It is an opaque, equality-comparable string chosen at registration time.
// The empty TypeID is reserved to mean "no identifier".
//
// The type is defined in dirpx.dev/ffx/api/common so that implementors can
// depend on the identifier contract alone; it is aliased here so that code
// wired to this module needs a single import.
type TypeID = common.TypeID

// Identified is the capability of an instance to report the type identifier
// it is known by. Implementations registered through a Registrator usually
// gain it by embedding ffx.Mixin.
//
// TypeID must be callable on the zero value of the implementing type and
// must not depend on instance state: the identifier is a property of the
// type, not of the instance. The full contract lives with the definition in
// dirpx.dev/ffx/api/common.
type Identified = common.Identified

// Described augments Identified with a short self-description. Types that
// implement it get their documentation attached to the table entry when
// registered through a Registrator.
type Described = common.Described

// Generator produces a new instance exposed through the interface type I.
// A Generator takes no arguments, captures no per-call state, and may be
// invoked any number of times; each call returns a fresh instance.
type Generator[I any] func() I
