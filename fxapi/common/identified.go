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

package common

// Identified is the capability of a value to report the type identifier it
// is known by.
//
// # Overview
//
// Identified is the primary, zero-reflection fast path for resolving type
// identifiers inside the ffx resolution chain. When a value implements
// Identified and returns a non-zero TypeID, resolution MUST prefer that
// answer and MUST NOT consult any further strategies (such as identifiers
// recorded at registration time) for that value. A zero TypeID means "this
// value does not know its identifier" and lets resolution fall through.
//
// Semantically, Identified is a type-level contract: TypeID describes the
// *kind* of value, not a particular instance. The returned identifier is
// expected to be independent of instance state and to remain stable across
// program executions as long as the registration scheme does not change.
//
// # Usage
//
// Concrete types usually gain the capability by embedding ffx.Mixin, which
// answers with the identifier recorded when the type was registered:
//
//	type consoleSink struct {
//	    ffx.Mixin[consoleSink]
//	}
//
// Types MAY also declare the identifier directly, which additionally makes
// them eligible for identifier-free registration:
//
//	func (fileSink) TypeID() common.TypeID { return "file" }
//
// # Contract
//
//   - TypeID MUST be callable on the zero value of the implementing type
//     and MUST NOT depend on mutable instance state.
//   - TypeID MUST be deterministic for a given concrete type within one
//     registration epoch.
//   - TypeID MUST be safe for concurrent calls from multiple goroutines.
//   - TypeID MUST NOT perform blocking operations or I/O, and SHOULD avoid
//     heap allocations; returning a constant or a recorded value is
//     RECOMMENDED.
type Identified interface {
	// TypeID returns the identifier this value's type is known by, or the
	// zero TypeID if the type has no identifier.
	TypeID() TypeID
}

// IdentifiedFunc adapts a plain function to the Identified interface.
//
// # Overview
//
// IdentifiedFunc allows standalone functions with signature `func() TypeID`
// to satisfy Identified. This is useful when identity is naturally expressed
// as a function, for example when it must be looked up lazily or passed
// around as a dependency, rather than as a method on the value's type.
//
// Using IdentifiedFunc does not change the semantics of Identified: the
// function is still expected to return a stable, type-level identifier, and
// all contractual requirements of Identified apply to it.
//
// # Usage
//
//	var who common.Identified = common.IdentifiedFunc(func() common.TypeID {
//	    return "probe.v1"
//	})
//	id := who.TypeID() // "probe.v1"
type IdentifiedFunc func() TypeID

// TypeID implements Identified for IdentifiedFunc by invoking the wrapped
// function. The adapter adds a single call indirection and no allocations.
func (f IdentifiedFunc) TypeID() TypeID {
	return f()
}
