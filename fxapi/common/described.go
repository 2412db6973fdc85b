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

// Described augments Identified with human-oriented documentation about the
// type.
//
// # Overview
//
// Described is a higher-level contract for implementations that document
// themselves. While Identified carries the compact, canonical identifier
// used for lookups, Described adds context that is useful for:
//
//   - Table listings and administrative or developer-facing tooling.
//   - Debugging and introspection.
//   - Generated documentation of the available implementations.
//
// Registration consumes this contract: when a type registered through a
// Registrator implements Described, its documentation is attached to the
// table entry automatically, so listings show it without the registering
// code repeating the text. An explicit doc option supplied at registration
// time takes precedence.
//
// Both methods are type-level: they describe the *kind* of implementation,
// not any particular instance.
//
// # Usage
//
//	type fileSink struct{}
//
//	func (fileSink) TypeID() common.TypeID { return "file" }
//	func (fileSink) TypeDoc() string       { return "appends records to a local file" }
//
// # Contract
//
//   - TypeDoc MUST be safe for concurrent use by multiple goroutines.
//   - TypeDoc MUST be callable on the zero value of the implementing type
//     and MUST NOT depend on mutable instance state.
//   - TypeDoc MUST NOT perform blocking operations or I/O, and SHOULD
//     return a string literal or precomputed value.
//   - The returned string SHOULD be a short, single-sentence description,
//     stable for a given version of the implementation. It MAY be empty if
//     no description is available; consumers SHOULD handle that case
//     gracefully (for example, by falling back to the TypeID).
type Described interface {
	Identified

	// TypeDoc returns a short human-readable description of the
	// implementing type.
	TypeDoc() string
}
