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

// Builder composes Storage and Resolver from a Config.
// Implementations may migrate cells from previous instances (prev*), or ignore them.
type Builder interface {
	// BuildStorage constructs a Storage for Config. May migrate cells from the
	// previous storage; migrated cells must keep their identity so singletons
	// survive a rebuild. ext is an optional extension context. Its meaning is
	// implementation-defined.
	BuildStorage(cfg Config, prev Storage, ext any) Storage

	// BuildResolver constructs a Resolver for Config and Storage. May reuse
	// state from a previous resolver. ext is an optional extension context.
	// Its meaning is implementation-defined.
	BuildResolver(cfg Config, sto Storage, prev Resolver, ext any) Resolver
}
