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

// Package ffx provides a global, process-wide object creation service.
//
// ffx is responsible for turning "a string identifier" into a fresh instance
// of an interface. Components register zero-argument generators under
// identifiers like "console", "memory" or "auth.jwt"; any other component in
// the process can then create instances by identifier alone, without
// importing the implementing package:
//
//	sink, err := ffx.New[Sink]("console")
//
// # Design
//
// The core of ffx is a read-mostly global snapshot (state). The snapshot
// holds four things:
//
//   - Config: rules that control registration and identity queries
//     (e.g. how deep to unwrap pointers/slices/maps when normalizing a
//     type, whether re-registering an identifier replaces the previous
//     entry, whether identifiers are case-folded).
//
//   - Storage: a process-wide set of singleton cells addressed by
//     (owner type, value type) pairs. Cells are created lazily, exactly
//     once per pair, and hold the per-interface generator tables as well
//     as the identifier recorded for each registered implementation type.
//     Two packages naming the same type pair always reach the same cell.
//
//   - Resolver: a read-only object that answers "what is the identifier of
//     this value or type?". The resolver tries strategies in priority
//     order:
//     1. If the value reports its own identifier (apis.Identified), use it.
//     2. If an identifier was recorded for the value's type at
//     registration time, use that.
//     Unknown values resolve to the zero TypeID; identity is never
//     invented from type names.
//     Resolver is expected to be concurrency-safe for reads.
//
//   - Builder: a pluggable factory that knows how to construct Storage
//     and Resolver instances for a given Config (and optional extension
//     data). The Builder migrates cells from previous Storage instances
//     by pointer, so tables survive reconfiguration.
//
// All of these live inside a single immutable struct called state.
// The package holds an atomic pointer to the current state. Readers load
// that pointer, use it, and never mutate it. Writers build a brand-new
// state and atomically swap it in.
//
// This means ffx lookups are lock-free on the snapshot hot path:
//
//	inst, err := ffx.New[Sink]("console")
//	id := ffx.TypeIDOf(inst)
//
// and concurrent callers always see a consistent snapshot. Individual
// tables guard their entries with a read-write mutex, so registration may
// proceed while other goroutines create instances.
//
// # Global API
//
// The package exposes three groups of operations:
//
//  1. Registration and creation helpers:
//
//     Register[I](id, gen, opts...) error
//     MustRegister[I](id, gen, opts...)
//     New[I](id) (I, error)
//     Types[I]() []apis.TypeID
//     IsRegistered[I](id) bool
//     Seal[I]() bool
//     TableOf[I]() *registry.Table[I]
//
//     Each interface I gets its own table inside the global Storage, so
//     the same identifier may serve different interfaces without
//     collision. Registration of a taken identifier is an error unless
//     Config.AllowReplace is set; Must variants panic and are meant for
//     deliberate bootstrap registration.
//
//  2. Identity helpers:
//
//     TypeIDOf(v any) apis.TypeID
//     TypeIDOfType(t reflect.Type) apis.TypeID
//     StaticTypeIDOf[T]() apis.TypeID
//
//     These answer "what identifier would create this?" and return the
//     zero TypeID for values the process never registered. They never
//     fail and never allocate cells.
//
//  3. Snapshot lifecycle:
//
//     Config() / SetConfig(cfg)
//     Storage() / SetStorage(sto)
//     Resolver() / SetResolver(res)
//     Builder() / SetBuilder(b)
//     SetExt(ext T) / ExtAs[T]() (T, bool)
//     PinStorage() / UnpinStorage() / IsStoragePinned()
//     PinResolver() / UnpinResolver() / IsResolverPinned()
//     SetAll(...)
//
//     Each mutation acquires an internal build lock, derives a new
//     snapshot (rebuilding or reusing Storage / Resolver as needed),
//     and then atomically publishes that snapshot.
//
//     Semantics in short:
//
//     - Config affects registration and identity rules. Calling
//     SetConfig() may trigger a rebuild of Storage and/or Resolver,
//     unless they are explicitly "pinned". Rebuilt storages carry their
//     cells over by pointer, so registrations are not lost.
//
//     - Builder controls how Storage and Resolver are constructed.
//     Swapping the Builder lets you replace resolution logic
//     (different strategies, different identity policies) at runtime.
//
//     - Ext is an opaque extension payload. It is not interpreted by
//     ffx itself. It is simply passed down to the Builder so custom
//     builders (in other binaries) can carry extra policy/state.
//
//     - SetStorage() / SetResolver() directly overwrite the current
//     Storage / Resolver in the snapshot and "pin" them. Once a
//     layer is pinned, ffx will stop rebuilding that layer
//     automatically until you call UnpinStorage()/UnpinResolver().
//
//     - SetAll(...) is the "hard reset" API. It lets a process replace
//     Builder, Config, Ext, Storage, Resolver in one shot. Passing a
//     fresh Storage discards every table and recorded identifier,
//     which is how tests isolate themselves from each other.
//
// # Concurrency model
//
// Reads (New, TypeIDOf, Storage, Resolver, ...) load the current *state
// atomically and never take the build lock. The Storage and Resolver held
// by that state must themselves be concurrency-safe for reads; tables
// serialize registration against creation with a short read-write mutex.
//
// Writes (SetConfig, SetBuilder, SetExt, SetStorage, SetResolver, etc.)
// take a short build mutex, assemble a brand-new state struct, and then
// publish it via an atomic pointer swap. This gives the calling binary
// a predictable "last write wins" behavior without forcing per-lookup
// locking.
//
// # Pinning
//
// ffx supports the concept of "pinning" a layer:
//
//   - When you call SetStorage(sto), that exact Storage becomes the
//     process-wide storage and is considered pinned. Further calls to
//     SetConfig() will not attempt to rebuild a new Storage until you
//     explicitly UnpinStorage().
//
//   - When you call SetResolver(res), that Resolver is pinned and will
//     not be rebuilt automatically until UnpinResolver().
//
// Pinning is there for advanced scenarios where you want full control
// over one layer while still letting other layers evolve. For example,
// you may lock a custom Resolver that consults an external identity
// service but still allow the rest of the system to change Config values.
//
// # Extension config
//
// The snapshot also carries an "ext" field. This is an opaque interface{}
// (any) value owned by the embedding binary. ffx does not interpret ext.
// The active Builder receives ext on each rebuild, so out-of-tree builders
// can inject custom creation or identity logic without hacking the ffx
// core.
//
// # Usage pattern in a binary
//
// A typical component does:
//
//  1. Let ffx init with default builder/config.
//
//  2. Register its implementations up front, from an explicit bootstrap
//     function rather than init side effects:
//
//     ffx.MustNewRegistrator[Sink, consoleSink]("console")
//     ffx.MustNewRegistrator[Sink, memorySink]("memory")
//
//  3. Create instances by identifier wherever configuration names them:
//
//     sink, err := ffx.New[Sink](cfg.SinkType)
//
//  4. Use ffx.TypeIDOf(...) when logs or wire formats need to say what
//     something is.
//
//  5. In tests, call ffx.SetAll(...) with a fresh Storage to get
//     deterministic state between test cases.
//
// # Scope
//
// ffx is intentionally small. It does not try to be a general DI container
// or service locator. It only solves one job:
//
//	"Given a string identifier, create a fresh instance of an interface —
//	 and given an instance or type, report the identifier that creates it."
//
// Everything else (lifecycle, injection, wiring order, configuration of the
// created instances) belongs to higher layers.
package ffx
