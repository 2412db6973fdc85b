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
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"dirpx.dev/ffx/apis"
	"dirpx.dev/ffx/storage"
	uref "dirpx.dev/ffx/utils/reflect"
)

// Entry holds a registered generator with its identifier and optional
// documentation.
type Entry[I any] struct {
	ID  apis.TypeID
	Gen apis.Generator[I]
	Doc string // optional human-readable description
}

// RegOption modifies per-entry registration parameters.
type RegOption func(*regOpts)

type regOpts struct {
	doc string
}

// WithDoc attaches a human-readable note to the entry.
func WithDoc(doc string) RegOption { return func(o *regOpts) { o.doc = doc } }

// Table maps type identifiers to generators for one interface I.
// It is safe for concurrent use; the zero value is ready to use with
// default behavior (duplicates rejected, identifiers case-sensitive).
type Table[I any] struct {
	// cfg carries AllowReplace and FoldIDs; adopted at construction.
	cfg apis.Config
	// mu guards entries.
	mu sync.RWMutex
	// entries maps normalized identifiers to registered entries.
	entries map[apis.TypeID]Entry[I]
	// sealed, when true, makes further Register calls fail.
	sealed atomic.Bool
}

// New creates an empty table for interface I with the provided configuration.
func New[I any](cfg apis.Config) *Table[I] {
	return &Table[I]{
		cfg:     cfg,
		entries: make(map[apis.TypeID]Entry[I]),
	}
}

// For returns the singleton table for interface I inside storage s: the cell
// addressed by the (I, Table[I]) type pair. The table is created on first
// access; the first accessor's cfg is adopted, later cfg arguments are
// ignored. Every caller naming the same interface against the same storage
// receives the identical table, which is what keeps registrations made in
// one module visible to consumers in another.
func For[I any](s apis.Storage, cfg apis.Config) *Table[I] {
	v := s.Cell(storage.KeyOf[I, Table[I]](), func() any { return New[I](cfg) })
	return v.(*Table[I])
}

// Interface returns the stable name of the interface this table serves.
func (t *Table[I]) Interface() string {
	return uref.TypeNameFor[I]()
}

// normalize canonicalizes an identifier according to the table config.
func (t *Table[I]) normalize(id apis.TypeID) apis.TypeID {
	if t.cfg.FoldIDs {
		return apis.TypeID(strings.ToLower(string(id)))
	}
	return id
}

// Sealed reports whether the table is sealed (no further registrations allowed).
func (t *Table[I]) Sealed() bool { return t.sealed.Load() }

// Seal prevents further registrations. It is idempotent and safe for
// concurrent use. Returns true if this call changed the state from unsealed
// to sealed.
func (t *Table[I]) Seal() bool { return !t.sealed.Swap(true) }

// Register adds a generator for the given identifier.
//
// It returns ErrEmptyID or ErrNilGenerator on invalid input, ErrSealed after
// Seal, and a *DuplicateError (matching ErrDuplicate) when the identifier is
// already taken, unless AllowReplace is configured. The duplicate check runs
// in every build; a silently overwritten generator is never acceptable.
func (t *Table[I]) Register(id apis.TypeID, gen apis.Generator[I], ropts ...RegOption) error {
	if t.Sealed() {
		return ErrSealed
	}
	if id.IsZero() {
		return ErrEmptyID
	}
	if gen == nil {
		return ErrNilGenerator
	}
	id = t.normalize(id)

	var o regOpts
	for _, fn := range ropts {
		fn(&o)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.entries == nil {
		t.entries = make(map[apis.TypeID]Entry[I])
	}
	if _, exists := t.entries[id]; exists && !t.cfg.AllowReplace {
		return NewDuplicateError(t.Interface(), id)
	}
	t.entries[id] = Entry[I]{ID: id, Gen: gen, Doc: o.doc}
	return nil
}

// MustRegister panics on registration error. Useful from bootstrap routines
// that register a fixed set of implementations at process start.
func MustRegister[I any](t *Table[I], id apis.TypeID, gen apis.Generator[I], ropts ...RegOption) {
	if err := t.Register(id, gen, ropts...); err != nil {
		panic(err)
	}
}

// New creates a new instance of the type registered under id by invoking its
// generator. It returns a *UnknownTypeError (matching ErrUnknown) when id is
// not registered; no construction happens on a failed lookup. The generator
// runs outside the table lock.
func (t *Table[I]) New(id apis.TypeID) (I, error) {
	id = t.normalize(id)
	t.mu.RLock()
	e, ok := t.entries[id]
	t.mu.RUnlock()
	if !ok {
		var zero I
		return zero, NewUnknownTypeError(t.Interface(), id)
	}
	return e.Gen(), nil
}

// Lookup returns the generator for id, if present.
func (t *Table[I]) Lookup(id apis.TypeID) (apis.Generator[I], bool) {
	id = t.normalize(id)
	t.mu.RLock()
	e, ok := t.entries[id]
	t.mu.RUnlock()
	return e.Gen, ok
}

// IsRegistered reports whether id is registered.
func (t *Table[I]) IsRegistered(id apis.TypeID) bool {
	id = t.normalize(id)
	t.mu.RLock()
	_, ok := t.entries[id]
	t.mu.RUnlock()
	return ok
}

// Types returns all registered identifiers in deterministic
// (lexicographic) order.
func (t *Table[I]) Types() []apis.TypeID {
	t.mu.RLock()
	ids := make([]apis.TypeID, 0, len(t.entries))
	for id := range t.entries {
		ids = append(ids, id)
	}
	t.mu.RUnlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Entries returns a snapshot of all registered entries in deterministic order.
func (t *Table[I]) Entries() []Entry[I] {
	t.mu.RLock()
	items := make([]Entry[I], 0, len(t.entries))
	for _, e := range t.entries {
		items = append(items, e)
	}
	t.mu.RUnlock()

	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

// Len returns the number of registered entries.
func (t *Table[I]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Reset clears all registered entries and unseals the table.
// Intended for tests that reuse a process-wide table.
func (t *Table[I]) Reset() {
	t.mu.Lock()
	t.entries = make(map[apis.TypeID]Entry[I])
	t.mu.Unlock()
	t.sealed.Store(false)
}
