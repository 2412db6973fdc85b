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
	"errors"
	"sync"
	"sync/atomic"

	"dirpx.dev/ffx/apis"
	"dirpx.dev/ffx/builder"
	"dirpx.dev/ffx/config"
)

// init initializes the global ffx state.
func init() {
	// Initialize state with default cfg, sto, and res.
	s := &state{cfg: config.DefaultConfig()}
	b := builder.New()
	s.sto = b.BuildStorage(s.cfg, nil, nil)
	s.res = b.BuildResolver(s.cfg, s.sto, nil, nil)
	s.bld = b
	// Store the initial state atomically.
	st.Store(s)
}

var (
	// ErrNilStorage is panicked when a builder returns a nil storage.
	ErrNilStorage = errors.New("ffx: builder returned nil storage")
	// ErrNilResolver is panicked when a builder returns a nil resolver.
	ErrNilResolver = errors.New("ffx: builder returned nil resolver")
)

// SetAll explicitly sets all global ffx state components.
//
// Nil arguments leave the corresponding component unchanged,
// except for ext which is always replaced. Passing a fresh storage
// discards every table and recorded identifier, which is how tests
// isolate themselves from each other.
//
// This is a convenience wrapper around the global state.
func SetAll(cfg *apis.Config, ext any, sto apis.Storage, res apis.Resolver, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Configuration
	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}

	// Extension
	next := ext

	// Builder
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	// Storage
	nsto := sto
	npsto := false
	if nsto == nil {
		nsto = nbld.BuildStorage(ncfg, old.sto, next)
	} else {
		npsto = true
	}

	// Resolver
	nres := res
	npres := false
	if nres == nil {
		nres = nbld.BuildResolver(ncfg, nsto, old.res, next)
	} else {
		npres = true
	}

	// Ensure non-nil sto and res.
	if nsto == nil {
		panic(ErrNilStorage)
	}
	if nres == nil {
		panic(ErrNilResolver)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  ncfg,
			ext:  next,
			sto:  nsto,
			res:  nres,
			bld:  nbld,
			psto: npsto,
			pres: npres,
		},
	)
}

// Config returns the global ffx configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global ffx configuration to cfg.
// It rebuilds the global sto and res using the new configuration.
// This is a convenience wrapper around the global state.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new sto and res based on the new cfg and old state.
	nsto := old.sto
	if !old.psto {
		nsto = b.BuildStorage(cfg, old.sto, old.ext)
	}
	nres := old.res
	if !old.pres {
		nres = b.BuildResolver(cfg, nsto, old.res, old.ext)
	}

	// Ensure non-nil sto and res.
	if nsto == nil {
		panic(ErrNilStorage)
	}
	if nres == nil {
		panic(ErrNilResolver)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  cfg,
			ext:  old.ext,
			sto:  nsto,
			res:  nres,
			bld:  b,
			psto: old.psto,
			pres: old.pres,
		},
	)
}

// Storage returns the global ffx sto.
func Storage() apis.Storage {
	return st.Load().sto
}

// SetStorage sets the global ffx sto to sto.
// It uses the global ffx configuration to rebuild the global res.
// This is a convenience wrapper around the global state.
func SetStorage(sto apis.Storage) {
	if sto == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new res based on the old cfg and new sto.
	nres := old.res
	if !old.pres {
		nres = b.BuildResolver(old.cfg, sto, old.res, old.ext)
	}

	// Ensure non-nil res.
	if nres == nil {
		panic(ErrNilResolver)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			sto:  sto,
			res:  nres,
			bld:  b,
			psto: true,
			pres: old.pres,
		},
	)
}

// Resolver returns the global ffx res.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver sets the global ffx res to res.
// It uses the global ffx configuration and sto.
// This is a convenience wrapper around the global state.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			sto:  old.sto,
			res:  res,
			bld:  old.bld,
			psto: old.psto,
			pres: true,
		},
	)
}

// Builder returns the global ffx bld.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global ffx bld to b.
// This is a convenience wrapper around the global state.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Build new sto and res based on the new bld and old state.
	nsto := old.sto
	if !old.psto {
		nsto = b.BuildStorage(old.cfg, old.sto, old.ext)
	}
	nres := old.res
	if !old.pres {
		nres = b.BuildResolver(old.cfg, nsto, old.res, old.ext)
	}

	// Ensure non-nil sto and res.
	if nsto == nil {
		panic(ErrNilStorage)
	}
	if nres == nil {
		panic(ErrNilResolver)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			sto:  nsto,
			res:  nres,
			bld:  b,
			psto: old.psto,
			pres: old.pres,
		},
	)
}

// SetExt replaces extension config and rebuilds non-pinned layers via the builder.
func SetExt[T any](ext T) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new sto and res based on the new ext and old state.
	nsto := old.sto
	if !old.psto {
		nsto = b.BuildStorage(old.cfg, old.sto, ext)
	}
	nres := old.res
	if !old.pres {
		nres = b.BuildResolver(old.cfg, nsto, old.res, ext)
	}

	// Ensure non-nil sto and res.
	if nsto == nil {
		panic(ErrNilStorage)
	}
	if nres == nil {
		panic(ErrNilResolver)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  ext,
			sto:  nsto,
			res:  nres,
			bld:  b,
			psto: old.psto,
			pres: old.pres,
		},
	)
}

// ExtAs returns the global ffx extension config as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// IsStoragePinned returns whether the global ffx sto is pinned (immutable).
func IsStoragePinned() bool {
	return st.Load().psto
}

// PinStorage makes the global ffx sto immutable.
func PinStorage() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			sto:  old.sto,
			res:  old.res,
			bld:  old.bld,
			psto: true,
			pres: old.pres,
		},
	)
}

// UnpinStorage makes the global ffx sto mutable again.
func UnpinStorage() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			sto:  old.sto,
			res:  old.res,
			bld:  old.bld,
			psto: false,
			pres: old.pres,
		},
	)
}

// IsResolverPinned returns whether the global ffx res is pinned (immutable).
func IsResolverPinned() bool {
	return st.Load().pres
}

// PinResolver makes the global ffx res immutable.
func PinResolver() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			sto:  old.sto,
			res:  old.res,
			bld:  old.bld,
			psto: old.psto,
			pres: true,
		},
	)
}

// UnpinResolver makes the global ffx res mutable again.
func UnpinResolver() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			sto:  old.sto,
			res:  old.res,
			bld:  old.bld,
			psto: old.psto,
			pres: false,
		},
	)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global ffx state.
var st atomic.Pointer[state]

// state is the global ffx state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global ffx configuration.
	cfg apis.Config
	// ext is the global ffx extension configuration.
	ext any
	// sto is the global ffx sto.
	sto apis.Storage
	// res is the global ffx res.
	res apis.Resolver
	// bld is the global ffx bld.
	bld apis.Builder
	// psto indicates whether the sto is pinned (immutable).
	psto bool
	// pres indicates whether the res is pinned (immutable).
	pres bool
}
