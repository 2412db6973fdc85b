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

package storage

import (
	"sort"
	"sync"

	"dirpx.dev/ffx/apis"
)

// New constructs an empty Storage. Cells are created lazily on first access
// and are never removed; a Storage grows monotonically for the life of the
// process (or until the snapshot holding it is replaced wholesale).
func New() apis.Storage {
	return &store{}
}

// store is a Storage implementation backed by sync.Map.
type store struct {
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps apis.Key to the cell value.
	m sync.Map // map[apis.Key]any
	// count tracks the number of existing cells.
	count int
}

// Ensure store implements apis.Storage.
var _ apis.Storage = (*store)(nil)

// Cell returns the cell addressed by k, allocating it via alloc on first
// access. Exactly one allocation wins under concurrent first access; every
// caller observes the identical cell value. A nil alloc degrades Cell to a
// lookup returning nil when the cell does not exist. A nil alloc result is
// not stored, so cells never hold nil.
func (s *store) Cell(k apis.Key, alloc func() any) any {
	// Fast read path: the cell usually exists.
	if v, ok := s.m.Load(k); ok {
		return v
	}
	if alloc == nil {
		return nil
	}

	// Write path: guard with a mutex to keep the counter consistent and to
	// guarantee a single allocation per key.
	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-check under lock in case another goroutine allocated meanwhile.
	if v, ok := s.m.Load(k); ok {
		return v
	}

	v := alloc()
	if v == nil {
		return nil
	}
	s.m.Store(k, v)
	s.count++
	return v
}

// Lookup returns the cell addressed by k if it exists. It never allocates.
func (s *store) Lookup(k apis.Key) (any, bool) {
	return s.m.Load(k)
}

// Keys returns all cell keys in deterministic (lexicographic) order.
func (s *store) Keys() []apis.Key {
	keys := make([]apis.Key, 0, s.Len())
	s.m.Range(func(key, _ any) bool {
		keys = append(keys, key.(apis.Key))
		return true
	})
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Owner == keys[j].Owner {
			return keys[i].Value < keys[j].Value
		}
		return keys[i].Owner < keys[j].Owner
	})
	return keys
}

// Len returns the number of existing cells.
func (s *store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// Range calls fn for each cell until fn returns false.
func (s *store) Range(fn func(k apis.Key, v any) bool) {
	s.m.Range(func(key, value any) bool {
		return fn(key.(apis.Key), value)
	})
}
