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

// Key addresses one storage cell by a pair of stable type names.
// Owner is the name of the type on whose behalf the cell exists (for a
// registry table that is the interface type; for a recorded identifier it is
// the implementation type). Value is the name of the type stored in the cell.
//
// Keys are derived from fully package-qualified source-level type names, not
// from in-memory type tokens, so independently compiled modules that name the
// same (owner, value) pair address the same cell.
type Key struct {
	// Owner is the stable name of the owning type.
	Owner string
	// Value is the stable name of the stored value type.
	Value string
}

// IsZero reports whether both sides of the key are empty.
func (k Key) IsZero() bool { return k.Owner == "" && k.Value == "" }

// String renders the key as "owner / value".
func (k Key) String() string { return k.Owner + " / " + k.Value }

// Storage is a process-wide set of singleton cells addressed by Key.
// Cells are created lazily on first access and live until process exit;
// nothing ever frees them. Implementations must be safe for concurrent use.
type Storage interface {
	// Cell returns the cell addressed by k, allocating it via alloc on first
	// access. Under concurrent first access exactly one allocation wins and
	// every caller observes the identical cell value. A nil alloc degrades
	// Cell to a lookup that returns nil when the cell does not exist.
	Cell(k Key, alloc func() any) any

	// Lookup returns the cell addressed by k if it exists. It never
	// allocates, so queries have no side effects on the storage.
	Lookup(k Key) (any, bool)

	// Keys returns all cell keys in deterministic (lexicographic) order.
	Keys() []Key

	// Len returns the number of existing cells.
	Len() int

	// Range calls fn for each cell until fn returns false.
	// The iteration order is unspecified.
	Range(fn func(k Key, v any) bool)
}
