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

package builder

import (
	"dirpx.dev/ffx/apis"
	"dirpx.dev/ffx/resolver"
	"dirpx.dev/ffx/storage"
	"dirpx.dev/ffx/strategy"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildStorage builds and returns a new apis.Storage based on the provided
// configuration and pre-existing storage. If a pre-existing storage is
// provided, its cells are carried over into the new storage unchanged:
// callers holding a cell pointer keep seeing the same cell after a rebuild.
func (b *builder) BuildStorage(_ apis.Config, prev apis.Storage, _ any) apis.Storage {
	nsto := storage.New()
	if prev != nil {
		prev.Range(func(k apis.Key, v any) bool {
			nsto.Cell(k, func() any { return v })
			return true
		})
	}
	return nsto
}

// BuildResolver builds and returns a new apis.Resolver based on the provided
// configuration and storage. Identity claimed by the value itself wins over
// identity recorded at registration time.
func (b *builder) BuildResolver(_ apis.Config, sto apis.Storage, _ apis.Resolver, _ any) apis.Resolver {
	return resolver.New(
		strategy.NewIdentified(),
		strategy.NewRecorded(sto),
	)
}
