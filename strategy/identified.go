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

package strategy

import (
	"reflect"

	"dirpx.dev/ffx/apis"
)

// NewIdentified creates an apis.Strategy that uses the apis.Identified
// capability.
func NewIdentified() apis.Strategy {
	return &identifiedStrategy{}
}

// identifiedStrategy is a zero-cost fast path: if v implements
// apis.Identified and reports a non-empty identifier, return it and stop
// the chain. An empty identifier falls through, so a capability holder whose
// type was never registered still gets a chance at the recorded lookup.
type identifiedStrategy struct{}

// Ensure identifiedStrategy implements apis.Strategy.
var _ apis.Strategy = (*identifiedStrategy)(nil)

// TryResolve checks if v implements apis.Identified and returns its TypeID().
func (*identifiedStrategy) TryResolve(v any, _ apis.Config) (apis.TypeID, bool) {
	if v == nil {
		return "", false
	}
	if n, ok := v.(apis.Identified); ok {
		if id := n.TypeID(); !id.IsZero() {
			return id, true
		}
	}
	return "", false
}

// TryResolveType always returns false: the capability requires an instance.
func (*identifiedStrategy) TryResolveType(_ reflect.Type, _ apis.Config) (apis.TypeID, bool) {
	// No instance -> cannot use the capability.
	return "", false
}
