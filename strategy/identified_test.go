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

package strategy_test

import (
	"reflect"
	"testing"

	"dirpx.dev/ffx/apis"
	"dirpx.dev/ffx/strategy"
)

type identifiedType struct{}

func (identifiedType) TypeID() apis.TypeID { return "custom.id" } // implements apis.Identified

type blankIdentified struct{}

func (blankIdentified) TypeID() apis.TypeID { return "" }

func TestIdentifiedStrategy_TryResolve(t *testing.T) {
	s := strategy.NewIdentified()
	conf := apis.Config{} // config is irrelevant for the capability

	// With value implementing apis.Identified -> handled = true
	got, ok := s.TryResolve(identifiedType{}, conf)
	if !ok || got != "custom.id" {
		t.Fatalf("TryResolve: got (%q,%v), want (custom.id,true)", got, ok)
	}

	// With plain value -> handled = false
	got, ok = s.TryResolve(struct{}{}, conf)
	if ok || got != "" {
		t.Fatalf("TryResolve(plain): got (%q,%v), want ('',false)", got, ok)
	}

	// Nil value -> handled = false
	got, ok = s.TryResolve(nil, conf)
	if ok || got != "" {
		t.Fatalf("TryResolve(nil): got (%q,%v), want ('',false)", got, ok)
	}

	// TryResolveType should never handle (no instance)
	typ := reflect.TypeOf(identifiedType{})
	got, ok = s.TryResolveType(typ, conf)
	if ok || got != "" {
		t.Fatalf("TryResolveType: got (%q,%v), want ('',false)", got, ok)
	}
}

func TestIdentifiedStrategy_EmptyIDFallsThrough(t *testing.T) {
	s := strategy.NewIdentified()

	// A capability holder reporting no identifier must not stop the chain:
	// the recorded lookup may still know its type.
	got, ok := s.TryResolve(blankIdentified{}, apis.Config{})
	if ok || got != "" {
		t.Fatalf("empty capability id: got (%q,%v), want ('',false)", got, ok)
	}
}

// Ensure the local types actually satisfy apis.Identified (compile-time).
var (
	_ apis.Identified = (*identifiedType)(nil)
	_ apis.Identified = (*blankIdentified)(nil)
)
