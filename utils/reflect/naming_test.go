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

package reflect_test

import (
	"reflect"
	"strings"
	"testing"

	uref "dirpx.dev/ffx/utils/reflect"
)

type namedIface interface{ Hello() }

func TestTypeName_Named(t *testing.T) {
	got := uref.TypeName(reflect.TypeOf(A{}))
	want := "dirpx.dev/ffx/utils/reflect_test.A"
	if got != want {
		t.Fatalf("TypeName(A) = %q, want %q", got, want)
	}
}

func TestTypeName_Builtin(t *testing.T) {
	if got := uref.TypeName(reflect.TypeOf("")); got != "string" {
		t.Fatalf("TypeName(string) = %q, want %q", got, "string")
	}
	if got := uref.TypeName(reflect.TypeOf(0)); got != "int" {
		t.Fatalf("TypeName(int) = %q, want %q", got, "int")
	}
}

func TestTypeName_Unnamed(t *testing.T) {
	// Unnamed types fall back to the composite notation.
	got := uref.TypeName(reflect.TypeOf(&A{}))
	if !strings.HasPrefix(got, "*") || !strings.Contains(got, ".A") {
		t.Fatalf("TypeName(*A) = %q, want pointer notation ending in .A", got)
	}
	if got := uref.TypeName(nil); got != "" {
		t.Fatalf("TypeName(nil) = %q, want empty", got)
	}
}

func TestTypeName_GenericInstantiationsDistinct(t *testing.T) {
	gi := uref.TypeName(reflect.TypeOf(G[int]{}))
	gs := uref.TypeName(reflect.TypeOf(G[string]{}))
	if gi == gs {
		t.Fatalf("generic instantiations must not collide: %q == %q", gi, gs)
	}
	if !strings.Contains(gi, "[") {
		t.Fatalf("instantiation suffix missing from %q", gi)
	}
}

func TestTypeNameFor_Interface(t *testing.T) {
	// The type parameter form must name the interface itself,
	// which reflect.TypeOf on a value can never produce.
	got := uref.TypeNameFor[namedIface]()
	want := "dirpx.dev/ffx/utils/reflect_test.namedIface"
	if got != want {
		t.Fatalf("TypeNameFor[namedIface]() = %q, want %q", got, want)
	}
}

func TestTypeNameFor_MatchesTypeName(t *testing.T) {
	if uref.TypeNameFor[A]() != uref.TypeName(reflect.TypeOf(A{})) {
		t.Fatalf("TypeNameFor[A] and TypeName(TypeOf(A{})) disagree")
	}
}
