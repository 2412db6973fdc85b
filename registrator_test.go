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

package ffx_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"dirpx.dev/ffx"
	"dirpx.dev/ffx/apis"
	"dirpx.dev/ffx/registry"
)

// crate carries the embeddable trait: its TypeID method reports whatever
// identifier the process recorded for crate.
type crate struct {
	ffx.Mixin[crate]
}

func (crate) Carry() string { return "crate" }

// stamped declares its identifier itself, available on the zero value.
type stamped struct{}

func (stamped) TypeID() apis.TypeID { return "stamped.v1" }
func (stamped) Carry() string       { return "stamped" }

// labeled additionally documents itself; registration picks the text up.
type labeled struct{}

func (labeled) TypeID() apis.TypeID { return "labeled.v1" }
func (labeled) TypeDoc() string     { return "test porter that labels itself" }
func (labeled) Carry() string       { return "labeled" }

func TestNewRegistrator_RoundTrip(t *testing.T) {
	resetGlobal(t)

	r, err := ffx.NewRegistrator[porter, cart]("cart")
	if err != nil {
		t.Fatalf("NewRegistrator failed: %v", err)
	}
	if r.ID != "cart" {
		t.Fatalf("receipt ID = %q, want %q", r.ID, "cart")
	}
	if !strings.Contains(r.Interface, "porter") {
		t.Fatalf("receipt Interface = %q, want it to name porter", r.Interface)
	}
	if !strings.Contains(r.Implementation, "cart") {
		t.Fatalf("receipt Implementation = %q, want it to name cart", r.Implementation)
	}

	// Create by identifier, then ask the instance's identifier back.
	p, err := ffx.New[porter]("cart")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := p.Carry(); got != "cart" {
		t.Fatalf("Carry = %q, want %q", got, "cart")
	}
	if got := ffx.TypeIDOf(p); got != "cart" {
		t.Fatalf("TypeIDOf(instance) = %q, want %q", got, "cart")
	}

	// Type-level queries agree with the instance-level one.
	if got := ffx.TypeIDOfType(reflect.TypeOf(cart{})); got != "cart" {
		t.Fatalf("TypeIDOfType = %q, want %q", got, "cart")
	}
	if got := ffx.StaticTypeIDOf[cart](); got != "cart" {
		t.Fatalf("StaticTypeIDOf = %q, want %q", got, "cart")
	}
}

func TestNewRegistrator_NotImplements(t *testing.T) {
	resetGlobal(t)

	// cart does not implement gauge.
	_, err := ffx.NewRegistrator[gauge, cart]("cart")
	if !errors.Is(err, ffx.ErrNotImplements) {
		t.Fatalf("err = %v, want ErrNotImplements", err)
	}

	var ie *ffx.ImplementationError
	if !errors.As(err, &ie) {
		t.Fatalf("err = %T, want *ImplementationError", err)
	}
	if !strings.Contains(ie.Interface, "gauge") || !strings.Contains(ie.Implementation, "cart") {
		t.Fatalf("error names wrong parties: %+v", ie)
	}

	// Nothing was registered and no identifier was recorded.
	if ffx.IsRegistered[gauge]("cart") {
		t.Fatal("failed registration still landed in the table")
	}
	if got := ffx.StaticTypeIDOf[cart](); got != "" {
		t.Fatalf("failed registration recorded an identifier: %q", got)
	}
}

func TestNewRegistrator_DuplicatePassesThrough(t *testing.T) {
	resetGlobal(t)

	if _, err := ffx.NewRegistrator[porter, cart]("x"); err != nil {
		t.Fatalf("first NewRegistrator failed: %v", err)
	}
	_, err := ffx.NewRegistrator[porter, sled]("x")
	if !errors.Is(err, registry.ErrDuplicate) {
		t.Fatalf("err = %v, want ErrDuplicate", err)
	}

	// The losing type must not have gained a recorded identity.
	if got := ffx.StaticTypeIDOf[sled](); got != "" {
		t.Fatalf("loser recorded an identifier: %q", got)
	}
	if got := ffx.StaticTypeIDOf[cart](); got != "x" {
		t.Fatalf("winner lost its identifier: %q", got)
	}
}

func TestMustNewRegistrator_PanicsOnError(t *testing.T) {
	resetGlobal(t)

	defer func() {
		if recover() == nil {
			t.Fatal("MustNewRegistrator did not panic")
		}
	}()
	ffx.MustNewRegistrator[gauge, cart]("cart")
}

func TestMixin_PromotesRecordedIdentifier(t *testing.T) {
	resetGlobal(t)

	// Before registration the trait reports nothing.
	if got := (crate{}).TypeID(); got != "" {
		t.Fatalf("TypeID before registration = %q, want empty", got)
	}

	ffx.MustNewRegistrator[porter, crate]("crate")

	if got := (crate{}).TypeID(); got != "crate" {
		t.Fatalf("TypeID after registration = %q, want %q", got, "crate")
	}

	// The trait also makes instances self-identifying for TypeIDOf.
	p, err := ffx.New[porter]("crate")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := ffx.TypeIDOf(p); got != "crate" {
		t.Fatalf("TypeIDOf = %q, want %q", got, "crate")
	}
}

func TestNewIdentifiedRegistrator_UsesDeclaredID(t *testing.T) {
	resetGlobal(t)

	r, err := ffx.NewIdentifiedRegistrator[porter, stamped]()
	if err != nil {
		t.Fatalf("NewIdentifiedRegistrator failed: %v", err)
	}
	if r.ID != "stamped.v1" {
		t.Fatalf("receipt ID = %q, want %q", r.ID, "stamped.v1")
	}

	if !ffx.IsRegistered[porter]("stamped.v1") {
		t.Fatal("declared identifier not registered")
	}
	p, err := ffx.New[porter]("stamped.v1")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := p.Carry(); got != "stamped" {
		t.Fatalf("Carry = %q, want %q", got, "stamped")
	}
}

func TestRegistrator_SelfDescribedDoc(t *testing.T) {
	resetGlobal(t)

	if _, err := ffx.NewIdentifiedRegistrator[porter, labeled](); err != nil {
		t.Fatalf("NewIdentifiedRegistrator failed: %v", err)
	}
	// An explicit doc option wins over the self-description.
	if _, err := ffx.NewRegistrator[porter, labeled]("labeled.alt", registry.WithDoc("override")); err != nil {
		t.Fatalf("NewRegistrator failed: %v", err)
	}

	docs := make(map[apis.TypeID]string)
	for _, e := range ffx.TableOf[porter]().Entries() {
		docs[e.ID] = e.Doc
	}
	if got := docs["labeled.v1"]; got != "test porter that labels itself" {
		t.Fatalf("self-described entry doc = %q, want the type's own text", got)
	}
	if got := docs["labeled.alt"]; got != "override" {
		t.Fatalf("entry doc = %q, want %q", got, "override")
	}
}

func TestRegistrator_String(t *testing.T) {
	resetGlobal(t)

	r, err := ffx.NewRegistrator[porter, cart]("cart")
	if err != nil {
		t.Fatalf("NewRegistrator failed: %v", err)
	}
	s := r.String()
	for _, want := range []string{"cart", `"cart"`, "porter"} {
		if !strings.Contains(s, want) {
			t.Fatalf("String() = %q, missing %q", s, want)
		}
	}
}
