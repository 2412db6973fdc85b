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

package common

import (
	"fmt"
	"strings"
)

// TypeID identifies one implementation of an interface within a factory
// table.
//
// # Overview
//
// TypeID is the canonical, type-level identifier of the ffx subsystem. It is
// chosen by the implementor at registration time and used by callers to
// request new instances, so it plays the role of a public, wire-stable key:
// it appears in configuration files, log records, and error messages.
//
// Semantically, a TypeID is a type-level value: it names the *kind* of
// implementation, never a particular instance. Two instances produced from
// the same registration share the same TypeID.
//
// The empty TypeID is reserved to mean "no identifier". Identity queries
// return it for types that were never registered, and registration rejects
// it as a key.
//
// # Naming guidelines
//
// The value of a TypeID is expected to be:
//
//   - Stable across program executions (MUST), since configuration and
//     persisted references depend on it.
//   - Unique within the interface table it is registered in (MUST; the
//     registry enforces this).
//   - Short and human-readable (SHOULD; lowercase, dot- or dash-separated
//     segments such as "console" or "sink.memory" are RECOMMENDED).
//
// Comparison is exact: TypeID values are case-sensitive and are never
// folded or normalized after they enter a table.
type TypeID string

// IsZero reports whether the identifier is empty.
//
// The zero TypeID is the universal "absent" value: identity queries return
// it instead of an error, and callers SHOULD branch on IsZero rather than
// comparing against a literal empty string.
func (id TypeID) IsZero() bool { return id == "" }

// String returns the identifier as a plain string. For the zero TypeID it
// returns "".
//
// String implements fmt.Stringer. The returned value is the identifier
// itself, with no quoting or decoration, and MUST remain byte-for-byte
// stable for a given TypeID: systems persist and parse these strings.
func (id TypeID) String() string { return string(id) }

// ParseTypeID converts textual input into a TypeID.
//
// # Contract
//
//   - s MAY contain surrounding whitespace; it will be trimmed.
//   - The trimmed value is used verbatim: matching is case-sensitive and no
//     further normalization is applied.
//   - On success, ParseTypeID returns a non-zero TypeID and a nil error.
//   - If the trimmed input is empty, ParseTypeID returns the zero TypeID and
//     a non-nil error; callers MUST NOT rely on the returned TypeID in the
//     error case.
//   - ParseTypeID MUST NOT panic for any input.
//
// # Usage
//
// ParseTypeID is suitable for configuration values, environment variables,
// CLI flags, and other human-authored inputs. For hard-coded identifiers
// that are expected to be valid, callers MAY prefer MustParseTypeID for
// brevity.
func ParseTypeID(s string) (TypeID, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", fmt.Errorf("ffx: empty type identifier")
	}
	return TypeID(trimmed), nil
}

// MustParseTypeID is like ParseTypeID but panics on invalid input.
//
// It is intended for hard-coded identifiers in Go code, tests, and
// initialization paths where an invalid value is a programmer error rather
// than a recoverable condition. Callers MUST NOT use MustParseTypeID on
// untrusted or user-supplied data; they SHOULD use ParseTypeID instead and
// handle errors.
func MustParseTypeID(s string) TypeID {
	id, err := ParseTypeID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// MarshalText encodes the TypeID as text.
//
// MarshalText implements encoding.TextMarshaler. It returns the identifier
// bytes unchanged for any non-zero TypeID.
//
// # Contract
//
//   - On success, MarshalText returns a non-nil byte slice and a nil error.
//   - For the zero TypeID, MarshalText returns a non-nil error and MUST NOT
//     silently serialize an empty token; an absent identifier has no valid
//     textual form. Optional fields SHOULD be omitted at the encoding layer
//     (for example via ",omitempty") instead of marshaling the zero value.
//   - MarshalText MUST NOT panic for any TypeID value.
func (id TypeID) MarshalText() ([]byte, error) {
	if id.IsZero() {
		return nil, fmt.Errorf("ffx: cannot marshal zero type identifier")
	}
	return []byte(id), nil
}

// UnmarshalText decodes a TypeID from its textual representation.
//
// UnmarshalText implements encoding.TextUnmarshaler. It accepts the same
// inputs as ParseTypeID: surrounding whitespace is trimmed and the result
// must be non-empty.
//
// # Contract
//
//   - On success, *id is set to the parsed value and a nil error is
//     returned.
//   - On failure, *id MUST NOT be modified and a non-nil error is returned.
//   - UnmarshalText MUST NOT panic for any input.
func (id *TypeID) UnmarshalText(text []byte) error {
	parsed, err := ParseTypeID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
