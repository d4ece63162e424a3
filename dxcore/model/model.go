/*
   Copyright 2025 The DIRPX Authors

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

// Package model defines the contracts that every dxiso value type MUST
// implement so that codes, subdivisions and dataset versions behave the same
// way when they are validated, serialized, logged and compared.
//
// Every public value type (Code, Subdivision, Version) implements the Model
// interface. Model combines Validatable, Serializable, Loggable, Identifiable
// and ZeroCheckable, which lets the generic helpers in this package
// (ValidateAll, FilterZero, ToJSON, FromYAML, Equal and friends) work on any
// of them and fail at compile time when applied to anything else.
//
// dxiso value types are immutable. Their data is generated at build time and
// never mutated at run time, so all read methods are safe for concurrent use.
// Unmarshal methods write to their receiver and require exclusive access for
// the duration of the call.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all fundamental contracts required
// for dxiso value types.
//
// Implementations MUST satisfy all embedded interfaces: Validatable ensures
// that a value belongs to the generated set; Serializable provides
// round-trip JSON and YAML encoding; Loggable offers both safe and full
// string representations; Identifiable supplies a canonical type name; and
// ZeroCheckable detects unset values.
//
//	var _ model.Model = (*Code)(nil) // Compile-time check
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own state.
//
// For the enum-like types in dxiso, validation means "is this value one of the
// constants baked in at generation time". Values obtained through numeric
// conversion (Code(9999)) or by declaring an uninitialized variable are the
// usual way to end up with an invalid instance.
//
// Validate MUST be fast, deterministic and free of side effects. It MUST NOT
// perform I/O. When validation fails the returned error SHOULD say what is
// wrong, for example "Code value 9999 is out of range", rather than a
// generic "validation failed".
type Validatable interface {
	// Validate returns nil if the instance is valid, or a descriptive error.
	Validate() error
}

// Serializable defines the contract for types that can be serialized to and
// deserialized from JSON and YAML.
//
// Implementations MUST refuse to marshal invalid instances and MUST validate
// after unmarshaling, so that no value outside the generated set can enter or
// leave the process through a wire format. A value serialized and then
// deserialized MUST equal the original for both formats.
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable defines the contract for types that provide string
// representations for logs and diagnostics.
//
// Redacted returns a representation that is safe for production logs.
// String returns the full human-readable representation. Subdivision codes
// carry no sensitive data, so for the types in this module both methods
// usually return the same canonical form; the split exists so that callers
// can log any Model without knowing what it contains.
type Loggable interface {
	// Redacted returns a string representation safe for production logs.
	Redacted() string

	// String returns a human-readable representation of the instance.
	String() string
}

// Identifiable defines the contract for types that identify themselves by a
// canonical type name such as "Code" or "Subdivision".
//
// The name MUST be constant for the type, MUST NOT include a package prefix
// and SHOULD be a string literal so that TypeName does not allocate. It is
// used as the Type field of the errors in dxcore/errors.
type Identifiable interface {
	// TypeName returns the canonical name of this type.
	TypeName() string
}

// ZeroCheckable defines the contract for types that can report whether they
// hold their zero value.
//
// For Code and Subdivision the zero value is "no subdivision": it is never
// one of the generated members and fails validation.
type ZeroCheckable interface {
	// IsZero reports whether this instance holds no meaningful data.
	IsZero() bool
}

// Comparable defines the contract for types that can be compared for equality.
//
// Equal MUST be reflexive, symmetric, transitive and consistent.
type Comparable[T any] interface {
	// Equal reports whether this instance denotes the same value as other.
	Equal(other T) bool
}

// Ordered defines the contract for types with a total order.
//
// Compare returns a negative number when the receiver sorts before other,
// zero when they are equal and a positive number otherwise, matching the
// convention of cmp.Compare and slices.SortFunc.
type Ordered[T any] interface {
	// Compare orders the receiver relative to other.
	Compare(other T) int
}
