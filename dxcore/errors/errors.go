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

// Package errors provides the error types shared by dxiso value types.
//
// The ISO 3166 codes exposed by dxiso are enum-like: a fixed set of values
// baked in at generation time. Parsing, marshaling and unmarshaling such
// values fails in a small number of well-known ways, and this package gives
// each of them a concrete type with a stable message format so that callers
// can match on them with errors.As instead of comparing strings.
//
// # Error Types
//
//   - ParseError
//     Returned when a textual value does not name a known constant. It MAY
//     carry a cause (for example subdivision.ErrInvalidCode) that is
//     reachable through errors.Is.
//
//   - MarshalError
//     Returned when an out-of-range value is asked to serialize itself.
//     This almost always indicates a programming error such as an unchecked
//     numeric conversion.
//
//   - UnmarshalError
//     Returned when JSON, YAML or text input cannot be turned into a value.
//     The Reason names the offending input and the expected format.
//
//   - ValidationError
//     Returned by Validate methods and by the table generator when a record
//     violates a constraint.
//
// # Usage
//
//	func ParseCode(s string) (Code, error) {
//	    if c := lookup(s); c != 0 {
//	        return c, nil
//	    }
//	    return 0, &errors.ParseError{Type: "Code", Value: s, Err: ErrInvalidCode}
//	}
package errors

import "strconv"

// ParseError is returned when parsing a string into a strongly typed enum-like
// value fails.
//
// Type identifies the logical type being parsed (for example, "Code"), and
// Value contains the exact string that could not be interpreted. Err is an
// optional cause; when set, errors.Is and errors.As see through ParseError
// to it.
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Code").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"dxiso: invalid {Type} value: {Value}"
//
// The value is quoted so that empty and whitespace-only input stays visible
// in logs.
func (e *ParseError) Error() string {
	return "dxiso: invalid " + e.Type + " value: " + strconv.Quote(e.Value)
}

// Unwrap returns the cause of the parse failure, or nil.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// MarshalError is returned when marshaling a typed value fails due to it being
// outside the set of valid constants.
//
// Type identifies the logical type being marshaled (for example, "Code"), and
// Value contains the underlying numeric value that was deemed invalid.
type MarshalError struct {
	// Type is the logical name of the type being marshaled (for example, "Code").
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled because it does not correspond to a known constant.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"dxiso: cannot marshal invalid {Type} value: {Value}"
//
// where Value is rendered as a decimal integer.
func (e *MarshalError) Error() string {
	return "dxiso: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value fails.
//
// Type identifies the logical type being populated (for example, "Code"),
// Data contains the original raw payload, and Reason provides a human-readable
// description of what went wrong. Err is an optional cause reachable through
// errors.Is.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	//
	// Callers MAY choose to log or redact this field depending on privacy
	// and size considerations.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	//
	// Reason SHOULD describe what went wrong (for example, "empty data" or
	// `invalid value "XX-1", expected ...`) rather than repeating the type
	// name; the type name is already reflected in Error().
	Reason string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"dxiso: cannot unmarshal {Type}: {Reason}"
//
// The Data field is intentionally not included in the formatted message;
// callers can log it separately when appropriate.
func (e *UnmarshalError) Error() string {
	return "dxiso: cannot unmarshal " + e.Type + ": " + e.Reason
}

// Unwrap returns the cause of the unmarshal failure, or nil.
func (e *UnmarshalError) Unwrap() error {
	return e.Err
}

// ValidationError is returned when validation of a model type or of a
// dataset record fails.
//
// Type identifies the logical name of the type being validated (for example,
// "Subdivision" or "SubdivisionRecord"), Field optionally identifies which
// field failed validation, Reason provides a human-readable explanation, and
// Value optionally contains the problematic value.
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	// May be nil if not applicable or if the value should not be logged.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"dxiso: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"dxiso: invalid {Type}: {Reason}" (when Field is empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "dxiso: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "dxiso: invalid " + e.Type + ": " + e.Reason
}
