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

package model

import (
	"encoding/json"
	"fmt"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// ValidateAll validates a slice of models and returns all validation errors
// encountered, not only the first one.
//
// Each failure is wrapped with the model's position in the slice and its
// type name, then combined with multierr. Callers can retrieve the individual
// failures with multierr.Errors. Empty slices are valid and yield nil.
//
//	codes := []subdivision.Code{subdivision.US_NY, subdivision.Code(9999)}
//	if err := model.ValidateAll(codes); err != nil {
//	    for _, e := range multierr.Errors(err) {
//	        log.Println(e)
//	    }
//	}
func ValidateAll[T Model](models []T) error {
	var err error

	for i, m := range models {
		if verr := m.Validate(); verr != nil {
			err = multierr.Append(err, fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), verr))
		}
	}

	return err
}

// FilterZero returns a new slice containing only the models for which IsZero
// reports false. The input slice is not modified.
func FilterZero[T Model](models []T) []T {
	result := make([]T, 0, len(models))

	for _, m := range models {
		if !m.IsZero() {
			result = append(result, m)
		}
	}

	return result
}

// MustValidate returns m if it is valid and panics otherwise.
//
// It is intended for package-level variables and test fixtures whose values
// are known at compile time. Never use it on external input.
func MustValidate[T Model](m T) T {
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("model validation failed for %s: %v", m.TypeName(), err))
	}
	return m
}

// SafeString returns m.String() when unsafe is true and m.Redacted()
// otherwise.
func SafeString[T Model](m T, unsafe bool) string {
	if unsafe {
		return m.String()
	}
	return m.Redacted()
}

// ToJSON validates m and marshals it to JSON.
func ToJSON[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return json.Marshal(m)
}

// ToYAML validates m and marshals it to YAML.
func ToYAML[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return yaml.Marshal(m)
}

// FromJSON unmarshals data into m and validates the result.
func FromJSON[T Model](data []byte, m *T) error {
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// FromYAML unmarshals data into m and validates the result.
func FromYAML[T Model](data []byte, m *T) error {
	if err := yaml.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// Equal reports whether a and b have the same JSON representation.
//
// This is a fallback for generic code. Types that implement Comparable
// SHOULD be compared with their own Equal method, which is cheaper. Models
// that fail to marshal are never equal.
func Equal[T Model](a, b T) bool {
	dataA, errA := json.Marshal(a)
	dataB, errB := json.Marshal(b)

	if errA != nil || errB != nil {
		return false
	}

	return string(dataA) == string(dataB)
}
