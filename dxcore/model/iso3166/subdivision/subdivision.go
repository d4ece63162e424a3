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

package subdivision

import (
	"encoding/json"

	dxerrors "dirpx.dev/dxiso/dxcore/errors"
	"dirpx.dev/dxiso/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Subdivision is an administrative subdivision as specified by ISO 3166-2.
//
// It carries its Code together with the name and type from the generated
// table, so the accessors are plain field reads. Two Subdivisions are equal
// (with == or Equal) exactly when their codes are equal.
//
// The zero Subdivision holds no subdivision; New, Parse and Code.Subdivision
// are the only ways to build a valid one.
type Subdivision struct {
	code Code
	name string
	typ  string
}

// New returns the Subdivision for c, or a *errors.ValidationError if c is not
// a generated constant.
func New(c Code) (Subdivision, error) {
	if err := c.Validate(); err != nil {
		return Subdivision{}, err
	}
	return c.Subdivision(), nil
}

// Parse returns the Subdivision whose canonical code is exactly s. See
// ParseCode for the matching rules.
func Parse(s string) (Subdivision, error) {
	c, err := ParseCode(s)
	if err != nil {
		return Subdivision{}, err
	}
	return c.Subdivision(), nil
}

// MustParse is like Parse but panics on error. It is intended for
// package-level variables initialized from literals.
func MustParse(s string) Subdivision {
	sd, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return sd
}

// Code returns the subdivision code.
func (s Subdivision) Code() Code {
	return s.code
}

// Name returns the subdivision name in the language of its country.
func (s Subdivision) Name() string {
	return s.name
}

// Type returns the subdivision type specific to its country.
func (s Subdivision) Type() string {
	return s.typ
}

// Parent returns the subdivision s belongs to, if any. Parents are always
// in the same country.
func (s Subdivision) Parent() (Subdivision, bool) {
	p, ok := s.code.Parent()
	if !ok {
		return Subdivision{}, false
	}
	return p.Subdivision(), true
}

// Country returns the ISO 3166-1 alpha-2 code of the country s belongs to.
func (s Subdivision) Country() string {
	return s.code.Country()
}

// String returns the canonical code, for example "US-AZ".
func (s Subdivision) String() string {
	return s.code.String()
}

// Redacted returns the same value as String.
func (s Subdivision) Redacted() string {
	return s.String()
}

// TypeName returns "Subdivision".
func (s Subdivision) TypeName() string {
	return "Subdivision"
}

// IsZero reports whether s is the zero Subdivision.
func (s Subdivision) IsZero() bool {
	return s == Subdivision{}
}

// Equal reports whether s and other denote the same subdivision.
func (s Subdivision) Equal(other Subdivision) bool {
	return s.code == other.code
}

// Compare orders subdivisions by the declaration order of their codes.
func (s Subdivision) Compare(other Subdivision) int {
	return s.code.Compare(other.code)
}

// Validate reports whether s was built from a generated code. A Subdivision
// whose cached fields disagree with the table cannot be produced through
// the package API, but is rejected anyway.
func (s Subdivision) Validate() error {
	if err := s.code.Validate(); err != nil {
		return &dxerrors.ValidationError{Type: "Subdivision", Field: "Code", Reason: err.Error(), Value: uint16(s.code)}
	}
	if s != s.code.Subdivision() {
		return &dxerrors.ValidationError{Type: "Subdivision", Reason: "metadata does not match code " + s.code.String()}
	}
	return nil
}

// MarshalText returns the canonical code.
func (s Subdivision) MarshalText() ([]byte, error) {
	if !s.code.Valid() {
		return nil, &dxerrors.MarshalError{Type: "Subdivision", Value: int(s.code)}
	}
	return s.code.MarshalText()
}

// UnmarshalText parses the canonical code.
func (s *Subdivision) UnmarshalText(text []byte) error {
	c, err := decode("Subdivision", string(text), text)
	if err != nil {
		return err
	}
	*s = c.Subdivision()
	return nil
}

// MarshalJSON encodes s as a bare JSON string holding its canonical code,
// not as an object.
func (s Subdivision) MarshalJSON() ([]byte, error) {
	if !s.code.Valid() {
		return nil, &dxerrors.MarshalError{Type: "Subdivision", Value: int(s.code)}
	}
	return json.Marshal(s.code.String())
}

// UnmarshalJSON decodes a JSON string holding a canonical code.
func (s *Subdivision) UnmarshalJSON(data []byte) error {
	c, err := decodeJSON("Subdivision", data)
	if err != nil {
		return err
	}
	*s = c.Subdivision()
	return nil
}

// MarshalYAML encodes s as a YAML scalar holding its canonical code.
func (s Subdivision) MarshalYAML() (any, error) {
	if !s.code.Valid() {
		return nil, &dxerrors.MarshalError{Type: "Subdivision", Value: int(s.code)}
	}
	return s.code.String(), nil
}

// UnmarshalYAML decodes a YAML scalar holding a canonical code.
func (s *Subdivision) UnmarshalYAML(node *yaml.Node) error {
	c, err := decodeYAML("Subdivision", node)
	if err != nil {
		return err
	}
	*s = c.Subdivision()
	return nil
}

var _ model.Model = (*Subdivision)(nil)
var _ model.Comparable[Subdivision] = Subdivision{}
var _ model.Ordered[Subdivision] = Subdivision{}
