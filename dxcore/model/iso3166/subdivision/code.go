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
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	dxerrors "dirpx.dev/dxiso/dxcore/errors"
	"dirpx.dev/dxiso/dxcore/model"
	"dirpx.dev/dxiso/dxcore/model/semver"
	"gopkg.in/yaml.v3"
)

// ErrInvalidCode reports that a string does not match any generated
// subdivision code. Parse and unmarshal errors wrap it.
var ErrInvalidCode = errors.New("invalid iso subdivision code string")

// expecting describes the accepted wire format in unmarshal errors.
const expecting = "an ISO 3166-1/3166-2 compliant subdivision code"

// Code identifies one ISO 3166-2 subdivision.
//
// The constants are generated in dataset order starting at 1; the zero Code
// is not a subdivision and is reported by IsZero. Values outside the
// generated range can only be produced by numeric conversion and fail
// Validate.
type Code uint16

// entry is the static data generated for one Code.
type entry struct {
	code   string
	ident  string
	name   string
	typ    string
	parent Code
}

// ParseCode returns the Code whose canonical form is exactly s.
//
// Matching is case-sensitive and performs no normalization: "fr-75",
// "FR_75" and " FR-75" are all rejected. The returned error is a
// *errors.ParseError wrapping ErrInvalidCode.
func ParseCode(s string) (Code, error) {
	if c := lookup(s); c != 0 {
		return c, nil
	}
	return 0, &dxerrors.ParseError{Type: "Code", Value: s, Err: ErrInvalidCode}
}

// Valid reports whether c is one of the generated constants.
func (c Code) Valid() bool {
	return c > 0 && c < maxCode
}

// String returns the canonical code, for example "US-NY", or "unknown" if c
// is not a generated constant.
func (c Code) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return table[c].code
}

// Identifier returns the Go constant name of c, for example "US_NY", or ""
// if c is not a generated constant.
func (c Code) Identifier() string {
	return table[c.index()].ident
}

// Name returns the display name of the subdivision in the language of its
// country, or "" if c is not a generated constant.
func (c Code) Name() string {
	return table[c.index()].name
}

// Type returns the subdivision category used by its country ("State",
// "Province", "District"), or "" if c is not a generated constant.
func (c Code) Type() string {
	return table[c.index()].typ
}

// Parent returns the subdivision c belongs to, if the dataset declares one.
func (c Code) Parent() (Code, bool) {
	p := table[c.index()].parent
	return p, p != 0
}

// Country returns the ISO 3166-1 alpha-2 code of the country c belongs to,
// or "" if c is not a generated constant.
func (c Code) Country() string {
	country, _, _ := strings.Cut(table[c.index()].code, "-")
	return country
}

// Subdivision returns the Subdivision for c. The result is the zero
// Subdivision if c is not a generated constant.
func (c Code) Subdivision() Subdivision {
	e := table[c.index()]
	return Subdivision{code: c.index(), name: e.name, typ: e.typ}
}

// index maps invalid codes to the empty zero entry so accessors never panic.
func (c Code) index() Code {
	if !c.Valid() {
		return 0
	}
	return c
}

// Equal reports whether c and other denote the same subdivision.
func (c Code) Equal(other Code) bool {
	return c == other
}

// Compare orders codes by declaration order, which is the order of the
// dataset the table was generated from. It is not guaranteed to be
// alphabetical.
func (c Code) Compare(other Code) int {
	return cmp.Compare(c, other)
}

// Less reports whether c is declared before other.
func (c Code) Less(other Code) bool {
	return c < other
}

// Redacted returns the same value as String; subdivision codes are not
// sensitive.
func (c Code) Redacted() string {
	return c.String()
}

// TypeName returns "Code".
func (c Code) TypeName() string {
	return "Code"
}

// IsZero reports whether c is the zero Code.
func (c Code) IsZero() bool {
	return c == 0
}

// Validate returns a *errors.ValidationError if c is not a generated
// constant.
func (c Code) Validate() error {
	if !c.Valid() {
		return &dxerrors.ValidationError{
			Type:   "Code",
			Reason: fmt.Sprintf("value %d is out of range [1, %d)", uint16(c), uint16(maxCode)),
			Value:  uint16(c),
		}
	}
	return nil
}

// MarshalText returns the canonical code.
func (c Code) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, &dxerrors.MarshalError{Type: "Code", Value: int(c)}
	}
	return []byte(table[c].code), nil
}

// UnmarshalText parses the canonical code.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := decode("Code", string(text), text)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalJSON encodes c as a JSON string holding the canonical code.
func (c Code) MarshalJSON() ([]byte, error) {
	if !c.Valid() {
		return nil, &dxerrors.MarshalError{Type: "Code", Value: int(c)}
	}
	return json.Marshal(table[c].code)
}

// UnmarshalJSON decodes a JSON string holding a canonical code.
func (c *Code) UnmarshalJSON(data []byte) error {
	parsed, err := decodeJSON("Code", data)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML encodes c as a YAML scalar holding the canonical code.
func (c Code) MarshalYAML() (any, error) {
	if !c.Valid() {
		return nil, &dxerrors.MarshalError{Type: "Code", Value: int(c)}
	}
	return table[c].code, nil
}

// UnmarshalYAML decodes a YAML scalar holding a canonical code.
func (c *Code) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := decodeYAML("Code", node)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// decode resolves a wire value, reporting failures as *errors.UnmarshalError
// of type typ.
func decode(typ, s string, data []byte) (Code, error) {
	c := lookup(s)
	if c == 0 {
		return 0, &dxerrors.UnmarshalError{
			Type:   typ,
			Data:   data,
			Reason: fmt.Sprintf("invalid value %q, expected %s", s, expecting),
			Err:    ErrInvalidCode,
		}
	}
	return c, nil
}

func decodeJSON(typ string, data []byte) (Code, error) {
	if len(data) == 0 {
		return 0, &dxerrors.UnmarshalError{Type: typ, Data: data, Reason: "empty data"}
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return 0, &dxerrors.UnmarshalError{
			Type:   typ,
			Data:   data,
			Reason: fmt.Sprintf("expected a string holding %s: %v", expecting, err),
			Err:    err,
		}
	}
	return decode(typ, s, data)
}

func decodeYAML(typ string, node *yaml.Node) (Code, error) {
	if node.Kind != yaml.ScalarNode {
		return 0, &dxerrors.UnmarshalError{
			Type:   typ,
			Reason: "expected a scalar holding " + expecting,
		}
	}
	return decode(typ, node.Value, []byte(node.Value))
}

// All returns every generated Code in declaration order. The slice is newly
// allocated on each call.
func All() []Code {
	codes := make([]Code, 0, maxCode-1)
	for c := Code(1); c < maxCode; c++ {
		codes = append(codes, c)
	}
	return codes
}

// Count returns the number of generated codes.
func Count() int {
	return int(maxCode) - 1
}

// ForCountry returns the codes of the country with ISO 3166-1 alpha-2 code
// alpha2, in declaration order. The match is exact and case-sensitive.
func ForCountry(alpha2 string) []Code {
	var codes []Code
	for c := Code(1); c < maxCode; c++ {
		if c.Country() == alpha2 {
			codes = append(codes, c)
		}
	}
	return codes
}

// DatasetVersion returns the release of the dataset the table was generated
// from, or the zero Version if it was not recorded.
func DatasetVersion() semver.Version {
	return datasetVersion
}

var _ model.Model = (*Code)(nil)
var _ model.Comparable[Code] = Code(0)
var _ model.Ordered[Code] = Code(0)
