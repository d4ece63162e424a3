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

// Package semver provides the Version type used to record which release of
// the ISO 3166 dataset a generated table was built from.
//
// The iso-codes project publishes its JSON data under semantic versions such
// as "4.16.0". The table generator accepts that version, validates it here
// and emits it into the generated source as a Version literal, so that the
// runtime can report DatasetVersion without parsing anything at startup.
//
// Parsing and precedence are delegated to github.com/blang/semver/v4.
package semver

import (
	"encoding/json"
	"fmt"
	"strings"

	dxerrors "dirpx.dev/dxiso/dxcore/errors"
	"dirpx.dev/dxiso/dxcore/model"
	bsemver "github.com/blang/semver/v4"
	"gopkg.in/yaml.v3"
)

// Version is a semantic version (https://semver.org).
//
// The zero value (0.0.0) means "unknown": tables generated without a
// dataset version carry it, and IsZero reports true for it.
type Version struct {
	// Major is the first component of the semantic version.
	Major int

	// Minor is the second component of the semantic version.
	Minor int

	// Patch is the third component of the semantic version.
	Patch int

	// Prerelease is an optional dot-separated pre-release identifier, for
	// example "rc.1".
	Prerelease string

	// Metadata is optional build metadata. It does not take part in
	// precedence.
	Metadata string
}

// ParseVersion parses s as a semantic version. A single leading "v" is
// accepted and dropped.
func ParseVersion(s string) (Version, error) {
	bv, err := bsemver.Parse(strings.TrimPrefix(s, "v"))
	if err != nil {
		return Version{}, &dxerrors.ParseError{Type: "Version", Value: s, Err: err}
	}
	return fromBlangSemver(bv), nil
}

// String returns the canonical form MAJOR.MINOR.PATCH[-PRERELEASE][+METADATA].
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Prerelease != "" {
		s += "-" + v.Prerelease
	}
	if v.Metadata != "" {
		s += "+" + v.Metadata
	}
	return s
}

func (v Version) toBlangSemver() (bsemver.Version, error) {
	return bsemver.Parse(v.String())
}

func fromBlangSemver(bv bsemver.Version) Version {
	var prerelease string
	if len(bv.Pre) > 0 {
		parts := make([]string, len(bv.Pre))
		for i, p := range bv.Pre {
			parts[i] = p.String()
		}
		prerelease = strings.Join(parts, ".")
	}

	return Version{
		Major:      int(bv.Major),
		Minor:      int(bv.Minor),
		Patch:      int(bv.Patch),
		Prerelease: prerelease,
		Metadata:   strings.Join(bv.Build, "."),
	}
}

// Validate reports whether v is a well-formed semantic version.
func (v Version) Validate() error {
	if v.Major < 0 || v.Minor < 0 || v.Patch < 0 {
		return &dxerrors.ValidationError{
			Type:   "Version",
			Reason: "components must be non-negative",
			Value:  v.String(),
		}
	}
	if _, err := v.toBlangSemver(); err != nil {
		return &dxerrors.ValidationError{Type: "Version", Reason: err.Error(), Value: v.String()}
	}
	return nil
}

// IsZero reports whether v is 0.0.0 with no pre-release or metadata.
func (v Version) IsZero() bool {
	return v == Version{}
}

// Compare returns -1, 0 or +1 according to semver precedence. Invalid
// versions sort before valid ones.
func (v Version) Compare(other Version) int {
	a, errA := v.toBlangSemver()
	b, errB := other.toBlangSemver()
	switch {
	case errA != nil && errB != nil:
		return 0
	case errA != nil:
		return -1
	case errB != nil:
		return 1
	}
	return a.Compare(b)
}

// Equal reports whether v and other have the same precedence.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// TypeName returns "Version".
func (v Version) TypeName() string {
	return "Version"
}

// Redacted returns the same value as String; versions are not sensitive.
func (v Version) Redacted() string {
	return v.String()
}

// MarshalJSON encodes v as a JSON string.
func (v Version) MarshalJSON() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(v.String())
}

// UnmarshalJSON decodes a JSON string produced by MarshalJSON.
func (v *Version) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &dxerrors.UnmarshalError{Type: "Version", Data: data, Reason: err.Error(), Err: err}
	}

	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}

	*v = parsed
	return nil
}

// MarshalYAML encodes v as a YAML scalar.
func (v Version) MarshalYAML() (any, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v.String(), nil
}

// UnmarshalYAML decodes a YAML scalar produced by MarshalYAML.
func (v *Version) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &dxerrors.UnmarshalError{Type: "Version", Data: []byte(node.Value), Reason: err.Error(), Err: err}
	}

	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}

	*v = parsed
	return nil
}

var _ model.Model = (*Version)(nil)
