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

package iso3166

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	dxerrors "dirpx.dev/dxiso/dxcore/errors"
	"gopkg.in/yaml.v3"
)

// CountryRecord is one ISO 3166-1 entry of the country dataset.
type CountryRecord struct {
	Alpha2  string  `json:"alpha_2" yaml:"alpha_2"`
	Alpha3  string  `json:"alpha_3" yaml:"alpha_3"`
	Name    string  `json:"name" yaml:"name"`
	Numeric Numeric `json:"numeric" yaml:"numeric"`
}

// SubdivisionRecord is one ISO 3166-2 entry of the subdivision dataset.
//
// Parent is either a full code ("GB-NIR") or, as in the iso-codes data, the
// suffix of a subdivision of the same country ("NIR").
type SubdivisionRecord struct {
	Code   string  `json:"code" yaml:"code"`
	Name   string  `json:"name" yaml:"name"`
	Type   string  `json:"type" yaml:"type"`
	Parent *string `json:"parent,omitempty" yaml:"parent,omitempty"`
}

// CountryDataset is the top-level document of the country dataset.
type CountryDataset struct {
	Countries []CountryRecord `json:"3166-1" yaml:"3166-1"`
}

// SubdivisionDataset is the top-level document of the subdivision dataset.
type SubdivisionDataset struct {
	Subdivisions []SubdivisionRecord `json:"3166-2" yaml:"3166-2"`
}

// Numeric is an ISO 3166-1 numeric country code.
//
// The iso-codes project stores it as a zero-padded string ("076"); other
// sources use a plain number (76). Both forms decode to the same value.
type Numeric uint16

// String returns the zero-padded three digit form.
func (n Numeric) String() string {
	s := strconv.Itoa(int(n))
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}

// UnmarshalJSON accepts a JSON number or a JSON string of decimal digits.
func (n *Numeric) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &dxerrors.UnmarshalError{Type: "Numeric", Data: data, Reason: "empty data"}
	}

	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &dxerrors.UnmarshalError{Type: "Numeric", Data: data, Reason: err.Error(), Err: err}
		}
		raw = s
	}
	return n.parse(raw, data)
}

// UnmarshalYAML accepts a YAML scalar of decimal digits, quoted or not.
func (n *Numeric) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return &dxerrors.UnmarshalError{Type: "Numeric", Reason: "expected a scalar"}
	}
	return n.parse(node.Value, []byte(node.Value))
}

func (n *Numeric) parse(s string, data []byte) error {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return &dxerrors.UnmarshalError{Type: "Numeric", Data: data, Reason: "not a 16-bit decimal code: " + strconv.Quote(s), Err: err}
	}
	*n = Numeric(v)
	return nil
}

// LoadCountries reads and decodes the ISO 3166-1 dataset at path.
func LoadCountries(path string) ([]CountryRecord, error) {
	var ds CountryDataset
	if err := load(path, &ds); err != nil {
		return nil, err
	}
	return ds.Countries, nil
}

// LoadSubdivisions reads and decodes the ISO 3166-2 dataset at path.
func LoadSubdivisions(path string) ([]SubdivisionRecord, error) {
	var ds SubdivisionDataset
	if err := load(path, &ds); err != nil {
		return nil, err
	}
	return ds.Subdivisions, nil
}

func load(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Error{Stage: StageRead, Path: path, Err: err}
	}
	if err := decode(path, data, v); err != nil {
		return &Error{Stage: StageParse, Path: path, Err: err}
	}
	return nil
}

// decode picks the format from the file extension: YAML for .yaml and .yml,
// JSON for everything else.
func decode(path string, data []byte, v any) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, v)
	default:
		return json.Unmarshal(data, v)
	}
}
