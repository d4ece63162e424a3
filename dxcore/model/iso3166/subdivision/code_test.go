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

package subdivision_test

import (
	"encoding/json"
	"errors"
	"slices"
	"testing"

	dxerrors "dirpx.dev/dxiso/dxcore/errors"
	"dirpx.dev/dxiso/dxcore/model/iso3166/subdivision"
	"gopkg.in/yaml.v3"
)

func TestParseCode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    subdivision.Code
		wantErr bool
	}{
		{"US-NY", "US-NY", subdivision.US_NY, false},
		{"FR-75", "FR-75", subdivision.FR_75, false},
		{"GB-ABC", "GB-ABC", subdivision.GB_ABC, false},
		{"numeric suffix", "JP-13", subdivision.JP_13, false},
		{"lower case", "fr-75", 0, true},
		{"mixed case", "Us-NY", 0, true},
		{"underscore separator", "FR_75", 0, true},
		{"identifier form", "US_NY", 0, true},
		{"unknown", "invalid", 0, true},
		{"unknown suffix", "US-ZZ", 0, true},
		{"truncated", "US-N", 0, true},
		{"country only", "US", 0, true},
		{"trailing character", "US-NYC", 0, true},
		{"leading space", " US-NY", 0, true},
		{"trailing newline", "US-NY\n", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := subdivision.ParseCode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseCode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseCode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseCode_Error(t *testing.T) {
	_, err := subdivision.ParseCode("fr-75")

	if !errors.Is(err, subdivision.ErrInvalidCode) {
		t.Errorf("errors.Is(err, ErrInvalidCode) = false, err = %v", err)
	}

	var perr *dxerrors.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error type = %T, want *errors.ParseError", err)
	}
	if perr.Type != "Code" || perr.Value != "fr-75" {
		t.Errorf("ParseError = %+v", perr)
	}
}

func TestCode_String(t *testing.T) {
	tests := []struct {
		name string
		code subdivision.Code
		want string
	}{
		{"US_NY", subdivision.US_NY, "US-NY"},
		{"US_AZ", subdivision.US_AZ, "US-AZ"},
		{"FR_IDF", subdivision.FR_IDF, "FR-IDF"},
		{"zero", subdivision.Code(0), "unknown"},
		{"out of range", subdivision.Code(65535), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.code.String(); got != tt.want {
				t.Errorf("Code.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCode_Accessors(t *testing.T) {
	tests := []struct {
		code       subdivision.Code
		identifier string
		name       string
		typ        string
		country    string
	}{
		{subdivision.US_AZ, "US_AZ", "Arizona", "State", "US"},
		{subdivision.FR_75, "FR_75", "Paris", "Metropolitan department", "FR"},
		{subdivision.FR_IDF, "FR_IDF", "Île-de-France", "Metropolitan region", "FR"},
		{subdivision.GB_ABC, "GB_ABC", "Armagh City, Banbridge and Craigavon", "District", "GB"},
		{subdivision.JP_13, "JP_13", "Tôkyô", "Prefecture", "JP"},
		{subdivision.Code(0), "", "", "", ""},
		{subdivision.Code(9999), "", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.Identifier(); got != tt.identifier {
				t.Errorf("Identifier() = %q, want %q", got, tt.identifier)
			}
			if got := tt.code.Name(); got != tt.name {
				t.Errorf("Name() = %q, want %q", got, tt.name)
			}
			if got := tt.code.Type(); got != tt.typ {
				t.Errorf("Type() = %q, want %q", got, tt.typ)
			}
			if got := tt.code.Country(); got != tt.country {
				t.Errorf("Country() = %q, want %q", got, tt.country)
			}
		})
	}
}

func TestCode_Parent(t *testing.T) {
	tests := []struct {
		code   subdivision.Code
		want   subdivision.Code
		wantOK bool
	}{
		{subdivision.GB_ABC, subdivision.GB_NIR, true},
		{subdivision.FR_75, subdivision.FR_IDF, true},
		{subdivision.FR_69, subdivision.FR_ARA, true},
		{subdivision.GB_NIR, 0, false},
		{subdivision.US_NY, 0, false},
		{subdivision.Code(0), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			got, ok := tt.code.Parent()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Parent() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestCode_Validate(t *testing.T) {
	tests := []struct {
		name    string
		code    subdivision.Code
		wantErr bool
	}{
		{"first", subdivision.All()[0], false},
		{"last", subdivision.All()[subdivision.Count()-1], false},
		{"US_NY", subdivision.US_NY, false},
		{"zero", subdivision.Code(0), true},
		{"out of range", subdivision.Code(9999), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.code.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got := tt.code.Valid(); got == tt.wantErr {
				t.Errorf("Valid() = %v, want %v", got, !tt.wantErr)
			}
		})
	}
}

func TestCode_IsZero(t *testing.T) {
	var c subdivision.Code
	if !c.IsZero() {
		t.Error("IsZero() = false for zero value")
	}
	if subdivision.US_NY.IsZero() {
		t.Error("IsZero() = true for US_NY")
	}
}

func TestCode_TypeName(t *testing.T) {
	if got := subdivision.US_NY.TypeName(); got != "Code" {
		t.Errorf("TypeName() = %q, want %q", got, "Code")
	}
}

func TestCode_Redacted(t *testing.T) {
	c := subdivision.GB_ABC
	if c.Redacted() != c.String() {
		t.Errorf("Redacted() = %q, want %q", c.Redacted(), c.String())
	}
}

func TestCode_Ordering(t *testing.T) {
	if !subdivision.US_AZ.Equal(subdivision.US_AZ) {
		t.Error("US_AZ.Equal(US_AZ) = false")
	}
	if subdivision.US_AZ.Equal(subdivision.US_NY) {
		t.Error("US_AZ.Equal(US_NY) = true")
	}

	// FR_75 is declared before FR_ARA because the dataset lists it first.
	if got := subdivision.FR_75.Compare(subdivision.FR_ARA); got >= 0 {
		t.Errorf("FR_75.Compare(FR_ARA) = %d, want < 0", got)
	}
	if got := subdivision.US_TX.Compare(subdivision.BR_SP); got <= 0 {
		t.Errorf("US_TX.Compare(BR_SP) = %d, want > 0", got)
	}
	if got := subdivision.US_NY.Compare(subdivision.US_NY); got != 0 {
		t.Errorf("US_NY.Compare(US_NY) = %d, want 0", got)
	}
	if !subdivision.CA_ON.Less(subdivision.CA_QC) {
		t.Error("CA_ON.Less(CA_QC) = false")
	}

	codes := []subdivision.Code{subdivision.US_NY, subdivision.BR_SP, subdivision.GB_ENG}
	slices.SortFunc(codes, subdivision.Code.Compare)
	want := []subdivision.Code{subdivision.BR_SP, subdivision.GB_ENG, subdivision.US_NY}
	if !slices.Equal(codes, want) {
		t.Errorf("sorted = %v, want %v", codes, want)
	}
}

func TestCode_MarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		code    subdivision.Code
		want    string
		wantErr bool
	}{
		{"US_AZ", subdivision.US_AZ, `"US-AZ"`, false},
		{"GB_ABC", subdivision.GB_ABC, `"GB-ABC"`, false},
		{"zero", subdivision.Code(0), "", true},
		{"out of range", subdivision.Code(9999), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.code)
			if (err != nil) != tt.wantErr {
				t.Errorf("MarshalJSON() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && string(got) != tt.want {
				t.Errorf("MarshalJSON() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCode_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    subdivision.Code
		wantErr bool
	}{
		{"canonical", `"US-AZ"`, subdivision.US_AZ, false},
		{"non-ascii name", `"JP-13"`, subdivision.JP_13, false},
		{"identifier form", `"US_AZ"`, 0, true},
		{"lower case", `"us-az"`, 0, true},
		{"unknown", `"XX-1"`, 0, true},
		{"number", `17`, 0, true},
		{"object", `{"code":"US-AZ"}`, 0, true},
		{"null", `null`, 0, true},
		{"invalid JSON", `not json`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got subdivision.Code
			err := json.Unmarshal([]byte(tt.data), &got)
			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalJSON() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("UnmarshalJSON() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCode_UnmarshalJSON_Error(t *testing.T) {
	var c subdivision.Code
	err := c.UnmarshalJSON([]byte(`"US_AZ"`))

	var uerr *dxerrors.UnmarshalError
	if !errors.As(err, &uerr) {
		t.Fatalf("error type = %T, want *errors.UnmarshalError", err)
	}
	want := `dxiso: cannot unmarshal Code: invalid value "US_AZ", expected an ISO 3166-1/3166-2 compliant subdivision code`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, subdivision.ErrInvalidCode) {
		t.Error("errors.Is(err, ErrInvalidCode) = false")
	}
}

func TestCode_MarshalYAML(t *testing.T) {
	tests := []struct {
		name    string
		code    subdivision.Code
		want    string
		wantErr bool
	}{
		{"US_NY", subdivision.US_NY, "US-NY\n", false},
		{"FR_75", subdivision.FR_75, "FR-75\n", false},
		{"zero", subdivision.Code(0), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := yaml.Marshal(tt.code)
			if (err != nil) != tt.wantErr {
				t.Errorf("MarshalYAML() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && string(got) != tt.want {
				t.Errorf("MarshalYAML() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCode_UnmarshalYAML(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    subdivision.Code
		wantErr bool
	}{
		{"plain", "US-NY", subdivision.US_NY, false},
		{"quoted", `"GB-ABC"`, subdivision.GB_ABC, false},
		{"lower case", "us-ny", 0, true},
		{"sequence", "[US-NY]", 0, true},
		{"unknown", "invalid", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got subdivision.Code
			err := yaml.Unmarshal([]byte(tt.data), &got)
			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalYAML() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("UnmarshalYAML() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCode_Text(t *testing.T) {
	text, err := subdivision.CA_QC.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(text) != "CA-QC" {
		t.Errorf("MarshalText() = %q, want %q", text, "CA-QC")
	}

	var c subdivision.Code
	if err := c.UnmarshalText([]byte("CA-QC")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if c != subdivision.CA_QC {
		t.Errorf("UnmarshalText() = %v, want %v", c, subdivision.CA_QC)
	}

	if err := c.UnmarshalText([]byte("CA_QC")); !errors.Is(err, subdivision.ErrInvalidCode) {
		t.Errorf("UnmarshalText(CA_QC) error = %v, want ErrInvalidCode", err)
	}
}

func TestCode_MapKey(t *testing.T) {
	in := map[subdivision.Code]int{subdivision.US_NY: 1, subdivision.FR_75: 2}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(data) != `{"FR-75":2,"US-NY":1}` {
		t.Errorf("json.Marshal() = %s", data)
	}

	var out map[subdivision.Code]int
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if len(out) != 2 || out[subdivision.US_NY] != 1 || out[subdivision.FR_75] != 2 {
		t.Errorf("json.Unmarshal() = %v", out)
	}
}

func TestCode_RoundTrip_All(t *testing.T) {
	for _, c := range subdivision.All() {
		t.Run(c.String(), func(t *testing.T) {
			parsed, err := subdivision.ParseCode(c.String())
			if err != nil || parsed != c {
				t.Errorf("ParseCode(%q) = (%v, %v), want %v", c.String(), parsed, err, c)
			}

			data, err := json.Marshal(c)
			if err != nil {
				t.Fatalf("json.Marshal() error = %v", err)
			}
			var fromJSON subdivision.Code
			if err := json.Unmarshal(data, &fromJSON); err != nil || fromJSON != c {
				t.Errorf("JSON round-trip = (%v, %v), want %v", fromJSON, err, c)
			}

			data, err = yaml.Marshal(c)
			if err != nil {
				t.Fatalf("yaml.Marshal() error = %v", err)
			}
			var fromYAML subdivision.Code
			if err := yaml.Unmarshal(data, &fromYAML); err != nil || fromYAML != c {
				t.Errorf("YAML round-trip = (%v, %v), want %v", fromYAML, err, c)
			}
		})
	}
}

func TestAll(t *testing.T) {
	all := subdivision.All()
	if len(all) != subdivision.Count() {
		t.Fatalf("len(All()) = %d, Count() = %d", len(all), subdivision.Count())
	}

	seen := make(map[string]subdivision.Code, len(all))
	for i, c := range all {
		if !c.Valid() {
			t.Errorf("All()[%d] = %d is not valid", i, c)
		}
		if i > 0 && !all[i-1].Less(c) {
			t.Errorf("All() not in declaration order at %d", i)
		}
		s := c.String()
		if s == "" || s == "unknown" {
			t.Errorf("All()[%d] has no canonical code", i)
		}
		if prev, dup := seen[s]; dup {
			t.Errorf("code %q shared by %d and %d", s, prev, c)
		}
		seen[s] = c
	}

	all[0] = 0
	if subdivision.All()[0] == 0 {
		t.Error("All() returned a shared slice")
	}
}

func TestForCountry(t *testing.T) {
	tests := []struct {
		country string
		want    []subdivision.Code
	}{
		{"CA", []subdivision.Code{subdivision.CA_NU, subdivision.CA_ON, subdivision.CA_QC}},
		{"DE", []subdivision.Code{subdivision.DE_BE, subdivision.DE_BY}},
		{"JP", []subdivision.Code{subdivision.JP_13}},
		{"ca", nil},
		{"XX", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.country, func(t *testing.T) {
			if got := subdivision.ForCountry(tt.country); !slices.Equal(got, tt.want) {
				t.Errorf("ForCountry(%q) = %v, want %v", tt.country, got, tt.want)
			}
		})
	}
}

func TestDatasetVersion(t *testing.T) {
	v := subdivision.DatasetVersion()
	if err := v.Validate(); err != nil {
		t.Errorf("DatasetVersion().Validate() = %v", err)
	}
	if v.IsZero() {
		t.Error("DatasetVersion() is zero, want the recorded iso-codes release")
	}
}
