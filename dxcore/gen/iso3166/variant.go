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
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Variant is a subdivision record prepared for code generation. It is the
// only type templates see for individual members.
type Variant struct {
	// Code is the canonical ISO 3166-2 code, for example "US-NY".
	Code string

	// CodeIdentifier is Code with every "-" replaced by "_" ("US_NY"). It
	// names the generated constant.
	CodeIdentifier string

	// Name is the display name, NFC normalized.
	Name string

	// Type is the subdivision category ("State", "Province"), NFC normalized.
	Type string

	// Parent is the fully qualified code of the parent subdivision, or empty.
	Parent string

	// ParentIdentifier is the identifier form of Parent, or empty.
	ParentIdentifier string
}

// Identifier derives the constant name for a subdivision code. Case is
// preserved and no other character is touched.
func Identifier(code string) string {
	return strings.ReplaceAll(code, "-", "_")
}

// NewVariant normalizes a dataset record. It performs no validation; see
// ValidateVariants.
func NewVariant(r SubdivisionRecord) Variant {
	v := Variant{
		Code:           r.Code,
		CodeIdentifier: Identifier(r.Code),
		Name:           norm.NFC.String(r.Name),
		Type:           norm.NFC.String(r.Type),
	}
	if r.Parent != nil && *r.Parent != "" {
		v.Parent = qualifyParent(r.Code, *r.Parent)
		v.ParentIdentifier = Identifier(v.Parent)
	}
	return v
}

// NewVariants normalizes records, keeping dataset order.
func NewVariants(records []SubdivisionRecord) []Variant {
	variants := make([]Variant, len(records))
	for i, r := range records {
		variants[i] = NewVariant(r)
	}
	return variants
}

// Country returns the ISO 3166-1 alpha-2 prefix of the code.
func (v Variant) Country() string {
	country, _, _ := strings.Cut(v.Code, "-")
	return country
}

// qualifyParent turns a bare suffix ("NIR") into a full code by borrowing
// the country prefix of code ("GB-ABC" -> "GB-NIR").
func qualifyParent(code, parent string) string {
	if strings.Contains(parent, "-") {
		return parent
	}
	country, _, ok := strings.Cut(code, "-")
	if !ok {
		return parent
	}
	return country + "-" + parent
}
