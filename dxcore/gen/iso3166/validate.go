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
	"fmt"
	"go/token"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	dxerrors "dirpx.dev/dxiso/dxcore/errors"
	"go.uber.org/multierr"
)

var (
	codePattern   = regexp.MustCompile(`^[A-Z]{2}-[A-Z0-9]{1,3}$`)
	alpha2Pattern = regexp.MustCompile(`^[A-Z]{2}$`)
	alpha3Pattern = regexp.MustCompile(`^[A-Z]{3}$`)
)

// ValidateCountries checks the country dataset and returns every problem
// found, combined with multierr, or nil.
func ValidateCountries(countries []CountryRecord) error {
	var err error

	if len(countries) == 0 {
		return &dxerrors.ValidationError{Type: "CountryDataset", Reason: "contains no countries"}
	}

	alpha2 := make(map[string]struct{}, len(countries))
	alpha3 := make(map[string]struct{}, len(countries))
	for i, c := range countries {
		fail := func(field, reason string, value any) {
			err = multierr.Append(err, &dxerrors.ValidationError{
				Type:   "CountryRecord",
				Field:  field,
				Reason: fmt.Sprintf("record %d (%s): %s", i, strconv.Quote(c.Alpha2), reason),
				Value:  value,
			})
		}

		if !alpha2Pattern.MatchString(c.Alpha2) {
			fail("Alpha2", "must be two upper-case ASCII letters", c.Alpha2)
		} else if _, dup := alpha2[c.Alpha2]; dup {
			fail("Alpha2", "duplicate code", c.Alpha2)
		}
		alpha2[c.Alpha2] = struct{}{}

		if !alpha3Pattern.MatchString(c.Alpha3) {
			fail("Alpha3", "must be three upper-case ASCII letters", c.Alpha3)
		} else if _, dup := alpha3[c.Alpha3]; dup {
			fail("Alpha3", "duplicate code", c.Alpha3)
		}
		alpha3[c.Alpha3] = struct{}{}

		if c.Name == "" {
			fail("Name", "must not be empty", nil)
		}
		if c.Numeric == 0 || c.Numeric > 999 {
			fail("Numeric", "must be in range 1..999", int(c.Numeric))
		}
	}

	return err
}

// ValidateVariants checks the normalized subdivisions against themselves and
// against the country dataset. It returns every problem found, combined with
// multierr, or nil.
//
// Beyond the shape of each record it enforces two table-wide rules: no two
// variants may map to the same identifier, and every parent reference must
// resolve to another subdivision of the same country.
func ValidateVariants(variants []Variant, countries []CountryRecord) error {
	var err error

	if len(variants) == 0 {
		return &dxerrors.ValidationError{Type: "SubdivisionDataset", Reason: "contains no subdivisions"}
	}

	known := make(map[string]struct{}, len(countries))
	for _, c := range countries {
		known[c.Alpha2] = struct{}{}
	}

	codes := make(map[string]int, len(variants))
	idents := make(map[string]string, len(variants))
	for i, v := range variants {
		fail := func(field, reason string, value any) {
			err = multierr.Append(err, &dxerrors.ValidationError{
				Type:   "SubdivisionRecord",
				Field:  field,
				Reason: fmt.Sprintf("record %d (%s): %s", i, strconv.Quote(v.Code), reason),
				Value:  value,
			})
		}

		if !codePattern.MatchString(v.Code) {
			fail("Code", "must have the form CC-XXX with a 1 to 3 character alphanumeric suffix", v.Code)
		} else if _, ok := known[v.Country()]; !ok {
			fail("Code", "unknown country "+strconv.Quote(v.Country()), v.Code)
		}

		if first, dup := codes[v.Code]; dup {
			fail("Code", fmt.Sprintf("duplicate of record %d", first), v.Code)
		} else {
			codes[v.Code] = i
		}

		if !token.IsIdentifier(v.CodeIdentifier) || !token.IsExported(v.CodeIdentifier) {
			fail("Code", "identifier "+strconv.Quote(v.CodeIdentifier)+" is not an exported Go identifier", v.CodeIdentifier)
		} else if other, dup := idents[v.CodeIdentifier]; dup && other != v.Code {
			fail("Code", "identifier "+strconv.Quote(v.CodeIdentifier)+" collides with "+strconv.Quote(other), v.CodeIdentifier)
		} else if !dup {
			idents[v.CodeIdentifier] = v.Code
		}

		if reason := checkText(v.Name); reason != "" {
			fail("Name", reason, v.Name)
		}
		if reason := checkText(v.Type); reason != "" {
			fail("Type", reason, v.Type)
		}
	}

	// Parents are checked once every code is known, so forward references
	// are allowed.
	for i, v := range variants {
		if v.Parent == "" {
			continue
		}
		parentCountry, _, _ := strings.Cut(v.Parent, "-")
		reason := ""
		switch {
		case v.Parent == v.Code:
			reason = "subdivision is its own parent"
		case parentCountry != v.Country():
			reason = "parent " + strconv.Quote(v.Parent) + " belongs to another country"
		default:
			if _, ok := codes[v.Parent]; !ok {
				reason = "parent " + strconv.Quote(v.Parent) + " does not exist"
			}
		}
		if reason != "" {
			err = multierr.Append(err, &dxerrors.ValidationError{
				Type:   "SubdivisionRecord",
				Field:  "Parent",
				Reason: fmt.Sprintf("record %d (%s): %s", i, strconv.Quote(v.Code), reason),
				Value:  v.Parent,
			})
		}
	}

	return err
}

func checkText(s string) string {
	if s == "" {
		return "must not be empty"
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return "must not contain control characters"
		}
	}
	return ""
}
