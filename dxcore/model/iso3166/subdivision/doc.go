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

// Package subdivision exposes the ISO 3166-2 subdivision codes as a closed,
// generated enumeration.
//
// Every subdivision of the dataset becomes one Code constant whose name is
// the canonical code with "-" replaced by "_" (US_NY for "US-NY"). Static
// data for each constant (canonical code, display name, subdivision type and
// parent) lives in a table generated alongside the constants in
// table_gen.go, so every lookup is an array index and nothing is allocated
// or computed at run time.
//
// A Code can only be obtained from a constant or from ParseCode, which
// accepts the exact canonical form and nothing else: no trimming, no case
// folding, no "_" separator. On the wire (JSON, YAML, text) both Code and
// Subdivision use the same canonical string.
//
//	c, err := subdivision.ParseCode("US-AZ")
//	if err != nil {
//	    // errors.Is(err, subdivision.ErrInvalidCode)
//	}
//	s := c.Subdivision()
//	fmt.Println(s.Name(), s.Type()) // Arizona State
//
// The table is regenerated from the datasets in ./data with go generate.
// All values are immutable and safe for concurrent use.
package subdivision

//go:generate go run dirpx.dev/dxiso/cmd/dxiso-gen -subdivisions data/data_iso_3166-2.json -countries data/data_iso_3166-1.json -out table_gen.go -package subdivision -dataset-version 4.16.0
