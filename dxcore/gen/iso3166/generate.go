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

// Package iso3166 generates the static ISO 3166-2 subdivision table used by
// dxcore/model/iso3166/subdivision.
//
// The generator is a single pass over two datasets in the iso-codes JSON
// layout (YAML is accepted too):
//
//	{"3166-1": [{"alpha_2": "US", "alpha_3": "USA", "name": "United States", "numeric": "840"}, ...]}
//	{"3166-2": [{"code": "US-NY", "name": "New York", "type": "State"}, ...]}
//
// Each subdivision record becomes a Variant, the whole set is validated, and
// a text/template renders the Go source of the closed Code enumeration and
// its lookup table. The output is run through go/format.
//
// Every failure is fatal and reported as an *Error naming the stage that
// failed. Validation collects all problems before failing, so a broken
// dataset is reported in one run.
package iso3166

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"dirpx.dev/dxiso/dxcore/model/semver"
	"go.uber.org/multierr"
)

// GeneratorName is the tool name written into the generated file header.
const GeneratorName = "dxiso-gen"

// Options configures Generate.
type Options struct {
	// SubdivisionsPath is the ISO 3166-2 dataset. Required.
	SubdivisionsPath string

	// CountriesPath is the ISO 3166-1 dataset. Required.
	CountriesPath string

	// TemplatePath overrides the embedded template.
	TemplatePath string

	// Package is the package clause of the generated file. Defaults to
	// "subdivision".
	Package string

	// Source labels the dataset in the generated header. Defaults to the
	// base name of SubdivisionsPath.
	Source string

	// DatasetVersion is the semantic version of the dataset release, for
	// example "4.16.0". Optional.
	DatasetVersion string

	// Logger receives progress messages. Defaults to a discarding logger.
	Logger *slog.Logger
}

// Generate runs the whole pipeline and returns formatted Go source.
//
// Generate checks ctx between stages; a cancelled context aborts the run
// with ctx.Err().
func Generate(ctx context.Context, opts Options) ([]byte, error) {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	pkg := opts.Package
	if pkg == "" {
		pkg = "subdivision"
	}
	source := opts.Source
	if source == "" {
		source = filepath.Base(opts.SubdivisionsPath)
	}

	records, err := LoadSubdivisions(opts.SubdivisionsPath)
	if err != nil {
		return nil, err
	}
	log.Debug("subdivisions loaded", slog.String("path", opts.SubdivisionsPath), slog.Int("count", len(records)))

	countries, err := LoadCountries(opts.CountriesPath)
	if err != nil {
		return nil, err
	}
	log.Debug("countries loaded", slog.String("path", opts.CountriesPath), slog.Int("count", len(countries)))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	variants := NewVariants(records)

	var (
		version    semver.Version
		hasVersion bool
		verr       error
	)
	if opts.DatasetVersion != "" {
		version, verr = semver.ParseVersion(opts.DatasetVersion)
		hasVersion = verr == nil
	}
	verr = multierr.Combine(verr, ValidateCountries(countries), ValidateVariants(variants, countries))
	if verr != nil {
		log.Error("dataset rejected", slog.Int("problems", len(multierr.Errors(verr))))
		return nil, &Error{Stage: StageValidate, Path: opts.SubdivisionsPath, Err: verr}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name, text := "subdivision.go.tmpl", defaultTemplate
	if opts.TemplatePath != "" {
		data, err := os.ReadFile(opts.TemplatePath)
		if err != nil {
			return nil, &Error{Stage: StageRead, Path: opts.TemplatePath, Err: err}
		}
		name, text = opts.TemplatePath, string(data)
	}
	tmpl, err := CompileTemplate(name, text)
	if err != nil {
		return nil, err
	}

	src, err := Render(tmpl, Context{
		Generator:  GeneratorName,
		Source:     source,
		Package:    pkg,
		Version:    version,
		HasVersion: hasVersion,
		Variants:   variants,
	})
	if err != nil {
		return nil, err
	}

	log.Info("subdivision table generated",
		slog.Int("subdivisions", len(variants)),
		slog.Int("countries", len(countries)),
		slog.String("dataset_version", version.String()),
	)
	return src, nil
}
