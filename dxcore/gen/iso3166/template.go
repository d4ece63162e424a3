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
	"bytes"
	_ "embed"
	"fmt"
	"go/format"
	"strconv"
	"text/template"

	"dirpx.dev/dxiso/dxcore/model/semver"
)

//go:embed subdivision.go.tmpl
var defaultTemplate string

// DefaultTemplate returns the template used when Options.TemplatePath is
// empty.
func DefaultTemplate() string {
	return defaultTemplate
}

// Context is the data a subdivision template is executed with.
type Context struct {
	// Generator names the tool in the "Code generated" header.
	Generator string

	// Source describes where the dataset came from.
	Source string

	// Package is the Go package clause of the emitted file.
	Package string

	// Version is the dataset release; meaningful only when HasVersion is set.
	Version    semver.Version
	HasVersion bool

	// Variants are the members to emit, in dataset order.
	Variants []Variant
}

var funcs = template.FuncMap{
	"quote": strconv.Quote,
}

// CompileTemplate parses text as a subdivision template. Missing map keys
// are an error; references to fields that Variant and Context do not have fail
// when the template is executed.
func CompileTemplate(name, text string) (*template.Template, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Funcs(funcs).Parse(text)
	if err != nil {
		return nil, &Error{Stage: StageCompile, Path: name, Err: err}
	}
	return tmpl, nil
}

// Render executes tmpl with ctx and formats the result as Go source.
func Render(tmpl *template.Template, ctx Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return nil, &Error{Stage: StageRender, Path: tmpl.Name(), Err: err}
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, &Error{Stage: StageFormat, Path: tmpl.Name(), Err: fmt.Errorf("template produced invalid Go: %w", err)}
	}
	return src, nil
}
