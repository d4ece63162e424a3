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

// Stage names the step of the generation pipeline that failed.
type Stage string

// Pipeline stages, in execution order.
const (
	StageRead     Stage = "read"
	StageParse    Stage = "parse"
	StageValidate Stage = "validate"
	StageCompile  Stage = "compile"
	StageRender   Stage = "render"
	StageFormat   Stage = "format"
)

// Error is returned by every failing step of the generator. All generator
// errors are fatal: the caller MUST NOT write any output when one is
// returned.
type Error struct {
	// Stage is the pipeline step that failed.
	Stage Stage

	// Path is the file being processed, if any.
	Path string

	// Err is the underlying error. For StageValidate it is a multierr
	// combination of every problem found in the dataset.
	Err error
}

// Error implements the error interface.
//
// The message format is:
//
//	"dxiso-gen: {Stage} {Path}: {Err}"   (when Path is set)
//	"dxiso-gen: {Stage}: {Err}"          (otherwise)
func (e *Error) Error() string {
	if e.Path != "" {
		return "dxiso-gen: " + string(e.Stage) + " " + e.Path + ": " + e.Err.Error()
	}
	return "dxiso-gen: " + string(e.Stage) + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}
