// Copyright 2015 go-swagger maintainers
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package validate

import (
	"strings"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/jsonpointer"
	"github.com/go-openapi/spec"
)

// RuleError is a single entry of a validation report
type RuleError struct {
	Kind     ErrorKind
	Message  string
	Template string
	Params   []interface{}
	// Path is the JSON pointer to the offending value
	Path string
	// Inner holds the reports of the alternatives tried before raising this error
	Inner  []*Report
	Schema *spec.Schema
}

func (e *RuleError) Error() string {
	if e.Path == "" {
		return string(e.Kind) + ": " + e.Message
	}
	return string(e.Kind) + " at " + e.Path + ": " + e.Message
}

// Code satisfies errors.Error
func (e *RuleError) Code() int32 {
	return e.Kind.Code()
}

// Report represents a validation result tree.
//
// A sub-report collects the errors of one alternative tried by oneOf:
// it knows its parent, starts from the parent's path and may be capped.
type Report struct {
	Errors []*RuleError

	parent    *Report
	path      []string
	maxErrors int
	// attempted counts errors, including those dropped by the cap
	attempted int
}

// NewReport builds an empty report rooted at the given path segments
func NewReport(path ...string) *Report {
	return &Report{path: append([]string(nil), path...)}
}

func newSubReport(parent *Report, maxErrors int) *Report {
	return &Report{
		parent:    parent,
		path:      append([]string(nil), parent.path...),
		maxErrors: maxErrors,
	}
}

// Parent returns the report this sub-report was created for, if any
func (r *Report) Parent() *Report {
	return r.parent
}

// Path returns the JSON pointer of the current position
func (r *Report) Path() string {
	if len(r.path) == 0 {
		return ""
	}
	escaped := make([]string, len(r.path))
	for i, seg := range r.path {
		escaped[i] = jsonpointer.Escape(seg)
	}
	return "/" + strings.Join(escaped, "/")
}

// currentSegment is the innermost path segment, usually the property being validated
func (r *Report) currentSegment() string {
	if len(r.path) == 0 {
		return ""
	}
	return r.path[len(r.path)-1]
}

func (r *Report) enter(segment string) {
	r.path = append(r.path, segment)
}

func (r *Report) leave() {
	if len(r.path) > 0 {
		r.path = r.path[:len(r.path)-1]
	}
}

// AddError reports an error of some kind with its default message template
func (r *Report) AddError(kind ErrorKind, params []interface{}, inner []*Report, schema *spec.Schema) {
	r.AddCustomError(kind, defaultMessages[kind], params, inner, schema)
}

// AddCustomError reports an error with an explicit message template
func (r *Report) AddCustomError(kind ErrorKind, template string, params []interface{}, inner []*Report, schema *spec.Schema) {
	r.attempted++
	if r.maxErrors > 0 && len(r.Errors) >= r.maxErrors {
		return
	}
	r.Errors = append(r.Errors, &RuleError{
		Kind:     kind,
		Message:  formatMessage(template, params),
		Template: template,
		Params:   params,
		Path:     r.Path(),
		Inner:    inner,
		Schema:   schema,
	})
}

// Merge appends the errors of another report to this one
func (r *Report) Merge(other *Report) *Report {
	if other == nil {
		return r
	}
	for _, e := range other.Errors {
		r.attempted++
		if r.maxErrors > 0 && len(r.Errors) >= r.maxErrors {
			continue
		}
		r.Errors = append(r.Errors, e)
	}
	return r
}

// IsValid returns true when this report holds no error
func (r *Report) IsValid() bool {
	return r == nil || r.attempted == 0
}

// HasErrors returns true when this report is invalid
func (r *Report) HasErrors() bool {
	return !r.IsValid()
}

// ErrorsOfKind returns the reported errors of one kind
func (r *Report) ErrorsOfKind(kind ErrorKind) []*RuleError {
	if r == nil {
		return nil
	}
	var found []*RuleError
	for _, e := range r.Errors {
		if e.Kind == kind {
			found = append(found, e)
		}
	}
	return found
}

// AsError renders this report as an error interface
func (r *Report) AsError() error {
	if r.IsValid() {
		return nil
	}
	errs := make([]error, 0, len(r.Errors))
	for _, e := range r.Errors {
		errs = append(errs, e)
	}
	return errors.CompositeValidationError(errs...)
}
