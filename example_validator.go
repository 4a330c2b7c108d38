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
	"sort"

	"github.com/go-openapi/spec"
)

// exampleValidator validates example values defined in a spec
type exampleValidator struct {
	OperationValidator *OperationValidator
}

// Validate validates the response examples declared in the swagger spec
func (ex *exampleValidator) Validate() (res *Report) {
	res = NewReport()
	if ex == nil || ex.OperationValidator == nil {
		return res
	}
	return res.Merge(ex.validateExamplesValidAgainstSchema())
}

func (ex *exampleValidator) validateResponseExample(path string, r *spec.Response) *Report {
	// values provided as example in responses must validate the schema they examplify
	res := NewReport()
	o := ex.OperationValidator

	// Recursively follow possible $ref's
	r, err := o.resolveResponse(r)
	if err != nil {
		res.AddError(UnresolvableReference, []interface{}{path}, nil, nil)
		return res
	}

	// NOTE: "examples" in responses vs "example" in other definitions
	if r.Examples == nil || r.Schema == nil {
		return res
	}
	if example, ok := r.Examples["application/json"]; ok {
		res.Merge(o.schemaValidator(r.Schema, path, Response).Validate(example))
	}

	return res
}

func (ex *exampleValidator) validateExamplesValidAgainstSchema() *Report {
	// validates all examples provided in a spec
	// - values provides as Examples in a response must validate the response's schema
	res := NewReport()
	o := ex.OperationValidator

	for _ /*method*/, pathItem := range o.analyzer.Operations() {
		if pathItem == nil { // Safeguard
			continue
		}
		for path, op := range pathItem {
			if op.Responses == nil {
				continue
			}
			if op.Responses.Default != nil {
				res.Merge(ex.validateResponseExample(path, op.Responses.Default))
			}

			codes := make([]int, 0, len(op.Responses.StatusCodeResponses))
			for code := range op.Responses.StatusCodeResponses {
				codes = append(codes, code)
			}
			sort.Ints(codes)
			for _, code := range codes {
				r := op.Responses.StatusCodeResponses[code]
				debugLog("validating example of %s, response %d", path, code)
				res.Merge(ex.validateResponseExample(path, &r))
			}
		}
	}
	return res
}
