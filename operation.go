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

	"github.com/go-openapi/analysis"
	"github.com/go-openapi/loads"
	"github.com/go-openapi/spec"
	"github.com/go-openapi/strfmt"
)

// OperationValidator validates the requests and responses of the operations
// described by a swagger document.
type OperationValidator struct {
	doc          *loads.Document
	analyzer     *analysis.Spec
	KnownFormats strfmt.Registry
	options      []Option
	unions       *unionIndex
}

// NewOperationValidator prepares the validation of payloads for the operations of a document.
//
// The polymorphic oneOf's found in the document are compiled once here.
func NewOperationValidator(doc *loads.Document, formats strfmt.Registry, options ...Option) *OperationValidator {
	if formats == nil {
		formats = strfmt.Default
	}
	ov := &OperationValidator{
		doc:          doc,
		analyzer:     analysis.New(doc.Spec()),
		KnownFormats: formats,
		options:      options,
		unions:       newUnionIndex(),
	}
	ov.unions.warm(doc.Spec(), ov.analyzer.AllDefinitions())

	return ov
}

func (o *OperationValidator) schemaValidator(schema *spec.Schema, path string, direction Direction) *SchemaValidator {
	options := make([]Option, 0, len(o.options)+1)
	options = append(options, o.options...)
	options = append(options, WithDirection(direction))

	s := NewSchemaValidator(schema, o.doc.Spec(), path, o.KnownFormats, options...)
	if s != nil {
		s.unions = o.unions
	}
	return s
}

// parameterValidator validates a parameter as a node. A body parameter wraps its schema.
func (o *OperationValidator) parameterValidator(param *spec.Parameter, direction Direction) *SchemaValidator {
	node := parameterSchema(param)
	s := o.schemaValidator(node, param.Name, direction)
	if param.In == "body" && param.Schema != nil {
		s.embedded = map[*spec.Schema]*spec.Schema{node: param.Schema}
	}
	return s
}

// ValidateRequest validates the parameters of a request, keyed by parameter name.
//
// Body parameters are validated against their schema. Other parameters are expected
// with their decoded value (e.g. a number for an integer query parameter).
func (o *OperationValidator) ValidateRequest(operationID string, params map[string]interface{}) (*Report, error) {
	method, path, _, ok := o.analyzer.OperationForName(operationID)
	if !ok {
		return nil, unknownOperationMsg(operationID)
	}

	declared := o.analyzer.ParamsFor(method, path)
	keys := make([]string, 0, len(declared))
	for k := range declared {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	res := NewReport()
	for _, k := range keys {
		param := declared[k]
		value, present := params[param.Name]
		if !present {
			if param.Required {
				missing := NewReport(param.Name)
				missing.AddError(MissingRequiredParameter, nil, nil, nil)
				res.Merge(missing)
			}
			continue
		}

		if param.In == "body" {
			res.Merge(o.schemaValidator(param.Schema, param.Name, Request).Validate(value))
			continue
		}
		res.Merge(o.parameterValidator(&param, Request).Validate(value))
	}

	return res, nil
}

// ValidateResponse validates the body of a response, given its status code.
//
// When the operation declares no response for this status, the default response is used.
func (o *OperationValidator) ValidateResponse(operationID string, status int, body interface{}) (*Report, error) {
	_, _, op, ok := o.analyzer.OperationForName(operationID)
	if !ok {
		return nil, unknownOperationMsg(operationID)
	}

	var response *spec.Response
	if op.Responses != nil {
		if r, found := op.Responses.StatusCodeResponses[status]; found {
			response = &r
		} else {
			response = op.Responses.Default
		}
	}
	if response == nil {
		return nil, unknownResponseMsg(operationID, status)
	}

	response, err := o.resolveResponse(response)
	if err != nil {
		return nil, err
	}
	if response.Schema == nil {
		return NewReport(), nil
	}

	return o.schemaValidator(response.Schema, "", Response).Validate(body), nil
}

// ValidateGlobalParameter validates a value against a parameter declared at the document level.
func (o *OperationValidator) ValidateGlobalParameter(name string, value interface{}) (*Report, error) {
	param, ok := o.doc.Spec().Parameters[name]
	if !ok {
		return nil, unknownGlobalParameterMsg(name)
	}
	return o.parameterValidator(&param, Request).Validate(value), nil
}

// ValidateExamples validates all the response examples declared in the document
func (o *OperationValidator) ValidateExamples() *Report {
	ex := &exampleValidator{OperationValidator: o}
	return ex.Validate()
}

func (o *OperationValidator) resolveResponse(r *spec.Response) (*spec.Response, error) {
	for depth := 0; r.Ref.String() != "" && depth < maxRefDepth; depth++ {
		resolved, err := spec.ResolveResponse(o.doc.Spec(), r.Ref)
		if err != nil {
			return nil, unresolvedRefMsg(r.Ref.String())
		}
		r = resolved
	}
	return r, nil
}
