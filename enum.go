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
	"github.com/go-openapi/spec"
	"github.com/go-openapi/swag/stringutils"
)

// checkEnum verifies that a value belongs to the enum of a schema.
//
// A value matching an enum member only when ignoring case is reported as a case mismatch,
// never as an enum mismatch. With x-ms-enum.modelAsString, values outside of the enum are accepted.
func (v *validation) checkEnum(rep *Report, schema *spec.Schema, data interface{}) {
	if shouldSkip(v.opts, EnumCaseMismatch, EnumMismatch) {
		return
	}

	var candidates []string
	for i := len(schema.Enum) - 1; i >= 0; i-- {
		member := schema.Enum[i]
		if valueHelp.equal(data, member) {
			return
		}
		if str, ok := member.(string); ok {
			candidates = append(candidates, str)
		}
	}

	str, isString := data.(string)
	caseInsensitiveMatch := isString && stringutils.ContainsStringsCI(candidates, str)

	switch {
	case caseInsensitiveMatch && !shouldSkip(v.opts, EnumCaseMismatch):
		rep.AddCustomError(EnumCaseMismatch, defaultMessages[EnumCaseMismatch], []interface{}{data}, nil, schema)
	case !schemaHelp.extensibleEnum(schema) && !shouldSkip(v.opts, EnumMismatch):
		rep.AddError(EnumMismatch, []interface{}{data}, nil, schema)
	}
}
