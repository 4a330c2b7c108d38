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
)

// checkType verifies the kind of a value against the type(s) declared by a schema.
//
// requiredByParent is set by the walker when the schema describes a property listed
// as required by the enclosing object: write-only required properties are exempted
// in responses.
func (v *validation) checkType(rep *Report, schema *spec.Schema, data interface{}, requiredByParent bool) {
	declaresNull := len(schema.Type) == 1 && schema.Type[0] == string(KindNull)
	if !declaresNull && shouldSkip(v.opts, InvalidType) {
		return
	}

	if requiredByParent && exemptFromResponse(v.opts.Direction, schema) {
		return
	}

	kind := classify(data)
	if typeMatches(schema.Type, kind) {
		return
	}

	var declared interface{} = []string(schema.Type)
	if len(schema.Type) == 1 {
		declared = schema.Type[0]
	}
	rep.AddError(InvalidType, []interface{}{declared, string(kind)}, nil, schema)
}

// typeMatches tells if a kind is one of the declared types. An integer is a number.
func typeMatches(declared spec.StringOrArray, kind Kind) bool {
	for _, t := range declared {
		if t == string(kind) || (kind == KindInteger && t == string(KindNumber)) {
			return true
		}
	}
	return false
}
