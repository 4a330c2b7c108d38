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

// checkOneOf verifies that a value matches exactly one alternative of a oneOf.
//
// Polymorphic oneOf's are resolved by their discriminator. Otherwise every alternative
// is tried against its own sub-report, capped to one error.
func (v *validation) checkOneOf(rep *Report, schema *spec.Schema, data interface{}) {
	if v.validateDiscriminator(rep, schema, data) {
		return
	}

	passes := 0
	subReports := make([]*Report, 0, len(schema.OneOf))
	for i := range schema.OneOf {
		subReport := newSubReport(rep, 1)
		subReports = append(subReports, subReport)
		if v.validate(subReport, &schema.OneOf[i], data) {
			passes++
		}
	}

	switch {
	case passes == 0:
		rep.AddError(OneOfMissing, nil, subReports, schema)
	case passes > 1:
		rep.AddError(OneOfMultiple, nil, nil, schema)
	}
}
