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

// checkRequired verifies that an object holds all the properties required by its schema.
//
// In responses, a required property which is not readable (x-ms-mutability without "read")
// is not expected.
func (v *validation) checkRequired(rep *Report, schema *spec.Schema, data interface{}) {
	if shouldSkip(v.opts, ObjectMissingRequiredProperty) {
		return
	}

	obj, ok := data.(map[string]interface{})
	if !ok {
		return
	}

	for _, name := range schema.Required {
		if property, declared := schema.Properties[name]; declared && exemptFromResponse(v.opts.Direction, v.resolveOrSelf(&property)) {
			continue
		}

		if value, present := obj[name]; !present || isUndefined(value) {
			rep.AddError(ObjectMissingRequiredProperty, []interface{}{name}, nil, schema)
		}
	}
}
