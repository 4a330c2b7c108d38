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

// checkReadOnly reports a property flagged readOnly sent in a request.
//
// The property name is the current segment of the report path.
func (v *validation) checkReadOnly(rep *Report, schema *spec.Schema, data interface{}) {
	if shouldSkip(v.opts, ReadOnlyPropertyNotAllowedInRequest) {
		return
	}
	if v.opts.Direction == Response || schema == nil || !schema.ReadOnly || isUndefined(data) {
		return
	}

	rep.AddCustomError(
		ReadOnlyPropertyNotAllowedInRequest,
		propertyMessage("ReadOnly", schema, data, Request),
		[]interface{}{rep.currentSegment(), data},
		nil,
		schema,
	)
}
