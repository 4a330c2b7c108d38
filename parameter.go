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

// parameterSchema returns the schema node standing for a parameter.
//
// Non-body parameters are described by their simple schema. Body parameters
// only wrap their schema: see checkGlobalParameter.
func parameterSchema(param *spec.Parameter) *spec.Schema {
	node := new(spec.Schema)
	node.Extensions = param.Extensions
	if param.In == "body" {
		return node
	}

	if param.Type != "" {
		node.Type = spec.StringOrArray{param.Type}
	}
	node.Format = param.Format
	node.Enum = param.Enum
	if param.Items != nil && param.Items.Type != "" {
		items := new(spec.Schema)
		items.Type = spec.StringOrArray{param.Items.Type}
		items.Format = param.Items.Format
		items.Enum = param.Items.Enum
		node.Items = &spec.SchemaOrArray{Schema: items}
	}
	return node
}

// checkGlobalParameter forwards the validation of a request parameter to the schema
// it wraps.
//
// The composite hook is turned off while the wrapped schema is validated, so that
// this check does not call itself again.
func (v *validation) checkGlobalParameter(rep *Report, schema *spec.Schema, data interface{}) {
	if v.opts.Direction == Response || schema == nil || isUndefined(data) {
		return
	}
	embedded, ok := v.embedded[schema]
	if !ok || embedded == nil || !v.customHook {
		return
	}

	v.customHook = false
	defer func() {
		v.customHook = true
	}()

	debugLog("validating parameter %q against its schema", rep.currentSegment())
	v.validate(rep, embedded, data)
}
