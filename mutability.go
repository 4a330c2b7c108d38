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

// propertyMessage builds the template of an error about a property that cannot be sent.
//
// The value is quoted only when both the declared type and the actual value are strings.
func propertyMessage(label string, schema *spec.Schema, data interface{}, direction Direction) string {
	msg := label + " property `\"{0}\": "
	if _, isString := data.(string); isString && schemaHelp.isStringType(schema) {
		msg += `"{1}"`
	} else {
		msg += "{1}"
	}
	return msg + "`, cannot be sent in the " + direction.String() + "."
}

// checkSecretInResponse reports a secret property (x-ms-secret: "true") returned in a response.
func (v *validation) checkSecretInResponse(rep *Report, schema *spec.Schema, data interface{}) {
	if shouldSkip(v.opts, SecretProperty) {
		return
	}
	if v.opts.Direction != Response || schema == nil || isUndefined(data) {
		return
	}
	if !schemaHelp.isSecret(schema) {
		return
	}

	rep.AddCustomError(
		SecretProperty,
		propertyMessage("Secret", schema, data, Response),
		[]interface{}{schemaHelp.propertyName(schema), data},
		nil,
		schema,
	)
}

// checkWriteOnlyInResponse reports a write-only property returned in a response.
//
// A write-only property has an x-ms-mutability without "read", but with "create" or "update".
func (v *validation) checkWriteOnlyInResponse(rep *Report, schema *spec.Schema, data interface{}) {
	if shouldSkip(v.opts, WriteOnlyPropertyNotAllowedInResponse) {
		return
	}
	if v.opts.Direction != Response || schema == nil || isUndefined(data) {
		return
	}
	if !schemaHelp.mutability(schema).writeOnly() {
		return
	}

	rep.AddCustomError(
		WriteOnlyPropertyNotAllowedInResponse,
		propertyMessage("Write-only", schema, data, Response),
		[]interface{}{schemaHelp.propertyName(schema), data},
		nil,
		schema,
	)
}

// checkReadOnlyInRequest reports a read-only property sent in a request.
//
// A read-only property has an x-ms-mutability with "read" only. Schemas flagged with readOnly
// are left to checkReadOnly.
func (v *validation) checkReadOnlyInRequest(rep *Report, schema *spec.Schema, data interface{}) {
	if shouldSkip(v.opts, ReadOnlyPropertyNotAllowedInRequest) {
		return
	}
	if v.opts.Direction == Response || schema == nil || isUndefined(data) {
		return
	}
	if !schemaHelp.mutability(schema).readOnly() || schema.ReadOnly {
		return
	}

	rep.AddCustomError(
		ReadOnlyPropertyNotAllowedInRequest,
		propertyMessage("ReadOnly", schema, data, Request),
		[]interface{}{schemaHelp.propertyName(schema), data},
		nil,
		schema,
	)
}
