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
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/swag/conv"
	"github.com/go-openapi/swag/jsonutils"
)

const (
	// error messages related to validation entry points and configuration

	// InvalidReference indicates that a $ref property could not be resolved
	InvalidReference = "invalid ref %q"
	// UnknownOperation indicates that no operation with this operationId exists in the document
	UnknownOperation = "operation %q is not defined in spec"
	// UnknownResponse indicates that an operation declares neither this status code nor a default response
	UnknownResponse = "operation %q has no response for status %d and no default response"
	// UnknownGlobalParameter indicates a missing document-level parameter
	UnknownGlobalParameter = "global parameter %q is not defined in spec"
	// UnknownErrorKind is returned when parsing an error kind that no rule raises
	UnknownErrorKind = "unknown error kind %q"
	// UnknownDirection is returned when parsing a direction other than request or response
	UnknownDirection = "unknown direction %q: expected request or response"
	// InvalidConfig wraps configuration decoding failures
	InvalidConfig = "invalid validation config %s: %v"
)

const (
	// InternalErrorCode reports an internal technical error
	InternalErrorCode = http.StatusInternalServerError
	// NotFoundErrorCode indicates that a resource (e.g. a $ref) could not be found
	NotFoundErrorCode = http.StatusNotFound
)

// message templates for errors raised with AddError. Placeholders are {0}, {1}, ...
var defaultMessages = map[ErrorKind]string{
	InvalidType:                   "Expected type {0} but found type {1}",
	EnumMismatch:                  "No enum match for: {0}",
	EnumCaseMismatch:              "Enum does not match case for: {0}",
	ObjectMissingRequiredProperty: "Missing required property: {0}",
	OneOfMissing:                  "Data does not match any schemas from 'oneOf'",
	OneOfMultiple:                 "Data is valid against more than one schema from 'oneOf'",
	AnyOfMissing:                  "Data does not match any schemas from 'anyOf'",
	ObjectAdditionalProperties:    "Additional properties not allowed: {0}",
	InvalidFormat:                 "Object didn't pass validation for format {0}: {1}",
	UnresolvableReference:         "Reference could not be resolved: {0}",
	MissingRequiredParameter:      "Value is required but was not provided",
}

func unresolvedRefMsg(path string) errors.Error {
	return errors.New(NotFoundErrorCode, InvalidReference, path)
}

func unknownOperationMsg(operationID string) errors.Error {
	return errors.NotFound(UnknownOperation, operationID)
}

func unknownResponseMsg(operationID string, status int) errors.Error {
	return errors.NotFound(UnknownResponse, operationID, status)
}

func unknownGlobalParameterMsg(name string) errors.Error {
	return errors.NotFound(UnknownGlobalParameter, name)
}

func invalidConfigMsg(name string, err error) errors.Error {
	return errors.New(InternalErrorCode, InvalidConfig, name, err)
}

// formatMessage replaces the positional placeholders {n} of a template.
func formatMessage(template string, params []interface{}) string {
	if len(params) == 0 {
		return template
	}
	pairs := make([]string, 0, 2*len(params))
	for i, p := range params {
		pairs = append(pairs, "{"+strconv.Itoa(i)+"}", stringifyParam(p))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// stringifyParam renders a message parameter: scalars verbatim,
// lists comma-joined, objects and null as JSON.
func stringifyParam(p interface{}) string {
	switch v := p.(type) {
	case nil:
		return "null"
	case undefinedValue:
		return "undefined"
	case string:
		return v
	case ErrorKind:
		return string(v)
	case Kind:
		return string(v)
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return conv.FormatFloat(v)
	case float32:
		return conv.FormatFloat(v)
	case json.Number:
		return v.String()
	case []string:
		return strings.Join(v, ",")
	}

	rv := reflect.ValueOf(p)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = stringifyParam(rv.Index(i).Interface())
		}
		return strings.Join(parts, ",")
	case reflect.Map, reflect.Struct, reflect.Ptr:
		b, err := jsonutils.WriteJSON(p)
		if err != nil {
			return fmt.Sprintf("%v", p)
		}
		return string(b)
	default:
		return fmt.Sprintf("%v", p)
	}
}
