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
	"reflect"
	"strings"

	"github.com/go-openapi/spec"
	"github.com/go-openapi/swag/jsonutils"
	"github.com/go-openapi/swag/stringutils"
)

// vendor extensions consumed by the rules
const (
	extMutability         = "x-ms-mutability"
	extSecret             = "x-ms-secret"
	extEnum               = "x-ms-enum"
	extDiscriminatorValue = "x-ms-discriminator-value"

	mutabilityCreate = "create"
	mutabilityUpdate = "update"
	mutabilityRead   = "read"
)

// Helpers available at the package level
var (
	valueHelp  *valueHelper
	schemaHelp *schemaHelper
)

type valueHelper struct {
	// A collection of unexported helpers for value comparison
}

// asFloat64 converts any numeric value to float64
func (h *valueHelper) asFloat64(val interface{}) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// normalize turns all numbers of a JSON value into float64
func (h *valueHelper) normalize(val interface{}) interface{} {
	switch v := val.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for k, e := range v {
			out[k] = h.normalize(e)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, e := range v {
			out[i] = h.normalize(e)
		}
		return out
	case string, bool, nil:
		return v
	}
	if f, ok := h.asFloat64(val); ok {
		return f
	}
	return val
}

// equal compares two JSON values, numbers being compared by value
func (h *valueHelper) equal(a, b interface{}) bool {
	return reflect.DeepEqual(h.normalize(a), h.normalize(b))
}

type schemaHelper struct {
	// A collection of unexported helpers reading the vendor annotations of a schema
}

// mutability is the x-ms-mutability annotation of a property
type mutability struct {
	values   []string
	declared bool
}

func (h *schemaHelper) mutability(schema *spec.Schema) mutability {
	if schema == nil {
		return mutability{}
	}
	if values, ok := schema.Extensions.GetStringSlice(extMutability); ok {
		return mutability{values: values, declared: true}
	}
	if values, ok := schema.Extensions[extMutability].([]string); ok {
		return mutability{values: values, declared: true}
	}
	return mutability{}
}

func (m mutability) has(value string) bool {
	return stringutils.ContainsStrings(m.values, value)
}

func (m mutability) excludesRead() bool {
	return m.declared && !m.has(mutabilityRead)
}

// writeOnly properties may be sent on create or update, but are never returned
func (m mutability) writeOnly() bool {
	return m.excludesRead() && (m.has(mutabilityCreate) || m.has(mutabilityUpdate))
}

// readOnly properties are returned, but can be neither created nor updated
func (m mutability) readOnly() bool {
	return m.declared && m.has(mutabilityRead) && !m.has(mutabilityCreate) && !m.has(mutabilityUpdate)
}

// exemptFromResponse tells if a property may legitimately be missing from a response,
// even when required.
func exemptFromResponse(direction Direction, property *spec.Schema) bool {
	return direction == Response && schemaHelp.mutability(property).excludesRead()
}

func (h *schemaHelper) isSecret(schema *spec.Schema) bool {
	if schema == nil {
		return false
	}
	secret, ok := schema.Extensions.GetString(extSecret)
	return ok && strings.EqualFold(secret, "true")
}

// extensibleEnum tells if values outside of the enum are allowed (x-ms-enum.modelAsString)
func (h *schemaHelper) extensibleEnum(schema *spec.Schema) bool {
	xmsEnum, ok := schema.Extensions[extEnum].(map[string]interface{})
	if !ok {
		return false
	}
	modelAsString, _ := xmsEnum["modelAsString"].(bool)
	return modelAsString
}

func (h *schemaHelper) isStringType(schema *spec.Schema) bool {
	return schema != nil && len(schema.Type) == 1 && schema.Type[0] == string(KindString)
}

// propertyName extracts the property name from the path hint encoded as JSON in the title.
//
// The name is only used in messages: any failure yields an empty name.
func (h *schemaHelper) propertyName(schema *spec.Schema) string {
	if schema == nil || schema.Title == "" {
		return ""
	}
	var hint struct {
		Path []interface{} `json:"path"`
	}
	if err := jsonutils.ReadJSON([]byte(schema.Title), &hint); err != nil {
		return ""
	}
	if len(hint.Path) == 0 {
		return ""
	}
	return stringifyParam(hint.Path[len(hint.Path)-1])
}
