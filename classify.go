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
	"math"
	"reflect"
)

// Kind is the JSON schema kind of a runtime value
type Kind string

// Kinds returned by the classifier
const (
	KindNull          Kind = "null"
	KindArray         Kind = "array"
	KindObject        Kind = "object"
	KindInteger       Kind = "integer"
	KindNumber        Kind = "number"
	KindNotANumber    Kind = "not-a-number"
	KindUnknownNumber Kind = "unknown-number"
	KindString        Kind = "string"
	KindBoolean       Kind = "boolean"
	KindUndefined     Kind = "undefined"
	KindFunction      Kind = "function"
	KindUnknown       Kind = "unknown"
)

// undefinedValue stands for a value that is absent, as opposed to null
type undefinedValue struct{}

var undefined interface{} = undefinedValue{}

func isUndefined(data interface{}) bool {
	_, ok := data.(undefinedValue)
	return ok
}

// classify returns the kind of a runtime value.
func classify(data interface{}) Kind {
	switch v := data.(type) {
	case nil:
		return KindNull
	case undefinedValue:
		return KindUndefined
	case map[string]interface{}:
		return KindObject
	case []interface{}:
		return KindArray
	case string:
		return KindString
	case bool:
		return KindBoolean
	case float64:
		return classifyFloat(v)
	case float32:
		return classifyFloat(float64(v))
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return KindNotANumber
		}
		return classifyFloat(f)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindInteger
	}

	rv := reflect.ValueOf(data)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return KindNull
		}
		return classify(rv.Elem().Interface())
	case reflect.Map, reflect.Struct:
		return KindObject
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.String:
		return KindString
	case reflect.Bool:
		return KindBoolean
	case reflect.Float32, reflect.Float64:
		return classifyFloat(rv.Float())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return KindInteger
	case reflect.Func, reflect.Chan:
		return KindFunction
	default:
		return KindUnknown
	}
}

func classifyFloat(f float64) Kind {
	switch {
	case math.IsNaN(f):
		return KindNotANumber
	case math.IsInf(f, 0):
		return KindUnknownNumber
	case f == math.Trunc(f):
		return KindInteger
	default:
		return KindNumber
	}
}
