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
	"path/filepath"
	"testing"

	"github.com/go-openapi/loads"
	"github.com/go-openapi/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSchema(t testing.TB, js string) *spec.Schema {
	t.Helper()
	schema := new(spec.Schema)
	require.NoError(t, json.Unmarshal([]byte(js), schema))
	return schema
}

func mustSwagger(t testing.TB, js string) *spec.Swagger {
	t.Helper()
	sw := new(spec.Swagger)
	require.NoError(t, json.Unmarshal([]byte(js), sw))
	return sw
}

func mustPayload(t testing.TB, js string) interface{} {
	t.Helper()
	var data interface{}
	require.NoError(t, json.Unmarshal([]byte(js), &data))
	return data
}

func loadPets(t testing.TB) *loads.Document {
	t.Helper()
	doc, err := loads.Spec(filepath.Join("fixtures", "azure-pets.json"))
	require.NoError(t, err)
	return doc
}

// newTestValidation prepares a validation pass, for testing rules one by one
func newTestValidation(root interface{}, options ...Option) *validation {
	opts := newOptions(options...)
	return &validation{
		opts:       &opts,
		root:       root,
		unions:     newUnionIndex(),
		customHook: !opts.DisableCustomValidator,
	}
}

//nolint:gosec
func integerFactory(base int) []any {
	return []any{
		base,
		int8(base),
		int16(base),
		int32(base),
		int64(base),
		uint(base),
		uint8(base),
		uint16(base),
		uint32(base),
		uint64(base),
		float32(base),
		float64(base),
		json.Number("3"),
	}
}

// Test cases in private method asFloat64()
func TestHelpers_asFloat64(t *testing.T) {
	const epsilon = 1e-9

	for _, v := range integerFactory(3) {
		f, ok := valueHelp.asFloat64(v)
		require.True(t, ok)
		assert.InDelta(t, float64(3), f, epsilon)
	}

	// Non numeric
	if assert.NotPanics(t, func() {
		_, _ = valueHelp.asFloat64("123")
	}) {
		_, ok := valueHelp.asFloat64("123")
		assert.False(t, ok)
	}
}

func TestHelpers_equal(t *testing.T) {
	assert.True(t, valueHelp.equal(float64(1), 1))
	assert.True(t, valueHelp.equal(
		map[string]interface{}{"a": []interface{}{1, "x"}},
		map[string]interface{}{"a": []interface{}{float64(1), "x"}},
	))
	assert.True(t, valueHelp.equal(nil, nil))
	assert.False(t, valueHelp.equal("a", "A"))
	assert.False(t, valueHelp.equal(float64(1), "1"))
	assert.False(t, valueHelp.equal(nil, undefined))
}

func TestHelpers_mutability(t *testing.T) {
	t.Run("write-only", func(t *testing.T) {
		m := schemaHelp.mutability(mustSchema(t, `{"x-ms-mutability": ["create", "update"]}`))
		assert.True(t, m.declared)
		assert.True(t, m.excludesRead())
		assert.True(t, m.writeOnly())
		assert.False(t, m.readOnly())
	})

	t.Run("read-only", func(t *testing.T) {
		m := schemaHelp.mutability(mustSchema(t, `{"x-ms-mutability": ["read"]}`))
		assert.False(t, m.excludesRead())
		assert.False(t, m.writeOnly())
		assert.True(t, m.readOnly())
	})

	t.Run("read-write", func(t *testing.T) {
		m := schemaHelp.mutability(mustSchema(t, `{"x-ms-mutability": ["create", "read"]}`))
		assert.False(t, m.writeOnly())
		assert.False(t, m.readOnly())
	})

	t.Run("empty mutability excludes read", func(t *testing.T) {
		m := schemaHelp.mutability(mustSchema(t, `{"x-ms-mutability": []}`))
		assert.True(t, m.excludesRead())
		assert.False(t, m.writeOnly())
	})

	t.Run("undeclared", func(t *testing.T) {
		m := schemaHelp.mutability(mustSchema(t, `{"type": "string"}`))
		assert.False(t, m.declared)
		assert.False(t, m.excludesRead())
		assert.False(t, m.readOnly())

		assert.False(t, schemaHelp.mutability(nil).declared)
	})

	t.Run("set as a []string", func(t *testing.T) {
		schema := new(spec.Schema)
		schema.AddExtension(extMutability, []string{"update"})
		assert.True(t, schemaHelp.mutability(schema).writeOnly())
	})
}

func TestHelpers_exemptFromResponse(t *testing.T) {
	writeOnly := mustSchema(t, `{"x-ms-mutability": ["create"]}`)
	readable := mustSchema(t, `{"x-ms-mutability": ["create", "read"]}`)

	assert.True(t, exemptFromResponse(Response, writeOnly))
	assert.False(t, exemptFromResponse(Request, writeOnly))
	assert.False(t, exemptFromResponse(Response, readable))
	assert.False(t, exemptFromResponse(Response, nil))
}

func TestHelpers_isSecret(t *testing.T) {
	assert.True(t, schemaHelp.isSecret(mustSchema(t, `{"x-ms-secret": "true"}`)))
	assert.True(t, schemaHelp.isSecret(mustSchema(t, `{"x-ms-secret": "TRUE"}`)))
	assert.False(t, schemaHelp.isSecret(mustSchema(t, `{"x-ms-secret": "false"}`)))
	// only the string form is recognized
	assert.False(t, schemaHelp.isSecret(mustSchema(t, `{"x-ms-secret": true}`)))
	assert.False(t, schemaHelp.isSecret(nil))
}

func TestHelpers_extensibleEnum(t *testing.T) {
	assert.True(t, schemaHelp.extensibleEnum(mustSchema(t, `{"x-ms-enum": {"name": "Size", "modelAsString": true}}`)))
	assert.False(t, schemaHelp.extensibleEnum(mustSchema(t, `{"x-ms-enum": {"name": "Size", "modelAsString": false}}`)))
	assert.False(t, schemaHelp.extensibleEnum(mustSchema(t, `{"x-ms-enum": {"name": "Size"}}`)))
	assert.False(t, schemaHelp.extensibleEnum(mustSchema(t, `{"enum": ["a"]}`)))
}

func TestHelpers_propertyName(t *testing.T) {
	for _, tc := range []struct {
		title    string
		expected string
	}{
		{title: `{"path":["definitions","Pet","properties","password"]}`, expected: "password"},
		{title: `{"path":["items",3]}`, expected: "3"},
		{title: `{"path":[]}`, expected: ""},
		{title: `Pet password`, expected: ""},
		{title: ``, expected: ""},
	} {
		schema := new(spec.Schema)
		schema.Title = tc.title
		assert.Equalf(t, tc.expected, schemaHelp.propertyName(schema), "title: %s", tc.title)
	}
	assert.Empty(t, schemaHelp.propertyName(nil))
}
