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
	"sync"
	"testing"

	"github.com/go-openapi/analysis"
	"github.com/go-openapi/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func petUnion(t testing.TB, sw *spec.Swagger) *spec.Schema {
	t.Helper()
	union, ok := sw.Definitions["PetUnion"]
	require.True(t, ok)
	return &union
}

func TestCompileUnion(t *testing.T) {
	sw := loadPets(t).Spec()
	schema := petUnion(t, sw)

	union := compileUnion(sw, schema.OneOf)
	require.NotNil(t, union)

	assert.Equal(t, "kind", union.property)
	assert.Equal(t, "Pet", union.baseValue)
	assert.Same(t, &schema.OneOf[0], union.base)
	require.Len(t, union.byValue, 3)
	assert.Same(t, &schema.OneOf[0], union.byValue["Pet"])
	assert.Same(t, &schema.OneOf[1], union.byValue["dog"])
	assert.Same(t, &schema.OneOf[2], union.byValue["cat"])
}

func TestCompileUnion_NotPolymorphic(t *testing.T) {
	sw := mustSwagger(t, `{
		"definitions": {
			"A": {"type": "string"},
			"B": {"type": "integer"}
		}
	}`)

	schema := mustSchema(t, `{"oneOf": [{"$ref": "#/definitions/A"}, {"$ref": "#/definitions/B"}]}`)
	assert.Nil(t, compileUnion(sw, schema.OneOf))

	schema = mustSchema(t, `{"oneOf": [{"type": "string"}, {"$ref": "#/definitions/Missing"}]}`)
	assert.Nil(t, compileUnion(sw, schema.OneOf))
}

func TestDiscriminatorValue(t *testing.T) {
	ref := spec.MustCreateRef("#/definitions/Dog")

	for _, tc := range []struct {
		name     string
		target   string
		expected string
		ok       bool
	}{
		{name: "first enum value",
			target:   `{"x-ms-discriminator-value": "hound", "properties": {"kind": {"enum": ["dog", "puppy"]}}}`,
			expected: "dog", ok: true},
		{name: "non-string enum value",
			target: `{"properties": {"kind": {"enum": [1]}}}`},
		{name: "vendor extension",
			target:   `{"x-ms-discriminator-value": "hound", "properties": {"kind": {"type": "string"}}}`,
			expected: "hound", ok: true},
		{name: "definition name",
			target:   `{"properties": {"kind": {"type": "string"}}}`,
			expected: "Dog", ok: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			value, ok := discriminatorValue("kind", mustSchema(t, tc.target), ref)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, value)
		})
	}
}

func TestUnionIndex(t *testing.T) {
	sw := loadPets(t).Spec()
	index := newUnionIndex()

	first := petUnion(t, sw)
	copied := *first
	union := index.lookup(sw, first)
	require.NotNil(t, union)
	assert.Same(t, union, index.lookup(sw, &copied), "copies of a schema share their table")

	assert.Nil(t, index.lookup(sw, nil))
	assert.Nil(t, index.lookup(sw, mustSchema(t, `{"type": "string"}`)))

	plain := mustSchema(t, `{"oneOf": [{"type": "string"}, {"type": "integer"}]}`)
	assert.Nil(t, index.lookup(sw, plain))
	assert.Len(t, index.unions, 2, "tables of non polymorphic oneOf's are cached too")

	t.Run("concurrent lookups", func(t *testing.T) {
		index := newUnionIndex()
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NotNil(t, index.lookup(sw, first))
			}()
		}
		wg.Wait()
		assert.Len(t, index.unions, 1)
	})
}

func TestUnionIndex_Warm(t *testing.T) {
	sw := loadPets(t).Spec()
	index := newUnionIndex()
	index.warm(sw, analysis.New(sw).AllDefinitions())

	key := unionKey(petUnion(t, sw).OneOf)
	require.Contains(t, index.unions, key)
	assert.NotNil(t, index.unions[key])
}

func TestValidateDiscriminator(t *testing.T) {
	sw := loadPets(t).Spec()

	for _, tc := range []struct {
		name         string
		payload      string
		direction    Direction
		expectedKind string
		errors       []ErrorKind
		paths        []string
	}{
		{name: "selects the alternative by value",
			payload:   `{"kind": "dog", "name": "rex", "bark": "loud"}`,
			direction: Response, expectedKind: "dog",
			errors: []ErrorKind{InvalidType}, paths: []string{"/bark"}},
		{name: "selects by enum value",
			payload:   `{"kind": "cat", "name": "tom", "lives": 8.5}`,
			direction: Response, expectedKind: "cat",
			errors: []ErrorKind{InvalidType}, paths: []string{"/lives"}},
		{name: "falls back to the base on unknown values",
			payload:   `{"kind": "fish", "name": "nemo", "bark": "loud"}`,
			direction: Response, expectedKind: "Pet"},
		{name: "falls back to the base without value",
			payload:   `{"name": "nemo"}`,
			direction: Response, expectedKind: "Pet"},
		{name: "falls back to the base on non-string values",
			payload:   `{"kind": 12, "name": "nemo"}`,
			direction: Response, expectedKind: "Pet"},
		{name: "required properties in a request",
			payload:   `{"kind": "dog", "name": "rex"}`,
			direction: Request, expectedKind: "dog",
			errors: []ErrorKind{ObjectMissingRequiredProperty}, paths: []string{""}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			data := mustPayload(t, tc.payload)
			v := newTestValidation(sw, WithDirection(tc.direction))
			rep := NewReport()

			require.True(t, v.validateDiscriminator(rep, petUnion(t, sw), data))

			assert.Equal(t, tc.expectedKind, data.(map[string]interface{})["kind"])
			require.Len(t, rep.Errors, len(tc.errors))
			for i, kind := range tc.errors {
				assert.Equal(t, kind, rep.Errors[i].Kind)
				assert.Equal(t, tc.paths[i], rep.Errors[i].Path)
			}
		})
	}

	t.Run("not polymorphic", func(t *testing.T) {
		v := newTestValidation(sw)
		rep := NewReport()
		schema := mustSchema(t, `{"oneOf": [{"type": "string"}, {"type": "integer"}]}`)
		assert.False(t, v.validateDiscriminator(rep, schema, "x"))
		assert.True(t, rep.IsValid())
	})

	t.Run("not an object", func(t *testing.T) {
		v := newTestValidation(sw)
		rep := NewReport()
		require.True(t, v.validateDiscriminator(rep, petUnion(t, sw), "rex"))
		assert.Len(t, rep.ErrorsOfKind(InvalidType), 1)
	})
}

func TestUnionIndex_Siblings(t *testing.T) {
	sw := loadPets(t).Spec()
	index := newUnionIndex()

	plain := petUnion(t, sw)
	annotated := mustSchema(t, `{
		"oneOf": [
			{"$ref": "#/definitions/Pet", "x-ms-secret": "true"},
			{"$ref": "#/definitions/Dog"},
			{"$ref": "#/definitions/Cat"}
		]
	}`)

	assert.NotEqual(t, unionKey(plain.OneOf), unionKey(annotated.OneOf))

	first := index.lookup(sw, plain)
	second := index.lookup(sw, annotated)
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.NotSame(t, first, second)
	assert.Same(t, &annotated.OneOf[0], second.base)
	assert.Same(t, &plain.OneOf[0], first.base)
}
