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
	"strings"
	"sync"

	"github.com/go-openapi/analysis"
	"github.com/go-openapi/spec"
	"github.com/go-openapi/swag/jsonutils"
)

// discriminatedUnion is the table of a polymorphic oneOf, keyed by discriminator value.
type discriminatedUnion struct {
	// property is the name of the discriminator property
	property string
	// base is the alternative whose target declares the discriminator
	base      *spec.Schema
	baseValue string
	// byValue maps a discriminator value to the first alternative declaring it
	byValue map[string]*spec.Schema
}

// unionIndex caches the tables of polymorphic oneOf's.
//
// Tables depend only on the alternatives as written ($ref plus the siblings merged
// into the resolved schema) and are keyed by them, so that copies of the same schema
// share their table.
type unionIndex struct {
	mu     sync.Mutex
	unions map[string]*discriminatedUnion
}

func newUnionIndex() *unionIndex {
	return &unionIndex{unions: make(map[string]*discriminatedUnion)}
}

func unionKey(alternatives []spec.Schema) string {
	refs := make([]string, len(alternatives))
	for i := range alternatives {
		alternative := &alternatives[i]
		refs[i] = alternative.Ref.String()
		if len(alternative.Extensions) == 0 && !alternative.ReadOnly && alternative.Title == "" {
			continue
		}
		siblings, err := jsonutils.WriteJSON(struct {
			Extensions spec.Extensions `json:"x,omitempty"`
			ReadOnly   bool            `json:"r,omitempty"`
			Title      string          `json:"t,omitempty"`
		}{alternative.Extensions, alternative.ReadOnly, alternative.Title})
		if err == nil {
			refs[i] += " " + string(siblings)
		}
	}
	return strings.Join(refs, "\n")
}

// lookup returns the table of a oneOf, or nil when no alternative declares a discriminator.
func (u *unionIndex) lookup(root interface{}, schema *spec.Schema) *discriminatedUnion {
	if schema == nil || len(schema.OneOf) == 0 {
		return nil
	}
	key := unionKey(schema.OneOf)

	u.mu.Lock()
	defer u.mu.Unlock()

	if union, ok := u.unions[key]; ok {
		return union
	}
	union := compileUnion(root, schema.OneOf)
	u.unions[key] = union

	return union
}

// warm compiles the tables of all the oneOf's found in an analyzed document
func (u *unionIndex) warm(root interface{}, schemas []analysis.SchemaRef) {
	for _, ref := range schemas {
		if ref.Schema != nil && len(ref.Schema.OneOf) > 0 {
			u.lookup(root, ref.Schema)
		}
	}
}

func compileUnion(root interface{}, alternatives []spec.Schema) *discriminatedUnion {
	targets := make([]*spec.Schema, len(alternatives))
	baseIndex := -1

	for i := range alternatives {
		alternative := &alternatives[i]
		if alternative.Ref.String() == "" {
			continue
		}
		target, err := spec.ResolveRef(root, &alternative.Ref)
		if err != nil || target == nil {
			debugLog("oneOf alternative %s could not be resolved: %v", alternative.Ref.String(), err)
			continue
		}
		targets[i] = target
		if baseIndex < 0 && target.Discriminator != "" {
			baseIndex = i
		}
	}

	if baseIndex < 0 {
		return nil
	}

	base := &alternatives[baseIndex]
	union := &discriminatedUnion{
		property: targets[baseIndex].Discriminator,
		base:     base,
		byValue:  make(map[string]*spec.Schema, len(alternatives)),
	}
	union.baseValue, _ = discriminatorValue(union.property, targets[baseIndex], base.Ref)

	for i, target := range targets {
		if target == nil {
			continue
		}
		value, ok := discriminatorValue(union.property, target, alternatives[i].Ref)
		if !ok {
			continue
		}
		if _, known := union.byValue[value]; !known {
			union.byValue[value] = &alternatives[i]
		}
	}
	debugLog("compiled polymorphic oneOf on %q: base %s (%q), %d values",
		union.property, base.Ref.String(), union.baseValue, len(union.byValue))

	return union
}

// discriminatorValue returns the discriminator value declared by the target of an alternative:
// the first enum value of the discriminator property, or else x-ms-discriminator-value,
// or else the name of the definition.
func discriminatorValue(property string, target *spec.Schema, ref spec.Ref) (string, bool) {
	if prop, ok := target.Properties[property]; ok && len(prop.Enum) > 0 {
		value, isString := prop.Enum[0].(string)
		return value, isString
	}
	if value, ok := target.Extensions.GetString(extDiscriminatorValue); ok && value != "" {
		return value, true
	}
	tokens := ref.GetPointer().DecodedTokens()
	if len(tokens) == 0 {
		return "", false
	}
	return tokens[len(tokens)-1], true
}

// validateDiscriminator validates a polymorphic oneOf against the alternative selected
// by the discriminator value of the payload.
//
// It returns false when the oneOf is not polymorphic. Payloads without a discriminator value,
// or with an unknown one, are validated against the base alternative, and their discriminator
// property is set to the base value.
func (v *validation) validateDiscriminator(rep *Report, schema *spec.Schema, data interface{}) bool {
	union := v.unions.lookup(v.root, schema)
	if union == nil {
		return false
	}

	effective := union.baseValue
	obj, isObject := data.(map[string]interface{})
	if isObject {
		if value, ok := obj[union.property].(string); ok && value != "" {
			effective = value
		}
	}

	selected, ok := union.byValue[effective]
	if !ok {
		debugLog("discriminator %q: unknown value %q, falling back to %s\n%s",
			union.property, effective, union.base.Ref.String(), debugDump(data))
		selected = union.base
	}

	if selected == union.base && isObject {
		obj[union.property] = union.baseValue
	}

	v.validate(rep, selected, data)

	return true
}
