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
	"context"
	"sort"
	"strconv"

	"github.com/go-openapi/spec"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag/stringutils"
)

// maxRefDepth bounds the length of a chain of $ref's
const maxRefDepth = 99

// SchemaValidator validates data against a JSON schema, along with
// the conformance rules on Azure vendor extensions
type SchemaValidator struct {
	Path         string
	Schema       *spec.Schema
	Root         interface{}
	KnownFormats strfmt.Registry
	Options      Options

	unions *unionIndex
	// embedded maps parameter nodes to the schema they wrap
	embedded map[*spec.Schema]*spec.Schema
}

// AgainstSchema validates the specified data against the provided schema, using a registry of supported formats.
func AgainstSchema(schema *spec.Schema, data interface{}, formats strfmt.Registry, options ...Option) error {
	res := NewSchemaValidator(schema, nil, "", formats, options...).Validate(data)
	if res.HasErrors() {
		return res.AsError()
	}
	return nil
}

// NewSchemaValidator creates a new schema validator.
//
// rootSchema is the document $ref's are resolved against: when nil, the schema itself.
func NewSchemaValidator(schema *spec.Schema, rootSchema interface{}, root string, formats strfmt.Registry, options ...Option) *SchemaValidator {
	if schema == nil {
		return nil
	}

	if rootSchema == nil {
		rootSchema = schema
	}

	if formats == nil {
		formats = strfmt.Default
	}

	return &SchemaValidator{
		Path:         root,
		Schema:       schema,
		Root:         rootSchema,
		KnownFormats: formats,
		Options:      newOptions(options...),
		unions:       newUnionIndex(),
	}
}

// SetPath sets the path for this schema validator
func (s *SchemaValidator) SetPath(path string) {
	s.Path = path
}

// Validate validates the data against the schema, in the direction set by the options
func (s *SchemaValidator) Validate(data interface{}) *Report {
	if s == nil {
		return NewReport()
	}
	return s.run(s.Options.Direction, data)
}

// ValidateContext validates the data against the schema.
//
// The direction is taken from ctx when set with WithOperationRequest or WithOperationResponse.
func (s *SchemaValidator) ValidateContext(ctx context.Context, data interface{}) *Report {
	if s == nil {
		return NewReport()
	}
	return s.run(directionFromContext(ctx, s.Options.Direction), data)
}

func (s *SchemaValidator) run(direction Direction, data interface{}) *Report {
	var rep *Report
	if s.Path != "" {
		rep = NewReport(s.Path)
	} else {
		rep = NewReport()
	}

	opts := s.Options
	opts.Direction = direction
	v := &validation{
		opts:       &opts,
		root:       s.Root,
		formats:    s.KnownFormats,
		unions:     s.unions,
		embedded:   s.embedded,
		customHook: !opts.DisableCustomValidator,
	}
	v.validate(rep, s.Schema, data)

	return rep
}

// validation holds the state of a single validation pass
type validation struct {
	opts     *Options
	root     interface{}
	formats  strfmt.Registry
	unions   *unionIndex
	embedded map[*spec.Schema]*spec.Schema
	// customHook tells if customValidate runs on every node
	customHook bool
}

// validate checks data against a schema and tells if no error was raised
func (v *validation) validate(rep *Report, schema *spec.Schema, data interface{}) bool {
	return v.validateNode(rep, schema, data, false)
}

func (v *validation) validateNode(rep *Report, schema *spec.Schema, data interface{}, requiredByParent bool) bool {
	if schema == nil {
		return true
	}
	before := rep.attempted

	node, err := v.resolve(schema)
	if err != nil {
		rep.AddError(UnresolvableReference, []interface{}{schema.Ref.String()}, nil, schema)
		return false
	}

	if len(node.Type) > 0 {
		v.checkType(rep, node, data, requiredByParent)
	}
	if len(node.Enum) > 0 {
		v.checkEnum(rep, node, data)
	}
	if obj, isObject := data.(map[string]interface{}); isObject {
		if len(node.Required) > 0 {
			v.checkRequired(rep, node, data)
		}
		v.validateProperties(rep, node, obj)
	}
	if arr, isArray := data.([]interface{}); isArray {
		v.validateItems(rep, node, arr)
	}
	for i := range node.AllOf {
		v.validate(rep, &node.AllOf[i], data)
	}
	if len(node.AnyOf) > 0 {
		v.validateAnyOf(rep, node, data)
	}
	if len(node.OneOf) > 0 {
		v.checkOneOf(rep, node, data)
	}
	if node.ReadOnly {
		v.checkReadOnly(rep, node, data)
	}
	if node.Format != "" {
		v.validateFormat(rep, node, data)
	}
	if v.customHook {
		v.customValidate(rep, node, data)
	}

	return rep.attempted == before
}

// resolve follows $ref's. Vendor extensions, title and readOnly set next to a $ref
// are carried over to the resolved schema.
func (v *validation) resolve(schema *spec.Schema) (*spec.Schema, error) {
	node := schema
	for depth := 0; node.Ref.String() != "" && depth < maxRefDepth; depth++ {
		target, err := spec.ResolveRef(v.root, &node.Ref)
		if err != nil {
			return nil, err
		}
		if target == nil {
			return nil, unresolvedRefMsg(node.Ref.String())
		}
		node = mergeSiblings(target, node)
	}
	return node, nil
}

// resolveOrSelf is resolve, falling back to the schema itself when its $ref cannot be resolved.
func (v *validation) resolveOrSelf(schema *spec.Schema) *spec.Schema {
	node, err := v.resolve(schema)
	if err != nil {
		return schema
	}
	return node
}

func mergeSiblings(target, referrer *spec.Schema) *spec.Schema {
	if len(referrer.Extensions) == 0 && !referrer.ReadOnly && referrer.Title == "" {
		return target
	}

	view := *target
	view.Extensions = make(spec.Extensions, len(target.Extensions)+len(referrer.Extensions))
	for k, e := range target.Extensions {
		view.Extensions[k] = e
	}
	for k, e := range referrer.Extensions {
		view.Extensions[k] = e
	}
	view.ReadOnly = target.ReadOnly || referrer.ReadOnly
	if referrer.Title != "" {
		view.Title = referrer.Title
	}
	return &view
}

func (v *validation) validateProperties(rep *Report, schema *spec.Schema, obj map[string]interface{}) {
	names := make([]string, 0, len(obj))
	for name := range obj {
		names = append(names, name)
	}
	sort.Strings(names)

	var extra []string
	for _, name := range names {
		value := obj[name]
		if property, declared := schema.Properties[name]; declared {
			rep.enter(name)
			v.validateNode(rep, &property, value, stringutils.ContainsStrings(schema.Required, name))
			rep.leave()
			continue
		}

		additional := schema.AdditionalProperties
		switch {
		case additional == nil:
		case additional.Schema != nil:
			rep.enter(name)
			v.validate(rep, additional.Schema, value)
			rep.leave()
		case !additional.Allows:
			extra = append(extra, name)
		}
	}

	if len(extra) > 0 {
		rep.AddError(ObjectAdditionalProperties, []interface{}{extra}, nil, schema)
	}
}

func (v *validation) validateItems(rep *Report, schema *spec.Schema, arr []interface{}) {
	if schema.Items == nil {
		return
	}
	for i, item := range arr {
		var itemSchema *spec.Schema
		switch {
		case schema.Items.Schema != nil:
			itemSchema = schema.Items.Schema
		case i < len(schema.Items.Schemas):
			itemSchema = &schema.Items.Schemas[i]
		default:
			return
		}
		rep.enter(strconv.Itoa(i))
		v.validate(rep, itemSchema, item)
		rep.leave()
	}
}

func (v *validation) validateAnyOf(rep *Report, schema *spec.Schema, data interface{}) {
	subReports := make([]*Report, 0, len(schema.AnyOf))
	for i := range schema.AnyOf {
		subReport := newSubReport(rep, 1)
		if v.validate(subReport, &schema.AnyOf[i], data) {
			return
		}
		subReports = append(subReports, subReport)
	}
	rep.AddError(AnyOfMissing, nil, subReports, schema)
}

func (v *validation) validateFormat(rep *Report, schema *spec.Schema, data interface{}) {
	str, isString := data.(string)
	if !isString || v.formats == nil || !v.formats.ContainsName(schema.Format) {
		return
	}
	if !v.formats.Validates(schema.Format, str) {
		rep.AddError(InvalidFormat, []interface{}{schema.Format, str}, nil, schema)
	}
}
