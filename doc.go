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

/*
Package validate checks API payloads against a swagger 2.0 document carrying
Azure vendor extensions (x-ms-mutability, x-ms-secret, x-ms-enum, x-ms-discriminator-value).

This package follows Swagger 2.0. specification (aka OpenAPI 2.0). Reference
can be found here: https://github.com/OAI/OpenAPI-Specification/blob/master/versions/2.0.md.

# Validating a payload

A payload is validated either as a request or as a response (see Direction).
Besides JSON schema keywords (type, enum, required, properties, additionalProperties,
items, allOf, anyOf, oneOf, format), the following conformance rules apply.

Entry points:
  - AgainstSchema()
  - NewSchemaValidator()
  - SchemaValidator.Validate()
  - SchemaValidator.ValidateContext()
  - NewOperationValidator()
  - OperationValidator.ValidateRequest()
  - OperationValidator.ValidateResponse()
  - OperationValidator.ValidateGlobalParameter()
  - OperationValidator.ValidateExamples()

Reported as errors:
  - INVALID_TYPE: an integer is a number. In a response, a required write-only property is not type-checked
  - ENUM_CASE_MISMATCH: the value matches an enum member only when ignoring case
  - ENUM_MISMATCH: the value is not in the enum, and the enum is not x-ms-enum.modelAsString
  - OBJECT_MISSING_REQUIRED_PROPERTY: in a response, required properties without "read" mutability may be missing
  - ONE_OF_MISSING, ONE_OF_MULTIPLE: a value must match exactly one alternative of a oneOf
  - SECRET_PROPERTY: a property with x-ms-secret "true" is returned in a response
  - WRITEONLY_PROPERTY_NOT_ALLOWED_IN_RESPONSE: a property with create and/or update mutability, but not read,
    is returned in a response
  - READONLY_PROPERTY_NOT_ALLOWED_IN_REQUEST: a property with read mutability only, or flagged readOnly,
    is sent in a request

# Polymorphism

A oneOf whose alternatives refer to definitions, one of them declaring a discriminator,
is polymorphic. The alternative to validate is selected from the discriminator value of the
payload. A payload without a discriminator value, or with an unknown one, is validated
against the base definition (the one declaring the discriminator), and its discriminator
property is set to the base value.

# Filtering rules

Options may restrict the rules that run to those raising some error kinds (see WithIncludeErrors).
Options may be loaded from a YAML file (see LoadConfig).

# Known limitations

  - patternProperties, dependencies, numeric and string length constraints are not checked
  - the discriminator mapping of OpenAPI 3 is not supported
*/
package validate
