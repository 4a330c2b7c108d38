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
	"fmt"

	"github.com/go-openapi/errors"
)

// ErrorKind identifies the kind of a reported validation error.
type ErrorKind string

// Error kinds raised by the conformance rules.
const (
	EnumMismatch                          ErrorKind = "ENUM_MISMATCH"
	EnumCaseMismatch                      ErrorKind = "ENUM_CASE_MISMATCH"
	ObjectMissingRequiredProperty         ErrorKind = "OBJECT_MISSING_REQUIRED_PROPERTY"
	InvalidType                           ErrorKind = "INVALID_TYPE"
	OneOfMissing                          ErrorKind = "ONE_OF_MISSING"
	OneOfMultiple                         ErrorKind = "ONE_OF_MULTIPLE"
	SecretProperty                        ErrorKind = "SECRET_PROPERTY"
	WriteOnlyPropertyNotAllowedInResponse ErrorKind = "WRITEONLY_PROPERTY_NOT_ALLOWED_IN_RESPONSE"
	ReadOnlyPropertyNotAllowedInRequest   ErrorKind = "READONLY_PROPERTY_NOT_ALLOWED_IN_REQUEST"
)

// Error kinds raised by the schema walker itself.
const (
	AnyOfMissing               ErrorKind = "ANY_OF_MISSING"
	ObjectAdditionalProperties ErrorKind = "OBJECT_ADDITIONAL_PROPERTIES"
	InvalidFormat              ErrorKind = "INVALID_FORMAT"
	UnresolvableReference      ErrorKind = "UNRESOLVABLE_REFERENCE"
	MissingRequiredParameter   ErrorKind = "MISSING_REQUIRED_PARAMETER"
)

var knownKinds = map[ErrorKind]int32{
	EnumMismatch:                          errors.EnumFailCode,
	EnumCaseMismatch:                      errors.EnumFailCode,
	ObjectMissingRequiredProperty:         errors.RequiredFailCode,
	InvalidType:                           errors.InvalidTypeCode,
	OneOfMissing:                          errors.CompositeErrorCode,
	OneOfMultiple:                         errors.CompositeErrorCode,
	SecretProperty:                        errors.CompositeErrorCode,
	WriteOnlyPropertyNotAllowedInResponse: errors.CompositeErrorCode,
	ReadOnlyPropertyNotAllowedInRequest:   errors.CompositeErrorCode,
	AnyOfMissing:                          errors.CompositeErrorCode,
	ObjectAdditionalProperties:            errors.CompositeErrorCode,
	InvalidFormat:                         errors.InvalidTypeCode,
	UnresolvableReference:                 NotFoundErrorCode,
	MissingRequiredParameter:              errors.RequiredFailCode,
}

// Code is the go-openapi/errors code reported for this kind.
func (k ErrorKind) Code() int32 {
	if code, ok := knownKinds[k]; ok {
		return code
	}
	return errors.CompositeErrorCode
}

// UnmarshalText accepts only known error kinds.
func (k *ErrorKind) UnmarshalText(text []byte) error {
	kind := ErrorKind(text)
	if _, ok := knownKinds[kind]; !ok {
		return fmt.Errorf(UnknownErrorKind, string(text))
	}
	*k = kind
	return nil
}

// kindSet is the typed allow-list of error kinds.
// An empty set means that every rule runs.
type kindSet map[ErrorKind]struct{}

func newKindSet(kinds ...ErrorKind) kindSet {
	if len(kinds) == 0 {
		return nil
	}
	set := make(kindSet, len(kinds))
	for _, k := range kinds {
		set[k] = struct{}{}
	}
	return set
}

func (s kindSet) has(k ErrorKind) bool {
	_, ok := s[k]
	return ok
}

// shouldSkip tells whether a rule raising the given kinds is filtered out
// by the allow-list of the options.
func shouldSkip(opts *Options, kinds ...ErrorKind) bool {
	if opts == nil || len(opts.includeErrors) == 0 {
		return false
	}
	for _, k := range kinds {
		if opts.includeErrors.has(k) {
			return false
		}
	}
	return true
}
