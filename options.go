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
	"sort"
	"strings"
)

// Direction tells whether the payload under validation is sent to or returned by a service.
type Direction uint8

const (
	// Request is the direction of a payload sent by a client
	Request Direction = iota
	// Response is the direction of a payload returned by a service
	Response
)

func (d Direction) String() string {
	if d == Response {
		return "response"
	}
	return "request"
}

// UnmarshalText reads a direction from "request" or "response" (case insensitive).
func (d *Direction) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "request":
		*d = Request
	case "response":
		*d = Response
	default:
		return fmt.Errorf(UnknownDirection, string(text))
	}
	return nil
}

// MarshalText renders the direction as text.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Options defines optional rules for validating payloads
type Options struct {
	// Direction of the payload. Rules on mutability, secrets and read-only
	// properties behave differently for requests and responses.
	Direction Direction

	// DisableCustomValidator turns off the per-node composite checks
	// (write-only, secret, read-only by mutability, global parameters).
	DisableCustomValidator bool

	// includeErrors restricts the rules that run to those raising one of these kinds
	includeErrors kindSet
}

// Option sets optional validation behavior
type Option func(*Options)

// WithDirection sets the direction of the validated payload
func WithDirection(d Direction) Option {
	return func(o *Options) {
		o.Direction = d
	}
}

// WithIncludeErrors restricts validation to the rules raising at least one of the given kinds.
//
// Calling it without kinds restores the default: all rules run.
func WithIncludeErrors(kinds ...ErrorKind) Option {
	return func(o *Options) {
		o.includeErrors = newKindSet(kinds...)
	}
}

// WithCustomValidator enables or disables the composite per-node checks (enabled by default)
func WithCustomValidator(enable bool) Option {
	return func(o *Options) {
		o.DisableCustomValidator = !enable
	}
}

// IncludeErrors returns the sorted allow-list of error kinds
func (o Options) IncludeErrors() []ErrorKind {
	if len(o.includeErrors) == 0 {
		return nil
	}
	kinds := make([]ErrorKind, 0, len(o.includeErrors))
	for k := range o.includeErrors {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Options returns the current options as a slice of setters
func (o Options) Options() []Option {
	return []Option{
		WithDirection(o.Direction),
		WithCustomValidator(!o.DisableCustomValidator),
		WithIncludeErrors(o.IncludeErrors()...),
	}
}

func newOptions(setters ...Option) Options {
	var o Options
	for _, apply := range setters {
		apply(&o)
	}
	return o
}
