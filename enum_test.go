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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sizeEnum = `{"type": "string", "enum": ["Small", "Large"]}`

func TestCheckEnum(t *testing.T) {
	for _, tc := range []struct {
		name     string
		schema   string
		data     interface{}
		options  []Option
		kind     ErrorKind
		expected string
	}{
		{name: "exact match", schema: sizeEnum, data: "Large"},
		{name: "case mismatch", schema: sizeEnum, data: "small",
			kind: EnumCaseMismatch, expected: "Enum does not match case for: small"},
		{name: "no match", schema: sizeEnum, data: "Medium",
			kind: EnumMismatch, expected: "No enum match for: Medium"},
		{name: "null is not a member", schema: sizeEnum, data: nil,
			kind: EnumMismatch, expected: "No enum match for: null"},
		{name: "numbers match by value", schema: `{"enum": [1, 2]}`, data: 2},
		{name: "numbers", schema: `{"enum": [1, 2]}`, data: float64(3),
			kind: EnumMismatch, expected: "No enum match for: 3"},
		{name: "objects", schema: `{"enum": [{"a": 1}]}`, data: map[string]interface{}{"a": float64(1)}},
		{name: "extensible enum",
			schema: `{"type": "string", "enum": ["Small"], "x-ms-enum": {"modelAsString": true}}`, data: "Medium"},
		{name: "extensible enum, case mismatch",
			schema: `{"type": "string", "enum": ["Small"], "x-ms-enum": {"modelAsString": true}}`, data: "SMALL",
			kind: EnumCaseMismatch, expected: "Enum does not match case for: SMALL"},
		{name: "case mismatch not included", schema: sizeEnum, data: "small",
			options: []Option{WithIncludeErrors(EnumMismatch)},
			kind:    EnumMismatch, expected: "No enum match for: small"},
		{name: "enum mismatch not included", schema: sizeEnum, data: "Medium",
			options: []Option{WithIncludeErrors(EnumCaseMismatch)}},
		{name: "enum not included", schema: sizeEnum, data: "small",
			options: []Option{WithIncludeErrors(InvalidType)}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			v := newTestValidation(nil, tc.options...)
			rep := NewReport()
			v.checkEnum(rep, mustSchema(t, tc.schema), tc.data)

			if tc.kind == "" {
				assert.True(t, rep.IsValid())
				return
			}
			require.Len(t, rep.Errors, 1)
			assert.Equal(t, tc.kind, rep.Errors[0].Kind)
			assert.Equal(t, tc.expected, rep.Errors[0].Message)
		})
	}
}
