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
	"github.com/go-openapi/spec"
)

// customValidate runs the per-node conformance checks.
//
// All checks run, whatever the outcome of the previous ones.
func (v *validation) customValidate(rep *Report, schema *spec.Schema, data interface{}) {
	v.checkWriteOnlyInResponse(rep, schema, data)
	v.checkSecretInResponse(rep, schema, data)
	v.checkReadOnlyInRequest(rep, schema, data)
	v.checkGlobalParameter(rep, schema, data)
}
