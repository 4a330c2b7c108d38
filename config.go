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
	"bytes"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the file representation of validation options.
//
// Example:
//
//	direction: response
//	includeErrors:
//	  - SECRET_PROPERTY
//	  - WRITEONLY_PROPERTY_NOT_ALLOWED_IN_RESPONSE
//	customValidator: true
type Config struct {
	Direction       Direction   `yaml:"direction"`
	IncludeErrors   []ErrorKind `yaml:"includeErrors"`
	CustomValidator *bool       `yaml:"customValidator"`
}

// ParseConfig decodes a YAML configuration. Unknown fields, directions and error kinds are rejected.
func ParseConfig(data []byte) (*Config, error) {
	cfg := new(Config)
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig reads a YAML configuration file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, invalidConfigMsg(path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, invalidConfigMsg(path, err)
	}
	debugLog("loaded validation config %s: direction=%v, includeErrors=%v", path, cfg.Direction, cfg.IncludeErrors)
	return cfg, nil
}

// Options returns the options set by this configuration
func (c *Config) Options() []Option {
	if c == nil {
		return nil
	}
	options := []Option{
		WithDirection(c.Direction),
		WithIncludeErrors(c.IncludeErrors...),
	}
	if c.CustomValidator != nil {
		options = append(options, WithCustomValidator(*c.CustomValidator))
	}
	return options
}
