/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package demo

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/mitchellh/mapstructure"

	"dirpx.dev/ffx/api/common"
)

// SinkConfig names a sink implementation and carries its raw settings.
type SinkConfig struct {
	Type string         `json:"type"`
	Conf map[string]any `json:"conf"`
}

// TypeID parses the configured type name into a registry identifier.
// Surrounding whitespace is tolerated; an empty type is a configuration
// error.
func (sc SinkConfig) TypeID() (common.TypeID, error) {
	return common.ParseTypeID(sc.Type)
}

// EmitConfig controls the record stream the demo produces.
type EmitConfig struct {
	Count      int `json:"count"`
	IntervalMS int `json:"intervalMs"`
}

// Config is the demo application configuration.
type Config struct {
	Source string       `json:"source"`
	Emit   EmitConfig   `json:"emit"`
	Sinks  []SinkConfig `json:"sinks"`
}

// SetDefaults fills unset fields with usable values.
func (c *Config) SetDefaults() {
	if c.Source == "" {
		c.Source = "ffx-demo"
	}
	if c.Emit.Count <= 0 {
		c.Emit.Count = 5
	}
	if c.Emit.IntervalMS <= 0 {
		c.Emit.IntervalMS = 200
	}
}

// Validate rejects configurations the application cannot run with.
func (c *Config) Validate() error {
	if len(c.Sinks) == 0 {
		return fmt.Errorf("no sinks configured")
	}
	for i, sc := range c.Sinks {
		if _, err := sc.TypeID(); err != nil {
			return fmt.Errorf("sink %d: %w", i, err)
		}
	}
	return nil
}

// Load reads the configuration at path, applies FFX_-prefixed environment
// overrides, and validates the result.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("FFX_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "ffx_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Decode fills out the provided settings struct using json tags.
func Decode(data map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{TagName: "json", Result: out})
	if err != nil {
		return err
	}
	return dec.Decode(data)
}
