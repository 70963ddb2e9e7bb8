// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package config loads the trainer's application configuration from an
// optional YAML file, filling every unset field with the pipelines'
// fixed defaults. The CLI deliberately exposes no
// flags for rule thresholds or embedding dimensionality; this file is
// the programmatic way to change them.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EncoderConfig configures the embedding service connection.
type EncoderConfig struct {
	Host  string `yaml:"host"`
	Model string `yaml:"model"`
}

// EmbeddingConfig configures the fallback embedding generator.
type EmbeddingConfig struct {
	Dimension int   `yaml:"dimension"`
	Seed      int64 `yaml:"seed"`
}

// RulesConfig configures rule selection thresholds.
type RulesConfig struct {
	MinConfidence float64 `yaml:"min_confidence"`
	MaxRules      int     `yaml:"max_rules"`
}

// ArchiveConfig configures the optional training-run archive.
// An empty path disables archiving.
type ArchiveConfig struct {
	Path string `yaml:"path"`
}

// Config is the root application configuration.
type Config struct {
	Encoder   EncoderConfig   `yaml:"encoder"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Rules     RulesConfig     `yaml:"rules"`
	Archive   ArchiveConfig   `yaml:"archive"`
}

// Default returns the fixed defaults: local OpenAI-compatible encoder,
// 384-dimensional seeded fallback, 0.7/10 rule selection.
func Default() *Config {
	return &Config{
		Encoder: EncoderConfig{
			Host:  "http://localhost:11434/v1",
			Model: "all-minilm",
		},
		Embedding: EmbeddingConfig{
			Dimension: 384,
			Seed:      42,
		},
		Rules: RulesConfig{
			MinConfidence: 0.7,
			MaxRules:      10,
		},
	}
}

// Load reads a config file and overlays it on the defaults. An empty
// path returns the defaults; a named file that cannot be read or parsed
// is a fatal error.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

// applyDefaults fills zero-valued fields so a partial config file keeps
// the fixed defaults for everything it does not mention. MinConfidence
// cannot be set to exactly zero from a file; use a small epsilon to
// effectively disable the threshold.
func applyDefaults(cfg *Config) {
	def := Default()

	if cfg.Encoder.Host == "" {
		cfg.Encoder.Host = def.Encoder.Host
	}
	if cfg.Encoder.Model == "" {
		cfg.Encoder.Model = def.Encoder.Model
	}
	if cfg.Embedding.Dimension <= 0 {
		cfg.Embedding.Dimension = def.Embedding.Dimension
	}
	if cfg.Embedding.Seed <= 0 {
		cfg.Embedding.Seed = def.Embedding.Seed
	}
	if cfg.Rules.MinConfidence <= 0 {
		cfg.Rules.MinConfidence = def.Rules.MinConfidence
	}
	if cfg.Rules.MaxRules <= 0 {
		cfg.Rules.MaxRules = def.Rules.MaxRules
	}
}
