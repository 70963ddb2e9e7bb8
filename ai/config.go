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


package ai

import (
	"errors"
	"strings"
)

// Config holds configuration for the encoding service.
type Config struct {
	// EncoderHost is the base URL for the embedding service API.
	// Example: "http://localhost:11434/v1" for local OpenAI-compatible server
	EncoderHost string

	// EncoderModel is the model identifier to use for text embeddings.
	// Example: "all-minilm", "text-embedding-3-small"
	EncoderModel string
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithEncoderHost sets the embedding service host URL.
func WithEncoderHost(host string) ConfigOption {
	return func(c *Config) {
		c.EncoderHost = host
	}
}

// WithEncoderModel sets the embedding model identifier.
func WithEncoderModel(model string) ConfigOption {
	return func(c *Config) {
		c.EncoderModel = model
	}
}

// DefaultConfig returns a Config with sensible defaults for local
// OpenAI-compatible services.
func DefaultConfig() *Config {
	return &Config{
		EncoderHost:  "http://localhost:11434/v1",
		EncoderModel: "all-minilm",
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It automatically adds the /v1 suffix to the host if missing, which is
// required by most OpenAI-compatible APIs (Ollama, LocalAI, vLLM, etc).
func (c *Config) Normalize() {
	if c.EncoderHost != "" && !strings.HasSuffix(c.EncoderHost, "/v1") {
		c.EncoderHost = strings.TrimSuffix(c.EncoderHost, "/")
		c.EncoderHost = c.EncoderHost + "/v1"
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.EncoderHost == "" {
		return errors.New("ai config: EncoderHost is required")
	}
	if c.EncoderModel == "" {
		return errors.New("ai config: EncoderModel is required")
	}
	return nil
}
