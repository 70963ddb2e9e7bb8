package embed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/rulesmith/ai"
)

// Generator produces concept→vector mappings with whichever encoder was
// selected at startup. It holds no state between calls.
type Generator struct {
	encoder ai.Encoder
	logger  *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger == nil {
			logger = slog.Default()
		}
		g.logger = logger
	}
}

// NewGenerator creates an embedding generator around the given encoder.
func NewGenerator(encoder ai.Encoder, opts ...Option) (*Generator, error) {
	if encoder == nil {
		return nil, ErrEncoderRequired
	}

	g := &Generator{
		encoder: encoder,
		logger:  slog.Default().With("component", "embed"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Generate encodes the full concept list in one batch and zips concepts
// to vectors 1:1. Repeated concepts collapse to the last occurrence.
// An empty concept list yields an empty, non-nil mapping.
func (g *Generator) Generate(ctx context.Context, concepts []string) (map[string][]float32, error) {
	mapping := make(map[string][]float32, len(concepts))
	if len(concepts) == 0 {
		g.logger.Info("no concepts provided, skipping embedding generation")
		return mapping, nil
	}

	if !g.encoder.Available() {
		g.logger.Info("no encoding model available, generating deterministic fallback embeddings",
			"concepts", len(concepts))
	} else {
		g.logger.Info("generating embeddings", "concepts", len(concepts))
	}

	vectors, err := g.encoder.Encode(ctx, concepts)
	if err != nil {
		g.logger.Error("error generating embeddings", "err", err)
		return nil, err
	}

	if len(vectors) != len(concepts) {
		return nil, fmt.Errorf("embedding result mismatch. expected %d, received %d", len(concepts), len(vectors))
	}

	for i, concept := range concepts {
		mapping[concept] = vectors[i]
	}

	return mapping, nil
}
