package openai

import (
	"context"
	"log/slog"

	"github.com/poiesic/rulesmith/ai"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
)

// Encoder implements ai.Encoder using OpenAI-compatible embedding APIs.
type Encoder struct {
	embedder embeddings.Embedder
	logger   *slog.Logger
}

var _ ai.Encoder = (*Encoder)(nil)

// newEncoder is an internal constructor that returns the concrete type.
func newEncoder(config *ai.Config) (*Encoder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Create OpenAI client configured for embeddings
	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.EncoderHost),
		openai.WithToken("none"),
		openai.WithEmbeddingModel(config.EncoderModel),
	)
	if err != nil {
		return nil, err
	}

	// Wrap in langchaingo embedder
	embedder, err := embeddings.NewEmbedder(client, embeddings.WithStripNewLines(true))
	if err != nil {
		return nil, err
	}

	return &Encoder{
		embedder: embedder,
		logger:   slog.Default().With("component", "openai-encoder"),
	}, nil
}

// NewEncoder creates a new encoder using the provided configuration.
//
// Returns ai.Encoder interface to enforce abstraction.
func NewEncoder(config *ai.Config) (ai.Encoder, error) {
	return newEncoder(config)
}

// Available reports that a real encoding model backs this encoder.
func (e *Encoder) Available() bool {
	return true
}

// Encode generates vector embeddings for a batch of texts.
func (e *Encoder) Encode(ctx context.Context, texts []string) ([][]float32, error) {
	e.logger.Debug("generating embeddings for texts", "count", len(texts))

	vectors, err := e.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		e.logger.Error("failed to generate embeddings", "count", len(texts), "err", err)
		return nil, err
	}

	return vectors, nil
}
