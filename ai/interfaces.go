package ai

import "context"

// Encoder maps batches of text to dense vectors.
// Implementations must be thread-safe for concurrent use.
type Encoder interface {
	// Available reports whether a real encoding model backs this encoder.
	// The fallback encoder returns false; its vectors are synthetic.
	Available() bool

	// Encode generates one vector per input text, preserving input order.
	// All returned vectors share the same dimensionality.
	// Returns an error if vector generation fails.
	Encode(ctx context.Context, texts []string) ([][]float32, error)
}

// TrainingBackend is the gradient-capable numeric backend that
// fine-tuning requires. It is declared so callers can check for it, but
// no training-capable implementation ships in this build.
type TrainingBackend interface {
	// Available reports whether the backend can run training.
	Available() bool

	// Name identifies the backend for capability reports.
	Name() string
}
