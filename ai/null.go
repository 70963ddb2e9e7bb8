package ai

import (
	"context"
	"math/rand"
)

// Defaults for the fallback encoder. The seed is fixed so repeated
// fallback runs over the same concept list are bit-for-bit identical.
const (
	DefaultDimension = 384
	DefaultSeed      = 42
)

// NullEncoder is the fallback Encoder used when no real encoding service
// is available. It draws vectors from a seeded normal distribution, so
// the output is deterministic for a given seed, dimension and input
// order. The vectors carry no semantic signal.
type NullEncoder struct {
	dimension int
	seed      int64
}

var _ Encoder = (*NullEncoder)(nil)

// NewNullEncoder creates a fallback encoder with the given vector
// dimensionality and seed. Non-positive values fall back to
// DefaultDimension and DefaultSeed.
func NewNullEncoder(dimension int, seed int64) *NullEncoder {
	if dimension <= 0 {
		dimension = DefaultDimension
	}
	if seed <= 0 {
		seed = DefaultSeed
	}
	return &NullEncoder{
		dimension: dimension,
		seed:      seed,
	}
}

// Available always returns false: the vectors are synthetic.
func (e *NullEncoder) Available() bool {
	return false
}

// Dimension returns the dimensionality of generated vectors.
func (e *NullEncoder) Dimension() int {
	return e.dimension
}

// Encode generates one pseudo-random vector per input text. The
// generator is reseeded on every call, so two calls with equally sized
// inputs produce identical vector sequences.
func (e *NullEncoder) Encode(ctx context.Context, texts []string) ([][]float32, error) {
	rng := rand.New(rand.NewSource(e.seed))

	vectors := make([][]float32, len(texts))
	for i := range texts {
		vector := make([]float32, e.dimension)
		for j := range vector {
			vector[j] = float32(rng.NormFloat64())
		}
		vectors[i] = vector
	}
	return vectors, nil
}

// NullTrainingBackend is the absent training backend. Fine-tuning
// requires a gradient-capable numeric backend that this build does not
// ship, so availability checks against it always fail.
type NullTrainingBackend struct{}

var _ TrainingBackend = (*NullTrainingBackend)(nil)

// Available always returns false.
func (NullTrainingBackend) Available() bool {
	return false
}

// Name identifies the backend slot for capability reports.
func (NullTrainingBackend) Name() string {
	return "none"
}
