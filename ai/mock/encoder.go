package mock

import (
	"context"
	"hash/fnv"
)

// MockEncoder is a test double for ai.Encoder.
// It allows custom behavior injection via function fields.
type MockEncoder struct {
	// EncodeFunc is called by Encode if set.
	// If nil, uses default deterministic behavior.
	EncodeFunc func(ctx context.Context, texts []string) ([][]float32, error)

	// Availability overrides the reported availability. Defaults to true
	// so tests exercise the real-encoder path unless stated otherwise.
	Availability *bool

	callCount int
}

// NewMockEncoder creates a mock encoder with default deterministic behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockEncoder() *MockEncoder {
	return &MockEncoder{}
}

// Available reports the configured availability, defaulting to true.
func (m *MockEncoder) Available() bool {
	if m.Availability != nil {
		return *m.Availability
	}
	return true
}

// Encode generates deterministic embeddings for multiple texts.
func (m *MockEncoder) Encode(ctx context.Context, texts []string) ([][]float32, error) {
	m.callCount++

	if m.EncodeFunc != nil {
		return m.EncodeFunc(ctx, texts)
	}

	// Default: generate deterministic vectors for each text
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = generateDeterministicVector(text, 384)
	}
	return vectors, nil
}

// CallCount returns the number of times Encode was called.
func (m *MockEncoder) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockEncoder) Reset() {
	m.callCount = 0
	m.EncodeFunc = nil
	m.Availability = nil
}

// generateDeterministicVector creates a deterministic embedding vector from text.
// It uses FNV hash to ensure the same text always produces the same vector.
func generateDeterministicVector(text string, dim int) []float32 {
	h := fnv.New32a()
	h.Write([]byte(text))
	seed := h.Sum32()

	vector := make([]float32, dim)
	for i := 0; i < dim; i++ {
		// Simple pseudo-random generation based on seed and index
		seed = seed*1664525 + 1013904223 // LCG constants
		vector[i] = float32(seed%1000) / 1000.0
	}
	return vector
}
