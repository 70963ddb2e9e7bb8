package embed

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/rulesmith/ai"
	"github.com/poiesic/rulesmith/ai/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenerator(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		gen, err := NewGenerator(mock.NewMockEncoder())
		require.NoError(t, err)
		assert.NotNil(t, gen)
	})

	t.Run("nil encoder", func(t *testing.T) {
		_, err := NewGenerator(nil)
		assert.Equal(t, ErrEncoderRequired, err)
	})

	t.Run("nil logger falls back to default", func(t *testing.T) {
		gen, err := NewGenerator(mock.NewMockEncoder(), WithLogger(nil))
		require.NoError(t, err)
		assert.NotNil(t, gen)
	})
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("batches the full concept list once", func(t *testing.T) {
		encoder := mock.NewMockEncoder()
		gen, err := NewGenerator(encoder)
		require.NoError(t, err)

		concepts := []string{"neural network", "tensor", "reasoning"}
		mapping, err := gen.Generate(ctx, concepts)
		require.NoError(t, err)

		assert.Len(t, mapping, 3)
		assert.Equal(t, 1, encoder.CallCount())
		for _, concept := range concepts {
			assert.NotEmpty(t, mapping[concept])
		}
	})

	t.Run("dimensional consistency", func(t *testing.T) {
		gen, err := NewGenerator(mock.NewMockEncoder())
		require.NoError(t, err)

		mapping, err := gen.Generate(ctx, []string{"a", "b", "c", "d"})
		require.NoError(t, err)

		var dim int
		for _, vector := range mapping {
			if dim == 0 {
				dim = len(vector)
			}
			assert.Len(t, vector, dim)
		}
	})

	t.Run("duplicate concepts collapse, last wins", func(t *testing.T) {
		encoder := mock.NewMockEncoder()
		encoder.EncodeFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			vectors := make([][]float32, len(texts))
			for i := range texts {
				vectors[i] = []float32{float32(i)}
			}
			return vectors, nil
		}

		gen, err := NewGenerator(encoder)
		require.NoError(t, err)

		mapping, err := gen.Generate(ctx, []string{"dup", "other", "dup"})
		require.NoError(t, err)

		assert.Len(t, mapping, 2)
		assert.Equal(t, []float32{2}, mapping["dup"])
	})

	t.Run("empty concept list", func(t *testing.T) {
		encoder := mock.NewMockEncoder()
		gen, err := NewGenerator(encoder)
		require.NoError(t, err)

		mapping, err := gen.Generate(ctx, nil)
		require.NoError(t, err)

		assert.NotNil(t, mapping)
		assert.Empty(t, mapping)
		assert.Equal(t, 0, encoder.CallCount())
	})

	t.Run("encoder failure propagates", func(t *testing.T) {
		encoder := mock.NewMockEncoder()
		encoder.EncodeFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			return nil, errors.New("encode failed")
		}

		gen, err := NewGenerator(encoder)
		require.NoError(t, err)

		_, err = gen.Generate(ctx, []string{"a"})
		assert.Error(t, err)
	})

	t.Run("result count mismatch", func(t *testing.T) {
		encoder := mock.NewMockEncoder()
		encoder.EncodeFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			return [][]float32{{1}}, nil
		}

		gen, err := NewGenerator(encoder)
		require.NoError(t, err)

		_, err = gen.Generate(ctx, []string{"a", "b"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mismatch")
	})
}

func TestGenerate_FallbackDeterminism(t *testing.T) {
	ctx := context.Background()
	concepts := []string{"neural network", "symbolic logic", "tensor"}

	run := func() map[string][]float32 {
		gen, err := NewGenerator(ai.NewNullEncoder(ai.DefaultDimension, ai.DefaultSeed))
		require.NoError(t, err)
		mapping, err := gen.Generate(ctx, concepts)
		require.NoError(t, err)
		return mapping
	}

	assert.Equal(t, run(), run())
}
