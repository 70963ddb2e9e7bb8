package artifact

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/poiesic/rulesmith/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConcepts(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "concepts.json")
		require.NoError(t, os.WriteFile(path, []byte(`["tensor", "reasoning"]`), 0644))

		concepts, err := LoadConcepts(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"tensor", "reasoning"}, concepts)
	})

	t.Run("empty array", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "concepts.json")
		require.NoError(t, os.WriteFile(path, []byte(`[]`), 0644))

		concepts, err := LoadConcepts(path)
		require.NoError(t, err)
		assert.Empty(t, concepts)
	})

	t.Run("missing file is fatal", func(t *testing.T) {
		_, err := LoadConcepts(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})

	t.Run("malformed JSON is fatal", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "concepts.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"not": "an array"}`), 0644))

		_, err := LoadConcepts(path)
		assert.Error(t, err)
	})
}

func TestLoadExamples(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "examples.json")
		content := `[
  {"premise": ["if", "rain"], "conclusion": ["wet"]},
  {"conclusion": ["cold"]}
]`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		examples, err := LoadExamples(path)
		require.NoError(t, err)
		require.Len(t, examples, 2)
		assert.Equal(t, []string{"if", "rain"}, examples[0].Premise)
		// Missing key decodes to nil, handled as an empty set downstream.
		assert.Nil(t, examples[1].Premise)
		assert.Equal(t, []string{"cold"}, examples[1].Conclusion)
	})

	t.Run("missing file is fatal", func(t *testing.T) {
		_, err := LoadExamples(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})
}

func TestWriteEmbeddings(t *testing.T) {
	t.Run("roundtrip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "embeddings.json")
		mapping := map[string][]float32{
			"tensor":    {0.1, 0.2},
			"reasoning": {0.3, 0.4},
		}

		require.NoError(t, WriteEmbeddings(path, mapping))

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var decoded map[string][]float32
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, mapping, decoded)

		// Pretty-printed with 2-space indent.
		assert.True(t, strings.HasPrefix(string(data), "{\n  \""))
	})

	t.Run("nil mapping writes empty object", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "embeddings.json")
		require.NoError(t, WriteEmbeddings(path, nil))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "{}\n", string(data))
	})
}

func TestWriteRules(t *testing.T) {
	t.Run("roundtrip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "learned_rules.json")
		rules := []core.Rule{
			{
				Id:         "learned_rule_0",
				Premise:    []string{"if", "rain"},
				Conclusion: []string{"wet"},
				Confidence: 1.0,
				Weight:     0.6666666666666666,
				Type:       core.RuleTypeInductive,
			},
		}

		require.NoError(t, WriteRules(path, rules))

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var decoded []core.Rule
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, rules, decoded)
	})

	t.Run("empty rule list writes empty array", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "learned_rules.json")
		require.NoError(t, WriteRules(path, nil))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[]\n", string(data))
	})

	t.Run("unwritable path is fatal", func(t *testing.T) {
		err := WriteRules(filepath.Join(t.TempDir(), "missing", "rules.json"), nil)
		assert.Error(t, err)
	})
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "models", "nested")
	require.NoError(t, EnsureDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent on an existing directory.
	assert.NoError(t, EnsureDir(dir))
}
