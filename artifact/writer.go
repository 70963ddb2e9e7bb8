package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/poiesic/rulesmith/core"
)

// Default artifact file names inside the output directory.
const (
	EmbeddingsFile = "embeddings.json"
	RulesFile      = "learned_rules.json"
)

// EnsureDir creates the output directory if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory %s: %w", dir, err)
	}
	return nil
}

// WriteEmbeddings persists a concept→vector mapping as a pretty-printed
// JSON object. An empty mapping writes "{}".
func WriteEmbeddings(path string, embeddings map[string][]float32) error {
	if embeddings == nil {
		embeddings = map[string][]float32{}
	}
	return writeJSON(path, embeddings)
}

// WriteRules persists learned rules as a pretty-printed JSON array.
// An empty rule list writes "[]", never "null".
func WriteRules(path string, rules []core.Rule) error {
	if rules == nil {
		rules = []core.Rule{}
	}
	return writeJSON(path, rules)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
