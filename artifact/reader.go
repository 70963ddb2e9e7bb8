package artifact

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/poiesic/rulesmith/core"
)

// LoadConcepts reads a JSON array of concept strings.
func LoadConcepts(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read concepts file: %w", err)
	}

	var concepts []string
	if err := json.Unmarshal(data, &concepts); err != nil {
		return nil, fmt.Errorf("parse concepts file %s: %w", path, err)
	}
	return concepts, nil
}

// LoadExamples reads a JSON array of premise/conclusion example objects.
// Missing premise or conclusion keys decode as nil and are handled
// downstream as empty sets.
func LoadExamples(path string) ([]core.Example, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read examples file: %w", err)
	}

	var examples []core.Example
	if err := json.Unmarshal(data, &examples); err != nil {
		return nil, fmt.Errorf("parse examples file %s: %w", path, err)
	}
	return examples, nil
}
