package rulesmith

import "errors"

var (
	// ErrUnknownTask indicates a task name outside embeddings/rules/both.
	ErrUnknownTask = errors.New("unknown training task")
)
