package storage

import (
	"context"

	"github.com/poiesic/rulesmith/core"
)

// RunRepository provides operations for the training-run archive.
// Implementations must be thread-safe and support concurrent access.
type RunRepository interface {
	// AddRun archives a training run together with the rules it produced.
	// Assigns a ULID Id and CreatedAt timestamp if not already set.
	// Returns the run with those fields populated.
	AddRun(ctx context.Context, run *core.TrainingRun, rules []core.Rule) (*core.TrainingRun, error)

	// GetRun retrieves a single archived run by Id.
	// Returns ErrNotFound if the run doesn't exist.
	GetRun(ctx context.Context, id string) (*core.TrainingRun, error)

	// GetRunRules retrieves the rules archived with a run, in the order
	// they were produced by the induction pipeline.
	// Returns ErrNotFound if the run doesn't exist.
	GetRunRules(ctx context.Context, id string) ([]core.Rule, error)

	// ListRuns retrieves archived runs, most recent first.
	// Returns up to limit runs; limit <= 0 means no limit.
	ListRuns(ctx context.Context, limit int) ([]*core.TrainingRun, error)

	// Close closes the storage backend and releases resources.
	Close() error
}
