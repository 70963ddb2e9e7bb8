package badger

import (
	"context"
	"crypto/rand"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/oklog/ulid/v2"
	"github.com/poiesic/rulesmith/core"
	"github.com/poiesic/rulesmith/storage"
)

// RunRepository implements storage.RunRepository for BadgerDB.
type RunRepository struct {
	backend *Backend

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

var _ storage.RunRepository = (*RunRepository)(nil)

// NewRunRepository creates a new RunRepository.
func NewRunRepository(backend *Backend) (*RunRepository, error) {
	return &RunRepository{
		backend: backend,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}, nil
}

// Close releases resources. RunRepository has no resources to release.
func (r *RunRepository) Close() error {
	return nil
}

// AddRun archives a training run together with the rules it produced.
func (r *RunRepository) AddRun(ctx context.Context, run *core.TrainingRun, rules []core.Rule) (*core.TrainingRun, error) {
	if err := core.ValidateTrainingRun(run); err != nil {
		return nil, err
	}
	for i := range rules {
		if err := core.ValidateRule(&rules[i]); err != nil {
			return nil, err
		}
	}

	if run.Id == "" {
		run.Id = r.newRunID()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeRunKey(run.Id)
		if err := tx.Set(key, storage.MarshalTrainingRun(run)); err != nil {
			return err
		}

		for i := range rules {
			ruleKey := makeRunRuleKey(run.Id, i)
			if err := tx.Set(ruleKey, storage.MarshalRule(&rules[i])); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return run, err
}

// GetRun retrieves a single archived run by Id.
func (r *RunRepository) GetRun(ctx context.Context, id string) (*core.TrainingRun, error) {
	var result *core.TrainingRun
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readRun(tx, makeRunKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetRunRules retrieves the rules archived with a run, preserving the
// order the induction pipeline produced them in.
func (r *RunRepository) GetRunRules(ctx context.Context, id string) ([]core.Rule, error) {
	var rules []core.Rule
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		run, err := readRun(tx, makeRunKey(id))
		if err != nil {
			return err
		}
		if run == nil {
			return storage.ErrNotFound
		}

		rules = make([]core.Rule, 0, run.RuleCount)
		prefix := makePartialRunRuleKey(id)

		it := tx.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				rule, err := storage.UnmarshalRule(val)
				if err != nil {
					return err
				}
				rules = append(rules, *rule)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	return rules, err
}

// ListRuns retrieves archived runs, most recent first.
func (r *RunRepository) ListRuns(ctx context.Context, limit int) ([]*core.TrainingRun, error) {
	var runs []*core.TrainingRun
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		prefix := []byte(runRecordPrefix + ":")

		it := tx.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				run, err := storage.UnmarshalTrainingRun(val)
				if err != nil {
					return err
				}
				runs = append(runs, run)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	// ULID keys iterate oldest-first; reverse for most recent first.
	for i, j := 0, len(runs)-1; i < j; i, j = i+1, j-1 {
		runs[i], runs[j] = runs[j], runs[i]
	}
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

// readRun reads a run by key, returning nil if it doesn't exist.
func readRun(tx *badger.Txn, key []byte) (*core.TrainingRun, error) {
	item, err := tx.Get(key)
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var run *core.TrainingRun
	err = item.Value(func(val []byte) error {
		run, err = storage.UnmarshalTrainingRun(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return run, nil
}

// newRunID generates a ULID. Monotonic entropy is not safe for
// concurrent use, so generation is serialized.
func (r *RunRepository) newRunID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return ulid.MustNew(ulid.Now(), r.entropy).String()
}
