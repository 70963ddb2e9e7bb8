package rulesmith

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/rulesmith/ai"
	"github.com/poiesic/rulesmith/config"
	"github.com/poiesic/rulesmith/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTask(t *testing.T) {
	for _, name := range []string{"embeddings", "rules", "both"} {
		task, err := ParseTask(name)
		require.NoError(t, err)
		assert.Equal(t, Task(name), task)
	}

	task, err := ParseTask("")
	require.NoError(t, err)
	assert.Equal(t, TaskBoth, task)

	_, err = ParseTask("everything")
	assert.ErrorIs(t, err, ErrUnknownTask)
}

func newTestTrainer(t *testing.T) *Trainer {
	t.Helper()
	trainer, err := NewTrainer(nil, WithEncoder(ai.NewNullEncoder(0, 0)))
	require.NoError(t, err)
	return trainer
}

func TestTrainer_RunBoth(t *testing.T) {
	trainer := newTestTrainer(t)
	outputDir := t.TempDir()

	summary, err := trainer.Run(context.Background(), RunRequest{
		Task:      TaskBoth,
		OutputDir: outputDir,
	})
	require.NoError(t, err)

	assert.Equal(t, TaskBoth, summary.Task)
	assert.Equal(t, 8, summary.ConceptCount)
	assert.Equal(t, 384, summary.Dimension)
	assert.Equal(t, 4, summary.ExampleCount)
	assert.True(t, summary.Capabilities.Degraded())

	// Every default pattern occurs once in four examples, scoring 0.375,
	// below the 0.7 threshold: the rules artifact is an empty array.
	assert.Equal(t, 0, summary.RuleCount)

	rulesData, err := os.ReadFile(summary.RulesPath)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(rulesData))

	embeddingsData, err := os.ReadFile(summary.EmbeddingsPath)
	require.NoError(t, err)
	assert.Contains(t, string(embeddingsData), "\"neural network\"")
}

func TestTrainer_RunRulesOnly(t *testing.T) {
	trainer := newTestTrainer(t)
	outputDir := t.TempDir()

	examplesPath := filepath.Join(t.TempDir(), "examples.json")
	examples := `[
		{"premise": ["if", "rain"], "conclusion": ["wet"]},
		{"premise": ["rain", "if"], "conclusion": ["wet"]},
		{"premise": ["if", "rain"], "conclusion": ["wet"]},
		{"premise": ["if", "snow"], "conclusion": ["cold"]}
	]`
	require.NoError(t, os.WriteFile(examplesPath, []byte(examples), 0644))

	summary, err := trainer.Run(context.Background(), RunRequest{
		Task:         TaskRules,
		ExamplesPath: examplesPath,
		OutputDir:    outputDir,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, summary.ExampleCount)
	assert.Equal(t, 1, summary.RuleCount)
	assert.Empty(t, summary.EmbeddingsPath)
	assert.Zero(t, summary.ConceptCount)

	_, err = os.Stat(filepath.Join(outputDir, "embeddings.json"))
	assert.True(t, os.IsNotExist(err))

	rulesData, err := os.ReadFile(summary.RulesPath)
	require.NoError(t, err)
	assert.Contains(t, string(rulesData), "learned_rule_0")
	assert.Contains(t, string(rulesData), "inductive")
}

func TestTrainer_RunEmbeddingsOnly(t *testing.T) {
	trainer := newTestTrainer(t)
	outputDir := t.TempDir()

	conceptsPath := filepath.Join(t.TempDir(), "concepts.json")
	require.NoError(t, os.WriteFile(conceptsPath, []byte(`["gravity", "mass"]`), 0644))

	summary, err := trainer.Run(context.Background(), RunRequest{
		Task:         TaskEmbeddings,
		ConceptsPath: conceptsPath,
		OutputDir:    outputDir,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.ConceptCount)
	assert.Zero(t, summary.ExampleCount)
	assert.Empty(t, summary.RulesPath)

	_, err = os.Stat(filepath.Join(outputDir, "learned_rules.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestTrainer_RunMissingInputFile(t *testing.T) {
	trainer := newTestTrainer(t)

	_, err := trainer.Run(context.Background(), RunRequest{
		Task:         TaskEmbeddings,
		ConceptsPath: filepath.Join(t.TempDir(), "missing.json"),
		OutputDir:    t.TempDir(),
	})
	assert.Error(t, err)
}

func TestTrainer_FallbackRunsAreReproducible(t *testing.T) {
	trainer := newTestTrainer(t)
	ctx := context.Background()

	first, err := trainer.Run(ctx, RunRequest{Task: TaskEmbeddings, OutputDir: t.TempDir()})
	require.NoError(t, err)
	second, err := trainer.Run(ctx, RunRequest{Task: TaskEmbeddings, OutputDir: t.TempDir()})
	require.NoError(t, err)

	firstData, err := os.ReadFile(first.EmbeddingsPath)
	require.NoError(t, err)
	secondData, err := os.ReadFile(second.EmbeddingsPath)
	require.NoError(t, err)
	assert.Equal(t, firstData, secondData)
}

func TestTrainer_ArchivesRuns(t *testing.T) {
	archive, backend, err := badger.NewMemoryRunRepository()
	require.NoError(t, err)
	defer func() {
		archive.Close()
		backend.Close()
	}()

	trainer, err := NewTrainer(nil,
		WithEncoder(ai.NewNullEncoder(0, 0)),
		WithArchive(archive),
	)
	require.NoError(t, err)

	ctx := context.Background()
	summary, err := trainer.Run(ctx, RunRequest{Task: TaskBoth, OutputDir: t.TempDir()})
	require.NoError(t, err)
	require.NotEmpty(t, summary.RunId)

	run, err := archive.GetRun(ctx, summary.RunId)
	require.NoError(t, err)
	assert.Equal(t, "both", run.Task)
	assert.Equal(t, summary.ConceptCount, run.ConceptCount)
	assert.Equal(t, summary.ExampleCount, run.ExampleCount)
	assert.False(t, run.EncoderAvailable)
	assert.NotZero(t, run.InputsId)
}

func TestNewTrainer_DefaultConfig(t *testing.T) {
	trainer, err := NewTrainer(nil, WithEncoder(ai.NewNullEncoder(0, 0)))
	require.NoError(t, err)
	assert.Equal(t, config.Default().Rules.MinConfidence, trainer.cfg.Rules.MinConfidence)
	assert.False(t, trainer.Capabilities().TrainingAvailable)
	assert.NoError(t, trainer.Close())
}

func TestInputsFingerprint_Distinguishes(t *testing.T) {
	a := inputsFingerprint([]string{"ab", "c"}, nil)
	b := inputsFingerprint([]string{"a", "bc"}, nil)
	assert.NotEqual(t, a, b)

	c := inputsFingerprint(DefaultConcepts(), DefaultExamples())
	d := inputsFingerprint(DefaultConcepts(), DefaultExamples())
	assert.Equal(t, c, d)
}
