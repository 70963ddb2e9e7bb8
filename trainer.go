// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package rulesmith assembles the offline training pipelines behind a
// single Trainer facade: capability-selected embedding generation and
// frequency-based rule induction, with JSON artifacts as the canonical
// output and an optional BadgerDB archive for run provenance.
package rulesmith

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/poiesic/rulesmith/ai"
	"github.com/poiesic/rulesmith/ai/openai"
	"github.com/poiesic/rulesmith/artifact"
	"github.com/poiesic/rulesmith/config"
	"github.com/poiesic/rulesmith/core"
	"github.com/poiesic/rulesmith/embed"
	"github.com/poiesic/rulesmith/induct"
	"github.com/poiesic/rulesmith/storage"
	"github.com/poiesic/rulesmith/storage/badger"
)

// Task selects which pipelines a training run executes.
type Task string

const (
	TaskEmbeddings Task = "embeddings"
	TaskRules      Task = "rules"
	TaskBoth       Task = "both"
)

// encoderProbeTimeout bounds the startup reachability check against the
// configured encoding service.
const encoderProbeTimeout = 5 * time.Second

// ParseTask parses a task name from the CLI.
func ParseTask(s string) (Task, error) {
	switch Task(s) {
	case TaskEmbeddings, TaskRules, TaskBoth:
		return Task(s), nil
	case "":
		return TaskBoth, nil
	}
	return "", fmt.Errorf("%w: %q (expected embeddings, rules or both)", ErrUnknownTask, s)
}

func (t Task) wantsEmbeddings() bool {
	return t == TaskEmbeddings || t == TaskBoth
}

func (t Task) wantsRules() bool {
	return t == TaskRules || t == TaskBoth
}

// Trainer wires config, the capability-selected encoder and the two
// pipelines together. Construct one per process; Run may be called
// multiple times.
type Trainer struct {
	cfg      *config.Config
	encoder  ai.Encoder
	training ai.TrainingBackend
	caps     ai.Capabilities
	archive  storage.RunRepository
	backend  *badger.Backend
	logger   *slog.Logger
}

// TrainerOption configures a Trainer.
type TrainerOption func(*Trainer)

// WithEncoder overrides encoder selection with a pre-built encoder.
func WithEncoder(encoder ai.Encoder) TrainerOption {
	return func(t *Trainer) {
		t.encoder = encoder
	}
}

// WithTrainingBackend overrides the training backend.
// Default is the absent NullTrainingBackend.
func WithTrainingBackend(backend ai.TrainingBackend) TrainerOption {
	return func(t *Trainer) {
		t.training = backend
	}
}

// WithArchive overrides the run archive. The Trainer does not close an
// archive supplied this way.
func WithArchive(archive storage.RunRepository) TrainerOption {
	return func(t *Trainer) {
		t.archive = archive
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) TrainerOption {
	return func(t *Trainer) {
		if logger == nil {
			logger = slog.Default()
		}
		t.logger = logger
	}
}

// NewTrainer creates a Trainer from the given configuration. A nil
// config uses the fixed defaults. The encoder is selected once here:
// the configured encoding service if it can be constructed, the seeded
// deterministic fallback otherwise. The capability report is logged a
// single time at this boundary.
func NewTrainer(cfg *config.Config, opts ...TrainerOption) (*Trainer, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	t := &Trainer{
		cfg:      cfg,
		training: ai.NullTrainingBackend{},
		logger:   slog.Default().With("component", "trainer"),
	}
	for _, opt := range opts {
		opt(t)
	}

	if t.encoder == nil {
		t.encoder = selectEncoder(cfg, t.logger)
	}

	if t.archive == nil && cfg.Archive.Path != "" {
		backend, err := badger.OpenBackend(cfg.Archive.Path, false)
		if err != nil {
			return nil, fmt.Errorf("open run archive: %w", err)
		}
		archive, err := badger.NewRunRepository(backend)
		if err != nil {
			backend.Close()
			return nil, fmt.Errorf("open run archive: %w", err)
		}
		t.backend = backend
		t.archive = archive
	}

	t.caps = ai.Report(t.encoder, t.training, cfg.Encoder.Model)
	t.logger.Info("capability report",
		"encoder_available", t.caps.EncoderAvailable,
		"encoder_model", t.caps.EncoderModel,
		"training_available", t.caps.TrainingAvailable)

	return t, nil
}

// selectEncoder builds the configured encoding service and probes it
// with a single embedding request, falling back to deterministic seeded
// vectors when the service cannot be reached. A service that passes the
// probe but fails mid-batch later is a run error, not a fallback.
func selectEncoder(cfg *config.Config, logger *slog.Logger) ai.Encoder {
	encoder, err := openai.NewEncoder(ai.NewConfig(
		ai.WithEncoderHost(cfg.Encoder.Host),
		ai.WithEncoderModel(cfg.Encoder.Model),
	))
	if err == nil {
		ctx, cancel := context.WithTimeout(context.Background(), encoderProbeTimeout)
		defer cancel()
		_, err = encoder.Encode(ctx, []string{"probe"})
	}
	if err != nil {
		logger.Info("no encoding service available, using deterministic fallback embeddings", "err", err)
		return ai.NewNullEncoder(cfg.Embedding.Dimension, cfg.Embedding.Seed)
	}
	return encoder
}

// Capabilities returns the availability report assembled at startup.
func (t *Trainer) Capabilities() ai.Capabilities {
	return t.caps
}

// Close releases the run archive if the Trainer opened it.
func (t *Trainer) Close() error {
	if t.backend == nil {
		return nil
	}
	if err := t.archive.Close(); err != nil {
		t.logger.Error("error closing run archive", "err", err)
	}
	return t.backend.Close()
}

// RunRequest describes one training invocation. Empty paths select the
// built-in default inputs; an empty OutputDir selects "./models".
type RunRequest struct {
	Task         Task
	ConceptsPath string
	ExamplesPath string
	OutputDir    string
}

// Summary reports what a run produced. The CLI prints it; the archive
// persists the equivalent TrainingRun record.
type Summary struct {
	Task           Task
	RunId          string
	OutputDir      string
	ConceptCount   int
	ExampleCount   int
	RuleCount      int
	Dimension      int
	EmbeddingsPath string
	RulesPath      string
	Capabilities   ai.Capabilities
}

// Run executes the requested pipelines and writes their artifacts.
// Input and output I/O failures are the only fatal errors; encoder
// absence was already resolved to the fallback at construction.
func (t *Trainer) Run(ctx context.Context, req RunRequest) (*Summary, error) {
	task, err := ParseTask(string(req.Task))
	if err != nil {
		return nil, err
	}

	outputDir := req.OutputDir
	if outputDir == "" {
		outputDir = "./models"
	}
	if err := artifact.EnsureDir(outputDir); err != nil {
		return nil, err
	}

	summary := &Summary{
		Task:         task,
		OutputDir:    outputDir,
		Capabilities: t.caps,
	}

	var concepts []string
	var examples []core.Example
	var rules []core.Rule

	if task.wantsEmbeddings() {
		concepts, err = t.loadConcepts(req.ConceptsPath)
		if err != nil {
			return nil, err
		}

		generator, err := embed.NewGenerator(t.encoder, embed.WithLogger(t.logger))
		if err != nil {
			return nil, err
		}
		mapping, err := generator.Generate(ctx, concepts)
		if err != nil {
			return nil, err
		}

		path := filepath.Join(outputDir, artifact.EmbeddingsFile)
		if err := artifact.WriteEmbeddings(path, mapping); err != nil {
			return nil, err
		}

		summary.ConceptCount = len(mapping)
		summary.EmbeddingsPath = path
		for _, vector := range mapping {
			summary.Dimension = len(vector)
			break
		}
		t.logger.Info("embeddings written", "concepts", len(mapping), "path", path)
	}

	if task.wantsRules() {
		examples, err = t.loadExamples(req.ExamplesPath)
		if err != nil {
			return nil, err
		}

		learner := induct.NewLearner(
			induct.WithMinConfidence(t.cfg.Rules.MinConfidence),
			induct.WithMaxRules(t.cfg.Rules.MaxRules),
			induct.WithLogger(t.logger),
		)
		rules = learner.Learn(examples)

		path := filepath.Join(outputDir, artifact.RulesFile)
		if err := artifact.WriteRules(path, rules); err != nil {
			return nil, err
		}

		summary.ExampleCount = len(examples)
		summary.RuleCount = len(rules)
		summary.RulesPath = path
		t.logger.Info("rules written", "rules", len(rules), "path", path)
	}

	if t.archive != nil {
		run := &core.TrainingRun{
			Task:             string(task),
			ConceptCount:     summary.ConceptCount,
			ExampleCount:     summary.ExampleCount,
			RuleCount:        summary.RuleCount,
			Dimension:        summary.Dimension,
			EncoderAvailable: t.caps.EncoderAvailable,
			EncoderModel:     t.caps.EncoderModel,
			InputsId:         inputsFingerprint(concepts, examples),
		}
		added, err := t.archive.AddRun(ctx, run, rules)
		if err != nil {
			return nil, fmt.Errorf("archive run: %w", err)
		}
		summary.RunId = added.Id
	}

	return summary, nil
}

// FineTune reports what domain-adaptive retraining would do with the
// selected encoder and training backend. See embed.FineTune.
func (t *Trainer) FineTune(ctx context.Context, req embed.FineTuneRequest) embed.FineTuneResult {
	return embed.FineTune(ctx, t.encoder, t.training, req, t.logger)
}

func (t *Trainer) loadConcepts(path string) ([]string, error) {
	if path == "" {
		t.logger.Info("no concepts file provided, using built-in defaults")
		return DefaultConcepts(), nil
	}
	return artifact.LoadConcepts(path)
}

func (t *Trainer) loadExamples(path string) ([]core.Example, error) {
	if path == "" {
		t.logger.Info("no examples file provided, using built-in defaults")
		return DefaultExamples(), nil
	}
	return artifact.LoadExamples(path)
}

// inputsFingerprint hashes the run inputs so archived runs can be
// compared for identical input sets. Unit and record separators keep
// list boundaries unambiguous.
func inputsFingerprint(concepts []string, examples []core.Example) core.ID {
	var sb strings.Builder
	for _, concept := range concepts {
		sb.WriteString(concept)
		sb.WriteByte(0x1f)
	}
	sb.WriteByte(0x1e)
	for _, example := range examples {
		sb.WriteString(strings.Join(example.Premise, "\x1f"))
		sb.WriteString("\x1d")
		sb.WriteString(strings.Join(example.Conclusion, "\x1f"))
		sb.WriteByte(0x1e)
	}
	return core.IDFromContent(sb.String())
}
