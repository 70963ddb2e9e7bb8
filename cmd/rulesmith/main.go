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


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/poiesic/rulesmith"
	"github.com/poiesic/rulesmith/config"
	"github.com/poiesic/rulesmith/storage/badger"
	"github.com/urfave/cli/v2"
)

func main() {
	// Optional .env for encoder host/model overrides in dev setups
	_ = godotenv.Load()

	app := newApp()
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:   "rulesmith",
		Usage:  "Offline trainer for concept embeddings and inductive rules",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "train",
				Usage:  "Generate embedding and rule artifacts from concept and example inputs",
				Action: trainCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "task",
						Aliases: []string{"t"},
						Usage:   "Training task to perform (embeddings, rules, both)",
						Value:   "both",
					},
					&cli.StringFlag{
						Name:  "concepts",
						Usage: "Path to concepts JSON file (list of strings)",
					},
					&cli.StringFlag{
						Name:  "examples",
						Usage: "Path to rule examples JSON file",
					},
					&cli.StringFlag{
						Name:    "output-dir",
						Aliases: []string{"o"},
						Usage:   "Output directory for trained model artifacts",
						Value:   "./models",
					},
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to YAML configuration file",
					},
					&cli.StringFlag{
						Name:  "archive",
						Usage: "Path to BadgerDB run archive directory (overrides config)",
					},
				},
			},
			{
				Name:   "runs",
				Usage:  "Inspect the training-run archive",
				Action: runsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "archive",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB run archive directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of runs to list (0 for all)",
						Value: 20,
					},
					&cli.StringFlag{
						Name:  "run",
						Usage: "Show the rules archived with a single run Id",
					},
				},
			},
		},
	}
}

func trainCommand(c *cli.Context) error {
	ctx := context.Background()

	task, err := rulesmith.ParseTask(c.String("task"))
	if err != nil {
		return err
	}

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if c.String("archive") != "" {
		cfg.Archive.Path = c.String("archive")
	}

	trainer, err := rulesmith.NewTrainer(cfg)
	if err != nil {
		return err
	}
	defer trainer.Close()

	summary, err := trainer.Run(ctx, rulesmith.RunRequest{
		Task:         task,
		ConceptsPath: c.String("concepts"),
		ExamplesPath: c.String("examples"),
		OutputDir:    c.String("output-dir"),
	})
	if err != nil {
		return fmt.Errorf("training failed: %w", err)
	}

	printSummary(summary)
	return nil
}

func printSummary(summary *rulesmith.Summary) {
	if summary.Capabilities.Degraded() {
		fmt.Fprintln(os.Stderr, "Note: no encoding service available, embeddings are deterministic fallback vectors")
	}
	if summary.EmbeddingsPath != "" {
		fmt.Printf("Generated embeddings for %d concepts (%d dimensions) -> %s\n",
			summary.ConceptCount, summary.Dimension, summary.EmbeddingsPath)
	}
	if summary.RulesPath != "" {
		fmt.Printf("Learned %d rules from %d examples -> %s\n",
			summary.RuleCount, summary.ExampleCount, summary.RulesPath)
	}
	if summary.RunId != "" {
		fmt.Printf("Archived run %s\n", summary.RunId)
	}
	fmt.Println("Training completed")
}

func runsCommand(c *cli.Context) error {
	ctx := context.Background()

	backend, err := badger.OpenBackend(c.String("archive"), false)
	if err != nil {
		return fmt.Errorf("failed to open run archive: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewRunRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create run repository: %w", err)
	}
	defer repo.Close()

	if runID := c.String("run"); runID != "" {
		return printRunRules(ctx, repo, runID)
	}

	runs, err := repo.ListRuns(ctx, c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Println("No archived runs")
		return nil
	}

	for _, run := range runs {
		encoder := run.EncoderModel
		if !run.EncoderAvailable {
			encoder = "fallback"
		}
		fmt.Printf("%s  %s  task=%s concepts=%d examples=%d rules=%d dim=%d encoder=%s\n",
			run.Id, run.CreatedAt.Format("2006-01-02 15:04:05"),
			run.Task, run.ConceptCount, run.ExampleCount, run.RuleCount,
			run.Dimension, encoder)
	}
	return nil
}

func printRunRules(ctx context.Context, repo *badger.RunRepository, runID string) error {
	rules, err := repo.GetRunRules(ctx, runID)
	if err != nil {
		return fmt.Errorf("failed to load run %s: %w", runID, err)
	}

	if len(rules) == 0 {
		fmt.Printf("Run %s archived no rules\n", runID)
		return nil
	}

	for _, rule := range rules {
		fmt.Printf("%s  confidence=%.3f weight=%.3f  [%s] -> [%s]\n",
			rule.Id, rule.Confidence, rule.Weight,
			strings.Join(rule.Premise, " "), strings.Join(rule.Conclusion, " "))
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
