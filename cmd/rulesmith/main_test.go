package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func findStringFlag(t *testing.T, cmd *cli.Command, name string) *cli.StringFlag {
	t.Helper()
	for _, flag := range cmd.Flags {
		if f, ok := flag.(*cli.StringFlag); ok && f.Name == name {
			return f
		}
	}
	t.Fatalf("string flag %q not found on %s", name, cmd.Name)
	return nil
}

func findCommand(t *testing.T, app *cli.App, name string) *cli.Command {
	t.Helper()
	for _, cmd := range app.Commands {
		if cmd.Name == name {
			return cmd
		}
	}
	t.Fatalf("command %q not found", name)
	return nil
}

func TestTrainCommandFlags(t *testing.T) {
	app := newApp()
	train := findCommand(t, app, "train")

	t.Run("task defaults to both", func(t *testing.T) {
		taskFlag := findStringFlag(t, train, "task")
		assert.Equal(t, "both", taskFlag.Value)
		assert.Contains(t, taskFlag.Aliases, "t")
	})

	t.Run("output-dir defaults to ./models", func(t *testing.T) {
		outputFlag := findStringFlag(t, train, "output-dir")
		assert.Equal(t, "./models", outputFlag.Value)
	})

	t.Run("concepts and examples are optional", func(t *testing.T) {
		assert.False(t, findStringFlag(t, train, "concepts").Required)
		assert.False(t, findStringFlag(t, train, "examples").Required)
	})

	t.Run("unknown task fails", func(t *testing.T) {
		err := app.Run([]string{"rulesmith", "train", "--task", "everything"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown training task")
	})
}

func TestRunsCommandFlags(t *testing.T) {
	app := newApp()
	runs := findCommand(t, app, "runs")

	t.Run("archive is required", func(t *testing.T) {
		archiveFlag := findStringFlag(t, runs, "archive")
		assert.True(t, archiveFlag.Required)
	})

	t.Run("missing archive flag fails", func(t *testing.T) {
		err := app.Run([]string{"rulesmith", "runs"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "archive")
	})
}

func TestTrainEndToEnd(t *testing.T) {
	outputDir := t.TempDir()

	// No encoding service listens on the configured host in tests, so the
	// run uses fallback embeddings; artifacts must still be written.
	app := newApp()
	err := app.Run([]string{
		"rulesmith", "train",
		"--task", "both",
		"--output-dir", outputDir,
	})
	require.NoError(t, err)

	_, err = os.Stat(outputDir + "/embeddings.json")
	assert.NoError(t, err)
	_, err = os.Stat(outputDir + "/learned_rules.json")
	assert.NoError(t, err)
}

func TestSetupLogger(t *testing.T) {
	newTestApp := func() *cli.App {
		return &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "log-level",
					Aliases: []string{"l"},
					Value:   "info",
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error {
				return nil
			},
		}
	}

	t.Run("valid log levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error"} {
			t.Run(level, func(t *testing.T) {
				err := newTestApp().Run([]string{"test", "--log-level", level})
				require.NoError(t, err)
			})
		}
	})

	t.Run("case insensitive log levels", func(t *testing.T) {
		for _, level := range []string{"DEBUG", "Info", "WaRn", "ERROR"} {
			t.Run(level, func(t *testing.T) {
				err := newTestApp().Run([]string{"test", "--log-level", level})
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		err := newTestApp().Run([]string{"test", "--log-level", "invalid"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("log-level flag has alias -l", func(t *testing.T) {
		err := newTestApp().Run([]string{"test", "-l", "debug"})
		require.NoError(t, err)
	})
}

func TestMain(m *testing.M) {
	code := m.Run()
	os.Exit(code)
}
