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
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/qaforge/ai"
	"github.com/poiesic/qaforge/ai/openai"
	"github.com/poiesic/qaforge/chunk"
	"github.com/poiesic/qaforge/input"
	"github.com/poiesic/qaforge/pipeline"
	"github.com/poiesic/qaforge/sink"
	"github.com/poiesic/qaforge/sink/airtable"
	"github.com/poiesic/qaforge/sink/badger"
)

func main() {
	app := &cli.App{
		Name:  "qaforge",
		Usage: "Generate question/answer pairs from raw text and upload them to a table",
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
				Name:   "run",
				Usage:  "Process a source file once and exit",
				Action: runCommand,
				Flags:  runFlags(),
			},
			{
				Name:   "schedule",
				Usage:  "Process the source file on a cron schedule until interrupted",
				Action: scheduleCommand,
				Flags: append(runFlags(),
					&cli.StringFlag{
						Name:  "cron",
						Usage: "Cron spec for recurring runs (default: daily, two minutes from startup)",
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "Path to the raw text source file",
			Value:   "test.txt",
		},
		&cli.StringFlag{
			Name:  "json-file",
			Usage: "Path to a JSON array of sections (overrides --file)",
		},
		&cli.BoolFlag{
			Name:  "flush-trailing",
			Usage: "Keep a trailing section that is not followed by a blank line",
		},
		&cli.StringFlag{
			Name:  "host",
			Usage: "OpenAI-compatible completion service host URL",
		},
		&cli.StringFlag{
			Name:  "model",
			Usage: "Completion model name",
		},
		&cli.StringFlag{
			Name:    "token",
			Usage:   "Completion service API token",
			EnvVars: []string{"OPENAI_API_KEY"},
		},
		&cli.IntFlag{
			Name:  "max-tokens",
			Usage: "Maximum completion tokens per request",
		},
		&cli.StringFlag{
			Name:    "system-prompt",
			Usage:   "Override the built-in system prompt",
			EnvVars: []string{"SYS_PROMPT"},
		},
		&cli.StringFlag{
			Name:  "sink",
			Usage: "Upload destination (airtable, badger, discard)",
			Value: "airtable",
		},
		&cli.StringFlag{
			Name:    "db",
			Aliases: []string{"d"},
			Usage:   "Path to BadgerDB database directory (badger sink only)",
			Value:   "./qaforge-db",
		},
		&cli.IntFlag{
			Name:  "pool-size",
			Usage: "Number of concurrent upload workers",
		},
	}
}

func runCommand(c *cli.Context) error {
	ctx := context.Background()

	driver, destination, err := buildDriver(c)
	if err != nil {
		return err
	}
	defer driver.Release()
	defer destination.Close()

	source := buildSource(c)

	return runOnce(ctx, driver, source)
}

func scheduleCommand(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	driver, destination, err := buildDriver(c)
	if err != nil {
		return err
	}
	defer driver.Release()
	defer destination.Close()

	source := buildSource(c)

	spec := c.String("cron")
	if spec == "" {
		spec = defaultCronSpec(time.Now())
	}

	sched, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = sched.NewJob(
		gocron.CronJob(spec, false),
		gocron.NewTask(func() {
			if err := runOnce(ctx, driver, source); err != nil {
				slog.Error("scheduled run failed", "error", err)
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("invalid cron spec %q: %w", spec, err)
	}

	sched.Start()
	slog.Info("scheduler started", "cron", spec)

	<-ctx.Done()

	slog.Info("shutting down scheduler")
	return sched.Shutdown()
}

func runOnce(ctx context.Context, driver *pipeline.Driver, source input.Source) error {
	chunks, err := source.Chunks(ctx)
	if err != nil {
		return err
	}

	stats, err := driver.Run(ctx, chunks)
	if err != nil {
		return err
	}

	slog.Info("run complete", "chunks", stats.Chunks, "pairs", stats.Pairs)
	return nil
}

func buildDriver(c *cli.Context) (*pipeline.Driver, sink.Sink, error) {
	generator, err := buildGenerator(c)
	if err != nil {
		return nil, nil, err
	}

	destination, err := buildSink(c)
	if err != nil {
		return nil, nil, err
	}

	opts := []pipeline.Option{
		pipeline.WithProgress(pipeline.NewProgressTracker(os.Stderr)),
	}
	if size := c.Int("pool-size"); size > 0 {
		opts = append(opts, pipeline.WithUploadPoolSize(size))
	}

	driver, err := pipeline.NewDriver(generator, destination, opts...)
	if err != nil {
		destination.Close()
		return nil, nil, err
	}

	return driver, destination, nil
}

func buildGenerator(c *cli.Context) (ai.PairGenerator, error) {
	var opts []ai.ConfigOption
	if host := c.String("host"); host != "" {
		opts = append(opts, ai.WithHost(host))
	}
	if model := c.String("model"); model != "" {
		opts = append(opts, ai.WithModel(model))
	}
	if token := c.String("token"); token != "" {
		opts = append(opts, ai.WithToken(token))
	}
	if maxTokens := c.Int("max-tokens"); maxTokens > 0 {
		opts = append(opts, ai.WithMaxTokens(maxTokens))
	}
	if prompt := c.String("system-prompt"); prompt != "" {
		opts = append(opts, ai.WithSystemPrompt(prompt))
	}

	config := ai.NewConfig(opts...)
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	return openai.NewGenerator(config)
}

func buildSink(c *cli.Context) (sink.Sink, error) {
	switch name := c.String("sink"); name {
	case "airtable":
		cfg := airtable.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid airtable configuration: %w", err)
		}
		return airtable.NewClient(cfg)
	case "badger":
		return badger.OpenStore(c.String("db"), false)
	case "discard":
		return sink.Discard(), nil
	default:
		return nil, fmt.Errorf("unknown sink %q: must be one of airtable, badger, discard", name)
	}
}

func buildSource(c *cli.Context) input.Source {
	if path := c.String("json-file"); path != "" {
		return input.NewJSONFileSource(path)
	}
	splitter := chunk.NewSplitter(chunk.WithFlushTrailing(c.Bool("flush-trailing")))
	return input.NewFileSource(c.String("file"), splitter)
}

// defaultCronSpec returns a daily schedule whose first firing is two
// minutes after now.
func defaultCronSpec(now time.Time) string {
	at := now.Add(2 * time.Minute)
	return fmt.Sprintf("%d %d * * *", at.Minute(), at.Hour())
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
