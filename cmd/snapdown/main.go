package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	cli "github.com/urfave/cli/v3"

	"github.com/jorge-barreto/snapdown"
	"github.com/jorge-barreto/snapdown/internal/config"
	"github.com/jorge-barreto/snapdown/internal/directive"
	"github.com/jorge-barreto/snapdown/internal/dispatch"
	"github.com/jorge-barreto/snapdown/internal/docs"
	"github.com/jorge-barreto/snapdown/internal/runner"
	"github.com/jorge-barreto/snapdown/internal/scaffold"
	"github.com/jorge-barreto/snapdown/internal/ux"
)

func main() {
	app := &cli.Command{
		Name:        "snapdown",
		Usage:       "Literate snapshot tests for markdown",
		Description: "Run 'snapdown docs' for documentation on directives, config, and modes.",
		Commands: []*cli.Command{
			checkCmd(),
			blocksCmd(),
			initCmd(),
			docsCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		ux.Error(os.Stderr, err)
		os.Exit(1)
	}
}

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Run source blocks and check or fill in their output blocks",
		ArgsUsage: "[file or glob...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "refresh", Usage: "Regenerate every block (same as setting " + config.RefreshEnv + ")"},
			&cli.IntFlag{Name: "jobs", Aliases: []string{"j"}, Usage: "Files checked concurrently (default: GOMAXPROCS)"},
			&cli.StringFlag{Name: "config", Usage: "Path to the config file (default: search for " + config.FileName + ")"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, cfgPath, err := loadConfig(cmd.String("config"))
			if err != nil {
				return err
			}

			patterns := cmd.Args().Slice()
			if len(patterns) == 0 {
				if len(cfg.Include) == 0 {
					return fmt.Errorf("no files given and %s has no include patterns", cfgPath)
				}
				root := filepath.Dir(cfgPath)
				for _, p := range cfg.Include {
					patterns = append(patterns, filepath.Join(root, p))
				}
			}
			files, err := runner.ExpandPatterns(patterns)
			if err != nil {
				return err
			}

			if err := dispatch.Preflight(cfg.Shell); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			r := &runner.Runner{
				Config:     cfg,
				Dispatcher: &dispatch.DefaultDispatcher{},
				Refresh:    cmd.Bool("refresh") || config.RefreshRequested(),
				Jobs:       int(cmd.Int("jobs")),
			}

			start := time.Now()
			results := r.CheckFiles(ctx, files)
			for _, res := range results {
				ux.FileResult(os.Stdout, res)
			}
			ux.Summary(os.Stdout, results, time.Since(start))
			return runner.Verdict(results)
		},
	}
}

func blocksCmd() *cli.Command {
	return &cli.Command{
		Name:      "blocks",
		Usage:     "List the parsed blocks of a file",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "Path to the config file (default: search for " + config.FileName + ")"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("file argument is required")
			}
			cfg, _, err := loadConfig(cmd.String("config"))
			if err != nil {
				return err
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			blocks, _, err := snapdown.Parse[runner.Directives](string(data))
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			ux.RenderBlocks(os.Stdout, path, cfg, blocks)
			return nil
		},
	}
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write a starter " + config.FileName + " and EXAMPLE.md",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			return scaffold.Init(os.Stdout, dir)
		},
	}
}

func docsCmd() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				fmt.Print("\nAvailable topics:\n\n")
				for _, t := range docs.All() {
					fmt.Printf("  %-14s %s\n", t.Name, t.Summary)
				}
				fmt.Println("\nRun 'snapdown docs <topic>' to read a topic.")
				return nil
			}
			t, err := docs.Get(name)
			if err != nil {
				return err
			}
			fmt.Print(t.Content)
			if t.Name == "directives" {
				usage, err := directive.Usage(&snapdown.Arguments[runner.Directives]{})
				if err != nil {
					return err
				}
				fmt.Printf("\nAccepted by this build:\n\n%s", usage)
			}
			return nil
		},
	}
}

// loadConfig loads the config at path, or the nearest one above the
// working directory when path is empty. It returns the path it loaded.
func loadConfig(path string) (*config.Config, string, error) {
	if path == "" {
		dir, err := os.Getwd()
		if err != nil {
			return nil, "", err
		}
		path, err = config.Find(dir)
		if err != nil {
			return nil, "", err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", fmt.Errorf("loading config: %w", err)
	}
	return cfg, path, nil
}
