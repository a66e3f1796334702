package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/panbanda/funcspace/internal/output"
	"github.com/panbanda/funcspace/pkg/analysis"
	"github.com/panbanda/funcspace/pkg/config"
	"github.com/panbanda/funcspace/pkg/watch"
)

func watchCmd() *cli.Command {
	return &cli.Command{
		Name:      "watch",
		Usage:     "Watch for file changes and re-analyze",
		ArgsUsage: "[path]",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "debounce",
				Value: watch.DefaultDebounce,
				Usage: "How long a file must stay unchanged before it is analyzed",
			},
		},
		Action: runWatchCmd,
	}
}

func runWatchCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	absPath, err := filepath.Abs(getPaths(c)[0])
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	formatter := output.NewWriterFormatter(output.ParseFormat(cfg.Output.Format), c.App.Writer, cfg.Output.Color)
	msg := messages(c.App.ErrWriter, cfg.Output.Color)
	onChange := func(ctx context.Context, paths []string) {
		msg.Info("Analyzing %d changed files", len(paths))
		report, err := reanalyze(ctx, cfg, c, paths)
		if err != nil {
			msg.Error("analysis failed: %v", err)
			return
		}
		if err := formatter.Output(&output.SpacesView{Report: report}); err != nil {
			slog.Error("output failed", "error", err)
		}
	}

	watcher, err := watch.NewWatcher(absPath, cfg, c.Duration("debounce"), onChange)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Stop()
	watcher.SetOutput(c.App.ErrWriter, cfg.Output.Color)

	ctx, cancel := signalContext(c.Context)
	defer cancel()
	return watcher.Start(ctx)
}

// reanalyze runs the metrics of changed files. Headers of C-family files
// are collected again each time since a change may add or remove macros.
func reanalyze(ctx context.Context, cfg *config.Config, c *cli.Context, paths []string) (*analysis.Report, error) {
	opts := analysis.Options{
		Workers:     cfg.Analysis.Workers,
		MaxFileSize: cfg.Analysis.MaxFileSize,
		Cache:       openCache(cfg),
		Thresholds:  thresholds(c, cfg),
	}
	if cfg.Analysis.Preproc {
		pr, err := analysis.CollectPreproc(ctx, paths, nil, cfg.Analysis.Workers)
		if err != nil {
			slog.Warn("preprocessing incomplete", "error", err)
		}
		opts.Preproc = pr
	}
	return analysis.AnalyzeFiles(ctx, paths, opts)
}
