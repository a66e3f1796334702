package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/panbanda/funcspace/internal/output"
	"github.com/panbanda/funcspace/internal/progress"
	"github.com/panbanda/funcspace/pkg/analysis"
	"github.com/panbanda/funcspace/pkg/config"
	"github.com/panbanda/funcspace/pkg/lang"
	"github.com/panbanda/funcspace/pkg/preproc"
)

// errViolations is returned by --fail-on-violation when a threshold is
// exceeded.
var errViolations = errors.New("threshold violations found")

var refFlag = &cli.StringFlag{
	Name:  "ref",
	Usage: "Analyze files at this git revision instead of the working tree",
}

func metricsCmd() *cli.Command {
	return &cli.Command{
		Name:      "metrics",
		Aliases:   []string{"m"},
		Usage:     "Extract function spaces and their metrics",
		ArgsUsage: "[path...]",
		Flags: []cli.Flag{
			refFlag,
			&cli.IntFlag{
				Name:  "cyclomatic-threshold",
				Usage: "Cyclomatic complexity threshold (0 disables)",
			},
			&cli.IntFlag{
				Name:  "cognitive-threshold",
				Usage: "Cognitive complexity threshold (0 disables)",
			},
			&cli.IntFlag{
				Name:  "nesting-threshold",
				Usage: "Nesting depth threshold (0 disables)",
			},
			&cli.BoolFlag{
				Name:  "summary",
				Usage: "Omit per-file space tables",
			},
			&cli.BoolFlag{
				Name:  "fail-on-violation",
				Usage: "Exit with an error when a threshold is exceeded",
			},
		},
		Action: runMetricsCmd,
	}
}

func thresholds(c *cli.Context, cfg *config.Config) analysis.Thresholds {
	pick := func(flag string, def int) uint32 {
		if c.IsSet(flag) {
			def = c.Int(flag)
		}
		if def < 0 {
			return 0
		}
		return uint32(def)
	}
	return analysis.Thresholds{
		Cyclomatic: pick("cyclomatic-threshold", cfg.Thresholds.Cyclomatic),
		Cognitive:  pick("cognitive-threshold", cfg.Thresholds.Cognitive),
		Nesting:    pick("nesting-threshold", cfg.Thresholds.Nesting),
	}
}

func runMetricsCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	set, err := collectFiles(c, cfg, c.String("ref"))
	if err != nil {
		return err
	}
	defer set.Close()
	if len(set.files) == 0 {
		messages(c.App.ErrWriter, cfg.Output.Color).Warning("No source files found")
		return nil
	}

	ctx, cancel := signalContext(c.Context)
	defer cancel()

	var pr *preproc.Results
	if cfg.Analysis.Preproc {
		pr, err = analysis.CollectPreproc(ctx, set.files, set.source, cfg.Analysis.Workers)
		if err != nil {
			// Partial results still mask the files that were collected.
			slog.Warn("preprocessing incomplete", "error", err)
		}
	}

	tracker := progress.NewTracker("Analyzing...", len(set.files))
	report, err := analysis.AnalyzeFiles(ctx, set.files, analysis.Options{
		Workers:     cfg.Analysis.Workers,
		MaxFileSize: cfg.Analysis.MaxFileSize,
		Source:      set.source,
		Cache:       openCache(cfg),
		Preproc:     pr,
		Thresholds:  thresholds(c, cfg),
		OnProgress:  tracker.OnFile,
	})
	if err != nil {
		tracker.FinishError(err)
		return err
	}
	tracker.FinishSuccess()

	for _, fe := range report.Errors {
		slog.Debug("file skipped", "path", fe.Path, "error", fe.Error)
	}
	slog.Debug("analysis complete", "files", report.Summary.Files, "cache_hits", report.Summary.CacheHits, "commit", set.ref)

	if c.Bool("summary") {
		report.Files = nil
	}

	formatter, err := newFormatter(c, cfg)
	if err != nil {
		return err
	}
	defer formatter.Close()

	if err := formatter.Output(&output.SpacesView{Report: report}); err != nil {
		return err
	}
	if c.Bool("fail-on-violation") && len(report.Violations) > 0 {
		return fmt.Errorf("%w: %d", errViolations, len(report.Violations))
	}
	return nil
}

func opsCmd() *cli.Command {
	return &cli.Command{
		Name:      "ops",
		Usage:     "List the operators and operands of every space",
		ArgsUsage: "[path...]",
		Flags:     []cli.Flag{refFlag},
		Action:    runOpsCmd,
	}
}

func runOpsCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	set, err := collectFiles(c, cfg, c.String("ref"))
	if err != nil {
		return err
	}
	defer set.Close()
	if len(set.files) == 0 {
		messages(c.App.ErrWriter, cfg.Output.Color).Warning("No source files found")
		return nil
	}

	ctx, cancel := signalContext(c.Context)
	defer cancel()

	var pr *preproc.Results
	if cfg.Analysis.Preproc {
		pr, err = analysis.CollectPreproc(ctx, set.files, set.source, cfg.Analysis.Workers)
		if err != nil {
			slog.Warn("preprocessing incomplete", "error", err)
		}
	}

	view := &output.OpsView{Files: []output.OpsFile{}}
	for _, path := range set.files {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		content, err := set.source.Read(path)
		if err != nil {
			slog.Warn("read failed", "path", path, "error", err)
			continue
		}
		l, ok := lang.Guess(content, path)
		if !ok {
			slog.Debug("unsupported file", "path", path)
			continue
		}
		ops, err := analysis.GetOps(l, content, path, pr)
		if err != nil {
			slog.Warn("analysis failed", "path", path, "error", err)
			continue
		}
		view.Files = append(view.Files, output.OpsFile{Path: path, Ops: ops})
	}

	formatter, err := newFormatter(c, cfg)
	if err != nil {
		return err
	}
	defer formatter.Close()
	return formatter.Output(view)
}
