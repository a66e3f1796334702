package main

import (
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/panbanda/funcspace/internal/output"
	"github.com/panbanda/funcspace/pkg/analysis"
	"github.com/panbanda/funcspace/pkg/lang"
)

func languagesCmd() *cli.Command {
	return &cli.Command{
		Name:      "languages",
		Aliases:   []string{"langs"},
		Usage:     "List supported languages, or detect the language of files",
		ArgsUsage: "[file...]",
		Action:    runLanguagesCmd,
	}
}

func runLanguagesCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	formatter, err := newFormatter(c, cfg)
	if err != nil {
		return err
	}
	defer formatter.Close()

	if c.Args().Len() == 0 {
		return formatter.Output(output.LanguagesTable())
	}

	var rows [][]string
	var data []map[string]string
	for _, path := range c.Args().Slice() {
		name := "unknown"
		if l, ok := lang.FromPath(path); ok {
			name = l.String()
		}
		rows = append(rows, []string{path, name})
		data = append(data, map[string]string{"path": path, "language": name})
	}
	return formatter.Output(output.NewTable("Detected Languages", []string{"File", "Language"}, rows, nil, data))
}

func preprocCmd() *cli.Command {
	return &cli.Command{
		Name:      "preproc",
		Usage:     "Collect includes and macros of C and C++ files",
		ArgsUsage: "[path...]",
		Flags:     []cli.Flag{refFlag},
		Action:    runPreprocCmd,
	}
}

func runPreprocCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	set, err := collectFiles(c, cfg, c.String("ref"))
	if err != nil {
		return err
	}
	defer set.Close()

	ctx, cancel := signalContext(c.Context)
	defer cancel()

	pr, err := analysis.CollectPreproc(ctx, set.files, set.source, cfg.Analysis.Workers)
	if err != nil {
		if pr == nil {
			return fmt.Errorf("preprocessing: %w", err)
		}
		slog.Warn("preprocessing incomplete", "error", err)
	}
	if len(pr.Files()) == 0 {
		messages(c.App.ErrWriter, cfg.Output.Color).Warning("No C or C++ files found")
		return nil
	}

	formatter, err := newFormatter(c, cfg)
	if err != nil {
		return err
	}
	defer formatter.Close()
	return formatter.Output(output.PreprocTable(pr))
}
