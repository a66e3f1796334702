package main

import (
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

var (
	version = "dev"
	commit  = "none"    //nolint:unused // set via ldflags at build time
	date    = "unknown" //nolint:unused // set via ldflags at build time
)

func newApp() *cli.App {
	return &cli.App{
		Name:    "funcspace",
		Usage:   "Function space metrics for 17 languages",
		Version: version,
		Description: `funcspace parses source files with tree-sitter, splits them into
function spaces (functions, closures, classes, ...) and reports complexity,
Halstead, LOC, argument and exit metrics for each space.

Supports: Bash, C, C++, C#, Go, Java, JavaScript, Kotlin, Lua, PHP, Python,
Ruby, Rust, Scala, Swift, TypeScript, TSX`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (TOML, YAML, or JSON)",
				EnvVars: []string{"FUNCSPACE_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, json, markdown, toon, yaml",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write output to file",
			},
			&cli.BoolFlag{
				Name:  "no-cache",
				Usage: "Disable caching",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "Files analyzed concurrently (0 = number of CPUs)",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable verbose output",
			},
		},
		Before: func(c *cli.Context) error {
			level := slog.LevelWarn
			if c.Bool("verbose") {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: level})))
			return nil
		},
		Commands: []*cli.Command{
			metricsCmd(),
			opsCmd(),
			languagesCmd(),
			preprocCmd(),
			configCmd(),
			cacheCmd(),
			watchCmd(),
			mcpCmd(),
		},
	}
}

func main() {
	app := newApp()
	app.ErrWriter = os.Stderr
	if err := app.Run(os.Args); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}
