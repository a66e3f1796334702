package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/panbanda/funcspace/pkg/config"
)

func configCmd() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Subcommands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write a configuration file with the defaults",
				Description: `Creates funcspace.toml in the current directory with the default
settings. Use --path to choose another location.

Examples:
  funcspace config init
  funcspace config init --path .funcspace/funcspace.toml
  funcspace config init --force`,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "path",
						Value: "funcspace.toml",
						Usage: "File to create",
					},
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Overwrite an existing file",
					},
				},
				Action: runConfigInit,
			},
			{
				Name:  "show",
				Usage: "Show the effective configuration",
				Description: `Shows the configuration from defaults merged with the config file.

Examples:
  funcspace config show
  funcspace -c funcspace.yaml config show`,
				Action: runConfigShow,
			},
			{
				Name:  "validate",
				Usage: "Validate a configuration file",
				Description: `Validates a config file against the schema and checks its values.

Examples:
  funcspace config validate
  funcspace -c .funcspace/funcspace.toml config validate`,
				Action: runConfigValidate,
			},
		},
	}
}

func generateDefaultConfig() ([]byte, error) {
	content, err := config.DefaultConfig().TOML()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to TOML: %w", err)
	}
	header := "# funcspace configuration\n# Documentation: https://github.com/panbanda/funcspace\n\n"
	return append([]byte(header), content...), nil
}

func runConfigInit(c *cli.Context) error {
	path := c.String("path")
	if _, err := os.Stat(path); err == nil && !c.Bool("force") {
		return fmt.Errorf("config file %q already exists (use --force to overwrite)", path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
	}

	content, err := generateDefaultConfig()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	messages(c.App.Writer, true).Success("Created %s", path)
	return nil
}

func runConfigShow(c *cli.Context) error {
	cfg, path, err := config.LoadOrDefault(c.String("config"))
	if err != nil {
		return err
	}

	if path != "" {
		fmt.Fprintf(c.App.Writer, "# Configuration from: %s\n\n", path)
	} else {
		fmt.Fprintln(c.App.Writer, "# Default configuration (no config file found)")
	}

	content, err := cfg.TOML()
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	_, err = c.App.Writer.Write(content)
	return err
}

func runConfigValidate(c *cli.Context) error {
	path := c.String("config")
	if path == "" {
		path = config.Find()
	}
	if path == "" {
		messages(c.App.Writer, true).Info("No config file found. Default configuration is valid.")
		return nil
	}

	if err := config.ValidateFile(path); err != nil {
		msg := messages(c.App.ErrWriter, true)
		msg.Error("Configuration validation failed:")
		fmt.Fprintf(msg.Writer(), "  - %s\n", strings.ReplaceAll(err.Error(), "\n", "\n  - "))
		return err
	}

	messages(c.App.Writer, true).Success("Configuration valid: %s", path)
	return nil
}
