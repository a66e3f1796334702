package main

import (
	"github.com/urfave/cli/v2"

	"github.com/panbanda/funcspace/internal/mcpserver"
)

func mcpCmd() *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Start MCP (Model Context Protocol) server for LLM tool integration",
		Description: `Starts an MCP server over stdio transport that exposes funcspace's
metrics as tools that LLMs can invoke.

To use with Claude Desktop, add to your config:
  {
    "mcpServers": {
      "funcspace": {
        "command": "funcspace",
        "args": ["mcp"]
      }
    }
  }

Available tools:
  - function_spaces      Space tree of one file with its metrics
  - operators_operands   Halstead operators and operands per space
  - languages            Supported languages and detection rules
  - analyze_project      Summary and threshold violations for a tree`,
		Subcommands: []*cli.Command{
			{
				Name:  "manifest",
				Usage: "Print the MCP registry manifest (server.json)",
				Action: func(c *cli.Context) error {
					data, err := mcpserver.GenerateManifest(version)
					if err != nil {
						return err
					}
					_, err = c.App.Writer.Write(append(data, '\n'))
					return err
				},
			},
		},
		Action: runMCPCmd,
	}
}

func runMCPCmd(c *cli.Context) error {
	ctx, cancel := signalContext(c.Context)
	defer cancel()
	return mcpserver.NewServer(version).Run(ctx)
}
