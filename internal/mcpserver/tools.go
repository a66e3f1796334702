package mcpserver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/panbanda/funcspace/internal/output"
	"github.com/panbanda/funcspace/internal/scanner"
	"github.com/panbanda/funcspace/pkg/analysis"
	"github.com/panbanda/funcspace/pkg/config"
	"github.com/panbanda/funcspace/pkg/lang"
)

// SourceInput selects one file or inline snippet.
type SourceInput struct {
	Path     string `json:"path" jsonschema:"File to analyze, or the file name used for language detection when source is given."`
	Source   string `json:"source,omitempty" jsonschema:"Inline source code. When set, path is not read."`
	Language string `json:"language,omitempty" jsonschema:"Language name overriding detection, e.g. go, python, cpp."`
	Format   string `json:"format,omitempty" jsonschema:"Output format: toon (default), json, yaml, or markdown."`
}

// LanguagesInput configures the languages tool.
type LanguagesInput struct {
	Format string `json:"format,omitempty" jsonschema:"Output format: toon (default), json, yaml, or markdown."`
}

// ProjectInput configures the analyze_project tool.
type ProjectInput struct {
	Paths               []string `json:"paths,omitempty" jsonschema:"Paths to analyze. Defaults to current directory if empty."`
	Format              string   `json:"format,omitempty" jsonschema:"Output format: toon (default), json, yaml, or markdown."`
	CyclomaticThreshold int      `json:"cyclomatic_threshold,omitempty" jsonschema:"Cyclomatic complexity threshold. Default 10."`
	CognitiveThreshold  int      `json:"cognitive_threshold,omitempty" jsonschema:"Cognitive complexity threshold. Default 15."`
	NestingThreshold    int      `json:"nesting_threshold,omitempty" jsonschema:"Nesting depth threshold. Default 4."`
	IncludeSpaces       bool     `json:"include_spaces,omitempty" jsonschema:"Include the space tree of every file."`
}

func getPaths(paths []string) []string {
	if len(paths) == 0 {
		return []string{"."}
	}
	return paths
}

func getFormat(format string) output.Format {
	if format == "" {
		return output.FormatTOON
	}
	return output.ParseFormat(format)
}

// formatOutput renders data in format. Text is not useful to a model, so
// it falls back to TOON.
func formatOutput(data any, format output.Format) (string, error) {
	if format == output.FormatText {
		format = output.FormatTOON
	}
	var buf bytes.Buffer
	if err := output.NewWriterFormatter(format, &buf, false).Output(data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func toolResult(data any, format output.Format) (*mcp.CallToolResult, any, error) {
	text, err := formatOutput(data, format)
	if err != nil {
		return nil, nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}, nil, nil
}

func toolError(msg string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: "Error: " + msg},
		},
		IsError: true,
	}, nil, nil
}

var errNoPath = errors.New("path is required")

// resolveSource returns the language and content selected by input.
func resolveSource(input SourceInput) (lang.Language, []byte, error) {
	if input.Path == "" && input.Source == "" {
		return 0, nil, errNoPath
	}

	content := []byte(input.Source)
	if input.Source == "" {
		var err error
		if content, err = os.ReadFile(input.Path); err != nil {
			return 0, nil, err
		}
	}

	if input.Language != "" {
		l, err := lang.FromName(input.Language)
		if err != nil {
			return 0, nil, fmt.Errorf("%s: %w", input.Language, err)
		}
		return l, content, nil
	}
	l, ok := lang.Guess(content, input.Path)
	if !ok {
		return 0, nil, fmt.Errorf("%s: %w; set language", input.Path, lang.ErrUnsupported)
	}
	return l, content, nil
}

func handleFunctionSpaces(ctx context.Context, req *mcp.CallToolRequest, input SourceInput) (*mcp.CallToolResult, any, error) {
	l, content, err := resolveSource(input)
	if err != nil {
		return toolError(err.Error())
	}
	space, err := analysis.GetFunctionSpaces(l, content, input.Path, nil)
	if err != nil {
		return toolError(err.Error())
	}
	return toolResult(space, getFormat(input.Format))
}

func handleOperatorsOperands(ctx context.Context, req *mcp.CallToolRequest, input SourceInput) (*mcp.CallToolResult, any, error) {
	l, content, err := resolveSource(input)
	if err != nil {
		return toolError(err.Error())
	}
	ops, err := analysis.GetOps(l, content, input.Path, nil)
	if err != nil {
		return toolError(err.Error())
	}
	return toolResult(ops, getFormat(input.Format))
}

func handleLanguages(ctx context.Context, req *mcp.CallToolRequest, input LanguagesInput) (*mcp.CallToolResult, any, error) {
	return toolResult(output.Languages(), getFormat(input.Format))
}

func orDefault(v, def int) uint32 {
	if v > 0 {
		return uint32(v)
	}
	return uint32(def)
}

func handleAnalyzeProject(ctx context.Context, req *mcp.CallToolRequest, input ProjectInput) (*mcp.CallToolResult, any, error) {
	cfg := config.DefaultConfig()
	files, err := scanner.NewScanner(cfg).ScanPaths(getPaths(input.Paths))
	if err != nil {
		return toolError(err.Error())
	}
	if len(files) == 0 {
		return toolError("no source files found")
	}

	pr, err := analysis.CollectPreproc(ctx, files, nil, cfg.Analysis.Workers)
	if err != nil && pr == nil {
		return toolError(err.Error())
	}

	report, err := analysis.AnalyzeFiles(ctx, files, analysis.Options{
		Workers:     cfg.Analysis.Workers,
		MaxFileSize: cfg.Analysis.MaxFileSize,
		Preproc:     pr,
		Thresholds: analysis.Thresholds{
			Cyclomatic: orDefault(input.CyclomaticThreshold, cfg.Thresholds.Cyclomatic),
			Cognitive:  orDefault(input.CognitiveThreshold, cfg.Thresholds.Cognitive),
			Nesting:    orDefault(input.NestingThreshold, cfg.Thresholds.Nesting),
		},
	})
	if err != nil {
		return toolError(err.Error())
	}
	if !input.IncludeSpaces {
		report.Files = nil
	}
	return toolResult(report, getFormat(input.Format))
}
