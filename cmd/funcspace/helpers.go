package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/panbanda/funcspace/internal/cache"
	"github.com/panbanda/funcspace/internal/output"
	"github.com/panbanda/funcspace/internal/remote"
	"github.com/panbanda/funcspace/internal/scanner"
	"github.com/panbanda/funcspace/internal/vcs"
	"github.com/panbanda/funcspace/pkg/config"
	"github.com/panbanda/funcspace/pkg/source"
)

// getPaths returns paths from positional args, defaulting to ["."]
func getPaths(c *cli.Context) []string {
	if c.Args().Len() > 0 {
		return c.Args().Slice()
	}
	return []string{"."}
}

// loadConfig loads the configuration selected by --config, or the first one
// found in the default locations, and applies global flag overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, path, err := config.LoadOrDefault(c.String("config"))
	if err != nil {
		return nil, err
	}
	if path != "" {
		slog.Debug("loaded config", "path", path)
	}
	if c.IsSet("workers") {
		cfg.Analysis.Workers = c.Int("workers")
	}
	if c.Bool("no-cache") {
		cfg.Cache.Enabled = false
	}
	if c.IsSet("format") {
		cfg.Output.Format = c.String("format")
	}
	return cfg, nil
}

func newFormatter(c *cli.Context, cfg *config.Config) (*output.Formatter, error) {
	return output.NewFormatter(output.ParseFormat(cfg.Output.Format), c.String("output"), cfg.Output.Color)
}

// messages returns a formatter for the status lines a command writes to w.
func messages(w io.Writer, colored bool) *output.Formatter {
	return output.NewWriterFormatter(output.FormatText, w, colored)
}

func openCache(cfg *config.Config) *cache.Cache {
	cc, err := cache.New(cfg.Cache.Dir, cfg.Cache.TTL, cfg.Cache.Enabled)
	if err != nil {
		slog.Warn("cache disabled", "dir", cfg.Cache.Dir, "error", err)
		return nil
	}
	return cc
}

// resolvePaths clones any remote repository named among the paths and
// replaces it with the clone directory. The returned cleanup removes the
// clones.
func resolvePaths(c *cli.Context, paths []string) ([]string, func(), error) {
	var clones []*remote.Source
	cleanup := func() {
		for _, src := range clones {
			src.Cleanup()
		}
	}

	resolved := make([]string, 0, len(paths))
	for _, path := range paths {
		src, err := remote.Parse(path)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		if src == nil {
			resolved = append(resolved, path)
			continue
		}
		slog.Info("cloning", "url", src.URL, "ref", src.Ref)
		var progress io.Writer
		if c.Bool("verbose") {
			progress = c.App.ErrWriter
		}
		if err := src.Clone(c.Context, progress, true); err != nil {
			cleanup()
			return nil, nil, err
		}
		clones = append(clones, src)
		resolved = append(resolved, src.CloneDir)
	}
	return resolved, cleanup, nil
}

// fileSet is the set of files a command analyzes and where their contents
// come from.
type fileSet struct {
	files  []string
	source source.ContentSource
	// ref is the commit the files were read from, empty for the working
	// tree.
	ref string
	// Close removes any clone of a remote repository.
	Close func()
}

// collectFiles scans the paths given on the command line. Remote
// repositories such as owner/repo@tag are cloned first. With ref set, files
// are listed from that git revision of the repository containing the first
// path instead of the working tree. Callers must call Close on the result.
func collectFiles(c *cli.Context, cfg *config.Config, ref string) (*fileSet, error) {
	paths, cleanup, err := resolvePaths(c, getPaths(c))
	if err != nil {
		return nil, err
	}
	set, err := scanFiles(cfg, paths, ref)
	if err != nil {
		cleanup()
		return nil, err
	}
	set.Close = cleanup
	return set, nil
}

func scanFiles(cfg *config.Config, paths []string, ref string) (*fileSet, error) {
	scan := scanner.NewScanner(cfg)
	if ref == "" {
		files, err := scan.ScanPaths(paths)
		if err != nil {
			return nil, err
		}
		return &fileSet{files: files, source: source.NewFilesystem()}, nil
	}

	absPath, err := filepath.Abs(paths[0])
	if err != nil {
		return nil, fmt.Errorf("invalid path %s: %w", paths[0], err)
	}
	repo, err := vcs.Open(absPath)
	if err != nil {
		return nil, err
	}
	tree, err := repo.Tree(ref)
	if err != nil {
		return nil, err
	}
	entries, err := tree.Entries()
	if err != nil {
		return nil, err
	}
	slog.Debug("reading git tree", "ref", ref, "commit", tree.Commit(), "entries", len(entries))
	return &fileSet{
		files:  scan.ScanTree(entries, cfg.Analysis.MaxFileSize),
		source: source.NewTree(tree),
		ref:    tree.Commit(),
	}, nil
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
