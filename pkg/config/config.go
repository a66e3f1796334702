// Package config loads funcspace configuration from TOML, YAML or JSON
// files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml"

	"github.com/panbanda/funcspace/pkg/lang"
)

// ErrInvalid is returned for configurations with invalid values.
var ErrInvalid = errors.New("invalid configuration")

// Formats lists the supported output formats.
var Formats = []string{"text", "markdown", "json", "toon", "yaml"}

// Config holds all configuration options for funcspace.
type Config struct {
	// Analysis settings
	Analysis AnalysisConfig `koanf:"analysis" toml:"analysis" json:"analysis"`

	// Thresholds for function metrics
	Thresholds ThresholdConfig `koanf:"thresholds" toml:"thresholds" json:"thresholds"`

	// File exclusion patterns
	Exclude ExcludeConfig `koanf:"exclude" toml:"exclude" json:"exclude"`

	// Cache settings
	Cache CacheConfig `koanf:"cache" toml:"cache" json:"cache"`

	// Output settings
	Output OutputConfig `koanf:"output" toml:"output" json:"output"`
}

// AnalysisConfig controls how files are analyzed.
type AnalysisConfig struct {
	// Workers is the number of files analyzed concurrently; 0 picks a
	// default from the CPU count.
	Workers int `koanf:"workers" toml:"workers" json:"workers"`
	// MaxFileSize skips files larger than this many bytes; 0 disables the
	// limit.
	MaxFileSize int64 `koanf:"max_file_size" toml:"max_file_size" json:"max_file_size"`
	// Preproc collects includes and macros of C and C++ files before
	// analysis and masks empty macros.
	Preproc bool `koanf:"preproc" toml:"preproc" json:"preproc"`
	// Languages restricts analysis to these languages; empty means all.
	Languages []string `koanf:"languages" toml:"languages" json:"languages"`
}

// ThresholdConfig defines function metric thresholds. Zero disables a
// threshold.
type ThresholdConfig struct {
	Cyclomatic int `koanf:"cyclomatic" toml:"cyclomatic" json:"cyclomatic"`
	Cognitive  int `koanf:"cognitive" toml:"cognitive" json:"cognitive"`
	Nesting    int `koanf:"nesting" toml:"nesting" json:"nesting"`
}

// ExcludeConfig defines file exclusion patterns.
type ExcludeConfig struct {
	Patterns   []string `koanf:"patterns" toml:"patterns" json:"patterns"`
	Extensions []string `koanf:"extensions" toml:"extensions" json:"extensions"`
	Dirs       []string `koanf:"dirs" toml:"dirs" json:"dirs"`
	Gitignore  bool     `koanf:"gitignore" toml:"gitignore" json:"gitignore"`
}

// CacheConfig controls caching behavior.
type CacheConfig struct {
	Enabled bool   `koanf:"enabled" toml:"enabled" json:"enabled"`
	Dir     string `koanf:"dir" toml:"dir" json:"dir"`
	TTL     int    `koanf:"ttl" toml:"ttl" json:"ttl"` // TTL in hours
}

// OutputConfig controls output formatting.
type OutputConfig struct {
	Format string `koanf:"format" toml:"format" json:"format"`
	Color  bool   `koanf:"color" toml:"color" json:"color"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			Workers:     0,
			MaxFileSize: 1 << 20,
			Preproc:     true,
		},
		Thresholds: ThresholdConfig{
			Cyclomatic: 10,
			Cognitive:  15,
			Nesting:    4,
		},
		Exclude: ExcludeConfig{
			Patterns: []string{
				"*.min.js",
				"*.pb.go",
				"*_generated.go",
			},
			Extensions: []string{},
			Dirs: []string{
				"vendor",
				"node_modules",
				".git",
				".funcspace",
				"dist",
				"build",
				"target",
				"__pycache__",
			},
			Gitignore: true,
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     ".funcspace/cache",
			TTL:     24,
		},
		Output: OutputConfig{
			Format: "text",
			Color:  true,
		},
	}
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	case ".json":
		return json.Parser()
	default:
		return toml.Parser()
	}
}

func loadKoanf(path string) (*koanf.Koanf, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return k, nil
}

// Load loads configuration from a file. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	k, err := loadKoanf(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// SearchPaths returns the config file locations LoadOrDefault tries, in
// order.
func SearchPaths() []string {
	names := []string{
		"funcspace.toml",
		"funcspace.yaml",
		"funcspace.yml",
		"funcspace.json",
		".funcspace.toml",
		".funcspace.yaml",
		".funcspace.yml",
		".funcspace.json",
	}
	var paths []string
	for _, dir := range []string{".", ".funcspace"} {
		for _, name := range names {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	return paths
}

// Find returns the first existing config file of SearchPaths, or "".
func Find() string {
	for _, path := range SearchPaths() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// LoadOrDefault loads path, or the first config file found in the standard
// locations when path is empty. It returns the defaults when no file
// exists. The returned source is the file that was loaded, or "".
func LoadOrDefault(path string) (*Config, string, error) {
	if path == "" {
		path = Find()
	}
	if path == "" {
		return DefaultConfig(), "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// Validate checks values the schema cannot express.
func (c *Config) Validate() error {
	var errs []error
	if c.Analysis.Workers < 0 {
		errs = append(errs, fmt.Errorf("%w: analysis.workers must not be negative", ErrInvalid))
	}
	if c.Analysis.MaxFileSize < 0 {
		errs = append(errs, fmt.Errorf("%w: analysis.max_file_size must not be negative", ErrInvalid))
	}
	for _, name := range c.Analysis.Languages {
		if _, err := lang.FromName(name); err != nil {
			errs = append(errs, fmt.Errorf("%w: language %q: %w", ErrInvalid, name, err))
		}
	}
	if c.Thresholds.Cyclomatic < 0 || c.Thresholds.Cognitive < 0 || c.Thresholds.Nesting < 0 {
		errs = append(errs, fmt.Errorf("%w: thresholds must not be negative", ErrInvalid))
	}
	if c.Cache.TTL < 0 {
		errs = append(errs, fmt.Errorf("%w: cache.ttl must not be negative", ErrInvalid))
	}
	if !slices.Contains(Formats, c.Output.Format) {
		errs = append(errs, fmt.Errorf("%w: output.format %q is not one of %s", ErrInvalid,
			c.Output.Format, strings.Join(Formats, ", ")))
	}
	return errors.Join(errs...)
}

// LanguageFilter returns the configured languages, or nil for all.
func (c *Config) LanguageFilter() []lang.Language {
	var out []lang.Language
	for _, name := range c.Analysis.Languages {
		if l, err := lang.FromName(name); err == nil {
			out = append(out, l)
		}
	}
	return out
}

// ShouldExclude checks if a path should be excluded from analysis.
func (c *Config) ShouldExclude(path string) bool {
	// Check directory exclusions
	for _, dir := range c.Exclude.Dirs {
		if strings.Contains(path, string(filepath.Separator)+dir+string(filepath.Separator)) ||
			strings.HasPrefix(path, dir+string(filepath.Separator)) {
			return true
		}
	}

	// Check extension exclusions
	ext := filepath.Ext(path)
	for _, excludeExt := range c.Exclude.Extensions {
		if ext == excludeExt {
			return true
		}
	}

	// Check pattern exclusions
	base := filepath.Base(path)
	for _, pattern := range c.Exclude.Patterns {
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
	}

	return false
}

// TOML renders the configuration as a TOML document.
func (c *Config) TOML() ([]byte, error) {
	content, err := gotoml.Marshal(*c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return content, nil
}
