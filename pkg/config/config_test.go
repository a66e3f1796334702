package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panbanda/funcspace/pkg/lang"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig() returned nil")
	}

	// Check analysis defaults
	if !cfg.Analysis.Preproc {
		t.Error("Analysis.Preproc should be true by default")
	}
	if cfg.Analysis.MaxFileSize != 1<<20 {
		t.Errorf("Analysis.MaxFileSize = %d, want %d", cfg.Analysis.MaxFileSize, 1<<20)
	}

	// Check threshold defaults
	if cfg.Thresholds.Cyclomatic != 10 {
		t.Errorf("Thresholds.Cyclomatic = %d, want 10", cfg.Thresholds.Cyclomatic)
	}
	if cfg.Thresholds.Cognitive != 15 {
		t.Errorf("Thresholds.Cognitive = %d, want 15", cfg.Thresholds.Cognitive)
	}

	// Check exclude defaults
	if !cfg.Exclude.Gitignore {
		t.Error("Exclude.Gitignore should be true by default")
	}
	if len(cfg.Exclude.Dirs) == 0 {
		t.Error("Exclude.Dirs should have default values")
	}

	// Check cache defaults
	if !cfg.Cache.Enabled {
		t.Error("Cache.Enabled should be true by default")
	}
	if cfg.Cache.TTL != 24 {
		t.Errorf("Cache.TTL = %d, want 24", cfg.Cache.TTL)
	}

	// Check output defaults
	if cfg.Output.Format != "text" {
		t.Errorf("Output.Format = %s, want text", cfg.Output.Format)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "funcspace.toml", `
[analysis]
workers = 4
preproc = false
languages = ["rust", "python"]

[thresholds]
cyclomatic = 20

[output]
format = "json"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Analysis.Workers)
	assert.False(t, cfg.Analysis.Preproc)
	assert.Equal(t, 20, cfg.Thresholds.Cyclomatic)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, []lang.Language{lang.Rust, lang.Python}, cfg.LanguageFilter())

	// Unset keys keep their defaults.
	assert.Equal(t, 15, cfg.Thresholds.Cognitive)
	assert.Equal(t, 24, cfg.Cache.TTL)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "funcspace.yaml", `
cache:
  enabled: false
  ttl: 48
exclude:
  extensions: [".js"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	if cfg.Cache.Enabled {
		t.Error("Cache.Enabled should be false")
	}
	if cfg.Cache.TTL != 48 {
		t.Errorf("Cache.TTL = %d, want 48", cfg.Cache.TTL)
	}
	assert.Equal(t, []string{".js"}, cfg.Exclude.Extensions)
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "funcspace.json", `{"thresholds": {"nesting": 2}, "output": {"color": false}}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Thresholds.Nesting)
	assert.False(t, cfg.Output.Color)
}

func TestLoadNonExistent(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Error("Load() should fail for a missing file")
	}
}

func TestLoadInvalid(t *testing.T) {
	path := writeFile(t, t.TempDir(), "funcspace.toml", "this is [not valid toml")

	_, err := Load(path)
	if err == nil {
		t.Error("Load() should fail for invalid TOML")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeFile(t, t.TempDir(), "funcspace.toml", `
[analysis]
languages = ["cobol"]

[output]
format = "html"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))
	assert.Contains(t, err.Error(), "cobol")
	assert.Contains(t, err.Error(), "html")
}

func TestLoadOrDefault(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, src, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Empty(t, src)
	assert.Equal(t, DefaultConfig(), cfg)

	writeFile(t, dir, filepath.Join(".funcspace", "funcspace.toml"), "[cache]\nttl = 1\n")
	cfg, src, err = LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(".funcspace", "funcspace.toml"), src)
	assert.Equal(t, 1, cfg.Cache.TTL)

	// Files in the working directory take precedence.
	writeFile(t, dir, "funcspace.yaml", "cache:\n  ttl: 2\n")
	cfg, src, err = LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, "funcspace.yaml", src)
	assert.Equal(t, 2, cfg.Cache.TTL)

	explicit := writeFile(t, t.TempDir(), "custom.json", `{"cache": {"ttl": 3}}`)
	cfg, src, err = LoadOrDefault(explicit)
	require.NoError(t, err)
	assert.Equal(t, explicit, src)
	assert.Equal(t, 3, cfg.Cache.TTL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{"defaults", func(*Config) {}, true},
		{"negative workers", func(c *Config) { c.Analysis.Workers = -1 }, false},
		{"negative max size", func(c *Config) { c.Analysis.MaxFileSize = -1 }, false},
		{"known language by display name", func(c *Config) { c.Analysis.Languages = []string{"C++"} }, true},
		{"unknown language", func(c *Config) { c.Analysis.Languages = []string{"cobol"} }, false},
		{"negative threshold", func(c *Config) { c.Thresholds.Nesting = -2 }, false},
		{"negative ttl", func(c *Config) { c.Cache.TTL = -1 }, false},
		{"markdown format", func(c *Config) { c.Output.Format = "markdown" }, true},
		{"unknown format", func(c *Config) { c.Output.Format = "xml" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalid)
			}
		})
	}
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()

	good := writeFile(t, dir, "good.toml", "[thresholds]\ncyclomatic = 12\n")
	assert.NoError(t, ValidateFile(good))

	unknownKey := writeFile(t, dir, "unknown.toml", "[thresholds]\nhalstead = 3\n")
	err := ValidateFile(unknownKey)
	assert.ErrorIs(t, err, ErrInvalid)

	wrongType := writeFile(t, dir, "type.yaml", "cache:\n  enabled: \"yes\"\n")
	err = ValidateFile(wrongType)
	assert.ErrorIs(t, err, ErrInvalid)

	badFormat := writeFile(t, dir, "format.json", `{"output": {"format": "pdf"}}`)
	err = ValidateFile(badFormat)
	assert.ErrorIs(t, err, ErrInvalid)

	badLang := writeFile(t, dir, "lang.toml", "[analysis]\nlanguages = [\"cobol\"]\n")
	err = ValidateFile(badLang)
	assert.ErrorIs(t, err, ErrInvalid)

	assert.Error(t, ValidateFile(filepath.Join(dir, "missing.toml")))
}

func TestShouldExclude(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Exclude.Extensions = []string{".js"}

	tests := []struct {
		path    string
		exclude bool
	}{
		{"src/main.go", false},
		{"vendor/lib/lib.go", true},
		{"web/node_modules/pkg/index.ts", true},
		{"app.min.js", true},
		{"api/service.pb.go", true},
		{"scripts/build.js", true},
		{"src/lib.rs", false},
		{"target/debug/build.rs", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			path := filepath.FromSlash(tt.path)
			if got := cfg.ShouldExclude(path); got != tt.exclude {
				t.Errorf("ShouldExclude(%q) = %v, want %v", tt.path, got, tt.exclude)
			}
		})
	}
}

func TestTOMLRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Thresholds.Cognitive = 30
	cfg.Analysis.Languages = []string{"go"}

	content, err := cfg.TOML()
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(content), "cognitive = 30"))

	path := writeFile(t, t.TempDir(), "funcspace.toml", string(content))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Thresholds, loaded.Thresholds)
	assert.Equal(t, cfg.Analysis, loaded.Analysis)
	assert.Equal(t, cfg.Cache, loaded.Cache)
	assert.Equal(t, cfg.Exclude.Dirs, loaded.Exclude.Dirs)
	assert.NoError(t, ValidateFile(path))
}
