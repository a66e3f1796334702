package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panbanda/funcspace/internal/testutil"
	"github.com/panbanda/funcspace/internal/vcs"
	"github.com/panbanda/funcspace/pkg/config"
	"github.com/panbanda/funcspace/pkg/lang"
)

func relPaths(t *testing.T, root string, files []string) []string {
	t.Helper()
	out := make([]string, 0, len(files))
	for _, f := range files {
		rel, err := filepath.Rel(root, f)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	sort.Strings(out)
	return out
}

func TestNewScanner(t *testing.T) {
	// With nil config
	s := NewScanner(nil)
	if s == nil {
		t.Fatal("NewScanner(nil) returned nil")
	}
	if s.config == nil {
		t.Error("scanner.config should not be nil when passing nil")
	}

	// With explicit config
	cfg := config.DefaultConfig()
	s = NewScanner(cfg)
	if s.config != cfg {
		t.Error("scanner.config should be the provided config")
	}
}

func TestScanDir(t *testing.T) {
	tmpDir := t.TempDir()
	testutil.CreateFileTree(t, tmpDir, map[string]string{
		"main.go":          "package main\n",
		"lib.go":           "package lib\n",
		"util/helper.go":   "package util\n",
		"util/helper.py":   "# python\n",
		"internal/core.rs": "fn main() {}\n",
		"README.md":        "# readme\n",
		"Makefile":         "all:\n",
	})

	s := NewScanner(nil)
	result, err := s.ScanDir(tmpDir)
	if err != nil {
		t.Fatalf("ScanDir() error: %v", err)
	}

	assert.Equal(t, []string{
		"internal/core.rs",
		"lib.go",
		"main.go",
		"util/helper.go",
		"util/helper.py",
	}, relPaths(t, tmpDir, result))
}

func TestScanDirExcludesDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	testutil.CreateFileTree(t, tmpDir, map[string]string{
		"vendor/file.go":          "package x\n",
		"node_modules/pkg/a.js":   "var a;\n",
		"src/__pycache__/m.py":    "x = 1\n",
		"main.go":                 "package main\n",
		"src/vendored/keep_me.go": "package vendored\n",
	})

	s := NewScanner(nil)
	result, err := s.ScanDir(tmpDir)
	if err != nil {
		t.Fatalf("ScanDir() error: %v", err)
	}

	assert.Equal(t, []string{"main.go", "src/vendored/keep_me.go"}, relPaths(t, tmpDir, result))
}

func TestScanDirExcludesPatterns(t *testing.T) {
	tmpDir := t.TempDir()
	testutil.CreateFileTree(t, tmpDir, map[string]string{
		"main.go":            "package main\n",
		"app.min.js":         "var a;\n",
		"api/service.pb.go":  "package api\n",
		"api/service.go":     "package api\n",
		"model_generated.go": "package model\n",
	})

	s := NewScanner(nil)
	result, err := s.ScanDir(tmpDir)
	if err != nil {
		t.Fatalf("ScanDir() error: %v", err)
	}

	assert.Equal(t, []string{"api/service.go", "main.go"}, relPaths(t, tmpDir, result))
}

func TestScanDirExcludesExtensions(t *testing.T) {
	tmpDir := t.TempDir()
	testutil.CreateFileTree(t, tmpDir, map[string]string{
		"main.go":   "package main\n",
		"script.js": "var a;\n",
	})

	cfg := config.DefaultConfig()
	cfg.Exclude.Extensions = []string{".js"}

	result, err := NewScanner(cfg).ScanDir(tmpDir)
	if err != nil {
		t.Fatalf("ScanDir() error: %v", err)
	}

	if len(result) != 1 {
		t.Errorf("ScanDir() found %d files, want 1", len(result))
	}
}

func TestScanDirLanguageFilter(t *testing.T) {
	tmpDir := t.TempDir()
	testutil.CreateFileTree(t, tmpDir, map[string]string{
		"main.go":  "package main\n",
		"tool.py":  "x = 1\n",
		"lib.rs":   "fn f() {}\n",
		"index.ts": "let a = 1;\n",
	})

	cfg := config.DefaultConfig()
	cfg.Analysis.Languages = []string{"python", "rust"}

	result, err := NewScanner(cfg).ScanDir(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"lib.rs", "tool.py"}, relPaths(t, tmpDir, result))
}

func TestScanDirWithGitignore(t *testing.T) {
	tmpDir := t.TempDir()
	testutil.CreateFileTree(t, tmpDir, map[string]string{
		".gitignore":        "skipme\n*.gen.go\n",
		"main.go":           "package main\n",
		"skipme/skip.go":    "package skipme\n",
		"src/app.go":        "package src\n",
		"src/types.gen.go":  "package src\n",
		"src/.gitignore":    "local.py\n",
		"src/local.py":      "x = 1\n",
		"src/sub/remote.py": "x = 2\n",
	})
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, ".git"), 0755))

	cfg := config.DefaultConfig()
	cfg.Exclude.Gitignore = true

	result, err := NewScanner(cfg).ScanDir(tmpDir)
	if err != nil {
		t.Fatalf("ScanDir() error: %v", err)
	}

	assert.Equal(t, []string{"main.go", "src/app.go", "src/sub/remote.py"}, relPaths(t, tmpDir, result))
}

func TestScanDirGitignoreFromSubdirectory(t *testing.T) {
	tmpDir := t.TempDir()
	testutil.CreateFileTree(t, tmpDir, map[string]string{
		".gitignore":        "/src/skipme\n",
		"src/app.go":        "package src\n",
		"src/skipme/x.go":   "package skipme\n",
		"other/skipme/y.go": "package skipme\n",
	})
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, ".git"), 0755))

	src := filepath.Join(tmpDir, "src")
	result, err := NewScanner(nil).ScanDir(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"app.go"}, relPaths(t, src, result))
}

func TestScanDirDisabledGitignore(t *testing.T) {
	tmpDir := t.TempDir()
	testutil.CreateFileTree(t, tmpDir, map[string]string{
		".gitignore":     "skipme\n",
		"main.go":        "package main\n",
		"skipme/skip.go": "package skipme\n",
	})
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, ".git"), 0755))

	cfg := config.DefaultConfig()
	cfg.Exclude.Gitignore = false

	result, err := NewScanner(cfg).ScanDir(tmpDir)
	if err != nil {
		t.Fatalf("ScanDir() error: %v", err)
	}
	if len(result) != 2 {
		t.Errorf("ScanDir() found %d files, want 2 with gitignore disabled", len(result))
	}
}

func TestScanDirEmptyDirectory(t *testing.T) {
	result, err := NewScanner(nil).ScanDir(t.TempDir())
	if err != nil {
		t.Fatalf("ScanDir() error: %v", err)
	}
	if len(result) != 0 {
		t.Errorf("ScanDir() on empty dir found %d files, want 0", len(result))
	}
}

func TestScanFile(t *testing.T) {
	tmpDir := t.TempDir()
	testutil.CreateFileTree(t, tmpDir, map[string]string{
		"main.go":    "package main\n",
		"notes.txt":  "notes\n",
		"app.min.js": "var a;\n",
	})

	tests := []struct {
		name string
		want bool
	}{
		{"main.go", true},
		{"notes.txt", false},
		{"app.min.js", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewScanner(nil).ScanFile(filepath.Join(tmpDir, tt.name))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	got, err := NewScanner(nil).ScanFile(tmpDir)
	require.NoError(t, err)
	assert.False(t, got, "directories are not files")
}

func TestScanFileNonExistent(t *testing.T) {
	_, err := NewScanner(nil).ScanFile("/nonexistent/file.go")
	if err == nil {
		t.Error("ScanFile() should return error for non-existent file")
	}
}

func TestScanPaths(t *testing.T) {
	tmpDir := t.TempDir()
	testutil.CreateFileTree(t, tmpDir, map[string]string{
		"a/one.go":     "package a\n",
		"a/two.py":     "x = 1\n",
		"b/app.min.js": "var a;\n",
		"b/readme.md":  "# b\n",
	})

	s := NewScanner(nil)
	result, err := s.ScanPaths([]string{
		filepath.Join(tmpDir, "a"),
		filepath.Join(tmpDir, "b", "app.min.js"),
		filepath.Join(tmpDir, "b", "readme.md"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a/one.go", "a/two.py", "b/app.min.js"}, relPaths(t, tmpDir, result))

	_, err = s.ScanPaths([]string{filepath.Join(tmpDir, "missing")})
	assert.Error(t, err)
}

func TestScanTree(t *testing.T) {
	entries := []vcs.TreeEntry{
		{Path: "main.go", Size: 100},
		{Path: "vendor/dep/dep.go", Size: 100},
		{Path: "pkg/big.go", Size: 5000},
		{Path: "pkg/small.rs", Size: 10},
		{Path: "web/app.min.js", Size: 10},
		{Path: "docs/guide.md", Size: 10},
	}

	files := NewScanner(nil).ScanTree(entries, 1000)
	assert.Equal(t, []string{"main.go", "pkg/small.rs"}, files)

	files = NewScanner(nil).ScanTree(entries, 0)
	assert.Equal(t, []string{"main.go", "pkg/big.go", "pkg/small.rs"}, files)
}

func TestGroupByLanguage(t *testing.T) {
	files := []string{"a.go", "b.go", "c.py", "d.rs", "e.txt"}

	groups := NewScanner(nil).GroupByLanguage(files)

	assert.Equal(t, []string{"a.go", "b.go"}, groups[lang.Go])
	assert.Equal(t, []string{"c.py"}, groups[lang.Python])
	assert.Equal(t, []string{"d.rs"}, groups[lang.Rust])
	assert.Len(t, groups, 3)

	if len(NewScanner(nil).GroupByLanguage(nil)) != 0 {
		t.Error("GroupByLanguage(nil) should return an empty map")
	}
}

func TestIsWithinRoot(t *testing.T) {
	tests := []struct {
		name string
		path string
		root string
		want bool
	}{
		{"same directory", "/home/user/project", "/home/user/project", true},
		{"subdirectory", "/home/user/project/src/main.go", "/home/user/project", true},
		{"parent directory", "/home/user", "/home/user/project", false},
		{"sibling with prefix", "/home/user/project2/main.go", "/home/user/project", false},
		{"relative escape", "/home/user/project/../other/x.go", "/home/user/project", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isWithinRoot(tt.path, tt.root); got != tt.want {
				t.Errorf("isWithinRoot(%q, %q) = %v, want %v", tt.path, tt.root, got, tt.want)
			}
		})
	}
}

func TestFindGitRoot(t *testing.T) {
	tmpDir := t.TempDir()
	if result := findGitRoot(tmpDir); result != "" && result == tmpDir {
		t.Errorf("findGitRoot() without .git should not return %q", tmpDir)
	}

	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, ".git"), 0755))
	subDir := filepath.Join(tmpDir, "a", "b")
	require.NoError(t, os.MkdirAll(subDir, 0755))

	if result := findGitRoot(subDir); result != tmpDir {
		t.Errorf("findGitRoot() from subdir should return %q, got %q", tmpDir, result)
	}
}

func TestScanDirWithUnresolvableSymlink(t *testing.T) {
	tmpDir := t.TempDir()

	symlinkPath := filepath.Join(tmpDir, "dangling.go")
	if err := os.Symlink("/nonexistent/path/file.go", symlinkPath); err != nil {
		t.Skip("Symlinks not supported on this system")
	}
	testutil.CreateFileTree(t, tmpDir, map[string]string{"real.go": "package main\n"})

	result, err := NewScanner(nil).ScanDir(tmpDir)
	if err != nil {
		t.Fatalf("ScanDir() error: %v", err)
	}
	if len(result) != 1 {
		t.Errorf("ScanDir() should find 1 file (skipping dangling symlink), got %d", len(result))
	}
}

func TestScanDirSkipsSymlinkOutsideRoot(t *testing.T) {
	outside := t.TempDir()
	testutil.CreateFileTree(t, outside, map[string]string{"secret.go": "package secret\n"})

	tmpDir := t.TempDir()
	testutil.CreateFileTree(t, tmpDir, map[string]string{"main.go": "package main\n"})
	if err := os.Symlink(filepath.Join(outside, "secret.go"), filepath.Join(tmpDir, "link.go")); err != nil {
		t.Skip("Symlinks not supported on this system")
	}

	result, err := NewScanner(nil).ScanDir(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"main.go"}, relPaths(t, tmpDir, result))
}
