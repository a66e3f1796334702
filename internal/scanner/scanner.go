// Package scanner finds the source files funcspace can analyze.
package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"github.com/panbanda/funcspace/internal/vcs"
	"github.com/panbanda/funcspace/pkg/config"
	"github.com/panbanda/funcspace/pkg/lang"
)

// Scanner finds source files in a directory or a git tree.
type Scanner struct {
	config    *config.Config
	languages []lang.Language
	matchers  []gitignore.Matcher
}

// NewScanner creates a new file scanner.
func NewScanner(cfg *config.Config) *Scanner {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Scanner{config: cfg, languages: cfg.LanguageFilter()}
}

// findGitRoot finds the root of the git repository by looking for .git directory.
// Returns empty string if not in a git repository.
func findGitRoot(start string) string {
	dir := start
	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// loadExcludePatterns loads exclusion patterns from both config and
// .gitignore files. Config patterns use gitignore syntax.
func (s *Scanner) loadExcludePatterns(root string, gitignores bool) {
	s.matchers = nil

	var patterns []gitignore.Pattern
	for _, pattern := range s.config.Exclude.Patterns {
		patterns = append(patterns, gitignore.ParsePattern(pattern, nil))
	}

	if gitignores && s.config.Exclude.Gitignore {
		if gitRoot := findGitRoot(root); gitRoot != "" {
			if gitPatterns, err := gitignore.ReadPatterns(osfs.New(gitRoot), nil); err == nil {
				// Gitignore patterns are relative to the repository root, so
				// match them against paths rebased onto it.
				if rel, err := filepath.Rel(gitRoot, root); err == nil && rel != "." {
					s.matchers = append(s.matchers, rebased{
						prefix:  strings.Split(rel, string(filepath.Separator)),
						matcher: gitignore.NewMatcher(gitPatterns),
					})
				} else {
					patterns = append(patterns, gitPatterns...)
				}
			}
		}
	}

	if len(patterns) > 0 {
		s.matchers = append(s.matchers, gitignore.NewMatcher(patterns))
	}
}

// rebased matches paths relative to a subdirectory of the matcher's root.
type rebased struct {
	prefix  []string
	matcher gitignore.Matcher
}

func (r rebased) Match(path []string, isDir bool) bool {
	return r.matcher.Match(append(slices.Clone(r.prefix), path...), isDir)
}

// isExcluded checks if a path relative to the scan root matches any
// exclusion pattern or excluded directory.
func (s *Scanner) isExcluded(relPath string, isDir bool) bool {
	parts := strings.Split(relPath, string(filepath.Separator))
	if isDir && slices.Contains(s.config.Exclude.Dirs, parts[len(parts)-1]) {
		return true
	}
	for _, m := range s.matchers {
		if m.Match(parts, isDir) {
			return true
		}
	}
	return false
}

// Detect returns the language path is analyzed as, if it is a supported
// and selected one.
func (s *Scanner) Detect(path string) (lang.Language, bool) {
	l, ok := lang.FromPath(path)
	if !ok {
		return 0, false
	}
	if len(s.languages) > 0 && !slices.Contains(s.languages, l) {
		return 0, false
	}
	return l, true
}

func (s *Scanner) accept(relPath string) bool {
	if s.isExcluded(relPath, false) || s.config.ShouldExclude(relPath) {
		return false
	}
	_, ok := s.Detect(relPath)
	return ok
}

// ScanDir recursively scans a directory for source files.
// Symlinks resolving outside root are skipped.
func (s *Scanner) ScanDir(root string) ([]string, error) {
	files := make([]string, 0, 1024)

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	absRoot, err = filepath.EvalSymlinks(absRoot)
	if err != nil {
		return nil, err
	}

	s.loadExcludePatterns(absRoot, true)

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}

		relPath, _ := filepath.Rel(root, path)
		if relPath == "." {
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 {
			resolved, err := filepath.EvalSymlinks(path)
			if err != nil || !isWithinRoot(resolved, absRoot) {
				return nil
			}
		}

		if d.IsDir() {
			if s.isExcluded(relPath, true) {
				return filepath.SkipDir
			}
			return nil
		}

		if s.accept(relPath) {
			files = append(files, path)
		}
		return nil
	})

	return files, walkErr
}

// ScanTree selects the source files of a git tree. Paths stay relative to
// the repository root. Gitignore files are not consulted since a tree only
// holds tracked files.
func (s *Scanner) ScanTree(entries []vcs.TreeEntry, maxSize int64) []string {
	s.loadExcludePatterns("", false)

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if maxSize > 0 && e.Size > maxSize {
			continue
		}
		relPath := filepath.FromSlash(e.Path)
		if s.excludedDir(relPath) {
			continue
		}
		if s.accept(relPath) {
			files = append(files, e.Path)
		}
	}
	return files
}

// excludedDir reports whether any parent directory of relPath is excluded.
func (s *Scanner) excludedDir(relPath string) bool {
	dir := filepath.Dir(relPath)
	for dir != "." && dir != string(filepath.Separator) {
		if s.isExcluded(dir, true) {
			return true
		}
		dir = filepath.Dir(dir)
	}
	return false
}

// isWithinRoot checks if a path is contained within the root directory.
func isWithinRoot(path, root string) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	absPath = filepath.Clean(absPath)
	root = filepath.Clean(root)

	// Add separator to prevent "/root2" matching "/root"
	return absPath == root || strings.HasPrefix(absPath, root+string(filepath.Separator))
}

// ScanFile checks if a single file should be analyzed.
func (s *Scanner) ScanFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	if info.IsDir() {
		return false, nil
	}

	if len(s.matchers) == 0 {
		s.loadExcludePatterns(filepath.Dir(path), false)
	}
	return s.accept(filepath.Base(path)), nil
}

// ScanPaths expands a mix of files and directories into the files to
// analyze. Files named explicitly are kept when their language is
// supported, even if a pattern would exclude them.
func (s *Scanner) ScanPaths(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			found, err := s.ScanDir(path)
			if err != nil {
				return nil, err
			}
			files = append(files, found...)
			continue
		}
		if _, ok := s.Detect(path); ok {
			files = append(files, path)
		}
	}
	return files, nil
}

// GroupByLanguage groups files by their detected language.
func (s *Scanner) GroupByLanguage(files []string) map[lang.Language][]string {
	groups := make(map[lang.Language][]string)
	for _, f := range files {
		if l, ok := s.Detect(f); ok {
			groups[l] = append(groups[l], f)
		}
	}
	return groups
}
