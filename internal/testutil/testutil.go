// Package testutil holds helpers shared by tests that need real files or
// git repositories on disk.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// WriteFile writes content to root/name, creating parent directories, and
// returns the full path.
func WriteFile(t testing.TB, root, name, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll(%s) error: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%s) error: %v", path, err)
	}
	return path
}

// CreateFileTree creates multiple files from a map of slash path -> content.
func CreateFileTree(t testing.TB, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		WriteFile(t, root, name, content)
	}
}

// ReadFile reads content from a file.
func ReadFile(t testing.TB, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%s) error: %v", path, err)
	}
	return string(data)
}

// InitRepo creates an empty git repository in a new temporary directory.
func InitRepo(t testing.TB) (string, *git.Repository) {
	t.Helper()
	root := t.TempDir()
	repo, err := git.PlainInit(root, false)
	if err != nil {
		t.Fatalf("PlainInit(%s) error: %v", root, err)
	}
	return root, repo
}

// CommitFile writes a file into the worktree of repo and commits it.
func CommitFile(t testing.TB, repo *git.Repository, root, name, content, msg string) {
	t.Helper()
	WriteFile(t, root, name, content)

	w, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree() error: %v", err)
	}
	if _, err := w.Add(filepath.ToSlash(name)); err != nil {
		t.Fatalf("Add(%s) error: %v", name, err)
	}
	_, err = w.Commit(msg, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	if err != nil {
		t.Fatalf("Commit(%q) error: %v", msg, err)
	}
}
