// Package vcs reads source trees out of git repositories.
package vcs

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// ErrNotRepository is returned when no git repository contains a path.
var ErrNotRepository = errors.New("not a git repository")

// Repository wraps a go-git repository.
type Repository struct {
	repo *git.Repository
	root string
}

// Open opens the repository containing path, searching parent directories
// for .git.
func Open(path string) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotRepository)
		}
		return nil, err
	}

	root, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if wt, err := repo.Worktree(); err == nil {
		root = wt.Filesystem.Root()
	}
	return &Repository{repo: repo, root: root}, nil
}

// Root returns the worktree root. Tree paths are relative to it.
func (r *Repository) Root() string {
	return r.root
}

// Tree resolves rev (a branch, tag, hash or expression such as HEAD~2) and
// returns the tree of the commit it names.
func (r *Repository) Tree(rev string) (*Tree, error) {
	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", rev, err)
	}
	commit, err := r.repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("commit %s: %w", rev, err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("tree %s: %w", rev, err)
	}
	return &Tree{tree: tree, commit: commit.Hash}, nil
}

// TreeEntry represents a file in a git tree.
type TreeEntry struct {
	Path string
	Size int64
}

// Tree is the file tree of one commit.
type Tree struct {
	tree   *object.Tree
	commit plumbing.Hash
}

// Commit returns the hash of the commit the tree belongs to.
func (t *Tree) Commit() string {
	return t.commit.String()
}

// Entries returns all files in the tree, recursively.
func (t *Tree) Entries() ([]TreeEntry, error) {
	var entries []TreeEntry
	err := t.tree.Files().ForEach(func(f *object.File) error {
		entries = append(entries, TreeEntry{Path: f.Name, Size: f.Size})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// File returns the contents of the file at path.
func (t *Tree) File(path string) ([]byte, error) {
	f, err := t.tree.File(filepath.ToSlash(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	r, err := f.Reader()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
