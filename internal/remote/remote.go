// Package remote resolves and clones git repositories named on the command
// line so they can be analyzed like local trees.
package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Source represents a remote repository to analyze.
type Source struct {
	URL      string // normalized git URL
	Ref      string // branch, tag, or SHA (empty = default branch)
	CloneDir string // temp directory after clone
}

// Parse detects if a path is a remote reference.
// Returns nil if path exists on filesystem (local path takes precedence).
func Parse(path string) (*Source, error) {
	if _, err := os.Stat(path); err == nil {
		return nil, nil
	}

	// SSH URLs contain '@' before the host, so only a suffix after the
	// last '@' that follows the path is a ref.
	ref := ""
	if idx := strings.LastIndex(path, "@"); idx != -1 && idx > strings.LastIndex(path, "/") {
		ref = path[idx+1:]
		path = path[:idx]
	}

	switch {
	case strings.HasPrefix(path, "https://"), strings.HasPrefix(path, "http://"),
		strings.HasPrefix(path, "ssh://"), strings.HasPrefix(path, "git@"):
		return &Source{URL: path, Ref: ref}, nil
	case isHostPath(path):
		return &Source{URL: "https://" + path, Ref: ref}, nil
	case isGitHubShorthand(path):
		return &Source{URL: "https://github.com/" + path, Ref: ref}, nil
	}
	return nil, nil
}

// isHostPath reports whether path looks like host/owner/repo.
func isHostPath(path string) bool {
	parts := strings.Split(path, "/")
	if len(parts) < 3 || parts[1] == "" || parts[2] == "" {
		return false
	}
	host := parts[0]
	return strings.Contains(host, ".") && !strings.HasPrefix(host, ".")
}

// isGitHubShorthand returns true if path matches owner/repo pattern.
func isGitHubShorthand(path string) bool {
	slashIdx := strings.Index(path, "/")
	if slashIdx == -1 {
		return false
	}
	if strings.Count(path, "/") != 1 {
		return false
	}
	// No dots before the slash (would indicate a domain)
	if strings.Contains(path[:slashIdx], ".") {
		return false
	}
	return slashIdx > 0 && slashIdx < len(path)-1
}

// Clone clones the repository into a new temporary directory and checks out
// Ref. Progress messages from the server go to progress, which may be nil.
// A shallow clone fetches only the tip of the ref; it cannot check out an
// arbitrary commit hash.
func (s *Source) Clone(ctx context.Context, progress io.Writer, shallow bool) error {
	dir, err := os.MkdirTemp("", "funcspace-remote-*")
	if err != nil {
		return err
	}
	s.CloneDir = dir

	if err := s.clone(ctx, progress, shallow); err != nil {
		s.Cleanup()
		return fmt.Errorf("clone %s: %w", s.URL, err)
	}
	return nil
}

func (s *Source) clone(ctx context.Context, progress io.Writer, shallow bool) error {
	opts := &git.CloneOptions{URL: s.URL, Progress: progress}
	if shallow {
		opts.Depth = 1
	}

	if s.Ref == "" {
		_, err := git.PlainCloneContext(ctx, s.CloneDir, false, opts)
		return err
	}

	if plumbing.IsHash(s.Ref) {
		opts.Depth = 0
		repo, err := git.PlainCloneContext(ctx, s.CloneDir, false, opts)
		if err != nil {
			return err
		}
		wt, err := repo.Worktree()
		if err != nil {
			return err
		}
		return wt.Checkout(&git.CheckoutOptions{Hash: plumbing.NewHash(s.Ref)})
	}

	opts.SingleBranch = true
	var lastErr error
	for _, name := range []plumbing.ReferenceName{
		plumbing.NewBranchReferenceName(s.Ref),
		plumbing.NewTagReferenceName(s.Ref),
	} {
		opts.ReferenceName = name
		_, err := git.PlainCloneContext(ctx, s.CloneDir, false, opts)
		if err == nil {
			return nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return err
		}
		// A failed attempt can leave a partial repository behind.
		if err := resetDir(s.CloneDir); err != nil {
			return err
		}
	}
	return errors.Join(fmt.Errorf("ref %q not found", s.Ref), lastErr)
}

func resetDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o700)
}

// Cleanup removes the clone directory.
func (s *Source) Cleanup() {
	if s.CloneDir != "" {
		_ = os.RemoveAll(s.CloneDir)
		s.CloneDir = ""
	}
}
