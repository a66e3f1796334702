// Package spaces extracts the tree of function spaces of a parsed file and
// computes their metrics.
//
// A space is a function, closure, class or similar scope. The file itself is
// the root space (kind unit). Every node of the tree is attributed to its
// nearest enclosing space; metrics observed there are that space's own
// values. Cumulative values, which include every nested space, are computed
// afterwards by Rollup.
package spaces

import (
	"errors"
	"fmt"

	"github.com/panbanda/funcspace/pkg/checker"
	"github.com/panbanda/funcspace/pkg/metrics"
)

// ErrInvariant is returned when an extracted tree has a child space that is
// not contained in its parent or overlaps a sibling.
var ErrInvariant = errors.New("space invariant violated")

// FuncSpace is one scope of a source file.
type FuncSpace struct {
	Name      string            `json:"name"`
	Kind      checker.SpaceKind `json:"kind"`
	StartLine uint32            `json:"start_line"`
	EndLine   uint32            `json:"end_line"`
	StartByte uint32            `json:"start_byte"`
	EndByte   uint32            `json:"end_byte"`
	// Spaces are the directly nested spaces in source order.
	Spaces []*FuncSpace `json:"spaces"`
	// Metrics includes every nested space.
	Metrics metrics.CodeMetrics `json:"metrics"`
	// Own covers only the nodes attributed to this space.
	Own metrics.CodeMetrics `json:"own"`

	own   *metrics.Accumulator
	total *metrics.Accumulator
}

// DisplayName returns the name, or "<anonymous>" for unnamed spaces.
func (s *FuncSpace) DisplayName() string {
	if s.Name == "" {
		return "<anonymous>"
	}
	return s.Name
}

// Tokens returns the operator and operand occurrences attributed to this
// space, in source order.
func (s *FuncSpace) Tokens() []metrics.Token {
	if s.own == nil {
		return nil
	}
	return s.own.Halstead.Tokens
}

// Rollup computes the cumulative metrics of s and every nested space,
// bottom-up. Own-only values are left untouched, so Rollup may be called
// again.
func (s *FuncSpace) Rollup() {
	if s.own == nil {
		return
	}
	s.total = s.own.Clone()
	for _, child := range s.Spaces {
		child.Rollup()
		if child.total != nil {
			s.total.Merge(child.total)
		}
	}
	s.Own = s.own.Snapshot()
	s.Metrics = s.total.Snapshot()
}

// Walk calls fn for s and every nested space in depth-first source order.
// Returning false from fn skips the nested spaces of that space.
func (s *FuncSpace) Walk(fn func(space *FuncSpace, depth int) bool) {
	s.walk(fn, 0)
}

func (s *FuncSpace) walk(fn func(*FuncSpace, int) bool, depth int) {
	if !fn(s, depth) {
		return
	}
	for _, child := range s.Spaces {
		child.walk(fn, depth+1)
	}
}

// Find returns the first space named name, searching depth-first.
func (s *FuncSpace) Find(name string) *FuncSpace {
	var found *FuncSpace
	s.Walk(func(space *FuncSpace, _ int) bool {
		if found != nil {
			return false
		}
		if space.Name == name {
			found = space
			return false
		}
		return true
	})
	return found
}

// Validate checks that every nested space lies inside its parent and that
// siblings do not overlap.
func (s *FuncSpace) Validate() error {
	var prev *FuncSpace
	for _, child := range s.Spaces {
		if child.StartByte < s.StartByte || child.EndByte > s.EndByte {
			return fmt.Errorf("%w: %s %q [%d,%d) outside %s %q [%d,%d)", ErrInvariant,
				child.Kind, child.Name, child.StartByte, child.EndByte,
				s.Kind, s.Name, s.StartByte, s.EndByte)
		}
		if prev != nil && child.StartByte < prev.EndByte {
			return fmt.Errorf("%w: %s %q overlaps %s %q", ErrInvariant,
				child.Kind, child.Name, prev.Kind, prev.Name)
		}
		if err := child.Validate(); err != nil {
			return err
		}
		prev = child
	}
	return nil
}
