// Package metrics implements the per-space metric algorithms.
//
// Every metric observes the nodes of its space during the single traversal
// driven by the spaces package, using only checker predicates. Observed
// state lives in an Accumulator (own-only values). Cumulative values are
// obtained by merging accumulators bottom-up; CodeMetrics is the derived,
// read-only view of either.
package metrics

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/panbanda/funcspace/pkg/checker"
)

// Visit is the traversal context of one node inside its nearest enclosing
// space.
type Visit struct {
	Node    *sitter.Node
	Checker *checker.Checker
	Source  []byte
	// Nesting is the structural nesting depth of Node within its space.
	Nesting uint32
	// InName is true for nodes inside the space's own declared name.
	InName bool
}

// Accumulator holds the own-only metric state of one space. It is mutated
// only while the traversal visits the space's own nodes.
type Accumulator struct {
	Cyclomatic Cyclomatic
	Cognitive  Cognitive
	Nesting    Nesting
	Halstead   HalsteadCounter
	Lines      *Lines
	Counts     Counts
}

// NewAccumulator returns an accumulator for a space covering rows
// [startRow, endRow]. Empty spaces (empty is true) cover no rows.
func NewAccumulator(startRow, endRow uint32, empty bool) *Accumulator {
	return &Accumulator{
		Cyclomatic: NewCyclomatic(),
		Lines:      NewLines(startRow, endRow, empty),
	}
}

// Observe feeds one node to every metric. It returns whether the node's
// subtree has been consumed by the token-level metrics (a comment or a
// literal operand), in which case its children must be observed with
// tokens set to false.
func (a *Accumulator) Observe(v *Visit, tokens bool) (consumed bool) {
	a.Cyclomatic.Observe(v)
	a.Cognitive.Observe(v)
	a.Nesting.Observe(v)
	a.Counts.Observe(v)
	a.Lines.ObserveStatement(v)
	if !tokens {
		return true
	}
	if a.Lines.Observe(v) {
		return true
	}
	return a.Halstead.Observe(v)
}

// Clone returns a deep copy, used as the seed of a cumulative view.
func (a *Accumulator) Clone() *Accumulator {
	c := *a
	c.Halstead = a.Halstead.Clone()
	c.Lines = a.Lines.Clone()
	return &c
}

// Merge folds a nested space's cumulative accumulator into a.
func (a *Accumulator) Merge(o *Accumulator) {
	a.Cyclomatic.Merge(o.Cyclomatic)
	a.Cognitive.Merge(o.Cognitive)
	a.Nesting.Merge(o.Nesting)
	a.Halstead.Merge(&o.Halstead)
	a.Lines.Merge(o.Lines)
	a.Counts.Merge(o.Counts)
}

// CodeMetrics is the derived view of an accumulator.
type CodeMetrics struct {
	Cyclomatic uint32               `json:"cyclomatic"`
	Cognitive  uint32               `json:"cognitive"`
	Halstead   Halstead             `json:"halstead"`
	Loc        Loc                  `json:"loc"`
	Statements uint32               `json:"statements"`
	MaxNesting uint32               `json:"max_nesting"`
	Nom        Nom                  `json:"nom"`
	Nargs      Nargs                `json:"nargs"`
	Nexits     uint32               `json:"nexits"`
	MI         MaintainabilityIndex `json:"mi"`
}

// Snapshot derives the metric values held by a.
func (a *Accumulator) Snapshot() CodeMetrics {
	m := CodeMetrics{
		Cyclomatic: a.Cyclomatic.Value,
		Cognitive:  a.Cognitive.Value,
		Halstead:   NewHalstead(a.Halstead.Tokens),
		Loc:        a.Lines.Loc(),
		Statements: a.Counts.Statements,
		MaxNesting: a.Nesting.Max,
		Nom:        a.Counts.Nom(),
		Nargs:      a.Counts.Nargs(),
		Nexits:     a.Counts.Exits,
	}
	m.MI = NewMaintainabilityIndex(m.Halstead.Volume, m.Cyclomatic, m.Loc.SLOC, m.Loc.CLOC)
	return m
}
