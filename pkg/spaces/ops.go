package spaces

import (
	"github.com/panbanda/funcspace/pkg/checker"
	"github.com/panbanda/funcspace/pkg/metrics"
	"github.com/panbanda/funcspace/pkg/parser"
)

// Ops is the operator and operand view of a space.
type Ops struct {
	Name      string            `json:"name"`
	Kind      checker.SpaceKind `json:"kind"`
	StartLine uint32            `json:"start_line"`
	EndLine   uint32            `json:"end_line"`
	// Operators and Operands are distinct, in order of first occurrence,
	// across the space and every nested space.
	Operators []string `json:"operators"`
	Operands  []string `json:"operands"`
	// Tokens are the space's own occurrences in source order.
	Tokens []metrics.Token `json:"tokens"`
	Spaces []*Ops          `json:"spaces"`
}

// ExtractOps extracts the space tree of p and returns its operator and
// operand view.
func ExtractOps(p *parser.Parser) (*Ops, error) {
	space, err := Extract(p)
	if err != nil {
		return nil, err
	}
	return OpsOf(space), nil
}

// OpsOf converts an extracted space tree to its operator and operand view.
func OpsOf(s *FuncSpace) *Ops {
	ops := &Ops{
		Name:      s.Name,
		Kind:      s.Kind,
		StartLine: s.StartLine,
		EndLine:   s.EndLine,
		Tokens:    append([]metrics.Token(nil), s.Tokens()...),
	}
	for _, child := range s.Spaces {
		ops.Spaces = append(ops.Spaces, OpsOf(child))
	}

	operators := newOrderedSet()
	operands := newOrderedSet()
	s.Walk(func(space *FuncSpace, _ int) bool {
		for _, t := range space.Tokens() {
			if t.Role == metrics.Operator {
				operators.add(t.Text)
			} else {
				operands.add(t.Text)
			}
		}
		return true
	})
	ops.Operators = operators.items
	ops.Operands = operands.items
	return ops
}

type orderedSet struct {
	seen  map[string]struct{}
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{}), items: []string{}}
}

func (s *orderedSet) add(v string) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}
