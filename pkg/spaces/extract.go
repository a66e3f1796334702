package spaces

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/panbanda/funcspace/pkg/checker"
	"github.com/panbanda/funcspace/pkg/metrics"
	"github.com/panbanda/funcspace/pkg/parser"
)

// state is the traversal context passed down to a node's children.
type state struct {
	space   *FuncSpace
	nesting uint32
	// tokens is false below a node consumed whole by the token metrics.
	tokens bool
	// name is the byte range of the space's declared name.
	nameStart, nameEnd uint32
}

type extractor struct {
	chk *checker.Checker
	src []byte
}

// Extract builds the space tree of p, computes own and cumulative metrics
// and validates the result. The root space is the file, named after p's
// path.
func Extract(p *parser.Parser) (*FuncSpace, error) {
	root := p.Root()
	e := &extractor{chk: p.Checker(), src: p.Source()}

	unit := e.newSpace(root, checker.SpaceUnit, len(p.Source()) == 0)
	unit.Name = p.Path()

	e.children(root, state{space: unit, tokens: true})

	unit.Rollup()
	if err := unit.Validate(); err != nil {
		return nil, err
	}
	return unit, nil
}

func (e *extractor) newSpace(n *sitter.Node, kind checker.SpaceKind, empty bool) *FuncSpace {
	start, end := metrics.Rows(n)
	return &FuncSpace{
		Kind:      kind,
		StartLine: start + 1,
		EndLine:   end + 1,
		StartByte: n.StartByte(),
		EndByte:   n.EndByte(),
		own:       metrics.NewAccumulator(start, end, empty),
	}
}

func (e *extractor) children(n *sitter.Node, st state) {
	for i := range int(n.ChildCount()) {
		e.visit(n.Child(i), st)
	}
}

func (e *extractor) visit(n *sitter.Node, st state) {
	if kind, ok := e.chk.SpaceKind(n); ok {
		e.open(n, kind, st.space)
		return
	}

	v := metrics.Visit{
		Node:    n,
		Checker: e.chk,
		Source:  e.src,
		Nesting: st.nesting,
		InName:  st.nameEnd > st.nameStart && n.StartByte() >= st.nameStart && n.EndByte() <= st.nameEnd,
	}
	next := st
	if st.space.own.Observe(&v, st.tokens) {
		next.tokens = false
	}
	if e.chk.IsNesting(n) {
		next.nesting++
	}
	e.children(n, next)
}

// open extracts the space opened by n and attaches it to parent. The rows
// it spans stop being part of the parent's own span.
func (e *extractor) open(n *sitter.Node, kind checker.SpaceKind, parent *FuncSpace) {
	space := e.newSpace(n, kind, false)
	space.Name = e.chk.SpaceName(n, e.src)

	switch kind {
	case checker.SpaceFunction:
		space.own.Counts.OpenFunction(e.chk.ParamCount(n))
	case checker.SpaceClosure:
		space.own.Counts.OpenClosure(e.chk.ParamCount(n))
	}

	st := state{space: space, tokens: true}
	if name := e.chk.NameNode(n); name != nil {
		st.nameStart, st.nameEnd = name.StartByte(), name.EndByte()
	}

	// The opening node itself belongs to its own space.
	space.own.Observe(&metrics.Visit{Node: n, Checker: e.chk, Source: e.src}, true)
	e.children(n, st)

	parent.own.Lines.Exclude(space.StartLine-1, space.EndLine-1)
	parent.Spaces = append(parent.Spaces, space)
}
