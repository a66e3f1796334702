// Package checker classifies syntax nodes.
//
// A Checker answers semantic questions about a node ("is this a loop", "is
// this an else-if continuation") by comparing the node's grammar symbol id
// against per-language kind sets compiled from a Rules table. It is the only
// place in the module that knows the shape of any concrete grammar.
package checker

import (
	"sync"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/panbanda/funcspace/pkg/grammar"
	"github.com/panbanda/funcspace/pkg/lang"
)

// Checker holds the compiled kind sets of one language. It is immutable and
// safe for concurrent use.
type Checker struct {
	binding *grammar.Binding

	comment     grammar.KindSet
	function    grammar.KindSet
	closure     grammar.KindSet
	class       grammar.KindSet
	structure   grammar.KindSet
	trait       grammar.KindSet
	impl        grammar.KindSet
	iface       grammar.KindSet
	namespace   grammar.KindSet
	requireBody grammar.KindSet

	ifs        grammar.KindSet
	elseClause grammar.KindSet
	body       grammar.KindSet
	elseToken  grammar.KindSet
	elif       grammar.KindSet
	loop       grammar.KindSet
	switches   grammar.KindSet
	arm        grammar.KindSet
	defaults   grammar.KindSet
	catch      grammar.KindSet
	ternary    grammar.KindSet
	branch     grammar.KindSet
	jump       grammar.KindSet

	binary       grammar.KindSet
	logical      grammar.KindSet
	logicalIdent grammar.KindSet
	logicalNames map[string]struct{}

	exit      grammar.KindSet
	statement grammar.KindSet
	params     grammar.KindSet
	paramItem  grammar.KindSet
	paramGroup grammar.KindSet
	names      grammar.KindSet
	nameField []string

	operator     grammar.KindSet
	operatorKind grammar.KindSet
	operand      grammar.KindSet
}

var checkers [lang.Count]struct {
	once sync.Once
	c    *Checker
}

// For returns the checker of l, compiling it on first use.
func For(l lang.Language) *Checker {
	slot := &checkers[l]
	slot.once.Do(func() {
		slot.c = Compile(grammar.For(l), rules[l])
	})
	return slot.c
}

// Compile resolves a rules table against a grammar binding.
func Compile(b *grammar.Binding, r *Rules) *Checker {
	both := func(names []string) grammar.KindSet {
		return b.Kinds(names...).Union(b.Tokens(names...))
	}

	c := &Checker{
		binding:     b,
		comment:     b.Kinds(r.Comment...),
		function:    b.Kinds(r.Function...),
		closure:     b.Kinds(r.Closure...),
		class:       b.Kinds(r.Class...),
		structure:   b.Kinds(r.Struct...),
		trait:       b.Kinds(r.Trait...),
		impl:        b.Kinds(r.Impl...),
		iface:       b.Kinds(r.Interface...),
		namespace:   b.Kinds(r.Namespace...),
		requireBody: b.Kinds(r.RequireBody...),

		ifs:        b.Kinds(r.If...),
		elseClause: b.Kinds(r.ElseClause...),
		body:       b.Kinds(r.Body...),
		elseToken:  b.Tokens("else").Union(b.Kinds(r.Else...)),
		elif:       b.Kinds(r.Elif...),
		loop:       b.Kinds(r.Loop...),
		switches:   b.Kinds(r.Switch...),
		arm:        b.Kinds(r.Case...),
		defaults:   both(r.Default),
		catch:      b.Kinds(r.Catch...),
		ternary:    b.Kinds(r.Ternary...),
		branch:     b.Kinds(r.Branch...),
		jump:       b.Kinds(r.Jump...),

		binary:       b.Kinds(r.Binary...),
		logical:      b.Tokens(r.Logical...),
		logicalIdent: b.Kinds(r.LogicalIdentifier...),
		logicalNames: make(map[string]struct{}, len(r.Logical)),

		exit:      b.Kinds(r.Exit...).Union(b.Tokens(r.ExitToken...)),
		statement: b.Kinds(r.Statement...),
		params:     b.Kinds(r.Params...),
		paramItem:  b.Kinds(r.ParamItem...),
		paramGroup: b.Kinds(r.ParamGroup...),
		names:      b.Kinds(r.Name...),
		nameField:  r.NameField,

		operator:     b.Tokens(r.Operator...),
		operatorKind: b.Kinds(r.OperatorKind...),
		operand:      b.KindsOrTokens(r.Operand...),
	}
	for _, op := range r.Logical {
		c.logicalNames[op] = struct{}{}
	}
	return c
}

// Lang returns the language the checker was compiled for.
func (c *Checker) Lang() lang.Language { return c.binding.Lang() }

// Binding returns the grammar binding the checker was compiled against.
func (c *Checker) Binding() *grammar.Binding { return c.binding }

// IsComment reports whether n is a comment.
func (c *Checker) IsComment(n *sitter.Node) bool { return c.comment.Has(n) }

// IsFunc reports whether n is a named function or method definition.
func (c *Checker) IsFunc(n *sitter.Node) bool { return c.function.Has(n) }

// IsClosure reports whether n is an anonymous function.
func (c *Checker) IsClosure(n *sitter.Node) bool { return c.closure.Has(n) }

// IsClass reports whether n opens a class-like scope.
func (c *Checker) IsClass(n *sitter.Node) bool { return c.class.Has(n) && c.hasBody(n) }

// IsStruct reports whether n defines a struct, union or enum with a body.
func (c *Checker) IsStruct(n *sitter.Node) bool { return c.structure.Has(n) && c.hasBody(n) }

// IsTrait reports whether n defines a trait.
func (c *Checker) IsTrait(n *sitter.Node) bool { return c.trait.Has(n) }

// IsImpl reports whether n is an implementation block.
func (c *Checker) IsImpl(n *sitter.Node) bool { return c.impl.Has(n) }

// IsInterface reports whether n defines an interface or protocol.
func (c *Checker) IsInterface(n *sitter.Node) bool { return c.iface.Has(n) }

// IsNamespace reports whether n opens a namespace or module scope.
func (c *Checker) IsNamespace(n *sitter.Node) bool { return c.namespace.Has(n) && c.hasBody(n) }

func (c *Checker) hasBody(n *sitter.Node) bool {
	return !c.requireBody.Has(n) || n.ChildByFieldName("body") != nil
}

// SpaceKind returns the kind of space n opens, if any.
func (c *Checker) SpaceKind(n *sitter.Node) (SpaceKind, bool) {
	switch {
	case c.IsFunc(n):
		return SpaceFunction, true
	case c.IsClosure(n):
		return SpaceClosure, true
	case c.IsClass(n):
		return SpaceClass, true
	case c.IsStruct(n):
		return SpaceStruct, true
	case c.IsTrait(n):
		return SpaceTrait, true
	case c.IsImpl(n):
		return SpaceImpl, true
	case c.IsInterface(n):
		return SpaceInterface, true
	case c.IsNamespace(n):
		return SpaceNamespace, true
	}
	return SpaceUnknown, false
}

// IsIf reports whether n is a conditional statement or expression.
func (c *Checker) IsIf(n *sitter.Node) bool { return c.ifs.Has(n) }

// IsElseIf reports whether n is an if that continues the decision chain of
// its parent if: the parent is itself an if and n sits in the parent's else
// branch, either right after the `else` keyword or as the only statement of
// the grammar's else clause. An if nested in the consequence of another if
// is not a continuation.
func (c *Checker) IsElseIf(n *sitter.Node) bool {
	if !c.ifs.Has(n) {
		return false
	}
	cur, parent := n, n.Parent()
	if parent != nil && (c.elseClause.Has(parent) || c.body.Has(parent)) && parent.NamedChildCount() == 1 {
		cur, parent = parent, parent.Parent()
	}
	if parent == nil || !c.ifs.Has(parent) {
		return false
	}
	if c.elseClause.Has(cur) {
		return true
	}
	return c.elseToken.Has(cur.PrevSibling())
}

// IsElse reports whether n is the else keyword belonging to a conditional.
func (c *Checker) IsElse(n *sitter.Node) bool {
	if !c.elseToken.Has(n) {
		return false
	}
	p := n.Parent()
	return c.ifs.Has(p) || c.elseClause.Has(p)
}

// IsElif reports whether n is a flattened else-if branch.
func (c *Checker) IsElif(n *sitter.Node) bool { return c.elif.Has(n) }

// IsLoop reports whether n is a loop header.
func (c *Checker) IsLoop(n *sitter.Node) bool { return c.loop.Has(n) }

// IsSwitch reports whether n is a multi-way branch (switch, match, when).
func (c *Checker) IsSwitch(n *sitter.Node) bool { return c.switches.Has(n) }

// IsCase reports whether n is a non-default switch arm.
func (c *Checker) IsCase(n *sitter.Node) bool {
	return c.arm.Has(n) && !c.IsDefault(n)
}

// IsDefault reports whether n is the default arm of a switch.
func (c *Checker) IsDefault(n *sitter.Node) bool {
	if !c.arm.Has(n) || n.ChildCount() == 0 {
		return false
	}
	return c.defaults.Has(n.Child(0))
}

// IsCatch reports whether n is an exception handler clause.
func (c *Checker) IsCatch(n *sitter.Node) bool { return c.catch.Has(n) }

// IsTernary reports whether n is a conditional expression.
func (c *Checker) IsTernary(n *sitter.Node) bool { return c.ternary.Has(n) }

// IsBranch reports whether n is a decision point that does not nest.
func (c *Checker) IsBranch(n *sitter.Node) bool { return c.branch.Has(n) }

// IsJump reports whether n is an unstructured jump.
func (c *Checker) IsJump(n *sitter.Node) bool { return c.jump.Has(n) }

// IsDecision reports whether n is a decision point other than a logical
// operator.
func (c *Checker) IsDecision(n *sitter.Node) bool {
	return c.ifs.Has(n) || c.elif.Has(n) || c.loop.Has(n) || c.IsCase(n) ||
		c.catch.Has(n) || c.ternary.Has(n) || c.branch.Has(n)
}

// IsNesting reports whether n increases structural nesting for the nodes
// below it. Else-if continuations do not.
func (c *Checker) IsNesting(n *sitter.Node) bool {
	switch {
	case c.ifs.Has(n):
		return !c.IsElseIf(n)
	case c.loop.Has(n), c.switches.Has(n), c.catch.Has(n), c.ternary.Has(n):
		return true
	}
	return false
}

// LogicalOperator returns the short-circuit operator of a binary node.
func (c *Checker) LogicalOperator(n *sitter.Node, src []byte) (string, bool) {
	if !c.binary.Has(n) {
		return "", false
	}
	for i := range int(n.ChildCount()) {
		child := n.Child(i)
		if c.logical.Has(child) {
			return child.Type(), true
		}
		if c.logicalIdent.Has(child) {
			text := nodeText(child, src)
			if _, ok := c.logicalNames[text]; ok {
				return text, true
			}
		}
	}
	return "", false
}

// IsExit reports whether n is an exit point of the enclosing function.
func (c *Checker) IsExit(n *sitter.Node) bool { return c.exit.Has(n) }

// IsStatement reports whether n is a statement.
func (c *Checker) IsStatement(n *sitter.Node) bool { return c.statement.Has(n) }

// IsOperator reports whether n is a Halstead operator.
func (c *Checker) IsOperator(n *sitter.Node) bool {
	return c.operator.Has(n) || c.operatorKind.Has(n)
}

// OperatorText returns the operator spelling of n.
func (c *Checker) OperatorText(n *sitter.Node, src []byte) string {
	if c.operatorKind.Has(n) {
		return nodeText(n, src)
	}
	return n.Type()
}

// IsOperand reports whether n is a Halstead operand.
func (c *Checker) IsOperand(n *sitter.Node) bool { return c.operand.Has(n) }

func nodeText(n *sitter.Node, src []byte) string {
	start, end := n.StartByte(), n.EndByte()
	if start > end || end > uint32(len(src)) {
		return ""
	}
	return string(src[start:end])
}
