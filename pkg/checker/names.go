package checker

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// NameNode returns the node holding the declared name of a space-opening
// node, or nil for anonymous constructs.
func (c *Checker) NameNode(n *sitter.Node) *sitter.Node {
	if n == nil {
		return nil
	}
	for _, field := range c.nameField {
		child := n.ChildByFieldName(field)
		if child == nil {
			continue
		}
		if field == "declarator" {
			child = c.innermostDeclarator(child)
		}
		if child != nil {
			return child
		}
	}
	if c.closure.Has(n) {
		return nil
	}
	for i := range int(n.NamedChildCount()) {
		child := n.NamedChild(i)
		if c.names.Has(child) {
			return child
		}
	}
	return nil
}

// innermostDeclarator follows C-style declarator chains
// (pointer_declarator -> function_declarator -> identifier).
func (c *Checker) innermostDeclarator(d *sitter.Node) *sitter.Node {
	for d != nil {
		if c.names.Has(d) {
			return d
		}
		if next := d.ChildByFieldName("declarator"); next != nil {
			d = next
			continue
		}
		var nested *sitter.Node
		for i := range int(d.NamedChildCount()) {
			child := d.NamedChild(i)
			if c.names.Has(child) {
				return child
			}
			if nested == nil && strings.HasSuffix(child.Type(), "declarator") {
				nested = child
			}
		}
		if nested == nil {
			return nil
		}
		d = nested
	}
	return nil
}

// SpaceName returns the declared name of a space-opening node. Anonymous
// functions assigned to a named binding (`const f = () => {}`) take the
// binding's name. It returns "" when no name can be found.
func (c *Checker) SpaceName(n *sitter.Node, src []byte) string {
	if name := c.NameNode(n); name != nil {
		return nodeText(name, src)
	}
	if !c.closure.Has(n) {
		return ""
	}
	parent := n.Parent()
	if parent == nil {
		return ""
	}
	if name := parent.ChildByFieldName("name"); name != nil && name.StartByte() != n.StartByte() {
		return nodeText(name, src)
	}
	return ""
}

// ParamCount returns the number of parameters declared by a function or
// closure node.
func (c *Checker) ParamCount(n *sitter.Node) int {
	if list := c.paramList(n); list != nil {
		if !c.params.Has(list) {
			// A bare parameter, as in `x => x`.
			return 1
		}
		return c.countParams(list)
	}
	if c.paramItem.Empty() {
		return 0
	}
	count := 0
	for i := range int(n.NamedChildCount()) {
		if c.paramItem.Has(n.NamedChild(i)) {
			count++
		}
	}
	return count
}

func (c *Checker) paramList(n *sitter.Node) *sitter.Node {
	for _, field := range []string{"parameters", "parameter"} {
		if p := n.ChildByFieldName(field); p != nil {
			return p
		}
	}
	for d := n.ChildByFieldName("declarator"); d != nil; d = d.ChildByFieldName("declarator") {
		if p := d.ChildByFieldName("parameters"); p != nil {
			return p
		}
	}
	for i := range int(n.NamedChildCount()) {
		child := n.NamedChild(i)
		if c.params.Has(child) {
			return child
		}
	}
	return nil
}

func (c *Checker) countParams(list *sitter.Node) int {
	count := 0
	for i := range int(list.NamedChildCount()) {
		child := list.NamedChild(i)
		switch {
		case c.comment.Has(child):
		case c.paramGroup.Has(child):
			count += groupSize(child)
		default:
			count++
		}
	}
	return count
}

// groupSize counts the names declared by a grouped parameter. Unnamed
// parameters, as in `func(int, string)`, count once.
func groupSize(n *sitter.Node) int {
	names := 0
	for i := range int(n.ChildCount()) {
		if n.FieldNameForChild(i) == "name" {
			names++
		}
	}
	return max(names, 1)
}
