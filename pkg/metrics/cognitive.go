package metrics

// Cognitive is the cognitive complexity of a space.
//
// Structural constructs (if, loops, switch, catch, ternary) add 1 plus the
// current nesting depth and nest the nodes below them. An else-if
// continuation adds nothing and does not nest: the `else` keyword before it
// already scored. Flat constructs (else, elif, goto) add 1. A sequence of
// identical logical operators adds 1 regardless of depth. Nested spaces
// start again at depth 0.
type Cognitive struct {
	Value uint32
}

// Observe scores v.Node.
func (c *Cognitive) Observe(v *Visit) {
	chk, n := v.Checker, v.Node
	switch {
	case chk.IsNesting(n):
		c.Value += 1 + v.Nesting
	case chk.IsElseIf(n):
	case chk.IsElse(n), chk.IsElif(n), chk.IsJump(n):
		c.Value++
	}

	op, ok := chk.LogicalOperator(n, v.Source)
	if !ok {
		return
	}
	if parentOp, ok := chk.LogicalOperator(n.Parent(), v.Source); ok && parentOp == op {
		return
	}
	c.Value++
}

// Merge adds a nested space's score.
func (c *Cognitive) Merge(o Cognitive) {
	c.Value += o.Value
}

// Nesting tracks the deepest structural nesting reached in a space.
type Nesting struct {
	Max uint32
}

// Observe records the depth reached below v.Node.
func (n *Nesting) Observe(v *Visit) {
	if v.Checker.IsNesting(v.Node) && v.Nesting+1 > n.Max {
		n.Max = v.Nesting + 1
	}
}

// Merge keeps the deepest of the two.
func (n *Nesting) Merge(o Nesting) {
	if o.Max > n.Max {
		n.Max = o.Max
	}
}
