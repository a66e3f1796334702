package metrics

// Cyclomatic is McCabe's cyclomatic complexity: 1 plus one per decision
// point. Every condition of an if / else-if chain is a decision point, so a
// chain of N conditions contributes N. Short-circuit logical operators count
// once each. Switch statements count their non-default arms, not
// themselves.
type Cyclomatic struct {
	Value uint32
}

// NewCyclomatic returns the base complexity of a space.
func NewCyclomatic() Cyclomatic {
	return Cyclomatic{Value: 1}
}

// Observe counts v.Node if it is a decision point.
func (c *Cyclomatic) Observe(v *Visit) {
	if v.Checker.IsDecision(v.Node) {
		c.Value++
		return
	}
	if _, ok := v.Checker.LogicalOperator(v.Node, v.Source); ok {
		c.Value++
	}
}

// Merge adds a nested space's complexity. The cumulative complexity of a
// space is the sum of the own complexities of every space in its subtree.
func (c *Cyclomatic) Merge(o Cyclomatic) {
	c.Value += o.Value
}
