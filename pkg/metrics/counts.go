package metrics

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Counts holds the plain counters of a space.
type Counts struct {
	Statements   uint32
	Exits        uint32
	Functions    uint32
	Closures     uint32
	FunctionArgs uint32
	ClosureArgs  uint32
}

// Observe counts statements and exit points.
func (c *Counts) Observe(v *Visit) {
	if v.Checker.IsStatement(v.Node) {
		c.Statements++
	}
	if v.Checker.IsExit(v.Node) {
		c.Exits++
	}
}

// OpenFunction records a function space and its parameter count.
func (c *Counts) OpenFunction(args int) {
	c.Functions++
	c.FunctionArgs += uint32(args)
}

// OpenClosure records a closure space and its parameter count.
func (c *Counts) OpenClosure(args int) {
	c.Closures++
	c.ClosureArgs += uint32(args)
}

// Merge adds a nested space's counters.
func (c *Counts) Merge(o Counts) {
	c.Statements += o.Statements
	c.Exits += o.Exits
	c.Functions += o.Functions
	c.Closures += o.Closures
	c.FunctionArgs += o.FunctionArgs
	c.ClosureArgs += o.ClosureArgs
}

// Nom is the number of methods: functions and closures.
type Nom struct {
	Functions uint32 `json:"functions"`
	Closures  uint32 `json:"closures"`
	Total     uint32 `json:"total"`
}

// Nom derives the number of methods.
func (c *Counts) Nom() Nom {
	return Nom{Functions: c.Functions, Closures: c.Closures, Total: c.Functions + c.Closures}
}

// Nargs is the number of declared arguments of functions and closures.
type Nargs struct {
	Functions uint32  `json:"functions"`
	Closures  uint32  `json:"closures"`
	Total     uint32  `json:"total"`
	Average   float64 `json:"average"`
}

// Nargs derives the argument counts.
func (c *Counts) Nargs() Nargs {
	n := Nargs{
		Functions: c.FunctionArgs,
		Closures:  c.ClosureArgs,
		Total:     c.FunctionArgs + c.ClosureArgs,
	}
	if methods := c.Functions + c.Closures; methods > 0 {
		n.Average = float64(n.Total) / float64(methods)
	}
	return n
}

func nodeText(n *sitter.Node, src []byte) string {
	start, end := n.StartByte(), n.EndByte()
	if start > end || end > uint32(len(src)) {
		return ""
	}
	return string(src[start:end])
}
