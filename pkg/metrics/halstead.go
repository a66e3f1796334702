package metrics

import (
	"fmt"
	"math"
)

// Role tells operators from operands.
type Role uint8

const (
	Operator Role = iota
	Operand
)

// String returns "operator" or "operand".
func (r Role) String() string {
	if r == Operator {
		return "operator"
	}
	return "operand"
}

// MarshalText implements encoding.TextMarshaler.
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Role) UnmarshalText(text []byte) error {
	switch string(text) {
	case "operator":
		*r = Operator
	case "operand":
		*r = Operand
	default:
		return fmt.Errorf("unknown token role %q", text)
	}
	return nil
}

// Token is one operator or operand occurrence.
type Token struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// HalsteadCounter collects the operator and operand occurrences of a space
// in source order.
type HalsteadCounter struct {
	Tokens []Token
}

// Observe records v.Node if it is an operator or operand. Operands with
// children (string literals, for instance) are recorded whole and consume
// their subtree. The space's own declared name is not an operand.
func (h *HalsteadCounter) Observe(v *Visit) (consumed bool) {
	n := v.Node
	if n.IsMissing() {
		return false
	}
	switch {
	case v.Checker.IsOperator(n):
		h.Tokens = append(h.Tokens, Token{Role: Operator, Text: v.Checker.OperatorText(n, v.Source)})
		return false
	case v.Checker.IsOperand(n):
		if !v.InName {
			h.Tokens = append(h.Tokens, Token{Role: Operand, Text: nodeText(n, v.Source)})
		}
		return n.ChildCount() > 0
	}
	return false
}

// Clone returns a copy that does not share storage with h.
func (h HalsteadCounter) Clone() HalsteadCounter {
	return HalsteadCounter{Tokens: append([]Token(nil), h.Tokens...)}
}

// Merge appends a nested space's tokens.
func (h *HalsteadCounter) Merge(o *HalsteadCounter) {
	h.Tokens = append(h.Tokens, o.Tokens...)
}

// Halstead represents Halstead software science metrics.
type Halstead struct {
	OperatorsUnique uint32  `json:"operators_unique"` // n1: distinct operators
	OperandsUnique  uint32  `json:"operands_unique"`  // n2: distinct operands
	OperatorsTotal  uint32  `json:"operators_total"`  // N1: total operators
	OperandsTotal   uint32  `json:"operands_total"`   // N2: total operands
	Vocabulary      uint32  `json:"vocabulary"`       // n = n1 + n2
	Length          uint32  `json:"length"`           // N = N1 + N2
	EstimatedLength float64 `json:"estimated_length"` // n1*log2(n1) + n2*log2(n2)
	PurityRatio     float64 `json:"purity_ratio"`     // estimated length / N
	Volume          float64 `json:"volume"`           // V = N * log2(n)
	Difficulty      float64 `json:"difficulty"`       // D = (n1/2) * (N2/n2)
	Level           float64 `json:"level"`            // L = 1/D
	Effort          float64 `json:"effort"`           // E = D * V
	Time            float64 `json:"time"`             // T = E / 18 (seconds)
	Bugs            float64 `json:"bugs"`             // B = E^(2/3) / 3000
}

// NewHalstead computes Halstead metrics from a token sequence.
func NewHalstead(tokens []Token) Halstead {
	operators := make(map[string]struct{})
	operands := make(map[string]struct{})
	var operatorsTotal, operandsTotal uint32
	for _, t := range tokens {
		if t.Role == Operator {
			operatorsTotal++
			operators[t.Text] = struct{}{}
		} else {
			operandsTotal++
			operands[t.Text] = struct{}{}
		}
	}
	return NewHalsteadFromCounts(uint32(len(operators)), uint32(len(operands)), operatorsTotal, operandsTotal)
}

// NewHalsteadFromCounts computes Halstead metrics from base counts.
func NewHalsteadFromCounts(operatorsUnique, operandsUnique, operatorsTotal, operandsTotal uint32) Halstead {
	h := Halstead{
		OperatorsUnique: operatorsUnique,
		OperandsUnique:  operandsUnique,
		OperatorsTotal:  operatorsTotal,
		OperandsTotal:   operandsTotal,
	}
	h.calculateDerived()
	return h
}

func (h *Halstead) calculateDerived() {
	h.Vocabulary = h.OperatorsUnique + h.OperandsUnique
	h.Length = h.OperatorsTotal + h.OperandsTotal

	h.EstimatedLength = float64(h.OperatorsUnique)*log2(float64(h.OperatorsUnique)) +
		float64(h.OperandsUnique)*log2(float64(h.OperandsUnique))
	if h.Length > 0 {
		h.PurityRatio = h.EstimatedLength / float64(h.Length)
	}

	// A vocabulary of one carries no information: log2(1) is 0.
	if h.Vocabulary > 1 {
		h.Volume = float64(h.Length) * log2(float64(h.Vocabulary))
	}

	if h.OperandsUnique > 0 {
		h.Difficulty = (float64(h.OperatorsUnique) / 2.0) *
			(float64(h.OperandsTotal) / float64(h.OperandsUnique))
	}
	if h.Difficulty > 0 {
		h.Level = 1 / h.Difficulty
	}

	h.Effort = h.Volume * h.Difficulty
	// 18 mental discriminations per second
	h.Time = h.Effort / 18.0
	h.Bugs = pow(h.Effort, 2.0/3.0) / 3000.0
}

func log2(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Log2(x)
}

func pow(x, y float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Pow(x, y)
}
