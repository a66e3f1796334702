package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokens(spec ...string) []Token {
	out := make([]Token, 0, len(spec))
	for _, s := range spec {
		role := Operand
		if s[0] == '!' {
			role = Operator
			s = s[1:]
		}
		out = append(out, Token{Role: role, Text: s})
	}
	return out
}

func TestNewHalstead(t *testing.T) {
	// func f() { x = 1 }: operators func ( ) { = }, operands f x 1.
	h := NewHalstead(tokens("!func", "!(", "!)", "!{", "!=", "!}", "x", "1"))

	assert.Equal(t, uint32(6), h.OperatorsUnique)
	assert.Equal(t, uint32(2), h.OperandsUnique)
	assert.Equal(t, uint32(6), h.OperatorsTotal)
	assert.Equal(t, uint32(2), h.OperandsTotal)
	assert.Equal(t, uint32(8), h.Vocabulary)
	assert.Equal(t, uint32(8), h.Length)
	assert.InDelta(t, 24.0, h.Volume, 1e-9)
	assert.InDelta(t, 3.0, h.Difficulty, 1e-9)
	assert.InDelta(t, 1.0/3.0, h.Level, 1e-9)
	assert.InDelta(t, 72.0, h.Effort, 1e-9)
	assert.InDelta(t, 4.0, h.Time, 1e-9)
	assert.InDelta(t, math.Pow(72, 2.0/3.0)/3000, h.Bugs, 1e-12)
	assert.InDelta(t, 6*math.Log2(6)+2, h.EstimatedLength, 1e-9)
}

func TestNewHalsteadDistinctByText(t *testing.T) {
	h := NewHalstead(tokens("!=", "x", "!=", "x", "!+", "y"))
	assert.Equal(t, uint32(2), h.OperatorsUnique)
	assert.Equal(t, uint32(2), h.OperandsUnique)
	assert.Equal(t, uint32(3), h.OperatorsTotal)
	assert.Equal(t, uint32(3), h.OperandsTotal)
}

func TestNewHalsteadDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Token
	}{
		{"empty", nil},
		{"single operand", tokens("x")},
		{"repeated operator", tokens("!;", "!;")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHalstead(tt.tokens)
			assert.Zero(t, h.Volume)
			assert.Zero(t, h.Effort)
			assert.Zero(t, h.Bugs)
			assert.False(t, math.IsNaN(h.PurityRatio))
			assert.False(t, math.IsInf(h.Level, 0))
		})
	}
}

func TestNewHalsteadNoOperands(t *testing.T) {
	h := NewHalstead(tokens("!(", "!)"))
	assert.Zero(t, h.Difficulty)
	assert.Zero(t, h.Level)
	assert.InDelta(t, 2.0, h.Volume, 1e-9)
}

func TestNewHalsteadFromCounts(t *testing.T) {
	h := NewHalsteadFromCounts(6, 2, 6, 2)
	assert.Equal(t, NewHalstead(tokens("!func", "!(", "!)", "!{", "!=", "!}", "x", "1")), h)
}

func TestHalsteadCounterCloneIsIndependent(t *testing.T) {
	h := HalsteadCounter{Tokens: tokens("x")}
	c := h.Clone()
	c.Merge(&HalsteadCounter{Tokens: tokens("y")})
	assert.Len(t, h.Tokens, 1)
	assert.Len(t, c.Tokens, 2)
}

func TestRoleText(t *testing.T) {
	for _, r := range []Role{Operator, Operand} {
		text, err := r.MarshalText()
		require.NoError(t, err)
		var back Role
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, r, back)
	}
	var r Role
	assert.Error(t, r.UnmarshalText([]byte("operation")))
}

func TestLinesOwnAndUnion(t *testing.T) {
	parent := NewLines(0, 9, false)
	child := NewLines(3, 5, false)
	parent.Exclude(3, 5)

	parent.code.AddRange(0, 3)
	parent.comment.Add(8)
	child.code.AddRange(3, 6)
	child.comment.Add(4)
	child.logical.Add(4)

	own := parent.Loc()
	assert.Equal(t, uint64(7), own.SLOC)
	assert.Equal(t, uint64(3), own.PLOC)
	assert.Equal(t, uint64(1), own.CLOC)
	assert.Equal(t, uint64(3), own.Blank)

	total := parent.Clone()
	total.Merge(child)
	loc := total.Loc()
	assert.Equal(t, uint64(10), loc.SLOC)
	assert.Equal(t, uint64(6), loc.PLOC)
	assert.Equal(t, uint64(2), loc.CLOC)
	assert.Equal(t, uint64(1), loc.LLOC)
	assert.Equal(t, uint64(3), loc.Blank)

	assert.Equal(t, uint64(7), parent.Loc().SLOC, "clone shares no rows")
}

func TestLinesEmpty(t *testing.T) {
	assert.Equal(t, Loc{}, NewLines(0, 0, true).Loc())
	assert.Equal(t, uint64(1), NewLines(0, 0, false).Loc().SLOC)
}

func TestCounts(t *testing.T) {
	var c Counts
	c.OpenFunction(2)
	c.OpenClosure(1)
	c.Merge(Counts{Functions: 1, FunctionArgs: 3, Statements: 4, Exits: 1})

	assert.Equal(t, Nom{Functions: 2, Closures: 1, Total: 3}, c.Nom())
	nargs := c.Nargs()
	assert.Equal(t, uint32(5), nargs.Functions)
	assert.Equal(t, uint32(1), nargs.Closures)
	assert.Equal(t, uint32(6), nargs.Total)
	assert.InDelta(t, 2.0, nargs.Average, 1e-9)
	assert.Equal(t, uint32(4), c.Statements)

	var empty Counts
	assert.Zero(t, empty.Nargs().Average)
}

func TestMaintainabilityIndex(t *testing.T) {
	mi := NewMaintainabilityIndex(24, 1, 1, 0)
	want := 171 - 5.2*math.Log(24) - 0.23
	assert.InDelta(t, want, mi.Original, 1e-9)
	assert.InDelta(t, 171-5.2*math.Log2(24)-0.23, mi.SEI, 1e-9)
	assert.InDelta(t, want*100/171, mi.VisualStudio, 1e-9)

	trivial := NewMaintainabilityIndex(0, 1, 0, 0)
	assert.InDelta(t, 170.77, trivial.Original, 1e-9)
	assert.False(t, math.IsNaN(trivial.SEI))

	huge := NewMaintainabilityIndex(1e9, 500, 100000, 0)
	assert.Zero(t, huge.VisualStudio)
	assert.Less(t, huge.Original, 0.0)
}

func TestCyclomaticAndNestingMerge(t *testing.T) {
	c := NewCyclomatic()
	c.Merge(Cyclomatic{Value: 3})
	assert.Equal(t, uint32(4), c.Value)

	n := Nesting{Max: 2}
	n.Merge(Nesting{Max: 1})
	assert.Equal(t, uint32(2), n.Max)
	n.Merge(Nesting{Max: 5})
	assert.Equal(t, uint32(5), n.Max)

	cog := Cognitive{Value: 1}
	cog.Merge(Cognitive{Value: 2})
	assert.Equal(t, uint32(3), cog.Value)
}

func TestAccumulatorCloneAndMerge(t *testing.T) {
	parent := NewAccumulator(0, 4, false)
	parent.Halstead.Tokens = tokens("!=", "x")
	child := NewAccumulator(1, 2, false)
	child.Cyclomatic.Value = 3
	child.Halstead.Tokens = tokens("!+", "y")
	child.Counts.OpenFunction(1)

	total := parent.Clone()
	total.Merge(child)

	m := total.Snapshot()
	assert.Equal(t, uint32(4), m.Cyclomatic)
	assert.Equal(t, uint32(4), m.Halstead.Length)
	assert.Equal(t, uint32(1), m.Nom.Functions)
	assert.Equal(t, uint64(5), m.Loc.SLOC)

	own := parent.Snapshot()
	assert.Equal(t, uint32(1), own.Cyclomatic)
	assert.Equal(t, uint32(2), own.Halstead.Length)
}
