package spaces

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panbanda/funcspace/pkg/checker"
	"github.com/panbanda/funcspace/pkg/lang"
	"github.com/panbanda/funcspace/pkg/metrics"
	"github.com/panbanda/funcspace/pkg/parser"
)

func extract(t *testing.T, l lang.Language, src string) *FuncSpace {
	t.Helper()
	p, err := parser.New(l, []byte(src), "test"+l.Descriptor().Extensions[0], nil)
	require.NoError(t, err)
	t.Cleanup(p.Close)
	space, err := Extract(p)
	require.NoError(t, err)
	return space
}

func TestElseIfChainCountsEachCondition(t *testing.T) {
	unit := extract(t, lang.JavaScript, "if (a) { } else if (b) { }")

	assert.Equal(t, checker.SpaceUnit, unit.Kind)
	assert.Empty(t, unit.Spaces)
	assert.Equal(t, uint32(3), unit.Metrics.Cyclomatic)
	assert.Equal(t, uint32(3), unit.Own.Cyclomatic)
}

func TestElseIfChainInsideFunction(t *testing.T) {
	tests := []struct {
		name string
		lang lang.Language
		src  string
	}{
		{"c", lang.C, "void f(void) { if (a) { } else if (b) { } else if (c) { } else { } }"},
		{"go", lang.Go, "package p\nfunc f() {\n\tif a {\n\t} else if b {\n\t} else if c {\n\t} else {\n\t}\n}\n"},
		{"java", lang.Java, "class A { void f() { if (a) { } else if (b) { } else if (c) { } else { } } }"},
		{"rust", lang.Rust, "fn f() { if a { } else if b { } else if c { } else { } }"},
		{"python", lang.Python, "def f():\n    if a:\n        pass\n    elif b:\n        pass\n    elif c:\n        pass\n    else:\n        pass\n"},
		{"csharp", lang.CSharp, "class A { void f() { if (a) { } else if (b) { } else if (c) { } else { } } }"},
		{"swift", lang.Swift, "func f() {\n    if a {\n    } else if b {\n    } else if c {\n    } else {\n    }\n}\n"},
		{"lua", lang.Lua, "function f()\n  if a then x = 1 elseif b then x = 2 elseif c then x = 3 else x = 4 end\nend\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit := extract(t, tt.lang, tt.src)
			f := unit.Find("f")
			require.NotNil(t, f)
			assert.Equal(t, checker.SpaceFunction, f.Kind)
			assert.Equal(t, uint32(4), f.Own.Cyclomatic, "base plus three conditions")
			assert.Equal(t, uint32(1), f.Own.MaxNesting, "continuations do not nest")
		})
	}
}

func TestSingleAssignmentHalstead(t *testing.T) {
	unit := extract(t, lang.Go, "func f() { x = 1 }")
	require.Len(t, unit.Spaces, 1)

	f := unit.Spaces[0]
	assert.Equal(t, "f", f.Name)
	assert.Equal(t, uint32(1), f.Own.Cyclomatic)
	assert.Equal(t, uint32(3), f.Own.Halstead.Vocabulary)
	assert.Equal(t, uint32(3), f.Own.Halstead.Length)
	assert.Equal(t, uint32(1), f.Own.Halstead.OperatorsUnique)
	assert.Equal(t, uint32(2), f.Own.Halstead.OperandsUnique)
	assert.InDelta(t, 3*1.584962500721156, f.Own.Halstead.Volume, 1e-9)

	assert.Equal(t, uint32(3), unit.Metrics.Halstead.Vocabulary)
	assert.Zero(t, unit.Own.Halstead.Length)
}

func TestTypeKeywordsAreNotOperands(t *testing.T) {
	f := extract(t, lang.C, "int f(void) { x = 1; }").Find("f")
	require.NotNil(t, f)
	assert.Equal(t, uint32(3), f.Own.Halstead.Vocabulary)
	assert.Equal(t, uint32(2), f.Own.Halstead.OperandsUnique)
}

func TestSwitchArmsAreDecisions(t *testing.T) {
	tests := []struct {
		name string
		lang lang.Language
		src  string
	}{
		{"csharp", lang.CSharp, "class A { int f(int x) { switch (x) { case 1: return 1; case 2: return 2; default: return 0; } } }"},
		{"swift", lang.Swift, "func f(x: Int) -> Int {\n    switch x {\n    case 1: return 1\n    case 2: return 2\n    default: return 0\n    }\n}\n"},
		{"java", lang.Java, "class A { int f(int x) { switch (x) { case 1: return 1; case 2: return 2; default: return 0; } } }"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := extract(t, tt.lang, tt.src).Find("f")
			require.NotNil(t, f)
			assert.Equal(t, uint32(3), f.Own.Cyclomatic, "base plus two cases, default adds nothing")
			assert.Equal(t, uint32(3), f.Own.Nexits)
		})
	}
}

func TestLuaFunction(t *testing.T) {
	f := extract(t, lang.Lua, "function f(a)\n  if a then return 1 elseif b then return 2 else return 3 end\nend\n").Find("f")
	require.NotNil(t, f)
	assert.Equal(t, checker.SpaceFunction, f.Kind)
	assert.Equal(t, uint32(3), f.Own.Cyclomatic)
	assert.Equal(t, uint32(3), f.Own.Cognitive)
	assert.Equal(t, uint32(3), f.Own.Nexits)
	assert.Equal(t, uint32(1), f.Own.Nargs.Functions)
}

func TestGroupedParameters(t *testing.T) {
	f := extract(t, lang.Go, "package p\nfunc f(a, b int, c ...string) {}\n").Find("f")
	require.NotNil(t, f)
	assert.Equal(t, uint32(3), f.Own.Nargs.Functions)
}

func TestHalsteadGrowsWithStatements(t *testing.T) {
	srcs := []string{
		"def f():\n    x = 1\n",
		"def f():\n    x = 1\n    y = x + 2\n",
		"def f():\n    x = 1\n    y = x + 2\n    z = y * x - 3\n",
	}
	var prev metrics.Halstead
	for i, src := range srcs {
		f := extract(t, lang.Python, src).Find("f")
		require.NotNil(t, f)
		h := f.Own.Halstead
		if i > 0 {
			assert.GreaterOrEqual(t, h.Vocabulary, prev.Vocabulary)
			assert.Greater(t, h.Length, prev.Length)
		}
		assert.Greater(t, h.Vocabulary, uint32(1))
		assert.InDelta(t, float64(h.Length)*math.Log2(float64(h.Vocabulary)), h.Volume, 1e-9)
		prev = h
	}
}

func TestEmptySource(t *testing.T) {
	for _, l := range lang.All() {
		t.Run(l.String(), func(t *testing.T) {
			unit := extract(t, l, "")
			assert.Equal(t, checker.SpaceUnit, unit.Kind)
			assert.Empty(t, unit.Spaces)
			assert.Equal(t, uint32(1), unit.Metrics.Cyclomatic)
			assert.Equal(t, metrics.Loc{}, unit.Metrics.Loc)
			assert.Zero(t, unit.Metrics.Statements)
			assert.Zero(t, unit.Metrics.Halstead.Length)
		})
	}
}

func TestCumulativeCyclomaticIsSumOfOwn(t *testing.T) {
	tests := []struct {
		name string
		lang lang.Language
		src  string
	}{
		{"go", lang.Go, "package p\nfunc a(x int) int {\n\tif x > 0 && x < 9 {\n\t\treturn 1\n\t}\n\tg := func() {\n\t\tfor {\n\t\t}\n\t}\n\tg()\n\treturn 0\n}\nfunc b() {\n\tswitch {\n\tcase true:\n\tdefault:\n\t}\n}\n"},
		{"javascript", lang.JavaScript, "if (x) {}\nfunction a() { return y ? 1 : 2 }\nclass C { m() { while (z) { const f = () => z || w } } }\n"},
		{"python", lang.Python, "class A:\n    def m(self):\n        for i in x:\n            if i:\n                return lambda: i\n\ndef top():\n    return [y for y in x if y]\n"},
		{"rust", lang.Rust, "struct S { a: i32 }\nimpl S {\n    fn m(&self) -> Option<i32> {\n        let v = self.get()?;\n        match v { 1 => Some(1), _ => None }\n    }\n}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit := extract(t, tt.lang, tt.src)
			var sum uint32
			unit.Walk(func(s *FuncSpace, _ int) bool {
				sum += s.Own.Cyclomatic
				return true
			})
			assert.Equal(t, sum, unit.Metrics.Cyclomatic)
			assert.Greater(t, len(unit.Spaces), 0)
			assert.NoError(t, unit.Validate())
		})
	}
}

func TestSpaceContainment(t *testing.T) {
	unit := extract(t, lang.TypeScript, "namespace N {\n  export class A {\n    m(): number { return [1].map(x => x * 2)[0]; }\n  }\n  interface I { f(): void }\n}\nfunction g() {}\n")
	unit.Walk(func(s *FuncSpace, _ int) bool {
		for i, child := range s.Spaces {
			assert.GreaterOrEqual(t, child.StartByte, s.StartByte)
			assert.LessOrEqual(t, child.EndByte, s.EndByte)
			assert.LessOrEqual(t, child.StartLine, child.EndLine)
			if i > 0 {
				assert.GreaterOrEqual(t, child.StartByte, s.Spaces[i-1].EndByte)
			}
		}
		return true
	})
}

func TestValidateReportsViolations(t *testing.T) {
	parent := &FuncSpace{Name: "p", StartByte: 0, EndByte: 10}
	parent.Spaces = []*FuncSpace{{Name: "c", StartByte: 5, EndByte: 12}}
	err := parent.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvariant))

	parent.Spaces = []*FuncSpace{
		{Name: "a", StartByte: 1, EndByte: 6},
		{Name: "b", StartByte: 4, EndByte: 8},
	}
	assert.ErrorIs(t, parent.Validate(), ErrInvariant)

	parent.Spaces = []*FuncSpace{
		{Name: "a", StartByte: 1, EndByte: 4},
		{Name: "b", StartByte: 4, EndByte: 8},
	}
	assert.NoError(t, parent.Validate())
}

func TestNamesKindsAndCounts(t *testing.T) {
	unit := extract(t, lang.Python, "class A:\n    def m(self, x):\n        return lambda y: y\n")

	assert.Equal(t, "test.py", unit.Name)
	require.Len(t, unit.Spaces, 1)
	class := unit.Spaces[0]
	assert.Equal(t, "A", class.Name)
	assert.Equal(t, checker.SpaceClass, class.Kind)

	require.Len(t, class.Spaces, 1)
	m := class.Spaces[0]
	assert.Equal(t, "m", m.Name)
	assert.Equal(t, checker.SpaceFunction, m.Kind)
	assert.Equal(t, uint32(2), m.Own.Nargs.Functions)
	assert.Equal(t, uint32(1), m.Own.Nexits)

	require.Len(t, m.Spaces, 1)
	closure := m.Spaces[0]
	assert.Equal(t, checker.SpaceClosure, closure.Kind)
	assert.Equal(t, "<anonymous>", closure.DisplayName())
	assert.Equal(t, uint32(1), closure.Own.Nargs.Closures)

	assert.Equal(t, metrics.Nom{Functions: 1, Closures: 1, Total: 2}, unit.Metrics.Nom)
	assert.Equal(t, uint32(3), unit.Metrics.Nargs.Total)
}

func TestNamedClosure(t *testing.T) {
	unit := extract(t, lang.JavaScript, "const add = (a, b) => a + b;\n")
	require.Len(t, unit.Spaces, 1)
	assert.Equal(t, "add", unit.Spaces[0].Name)
	assert.Equal(t, checker.SpaceClosure, unit.Spaces[0].Kind)
	assert.Equal(t, uint32(2), unit.Spaces[0].Own.Nargs.Closures)
}

func TestCognitive(t *testing.T) {
	unit := extract(t, lang.Go, "package p\nfunc g(a, b bool) {\n\tif a {\n\t\tfor {\n\t\t\tif b && a {\n\t\t\t}\n\t\t}\n\t}\n}\nfunc h(a, b bool) {\n\tif a {\n\t} else if b {\n\t} else {\n\t}\n}\n")

	g := unit.Find("g")
	require.NotNil(t, g)
	assert.Equal(t, uint32(7), g.Own.Cognitive)
	assert.Equal(t, uint32(3), g.Own.MaxNesting)
	assert.Equal(t, uint32(5), g.Own.Cyclomatic)

	h := unit.Find("h")
	require.NotNil(t, h)
	assert.Equal(t, uint32(3), h.Own.Cognitive)
	assert.Equal(t, uint32(3), h.Own.Cyclomatic)

	assert.Equal(t, uint32(10), unit.Metrics.Cognitive)
	assert.Equal(t, uint32(3), unit.Metrics.MaxNesting)
}

func TestNestedFunctionsRestartNesting(t *testing.T) {
	unit := extract(t, lang.JavaScript, "function f() {\n  if (a) {\n    const g = () => { if (b) {} };\n  }\n}\n")
	f := unit.Find("f")
	require.NotNil(t, f)
	assert.Equal(t, uint32(1), f.Own.Cognitive)
	g := unit.Find("g")
	require.NotNil(t, g)
	assert.Equal(t, uint32(1), g.Own.Cognitive)
	assert.Equal(t, uint32(2), f.Metrics.Cognitive)
}

func TestLines(t *testing.T) {
	unit := extract(t, lang.Go, "package main\n\n// add sums.\nfunc add(a, b int) int {\n\treturn a + b\n}\n")

	add := unit.Find("add")
	require.NotNil(t, add)
	assert.Equal(t, uint32(4), add.StartLine)
	assert.Equal(t, uint32(6), add.EndLine)
	assert.Equal(t, uint64(3), add.Own.Loc.SLOC)
	assert.Equal(t, uint64(3), add.Own.Loc.PLOC)
	assert.Equal(t, uint64(1), add.Own.Loc.LLOC)

	loc := unit.Metrics.Loc
	assert.Equal(t, uint64(6), loc.SLOC)
	assert.Equal(t, uint64(4), loc.PLOC)
	assert.Equal(t, uint64(1), loc.CLOC)
	assert.Equal(t, uint64(1), loc.Blank)
	assert.Equal(t, uint64(1), loc.LLOC)

	own := unit.Own.Loc
	assert.Equal(t, uint64(3), own.SLOC)
	assert.Equal(t, uint64(1), own.Blank)
}

func TestOps(t *testing.T) {
	p, err := parser.New(lang.Go, []byte("func f() { x = 1 }"), "ops.go", nil)
	require.NoError(t, err)
	defer p.Close()

	ops, err := ExtractOps(p)
	require.NoError(t, err)
	assert.Equal(t, "ops.go", ops.Name)
	assert.Equal(t, []string{"="}, ops.Operators)
	assert.Equal(t, []string{"x", "1"}, ops.Operands)
	assert.Empty(t, ops.Tokens)

	require.Len(t, ops.Spaces, 1)
	f := ops.Spaces[0]
	assert.Equal(t, []metrics.Token{
		{Role: metrics.Operand, Text: "x"},
		{Role: metrics.Operator, Text: "="},
		{Role: metrics.Operand, Text: "1"},
	}, f.Tokens)
}

func TestStringLiteralIsOneOperand(t *testing.T) {
	unit := extract(t, lang.Python, "def f():\n    s = \"a {b} c\"\n")
	f := unit.Find("f")
	require.NotNil(t, f)
	assert.Equal(t, uint32(2), f.Own.Halstead.OperandsTotal)
}

func TestRollupIsRepeatable(t *testing.T) {
	unit := extract(t, lang.Go, "package p\nfunc a() { if x { } }\n")
	before := unit.Metrics
	unit.Rollup()
	assert.Equal(t, before, unit.Metrics)
}
