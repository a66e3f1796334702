package checker

import "github.com/panbanda/funcspace/pkg/lang"

// Rules is the declarative node-kind table of one language. Every field
// lists grammar names; named node kinds unless the field says tokens. Every
// name must exist in the linked grammar; the checker tests fail otherwise.
type Rules struct {
	Comment []string

	// Space-opening kinds.
	Function  []string
	Closure   []string
	Class     []string
	Struct    []string
	Trait     []string
	Impl      []string
	Interface []string
	Namespace []string
	// RequireBody kinds only open a space when they have a "body" field,
	// so forward declarations such as `struct foo;` are not scopes.
	RequireBody []string

	If []string
	// ElseClause kinds wrap the else branch of an if.
	ElseClause []string
	// Body kinds are transparent branch wrappers (Kotlin's
	// control_structure_body). An if inside one directly after an `else`
	// token continues the chain.
	Body []string
	// Else lists named kinds spelling the else keyword, for grammars where
	// it is not an anonymous `else` token (Swift's else, Lua's if_else).
	Else []string
	// Elif kinds are flattened else-if branches (Python elif_clause).
	Elif   []string
	Loop   []string
	Switch []string
	// Case kinds are switch arms. An arm whose first child is one of the
	// Default names (token or kind) is the default arm.
	Case    []string
	Default []string
	Catch   []string
	Ternary []string
	// Branch kinds are decision points that do not nest (Rust's `?`).
	Branch []string
	// Jump kinds break linear flow (goto).
	Jump []string

	// Binary kinds hold one operator child. Logical lists the short-circuit
	// operator tokens. LogicalIdentifier kinds hold an operator as text
	// (Scala's operator_identifier) and are compared against Logical, so
	// those Logical names need not be grammar tokens.
	Binary            []string
	Logical           []string
	LogicalIdentifier []string

	Exit []string
	// ExitToken lists tokens that are exit points in grammars without a
	// dedicated return node.
	ExitToken []string
	Statement []string

	// Params are parameter-list kinds. ParamItem kinds are parameters that
	// hang directly off the function node in grammars without a list.
	// ParamGroup kinds declare several parameters sharing one type (Go's
	// `a, b int`); each "name" field child counts once.
	Params     []string
	ParamItem  []string
	ParamGroup []string

	// NameField lists the fields holding a space's declared name, in order.
	// A "declarator" field is followed down to the innermost declarator.
	NameField []string
	// Name kinds are used when no name field is present.
	Name []string

	// Operator lists operator and keyword tokens. OperatorKind lists named
	// kinds whose text is an operator. Operand names may be kinds or tokens
	// (C#'s this, Kotlin's null).
	Operator     []string
	OperatorKind []string
	Operand      []string
}

// rules holds one table per language, keyed by lang.Language.
var rules = [...]*Rules{
	lang.Bash:       bashRules,
	lang.C:          cRules,
	lang.Cpp:        cppRules,
	lang.CSharp:     csharpRules,
	lang.Go:         goRules,
	lang.Java:       javaRules,
	lang.JavaScript: javascriptRules,
	lang.Kotlin:     kotlinRules,
	lang.Lua:        luaRules,
	lang.PHP:        phpRules,
	lang.Python:     pythonRules,
	lang.Ruby:       rubyRules,
	lang.Rust:       rustRules,
	lang.Scala:      scalaRules,
	lang.Swift:      swiftRules,
	lang.TypeScript: typescriptRules,
	lang.TSX:        tsxRules,
}

var (
	_ [len(rules) - int(lang.Count)]struct{}
	_ [int(lang.Count) - len(rules)]struct{}
)

// RulesFor returns the rule table of l.
func RulesFor(l lang.Language) *Rules {
	return rules[l]
}

// Token groups shared by the C-like grammars.
var (
	arithmeticOps = []string{"+", "-", "*", "/", "%", "++", "--"}
	comparisonOps = []string{"==", "!=", "<", ">", "<=", ">="}
	logicalOps    = []string{"&&", "||", "!"}
	bitwiseOps    = []string{"&", "|", "^", "~", "<<", ">>"}
	assignOps     = []string{"=", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<=", ">>="}
	controlWords  = []string{"if", "else", "for", "while", "do", "switch", "case", "default", "return", "break", "continue"}

	cLikeOps = list(arithmeticOps, comparisonOps, logicalOps, bitwiseOps, assignOps, []string{"?", "."})
)

func list(groups ...[]string) []string {
	var n int
	for _, g := range groups {
		n += len(g)
	}
	out := make([]string, 0, n)
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// extend returns a copy of base with the non-empty fields of ext appended.
func extend(base *Rules, ext Rules) *Rules {
	r := *base
	r.Comment = list(base.Comment, ext.Comment)
	r.Function = list(base.Function, ext.Function)
	r.Closure = list(base.Closure, ext.Closure)
	r.Class = list(base.Class, ext.Class)
	r.Struct = list(base.Struct, ext.Struct)
	r.Trait = list(base.Trait, ext.Trait)
	r.Impl = list(base.Impl, ext.Impl)
	r.Interface = list(base.Interface, ext.Interface)
	r.Namespace = list(base.Namespace, ext.Namespace)
	r.RequireBody = list(base.RequireBody, ext.RequireBody)
	r.If = list(base.If, ext.If)
	r.ElseClause = list(base.ElseClause, ext.ElseClause)
	r.Body = list(base.Body, ext.Body)
	r.Else = list(base.Else, ext.Else)
	r.Elif = list(base.Elif, ext.Elif)
	r.Loop = list(base.Loop, ext.Loop)
	r.Switch = list(base.Switch, ext.Switch)
	r.Case = list(base.Case, ext.Case)
	r.Default = list(base.Default, ext.Default)
	r.Catch = list(base.Catch, ext.Catch)
	r.Ternary = list(base.Ternary, ext.Ternary)
	r.Branch = list(base.Branch, ext.Branch)
	r.Jump = list(base.Jump, ext.Jump)
	r.Binary = list(base.Binary, ext.Binary)
	r.Logical = list(base.Logical, ext.Logical)
	r.LogicalIdentifier = list(base.LogicalIdentifier, ext.LogicalIdentifier)
	r.Exit = list(base.Exit, ext.Exit)
	r.ExitToken = list(base.ExitToken, ext.ExitToken)
	r.Statement = list(base.Statement, ext.Statement)
	r.Params = list(base.Params, ext.Params)
	r.ParamItem = list(base.ParamItem, ext.ParamItem)
	r.ParamGroup = list(base.ParamGroup, ext.ParamGroup)
	r.NameField = list(base.NameField, ext.NameField)
	r.Name = list(base.Name, ext.Name)
	r.Operator = list(base.Operator, ext.Operator)
	r.OperatorKind = list(base.OperatorKind, ext.OperatorKind)
	r.Operand = list(base.Operand, ext.Operand)
	return &r
}
