package checker

var cStatements = []string{
	"expression_statement", "return_statement", "if_statement", "for_statement",
	"while_statement", "do_statement", "switch_statement", "break_statement",
	"continue_statement", "goto_statement", "declaration", "labeled_statement",
}

var cRules = &Rules{
	Comment:     []string{"comment"},
	Function:    []string{"function_definition"},
	Struct:      []string{"struct_specifier", "union_specifier"},
	RequireBody: []string{"struct_specifier", "union_specifier"},
	If:          []string{"if_statement"},
	ElseClause:  []string{"else_clause"},
	Loop:        []string{"for_statement", "while_statement", "do_statement"},
	Switch:      []string{"switch_statement"},
	Case:        []string{"case_statement"},
	Default:     []string{"default"},
	Ternary:     []string{"conditional_expression"},
	Jump:        []string{"goto_statement"},
	Binary:      []string{"binary_expression"},
	Logical:     []string{"&&", "||"},
	Exit:        []string{"return_statement"},
	Statement:   cStatements,
	Params:      []string{"parameter_list"},
	NameField:   []string{"name", "declarator"},
	Name:        []string{"identifier", "field_identifier", "type_identifier"},
	Operator:    list(cLikeOps, controlWords, []string{"->", "goto", "sizeof"}),
	// primitive_type is left out: return types and (void) are declaration
	// syntax, not operands.
	Operand: []string{
		"identifier", "field_identifier", "type_identifier", "statement_identifier", "number_literal", "char_literal", "string_literal",
		"concatenated_string", "system_lib_string", "true", "false", "null",
	},
}

var cppRules = extend(cRules, Rules{
	Closure:     []string{"lambda_expression"},
	Class:       []string{"class_specifier"},
	Namespace:   []string{"namespace_definition"},
	RequireBody: []string{"class_specifier"},
	Loop:        []string{"for_range_loop"},
	Catch:       []string{"catch_clause"},
	Logical:     []string{"and", "or"},
	Exit:        []string{"co_return_statement"},
	Statement: []string{
		"for_range_loop", "try_statement", "throw_statement",
		"co_return_statement", "co_yield_statement",
	},
	Name: []string{
		"qualified_identifier", "destructor_name", "operator_name",
		"namespace_identifier", "template_function",
	},
	Operator: []string{
		"::", ".*", "->*", "<=>", "new", "delete", "throw", "try", "catch",
		"co_await", "co_yield", "co_return", "and", "or", "not",
	},
	Operand: []string{
		"this", "nullptr", "raw_string_literal", "namespace_identifier",
		"user_defined_literal", "auto",
	},
})
