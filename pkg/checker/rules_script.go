package checker

var javascriptRules = &Rules{
	Comment:    []string{"comment", "html_comment"},
	Function:   []string{"function_declaration", "generator_function_declaration", "method_definition"},
	Closure:    []string{"function_expression", "generator_function", "arrow_function"},
	Class:      []string{"class_declaration", "class"},
	If:         []string{"if_statement"},
	ElseClause: []string{"else_clause"},
	Loop:       []string{"for_statement", "for_in_statement", "while_statement", "do_statement"},
	Switch:     []string{"switch_statement"},
	Case:       []string{"switch_case"},
	Catch:      []string{"catch_clause"},
	Ternary:    []string{"ternary_expression"},
	Binary:     []string{"binary_expression"},
	Logical:    []string{"&&", "||", "??"},
	Exit:       []string{"return_statement"},
	Statement: []string{
		"expression_statement", "lexical_declaration", "variable_declaration",
		"return_statement", "if_statement", "for_statement", "for_in_statement",
		"while_statement", "do_statement", "switch_statement", "break_statement",
		"continue_statement", "throw_statement", "try_statement", "labeled_statement",
		"debugger_statement",
	},
	Params:    []string{"formal_parameters"},
	NameField: []string{"name"},
	Name:      []string{"identifier", "property_identifier", "private_property_identifier"},
	Operator: list(cLikeOps, controlWords, []string{
		"===", "!==", "**", "**=", ">>>", ">>>=", "??", "??=", "&&=", "||=",
		"=>", "...", "typeof", "instanceof", "in", "of", "new", "delete", "void",
		"await", "yield", "throw", "try", "catch", "finally",
	}),
	OperatorKind: []string{"optional_chain"},
	Operand: []string{
		"identifier", "property_identifier", "shorthand_property_identifier",
		"shorthand_property_identifier_pattern", "private_property_identifier",
		"number", "string", "template_string", "regex", "true", "false", "null",
		"undefined", "this", "super",
	},
}

var typescriptRules = extend(javascriptRules, Rules{
	Class:     []string{"abstract_class_declaration"},
	Interface: []string{"interface_declaration"},
	Namespace: []string{"internal_module", "module"},
	Name:      []string{"type_identifier"},
	Operator:  []string{"as", "satisfies", "keyof", "is"},
	Operand:   []string{"type_identifier", "predefined_type"},
})

var tsxRules = typescriptRules

var pythonRules = &Rules{
	Comment:    []string{"comment"},
	Function:   []string{"function_definition"},
	Closure:    []string{"lambda"},
	Class:      []string{"class_definition"},
	If:         []string{"if_statement"},
	ElseClause: []string{"else_clause"},
	Elif:       []string{"elif_clause"},
	Loop:       []string{"for_statement", "while_statement", "for_in_clause"},
	Switch:     []string{"match_statement"},
	Case:       []string{"case_clause"},
	Catch:      []string{"except_clause", "except_group_clause"},
	Ternary:    []string{"conditional_expression"},
	Branch:     []string{"if_clause"},
	Binary:     []string{"boolean_operator"},
	Logical:    []string{"and", "or"},
	Exit:       []string{"return_statement"},
	Statement: []string{
		"expression_statement", "return_statement", "pass_statement", "if_statement",
		"for_statement", "while_statement", "try_statement", "with_statement",
		"raise_statement", "break_statement", "continue_statement", "import_statement",
		"import_from_statement", "assert_statement", "global_statement",
		"nonlocal_statement", "delete_statement", "match_statement",
	},
	Params:    []string{"parameters", "lambda_parameters"},
	NameField: []string{"name"},
	Name:      []string{"identifier"},
	Operator: list(arithmeticOps[:5], comparisonOps, bitwiseOps, assignOps, []string{
		"**", "//", "@", "**=", "//=", "@=", ":=", "<>", ".", "not", "in", "is",
		"and", "or", "if", "else", "elif", "for", "while", "return", "break",
		"continue", "raise", "try", "except", "finally", "with", "assert", "del",
		"yield", "await", "match", "case",
	}),
	Operand: []string{
		"identifier", "integer", "float", "string", "concatenated_string",
		"true", "false", "none", "ellipsis",
	},
}

var rubyRules = &Rules{
	Comment:    []string{"comment"},
	Function:   []string{"method", "singleton_method"},
	Closure:    []string{"block", "do_block"},
	Class:      []string{"class", "singleton_class"},
	Namespace:  []string{"module"},
	If:         []string{"if", "unless", "if_modifier", "unless_modifier"},
	ElseClause: []string{"else"},
	Elif:       []string{"elsif"},
	Loop:       []string{"while", "until", "for", "while_modifier", "until_modifier"},
	Switch:     []string{"case", "case_match"},
	Case:       []string{"when", "in_clause"},
	Catch:      []string{"rescue", "rescue_modifier"},
	Ternary:    []string{"conditional"},
	Binary:     []string{"binary"},
	Logical:    []string{"&&", "||", "and", "or"},
	Exit:       []string{"return"},
	Statement: []string{
		"assignment", "operator_assignment", "return", "yield", "break", "next",
		"redo", "retry", "if", "unless", "while", "until", "for", "case", "begin",
		"if_modifier", "unless_modifier", "while_modifier", "until_modifier",
		"rescue_modifier",
	},
	Params:    []string{"method_parameters", "lambda_parameters", "block_parameters"},
	NameField: []string{"name"},
	Name:      []string{"identifier", "constant", "scope_resolution"},
	Operator: list(arithmeticOps[:5], comparisonOps, logicalOps, bitwiseOps, assignOps, []string{
		"**", "===", "<=>", "=~", "!~", "||=", "&&=", "**=", ".", "&.", "::", "..",
		"...", "=>", "?", "and", "or", "not", "defined?", "if", "unless", "else",
		"elsif", "while", "until", "for", "in", "case", "when", "return", "break",
		"next", "redo", "retry", "yield", "begin", "rescue", "ensure",
	}),
	Operand: []string{
		"identifier", "constant", "instance_variable", "class_variable",
		"global_variable", "integer", "float", "complex", "rational", "string",
		"simple_symbol", "hash_key_symbol", "delimited_symbol", "character", "regex",
		"heredoc_body", "true", "false", "nil", "self",
	},
}

var phpRules = &Rules{
	Comment:     []string{"comment"},
	Function:    []string{"function_definition", "method_declaration"},
	Closure:     []string{"anonymous_function_creation_expression", "arrow_function"},
	Class:       []string{"class_declaration", "enum_declaration"},
	Interface:   []string{"interface_declaration"},
	Trait:       []string{"trait_declaration"},
	Namespace:   []string{"namespace_definition"},
	RequireBody: []string{"namespace_definition"},
	If:          []string{"if_statement"},
	ElseClause:  []string{"else_clause"},
	Elif:        []string{"else_if_clause"},
	Loop:        []string{"for_statement", "foreach_statement", "while_statement", "do_statement"},
	Switch:      []string{"switch_statement", "match_expression"},
	Case:        []string{"case_statement", "match_conditional_expression"},
	Catch:       []string{"catch_clause"},
	Ternary:     []string{"conditional_expression"},
	Jump:        []string{"goto_statement"},
	Binary:      []string{"binary_expression"},
	Logical:     []string{"&&", "||", "and", "or", "xor", "??"},
	Exit:        []string{"return_statement"},
	Statement: []string{
		"expression_statement", "return_statement", "echo_statement", "if_statement",
		"for_statement", "foreach_statement", "while_statement", "do_statement",
		"switch_statement", "break_statement", "continue_statement", "try_statement",
		"unset_statement", "global_declaration", "function_static_declaration",
		"const_declaration", "goto_statement",
	},
	Params:    []string{"formal_parameters"},
	NameField: []string{"name"},
	Name:      []string{"name"},
	Operator: list(cLikeOps, controlWords, []string{
		".=", "**", "**=", "??", "??=", "<=>", "===", "!==", "<>", "->", "?->", "::",
		"=>", "@", "new", "clone", "instanceof", "and", "or", "xor", "print", "echo",
		"elseif", "foreach", "as", "throw", "try", "catch", "finally", "match",
		"yield", "goto",
	}),
	Operand: []string{
		"name", "variable_name", "integer", "float", "string", "encapsed_string",
		"heredoc", "nowdoc", "boolean", "null",
	},
}

// The Lua grammar spells keywords as named leaves (if_start, if_elseif,
// for_start, ...) and keeps if statements flat: elseif and else are
// siblings of the condition, not nested clauses.
var luaRules = &Rules{
	Comment:  []string{"comment"},
	Function: []string{"function_statement"},
	Closure:  []string{"function"},
	If:       []string{"if_statement"},
	Else:     []string{"if_else"},
	Elif:     []string{"if_elseif"},
	Loop:     []string{"for_statement", "while_statement", "repeat_statement"},
	Binary:   []string{"binary_operation"},
	Logical:  []string{"and", "or"},
	Exit:     []string{"return_statement", "module_return_statement"},
	Statement: []string{
		"variable_declaration", "function_call", "return_statement",
		"module_return_statement", "if_statement", "for_statement",
		"while_statement", "repeat_statement", "do_statement", "break_statement",
	},
	Params:    []string{"parameter_list"},
	NameField: []string{"name"},
	Name:      []string{"identifier", "function_name"},
	Operator: []string{
		"+", "-", "*", "/", "//", "%", "^", "#", "==", "~=", "<", "<=", ">", ">=",
		"and", "or", "not", "..", "=", ".", ":", "~", "&", "|", "<<", ">>", "return",
	},
	OperatorKind: []string{
		"if_start", "if_elseif", "if_else", "for_start", "for_in", "while_start",
		"repeat_start", "repeat_until", "break_statement",
	},
	Operand: []string{
		"identifier", "number", "string", "true", "false", "nil", "ellipsis",
	},
}

var bashRules = &Rules{
	Comment:    []string{"comment"},
	Function:   []string{"function_definition"},
	If:         []string{"if_statement"},
	ElseClause: []string{"else_clause"},
	Elif:       []string{"elif_clause"},
	Loop:       []string{"for_statement", "c_style_for_statement", "while_statement"},
	Switch:     []string{"case_statement"},
	Case:       []string{"case_item"},
	Ternary:    []string{"ternary_expression"},
	Binary:     []string{"binary_expression", "list"},
	Logical:    []string{"&&", "||"},
	Statement: []string{
		"command", "variable_assignment", "declaration_command", "unset_command",
		"test_command", "if_statement", "for_statement", "c_style_for_statement",
		"while_statement", "case_statement", "pipeline",
	},
	NameField: []string{"name"},
	Name:      []string{"word"},
	Operator: []string{
		"=", "==", "!=", "=~", "<", ">", ">>", "<<", "&&", "||", "|", "&", "!",
		"+", "-", "*", "/", "%", "++", "--", "+=", "-=",
		"if", "elif", "else", "for", "while", "until", "case", "in", "select",
	},
	OperatorKind: []string{"test_operator"},
	Operand: []string{
		"word", "variable_name", "number", "string", "raw_string", "ansi_c_string",
		"special_variable_name", "heredoc_body",
	},
}
