package checker

var goRules = &Rules{
	Comment:  []string{"comment"},
	Function: []string{"function_declaration", "method_declaration"},
	Closure:  []string{"func_literal"},
	If:       []string{"if_statement"},
	Loop:     []string{"for_statement"},
	Switch:   []string{"expression_switch_statement", "type_switch_statement", "select_statement"},
	Case:     []string{"expression_case", "type_case", "communication_case"},
	Jump:     []string{"goto_statement"},
	Binary:   []string{"binary_expression"},
	Logical:  []string{"&&", "||"},
	Exit:     []string{"return_statement"},
	Statement: []string{
		"expression_statement", "assignment_statement", "short_var_declaration",
		"inc_statement", "dec_statement", "send_statement", "go_statement",
		"defer_statement", "return_statement", "if_statement", "for_statement",
		"expression_switch_statement", "type_switch_statement", "select_statement",
		"var_declaration", "const_declaration", "break_statement",
		"continue_statement", "goto_statement", "fallthrough_statement",
		"labeled_statement",
	},
	Params:     []string{"parameter_list"},
	ParamGroup: []string{"parameter_declaration"},
	NameField:  []string{"name"},
	Name:       []string{"identifier", "field_identifier"},
	Operator: list(arithmeticOps, comparisonOps, logicalOps, bitwiseOps, assignOps, []string{
		".", ":=", "&^", "&^=", "<-", "...", "if", "else", "for", "range", "switch",
		"case", "default", "select", "return", "break", "continue", "goto",
		"fallthrough", "go", "defer",
	}),
	Operand: []string{
		"identifier", "field_identifier", "type_identifier", "package_identifier",
		"label_name", "int_literal", "float_literal", "imaginary_literal",
		"rune_literal", "interpreted_string_literal", "raw_string_literal",
		"true", "false", "nil", "iota",
	},
}

var rustRules = &Rules{
	Comment:     []string{"line_comment", "block_comment"},
	Function:    []string{"function_item"},
	Closure:     []string{"closure_expression"},
	Struct:      []string{"struct_item", "union_item", "enum_item"},
	Trait:       []string{"trait_item"},
	Impl:        []string{"impl_item"},
	Namespace:   []string{"mod_item"},
	RequireBody: []string{"struct_item", "union_item", "enum_item", "mod_item"},
	If:          []string{"if_expression"},
	ElseClause:  []string{"else_clause"},
	Loop:        []string{"for_expression", "while_expression", "loop_expression"},
	Switch:      []string{"match_expression"},
	Case:        []string{"match_arm"},
	Branch:      []string{"try_expression"},
	Binary:      []string{"binary_expression"},
	Logical:     []string{"&&", "||"},
	Exit:        []string{"return_expression", "try_expression"},
	Statement:   []string{"expression_statement", "let_declaration"},
	Params:      []string{"parameters", "closure_parameters"},
	NameField:   []string{"name", "type"},
	Name:        []string{"identifier", "type_identifier"},
	Operator: list(arithmeticOps[:5], comparisonOps, logicalOps, []string{"&", "|", "^", "<<", ">>"}, assignOps, []string{
		".", "::", "?", "..", "..=", "...", "=>", "as", "if", "else", "match", "for",
		"while", "loop", "in", "return", "break", "continue", "await", "move", "ref",
	}),
	Operand: []string{
		"identifier", "field_identifier", "type_identifier", "primitive_type",
		"shorthand_field_identifier", "integer_literal", "float_literal",
		"string_literal", "raw_string_literal", "char_literal", "boolean_literal",
		"self", "metavariable",
	},
}

var csharpRules = &Rules{
	Comment: []string{"comment"},
	Function: []string{
		"method_declaration", "constructor_declaration", "destructor_declaration",
		"operator_declaration", "conversion_operator_declaration", "local_function_statement",
	},
	Closure:   []string{"lambda_expression", "anonymous_method_expression"},
	Class:     []string{"class_declaration", "record_declaration"},
	Struct:    []string{"struct_declaration"},
	Interface: []string{"interface_declaration"},
	Namespace: []string{"namespace_declaration", "file_scoped_namespace_declaration"},
	If:        []string{"if_statement"},
	Loop:      []string{"for_statement", "foreach_statement", "while_statement", "do_statement"},
	Switch:    []string{"switch_statement", "switch_expression"},
	Case:      []string{"switch_section", "switch_expression_arm"},
	Default:   []string{"default"},
	Catch:     []string{"catch_clause"},
	Ternary:   []string{"conditional_expression"},
	Jump:      []string{"goto_statement"},
	Binary:    []string{"binary_expression"},
	Logical:   []string{"&&", "||", "??"},
	Exit:      []string{"return_statement"},
	Statement: []string{
		"expression_statement", "local_declaration_statement", "return_statement",
		"if_statement", "for_statement", "foreach_statement",
		"while_statement", "do_statement", "switch_statement", "break_statement",
		"continue_statement", "throw_statement", "try_statement", "using_statement",
		"lock_statement", "yield_statement", "goto_statement", "labeled_statement",
		"checked_statement",
	},
	Params:    []string{"parameter_list", "bracketed_parameter_list"},
	NameField: []string{"name"},
	Name:      []string{"identifier"},
	Operator: list(cLikeOps, controlWords, []string{
		"->", "??", "??=", "=>", "::", "new", "is", "as", "typeof", "sizeof",
		"await", "throw", "try", "catch", "finally", "foreach", "in", "goto", "yield",
		"checked", "unchecked", "lock",
	}),
	Operand: []string{
		"identifier", "predefined_type", "integer_literal", "real_literal",
		"string_literal", "verbatim_string_literal", "raw_string_literal",
		"interpolated_string_expression", "character_literal", "boolean_literal",
		"null_literal", "this", "base",
	},
}

var swiftRules = &Rules{
	Comment:   []string{"comment", "multiline_comment"},
	Function:  []string{"function_declaration", "init_declaration", "deinit_declaration", "subscript_declaration"},
	Closure:   []string{"lambda_literal"},
	Class:     []string{"class_declaration"},
	Interface: []string{"protocol_declaration"},
	If:        []string{"if_statement", "guard_statement"},
	Else:      []string{"else"},
	Loop:      []string{"for_statement", "while_statement", "repeat_while_statement"},
	Switch:    []string{"switch_statement"},
	Case:      []string{"switch_entry"},
	Default:   []string{"default_keyword"},
	Catch:     []string{"catch_block"},
	Ternary:   []string{"ternary_expression"},
	Binary:    []string{"conjunction_expression", "disjunction_expression", "nil_coalescing_expression"},
	Logical:   []string{"&&", "||", "??"},
	ExitToken: []string{"return"},
	Statement: []string{
		"property_declaration", "assignment", "control_transfer_statement",
		"if_statement", "guard_statement", "for_statement", "while_statement",
		"repeat_while_statement", "switch_statement", "do_statement",
	},
	Params:    []string{"lambda_function_type_parameters"},
	ParamItem: []string{"parameter"},
	NameField: []string{"name"},
	Name:      []string{"simple_identifier", "type_identifier"},
	// Compound bitwise assignments and overflow operators are
	// custom_operator nodes; else, default and throw are named keywords.
	Operator: list(arithmeticOps, comparisonOps, logicalOps, bitwiseOps, assignOps[:6], []string{
		"?", ".", "===", "!==", "??", "...", "..<", "as", "as?", "as!", "is", "try",
		"try?", "try!", "await", "guard", "in", "repeat", "fallthrough",
		"if", "for", "while", "do", "switch", "case", "return", "break", "continue",
	}),
	OperatorKind: []string{"custom_operator", "else", "default_keyword", "throw_keyword"},
	Operand: []string{
		"simple_identifier", "type_identifier", "integer_literal", "real_literal",
		"hex_literal", "oct_literal", "bin_literal", "boolean_literal",
		"line_string_literal", "multi_line_string_literal", "raw_string_literal",
		"self_expression", "super_expression",
	},
}
