package checker

var javaRules = &Rules{
	Comment:   []string{"line_comment", "block_comment"},
	Function:  []string{"method_declaration", "constructor_declaration", "compact_constructor_declaration"},
	Closure:   []string{"lambda_expression"},
	Class:     []string{"class_declaration", "enum_declaration", "record_declaration"},
	Interface: []string{"interface_declaration", "annotation_type_declaration"},
	If:        []string{"if_statement"},
	Loop:      []string{"for_statement", "enhanced_for_statement", "while_statement", "do_statement"},
	Switch:    []string{"switch_expression"},
	Case:      []string{"switch_label"},
	Default:   []string{"default"},
	Catch:     []string{"catch_clause"},
	Ternary:   []string{"ternary_expression"},
	Binary:    []string{"binary_expression"},
	Logical:   []string{"&&", "||"},
	Exit:      []string{"return_statement"},
	Statement: []string{
		"expression_statement", "local_variable_declaration", "return_statement",
		"if_statement", "for_statement", "enhanced_for_statement", "while_statement",
		"do_statement", "break_statement", "continue_statement", "throw_statement",
		"try_statement", "try_with_resources_statement", "yield_statement",
		"assert_statement", "synchronized_statement", "labeled_statement",
	},
	Params:    []string{"formal_parameters", "inferred_parameters"},
	NameField: []string{"name"},
	Name:      []string{"identifier"},
	Operator: list(cLikeOps, controlWords, []string{
		">>>", ">>>=", "->", "::", "new", "instanceof", "throw", "try", "catch",
		"finally", "yield", "assert", "synchronized",
	}),
	Operand: []string{
		"identifier", "type_identifier", "decimal_integer_literal", "hex_integer_literal",
		"octal_integer_literal", "binary_integer_literal", "decimal_floating_point_literal",
		"hex_floating_point_literal", "character_literal", "string_literal",
		"true", "false", "null_literal", "this", "super", "integral_type",
		"floating_point_type", "boolean_type", "void_type",
	},
}

var kotlinRules = &Rules{
	Comment:  []string{"line_comment", "multiline_comment"},
	Function: []string{"function_declaration", "secondary_constructor"},
	Closure:  []string{"anonymous_function", "lambda_literal"},
	Class:    []string{"class_declaration", "object_declaration", "companion_object"},
	If:       []string{"if_expression"},
	Body:     []string{"control_structure_body"},
	Loop:     []string{"for_statement", "while_statement", "do_while_statement"},
	Switch:   []string{"when_expression"},
	Case:     []string{"when_entry"},
	Default:  []string{"else"},
	Catch:    []string{"catch_block"},
	Binary:   []string{"conjunction_expression", "disjunction_expression", "elvis_expression"},
	Logical:  []string{"&&", "||", "?:"},
	// return and return@label are both jump_expression, as are break and
	// continue, so exits are counted on the keyword.
	ExitToken: []string{"return", "return@"},
	Statement: []string{
		"property_declaration", "assignment", "for_statement", "while_statement",
		"do_while_statement", "jump_expression",
	},
	Params: []string{"function_value_parameters", "lambda_parameters"},
	// Declarations carry no name field; the first identifier child names
	// them.
	Name: []string{"simple_identifier", "type_identifier"},
	Operator: list(arithmeticOps, comparisonOps, logicalOps, []string{
		"=", "+=", "-=", "*=", "/=", "%=", "===", "!==", "?.", "?:", "!!", "..", "::",
		"as", "as?", "is", "!is", "in", "!in", "->", ".",
		"if", "else", "when", "for", "while", "do", "return", "return@", "break",
		"continue", "throw", "try", "catch", "finally",
	}),
	Operand: []string{
		"simple_identifier", "type_identifier", "integer_literal", "long_literal",
		"hex_literal", "bin_literal", "unsigned_literal", "real_literal",
		"boolean_literal", "character_literal", "string_literal", "null",
		"this_expression", "super_expression",
	},
}

var scalaRules = &Rules{
	Comment:           []string{"comment", "block_comment"},
	Function:          []string{"function_definition"},
	Closure:           []string{"lambda_expression"},
	Class:             []string{"class_definition", "object_definition", "enum_definition"},
	Trait:             []string{"trait_definition"},
	If:                []string{"if_expression"},
	Loop:              []string{"while_expression", "do_while_expression", "for_expression"},
	Switch:            []string{"match_expression"},
	Case:              []string{"case_clause"},
	Catch:             []string{"catch_clause"},
	Binary:            []string{"infix_expression"},
	Logical:           []string{"&&", "||"},
	LogicalIdentifier: []string{"operator_identifier"},
	Exit:              []string{"return_expression"},
	Statement: []string{
		"val_definition", "var_definition", "assignment_expression", "call_expression",
		"return_expression", "if_expression", "while_expression", "for_expression",
		"match_expression", "throw_expression", "try_expression",
	},
	Params:    []string{"parameters", "bindings"},
	NameField: []string{"name"},
	Name:      []string{"identifier", "type_identifier"},
	Operator: []string{
		"=", "=>", "<-", ".", "if", "else", "while", "do", "for", "match", "case",
		"return", "throw", "try", "catch", "finally", "new", "yield",
	},
	OperatorKind: []string{"operator_identifier"},
	Operand: []string{
		"identifier", "type_identifier", "integer_literal", "floating_point_literal",
		"boolean_literal", "character_literal", "string", "interpolated_string_expression",
		"null_literal", "symbol_literal", "unit",
	},
}
