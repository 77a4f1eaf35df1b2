package parser

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/raven-computing/reckon/internal/types"
)

// javaWeightedKinds are Java node (and anonymous token) kinds that always
// contribute a flat weight of one, with no tie-break behaviour.
var javaWeightedKinds = map[string]bool{
	"when":                                true,
	"open":                                true,
	"module":                              true,
	"requires":                            true,
	"transitive":                          true,
	"exports":                             true,
	"to":                                  true,
	"opens":                               true,
	"uses":                                true,
	"provides":                            true,
	"with":                                true,
	"expression":                          true,
	"switch_expression":                   true,
	"pattern":                             true,
	"type_pattern":                        true,
	"record_pattern":                      true,
	"record_pattern_body":                 true,
	"record_pattern_component":            true,
	"guard":                               true,
	"statement":                           true,
	"assert_statement":                    true,
	"break_statement":                     true,
	"continue_statement":                  true,
	"return_statement":                    true,
	"yield_statement":                     true,
	"synchronized_statement":              true,
	"throw_statement":                     true,
	"try_statement":                       true,
	"catch_clause":                        true,
	"finally_clause":                      true,
	"try_with_resources_statement":        true,
	"while_statement":                     true,
	"enhanced_for_statement":              true,
	"marker_annotation":                   true,
	"annotation":                          true,
	"declaration":                         true,
	"module_declaration":                  true,
	"module_directive":                    true,
	"requires_module_directive":           true,
	"requires_modifier":                   true,
	"exports_module_directive":            true,
	"opens_module_directive":              true,
	"uses_module_directive":               true,
	"provides_module_directive":           true,
	"package_declaration":                 true,
	"import_declaration":                  true,
	"enum_declaration":                    true,
	"enum_constant":                       true,
	"class_declaration":                   true,
	"permits":                             true,
	"static_initializer":                  true,
	"constructor_declaration":             true,
	"constructor_declarator":              true,
	"explicit_constructor_invocation":     true,
	"field_declaration":                   true,
	"record_declaration":                  true,
	"annotation_type_declaration":         true,
	"annotation_type_element_declaration": true,
	"interface_declaration":               true,
	"constant_declaration":                true,
	"method_declarator":                   true,
	"method_declaration":                  true,
	"compact_constructor_declaration":     true,
}

// EvaluateNodeWeightJava computes the logical-line weight of a single
// Java grammar node given the tie-break state accumulated so far.
func EvaluateNodeWeightJava(node *tree_sitter.Node, trace *types.EvalTrace) types.Count {
	kind := node.Kind()
	var weight types.Count

	switch kind {
	case "->":
		trace.LnLastArrow = CurrentLine(node)

	case "else":
		trace.IdxLastElse = trace.Idx
		weight++

	case "switch_label":
		trace.LnLastSwitchLabel = CurrentLine(node)
		weight++

	case "expression_statement":
		line := CurrentLine(node)
		if trace.LnLastSwitchLabel == line && trace.LnLastArrow == line {
			break
		}
		weight++

	case "if_statement":
		// else-if counts as one.
		if trace.IdxLastElse == trace.Idx-1 {
			break
		}
		weight++

	case "local_variable_declaration":
		// for_statement -> for -> ( -> local_variable_declaration
		if trace.IdxLastForSym == trace.Idx-3 {
			break
		}
		weight++

	case "do_statement":
		weight += 2

	case "for_statement":
		trace.IdxLastForSym = trace.Idx
		weight++

	default:
		if javaWeightedKinds[kind] {
			weight++
		}
	}

	return weight
}
