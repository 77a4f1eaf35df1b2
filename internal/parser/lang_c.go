package parser

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/raven-computing/reckon/internal/types"
)

// cWeightedKinds are node kinds that always contribute a flat weight of
// one logical line, with no tie-break behaviour. The set is keyed on the
// grammar's node kind names (node.Kind()) rather than raw TSSymbol
// identifiers, which change between grammar releases. A handful of
// entries name grammar-hidden rules (declarator, statement, expression
// and friends) that tree-sitter surfaces only through their visible
// subtypes; they are kept for completeness even though they cannot match
// a visited node directly.
var cWeightedKinds = map[string]bool{
	"preproc_directive":               true,
	"preproc_include":                 true,
	"preproc_def":                     true,
	"preproc_function_def":            true,
	"preproc_if":                      true,
	"preproc_ifdef":                   true,
	"preproc_else":                    true,
	"preproc_elif":                    true,
	"preproc_elifdef":                 true,
	"function_definition":             true,
	"old_style_function_definition":   true,
	"type_definition_type":            true,
	"type_definition_declarators":     true,
	"declaration_modifiers":           true,
	"declaration_specifiers":          true,
	"linkage_specification":           true,
	"attribute_specifier":             true,
	"attribute":                       true,
	"declaration_list":                true,
	"declarator":                      true,
	"declaration_declarator":          true,
	"type_declarator":                 true,
	"abstract_declarator":             true,
	"attributed_declarator":           true,
	"attributed_type_declarator":      true,
	"type_specifier":                  true,
	"field_declaration":               true,
	"enumerator":                      true,
	"attributed_statement":            true,
	"statement":                       true,
	"top_level_statement":             true,
	"labeled_statement":               true,
	"switch_statement":                true,
	"case_statement":                  true,
	"while_statement":                 true,
	"return_statement":                true,
	"break_statement":                 true,
	"continue_statement":              true,
	"goto_statement":                  true,
	"expression":                      true,
}

// EvaluateNodeWeightC computes the logical-line weight of a single C
// grammar node given the tie-break state accumulated so far.
func EvaluateNodeWeightC(node *tree_sitter.Node, trace *types.EvalTrace) types.Count {
	kind := node.Kind()
	var weight types.Count

	switch kind {
	case "for_statement":
		trace.IdxLastForSym = trace.Idx
		weight++

	case "declaration":
		trace.LnLastDecl = CurrentLine(node)
		// for_statement -> for -> ( -> declaration
		if trace.IdxLastForSym == trace.Idx-3 {
			break
		}
		weight++

	case "do_statement":
		weight += 2

	case "type_definition":
		trace.IdxLastTypeDef = trace.Idx
		weight++

	case "struct_specifier":
		if trace.IdxLastTypeDef == trace.Idx-2 {
			break
		}
		if trace.LnLastDecl == CurrentLine(node) {
			break
		}
		if trace.LnLastExpr == CurrentLine(node) {
			break
		}
		weight++

	case "enum_specifier", "union_specifier":
		if trace.LnLastDecl == CurrentLine(node) {
			break
		}
		weight++

	case "top_level_expression_statement", "expression_statement":
		trace.LnLastExpr = CurrentLine(node)
		weight++

	case "if_statement":
		// else-if counts as one. Nodes are: else_clause -> else -> if_statement
		if trace.IdxLastElse == trace.Idx-2 {
			break
		}
		weight++

	case "else_clause":
		trace.IdxLastElse = trace.Idx
		weight++

	default:
		if cWeightedKinds[kind] {
			weight++
		}
	}

	return weight
}
