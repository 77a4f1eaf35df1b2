package parser

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/raven-computing/reckon/internal/types"
)

// LogicalEvaluator computes the logical-line weight of a single grammar
// node, given the tie-break state accumulated over the walk so far. An
// evaluator maps (node, trace) to a weight and updates trace's tie-break
// fields as it goes; it never advances trace.Idx. The driver (Evaluate,
// or an annotating visitor) decides what to do with that weight.
type LogicalEvaluator func(node *tree_sitter.Node, trace *types.EvalTrace) types.Count

// EvaluatorFor returns the LogicalEvaluator for a language, and false if
// the language has no grammar-backed evaluator.
func EvaluatorFor(language Language) (LogicalEvaluator, bool) {
	switch language {
	case types.LangC:
		return EvaluateNodeWeightC, true
	case types.LangJava:
		return EvaluateNodeWeightJava, true
	default:
		return nil, false
	}
}

// Evaluate walks the tree rooted at root with eval, summing every
// node's weight. trace.Idx advances after every visited node, whether or
// not a rule fired for it.
func Evaluate(walker *TreeWalker, root *tree_sitter.Node, eval LogicalEvaluator, trace *types.EvalTrace) types.Count {
	var total types.Count
	walker.Walk(root, trace, func(node *tree_sitter.Node, trace *types.EvalTrace) {
		total += eval(node, trace)
		trace.Idx++
	})
	return total
}
