package parser

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/raven-computing/reckon/internal/types"
)

// NodeVisitor is called once per node as TreeWalker performs a pre-order
// depth-first traversal. Implementations read/update trace to track
// tie-break state across the whole walk.
type NodeVisitor func(node *tree_sitter.Node, trace *types.EvalTrace)

// TreeWalker performs a pre-order depth-first traversal of a parsed
// syntax tree, visiting every node exactly once. It is iterative (an
// explicit stack) rather than recursive, so that deeply nested source
// does not exhaust the Go call stack.
type TreeWalker struct{}

// NewTreeWalker returns a TreeWalker. It carries no state of its own.
func NewTreeWalker() *TreeWalker {
	return &TreeWalker{}
}

// Walk visits root and every descendant, in pre-order, calling visit on
// each.
func (w *TreeWalker) Walk(root *tree_sitter.Node, trace *types.EvalTrace, visit NodeVisitor) {
	if root == nil {
		return
	}
	stack := []*tree_sitter.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		visit(n, trace)

		count := n.ChildCount()
		// Push children in reverse order so the first child is popped
		// (and therefore visited) first, preserving left-to-right,
		// pre-order semantics.
		for i := count; i > 0; i-- {
			child := n.Child(i - 1)
			if child != nil {
				stack = append(stack, child)
			}
		}
	}
}
