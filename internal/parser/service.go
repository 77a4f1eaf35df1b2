package parser

import (
	"github.com/raven-computing/reckon/internal/encoding"
	"github.com/raven-computing/reckon/internal/types"
)

// CountLogicalLines parses source as language using grammar and returns
// the number of logical lines it contains: detect encoding, parse,
// reject on syntax error, walk and evaluate.
func CountLogicalLines(grammar *GrammarService, language Language, source types.SourceText) types.CountResult {
	if source.Size > uint64(types.MaxCounterInput) {
		return types.CountResult{State: types.Failed(types.ErrInputTooLarge, "Input exceeds maximum supported size")}
	}

	eval, ok := EvaluatorFor(language)
	if !ok {
		return types.CountResult{State: types.Failed(types.ErrUnsupportedFormat, "No evaluator registered for this format")}
	}

	enc := encoding.Detect(source)
	tree, err := grammar.Parse(language, source, enc)
	if err != nil {
		if rerr, ok := err.(*types.Error); ok {
			return types.CountResult{State: types.Failed(rerr.Kind, rerr.Message)}
		}
		return types.CountResult{State: types.Failed(types.ErrUnknown, err.Error())}
	}
	defer tree.Close()

	walker := NewTreeWalker()
	trace := types.NewEvalTrace()
	total := Evaluate(walker, tree.Root(), eval, trace)

	return types.CountResult{Count: total, State: types.OK()}
}
