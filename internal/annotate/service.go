package annotate

import (
	"github.com/raven-computing/reckon/internal/encoding"
	"github.com/raven-computing/reckon/internal/metrics"
	"github.com/raven-computing/reckon/internal/parser"
	"github.com/raven-computing/reckon/internal/types"
)

// MarkLogicalLines parses source as language and returns a copy of it
// with a trailing comment appended to every line that contributed to the
// logical-line count. Unlike CountLogicalLines, this rejects any
// encoding other than UTF-8 outright rather than transcoding it, and
// slices off a leading UTF-8 BOM before handing source to the grammar.
func MarkLogicalLines(grammar *parser.GrammarService, language types.TextFormat, source []byte) ([]byte, error) {
	st := types.NewSourceText(source)
	enc := encoding.Detect(st)
	if enc != types.UTF8 {
		return nil, types.NewError(types.ErrInvalidInput, "Annotation requires UTF-8 encoded source")
	}

	body := source
	if encoding.HasUTF8BOM(st) {
		body = source[3:]
	}
	bodyText := types.NewSourceText(body)

	tree, err := grammar.Parse(language, bodyText, enc)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	lineCountResult := metrics.CountPhysicalLines(bodyText)
	if !lineCountResult.State.Ok {
		return nil, types.NewError(lineCountResult.State.Kind, lineCountResult.State.Message)
	}

	a, err := NewAnnotator(language, int(lineCountResult.Count))
	if err != nil {
		return nil, err
	}

	walker := parser.NewTreeWalker()
	trace := types.NewEvalTrace()
	walker.Walk(tree.Root(), trace, a.Visit)

	return a.Render(body), nil
}
