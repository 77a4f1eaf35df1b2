// Package annotate renders source code back out with a trailing comment
// on every line that contributed to the logical-line count, naming which
// grammar constructs were counted.
package annotate

import (
	"bytes"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/raven-computing/reckon/internal/parser"
	"github.com/raven-computing/reckon/internal/types"
)

// commentToken is the inline comment token used to introduce an
// annotation. Both supported languages (C and Java) use "//" line
// comments, so this is a constant rather than a per-language lookup.
const commentToken = "//"

// lineBuffer accumulates the weight and grammar kind names contributed by
// a single physical line.
type lineBuffer struct {
	weight types.Count
	kinds  []string
}

func (b *lineBuffer) record(kind string) {
	b.kinds = append(b.kinds, strings.ReplaceAll(kind, "_", " "))
}

func (b *lineBuffer) hasContent() bool {
	return len(b.kinds) > 0
}

// comment renders this line's annotation text, e.g.
// " // +3 (method declaration, local variable declaration, return statement)".
func (b *lineBuffer) comment() string {
	var sb strings.Builder
	sb.WriteByte(' ')
	sb.WriteString(commentToken)
	sb.WriteString(" +")
	sb.WriteString(itoa(b.weight))
	sb.WriteString(" (")
	for i, k := range b.kinds {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(k)
	}
	sb.WriteString(")")
	return sb.String()
}

func itoa(c types.Count) string {
	if c == 0 {
		return "0"
	}
	var digits [20]byte
	i := len(digits)
	for c > 0 {
		i--
		digits[i] = byte('0' + c%10)
		c /= 10
	}
	return string(digits[i:])
}

// Annotator records the per-line weight and grammar kinds a tree walk
// contributes, then renders an annotated copy of the source.
type Annotator struct {
	lines []lineBuffer
	eval  parser.LogicalEvaluator
}

// NewAnnotator prepares an Annotator for language over a source with the
// given number of physical lines. It fails when the language has no
// registered evaluator.
func NewAnnotator(language types.TextFormat, lineCount int) (*Annotator, error) {
	eval, ok := parser.EvaluatorFor(language)
	if !ok {
		return nil, types.NewError(types.ErrUnsupportedFormat, "No evaluator registered for this format")
	}
	return &Annotator{
		lines: make([]lineBuffer, lineCount),
		eval:  eval,
	}, nil
}

// Visit is a parser.NodeVisitor that records a node's weight against the
// physical line it starts on. The evaluator runs for every node so the
// trace stays consistent; only weighted nodes within range are
// recorded.
func (a *Annotator) Visit(node *tree_sitter.Node, trace *types.EvalTrace) {
	row := int(node.StartPosition().Row)
	weight := a.eval(node, trace)
	trace.Idx++
	if row >= len(a.lines) {
		return
	}
	if weight == 0 {
		return
	}
	a.lines[row].weight += weight
	a.lines[row].record(node.Kind())
}

// Render merges the recorded annotations into source, preserving LF and
// CRLF line endings exactly and handling a final unterminated line.
func (a *Annotator) Render(source []byte) []byte {
	var out bytes.Buffer
	out.Grow(len(source))

	lineIndex := 0
	i := 0
	n := len(source)
	for i < n {
		nlLen := newlineLength(source, i, n)
		if nlLen == 0 {
			out.WriteByte(source[i])
			i++
			continue
		}
		if lineIndex < len(a.lines) && a.lines[lineIndex].hasContent() {
			out.WriteString(a.lines[lineIndex].comment())
		}
		out.Write(source[i : i+nlLen])
		i += nlLen
		lineIndex++
	}
	if lineIndex < len(a.lines) && a.lines[lineIndex].hasContent() {
		out.WriteString(a.lines[lineIndex].comment())
	}
	return out.Bytes()
}

// newlineLength returns 0 if source does not start a newline sequence at
// index i, 1 for a bare LF, or 2 for CRLF. A bare CR not followed by LF
// is not treated as a newline.
func newlineLength(source []byte, i, n int) int {
	if source[i] == '\r' && i+1 < n && source[i+1] == '\n' {
		return 2
	}
	if source[i] == '\n' {
		return 1
	}
	return 0
}
