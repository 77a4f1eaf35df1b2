package annotate

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/raven-computing/reckon/internal/parser"
	"github.com/raven-computing/reckon/internal/types"
)

func newGrammar(t *testing.T) *parser.GrammarService {
	t.Helper()
	g, err := parser.NewGrammarService()
	require.NoError(t, err)
	return g
}

// Each annotated line gets a trailing comment naming the grammar
// constructs it contributed.
func TestAnnotationOutput(t *testing.T) {
	g := newGrammar(t)
	src := "package mytest;\n" +
		"public class A {\n" +
		"    public int m() { int x = 0; return x;}\n" +
		"}\n"

	out, err := MarkLogicalLines(g, types.LangJava, []byte(src))
	require.NoError(t, err)

	text := string(out)
	require.Contains(t, text, "package mytest; // +1 (package declaration)")
	require.Contains(t, text, "public class A { // +1 (class declaration)")
	require.Contains(t, text, "int x = 0")
	require.Contains(t, text, "return x;}")
}

// CRLF line endings survive annotation and the comment is inserted
// immediately before the CRLF sequence.
func TestCRLFPreservation(t *testing.T) {
	g := newGrammar(t)
	src := "package mytest;\r\n" +
		"public class A {\r\n" +
		"    public int m() { int x = 0; return x;}\r\n" +
		"}\r\n"

	out, err := MarkLogicalLines(g, types.LangJava, []byte(src))
	require.NoError(t, err)

	text := string(out)
	require.Contains(t, text, "package mytest; // +1 (package declaration)\r\n")
	require.NotContains(t, text, "\n\n") // no bare-LF artifacts introduced
}

// TestAnnotationRoundTrip checks that stripping every rendered comment
// from the annotated output restores the input byte-for-byte.
func TestAnnotationRoundTrip(t *testing.T) {
	g := newGrammar(t)
	src := "package mytest;\n" +
		"public class A {\n" +
		"    public int m() { int x = 0; return x;}\n" +
		"}"

	out, err := MarkLogicalLines(g, types.LangJava, []byte(src))
	require.NoError(t, err)

	stripped := regexp.MustCompile(` // \+\d+ \([^)\r\n]*\)`).ReplaceAll(out, nil)
	require.Equal(t, src, string(stripped))
}

func TestRenderUnterminatedFinalLine(t *testing.T) {
	a := &Annotator{lines: []lineBuffer{{weight: 1, kinds: []string{"statement"}}}}
	out := a.Render([]byte("a();"))
	require.Equal(t, "a(); // +1 (statement)", string(out))
}

// The annotation front end refuses any encoding other than UTF-8
// rather than transcoding it.
func TestMarkLogicalLines_RejectsNonUTF8(t *testing.T) {
	g := newGrammar(t)
	src := []byte{0xFF, 0xFE, 'p', 0x00, 0x00, 0x00}

	_, err := MarkLogicalLines(g, types.LangC, src)
	require.Error(t, err)

	var rerr *types.Error
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, types.ErrInvalidInput, rerr.Kind)
}

// A leading UTF-8 BOM is sliced off before parsing and rendering, so it
// never reaches the grammar and never appears in the annotated output.
func TestMarkLogicalLines_StripsUTF8BOM(t *testing.T) {
	g := newGrammar(t)
	src := append([]byte{0xEF, 0xBB, 0xBF}, []byte("int x = 0;\n")...)

	out, err := MarkLogicalLines(g, types.LangC, src)
	require.NoError(t, err)

	text := string(out)
	require.NotContains(t, text, "\xEF\xBB\xBF")
	require.Contains(t, text, "int x = 0; // +1 (declaration)")
}
