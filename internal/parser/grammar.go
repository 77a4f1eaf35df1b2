// Package parser implements reckon's grammar service, tree walker and
// per-language logical-line evaluators on top of the tree-sitter C and
// Java grammars.
package parser

import (
	"fmt"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_c "github.com/tree-sitter/tree-sitter-c/bindings/go"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"
	"golang.org/x/text/encoding/unicode"

	"github.com/raven-computing/reckon/internal/types"
)

// Language identifies which grammar a GrammarService call should use.
// It is an alias of types.TextFormat; only formats with a grammar
// (LangC, LangJava) are accepted, and any other value is rejected with
// ErrUnsupportedFormat.
type Language = types.TextFormat

// GrammarService is the black-box collaborator that turns source bytes
// into a parsed syntax tree for a given language. Callers never need to
// know anything about the concrete grammar beneath it - only that Parse
// returns an error-free tree or a typed failure: ErrSyntax,
// ErrUnsupportedFormat, ErrInvalidInput (undecodable source) or
// ErrUnknown (no tree produced).
type GrammarService struct {
	parsers map[Language]*tree_sitter.Parser
}

// NewGrammarService builds a service with parsers for every supported
// language pre-configured, so Parse never has to set up a grammar
// lazily.
func NewGrammarService() (*GrammarService, error) {
	s := &GrammarService{parsers: make(map[Language]*tree_sitter.Parser)}

	cParser := tree_sitter.NewParser()
	cLang := tree_sitter.NewLanguage(tree_sitter_c.Language())
	if err := cParser.SetLanguage(cLang); err != nil {
		return nil, fmt.Errorf("reckon: failed to set up C grammar: %w", err)
	}
	s.parsers[types.LangC] = cParser

	javaParser := tree_sitter.NewParser()
	javaLang := tree_sitter.NewLanguage(tree_sitter_java.Language())
	if err := javaParser.SetLanguage(javaLang); err != nil {
		return nil, fmt.Errorf("reckon: failed to set up Java grammar: %w", err)
	}
	s.parsers[types.LangJava] = javaParser

	return s, nil
}

// ParsedTree wraps a parsed tree-sitter tree.
type ParsedTree struct {
	tree *tree_sitter.Tree
}

// Root returns the tree's root node.
func (p *ParsedTree) Root() *tree_sitter.Node {
	return p.tree.RootNode()
}

// Close releases the underlying tree-sitter tree.
func (p *ParsedTree) Close() {
	if p.tree != nil {
		p.tree.Close()
	}
}

// Parse parses source as the given language. Source in an encoding other
// than UTF-8 is transcoded to UTF-8 first, since go-tree-sitter's
// Parser.Parse takes a single byte buffer with no encoding parameter.
func (s *GrammarService) Parse(language Language, source types.SourceText, enc types.Encoding) (*ParsedTree, error) {
	p, ok := s.parsers[language]
	if !ok {
		return nil, types.NewError(types.ErrUnsupportedFormat, "No grammar registered for this format")
	}

	buf, err := toUTF8(source.Text, enc)
	if err != nil {
		return nil, types.NewError(types.ErrInvalidInput, "Failed to decode source text").WithUnderlying(err)
	}

	tree := p.Parse(buf, nil)
	if tree == nil {
		return nil, types.NewError(types.ErrUnknown, "Grammar failed to produce a syntax tree")
	}
	if tree.RootNode().HasError() {
		tree.Close()
		return nil, types.NewError(types.ErrSyntax, "Source contains a syntax error")
	}
	return &ParsedTree{tree: tree}, nil
}

func toUTF8(text []byte, enc types.Encoding) ([]byte, error) {
	switch enc {
	case types.UTF8:
		return text, nil
	case types.UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder().Bytes(text)
	case types.UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder().Bytes(text)
	default:
		return text, nil
	}
}

// CurrentLine returns the 1-based source line a node starts on.
func CurrentLine(node *tree_sitter.Node) uint64 {
	return uint64(node.StartPosition().Row) + 1
}
