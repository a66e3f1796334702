// Package parser wraps a parsed tree-sitter tree together with the source
// bytes, file path, language and optional preprocessor results it was built
// from. A Parser is the unit every traversal in the module operates on.
package parser

import (
	"context"
	"errors"
	"fmt"
	"os"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/panbanda/funcspace/pkg/checker"
	"github.com/panbanda/funcspace/pkg/grammar"
	"github.com/panbanda/funcspace/pkg/lang"
	"github.com/panbanda/funcspace/pkg/preproc"
)

// ErrParse is returned when the grammar produces no tree.
var ErrParse = errors.New("parse failed")

// Parser owns one parsed file. It is not safe for concurrent use; create one
// Parser per file and Close it when the analysis of that file is done.
type Parser struct {
	lang    lang.Language
	binding *grammar.Binding
	checker *checker.Checker
	tree    *sitter.Tree
	source  []byte
	path    string
	preproc *preproc.Results
}

// New parses source as language l. pr may be nil; it is only consulted by
// preprocessed languages (C and C++), whose source is masked with the
// macros visible in path before parsing.
func New(l lang.Language, source []byte, path string, pr *preproc.Results) (*Parser, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%s: %w", path, lang.ErrUnsupported)
	}

	code := source
	if pr != nil && l.Descriptor().Preprocessed {
		code = pr.Mask(path, source)
	}

	binding := grammar.For(l)
	ts := sitter.NewParser()
	defer ts.Close()
	ts.SetLanguage(binding.Language())

	tree, err := ts.ParseCtx(context.Background(), nil, code)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrParse, err)
	}
	if tree == nil || tree.RootNode() == nil {
		return nil, fmt.Errorf("%s: %w", path, ErrParse)
	}

	return &Parser{
		lang:    l,
		binding: binding,
		checker: checker.For(l),
		tree:    tree,
		source:  source,
		path:    path,
		preproc: pr,
	}, nil
}

// ParseFile reads path and parses it with the language detected from its
// modeline or extension.
func ParseFile(path string, pr *preproc.Results) (*Parser, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	l, ok := lang.Guess(source, path)
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, lang.ErrUnsupported)
	}
	return New(l, source, path, pr)
}

// Root returns the root node of the tree.
func (p *Parser) Root() *sitter.Node { return p.tree.RootNode() }

// Tree returns the underlying tree-sitter tree.
func (p *Parser) Tree() *sitter.Tree { return p.tree }

// Source returns the original, unmasked source bytes.
func (p *Parser) Source() []byte { return p.source }

// Path returns the file path the source was read from.
func (p *Parser) Path() string { return p.path }

// Language returns the language the source was parsed as.
func (p *Parser) Language() lang.Language { return p.lang }

// Binding returns the grammar binding of the parser's language.
func (p *Parser) Binding() *grammar.Binding { return p.binding }

// Checker returns the node classifier of the parser's language.
func (p *Parser) Checker() *checker.Checker { return p.checker }

// Preproc returns the preprocessor results attached to the parser, if any.
func (p *Parser) Preproc() *preproc.Results { return p.preproc }

// HasErrors reports whether the grammar had to recover from syntax errors.
func (p *Parser) HasErrors() bool { return p.Root().HasError() }

// Close releases the tree.
func (p *Parser) Close() {
	if p.tree != nil {
		p.tree.Close()
		p.tree = nil
	}
}
