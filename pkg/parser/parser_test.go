package parser

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panbanda/funcspace/pkg/lang"
	"github.com/panbanda/funcspace/pkg/preproc"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		source string
		lang   lang.Language
		root   string
	}{
		{"go function", "package main\n\nfunc main() {\n\tprintln(\"hello\")\n}\n", lang.Go, "source_file"},
		{"python function", "def hello():\n    print('hello')\n", lang.Python, "module"},
		{"javascript function", "function hello() {\n  console.log('hello');\n}\n", lang.JavaScript, "program"},
		{"rust function", "fn main() {\n    println!(\"hello\");\n}\n", lang.Rust, "source_file"},
		{"c function", "int main(void) { return 0; }\n", lang.C, "translation_unit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.lang, []byte(tt.source), "test.file", nil)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			defer p.Close()

			if got := p.Root().Type(); got != tt.root {
				t.Errorf("root type = %q, want %q", got, tt.root)
			}
			if p.Language() != tt.lang {
				t.Errorf("Language() = %v, want %v", p.Language(), tt.lang)
			}
			if p.Path() != "test.file" {
				t.Errorf("Path() = %q", p.Path())
			}
			if p.Checker().Lang() != tt.lang {
				t.Errorf("checker compiled for %v", p.Checker().Lang())
			}
			if p.HasErrors() {
				t.Errorf("unexpected syntax errors")
			}
		})
	}
}

func TestNewEveryLanguageAcceptsEmptySource(t *testing.T) {
	for _, l := range lang.All() {
		t.Run(l.String(), func(t *testing.T) {
			p, err := New(l, nil, "empty", nil)
			require.NoError(t, err)
			defer p.Close()
			assert.NotNil(t, p.Root())
			assert.Equal(t, l.Display(), p.Binding().Name())
		})
	}
}

func TestNewUnsupportedLanguage(t *testing.T) {
	_, err := New(lang.Count, []byte("x"), "x.unknown", nil)
	assert.True(t, errors.Is(err, lang.ErrUnsupported))
}

func TestNewKeepsRecoveredTrees(t *testing.T) {
	p, err := New(lang.Go, []byte("package main\nfunc broken( {\n"), "broken.go", nil)
	require.NoError(t, err)
	defer p.Close()
	assert.True(t, p.HasErrors())
}

func TestNewMasksPreprocessedSources(t *testing.T) {
	src := []byte("#define EXPORT\nEXPORT int run(void) { return 0; }\n")
	pr, err := preproc.CollectSources(context.Background(), map[string][]byte{"run.c": src})
	require.NoError(t, err)

	p, err := New(lang.C, src, "run.c", pr)
	require.NoError(t, err)
	defer p.Close()

	assert.Equal(t, src, p.Source(), "Source returns the original bytes")
	assert.Same(t, pr, p.Preproc())
	assert.False(t, p.HasErrors())
	fns := FindNodesByType(p.Root(), p.Source(), "function_definition")
	require.Len(t, fns, 1)
	assert.Equal(t, uint32(1), fns[0].StartPoint().Row)
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tool")
	require.NoError(t, os.WriteFile(path, []byte("#!/usr/bin/env python3\nprint(1)\n"), 0o644))

	p, err := ParseFile(path, nil)
	require.NoError(t, err)
	defer p.Close()
	assert.Equal(t, lang.Python, p.Language())

	_, err = ParseFile(filepath.Join(dir, "missing.go"), nil)
	assert.Error(t, err)

	notes := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(notes, []byte("hello"), 0o644))
	_, err = ParseFile(notes, nil)
	assert.ErrorIs(t, err, lang.ErrUnsupported)
}

func TestWalk(t *testing.T) {
	source := []byte("package main\n\nfunc a() {}\nfunc b() {}\n")
	p, err := New(lang.Go, source, "test.go", nil)
	require.NoError(t, err)
	defer p.Close()

	var visited int
	Walk(p.Root(), source, func(node *sitter.Node, source []byte) bool {
		visited++
		return true
	})
	assert.Greater(t, visited, 5)

	var names []string
	WalkTyped(p.Root(), source, func(node *sitter.Node, nodeType string, source []byte) bool {
		if nodeType == "function_declaration" {
			names = append(names, GetNodeText(node.ChildByFieldName("name"), source))
			return false
		}
		return true
	})
	assert.Equal(t, []string{"a", "b"}, names)

	assert.Len(t, FindNodesByType(p.Root(), source, "function_declaration"), 2)
}

func TestGetNodeText(t *testing.T) {
	assert.Equal(t, "", GetNodeText(nil, []byte("x")))

	source := []byte("package main\n")
	p, err := New(lang.Go, source, "test.go", nil)
	require.NoError(t, err)
	defer p.Close()
	assert.Equal(t, "package main", GetNodeText(p.Root().NamedChild(0), source))
	assert.Equal(t, "", GetNodeText(p.Root(), source[:3]), "out of bounds")
}
