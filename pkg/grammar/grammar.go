// Package grammar binds each supported language to its tree-sitter grammar
// and exposes the grammar's node-kind symbol space to generic code.
package grammar

import (
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/panbanda/funcspace/pkg/lang"
)

// Binding associates one language with its concrete grammar and a symbol
// table resolving node-kind names to grammar symbol ids. A Binding is built
// once per process and is read-only afterwards.
type Binding struct {
	lang     lang.Language
	language *sitter.Language
	named    map[string][]uint32
	tokens   map[string][]uint32
	fields   map[string]struct{}
	names    []string
}

var bindings [lang.Count]struct {
	once sync.Once
	b    *Binding
}

// For returns the binding of l. It panics if l is not a supported language.
func For(l lang.Language) *Binding {
	if !l.Valid() {
		panic("grammar: binding requested for unsupported language")
	}
	slot := &bindings[l]
	slot.once.Do(func() {
		slot.b = newBinding(l)
	})
	return slot.b
}

func newBinding(l lang.Language) *Binding {
	language := l.Grammar()
	count := language.SymbolCount()
	b := &Binding{
		lang:     l,
		language: language,
		named:    make(map[string][]uint32),
		tokens:   make(map[string][]uint32),
		fields:   make(map[string]struct{}),
		names:    make([]string, count),
	}
	for i := uint32(0); i < count; i++ {
		sym := sitter.Symbol(i)
		name := language.SymbolName(sym)
		b.names[i] = name
		switch language.SymbolType(sym) {
		case sitter.SymbolTypeRegular:
			b.named[name] = append(b.named[name], i)
		case sitter.SymbolTypeAnonymous:
			b.tokens[name] = append(b.tokens[name], i)
		}
	}
	// Field ids start at 1; past the last one the grammar returns "".
	for id := 1; ; id++ {
		name := language.FieldName(id)
		if name == "" {
			break
		}
		b.fields[name] = struct{}{}
	}
	return b
}

// Lang returns the language this binding represents.
func (b *Binding) Lang() lang.Language { return b.lang }

// Language returns the concrete tree-sitter grammar.
func (b *Binding) Language() *sitter.Language { return b.language }

// Name returns the display name of the language.
func (b *Binding) Name() string { return b.lang.Display() }

// Kinds resolves named node kinds to a set of symbol ids. Names the grammar
// does not define resolve to nothing; HasKind and Has tell them apart.
func (b *Binding) Kinds(names ...string) KindSet {
	return b.resolve(b.named, names)
}

// Tokens resolves anonymous tokens (keywords, punctuation, operators) to a
// set of symbol ids.
func (b *Binding) Tokens(names ...string) KindSet {
	return b.resolve(b.tokens, names)
}

// KindsOrTokens resolves each name to its named kind, falling back to the
// anonymous token of that name when the grammar has no such kind. Keywords
// that are both (a `string` type keyword next to a string literal kind)
// resolve to the kind only.
func (b *Binding) KindsOrTokens(names ...string) KindSet {
	bm := roaring.New()
	for _, name := range names {
		syms, ok := b.named[name]
		if !ok {
			syms = b.tokens[name]
		}
		for _, sym := range syms {
			bm.Add(sym)
		}
	}
	bm.RunOptimize()
	return KindSet{bits: bm}
}

// HasKind reports whether the grammar defines a named kind called name.
func (b *Binding) HasKind(name string) bool {
	_, ok := b.named[name]
	return ok
}

// HasToken reports whether the grammar defines an anonymous token called
// name.
func (b *Binding) HasToken(name string) bool {
	_, ok := b.tokens[name]
	return ok
}

// HasField reports whether the grammar defines a field called name.
func (b *Binding) HasField(name string) bool {
	_, ok := b.fields[name]
	return ok
}

// Has reports whether the grammar defines a named kind or token called name.
func (b *Binding) Has(name string) bool {
	_, named := b.named[name]
	_, token := b.tokens[name]
	return named || token
}

// KindName returns the grammar's name for a symbol id.
func (b *Binding) KindName(sym uint32) string {
	if int(sym) >= len(b.names) {
		return ""
	}
	return b.names[sym]
}

func (b *Binding) resolve(table map[string][]uint32, names []string) KindSet {
	bm := roaring.New()
	for _, name := range names {
		for _, sym := range table[name] {
			bm.Add(sym)
		}
	}
	bm.RunOptimize()
	return KindSet{bits: bm}
}
