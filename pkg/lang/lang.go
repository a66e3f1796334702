// Package lang is the registry of supported languages.
//
// Every language is described exactly once in the descriptors table. The
// enumeration, the extension and editor-mode lookups, and the grammar binding
// used by the rest of the module are all derived from that table.
package lang

import (
	"errors"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/bash"
	"github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/cpp"
	"github.com/smacker/go-tree-sitter/csharp"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/kotlin"
	"github.com/smacker/go-tree-sitter/lua"
	"github.com/smacker/go-tree-sitter/php"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/ruby"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/scala"
	"github.com/smacker/go-tree-sitter/swift"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// ErrUnsupported is returned when a name, extension or mode has no language.
var ErrUnsupported = errors.New("unsupported language")

// Language identifies one supported grammar.
type Language uint8

const (
	Bash Language = iota
	C
	Cpp
	CSharp
	Go
	Java
	JavaScript
	Kotlin
	Lua
	PHP
	Python
	Ruby
	Rust
	Scala
	Swift
	TypeScript
	TSX

	// Count is the number of supported languages. It is not a language.
	Count
)

// Descriptor is the static metadata of a language.
type Descriptor struct {
	// Name is the canonical lower-case identifier (used in config and flags).
	Name string
	// Display is the human readable name.
	Display string
	// Extensions are matched case-insensitively, without the leading dot.
	Extensions []string
	// Modes are Emacs/Vim editor-mode identifiers.
	Modes []string
	// Grammar returns the concrete tree-sitter grammar.
	Grammar func() *sitter.Language
	// Preprocessed languages accept C preprocessor results before parsing.
	Preprocessed bool
}

var descriptors = [...]Descriptor{
	Bash: {
		Name:       "bash",
		Display:    "Bash",
		Extensions: []string{"sh", "bash", "zsh"},
		Modes:      []string{"sh", "bash", "shell-script", "zsh"},
		Grammar:    bash.GetLanguage,
	},
	C: {
		Name:         "c",
		Display:      "C",
		Extensions:   []string{"c", "h"},
		Modes:        []string{"c"},
		Grammar:      c.GetLanguage,
		Preprocessed: true,
	},
	Cpp: {
		Name:         "cpp",
		Display:      "C++",
		Extensions:   []string{"cpp", "cc", "cxx", "c++", "hpp", "hh", "hxx", "h++", "inl", "ipp"},
		Modes:        []string{"c++", "cpp"},
		Grammar:      cpp.GetLanguage,
		Preprocessed: true,
	},
	CSharp: {
		Name:       "csharp",
		Display:    "C#",
		Extensions: []string{"cs"},
		Modes:      []string{"csharp", "c#"},
		Grammar:    csharp.GetLanguage,
	},
	Go: {
		Name:       "go",
		Display:    "Go",
		Extensions: []string{"go"},
		Modes:      []string{"go"},
		Grammar:    golang.GetLanguage,
	},
	Java: {
		Name:       "java",
		Display:    "Java",
		Extensions: []string{"java"},
		Modes:      []string{"java"},
		Grammar:    java.GetLanguage,
	},
	JavaScript: {
		Name:       "javascript",
		Display:    "JavaScript",
		Extensions: []string{"js", "mjs", "cjs", "jsm"},
		Modes:      []string{"js", "js2", "javascript"},
		Grammar:    javascript.GetLanguage,
	},
	Kotlin: {
		Name:       "kotlin",
		Display:    "Kotlin",
		Extensions: []string{"kt", "kts"},
		Modes:      []string{"kotlin"},
		Grammar:    kotlin.GetLanguage,
	},
	Lua: {
		Name:       "lua",
		Display:    "Lua",
		Extensions: []string{"lua"},
		Modes:      []string{"lua"},
		Grammar:    lua.GetLanguage,
	},
	PHP: {
		Name:       "php",
		Display:    "PHP",
		Extensions: []string{"php", "phtml"},
		Modes:      []string{"php"},
		Grammar:    php.GetLanguage,
	},
	Python: {
		Name:       "python",
		Display:    "Python",
		Extensions: []string{"py", "pyw", "pyi"},
		Modes:      []string{"python"},
		Grammar:    python.GetLanguage,
	},
	Ruby: {
		Name:       "ruby",
		Display:    "Ruby",
		Extensions: []string{"rb", "rake", "gemspec"},
		Modes:      []string{"ruby"},
		Grammar:    ruby.GetLanguage,
	},
	Rust: {
		Name:       "rust",
		Display:    "Rust",
		Extensions: []string{"rs"},
		Modes:      []string{"rust"},
		Grammar:    rust.GetLanguage,
	},
	Scala: {
		Name:       "scala",
		Display:    "Scala",
		Extensions: []string{"scala", "sc"},
		Modes:      []string{"scala"},
		Grammar:    scala.GetLanguage,
	},
	Swift: {
		Name:       "swift",
		Display:    "Swift",
		Extensions: []string{"swift"},
		Modes:      []string{"swift"},
		Grammar:    swift.GetLanguage,
	},
	TypeScript: {
		Name:       "typescript",
		Display:    "TypeScript",
		Extensions: []string{"ts", "mts", "cts"},
		Modes:      []string{"typescript"},
		Grammar:    typescript.GetLanguage,
	},
	TSX: {
		Name:       "tsx",
		Display:    "TSX",
		Extensions: []string{"tsx", "jsx"},
		Modes:      []string{"tsx", "jsx", "rjsx"},
		Grammar:    tsx.GetLanguage,
	},
}

// Adding a Language constant without a descriptor (or the reverse) fails to
// compile: both array lengths below must be non-negative.
var (
	_ [len(descriptors) - int(Count)]struct{}
	_ [int(Count) - len(descriptors)]struct{}
)

var (
	byName      = make(map[string]Language, Count)
	byExtension = make(map[string]Language)
	byMode      = make(map[string]Language)
)

func init() {
	for i := range descriptors {
		l := Language(i)
		d := &descriptors[i]
		if d.Name == "" || d.Grammar == nil {
			panic(fmt.Sprintf("lang: missing descriptor for language %d", i))
		}
		if _, dup := byName[d.Name]; dup {
			panic(fmt.Sprintf("lang: duplicate language name %q", d.Name))
		}
		byName[d.Name] = l
		for _, ext := range d.Extensions {
			byExtension[ext] = l
		}
		for _, mode := range d.Modes {
			byMode[mode] = l
		}
	}
}

// All returns every supported language in enumeration order.
func All() []Language {
	all := make([]Language, Count)
	for i := range all {
		all[i] = Language(i)
	}
	return all
}

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	return l < Count
}

// Descriptor returns the static metadata of l. It panics on invalid values.
func (l Language) Descriptor() *Descriptor {
	return &descriptors[l]
}

// String returns the canonical name.
func (l Language) String() string {
	if !l.Valid() {
		return "unknown"
	}
	return descriptors[l].Name
}

// Display returns the human readable name.
func (l Language) Display() string {
	if !l.Valid() {
		return "Unknown"
	}
	return descriptors[l].Display
}

// Grammar returns the tree-sitter grammar for l.
func (l Language) Grammar() *sitter.Language {
	return descriptors[l].Grammar()
}

// MarshalText implements encoding.TextMarshaler.
func (l Language) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Language) UnmarshalText(text []byte) error {
	parsed, err := FromName(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// FromName looks a language up by its canonical name, display name or any
// registered editor mode.
func FromName(name string) (Language, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if l, ok := byName[key]; ok {
		return l, nil
	}
	for i := range descriptors {
		if strings.EqualFold(descriptors[i].Display, key) {
			return Language(i), nil
		}
	}
	if l, ok := byMode[key]; ok {
		return l, nil
	}
	return 0, ErrUnsupported
}
