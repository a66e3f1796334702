// Package preproc collects C preprocessor facts (macros and includes) across
// a set of files. The resulting Results is built once and shared read-only
// by every parse that uses it.
package preproc

import (
	"sort"
	"strings"
)

// Macro is a preprocessor definition.
type Macro struct {
	Name string `json:"name"`
	// Function is true for function-like macros.
	Function bool `json:"function,omitempty"`
	// Empty is true for object-like macros with no replacement text, such as
	// export or calling-convention markers.
	Empty bool `json:"empty,omitempty"`
}

// FileData holds the preprocessor facts of one file.
type FileData struct {
	Path string `json:"path"`
	// Direct lists include targets as written in the file.
	Direct []string `json:"direct_includes,omitempty"`
	// Indirect lists resolved files reachable through includes.
	Indirect []string `json:"indirect_includes,omitempty"`
	Macros   []Macro  `json:"macros,omitempty"`
}

// Results maps files to their preprocessor facts. It is immutable once
// returned by Collect.
type Results struct {
	files    map[string]*FileData
	maskable map[string]map[string]struct{}
}

// File returns the facts collected for path.
func (r *Results) File(path string) (*FileData, bool) {
	if r == nil {
		return nil, false
	}
	fd, ok := r.files[path]
	return fd, ok
}

// Files returns the collected paths in sorted order.
func (r *Results) Files() []string {
	if r == nil {
		return nil
	}
	paths := make([]string, 0, len(r.files))
	for p := range r.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Maskable returns the names of empty object-like macros visible in path:
// those defined in the file itself and in every file it includes.
func (r *Results) Maskable(path string) []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.maskable[path]))
	for name := range r.maskable[path] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Mask returns a copy of src with every use of a maskable macro replaced by
// spaces of the same length, so byte offsets and line numbers are preserved.
// Preprocessor directive lines, comments and literals are left untouched.
// When nothing is maskable, src is returned unchanged.
func (r *Results) Mask(path string, src []byte) []byte {
	if r == nil || len(r.maskable[path]) == 0 {
		return src
	}
	names := r.maskable[path]
	out := make([]byte, len(src))
	copy(out, src)

	lineStart := true
	for i := 0; i < len(out); {
		ch := out[i]
		switch {
		case ch == '\n':
			lineStart = true
			i++
		case ch == ' ' || ch == '\t' || ch == '\r':
			i++
		case lineStart && ch == '#':
			i = skipDirective(out, i)
		case ch == '/' && i+1 < len(out) && out[i+1] == '/':
			i = skipTo(out, i, "\n")
		case ch == '/' && i+1 < len(out) && out[i+1] == '*':
			i = skipTo(out, i+2, "*/")
		case ch == '"' || ch == '\'':
			lineStart = false
			i = skipQuoted(out, i)
		case isIdentStart(ch):
			lineStart = false
			j := i + 1
			for j < len(out) && isIdentPart(out[j]) {
				j++
			}
			if _, ok := names[string(out[i:j])]; ok {
				for k := i; k < j; k++ {
					out[k] = ' '
				}
			}
			i = j
		default:
			lineStart = false
			i++
		}
	}
	return out
}

// skipDirective advances past a directive line, honouring backslash line
// continuations.
func skipDirective(b []byte, i int) int {
	for i < len(b) {
		if b[i] == '\n' && (i == 0 || b[i-1] != '\\') {
			return i
		}
		i++
	}
	return i
}

func skipTo(b []byte, i int, end string) int {
	idx := strings.Index(string(b[i:]), end)
	if idx < 0 {
		return len(b)
	}
	if end == "\n" {
		return i + idx
	}
	return i + idx + len(end)
}

func skipQuoted(b []byte, i int) int {
	quote := b[i]
	i++
	for i < len(b) {
		switch b[i] {
		case '\\':
			i += 2
			continue
		case quote, '\n':
			return i + 1
		}
		i++
	}
	return i
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || (ch >= '0' && ch <= '9')
}
