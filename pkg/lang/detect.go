package lang

import (
	"bytes"
	"path/filepath"
	"regexp"
	"strings"
)

// FromExtension returns the language registered for a file extension.
// The extension may be given with or without the leading dot.
func FromExtension(ext string) (Language, bool) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	l, ok := byExtension[ext]
	return l, ok
}

// FromEmacsMode returns the language registered for an editor mode.
func FromEmacsMode(mode string) (Language, bool) {
	l, ok := byMode[strings.ToLower(strings.TrimSpace(mode))]
	return l, ok
}

// FromPath detects the language of a file from its extension.
func FromPath(path string) (Language, bool) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, false
	}
	return FromExtension(ext)
}

var (
	emacsModeline  = regexp.MustCompile(`-\*-\s*(?:.*?\bmode\s*:\s*)?([A-Za-z0-9+#_-]+)\s*(?:;.*?)?-\*-`)
	vimModeline    = regexp.MustCompile(`\bvim?:.*?\b(?:ft|filetype|syntax)\s*=\s*([A-Za-z0-9+#_-]+)`)
	shebangPattern = regexp.MustCompile(`^#!\s*(?:\S*/env(?:\s+-\S+)*\s+|\S*/)?([A-Za-z]+)`)
)

// Interpreters named on a shebang line.
var interpreters = map[string]Language{
	"sh":     Bash,
	"bash":   Bash,
	"zsh":    Bash,
	"dash":   Bash,
	"ksh":    Bash,
	"python": Python,
	"ruby":   Ruby,
	"node":   JavaScript,
	"nodejs": JavaScript,
	"deno":   TypeScript,
	"php":    PHP,
	"lua":    Lua,
	"scala":  Scala,
	"kotlin": Kotlin,
	"swift":  Swift,
}

// modelineWindow is how many lines from the start and end of a file are
// searched for a modeline.
const modelineWindow = 5

// ModeFromSource extracts an editor mode from an Emacs or Vim modeline, or
// from the interpreter named on a shebang line. It returns "" when none is
// present.
func ModeFromSource(src []byte) string {
	lines := bytes.SplitN(src, []byte("\n"), modelineWindow+1)
	if len(lines) > modelineWindow {
		lines = lines[:modelineWindow]
	}
	if len(lines) > 0 {
		if m := shebangPattern.FindSubmatch(lines[0]); m != nil {
			if l, ok := interpreters[strings.ToLower(string(m[1]))]; ok {
				return descriptors[l].Modes[0]
			}
		}
	}
	for _, line := range lines {
		if m := emacsModeline.FindSubmatch(line); m != nil {
			return strings.ToLower(string(m[1]))
		}
	}

	tail := src
	if idx := nthLastIndex(src, '\n', modelineWindow+1); idx >= 0 {
		tail = src[idx+1:]
	}
	for _, chunk := range [][]byte{bytes.Join(lines, []byte("\n")), tail} {
		if m := vimModeline.FindSubmatch(chunk); m != nil {
			return strings.ToLower(string(m[1]))
		}
	}
	return ""
}

// Guess detects the language of a file, preferring an explicit modeline in
// the source over the file extension.
func Guess(src []byte, path string) (Language, bool) {
	if mode := ModeFromSource(src); mode != "" {
		if l, ok := FromEmacsMode(mode); ok {
			return l, true
		}
	}
	return FromPath(path)
}

func nthLastIndex(b []byte, c byte, n int) int {
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] == c {
			n--
			if n == 0 {
				return i
			}
		}
	}
	return -1
}
