package stage

import (
	"strings"
	"unicode"
)

// importDecl is the parsed shape of a static import declaration.
type importDecl struct {
	TypeOnly  bool
	Bare      bool
	Default   string
	Namespace string
	Named     []importSpec
	Module    string
}

type importSpec struct {
	Name  string
	Alias string
}

func (s importSpec) binding() string {
	if s.Alias != "" {
		return s.Alias
	}
	return s.Name
}

func firstWord(text string) (string, int) {
	i := skipSpace(text, 0)
	j := i
	for j < len(text) && isIdentChar(text[j]) {
		j++
	}
	return text[i:j], j
}

func isIdentChar(b byte) bool {
	return b == '_' || b == '$' || b >= 0x80 ||
		unicode.IsLetter(rune(b)) || unicode.IsDigit(rune(b))
}

func skipSpace(text string, i int) int {
	for i < len(text) && (text[i] == ' ' || text[i] == '\t' || text[i] == '\n' || text[i] == '\r') {
		i++
	}
	return i
}

// isImportDecl reports whether the statement is a static import declaration
// (and not a dynamic import() expression statement).
func isImportDecl(text string) bool {
	word, end := firstWord(text)
	if word != "import" {
		return false
	}
	rest := skipSpace(text, end)
	return rest >= len(text) || text[rest] != '(' && text[rest] != '.'
}

// scanString reads a quoted literal starting at text[i] and returns its
// unquoted value and the index past the closing quote.
func scanString(text string, i int) (string, int, bool) {
	if i >= len(text) {
		return "", i, false
	}
	quote := text[i]
	if quote != '"' && quote != '\'' {
		return "", i, false
	}
	var b strings.Builder
	j := i + 1
	for j < len(text) {
		c := text[j]
		if c == '\\' && j+1 < len(text) {
			b.WriteByte(text[j+1])
			j += 2
			continue
		}
		if c == quote {
			return b.String(), j + 1, true
		}
		b.WriteByte(c)
		j++
	}
	return "", i, false
}

// parseImport parses the common static import forms:
//
//	import "m";
//	import D from "m";
//	import * as N from "m";
//	import { a, b as c } from "m";
//	import D, { a } from "m";
//	import D, * as N from "m";
//	import type ... from "m";
//
// Trailing assertion clauses are ignored. Returns false for anything else.
func parseImport(text string) (importDecl, bool) {
	var d importDecl
	word, i := firstWord(text)
	if word != "import" {
		return d, false
	}
	i = skipSpace(text, i)

	// bare import
	if v, _, ok := scanString(text, i); ok {
		d.Bare = true
		d.Module = v
		return d, true
	}

	// import type: only when followed by a clause, so `import type from "m"`
	// (default binding named "type") stays a value import.
	if strings.HasPrefix(text[i:], "type") {
		after := skipSpace(text, i+len("type"))
		if after < len(text) && (text[after] == '{' || text[after] == '*' || isIdentChar(text[after])) {
			if w, _ := firstWord(text[after:]); w != "from" {
				d.TypeOnly = true
				i = after
			}
		}
	}

	for i < len(text) {
		i = skipSpace(text, i)
		if i >= len(text) {
			return d, false
		}
		switch {
		case text[i] == '{':
			named, next, ok := parseNamed(text, i)
			if !ok {
				return d, false
			}
			d.Named = named
			i = next
		case text[i] == '*':
			i = skipSpace(text, i+1)
			w, next := firstWord(text[i:])
			if w != "as" {
				return d, false
			}
			i = skipSpace(text, i+next)
			name, next2 := firstWord(text[i:])
			if name == "" {
				return d, false
			}
			d.Namespace = name
			i += next2
		case text[i] == ',':
			i++
		default:
			w, next := firstWord(text[i:])
			if w == "" {
				return d, false
			}
			if w == "from" {
				i = skipSpace(text, i+next)
				v, _, ok := scanString(text, i)
				if !ok {
					return d, false
				}
				d.Module = v
				return d, true
			}
			if d.Default != "" {
				return d, false
			}
			d.Default = w
			i += next
		}
	}
	return d, false
}

// parseNamed parses `{ a, b as c }` starting at the opening brace.
func parseNamed(text string, i int) ([]importSpec, int, bool) {
	if text[i] != '{' {
		return nil, i, false
	}
	var specs []importSpec
	i++
	for i < len(text) {
		i = skipSpace(text, i)
		if i < len(text) && text[i] == '}' {
			return specs, i + 1, true
		}
		name, next := firstWord(text[i:])
		if name == "" {
			return nil, i, false
		}
		i = skipSpace(text, i+next)
		spec := importSpec{Name: name}
		if w, next2 := firstWord(text[i:]); w == "as" {
			i = skipSpace(text, i+next2)
			alias, next3 := firstWord(text[i:])
			if alias == "" {
				return nil, i, false
			}
			spec.Alias = alias
			i = skipSpace(text, i+next3)
		}
		specs = append(specs, spec)
		if i < len(text) && text[i] == ',' {
			i++
		}
	}
	return nil, i, false
}
