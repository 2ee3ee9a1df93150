// Package textengine is a statement-granularity reference implementation of
// the engine boundary. It splits source into top-level statements with a
// lexical scanner and applies each stage's rewriter across them in pipeline
// order. It exists so the CLI and integration tests have a real engine;
// expression-level stages resolve to passthroughs in the built-in registry
// and need a full-fidelity engine to take effect.
package textengine

import "strings"

type segKind uint8

const (
	segTrivia segKind = iota
	segStmt
)

// segment covers a contiguous byte range of the source: either one
// top-level statement or the trivia (whitespace, comments, separators)
// between statements. Concatenating segment texts reproduces the source.
type segment struct {
	kind segKind
	text string
	// 1-based start position
	line, col int
	dropped   bool
}

// scan splits src into statement and trivia segments. Statements end at a
// top-level `;` or newline (the separator stays in trivia); brackets,
// strings, template literals and comments keep a statement open across
// lines.
func scan(src string) []segment {
	var segs []segment
	line, col := 1, 1
	i := 0
	for i < len(src) {
		start := i
		startLine, startCol := line, col
		for i < len(src) && isTriviaAt(src, i) {
			j := advanceTrivia(src, i)
			line, col = advancePos(src[i:j], line, col)
			i = j
		}
		if i > start {
			segs = append(segs, segment{kind: segTrivia, text: src[start:i], line: startLine, col: startCol})
		}
		if i >= len(src) {
			break
		}

		start = i
		startLine, startCol = line, col
		depth := 0
		for i < len(src) {
			c := src[i]
			if depth == 0 && (c == ';' || c == '\n') {
				break
			}
			switch c {
			case '(', '[', '{':
				depth++
				i++
				col++
			case ')', ']', '}':
				if depth > 0 {
					depth--
				}
				i++
				col++
			case '"', '\'', '`':
				j := skipLiteralAt(src, i)
				line, col = advancePos(src[i:j], line, col)
				i = j
			case '/':
				if i+1 < len(src) && (src[i+1] == '/' || src[i+1] == '*') {
					j := advanceComment(src, i)
					line, col = advancePos(src[i:j], line, col)
					i = j
					continue
				}
				i++
				col++
			default:
				if c == '\n' {
					line++
					col = 1
				} else {
					col++
				}
				i++
			}
		}
		segs = append(segs, segment{kind: segStmt, text: src[start:i], line: startLine, col: startCol})
	}
	return segs
}

func isTriviaAt(src string, i int) bool {
	switch src[i] {
	case ' ', '\t', '\r', '\n', ';':
		return true
	case '/':
		return i+1 < len(src) && (src[i+1] == '/' || src[i+1] == '*')
	default:
		return false
	}
}

func advanceTrivia(src string, i int) int {
	switch src[i] {
	case '/':
		return advanceComment(src, i)
	default:
		return i + 1
	}
}

func advanceComment(src string, i int) int {
	if src[i+1] == '/' {
		j := strings.IndexByte(src[i:], '\n')
		if j < 0 {
			return len(src)
		}
		return i + j
	}
	j := strings.Index(src[i+2:], "*/")
	if j < 0 {
		return len(src)
	}
	return i + 2 + j + 2
}

// skipLiteralAt advances past a string or template literal, including
// nested template interpolations.
func skipLiteralAt(src string, i int) int {
	quote := src[i]
	j := i + 1
	for j < len(src) {
		c := src[j]
		if c == '\\' {
			j += 2
			continue
		}
		if c == quote {
			return j + 1
		}
		if quote != '`' && c == '\n' {
			// unterminated plain string, end at the line break
			return j
		}
		if quote == '`' && c == '$' && j+1 < len(src) && src[j+1] == '{' {
			depth := 1
			j += 2
			for j < len(src) && depth > 0 {
				switch src[j] {
				case '{':
					depth++
				case '}':
					depth--
				case '"', '\'', '`':
					j = skipLiteralAt(src, j) - 1
				}
				j++
			}
			continue
		}
		j++
	}
	return j
}

func advancePos(text string, line, col int) (int, int) {
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
