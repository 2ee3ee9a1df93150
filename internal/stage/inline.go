package stage

import (
	"strings"
)

// Inline stage identities.
const (
	ExportAssignName = "export-assign"
	StyleElisionName = "elide-style-imports"
)

// styleExts is the fixed set of style-sheet suffixes whose imports are
// elided. Matching is case-sensitive.
var styleExts = []string{".css", ".scss", ".sass", ".less", ".styl"}

// ExportAssignRewrite returns the inline stage rewriting assignment-style
// exports (`export = E`) into direct assignments to the module's export
// object. The right-hand side is preserved byte-for-byte; every occurrence
// the engine visits is rewritten independently.
func ExportAssignRewrite() Rewriter {
	return RewriterFunc{ID: ExportAssignName, Fn: func(st Statement) (Action, error) {
		word, end := firstWord(st.Text)
		if word != "export" {
			return Keep(), nil
		}
		i := skipSpace(st.Text, end)
		if i >= len(st.Text) || st.Text[i] != '=' {
			return Keep(), nil
		}
		// not ==, which cannot follow `export` in valid source anyway
		if i+1 < len(st.Text) && st.Text[i+1] == '=' {
			return Keep(), nil
		}
		rhs := st.Text[i+1:]
		return Replace("module.exports =" + rhs), nil
	}}
}

// StyleElisionRewrite returns the inline stage removing import declarations
// of style sheets. Bindings such an import introduced become unresolved if
// referenced; style imports are assumed binding-free, loaded only for their
// side effect.
func StyleElisionRewrite() Rewriter {
	return RewriterFunc{ID: StyleElisionName, Fn: func(st Statement) (Action, error) {
		if !isImportDecl(st.Text) {
			return Keep(), nil
		}
		d, ok := parseImport(st.Text)
		if !ok {
			return Keep(), nil
		}
		if isStylePath(d.Module) {
			return Drop(), nil
		}
		return Keep(), nil
	}}
}

func isStylePath(path string) bool {
	for _, ext := range styleExts {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
