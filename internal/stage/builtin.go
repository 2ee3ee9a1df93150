package stage

import (
	"fmt"
	"strings"
)

// Builtin returns a registry pre-populated with the statement-level
// behaviors the reference engine supports. Stages whose effect is finer than
// statement granularity (expression-level syntax downleveling, JSX) resolve
// to passthroughs here; a full-fidelity engine brings its own registry.
func Builtin() *Registry {
	r := NewRegistry()
	r.Register(ModulesCommonJS, func(any) (Rewriter, error) {
		return RewriterFunc{ID: ModulesCommonJS, Fn: rewriteModuleForm}, nil
	})
	r.Register(DynamicImportToRequire, func(any) (Rewriter, error) {
		return RewriterFunc{ID: DynamicImportToRequire, Fn: rewriteDynamicImport}, nil
	})
	r.Register(TypeErasure, func(options any) (Rewriter, error) {
		opts, _ := options.(ErasureOptions)
		return eraseTypes(opts), nil
	})

	passthrough := []string{
		Decorators, ClassProperties, ClassStaticBlocks, NumericSeparators,
		LogicalAssignment, NullishCoalescing, OptionalChaining,
		PrivateMethods, JSONStrings, OptionalCatchBinding, AsyncGenerators,
		ObjectRestSpread, NamespaceExports,
		JSXClassic, JSXAutomatic,
		SyntaxImportAssertions,
	}
	for _, name := range passthrough {
		r.Register(name, func(any) (Rewriter, error) {
			return Passthrough(name), nil
		})
	}
	return r
}

// rewriteModuleForm converts static import/export declarations to the
// host's synchronous loading form. Forms outside the supported set are
// transform errors, not silent passthroughs.
func rewriteModuleForm(st Statement) (Action, error) {
	word, end := firstWord(st.Text)
	switch word {
	case "import":
		if !isImportDecl(st.Text) {
			return Keep(), nil
		}
		d, ok := parseImport(st.Text)
		if !ok {
			return Keep(), fmt.Errorf("unsupported import form: %s", strings.TrimSpace(st.Text))
		}
		if d.TypeOnly {
			return Drop(), nil
		}
		return Replace(requireForm(d)), nil
	case "export":
		return rewriteExport(st.Text, end)
	default:
		return Keep(), nil
	}
}

func requireForm(d importDecl) string {
	req := fmt.Sprintf("require(%q)", d.Module)
	if d.Bare {
		return req
	}
	var parts []string
	bound := req
	if d.Default != "" {
		parts = append(parts, d.Default+" = "+req)
		bound = d.Default
	}
	if d.Namespace != "" {
		parts = append(parts, d.Namespace+" = "+bound)
	}
	if len(d.Named) > 0 {
		var names []string
		for _, s := range d.Named {
			if s.Alias != "" {
				names = append(names, s.Name+": "+s.Alias)
			} else {
				names = append(names, s.Name)
			}
		}
		parts = append(parts, "{ "+strings.Join(names, ", ")+" } = "+bound)
	}
	return "const " + strings.Join(parts, ", ")
}

func rewriteExport(text string, end int) (Action, error) {
	i := skipSpace(text, end)
	if i >= len(text) {
		return Keep(), fmt.Errorf("unsupported export form: %s", strings.TrimSpace(text))
	}
	// `export =` belongs to the assignment-export inline rewrite
	if text[i] == '=' {
		return Keep(), nil
	}
	if text[i] == '*' {
		d, ok := parseImport("import " + text[i+1:])
		if !ok || d.Namespace != "" {
			return Keep(), fmt.Errorf("unsupported export form: %s", strings.TrimSpace(text))
		}
		return Replace(fmt.Sprintf("Object.assign(module.exports, require(%q))", d.Module)), nil
	}
	if text[i] == '{' {
		specs, next, ok := parseNamed(text, i)
		if !ok {
			return Keep(), fmt.Errorf("unsupported export form: %s", strings.TrimSpace(text))
		}
		rest := skipSpace(text, next)
		if w, wEnd := firstWord(text[rest:]); w == "from" {
			from := skipSpace(text, rest+wEnd)
			module, _, ok := scanString(text, from)
			if !ok {
				return Keep(), fmt.Errorf("unsupported export form: %s", strings.TrimSpace(text))
			}
			var out []string
			for _, s := range specs {
				out = append(out, fmt.Sprintf("module.exports.%s = require(%q).%s", s.binding(), module, s.Name))
			}
			return Replace(strings.Join(out, "; ")), nil
		}
		var out []string
		for _, s := range specs {
			out = append(out, fmt.Sprintf("module.exports.%s = %s", s.binding(), s.Name))
		}
		return Replace(strings.Join(out, "; ")), nil
	}

	kw, kwEnd := firstWord(text[i:])
	switch kw {
	case "type":
		// a type-only re-export kept for its loading side effect; bindings
		// are types, only the load survives
		rest := text[i+kwEnd:]
		if from := strings.Index(rest, "from"); from >= 0 {
			j := skipSpace(rest, from+len("from"))
			if module, _, ok := scanString(rest, j); ok {
				return Replace(fmt.Sprintf("require(%q)", module)), nil
			}
		}
		return Drop(), nil
	case "default":
		rhs := text[i+kwEnd:]
		return Replace("module.exports.default =" + rhs), nil
	case "const", "let", "var":
		name, _ := firstWord(text[i+kwEnd:])
		if name == "" {
			return Keep(), fmt.Errorf("unsupported export form: %s", strings.TrimSpace(text))
		}
		decl := text[i:]
		return Replace(decl + "; module.exports." + name + " = " + name), nil
	case "function", "class", "async":
		rest := text[i:]
		name := declaredName(rest)
		if name == "" {
			return Keep(), fmt.Errorf("unsupported export form: %s", strings.TrimSpace(text))
		}
		return Replace(rest + "; module.exports." + name + " = " + name), nil
	default:
		return Keep(), fmt.Errorf("unsupported export form: %s", strings.TrimSpace(text))
	}
}

// declaredName extracts the binding name of a function/class declaration,
// skipping the async/function*/class keywords.
func declaredName(text string) string {
	i := 0
	for {
		w, end := firstWord(text[i:])
		switch w {
		case "async", "function", "class":
			i += end
			i = skipSpace(text, i)
			if i < len(text) && text[i] == '*' {
				i++
			}
			continue
		case "":
			return ""
		default:
			return w
		}
	}
}

// rewriteDynamicImport replaces dynamic-import expressions with synchronous
// loading calls. The host intercepts require but not import(), so the two
// must converge before evaluation.
func rewriteDynamicImport(st Statement) (Action, error) {
	text := st.Text
	var b strings.Builder
	changed := false
	i := 0
	for i < len(text) {
		c := text[i]
		switch {
		case c == '"' || c == '\'' || c == '`':
			j := skipLiteral(text, i)
			b.WriteString(text[i:j])
			i = j
		case c == '/' && i+1 < len(text) && (text[i+1] == '/' || text[i+1] == '*'):
			j := skipComment(text, i)
			b.WriteString(text[i:j])
			i = j
		case isIdentChar(c):
			j := i
			for j < len(text) && isIdentChar(text[j]) {
				j++
			}
			word := text[i:j]
			prevOK := i == 0 || (!isIdentChar(text[i-1]) && text[i-1] != '.')
			next := skipSpace(text, j)
			if word == "import" && prevOK && next < len(text) && text[next] == '(' {
				b.WriteString("require")
				changed = true
			} else {
				b.WriteString(word)
			}
			i = j
		default:
			b.WriteByte(c)
			i++
		}
	}
	if !changed {
		return Keep(), nil
	}
	return Replace(b.String()), nil
}

// skipLiteral advances past a string or template literal starting at i.
// Template interpolations may nest further literals.
func skipLiteral(text string, i int) int {
	quote := text[i]
	j := i + 1
	for j < len(text) {
		c := text[j]
		if c == '\\' {
			j += 2
			continue
		}
		if c == quote {
			return j + 1
		}
		if quote == '`' && c == '$' && j+1 < len(text) && text[j+1] == '{' {
			depth := 1
			j += 2
			for j < len(text) && depth > 0 {
				switch text[j] {
				case '{':
					depth++
				case '}':
					depth--
				case '"', '\'', '`':
					j = skipLiteral(text, j) - 1
				}
				j++
			}
			continue
		}
		j++
	}
	return j
}

// skipComment advances past a // or /* comment starting at i.
func skipComment(text string, i int) int {
	if text[i+1] == '/' {
		j := strings.IndexByte(text[i:], '\n')
		if j < 0 {
			return len(text)
		}
		return i + j
	}
	j := strings.Index(text[i+2:], "*/")
	if j < 0 {
		return len(text)
	}
	return i + 2 + j + 2
}

// eraseTypes drops statements that exist only in the typed dialect.
// Annotations inside statements are below this engine's granularity; a
// full-fidelity engine erases those too.
func eraseTypes(opts ErasureOptions) Rewriter {
	return RewriterFunc{ID: TypeErasure, Fn: func(st Statement) (Action, error) {
		word, end := firstWord(st.Text)
		switch word {
		case "import":
			if d, ok := parseImport(st.Text); ok && d.TypeOnly {
				return Drop(), nil
			}
			return Keep(), nil
		case "export":
			i := skipSpace(st.Text, end)
			w, wEnd := firstWord(st.Text[i:])
			switch w {
			case "type":
				if opts.KeepTypeReexports && hasFromClause(st.Text[i+wEnd:]) {
					return Keep(), nil
				}
				return Drop(), nil
			case "interface", "declare":
				return Drop(), nil
			}
			return Keep(), nil
		case "type":
			// type alias: `type X = ...`; bare identifier `type` alone is
			// somebody's variable, leave it be
			if name, _ := firstWord(st.Text[end:]); name != "" {
				return Drop(), nil
			}
			return Keep(), nil
		case "interface", "declare":
			return Drop(), nil
		default:
			return Keep(), nil
		}
	}}
}

func hasFromClause(text string) bool {
	i := 0
	for i < len(text) {
		w, end := firstWord(text[i:])
		if w == "from" {
			return true
		}
		if end == 0 {
			i++
			continue
		}
		i += end
	}
	return false
}
