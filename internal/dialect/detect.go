package dialect

import (
	"bufio"
	"bytes"
	"path/filepath"
	"strings"
)

// pragma comments are only honored near the top of the file; scanning the
// whole source would make detection cost proportional to file size.
const pragmaScanLimit = 40

// Detect infers dialect flags from a file name and, when src is non-nil,
// from @jsx pragma comments in its leading lines. The result is a starting
// point; explicit caller flags win over anything detected here.
func Detect(path string, src []byte) Flags {
	var f Flags
	switch filepath.Ext(path) {
	case ".ts", ".mts", ".cts":
		f.Typed = true
	case ".tsx":
		f.Typed = true
		f.JSX = JSXAutomatic
	case ".jsx":
		f.JSX = JSXAutomatic
	case ".js", ".mjs", ".cjs":
		// untyped script, flags stay zero
	}
	switch filepath.Ext(path) {
	case ".mts", ".mjs":
		f.Module = true
	case ".cts", ".cjs":
		f.Module = false
	}
	if src != nil {
		applyPragmas(&f, src)
	}
	return f
}

// applyPragmas honors @jsxRuntime, @jsxImportSource, @jsx and @jsxFrag
// comments the way the JSX ecosystem defines them.
func applyPragmas(f *Flags, src []byte) {
	sc := bufio.NewScanner(bytes.NewReader(src))
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024)
	for line := 0; sc.Scan() && line < pragmaScanLimit; line++ {
		text := sc.Text()
		if !strings.Contains(text, "@jsx") {
			continue
		}
		if v, ok := pragmaValue(text, "@jsxRuntime"); ok {
			switch v {
			case "classic":
				f.JSX = JSXClassic
				f.JSXImportSource = ""
			case "automatic":
				f.JSX = JSXAutomatic
				f.JSXPragma, f.JSXFragmentPragma = "", ""
			}
		}
		if v, ok := pragmaValue(text, "@jsxImportSource"); ok {
			if !f.JSX.Automatic() {
				f.JSX = JSXAutomatic
			}
			f.JSXImportSource = v
			f.JSXPragma, f.JSXFragmentPragma = "", ""
		}
		if v, ok := pragmaValue(text, "@jsxFrag"); ok {
			f.JSX = JSXClassic
			f.JSXFragmentPragma = v
			f.JSXImportSource = ""
		}
		if v, ok := pragmaValue(text, "@jsx"); ok {
			f.JSX = JSXClassic
			f.JSXPragma = v
			f.JSXImportSource = ""
		}
	}
}

func textAfter(line, marker string) string {
	idx := strings.Index(line, marker)
	if idx < 0 {
		return ""
	}
	return line[idx+len(marker):]
}

// pragmaValue extracts the word following a pragma marker, requiring the
// marker to end at a word boundary so @jsx does not match @jsxFrag.
func pragmaValue(line, marker string) (string, bool) {
	rest := textAfter(line, marker)
	if rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
		return "", false
	}
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return "", false
	}
	v := strings.TrimSuffix(fields[0], "*/")
	if v == "" {
		return "", false
	}
	return v, true
}
