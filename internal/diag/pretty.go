package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// PrettyOpts управляет выводом Pretty.
type PrettyOpts struct {
	Color bool
}

// Pretty форматирует диагностики в человекочитаемый вид:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// Позиция опускается, если её нет (строка 0).
func Pretty(w io.Writer, diags []Diagnostic, opts PrettyOpts) {
	for _, d := range diags {
		fmt.Fprintln(w, formatOne(d, opts))
	}
}

func formatOne(d Diagnostic, opts PrettyOpts) string {
	loc := d.Path
	if d.Line > 0 {
		loc = fmt.Sprintf("%s:%d:%d", d.Path, d.Line, d.Col)
	}
	sev := d.Severity.String()
	code := d.Code.String()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
		code = color.New(color.Faint).Sprint(code)
	}
	if loc == "" {
		return fmt.Sprintf("%s %s: %s", sev, code, d.Message)
	}
	return fmt.Sprintf("%s: %s %s: %s", loc, sev, code, d.Message)
}

func severityColor(s Severity) *color.Color {
	switch s {
	case SevError:
		return color.New(color.FgRed, color.Bold)
	case SevWarning:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgCyan)
	}
}
