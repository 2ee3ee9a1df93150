package stage

import "testing"

func rewrite(t *testing.T, rw Rewriter, text string) Action {
	t.Helper()
	act, err := rw.Rewrite(Statement{Text: text, Line: 1, Col: 1})
	if err != nil {
		t.Fatalf("Rewrite(%q) error: %v", text, err)
	}
	return act
}

func TestExportAssignRewrite(t *testing.T) {
	rw := ExportAssignRewrite()
	if rw.Name() != ExportAssignName {
		t.Errorf("Name() = %q", rw.Name())
	}

	tests := []struct {
		text string
		want Action
	}{
		{"export = foo(1, 2)", Replace("module.exports = foo(1, 2)")},
		{"export =bar", Replace("module.exports =bar")},
		{"export default x", Keep()},
		{"export { a }", Keep()},
		{"exported = 1", Keep()},
		{"const x = 1", Keep()},
	}
	for _, tt := range tests {
		if got := rewrite(t, rw, tt.text); got != tt.want {
			t.Errorf("Rewrite(%q) = %+v, want %+v", tt.text, got, tt.want)
		}
	}
}

func TestStyleElisionRewrite(t *testing.T) {
	rw := StyleElisionRewrite()
	if rw.Name() != StyleElisionName {
		t.Errorf("Name() = %q", rw.Name())
	}

	tests := []struct {
		text string
		want Action
	}{
		{`import "a.css"`, Drop()},
		{`import "./theme.scss"`, Drop()},
		{`import "ui/main.sass"`, Drop()},
		{`import "x.less"`, Drop()},
		{`import "x.styl"`, Drop()},
		{`import styles from "./a.module.css"`, Drop()},
		// suffix match is case-sensitive
		{`import "a.CSS"`, Keep()},
		{`import { x } from "./x"`, Keep()},
		{`import "./script.js"`, Keep()},
		// dynamic import is an expression, not a declaration
		{`import("x.css")`, Keep()},
		{`const a = require("./a.css")`, Keep()},
	}
	for _, tt := range tests {
		if got := rewrite(t, rw, tt.text); got != tt.want {
			t.Errorf("Rewrite(%q) = %+v, want %+v", tt.text, got, tt.want)
		}
	}
}
