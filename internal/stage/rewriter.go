package stage

// Statement is one top-level statement as seen by a statement-granularity
// engine: its exact source text (no trailing separator) and 1-based start
// position.
type Statement struct {
	Text string
	Line int
	Col  int
}

// Action is a rewriter's verdict on one statement. The zero Action keeps the
// statement unchanged.
type Action struct {
	Replace bool
	Drop    bool
	Text    string
}

// Keep leaves the statement as-is.
func Keep() Action { return Action{} }

// Replace substitutes the statement's text.
func Replace(text string) Action { return Action{Replace: true, Text: text} }

// Drop removes the statement from the output entirely.
func Drop() Action { return Action{Drop: true} }

// Rewriter is one executable rewrite behavior with a statement-text
// contract, independent of how any engine represents syntax internally.
type Rewriter interface {
	Name() string
	Rewrite(st Statement) (Action, error)
}

// RewriterFunc adapts a function to the Rewriter interface.
type RewriterFunc struct {
	ID string
	Fn func(st Statement) (Action, error)
}

func (r RewriterFunc) Name() string { return r.ID }

func (r RewriterFunc) Rewrite(st Statement) (Action, error) { return r.Fn(st) }

// Passthrough returns a rewriter that never changes anything. Parse-only
// stages (syntax enablers) and stages whose effect is below statement
// granularity resolve to it in the built-in registry.
func Passthrough(name string) Rewriter {
	return RewriterFunc{ID: name, Fn: func(Statement) (Action, error) {
		return Keep(), nil
	}}
}
