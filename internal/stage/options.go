package stage

// DecoratorOptions pins the decorator syntax revision a pass erases.
type DecoratorOptions struct {
	Version string
}

// ErasureOptions configures the type-erasure stage.
type ErasureOptions struct {
	// KeepTypeReexports keeps type-only re-export lines whose module
	// reference has runtime loading side effects.
	KeepTypeReexports bool
	// JSXPragma and JSXFragmentPragma mirror the classic JSX factory
	// identifiers so erasure and JSX rewriting agree on identifier meaning.
	JSXPragma         string
	JSXFragmentPragma string
}

// JSXClassicOptions configures the JSX-to-call-expression rewrite.
type JSXClassicOptions struct {
	Factory  string
	Fragment string
}

// JSXAutomaticOptions configures the JSX-to-automatic-runtime rewrite.
type JSXAutomaticOptions struct {
	ImportSource string
	Development  bool
}
