package dialect

import (
	"errors"
	"fmt"
)

// DefaultImportSource is the runtime the automatic JSX rewrite imports from
// when the file declares no JSX handling of its own.
const DefaultImportSource = "react"

// Default factory identifiers for the classic JSX rewrite.
const (
	DefaultPragma         = "React.createElement"
	DefaultFragmentPragma = "React.Fragment"
)

// ErrInvalidFlags marks an invalid combination of dialect flags.
var ErrInvalidFlags = errors.New("invalid dialect flags")

// Flags describes one source file. Values are immutable by convention:
// assembly never mutates a Flags it is given.
type Flags struct {
	// Typed marks files carrying erasable type syntax.
	Typed bool
	// Module marks files already in module form (import/export stay as-is).
	Module bool
	// JSX selects the JSX rewrite flavor.
	JSX JSXMode
	// JSXPragma and JSXFragmentPragma are the classic-mode factory
	// identifiers. Meaningful only when JSX == JSXClassic.
	JSXPragma         string
	JSXFragmentPragma string
	// JSXImportSource is the automatic-mode runtime module. Meaningful only
	// when JSX is an automatic variant.
	JSXImportSource string
}

// Validate rejects flag combinations that cannot be assembled into a
// pipeline. Assembly calls this first; a failure is a configuration error
// and no partial assembly is attempted.
func (f Flags) Validate() error {
	if f.JSX >= jsxModeCount {
		return fmt.Errorf("%w: jsx mode out of range: %d", ErrInvalidFlags, f.JSX)
	}
	if f.JSX != JSXClassic {
		if f.JSXPragma != "" {
			return fmt.Errorf("%w: jsx pragma %q requires classic mode, have %s", ErrInvalidFlags, f.JSXPragma, f.JSX)
		}
		if f.JSXFragmentPragma != "" {
			return fmt.Errorf("%w: jsx fragment pragma %q requires classic mode, have %s", ErrInvalidFlags, f.JSXFragmentPragma, f.JSX)
		}
	}
	if !f.JSX.Automatic() && f.JSXImportSource != "" {
		return fmt.Errorf("%w: jsx import source %q requires an automatic mode, have %s", ErrInvalidFlags, f.JSXImportSource, f.JSX)
	}
	return nil
}

// Describe renders the flags in the short human-readable form used by the
// CLI, e.g. "typed script, jsx=classic".
func (f Flags) Describe() string {
	form := "script"
	if f.Module {
		form = "module"
	}
	typing := "untyped"
	if f.Typed {
		typing = "typed"
	}
	return fmt.Sprintf("%s %s, jsx=%s", typing, form, f.JSX)
}

// Pragma returns the classic factory identifier, defaulted.
func (f Flags) Pragma() string {
	if f.JSXPragma != "" {
		return f.JSXPragma
	}
	return DefaultPragma
}

// FragmentPragma returns the classic fragment identifier, defaulted.
func (f Flags) FragmentPragma() string {
	if f.JSXFragmentPragma != "" {
		return f.JSXFragmentPragma
	}
	return DefaultFragmentPragma
}

// ImportSource returns the automatic runtime module, defaulted.
func (f Flags) ImportSource() string {
	if f.JSXImportSource != "" {
		return f.JSXImportSource
	}
	return DefaultImportSource
}
